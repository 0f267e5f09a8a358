package services

import (
	"time"

	"finledger/internal/models"
	"finledger/internal/session"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionInput carries the caller-editable fields of a ledger entry.
// Everything else (ID, owner, creation time) is assigned by the service
// and the store.
type TransactionInput struct {
	Type        string
	Amount      decimal.Decimal
	Category    string
	Date        time.Time
	Currency    string
	Description string
}

// LedgerView is a user's full ledger together with its net balance. Every
// mutation returns a fresh view re-read from the store, so the balance a
// caller displays always reflects persisted state.
type LedgerView struct {
	Transactions []models.Transaction `json:"transactions"`
	Balance      decimal.Decimal      `json:"balance"`
}

// LedgerServiceInterface is the validated mutation and read API over a
// user's ledger
type LedgerServiceInterface interface {
	GetLedger(sess session.Session) (*LedgerView, error)
	CreateTransaction(sess session.Session, input TransactionInput) (*LedgerView, error)
	UpdateTransaction(sess session.Session, id uuid.UUID, input TransactionInput) (*LedgerView, error)
	DeleteTransaction(sess session.Session, id uuid.UUID) (*LedgerView, error)
}

// ReportServiceInterface builds date-bounded summaries of a user's ledger
type ReportServiceInterface interface {
	BuildReport(sess session.Session, start, end time.Time) (*models.LedgerReport, error)
}

// AuthServiceInterface handles registration, sign-in and account approval
type AuthServiceInterface interface {
	Register(name, email, password string) (*models.User, error)
	Login(email, password string) (token string, user *models.User, err error)
	Approve(userID uuid.UUID) error
	ParseToken(token string) (session.Session, error)
}

// MetricsRecorderInterface records operational metrics
type MetricsRecorderInterface interface {
	RecordLedgerOperation(operation, status string)
	ObserveReportDuration(d time.Duration)
	RecordAuthEvent(event string)
}
