package services

import (
	"fmt"
	"log/slog"

	"finledger/internal/models"
	"finledger/internal/repositories"
	"finledger/internal/session"

	"github.com/google/uuid"
)

type ledgerService struct {
	ledgerRepo   repositories.LedgerRepositoryInterface
	metrics      MetricsRecorderInterface
	baseCurrency string
}

// NewLedgerService creates the validated mutation and read API over the
// transaction store
func NewLedgerService(
	ledgerRepo repositories.LedgerRepositoryInterface,
	metrics MetricsRecorderInterface,
	baseCurrency string,
) LedgerServiceInterface {
	return &ledgerService{
		ledgerRepo:   ledgerRepo,
		metrics:      metrics,
		baseCurrency: baseCurrency,
	}
}

// GetLedger returns the caller's full ledger with its net balance
func (s *ledgerService) GetLedger(sess session.Session) (*LedgerView, error) {
	if !sess.Valid() {
		return nil, session.ErrNoSession
	}
	return s.loadView(sess.UserID)
}

// CreateTransaction validates and persists a new ledger entry, then returns
// the refreshed ledger. Validation failures never reach the store.
func (s *ledgerService) CreateTransaction(sess session.Session, input TransactionInput) (*LedgerView, error) {
	if !sess.Valid() {
		return nil, session.ErrNoSession
	}

	transaction := s.buildTransaction(sess.UserID, input)
	if err := transaction.Validate(); err != nil {
		s.metrics.RecordLedgerOperation("create", "rejected")
		return nil, err
	}

	if err := s.ledgerRepo.Insert(transaction); err != nil {
		s.metrics.RecordLedgerOperation("create", "failed")
		slog.Error("failed to insert transaction",
			"user_id", sess.UserID,
			"error", err)
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	s.metrics.RecordLedgerOperation("create", "ok")
	slog.Info("transaction created",
		"user_id", sess.UserID,
		"transaction_id", transaction.ID,
		"type", transaction.Type,
		"amount", transaction.Amount.String())

	return s.loadView(sess.UserID)
}

// UpdateTransaction replaces the mutable fields of an existing entry and
// returns the refreshed ledger. The target must exist for the caller.
func (s *ledgerService) UpdateTransaction(sess session.Session, id uuid.UUID, input TransactionInput) (*LedgerView, error) {
	if !sess.Valid() {
		return nil, session.ErrNoSession
	}

	transaction := s.buildTransaction(sess.UserID, input)
	transaction.ID = id
	if err := transaction.Validate(); err != nil {
		s.metrics.RecordLedgerOperation("update", "rejected")
		return nil, err
	}

	if err := s.ledgerRepo.Update(sess.UserID, transaction); err != nil {
		s.metrics.RecordLedgerOperation("update", "failed")
		if err != repositories.ErrTransactionNotFound {
			slog.Error("failed to update transaction",
				"user_id", sess.UserID,
				"transaction_id", id,
				"error", err)
		}
		return nil, err
	}

	s.metrics.RecordLedgerOperation("update", "ok")
	slog.Info("transaction updated",
		"user_id", sess.UserID,
		"transaction_id", id)

	return s.loadView(sess.UserID)
}

// DeleteTransaction removes an entry by id and returns the refreshed ledger.
// Deleting an entry that no longer exists is a success.
func (s *ledgerService) DeleteTransaction(sess session.Session, id uuid.UUID) (*LedgerView, error) {
	if !sess.Valid() {
		return nil, session.ErrNoSession
	}

	if err := s.ledgerRepo.Delete(sess.UserID, id); err != nil {
		s.metrics.RecordLedgerOperation("delete", "failed")
		slog.Error("failed to delete transaction",
			"user_id", sess.UserID,
			"transaction_id", id,
			"error", err)
		return nil, fmt.Errorf("failed to delete transaction: %w", err)
	}

	s.metrics.RecordLedgerOperation("delete", "ok")
	slog.Info("transaction deleted",
		"user_id", sess.UserID,
		"transaction_id", id)

	return s.loadView(sess.UserID)
}

func (s *ledgerService) buildTransaction(userID uuid.UUID, input TransactionInput) *models.Transaction {
	currency := input.Currency
	if currency == "" {
		currency = s.baseCurrency
	}

	return &models.Transaction{
		UserID:      userID,
		Type:        input.Type,
		Amount:      input.Amount,
		Category:    input.Category,
		Date:        input.Date,
		Currency:    currency,
		Description: input.Description,
	}
}

// loadView re-reads the whole ledger and recomputes its balance. Mutations
// deliberately pay this cost instead of patching local state: the returned
// view always matches what the store persisted.
func (s *ledgerService) loadView(userID uuid.UUID) (*LedgerView, error) {
	transactions, err := s.ledgerRepo.GetAll(userID)
	if err != nil {
		slog.Error("failed to load ledger",
			"user_id", userID,
			"error", err)
		return nil, fmt.Errorf("failed to load ledger: %w", err)
	}

	return &LedgerView{
		Transactions: transactions,
		Balance:      Balance(transactions),
	}, nil
}
