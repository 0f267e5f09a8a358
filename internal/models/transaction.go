package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	TransactionTypeIncome  = "income"
	TransactionTypeExpense = "expense"
)

var (
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrInvalidAmount          = errors.New("transaction amount must be positive")
	ErrMissingCategory        = errors.New("transaction category is required")
	ErrInvalidCategory        = errors.New("unknown category for transaction type")
	ErrMissingDate            = errors.New("transaction date is required")
	ErrMissingUserID          = errors.New("transaction user ID is required")
)

// Transaction is a single ledger entry. Amounts are always stored positive;
// the sign of the contribution to a balance is derived from Type.
type Transaction struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Type        string          `gorm:"type:varchar(10);not null" json:"type"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Category    string          `gorm:"type:varchar(50);not null" json:"category"`
	Date        time.Time       `gorm:"not null;index" json:"date"`
	Currency    string          `gorm:"type:varchar(3)" json:"currency,omitempty"`
	Description string          `gorm:"type:text" json:"description,omitempty"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	// Set timestamp if not already set (for tests)
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}

	return t.Validate()
}

// Validate validates the transaction fields
func (t *Transaction) Validate() error {
	if t.UserID == uuid.Nil {
		return ErrMissingUserID
	}

	if !IsValidTransactionType(t.Type) {
		return ErrInvalidTransactionType
	}

	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	if t.Category == "" {
		return ErrMissingCategory
	}

	if !IsValidCategory(t.Type, t.Category) {
		return ErrInvalidCategory
	}

	if t.Date.IsZero() {
		return ErrMissingDate
	}

	return nil
}

// IsIncome returns true if the transaction adds to the balance
func (t *Transaction) IsIncome() bool {
	return t.Type == TransactionTypeIncome
}

// SignedAmount returns the amount with the sign implied by the type
func (t *Transaction) SignedAmount() decimal.Decimal {
	if t.IsIncome() {
		return t.Amount
	}
	return t.Amount.Neg()
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "transactions"
}

// IsValidTransactionType checks if the transaction type is valid
func IsValidTransactionType(transactionType string) bool {
	switch transactionType {
	case TransactionTypeIncome, TransactionTypeExpense:
		return true
	default:
		return false
	}
}
