package repositories

import (
	"time"

	"finledger/internal/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=repository_mocks/mocks.go -package=repository_mocks

// LedgerRepositoryInterface defines the contract for the transaction store.
// Every operation is scoped to an owning user; records of other users are
// never visible through any of these methods.
type LedgerRepositoryInterface interface {
	// GetAll returns every transaction owned by userID. Callers must treat
	// the order as unspecified. An empty ledger yields an empty slice, not
	// an error.
	GetAll(userID uuid.UUID) ([]models.Transaction, error)

	// GetByDateRange returns transactions whose date falls inside the whole
	// calendar days [start, end], ascending by date. An inverted range
	// yields an empty slice.
	GetByDateRange(userID uuid.UUID, start, end time.Time) ([]models.Transaction, error)

	// GetWithFilters returns transactions matching the given filters,
	// newest first, plus the total match count.
	GetWithFilters(filters models.LedgerFilters) ([]models.Transaction, int64, error)

	// Insert persists a new transaction, assigning its ID and creation time.
	Insert(transaction *models.Transaction) error

	// Update replaces the mutable fields of the record addressed by
	// (userID, transaction.ID). Returns ErrTransactionNotFound when no such
	// record exists.
	Update(userID uuid.UUID, transaction *models.Transaction) error

	// Delete removes the record addressed by (userID, id). Deleting a
	// missing record is a no-op success.
	Delete(userID uuid.UUID, id uuid.UUID) error
}

// UserRepositoryInterface defines the contract for user storage
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	UpdateStatus(id uuid.UUID, status string) error
}
