package repositories

import (
	"errors"
	"fmt"
	"time"

	"finledger/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrStoreUnavailable    = errors.New("transaction store unavailable")
	ErrWriteFailed         = errors.New("transaction store write failed")
)

// ledgerRepository implements LedgerRepositoryInterface on gorm
type ledgerRepository struct {
	db *gorm.DB
}

// NewLedgerRepository creates a new ledger repository
func NewLedgerRepository(db *gorm.DB) LedgerRepositoryInterface {
	return &ledgerRepository{
		db: db,
	}
}

// GetAll retrieves every transaction owned by userID, newest first.
// Callers must not rely on the order.
func (r *ledgerRepository) GetAll(userID uuid.UUID) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.Where("user_id = ?", userID).
		Order("date DESC").
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return transactions, nil
}

// GetByDateRange retrieves transactions dated within the inclusive calendar-day
// window [start, end], ascending by date. start and end are normalized to the
// first and last instant of their UTC days; an inverted range is empty.
func (r *ledgerRepository) GetByDateRange(userID uuid.UUID, start, end time.Time) ([]models.Transaction, error) {
	from := startOfDay(start)
	to := endOfDay(end)

	if from.After(to) {
		return []models.Transaction{}, nil
	}

	var transactions []models.Transaction
	if err := r.db.Where("user_id = ? AND date BETWEEN ? AND ?", userID, from, to).
		Order("date ASC").
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return transactions, nil
}

// GetWithFilters retrieves transactions matching multiple filters, newest first
func (r *ledgerRepository) GetWithFilters(filters models.LedgerFilters) ([]models.Transaction, int64, error) {
	var transactions []models.Transaction
	var total int64

	query := r.db.Model(&models.Transaction{}).
		Where("user_id = ?", filters.UserID)

	if filters.StartDate != nil {
		query = query.Where("date >= ?", startOfDay(*filters.StartDate))
	}
	if filters.EndDate != nil {
		query = query.Where("date <= ?", endOfDay(*filters.EndDate))
	}
	if filters.Type != "" {
		query = query.Where("type = ?", filters.Type)
	}
	if filters.Category != "" {
		query = query.Where("category = ?", filters.Category)
	}
	if filters.Currency != "" {
		query = query.Where("currency = ?", filters.Currency)
	}
	if filters.MinAmount != nil {
		query = query.Where("amount >= ?", *filters.MinAmount)
	}
	if filters.MaxAmount != nil {
		query = query.Where("amount <= ?", *filters.MaxAmount)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	if filters.Limit > 0 {
		query = query.Offset(filters.Offset).Limit(filters.Limit)
	}

	if err := query.Order("date DESC").Find(&transactions).Error; err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	return transactions, total, nil
}

// Insert persists a new transaction. The ID and CreatedAt are assigned by the
// model's BeforeCreate hook.
func (r *ledgerRepository) Insert(transaction *models.Transaction) error {
	if transaction == nil {
		return fmt.Errorf("%w: transaction cannot be nil", ErrWriteFailed)
	}
	if err := r.db.Create(transaction).Error; err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	return nil
}

// Update replaces the mutable fields of an existing record. ID, UserID and
// CreatedAt are never touched.
func (r *ledgerRepository) Update(userID uuid.UUID, transaction *models.Transaction) error {
	if transaction == nil {
		return fmt.Errorf("%w: transaction cannot be nil", ErrWriteFailed)
	}

	result := r.db.Model(&models.Transaction{}).
		Where("user_id = ? AND id = ?", userID, transaction.ID).
		Updates(map[string]interface{}{
			"type":        transaction.Type,
			"amount":      transaction.Amount,
			"category":    transaction.Category,
			"date":        transaction.Date,
			"currency":    transaction.Currency,
			"description": transaction.Description,
		})

	if result.Error != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailed, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}

// Delete removes the record addressed by (userID, id). A missing record is a
// no-op success so that delete stays idempotent.
func (r *ledgerRepository) Delete(userID uuid.UUID, id uuid.UUID) error {
	result := r.db.Where("user_id = ? AND id = ?", userID, id).
		Delete(&models.Transaction{})

	if result.Error != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailed, result.Error)
	}
	return nil
}

func startOfDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

func endOfDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 23, 59, 59, 999999999, time.UTC)
}
