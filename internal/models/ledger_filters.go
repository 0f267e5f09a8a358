package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LedgerFilters contains filtering options for ledger queries
type LedgerFilters struct {
	UserID    uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
	Type      string
	Category  string
	Currency  string
	MinAmount *decimal.Decimal
	MaxAmount *decimal.Decimal
	Offset    int
	Limit     int
}
