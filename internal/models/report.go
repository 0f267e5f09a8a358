package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReportEntry is a transaction as it appears in a report, with its amount
// rendered under the transaction's own currency.
type ReportEntry struct {
	Transaction
	DisplayAmount string `json:"display_amount"`
}

// LedgerReport summarizes a date-bounded slice of a user's ledger.
//
// TotalIncome, TotalExpense and NetBalance are currency-naive sums of the raw
// amounts, matching the historical behavior of the product. TotalsByCurrency
// carries the per-currency decomposition so the mixing is visible to callers.
type LedgerReport struct {
	StartDate        time.Time                  `json:"start_date"`
	EndDate          time.Time                  `json:"end_date"`
	TotalIncome      decimal.Decimal            `json:"total_income"`
	TotalExpense     decimal.Decimal            `json:"total_expense"`
	NetBalance       decimal.Decimal            `json:"net_balance"`
	TotalsByCurrency map[string]decimal.Decimal `json:"totals_by_currency"`
	Entries          []ReportEntry              `json:"entries"`
	GeneratedAt      time.Time                  `json:"generated_at"`
}
