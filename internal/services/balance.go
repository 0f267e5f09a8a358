package services

import (
	"finledger/internal/models"

	"github.com/shopspring/decimal"
)

// Balance reduces a sequence of transactions to its signed net total:
// income amounts add, expense amounts subtract. Decimal arithmetic keeps the
// result exact regardless of how many entries are summed or in what order.
// An empty sequence yields zero.
func Balance(transactions []models.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, t := range transactions {
		total = total.Add(t.SignedAmount())
	}
	return total
}

// SumByType returns the plain sum of amounts for entries of the given type
func SumByType(transactions []models.Transaction, transactionType string) decimal.Decimal {
	total := decimal.Zero
	for _, t := range transactions {
		if t.Type == transactionType {
			total = total.Add(t.Amount)
		}
	}
	return total
}
