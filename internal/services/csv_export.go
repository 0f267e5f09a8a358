package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"finledger/internal/models"
)

// csvHeader matches the column layout of the product's report export.
var csvHeader = []string{"date", "category", "type", "amount", "currency", "description"}

// WriteReportCSV streams a report as CSV. One row per entry, followed by
// summary rows for the three totals. Multi-line descriptions are flattened so
// each record stays on one line regardless of the CSV reader in use.
func WriteReportCSV(w io.Writer, report *models.LedgerReport) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, entry := range report.Entries {
		row := []string{
			entry.Date.Format("2006-01-02"),
			entry.Category,
			entry.Type,
			entry.Amount.StringFixed(2),
			entry.Currency,
			flattenDescription(entry.Description),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	summary := [][]string{
		{"", "", "total_income", report.TotalIncome.StringFixed(2), "", ""},
		{"", "", "total_expense", report.TotalExpense.StringFixed(2), "", ""},
		{"", "", "net_balance", report.NetBalance.StringFixed(2), "", ""},
	}
	for _, row := range summary {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write csv summary: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func flattenDescription(description string) string {
	return strings.Join(strings.Fields(description), " ")
}
