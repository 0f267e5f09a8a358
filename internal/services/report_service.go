package services

import (
	"fmt"
	"log/slog"
	"time"

	"finledger/internal/models"
	"finledger/internal/repositories"
	"finledger/internal/session"

	"github.com/shopspring/decimal"
)

type reportService struct {
	ledgerRepo repositories.LedgerRepositoryInterface
	formatter  *CurrencyFormatter
	metrics    MetricsRecorderInterface
}

// NewReportService creates the date-bounded report aggregator
func NewReportService(
	ledgerRepo repositories.LedgerRepositoryInterface,
	formatter *CurrencyFormatter,
	metrics MetricsRecorderInterface,
) ReportServiceInterface {
	return &reportService{
		ledgerRepo: ledgerRepo,
		formatter:  formatter,
		metrics:    metrics,
	}
}

// BuildReport aggregates the caller's transactions dated within [start, end]
// (whole calendar days, both endpoints included).
//
// The headline totals sum raw amounts without regard to currency — the
// historical behavior of the product, kept as an explicit policy. The
// per-currency decomposition in TotalsByCurrency makes any mixing visible.
func (s *reportService) BuildReport(sess session.Session, start, end time.Time) (*models.LedgerReport, error) {
	if !sess.Valid() {
		return nil, session.ErrNoSession
	}

	began := time.Now()

	transactions, err := s.ledgerRepo.GetByDateRange(sess.UserID, start, end)
	if err != nil {
		slog.Error("failed to fetch transactions for report",
			"user_id", sess.UserID,
			"error", err)
		return nil, fmt.Errorf("failed to fetch transactions: %w", err)
	}

	report := &models.LedgerReport{
		StartDate:        start,
		EndDate:          end,
		TotalIncome:      SumByType(transactions, models.TransactionTypeIncome),
		TotalExpense:     SumByType(transactions, models.TransactionTypeExpense),
		TotalsByCurrency: s.totalsByCurrency(transactions),
		Entries:          s.buildEntries(transactions),
		GeneratedAt:      time.Now().UTC(),
	}
	report.NetBalance = report.TotalIncome.Sub(report.TotalExpense)

	s.metrics.ObserveReportDuration(time.Since(began))
	slog.Info("report generated",
		"user_id", sess.UserID,
		"entries", len(report.Entries),
		"net_balance", report.NetBalance.String())

	return report, nil
}

func (s *reportService) buildEntries(transactions []models.Transaction) []models.ReportEntry {
	entries := make([]models.ReportEntry, 0, len(transactions))
	for _, t := range transactions {
		entries = append(entries, models.ReportEntry{
			Transaction:   t,
			DisplayAmount: s.formatter.Format(t.Amount, t.Currency),
		})
	}
	return entries
}

func (s *reportService) totalsByCurrency(transactions []models.Transaction) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal)
	for _, t := range transactions {
		code := t.Currency
		if code == "" {
			code = s.formatter.BaseCurrency()
		}
		totals[code] = totals[code].Add(t.SignedAmount())
	}
	return totals
}
