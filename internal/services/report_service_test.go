package services

import (
	"testing"
	"time"

	"finledger/internal/models"
	"finledger/internal/repositories"
	"finledger/internal/repositories/repository_mocks"
	"finledger/internal/session"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// ReportServiceTestSuite defines the test suite for ReportServiceInterface
type ReportServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockLedgerRepo *repository_mocks.MockLedgerRepositoryInterface
	service        ReportServiceInterface
	sess           session.Session
	start          time.Time
	end            time.Time
}

// SetupTest runs before each test
func (s *ReportServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockLedgerRepo = repository_mocks.NewMockLedgerRepositoryInterface(s.ctrl)
	formatter := NewCurrencyFormatter("pt-BR", "BRL")
	s.service = NewReportService(s.mockLedgerRepo, formatter, NoopMetrics{})
	s.sess = session.Session{UserID: uuid.New(), Email: "user@example.com"}
	s.start = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s.end = time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
}

// TearDownTest runs after each test
func (s *ReportServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

// TestReportServiceSuite runs the test suite
func TestReportServiceSuite(t *testing.T) {
	suite.Run(t, new(ReportServiceTestSuite))
}

func (s *ReportServiceTestSuite) expectRange(transactions []models.Transaction) {
	s.mockLedgerRepo.EXPECT().
		GetByDateRange(s.sess.UserID, s.start, s.end).
		Return(transactions, nil)
}

func (s *ReportServiceTestSuite) TestBuildReport_Totals() {
	s.expectRange([]models.Transaction{
		{Type: models.TransactionTypeIncome, Amount: decimal.NewFromInt(1000), Currency: "BRL"},
		{Type: models.TransactionTypeExpense, Amount: decimal.NewFromInt(300), Currency: "BRL"},
		{Type: models.TransactionTypeExpense, Amount: decimal.NewFromInt(200), Currency: "BRL"},
	})

	report, err := s.service.BuildReport(s.sess, s.start, s.end)
	s.Require().NoError(err)

	s.Assert().True(report.TotalIncome.Equal(decimal.NewFromInt(1000)))
	s.Assert().True(report.TotalExpense.Equal(decimal.NewFromInt(500)))
	s.Assert().True(report.NetBalance.Equal(decimal.NewFromInt(500)))
}

func (s *ReportServiceTestSuite) TestBuildReport_EmptySet() {
	s.expectRange([]models.Transaction{})

	report, err := s.service.BuildReport(s.sess, s.start, s.end)
	s.Require().NoError(err)

	s.Assert().True(report.TotalIncome.IsZero())
	s.Assert().True(report.TotalExpense.IsZero())
	s.Assert().True(report.NetBalance.IsZero())
	s.Assert().Empty(report.Entries)
	s.Assert().Empty(report.TotalsByCurrency)
}

// Net balance of a report must match the plain balance reduction over the
// same transaction set.
func (s *ReportServiceTestSuite) TestBuildReport_NetMatchesBalance() {
	transactions := []models.Transaction{
		{Type: models.TransactionTypeIncome, Amount: decimal.NewFromFloat(1234.56)},
		{Type: models.TransactionTypeExpense, Amount: decimal.NewFromFloat(78.90)},
		{Type: models.TransactionTypeIncome, Amount: decimal.NewFromFloat(0.44)},
	}
	s.expectRange(transactions)

	report, err := s.service.BuildReport(s.sess, s.start, s.end)
	s.Require().NoError(err)
	s.Assert().True(report.NetBalance.Equal(Balance(transactions)))
}

// Headline totals are currency-naive on purpose; the per-currency map is
// where mixed ledgers stay coherent.
func (s *ReportServiceTestSuite) TestBuildReport_MixedCurrencies() {
	s.expectRange([]models.Transaction{
		{Type: models.TransactionTypeIncome, Amount: decimal.NewFromInt(100), Currency: "BRL"},
		{Type: models.TransactionTypeIncome, Amount: decimal.NewFromInt(100), Currency: "USD"},
		{Type: models.TransactionTypeExpense, Amount: decimal.NewFromInt(30), Currency: "USD"},
	})

	report, err := s.service.BuildReport(s.sess, s.start, s.end)
	s.Require().NoError(err)

	s.Assert().True(report.TotalIncome.Equal(decimal.NewFromInt(200)))
	s.Assert().True(report.NetBalance.Equal(decimal.NewFromInt(170)))

	s.Require().Len(report.TotalsByCurrency, 2)
	s.Assert().True(report.TotalsByCurrency["BRL"].Equal(decimal.NewFromInt(100)))
	s.Assert().True(report.TotalsByCurrency["USD"].Equal(decimal.NewFromInt(70)))
}

// Entries with no currency code fall back to the base currency for both the
// display value and the per-currency totals.
func (s *ReportServiceTestSuite) TestBuildReport_BaseCurrencyFallback() {
	s.expectRange([]models.Transaction{
		{Type: models.TransactionTypeIncome, Amount: decimal.NewFromInt(50)},
	})

	report, err := s.service.BuildReport(s.sess, s.start, s.end)
	s.Require().NoError(err)

	s.Require().Len(report.Entries, 1)
	s.Assert().Contains(report.Entries[0].DisplayAmount, "50")
	s.Require().Len(report.TotalsByCurrency, 1)
	s.Assert().True(report.TotalsByCurrency["BRL"].Equal(decimal.NewFromInt(50)))
}

func (s *ReportServiceTestSuite) TestBuildReport_StoreUnavailable() {
	s.mockLedgerRepo.EXPECT().
		GetByDateRange(s.sess.UserID, s.start, s.end).
		Return(nil, repositories.ErrStoreUnavailable)

	_, err := s.service.BuildReport(s.sess, s.start, s.end)
	s.Assert().ErrorIs(err, repositories.ErrStoreUnavailable)
}

func (s *ReportServiceTestSuite) TestBuildReport_NoSession() {
	_, err := s.service.BuildReport(session.Session{}, s.start, s.end)
	s.Assert().ErrorIs(err, session.ErrNoSession)
}
