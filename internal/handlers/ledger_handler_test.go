package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"finledger/internal/dto"
	"finledger/internal/errors"
	"finledger/internal/models"
	"finledger/internal/repositories"
	"finledger/internal/repositories/repository_mocks"
	"finledger/internal/services"
	"finledger/internal/services/service_mocks"
	"finledger/internal/session"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// LedgerHandlerSuite defines the test suite for LedgerHandler
type LedgerHandlerSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *service_mocks.MockLedgerServiceInterface
	mockRepo    *repository_mocks.MockLedgerRepositoryInterface
	handler     *LedgerHandler
	echo        *echo.Echo
	sess        session.Session
}

// SetupTest runs before each test in the suite
func (s *LedgerHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = service_mocks.NewMockLedgerServiceInterface(s.ctrl)
	s.mockRepo = repository_mocks.NewMockLedgerRepositoryInterface(s.ctrl)
	s.handler = NewLedgerHandler(s.mockService, s.mockRepo)

	s.echo = echo.New()
	s.echo.Validator = NewValidator()

	s.sess = session.Session{UserID: uuid.New(), Email: "user@example.com"}
}

// TearDownTest runs after each test in the suite
func (s *LedgerHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

// TestLedgerHandlerSuite runs the test suite
func TestLedgerHandlerSuite(t *testing.T) {
	suite.Run(t, new(LedgerHandlerSuite))
}

// Helper to create an authenticated test context
func (s *LedgerHandlerSuite) createContext(method, path string, body interface{}) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewBuffer(jsonBody))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set(SessionContextKey, s.sess)

	return c, rec
}

func (s *LedgerHandlerSuite) errorCode(rec *httptest.ResponseRecorder) string {
	var response errors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	return response.Error.Code
}

func (s *LedgerHandlerSuite) validRequest() dto.TransactionRequest {
	return dto.TransactionRequest{
		Type:        "expense",
		Amount:      "300.00",
		Category:    "supermarket",
		Date:        "2024-03-15",
		Currency:    "BRL",
		Description: "groceries",
	}
}

func (s *LedgerHandlerSuite) TestGetLedger_Success() {
	view := &services.LedgerView{
		Transactions: []models.Transaction{{ID: uuid.New()}},
		Balance:      decimal.NewFromInt(500),
	}
	s.mockService.EXPECT().GetLedger(s.sess).Return(view, nil)

	c, rec := s.createContext(http.MethodGet, "/api/v1/ledger", nil)
	s.Require().NoError(s.handler.GetLedger(c))

	s.Assert().Equal(http.StatusOK, rec.Code)

	var response SuccessResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Assert().NotNil(response.Data)
}

func (s *LedgerHandlerSuite) TestGetLedger_Unauthenticated() {
	c, rec := s.createContext(http.MethodGet, "/api/v1/ledger", nil)
	c.Set(SessionContextKey, nil)

	s.Require().NoError(s.handler.GetLedger(c))

	s.Assert().Equal(http.StatusUnauthorized, rec.Code)
	s.Assert().Equal(string(errors.AuthMissingToken), s.errorCode(rec))
}

func (s *LedgerHandlerSuite) TestGetLedger_StoreUnavailable() {
	s.mockService.EXPECT().GetLedger(s.sess).Return(nil, repositories.ErrStoreUnavailable)

	c, rec := s.createContext(http.MethodGet, "/api/v1/ledger", nil)
	s.Require().NoError(s.handler.GetLedger(c))

	s.Assert().Equal(http.StatusServiceUnavailable, rec.Code)
	s.Assert().Equal(string(errors.StoreUnavailable), s.errorCode(rec))
}

func (s *LedgerHandlerSuite) TestGetCategories_FullCatalog() {
	c, rec := s.createContext(http.MethodGet, "/api/v1/ledger/categories", nil)
	s.Require().NoError(s.handler.GetCategories(c))

	s.Assert().Equal(http.StatusOK, rec.Code)

	var response struct {
		Data dto.CategoryCatalogResponse `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Assert().Equal(models.IncomeCategories, response.Data.Income)
	s.Assert().Equal(models.ExpenseCategories, response.Data.Expense)
}

func (s *LedgerHandlerSuite) TestGetCategories_FilteredByType() {
	c, rec := s.createContext(http.MethodGet, "/api/v1/ledger/categories?type=income", nil)
	s.Require().NoError(s.handler.GetCategories(c))

	s.Assert().Equal(http.StatusOK, rec.Code)

	var response struct {
		Data dto.CategoryCatalogResponse `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Assert().Equal(models.IncomeCategories, response.Data.Income)
	s.Assert().Empty(response.Data.Expense)
}

func (s *LedgerHandlerSuite) TestGetCategories_UnknownType() {
	c, rec := s.createContext(http.MethodGet, "/api/v1/ledger/categories?type=transfer", nil)
	s.Require().NoError(s.handler.GetCategories(c))

	s.Assert().Equal(http.StatusBadRequest, rec.Code)
	s.Assert().Equal(string(errors.ValidationInvalidFormat), s.errorCode(rec))
}

func (s *LedgerHandlerSuite) TestGetCategories_Unauthenticated() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/ledger/categories", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.Require().NoError(s.handler.GetCategories(c))
	s.Assert().Equal(http.StatusUnauthorized, rec.Code)
}

func (s *LedgerHandlerSuite) TestCreateTransaction_Success() {
	view := &services.LedgerView{Balance: decimal.NewFromInt(700)}
	s.mockService.EXPECT().
		CreateTransaction(s.sess, gomock.Any()).
		DoAndReturn(func(_ session.Session, input services.TransactionInput) (*services.LedgerView, error) {
			s.Assert().Equal("expense", input.Type)
			s.Assert().True(input.Amount.Equal(decimal.NewFromInt(300)))
			s.Assert().Equal("supermarket", input.Category)
			s.Assert().Equal(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), input.Date)
			return view, nil
		})

	c, rec := s.createContext(http.MethodPost, "/api/v1/ledger/transactions", s.validRequest())
	s.Require().NoError(s.handler.CreateTransaction(c))

	s.Assert().Equal(http.StatusCreated, rec.Code)
}

func (s *LedgerHandlerSuite) TestCreateTransaction_NegativeAmount() {
	req := s.validRequest()
	req.Amount = "-50.00"

	c, rec := s.createContext(http.MethodPost, "/api/v1/ledger/transactions", req)
	s.Require().NoError(s.handler.CreateTransaction(c))

	s.Assert().Equal(http.StatusBadRequest, rec.Code)
	s.Assert().Equal(string(errors.ValidationGeneral), s.errorCode(rec))
}

func (s *LedgerHandlerSuite) TestCreateTransaction_MissingFields() {
	req := s.validRequest()
	req.Category = ""
	req.Date = ""

	c, rec := s.createContext(http.MethodPost, "/api/v1/ledger/transactions", req)
	s.Require().NoError(s.handler.CreateTransaction(c))

	s.Assert().Equal(http.StatusBadRequest, rec.Code)
	s.Assert().Equal(string(errors.ValidationGeneral), s.errorCode(rec))
}

func (s *LedgerHandlerSuite) TestCreateTransaction_BadDate() {
	req := s.validRequest()
	req.Date = "15/03/2024"

	c, rec := s.createContext(http.MethodPost, "/api/v1/ledger/transactions", req)
	s.Require().NoError(s.handler.CreateTransaction(c))

	s.Assert().Equal(http.StatusBadRequest, rec.Code)
	s.Assert().Equal(string(errors.ValidationInvalidDate), s.errorCode(rec))
}

func (s *LedgerHandlerSuite) TestUpdateTransaction_Success() {
	id := uuid.New()
	view := &services.LedgerView{Balance: decimal.NewFromInt(100)}
	s.mockService.EXPECT().
		UpdateTransaction(s.sess, id, gomock.Any()).
		Return(view, nil)

	c, rec := s.createContext(http.MethodPut, "/api/v1/ledger/transactions/"+id.String(), s.validRequest())
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	s.Require().NoError(s.handler.UpdateTransaction(c))
	s.Assert().Equal(http.StatusOK, rec.Code)
}

func (s *LedgerHandlerSuite) TestUpdateTransaction_NotFound() {
	id := uuid.New()
	s.mockService.EXPECT().
		UpdateTransaction(s.sess, id, gomock.Any()).
		Return(nil, repositories.ErrTransactionNotFound)

	c, rec := s.createContext(http.MethodPut, "/api/v1/ledger/transactions/"+id.String(), s.validRequest())
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	s.Require().NoError(s.handler.UpdateTransaction(c))

	s.Assert().Equal(http.StatusNotFound, rec.Code)
	s.Assert().Equal(string(errors.LedgerEntryNotFound), s.errorCode(rec))
}

func (s *LedgerHandlerSuite) TestUpdateTransaction_MalformedID() {
	c, rec := s.createContext(http.MethodPut, "/api/v1/ledger/transactions/not-a-uuid", s.validRequest())
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	s.Require().NoError(s.handler.UpdateTransaction(c))

	s.Assert().Equal(http.StatusBadRequest, rec.Code)
	s.Assert().Equal(string(errors.ValidationInvalidFormat), s.errorCode(rec))
}

func (s *LedgerHandlerSuite) TestDeleteTransaction_Success() {
	id := uuid.New()
	view := &services.LedgerView{Balance: decimal.Zero}
	s.mockService.EXPECT().DeleteTransaction(s.sess, id).Return(view, nil)

	c, rec := s.createContext(http.MethodDelete, "/api/v1/ledger/transactions/"+id.String(), nil)
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	s.Require().NoError(s.handler.DeleteTransaction(c))
	s.Assert().Equal(http.StatusOK, rec.Code)
}

func (s *LedgerHandlerSuite) TestDeleteTransaction_WriteFailed() {
	id := uuid.New()
	s.mockService.EXPECT().
		DeleteTransaction(s.sess, id).
		Return(nil, repositories.ErrWriteFailed)

	c, rec := s.createContext(http.MethodDelete, "/api/v1/ledger/transactions/"+id.String(), nil)
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	s.Require().NoError(s.handler.DeleteTransaction(c))

	s.Assert().Equal(http.StatusServiceUnavailable, rec.Code)
	s.Assert().Equal(string(errors.StoreWriteFailed), s.errorCode(rec))
}

func (s *LedgerHandlerSuite) TestListTransactions_PassesFilters() {
	s.mockRepo.EXPECT().
		GetWithFilters(gomock.Any()).
		DoAndReturn(func(filters models.LedgerFilters) ([]models.Transaction, int64, error) {
			s.Assert().Equal(s.sess.UserID, filters.UserID)
			s.Assert().Equal("expense", filters.Type)
			s.Assert().Equal(defaultPageLimit, filters.Limit)
			s.Require().NotNil(filters.StartDate)
			s.Assert().Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), *filters.StartDate)
			return []models.Transaction{}, 0, nil
		})

	c, rec := s.createContext(http.MethodGet, "/api/v1/ledger/transactions?type=expense&start_date=2024-01-01", nil)
	s.Require().NoError(s.handler.ListTransactions(c))

	s.Assert().Equal(http.StatusOK, rec.Code)
}

func (s *LedgerHandlerSuite) TestListTransactions_LimitClamped() {
	s.mockRepo.EXPECT().
		GetWithFilters(gomock.Any()).
		DoAndReturn(func(filters models.LedgerFilters) ([]models.Transaction, int64, error) {
			s.Assert().Equal(maxPageLimit, filters.Limit)
			return []models.Transaction{}, 0, nil
		})

	c, rec := s.createContext(http.MethodGet, "/api/v1/ledger/transactions?limit=9999", nil)
	s.Require().NoError(s.handler.ListTransactions(c))

	s.Assert().Equal(http.StatusOK, rec.Code)
}

func (s *LedgerHandlerSuite) TestListTransactions_BadStartDate() {
	c, rec := s.createContext(http.MethodGet, "/api/v1/ledger/transactions?start_date=01-01-2024", nil)
	s.Require().NoError(s.handler.ListTransactions(c))

	s.Assert().Equal(http.StatusBadRequest, rec.Code)
	s.Assert().Equal(string(errors.ValidationInvalidDate), s.errorCode(rec))
}
