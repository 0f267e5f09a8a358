package handlers

import (
	stderrors "errors"
	"net/http"

	"finledger/internal/dto"
	"finledger/internal/errors"
	"finledger/internal/models"
	"finledger/internal/repositories"
	"finledger/internal/services"
	"finledger/internal/validation"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

const (
	defaultPageLimit = 50
	maxPageLimit     = 200
)

// LedgerHandler handles transaction CRUD and listing requests
type LedgerHandler struct {
	ledgerService services.LedgerServiceInterface
	ledgerRepo    repositories.LedgerRepositoryInterface
}

// NewLedgerHandler creates a new ledger handler
func NewLedgerHandler(
	ledgerService services.LedgerServiceInterface,
	ledgerRepo repositories.LedgerRepositoryInterface,
) *LedgerHandler {
	return &LedgerHandler{
		ledgerService: ledgerService,
		ledgerRepo:    ledgerRepo,
	}
}

// GetLedger returns the caller's full ledger with its net balance
func (h *LedgerHandler) GetLedger(c echo.Context) error {
	sess, err := getSession(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	view, err := h.ledgerService.GetLedger(sess)
	if err != nil {
		return h.sendLedgerError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: view})
}

// GetCategories returns the category catalogs accepted for ledger entries.
// An optional type query narrows the response to a single catalog.
func (h *LedgerHandler) GetCategories(c echo.Context) error {
	if _, err := getSession(c); err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	catalog := dto.CategoryCatalogResponse{
		Income:  models.IncomeCategories,
		Expense: models.ExpenseCategories,
	}

	if t := c.QueryParam("type"); t != "" {
		categories := models.CategoriesForType(t)
		if categories == nil {
			return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("type must be income or expense"))
		}
		catalog = dto.CategoryCatalogResponse{}
		switch t {
		case models.TransactionTypeIncome:
			catalog.Income = categories
		case models.TransactionTypeExpense:
			catalog.Expense = categories
		}
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: catalog})
}

// ListTransactions returns transactions matching optional filters
func (h *LedgerHandler) ListTransactions(c echo.Context) error {
	sess, err := getSession(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var query dto.LedgerQuery
	if err := c.Bind(&query); err != nil {
		return SendError(c, errors.ValidationInvalidFormat)
	}

	filters := models.LedgerFilters{
		UserID:   sess.UserID,
		Type:     query.Type,
		Category: query.Category,
		Currency: query.Currency,
		Offset:   query.Offset,
		Limit:    normalizeLimit(query.Limit),
	}

	if query.StartDate != "" {
		start, err := parseDate(query.StartDate)
		if err != nil {
			return SendError(c, errors.ValidationInvalidDate, errors.WithDetails("start_date must be YYYY-MM-DD"))
		}
		filters.StartDate = &start
	}
	if query.EndDate != "" {
		end, err := parseDate(query.EndDate)
		if err != nil {
			return SendError(c, errors.ValidationInvalidDate, errors.WithDetails("end_date must be YYYY-MM-DD"))
		}
		filters.EndDate = &end
	}

	transactions, total, err := h.ledgerRepo.GetWithFilters(filters)
	if err != nil {
		return h.sendLedgerError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: map[string]interface{}{
			"transactions": transactions,
			"total":        total,
		},
	})
}

// CreateTransaction validates and records a new ledger entry, responding
// with the refreshed ledger
func (h *LedgerHandler) CreateTransaction(c echo.Context) error {
	sess, err := getSession(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	input, errResp := h.bindTransactionInput(c)
	if errResp != nil {
		return errResp(c)
	}

	view, err := h.ledgerService.CreateTransaction(sess, *input)
	if err != nil {
		return h.sendLedgerError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{Data: view})
}

// UpdateTransaction replaces the mutable fields of an existing entry
func (h *LedgerHandler) UpdateTransaction(c echo.Context) error {
	sess, err := getSession(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid transaction ID"))
	}

	input, errResp := h.bindTransactionInput(c)
	if errResp != nil {
		return errResp(c)
	}

	view, err := h.ledgerService.UpdateTransaction(sess, id, *input)
	if err != nil {
		return h.sendLedgerError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: view})
}

// DeleteTransaction removes an entry by id. Deleting an entry that does not
// exist succeeds, so repeated deletes are safe.
func (h *LedgerHandler) DeleteTransaction(c echo.Context) error {
	sess, err := getSession(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid transaction ID"))
	}

	view, err := h.ledgerService.DeleteTransaction(sess, id)
	if err != nil {
		return h.sendLedgerError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: view})
}

// bindTransactionInput binds and validates the request payload. The second
// return value, when non-nil, is the error responder to invoke.
func (h *LedgerHandler) bindTransactionInput(c echo.Context) (*services.TransactionInput, func(echo.Context) error) {
	var req dto.TransactionRequest
	if err := c.Bind(&req); err != nil {
		return nil, func(c echo.Context) error {
			return SendError(c, errors.ValidationInvalidFormat)
		}
	}

	if err := c.Validate(&req); err != nil {
		fieldErrors := validation.GetValidator().FormatErrors(err)
		return nil, func(c echo.Context) error {
			return SendValidationError(c, fieldErrors)
		}
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil || amount.LessThanOrEqual(decimal.Zero) {
		return nil, func(c echo.Context) error {
			return SendError(c, errors.ValidationInvalidAmount)
		}
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return nil, func(c echo.Context) error {
			return SendError(c, errors.ValidationInvalidDate, errors.WithDetails("date must be YYYY-MM-DD"))
		}
	}

	return &services.TransactionInput{
		Type:        req.Type,
		Amount:      amount,
		Category:    req.Category,
		Date:        date,
		Currency:    req.Currency,
		Description: req.Description,
	}, nil
}

func (h *LedgerHandler) sendLedgerError(c echo.Context, err error) error {
	switch {
	case stderrors.Is(err, repositories.ErrTransactionNotFound):
		return SendError(c, errors.LedgerEntryNotFound)
	case stderrors.Is(err, models.ErrInvalidTransactionType):
		return SendError(c, errors.LedgerInvalidType)
	case stderrors.Is(err, models.ErrInvalidCategory), stderrors.Is(err, models.ErrMissingCategory):
		return SendError(c, errors.LedgerUnknownCategory)
	case stderrors.Is(err, models.ErrInvalidAmount):
		return SendError(c, errors.ValidationInvalidAmount)
	case stderrors.Is(err, models.ErrMissingDate):
		return SendError(c, errors.ValidationInvalidDate)
	case stderrors.Is(err, repositories.ErrStoreUnavailable):
		return SendError(c, errors.StoreUnavailable)
	case stderrors.Is(err, repositories.ErrWriteFailed):
		return SendError(c, errors.StoreWriteFailed)
	default:
		return SendSystemError(c, err)
	}
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return defaultPageLimit
	}
	if limit > maxPageLimit {
		return maxPageLimit
	}
	return limit
}
