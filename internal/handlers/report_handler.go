package handlers

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"time"

	"finledger/internal/dto"
	"finledger/internal/errors"
	"finledger/internal/repositories"
	"finledger/internal/services"

	"github.com/labstack/echo/v4"
)

// reportEpoch is the default lower bound when no start date is given.
// Matches the earliest date the product's report screen ever queried.
var reportEpoch = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// ReportHandler handles report and export requests
type ReportHandler struct {
	reportService services.ReportServiceInterface
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService services.ReportServiceInterface) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

// GetReport returns totals and per-transaction display values for a
// date-bounded slice of the caller's ledger
func (h *ReportHandler) GetReport(c echo.Context) error {
	sess, err := getSession(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	start, end, errResp := h.parseRange(c)
	if errResp != nil {
		return errResp(c)
	}

	report, err := h.reportService.BuildReport(sess, start, end)
	if err != nil {
		return h.sendReportError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: report})
}

// ExportReportCSV streams the same report as a CSV attachment
func (h *ReportHandler) ExportReportCSV(c echo.Context) error {
	sess, err := getSession(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	start, end, errResp := h.parseRange(c)
	if errResp != nil {
		return errResp(c)
	}

	report, err := h.reportService.BuildReport(sess, start, end)
	if err != nil {
		return h.sendReportError(c, err)
	}

	filename := fmt.Sprintf("ledger-%s-to-%s.csv",
		start.Format(dateLayout), end.Format(dateLayout))

	c.Response().Header().Set(echo.HeaderContentType, "text/csv; charset=utf-8")
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename=%q`, filename))
	c.Response().WriteHeader(http.StatusOK)

	return services.WriteReportCSV(c.Response(), report)
}

// parseRange reads the optional start/end query dates. The second return
// value, when non-nil, is the error responder to invoke.
func (h *ReportHandler) parseRange(c echo.Context) (time.Time, time.Time, func(echo.Context) error) {
	var query dto.ReportQuery
	if err := c.Bind(&query); err != nil {
		return time.Time{}, time.Time{}, func(c echo.Context) error {
			return SendError(c, errors.ValidationInvalidFormat)
		}
	}

	start := reportEpoch
	if query.StartDate != "" {
		parsed, err := parseDate(query.StartDate)
		if err != nil {
			return time.Time{}, time.Time{}, func(c echo.Context) error {
				return SendError(c, errors.ValidationInvalidDate, errors.WithDetails("start_date must be YYYY-MM-DD"))
			}
		}
		start = parsed
	}

	end := time.Now().UTC()
	if query.EndDate != "" {
		parsed, err := parseDate(query.EndDate)
		if err != nil {
			return time.Time{}, time.Time{}, func(c echo.Context) error {
				return SendError(c, errors.ValidationInvalidDate, errors.WithDetails("end_date must be YYYY-MM-DD"))
			}
		}
		end = parsed
	}

	return start, end, nil
}

func (h *ReportHandler) sendReportError(c echo.Context, err error) error {
	switch {
	case stderrors.Is(err, repositories.ErrStoreUnavailable):
		return SendError(c, errors.StoreUnavailable)
	default:
		return SendSystemError(c, err)
	}
}
