package handlers

import (
	"log/slog"

	"finledger/internal/errors"

	"github.com/labstack/echo/v4"
)

// All handlers report failures through SendError (client and business
// errors) or SendSystemError (internal errors); neither exposes internal
// detail to the client beyond the registered code and message.

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
	// SessionContextKey is the context key for the authenticated session
	SessionContextKey = "session"
)

// SuccessResponse represents a standard success response
type SuccessResponse struct {
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

// getTraceID extracts the trace ID from the Echo context
func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError sends a standardized error response for the given code
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	response := errors.NewErrorResponse(code, getTraceID(c), opts...)
	return c.JSON(errors.GetHTTPStatus(code), response)
}

// SendValidationError sends a field-level validation error response
func SendValidationError(c echo.Context, fieldErrors map[string]string) error {
	response := errors.NewValidationError(fieldErrors, getTraceID(c))
	return c.JSON(errors.GetHTTPStatus(errors.ValidationGeneral), response)
}

// SendSystemError logs the internal error and sends a generic response that
// carries only the trace ID
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	slog.Error("internal error",
		"trace_id", traceID,
		"path", c.Request().URL.Path,
		"error", err)

	response := errors.NewErrorResponse(errors.SystemInternalError, traceID)
	return c.JSON(errors.GetHTTPStatus(errors.SystemInternalError), response)
}
