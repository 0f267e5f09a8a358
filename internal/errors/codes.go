package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthInvalidCredentials ErrorCode = "AUTH_001"
	AuthMissingToken       ErrorCode = "AUTH_002"
	AuthExpiredToken       ErrorCode = "AUTH_003"
	AuthInvalidTokenFormat ErrorCode = "AUTH_004"
	AuthAccountPending     ErrorCode = "AUTH_005"
	AuthEmailTaken         ErrorCode = "AUTH_006"
	AuthUserNotFound       ErrorCode = "AUTH_007"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationInvalidAmount ErrorCode = "VALIDATION_004"
	ValidationInvalidDate   ErrorCode = "VALIDATION_005"
)

// Ledger error codes (LEDGER_*)
const (
	LedgerEntryNotFound    ErrorCode = "LEDGER_001"
	LedgerInvalidType      ErrorCode = "LEDGER_002"
	LedgerUnknownCategory  ErrorCode = "LEDGER_003"
	LedgerInvalidDateRange ErrorCode = "LEDGER_004"
)

// Store error codes (STORE_*)
const (
	StoreUnavailable ErrorCode = "STORE_001"
	StoreWriteFailed ErrorCode = "STORE_002"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError     ErrorCode = "SYSTEM_001"
	SystemRateLimitExceeded ErrorCode = "SYSTEM_002"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	AuthInvalidCredentials: "Invalid email or password",
	AuthMissingToken:       "Authorization token is required",
	AuthExpiredToken:       "Authorization token has expired",
	AuthInvalidTokenFormat: "Invalid authorization token format",
	AuthAccountPending:     "Account is awaiting approval",
	AuthEmailTaken:         "An account with this email already exists",
	AuthUserNotFound:       "User not found",

	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationInvalidAmount: "Amount must be a positive number",
	ValidationInvalidDate:   "Invalid date format or range",

	LedgerEntryNotFound:    "Ledger entry not found",
	LedgerInvalidType:      "Transaction type must be income or expense",
	LedgerUnknownCategory:  "Unknown category for this transaction type",
	LedgerInvalidDateRange: "Invalid report date range",

	StoreUnavailable: "Ledger store is temporarily unreachable. Please retry",
	StoreWriteFailed: "Ledger store rejected the write",

	SystemInternalError:     "An unexpected error occurred. Please contact support with trace ID",
	SystemRateLimitExceeded: "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for a given error code.
// Unknown codes fall back to a generic message.
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
