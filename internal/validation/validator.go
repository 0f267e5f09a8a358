package validation

import (
	"reflect"
	"regexp"
	"strings"

	"finledger/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Validator wraps the go-playground validator with ledger-specific rules
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("transaction_type", validateTransactionType)
	_ = v.RegisterValidation("ledger_category", validateLedgerCategory)
	_ = v.RegisterValidation("positive_amount", validatePositiveAmount)
	_ = v.RegisterValidation("currency_code", validateCurrencyCode)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Struct validates a struct and returns the raw validator error
func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatErrors turns validator errors into a field -> message map suitable
// for an error response
func (v *Validator) FormatErrors(err error) map[string]string {
	fieldErrors := make(map[string]string)

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		fieldErrors["request"] = err.Error()
		return fieldErrors
	}

	for _, fe := range validationErrors {
		fieldErrors[fe.Field()] = messageForTag(fe)
	}
	return fieldErrors
}

func messageForTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "transaction_type":
		return "must be income or expense"
	case "ledger_category":
		return "is not a known category"
	case "positive_amount":
		return "must be a positive number"
	case "currency_code":
		return "must be a three-letter ISO currency code"
	case "email":
		return "must be a valid email address"
	default:
		return "is invalid"
	}
}

// Custom validation functions

func validateTransactionType(fl validator.FieldLevel) bool {
	return models.IsValidTransactionType(fl.Field().String())
}

// validateLedgerCategory checks membership in either catalog; the match
// against the transaction's own type happens in the model
func validateLedgerCategory(fl validator.FieldLevel) bool {
	return models.IsKnownCategory(fl.Field().String())
}

// validatePositiveAmount accepts a decimal string strictly greater than zero
func validatePositiveAmount(fl validator.FieldLevel) bool {
	amount, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}
	return amount.GreaterThan(decimal.Zero)
}

var currencyCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)

func validateCurrencyCode(fl validator.FieldLevel) bool {
	code := fl.Field().String()
	if code == "" {
		return true // optional, defaults to the base currency
	}
	return currencyCodePattern.MatchString(code)
}
