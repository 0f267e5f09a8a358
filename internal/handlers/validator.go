package handlers

import (
	"finledger/internal/validation"

	"github.com/labstack/echo/v4"
)

// CustomValidator implements echo.Validator on the shared ledger validator
type CustomValidator struct {
	validator *validation.Validator
}

// NewValidator creates the echo validator adapter
func NewValidator() echo.Validator {
	return &CustomValidator{validator: validation.GetValidator()}
}

// Validate implements the echo.Validator interface
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
