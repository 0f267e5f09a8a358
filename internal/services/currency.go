package services

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// CurrencyFormatter renders amounts under an ISO-4217 currency code for
// display. Formatting never changes the stored amount; it is purely a
// presentation concern.
type CurrencyFormatter struct {
	printer      *message.Printer
	baseCurrency string
}

// NewCurrencyFormatter creates a formatter for the given BCP 47 locale.
// Amounts without a currency code are rendered under baseCurrency.
func NewCurrencyFormatter(locale, baseCurrency string) *CurrencyFormatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.BrazilianPortuguese
	}
	return &CurrencyFormatter{
		printer:      message.NewPrinter(tag),
		baseCurrency: baseCurrency,
	}
}

// Format renders amount under the given currency code, falling back to the
// base currency when code is empty and to a plain "CODE 12.34" rendering when
// the code is not a recognized ISO-4217 unit.
func (f *CurrencyFormatter) Format(amount decimal.Decimal, code string) string {
	if code == "" {
		code = f.baseCurrency
	}

	unit, err := currency.ParseISO(code)
	if err != nil {
		return fmt.Sprintf("%s %s", code, amount.StringFixed(2))
	}

	value, _ := amount.Round(2).Float64()
	return f.printer.Sprint(currency.Symbol(unit.Amount(value)))
}

// BaseCurrency returns the code applied when a transaction has none
func (f *CurrencyFormatter) BaseCurrency() string {
	return f.baseCurrency
}
