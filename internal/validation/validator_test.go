package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entryPayload struct {
	Type     string `json:"type" validate:"required,transaction_type"`
	Amount   string `json:"amount" validate:"required,positive_amount"`
	Category string `json:"category" validate:"required,ledger_category"`
	Currency string `json:"currency" validate:"omitempty,currency_code"`
}

func validPayload() entryPayload {
	return entryPayload{
		Type:     "expense",
		Amount:   "42.50",
		Category: "supermarket",
		Currency: "BRL",
	}
}

func TestValidator_AcceptsValidPayload(t *testing.T) {
	assert.NoError(t, GetValidator().Struct(validPayload()))
}

func TestValidator_TransactionType(t *testing.T) {
	payload := validPayload()
	payload.Type = "transfer"

	err := GetValidator().Struct(payload)
	require.Error(t, err)

	fieldErrors := GetValidator().FormatErrors(err)
	assert.Equal(t, "must be income or expense", fieldErrors["type"])
}

func TestValidator_PositiveAmount(t *testing.T) {
	testCases := []struct {
		name   string
		amount string
		valid  bool
	}{
		{"positive decimal", "10.50", true},
		{"zero", "0", false},
		{"negative", "-5.00", false},
		{"not a number", "ten", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			payload := validPayload()
			payload.Amount = tc.amount

			err := GetValidator().Struct(payload)
			if tc.valid {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Equal(t, "must be a positive number", GetValidator().FormatErrors(err)["amount"])
			}
		})
	}
}

func TestValidator_LedgerCategory(t *testing.T) {
	payload := validPayload()
	payload.Category = "bitcoinMining"

	err := GetValidator().Struct(payload)
	require.Error(t, err)
	assert.Equal(t, "is not a known category", GetValidator().FormatErrors(err)["category"])
}

func TestValidator_CurrencyCode(t *testing.T) {
	payload := validPayload()

	payload.Currency = ""
	assert.NoError(t, GetValidator().Struct(payload))

	payload.Currency = "usd"
	assert.Error(t, GetValidator().Struct(payload))

	payload.Currency = "USDT"
	assert.Error(t, GetValidator().Struct(payload))
}

func TestFormatErrors_UsesJSONFieldNames(t *testing.T) {
	payload := entryPayload{}

	err := GetValidator().Struct(payload)
	require.Error(t, err)

	fieldErrors := GetValidator().FormatErrors(err)
	assert.Contains(t, fieldErrors, "type")
	assert.Contains(t, fieldErrors, "amount")
	assert.Contains(t, fieldErrors, "category")
	assert.Equal(t, "is required", fieldErrors["type"])
}
