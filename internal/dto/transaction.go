package dto

// TransactionRequest is the payload for creating or updating a ledger entry.
// Amount travels as a string so that missing and non-numeric values can be
// rejected with a precise message instead of a JSON type error.
type TransactionRequest struct {
	Type        string `json:"type" validate:"required,transaction_type"`
	Amount      string `json:"amount" validate:"required,positive_amount"`
	Category    string `json:"category" validate:"required,ledger_category"`
	Date        string `json:"date" validate:"required"`
	Currency    string `json:"currency" validate:"omitempty,currency_code"`
	Description string `json:"description"`
}

// CategoryCatalogResponse lists the category labels accepted per
// transaction type. When the request narrows to a single type the
// other catalog is omitted.
type CategoryCatalogResponse struct {
	Income  []string `json:"income,omitempty"`
	Expense []string `json:"expense,omitempty"`
}

// LedgerQuery contains the optional filters for listing transactions
type LedgerQuery struct {
	StartDate string `query:"start_date"`
	EndDate   string `query:"end_date"`
	Type      string `query:"type"`
	Category  string `query:"category"`
	Currency  string `query:"currency"`
	Offset    int    `query:"offset"`
	Limit     int    `query:"limit"`
}
