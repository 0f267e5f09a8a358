package dto

// ReportQuery bounds a report to an inclusive calendar-day window.
// An empty start defaults to the beginning of the ledger's epoch and an
// empty end to today.
type ReportQuery struct {
	StartDate string `query:"start_date"`
	EndDate   string `query:"end_date"`
}
