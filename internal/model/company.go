package model

// UnknownDate is the sentinel stored when the registry has no due date for a
// filing. Deadline math treats it the same as an empty or malformed date.
const UnknownDate = "N/A"

// Company represents one saved portfolio entry in companies.json.
//
// CRN is the unique key across the portfolio; it is normalized before a
// record is created (see internal/crn). Name and Status are display strings
// and may be stale relative to the registry until the next refresh. The due
// dates are "2006-01-02" strings or UnknownDate.
type Company struct {
	CRN         string `json:"crn"`
	Name        string `json:"name"`
	Status      string `json:"status"`
	AccountsDue string `json:"accounts_due"`
	CSDue       string `json:"cs_due"`
	LastUpdated string `json:"last_updated"`
}
