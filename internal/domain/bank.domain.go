package domain

// Bank is read-only reference data for the bank-selection control.
type Bank struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Accounts []string `json:"accounts"`
}
