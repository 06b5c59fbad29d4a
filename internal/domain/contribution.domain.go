package domain

import (
	"math"
	"strconv"
	"strings"
	"time"
)

type ContributionStatus string

const (
	StatusPending   ContributionStatus = "PENDING"
	StatusConfirmed ContributionStatus = "CONFIRMED"
)

// ContributionDraft holds the raw step-3 form values. Amount and Months stay
// strings until final submission so partially typed input never breaks the
// live summary.
type ContributionDraft struct {
	BankID        string `json:"bank_id"`
	AccountNumber string `json:"account_number"`
	Amount        string `json:"amount"`
	Months        string `json:"months"`
	Accepted      bool   `json:"accepted"`
}

// Total derives amount x months. Either field blank, non-numeric or
// non-finite yields 0. ParseFloat accepts "NaN" and "Inf" without error, so
// the product needs its own finiteness check.
func (d ContributionDraft) Total() float64 {
	a, errA := strconv.ParseFloat(strings.TrimSpace(d.Amount), 64)
	m, errM := strconv.ParseFloat(strings.TrimSpace(d.Months), 64)
	if errA != nil || errM != nil {
		return 0
	}
	t := a * m
	if math.IsNaN(t) || math.IsInf(t, 0) {
		return 0
	}
	return t
}

// ContributionRecord is immutable once created. No edit or cancel operations
// exist in this version.
type ContributionRecord struct {
	ID            string             `json:"id"`
	OwnerID       string             `json:"owner_id"`
	BankID        string             `json:"bank_id"`
	AccountNumber string             `json:"account_number"`
	Amount        float64            `json:"amount"`
	Months        int                `json:"months"`
	Total         float64            `json:"total"`
	Status        ContributionStatus `json:"status"`
	CreatedAt     time.Time          `json:"created_at"`
}

// DashboardRow is a contribution joined with its owner and bank for the admin
// table. Missing references fall back to a dash, same as the original screen.
type DashboardRow struct {
	ContributionRecord
	ClientName  string `json:"client_name"`
	ClientPhone string `json:"client_phone"`
	ClientEmail string `json:"client_email"`
	BankName    string `json:"bank_name"`
}

type DashboardStats struct {
	Clients        int     `json:"clients"`
	Confirmed      int     `json:"confirmed"`
	ConfirmedTotal float64 `json:"confirmed_total"`
}
