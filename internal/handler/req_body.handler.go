package handler

import (
	"cotisation-service/internal/domain"
)

type profileRequest struct {
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Address  string `json:"address"`
}

func (r profileRequest) toDomain() domain.Profile {
	return domain.Profile{
		FullName: r.FullName,
		Phone:    r.Phone,
		Email:    r.Email,
		Address:  r.Address,
	}
}

type digitRequest struct {
	Index int    `json:"index"`
	Value string `json:"value"`
}

type backspaceRequest struct {
	Index int `json:"index"`
}

type pasteRequest struct {
	Text string `json:"text"`
}

type contributionRequest struct {
	BankID        string `json:"bank_id"`
	AccountNumber string `json:"account_number"`
	Amount        string `json:"amount"`
	Months        string `json:"months"`
	Accepted      bool   `json:"accepted"`
}

func (r contributionRequest) toDomain() domain.ContributionDraft {
	return domain.ContributionDraft{
		BankID:        r.BankID,
		AccountNumber: r.AccountNumber,
		Amount:        r.Amount,
		Months:        r.Months,
		Accepted:      r.Accepted,
	}
}

type loginRequest struct {
	Role   string `json:"role"`
	Email  string `json:"email"`
	Secret string `json:"secret"`
}
