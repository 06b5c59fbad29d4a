package repository

import (
	"time"

	"cotisation-service/internal/domain"
)

// Demo fixtures. These stand in for a real backend and match the walkthrough
// credentials shown on the home page.

func SeedBanks() []domain.Bank {
	return []domain.Bank{
		{ID: "exim", Name: "EXIM Bank", Accounts: []string{"100200300", "100200301", "100200302"}},
		{ID: "salaam", Name: "Salaam Bank", Accounts: []string{"200300400", "200300401"}},
		{ID: "mtn", Name: "MTN Money", Accounts: []string{"77001122", "77001133"}},
	}
}

func SeedIdentities() []domain.Identity {
	return []domain.Identity{
		{
			ID:       "u_admin",
			Role:     domain.RoleAdmin,
			Email:    "admin@vip.com",
			Secret:   "admin123",
			FullName: "VIP Admin",
			Phone:    "77 00 00 00",
		},
		{
			ID:       "u_client",
			Role:     domain.RoleClient,
			Email:    "client@vip.com",
			Secret:   "client123",
			FullName: "Client VIP",
			Phone:    "77 12 34 56",
			Address:  "Djibouti, Plateau",
		},
	}
}

func SeedContributions() []domain.ContributionRecord {
	return []domain.ContributionRecord{
		{
			ID:            "c_001",
			OwnerID:       "u_client",
			BankID:        "exim",
			AccountNumber: "100200300",
			Amount:        6000,
			Months:        6,
			Total:         36000,
			Status:        domain.StatusConfirmed,
			CreatedAt:     time.Now(),
		},
	}
}
