package usecase

import (
	"context"

	"cotisation-service/internal/domain"
	"cotisation-service/internal/repository"
)

// AdminUsecase derives the dashboard view from the stores on demand. Pure
// joins, nothing cached.
type AdminUsecase struct {
	identities    *repository.IdentityRepo
	contributions *repository.ContributionRepo
	banks         *repository.BankRepo
}

func NewAdminUsecase(identities *repository.IdentityRepo, contributions *repository.ContributionRepo, banks *repository.BankRepo) *AdminUsecase {
	return &AdminUsecase{identities: identities, contributions: contributions, banks: banks}
}

// Dashboard enriches every contribution with its owner and bank. Missing
// references render as a dash; an unknown bank falls back to its raw id.
func (uc *AdminUsecase) Dashboard(ctx context.Context) ([]domain.DashboardRow, domain.DashboardStats, error) {
	records, err := uc.contributions.List(ctx)
	if err != nil {
		return nil, domain.DashboardStats{}, err
	}
	identities, err := uc.identities.List(ctx)
	if err != nil {
		return nil, domain.DashboardStats{}, err
	}
	banks, err := uc.banks.List(ctx)
	if err != nil {
		return nil, domain.DashboardStats{}, err
	}

	byID := make(map[string]domain.Identity, len(identities))
	for _, u := range identities {
		byID[u.ID] = u
	}
	bankByID := make(map[string]domain.Bank, len(banks))
	for _, b := range banks {
		bankByID[b.ID] = b
	}

	rows := make([]domain.DashboardRow, 0, len(records))
	stats := domain.DashboardStats{}
	for _, rec := range records {
		row := domain.DashboardRow{
			ContributionRecord: rec,
			ClientName:         "—",
			ClientPhone:        "—",
			ClientEmail:        "—",
			BankName:           rec.BankID,
		}
		if u, ok := byID[rec.OwnerID]; ok {
			row.ClientName = u.FullName
			row.ClientPhone = u.Phone
			row.ClientEmail = u.Email
		}
		if b, ok := bankByID[rec.BankID]; ok {
			row.BankName = b.Name
		}
		if rec.Status == domain.StatusConfirmed {
			stats.Confirmed++
			stats.ConfirmedTotal += rec.Total
		}
		rows = append(rows, row)
	}

	for _, u := range identities {
		if u.Role == domain.RoleClient {
			stats.Clients++
		}
	}
	return rows, stats, nil
}
