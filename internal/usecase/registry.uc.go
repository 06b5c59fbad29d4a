package usecase

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"cotisation-service/internal/domain"
	"cotisation-service/internal/repository"
	"cotisation-service/internal/session"
	"cotisation-service/pkg/id"
)

// placeholder secret assigned to identities created through signup (demo).
const defaultClientSecret = "client123"

// RegistryUsecase owns the identity and contribution collections and turns a
// finished onboarding flow into persisted records.
type RegistryUsecase struct {
	identities    *repository.IdentityRepo
	contributions *repository.ContributionRepo
	sessions      session.Store
	log           *zap.Logger
	now           func() time.Time
}

func NewRegistryUsecase(identities *repository.IdentityRepo, contributions *repository.ContributionRepo, sessions session.Store, log *zap.Logger) *RegistryUsecase {
	return &RegistryUsecase{
		identities:    identities,
		contributions: contributions,
		sessions:      sessions,
		log:           log,
		now:           time.Now,
	}
}

// WithClock overrides the timestamp source, for tests.
func (uc *RegistryUsecase) WithClock(now func() time.Time) { uc.now = now }

// CompleteOnboarding creates or updates the owning identity and records the
// contribution as CONFIRMED, newest first. With no existing owner a CLIENT
// identity is synthesized and a session stored for it.
func (uc *RegistryUsecase) CompleteOnboarding(ctx context.Context, existingOwnerID string, profile domain.Profile, c CompletedContribution) (string, domain.ContributionRecord, error) {
	ownerID := existingOwnerID

	if ownerID == "" {
		ownerID = id.Generate("u")
		email := profile.Email
		if email == "" {
			email = fmt.Sprintf("client_%d@mail.com", uc.now().UnixMilli())
		}
		ident := domain.Identity{
			ID:        ownerID,
			Role:      domain.RoleClient,
			Email:     email,
			Secret:    defaultClientSecret,
			FullName:  profile.FullName,
			Phone:     profile.Phone,
			Address:   profile.Address,
			CreatedAt: uc.now(),
		}
		if err := uc.identities.Create(ctx, ident); err != nil {
			return "", domain.ContributionRecord{}, err
		}
		if err := uc.sessions.Save(ctx, domain.StoredSession{IdentityID: ownerID, Role: domain.RoleClient}); err != nil {
			uc.log.Warn("session save failed", zap.Error(err))
		}
	} else {
		if err := uc.identities.UpdateProfile(ctx, ownerID, profile); err != nil {
			return "", domain.ContributionRecord{}, err
		}
	}

	rec := domain.ContributionRecord{
		ID:            id.Generate("c"),
		OwnerID:       ownerID,
		BankID:        c.BankID,
		AccountNumber: c.AccountNumber,
		Amount:        c.Amount,
		Months:        c.Months,
		Total:         c.Total,
		Status:        domain.StatusConfirmed,
		CreatedAt:     uc.now(),
	}
	if err := uc.contributions.Create(ctx, rec); err != nil {
		return "", domain.ContributionRecord{}, err
	}

	uc.log.Info("contribution recorded",
		zap.String("owner_id", ownerID),
		zap.String("contribution_id", rec.ID),
		zap.Float64("total", rec.Total))
	return ownerID, rec, nil
}
