package usecase

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"cotisation-service/internal/domain"
	"cotisation-service/internal/repository"
	"cotisation-service/internal/session"
)

func newTestRegistry(t *testing.T) (*RegistryUsecase, *repository.IdentityRepo, *repository.ContributionRepo, session.Store) {
	t.Helper()
	identities := repository.NewIdentityRepo(repository.SeedIdentities())
	contributions := repository.NewContributionRepo(repository.SeedContributions())
	sessions := session.NewFileStore(filepath.Join(t.TempDir(), "vip_session.json"))
	uc := NewRegistryUsecase(identities, contributions, sessions, zap.NewNop())
	return uc, identities, contributions, sessions
}

func TestCompleteOnboardingNewIdentity(t *testing.T) {
	uc, identities, contributions, sessions := newTestRegistry(t)
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	uc.WithClock(func() time.Time { return now })

	profile := domain.Profile{FullName: "A B", Phone: "77123456", Address: "X"}
	completed := CompletedContribution{
		BankID:        "exim",
		AccountNumber: "100200300",
		Amount:        6000,
		Months:        6,
		Total:         36000,
	}

	ownerID, rec, err := uc.CompleteOnboarding(context.Background(), "", profile, completed)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(ownerID, "u_"))

	list, err := identities.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 3)
	// newest first
	created := list[0]
	assert.Equal(t, ownerID, created.ID)
	assert.Equal(t, domain.RoleClient, created.Role)
	assert.Equal(t, "A B", created.FullName)
	assert.Equal(t, "client123", created.Secret)
	assert.Equal(t, fmt.Sprintf("client_%d@mail.com", now.UnixMilli()), created.Email)

	assert.True(t, strings.HasPrefix(rec.ID, "c_"))
	assert.Equal(t, ownerID, rec.OwnerID)
	assert.Equal(t, domain.StatusConfirmed, rec.Status)
	assert.Equal(t, now, rec.CreatedAt)

	recs, err := contributions.List(context.Background())
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, rec.ID, recs[0].ID)

	sess, err := sessions.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.StoredSession{IdentityID: ownerID, Role: domain.RoleClient}, sess)
}

func TestCompleteOnboardingNewIdentityKeepsSuppliedEmail(t *testing.T) {
	uc, identities, _, _ := newTestRegistry(t)

	profile := domain.Profile{FullName: "A B", Phone: "77", Email: "abdou@mail.com", Address: "X"}
	ownerID, _, err := uc.CompleteOnboarding(context.Background(), "", profile, CompletedContribution{BankID: "exim", AccountNumber: "100200300", Amount: 1, Months: 1, Total: 1})
	require.NoError(t, err)

	ident, err := identities.GetByID(context.Background(), ownerID)
	require.NoError(t, err)
	assert.Equal(t, "abdou@mail.com", ident.Email)
}

func TestCompleteOnboardingExistingIdentity(t *testing.T) {
	uc, identities, contributions, _ := newTestRegistry(t)

	profile := domain.Profile{FullName: "Renamed", Phone: "77999999", Email: "new@vip.com", Address: "Balbala"}
	completed := CompletedContribution{BankID: "salaam", AccountNumber: "200300400", Amount: 500, Months: 3, Total: 1500}

	ownerID, rec, err := uc.CompleteOnboarding(context.Background(), "u_client", profile, completed)
	require.NoError(t, err)
	assert.Equal(t, "u_client", ownerID)

	// updated in place, no new identity
	list, err := identities.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 2)

	ident, err := identities.GetByID(context.Background(), "u_client")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", ident.FullName)
	assert.Equal(t, "77999999", ident.Phone)
	assert.Equal(t, "new@vip.com", ident.Email)
	assert.Equal(t, "Balbala", ident.Address)
	// id, role and secret untouched
	assert.Equal(t, domain.RoleClient, ident.Role)
	assert.Equal(t, "client123", ident.Secret)

	assert.Equal(t, "u_client", rec.OwnerID)
	recs, err := contributions.List(context.Background())
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, rec.ID, recs[0].ID)
	assert.Equal(t, "c_001", recs[1].ID)
}

func TestCompleteOnboardingUnknownOwner(t *testing.T) {
	uc, _, contributions, _ := newTestRegistry(t)

	_, _, err := uc.CompleteOnboarding(context.Background(), "u_ghost", domain.Profile{}, CompletedContribution{})
	require.Error(t, err)

	recs, err := contributions.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, recs, 1)
}
