package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cotisation-service/internal/domain"
	"cotisation-service/pkg/xerrors"
)

func TestIdentityCreatePrepends(t *testing.T) {
	repo := NewIdentityRepo(SeedIdentities())

	require.NoError(t, repo.Create(context.Background(), domain.Identity{ID: "u_new", Role: domain.RoleClient}))

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "u_new", list[0].ID)
	assert.Equal(t, "u_admin", list[1].ID)
}

func TestIdentityUpdateProfileInPlace(t *testing.T) {
	repo := NewIdentityRepo(SeedIdentities())

	p := domain.Profile{FullName: "Renamed", Phone: "77", Email: "r@x.com", Address: "Y"}
	require.NoError(t, repo.UpdateProfile(context.Background(), "u_client", p))

	ident, err := repo.GetByID(context.Background(), "u_client")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", ident.FullName)
	assert.Equal(t, "client123", ident.Secret)
	assert.Equal(t, domain.RoleClient, ident.Role)

	err = repo.UpdateProfile(context.Background(), "u_ghost", p)
	assert.ErrorIs(t, err, xerrors.ErrIdentityNotFound)
}

func TestAuthenticateExactMatch(t *testing.T) {
	repo := NewIdentityRepo(SeedIdentities())

	ident, err := repo.Authenticate(context.Background(), domain.RoleClient, "client@vip.com", "client123")
	require.NoError(t, err)
	assert.Equal(t, "u_client", ident.ID)

	_, err = repo.Authenticate(context.Background(), domain.RoleClient, "client@vip.com", "wrongpass")
	assert.ErrorIs(t, err, xerrors.ErrInvalidCredentials)

	// case sensitive
	_, err = repo.Authenticate(context.Background(), domain.RoleClient, "Client@vip.com", "client123")
	assert.ErrorIs(t, err, xerrors.ErrInvalidCredentials)
}

func TestContributionCreatePrepends(t *testing.T) {
	repo := NewContributionRepo(SeedContributions())

	require.NoError(t, repo.Create(context.Background(), domain.ContributionRecord{
		ID:        "c_new",
		Status:    domain.StatusConfirmed,
		CreatedAt: time.Now(),
	}))

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "c_new", list[0].ID)
	assert.Equal(t, "c_001", list[1].ID)
}

func TestBankLookup(t *testing.T) {
	repo := NewBankRepo(SeedBanks())

	b, err := repo.GetByID(context.Background(), "exim")
	require.NoError(t, err)
	assert.Equal(t, "EXIM Bank", b.Name)
	assert.Equal(t, []string{"100200300", "100200301", "100200302"}, b.Accounts)

	_, err = repo.GetByID(context.Background(), "ghost")
	assert.ErrorIs(t, err, xerrors.ErrBankNotFound)

	assert.True(t, repo.Exists("mtn"))
	assert.False(t, repo.Exists(""))
}
