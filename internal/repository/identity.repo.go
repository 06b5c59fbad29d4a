package repository

import (
	"context"
	"sync"

	"cotisation-service/internal/domain"
	"cotisation-service/pkg/xerrors"
)

// IdentityRepo holds the process-wide identity collection, most recent first.
type IdentityRepo struct {
	mu         sync.RWMutex
	identities []domain.Identity
}

func NewIdentityRepo(seed []domain.Identity) *IdentityRepo {
	return &IdentityRepo{identities: seed}
}

// Create prepends so the newest identity lists first.
func (r *IdentityRepo) Create(ctx context.Context, ident domain.Identity) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.identities = append([]domain.Identity{ident}, r.identities...)
	return nil
}

func (r *IdentityRepo) GetByID(ctx context.Context, id string) (domain.Identity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.identities {
		if u.ID == id {
			return u, nil
		}
	}
	return domain.Identity{}, xerrors.ErrIdentityNotFound
}

// UpdateProfile rewrites the profile fields in place. ID, role and secret
// never change here.
func (r *IdentityRepo) UpdateProfile(ctx context.Context, id string, p domain.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.identities {
		if r.identities[i].ID == id {
			r.identities[i].FullName = p.FullName
			r.identities[i].Phone = p.Phone
			r.identities[i].Email = p.Email
			r.identities[i].Address = p.Address
			return nil
		}
	}
	return xerrors.ErrIdentityNotFound
}

// Authenticate matches role, email and secret by exact comparison. Plain-text
// comparison is the demo contract; a production rebuild must hash instead.
func (r *IdentityRepo) Authenticate(ctx context.Context, role domain.Role, email, secret string) (domain.Identity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.identities {
		if u.Role == role && u.Email == email && u.Secret == secret {
			return u, nil
		}
	}
	return domain.Identity{}, xerrors.ErrInvalidCredentials
}

func (r *IdentityRepo) List(ctx context.Context) ([]domain.Identity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Identity, len(r.identities))
	copy(out, r.identities)
	return out, nil
}

func (r *IdentityRepo) CountByRole(ctx context.Context, role domain.Role) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := 0
	for _, u := range r.identities {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}
