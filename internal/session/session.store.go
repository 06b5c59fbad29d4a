package session

import (
	"context"

	"cotisation-service/internal/domain"
)

// Key is the fixed storage key for the single persisted session record.
const Key = "vip_session"

// Store persists the active session across restarts. Load returns
// xerrors.ErrNoSession when nothing is stored.
type Store interface {
	Save(ctx context.Context, s domain.StoredSession) error
	Load(ctx context.Context) (domain.StoredSession, error)
	Clear(ctx context.Context) error
}
