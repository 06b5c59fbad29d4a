package usecase

import (
	"context"

	"go.uber.org/zap"

	"cotisation-service/internal/domain"
	"cotisation-service/internal/repository"
	"cotisation-service/internal/session"
)

// AuthUsecase handles the demo login/logout and session restore.
type AuthUsecase struct {
	identities *repository.IdentityRepo
	sessions   session.Store
	toasts     Toaster
	log        *zap.Logger
}

func NewAuthUsecase(identities *repository.IdentityRepo, sessions session.Store, toasts Toaster, log *zap.Logger) *AuthUsecase {
	return &AuthUsecase{identities: identities, sessions: sessions, toasts: toasts, log: log}
}

// Login compares role, email and secret against the identity collection. On
// success the session record is persisted under the fixed key.
func (uc *AuthUsecase) Login(ctx context.Context, role domain.Role, email, secret string) (domain.Identity, error) {
	ident, err := uc.identities.Authenticate(ctx, role, email, secret)
	if err != nil {
		uc.toasts.Error("Invalid credentials")
		return domain.Identity{}, err
	}

	if err := uc.sessions.Save(ctx, domain.StoredSession{IdentityID: ident.ID, Role: ident.Role}); err != nil {
		uc.log.Warn("session save failed", zap.Error(err))
	}
	uc.toasts.Success("Logged in")
	return ident, nil
}

// Logout removes the stored session entirely.
func (uc *AuthUsecase) Logout(ctx context.Context) error {
	if err := uc.sessions.Clear(ctx); err != nil {
		return err
	}
	uc.toasts.Success("Logged out")
	return nil
}

// Restore reads the stored session once at startup. Returns
// xerrors.ErrNoSession when nothing was persisted.
func (uc *AuthUsecase) Restore(ctx context.Context) (domain.StoredSession, error) {
	return uc.sessions.Load(ctx)
}

// CurrentIdentity resolves the stored session to its identity, if any.
func (uc *AuthUsecase) CurrentIdentity(ctx context.Context) (domain.Identity, error) {
	sess, err := uc.sessions.Load(ctx)
	if err != nil {
		return domain.Identity{}, err
	}
	if sess.IdentityID == "" {
		return domain.Identity{}, nil
	}
	return uc.identities.GetByID(ctx, sess.IdentityID)
}
