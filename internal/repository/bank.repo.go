package repository

import (
	"context"
	"sync"

	"cotisation-service/internal/domain"
	"cotisation-service/pkg/xerrors"
)

// BankRepo serves the read-only bank reference data.
type BankRepo struct {
	mu    sync.RWMutex
	banks []domain.Bank
}

func NewBankRepo(seed []domain.Bank) *BankRepo {
	return &BankRepo{banks: seed}
}

func (r *BankRepo) List(ctx context.Context) ([]domain.Bank, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Bank, len(r.banks))
	copy(out, r.banks)
	return out, nil
}

func (r *BankRepo) GetByID(ctx context.Context, id string) (domain.Bank, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, b := range r.banks {
		if b.ID == id {
			return b, nil
		}
	}
	return domain.Bank{}, xerrors.ErrBankNotFound
}

func (r *BankRepo) Exists(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, b := range r.banks {
		if b.ID == id {
			return true
		}
	}
	return false
}
