package repository

import (
	"context"
	"sync"

	"cotisation-service/internal/domain"
)

// ContributionRepo holds the process-wide contribution collection, most
// recent first. Records are immutable once created.
type ContributionRepo struct {
	mu      sync.RWMutex
	records []domain.ContributionRecord
}

func NewContributionRepo(seed []domain.ContributionRecord) *ContributionRepo {
	return &ContributionRepo{records: seed}
}

func (r *ContributionRepo) Create(ctx context.Context, rec domain.ContributionRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append([]domain.ContributionRecord{rec}, r.records...)
	return nil
}

func (r *ContributionRepo) List(ctx context.Context) ([]domain.ContributionRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.ContributionRecord, len(r.records))
	copy(out, r.records)
	return out, nil
}
