package session

import (
	"context"
	"encoding/json"
	"os"
	"sync"

	"cotisation-service/internal/domain"
	"cotisation-service/pkg/xerrors"
)

// FileStore is the local-storage analog: one JSON record in a small file.
type FileStore struct {
	mu   sync.Mutex
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Save(ctx context.Context, sess domain.StoredSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	payload, err := json.Marshal(map[string]domain.StoredSession{Key: sess})
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, payload, 0o600)
}

func (s *FileStore) Load(ctx context.Context) (domain.StoredSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	payload, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return domain.StoredSession{}, xerrors.ErrNoSession
	}
	if err != nil {
		return domain.StoredSession{}, err
	}
	var stored map[string]domain.StoredSession
	if err := json.Unmarshal(payload, &stored); err != nil {
		return domain.StoredSession{}, err
	}
	sess, ok := stored[Key]
	if !ok {
		return domain.StoredSession{}, xerrors.ErrNoSession
	}
	return sess, nil
}

func (s *FileStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
