package session

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"

	"cotisation-service/internal/domain"
	"cotisation-service/pkg/xerrors"
)

// RedisStore keeps the session record in Redis under the fixed key.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(addr, password string) *RedisStore {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})
	return &RedisStore{client: rdb}
}

func (s *RedisStore) Save(ctx context.Context, sess domain.StoredSession) error {
	payload, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, Key, payload, 0).Err()
}

func (s *RedisStore) Load(ctx context.Context) (domain.StoredSession, error) {
	val, err := s.client.Get(ctx, Key).Result()
	if errors.Is(err, redis.Nil) {
		return domain.StoredSession{}, xerrors.ErrNoSession
	}
	if err != nil {
		return domain.StoredSession{}, err
	}
	var sess domain.StoredSession
	if err := json.Unmarshal([]byte(val), &sess); err != nil {
		return domain.StoredSession{}, err
	}
	return sess, nil
}

func (s *RedisStore) Clear(ctx context.Context) error {
	return s.client.Del(ctx, Key).Err()
}
