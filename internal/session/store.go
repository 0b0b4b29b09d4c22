package session

import (
	"context"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const (
	CookieName = "session_id"

	keyPrefix = "session:"
)

// Store maps an opaque token to an authenticated customer id.
type Store interface {
	Create(ctx context.Context, customerID uint) (string, error)
	Get(ctx context.Context, token string) (uint, bool, error)
	Delete(ctx context.Context, token string) error
}

type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl}
}

func (s *RedisStore) Create(ctx context.Context, customerID uint) (string, error) {
	token := uuid.New().String()
	value := strconv.FormatUint(uint64(customerID), 10)

	if err := s.rdb.Set(ctx, keyPrefix+token, value, s.ttl).Err(); err != nil {
		return "", err
	}
	return token, nil
}

func (s *RedisStore) Get(ctx context.Context, token string) (uint, bool, error) {
	value, err := s.rdb.Get(ctx, keyPrefix+token).Result()
	if err == redis.Nil {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}

	id, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		// Corrupt entry, treat as no session.
		return 0, false, nil
	}
	return uint(id), true, nil
}

func (s *RedisStore) Delete(ctx context.Context, token string) error {
	return s.rdb.Del(ctx, keyPrefix+token).Err()
}

// Compile-time check
var _ Store = (*RedisStore)(nil)
