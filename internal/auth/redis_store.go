package auth

import (
	"context"

	"github.com/redis/go-redis/v9"
)

const redisTokenPrefix = "session:"

// RedisTokenStore keeps the active token set in Redis so sessions
// survive process restarts. Keys carry no TTL: the token lifecycle is
// the same two-state insert/remove model as the in-memory store.
type RedisTokenStore struct {
	client *redis.Client
}

func NewRedisTokenStore(client *redis.Client) *RedisTokenStore {
	return &RedisTokenStore{client: client}
}

func (s *RedisTokenStore) Insert(ctx context.Context, token string) error {
	return s.client.Set(ctx, redisTokenPrefix+token, "1", 0).Err()
}

func (s *RedisTokenStore) Contains(ctx context.Context, token string) (bool, error) {
	n, err := s.client.Exists(ctx, redisTokenPrefix+token).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *RedisTokenStore) Remove(ctx context.Context, token string) error {
	return s.client.Del(ctx, redisTokenPrefix+token).Err()
}
