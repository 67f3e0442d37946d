package store

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// RedisBackend keeps the serialized list under a single redis key.
type RedisBackend struct {
	client *redis.Client
	key    string
}

// NewRedisBackend creates a redis-backed store backend. An empty key falls
// back to DefaultKey.
func NewRedisBackend(client *redis.Client, key string) *RedisBackend {
	if key == "" {
		key = DefaultKey
	}
	return &RedisBackend{client: client, key: key}
}

func (b *RedisBackend) Load(ctx context.Context) ([]byte, bool, error) {
	data, err := b.client.Get(ctx, b.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

func (b *RedisBackend) Save(ctx context.Context, data []byte) error {
	// No TTL: the list is the site's only source of truth.
	return b.client.Set(ctx, b.key, data, 0).Err()
}
