package blob

import (
	"context"
	"errors"
	"fmt"

	pkgredis "github.com/gurneepeptides/storefront-backend/pkg/redis"
)

// RedisStore keeps documents as namespaced string values in redis. SET is
// atomic, which satisfies the Store contract without temp files.
type RedisStore struct {
	client *pkgredis.Client
}

func NewRedisStore(client *pkgredis.Client) (*RedisStore, error) {
	if client == nil {
		return nil, fmt.Errorf("blob: redis client is required")
	}
	return &RedisStore{client: client}, nil
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := s.client.Get(ctx, s.client.BlobKey(key))
	if err != nil {
		if errors.Is(err, pkgredis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("blob: read %s: %w", key, err)
	}
	return []byte(value), nil
}

func (s *RedisStore) Put(ctx context.Context, key string, data []byte) error {
	if err := s.client.Set(ctx, s.client.BlobKey(key), string(data), 0); err != nil {
		return fmt.Errorf("blob: write %s: %w", key, err)
	}
	return nil
}
