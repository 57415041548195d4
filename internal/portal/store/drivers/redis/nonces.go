package redis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/aussiebroadwan/carebridge/internal/portal/store"
)

const keyPrefix = "carebridge:nonce:"

// NonceStore keeps nonces in Redis with a TTL per key, so several portal
// instances can share challenges.
type NonceStore struct {
	client *goredis.Client
}

var _ store.NonceStore = (*NonceStore)(nil)

// NewNonceStore parses a redis:// URL and connects lazily.
func NewNonceStore(url string) (*NonceStore, error) {
	opts, err := goredis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("redis: parse url: %w", err)
	}
	return &NonceStore{client: goredis.NewClient(opts)}, nil
}

// NewNonceStoreFromClient wraps an existing client.
func NewNonceStoreFromClient(c *goredis.Client) *NonceStore {
	return &NonceStore{client: c}
}

func (s *NonceStore) PutNonce(ctx context.Context, address, nonce string, ttl time.Duration) error {
	if err := s.client.Set(ctx, key(address), nonce, ttl).Err(); err != nil {
		return fmt.Errorf("redis: set nonce: %w", err)
	}
	return nil
}

// TakeNonce uses GETDEL, so two concurrent session requests cannot both
// consume the same nonce.
func (s *NonceStore) TakeNonce(ctx context.Context, address string) (string, error) {
	v, err := s.client.GetDel(ctx, key(address)).Result()
	if errors.Is(err, goredis.Nil) {
		return "", store.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("redis: take nonce: %w", err)
	}
	return v, nil
}

func (s *NonceStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *NonceStore) Close() error {
	return s.client.Close()
}

func key(address string) string { return keyPrefix + strings.ToLower(address) }
