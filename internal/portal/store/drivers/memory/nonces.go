package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/aussiebroadwan/carebridge/internal/portal/store"
)

type entry struct {
	nonce   string
	expires time.Time
}

// NonceStore keeps nonces in process memory. It is the default when no
// Redis URL is configured and is fine for a single portal instance.
type NonceStore struct {
	mu      sync.Mutex
	entries map[string]entry
	now     func() time.Time
}

var _ store.NonceStore = (*NonceStore)(nil)

func NewNonceStore() *NonceStore {
	return &NonceStore{entries: make(map[string]entry), now: time.Now}
}

// WithClock swaps the time source, for tests.
func (s *NonceStore) WithClock(now func() time.Time) *NonceStore {
	s.now = now
	return s
}

func (s *NonceStore) PutNonce(ctx context.Context, address, nonce string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for k, e := range s.entries {
		if !now.Before(e.expires) {
			delete(s.entries, k)
		}
	}
	s.entries[key(address)] = entry{nonce: nonce, expires: now.Add(ttl)}
	return nil
}

func (s *NonceStore) TakeNonce(ctx context.Context, address string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := key(address)
	e, ok := s.entries[k]
	if !ok {
		return "", store.ErrNotFound
	}
	delete(s.entries, k)
	if !s.now().Before(e.expires) {
		return "", store.ErrNotFound
	}
	return e.nonce, nil
}

func (s *NonceStore) Ping(context.Context) error { return nil }
func (s *NonceStore) Close() error               { return nil }

func key(address string) string { return strings.ToLower(address) }
