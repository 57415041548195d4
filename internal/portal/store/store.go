package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/carebridge/internal/portal/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface for durable portal state. It
// exposes sub-repositories so a Tx-scoped Store offers the same surface.
type Store interface {
	Activity() ActivityLog

	ApplyMigrations() error

	// Tx starts a read/write transaction. The caller MUST Commit or Rollback.
	Tx(ctx context.Context) (Tx, error)

	// WithTx runs fn in a transaction, committing when fn returns nil.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error
	Ping(ctx context.Context) error
}

// Tx is a transactional store.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type ActivityLog interface {
	// RecordActivity inserts one dispatch outcome. IDs are ULIDs minted by the caller.
	RecordActivity(ctx context.Context, a domain.Activity) error

	GetActivity(ctx context.Context, id string) (domain.Activity, error)

	// ListActivityByAddress returns the newest records for address first.
	ListActivityByAddress(ctx context.Context, address string, limit int) ([]domain.Activity, error)

	// DeleteActivityBefore removes records created before cutoff.
	DeleteActivityBefore(ctx context.Context, cutoff time.Time) (int64, error)

	CountActivity(ctx context.Context) (int64, error)
}

// NonceStore holds short-lived wallet challenge nonces, one per address.
// It is ephemeral by nature, so it lives outside the SQL store.
type NonceStore interface {
	// PutNonce stores nonce for address, replacing any earlier one.
	PutNonce(ctx context.Context, address, nonce string, ttl time.Duration) error

	// TakeNonce returns and deletes the nonce for address in one step, so a
	// nonce can be consumed at most once. ErrNotFound when absent or expired.
	TakeNonce(ctx context.Context, address string) (string, error)

	Ping(ctx context.Context) error
	Close() error
}
