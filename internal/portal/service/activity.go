package service

import (
	"context"
	"errors"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/aussiebroadwan/carebridge/internal/portal/domain"
	"github.com/aussiebroadwan/carebridge/internal/portal/store"
	"github.com/aussiebroadwan/carebridge/pkg/idx"
	"github.com/aussiebroadwan/carebridge/pkg/slogx"
)

const (
	DefaultActivityLimit = 20
	MaxActivityLimit     = 100
)

// ActivityService records dispatch outcomes and serves them back. It is a
// Notifier, so it can sit in the dispatchers' fan-out.
type ActivityService struct {
	Store store.Store
	Now   func() time.Time
}

// Notify persists o. Busy results are never passed in; storage errors are
// logged because a notifier cannot fail the dispatch.
func (s *ActivityService) Notify(ctx context.Context, o Outcome) {
	if err := s.Record(ctx, o); err != nil {
		slogx.FromContext(ctx).Error("failed to record activity", "action", string(o.Result.Kind), "error", err)
	}
}

// Record stores one terminal outcome.
func (s *ActivityService) Record(ctx context.Context, o Outcome) error {
	res := o.Result
	at := res.FinishedAt
	if at.IsZero() {
		at = s.now()
	}

	a := domain.Activity{
		ID:          idx.NewAt(at).String(),
		Kind:        res.Kind,
		Address:     res.Account.Hex(),
		Status:      res.Status,
		Stage:       res.Reached,
		BlockNumber: res.BlockNumber,
		Detail:      o.Detail,
		CreatedAt:   at.UTC(),
	}
	if res.Failure != nil {
		a.FailureKind = res.Failure.Kind
	}
	if res.Notice != nil {
		a.Title = res.Notice.Title
		a.Message = res.Notice.Message
	}
	if res.TxHash != (common.Hash{}) {
		a.TxHash = res.TxHash.Hex()
	}
	return s.Store.Activity().RecordActivity(ctx, a)
}

// List returns address's newest records first. limit is clamped to
// [1, MaxActivityLimit]; zero means DefaultActivityLimit.
func (s *ActivityService) List(ctx context.Context, address common.Address, limit int) ([]domain.Activity, error) {
	switch {
	case limit <= 0:
		limit = DefaultActivityLimit
	case limit > MaxActivityLimit:
		limit = MaxActivityLimit
	}
	return s.Store.Activity().ListActivityByAddress(ctx, address.Hex(), limit)
}

// Get returns one record, or domain.ErrActivityNotFound.
func (s *ActivityService) Get(ctx context.Context, id string) (domain.Activity, error) {
	if _, err := idx.Parse(id); err != nil {
		return domain.Activity{}, domain.ErrActivityNotFound
	}
	a, err := s.Store.Activity().GetActivity(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Activity{}, domain.ErrActivityNotFound
		}
		return domain.Activity{}, err
	}
	return a, nil
}

// Prune deletes records older than retention and reports how many were
// deleted and how many remain, both read in one transaction.
func (s *ActivityService) Prune(ctx context.Context, retention time.Duration) (deleted, remaining int64, err error) {
	cutoff := s.now().Add(-retention)
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		var err error
		if deleted, err = tx.Activity().DeleteActivityBefore(ctx, cutoff); err != nil {
			return err
		}
		remaining, err = tx.Activity().CountActivity(ctx)
		return err
	})
	if err != nil {
		return 0, 0, err
	}
	return deleted, remaining, nil
}

func (s *ActivityService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
