package sqlite_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aussiebroadwan/carebridge/internal/portal/domain"
	"github.com/aussiebroadwan/carebridge/internal/portal/store"
	"github.com/aussiebroadwan/carebridge/internal/portal/store/drivers/sqlite"
	"github.com/aussiebroadwan/carebridge/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *sqlite.Store {
	t.Helper()
	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func activity(addr string, kind domain.ActionKind, at time.Time) domain.Activity {
	return domain.Activity{
		ID:        idx.NewAt(at).String(),
		Kind:      kind,
		Address:   addr,
		Status:    domain.StatusSucceeded,
		Stage:     domain.StageSucceeded,
		Title:     "Vote Submitted",
		Message:   "Your approval vote has been recorded.",
		CreatedAt: at,
	}
}

func TestMigrationsAreIdempotent(t *testing.T) {
	t.Parallel()

	st := newStore(t)
	require.NoError(t, st.ApplyMigrations())
	require.NoError(t, st.Ping(context.Background()))
}

func TestActivityRoundTrip(t *testing.T) {
	t.Parallel()

	st := newStore(t)
	ctx := context.Background()
	at := time.UnixMilli(1700000000123).UTC()

	a := activity("0xabc", domain.ActionDonate, at)
	a.TxHash = "0xfeed"
	a.BlockNumber = 99
	a.Detail = "reason"
	require.NoError(t, st.Activity().RecordActivity(ctx, a))

	got, err := st.Activity().GetActivity(ctx, a.ID)
	require.NoError(t, err)
	require.Equal(t, a, got)

	failed := activity("0xabc", domain.ActionProposeFee, at.Add(time.Second))
	failed.Status = domain.StatusFailed
	failed.Stage = domain.StageFailed
	failed.FailureKind = domain.FailureValidation
	require.NoError(t, st.Activity().RecordActivity(ctx, failed))

	got, err = st.Activity().GetActivity(ctx, failed.ID)
	require.NoError(t, err)
	require.Equal(t, domain.FailureValidation, got.FailureKind)
	require.Empty(t, got.TxHash)

	_, err = st.Activity().GetActivity(ctx, "missing")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestListActivityByAddress(t *testing.T) {
	t.Parallel()

	st := newStore(t)
	ctx := context.Background()
	base := time.Now().UTC().Truncate(time.Millisecond)

	for i := range 5 {
		require.NoError(t, st.Activity().RecordActivity(ctx, activity("0xaaa", domain.ActionDonate, base.Add(time.Duration(i)*time.Minute))))
	}
	require.NoError(t, st.Activity().RecordActivity(ctx, activity("0xbbb", domain.ActionDonate, base)))

	list, err := st.Activity().ListActivityByAddress(ctx, "0xaaa", 3)
	require.NoError(t, err)
	require.Len(t, list, 3)
	require.True(t, list[0].CreatedAt.After(list[1].CreatedAt))
	require.True(t, list[1].CreatedAt.After(list[2].CreatedAt))

	none, err := st.Activity().ListActivityByAddress(ctx, "0xccc", 10)
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestDeleteActivityBefore(t *testing.T) {
	t.Parallel()

	st := newStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	require.NoError(t, st.Activity().RecordActivity(ctx, activity("0xaaa", domain.ActionDonate, now.Add(-48*time.Hour))))
	require.NoError(t, st.Activity().RecordActivity(ctx, activity("0xaaa", domain.ActionDonate, now.Add(-time.Hour))))

	n, err := st.Activity().DeleteActivityBefore(ctx, now.Add(-24*time.Hour))
	require.NoError(t, err)
	require.Equal(t, int64(1), n)

	count, err := st.Activity().CountActivity(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(1), count)
}

func TestWithTx(t *testing.T) {
	t.Parallel()

	st := newStore(t)
	ctx := context.Background()
	boom := errors.New("boom")

	err := st.WithTx(ctx, func(tx store.Tx) error {
		require.NoError(t, tx.Activity().RecordActivity(ctx, activity("0xaaa", domain.ActionDonate, time.Now())))
		return boom
	})
	require.ErrorIs(t, err, boom)

	count, err := st.Activity().CountActivity(ctx)
	require.NoError(t, err)
	require.Zero(t, count, "rolled back")

	require.NoError(t, st.WithTx(ctx, func(tx store.Tx) error {
		_, err := tx.Tx(ctx)
		require.Error(t, err, "nested tx")
		return tx.Activity().RecordActivity(ctx, activity("0xaaa", domain.ActionDonate, time.Now()))
	}))

	count, err = st.Activity().CountActivity(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(1), count)
}
