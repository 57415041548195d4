package memory_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/aussiebroadwan/carebridge/internal/portal/store"
	"github.com/aussiebroadwan/carebridge/internal/portal/store/drivers/memory"
	"github.com/stretchr/testify/require"
)

func TestNonceStore(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("take consumes once", func(t *testing.T) {
		s := memory.NewNonceStore()
		require.NoError(t, s.PutNonce(ctx, "0xABC", "n1", time.Minute))

		got, err := s.TakeNonce(ctx, "0xabc")
		require.NoError(t, err)
		require.Equal(t, "n1", got)

		_, err = s.TakeNonce(ctx, "0xabc")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("put replaces", func(t *testing.T) {
		s := memory.NewNonceStore()
		require.NoError(t, s.PutNonce(ctx, "0xabc", "n1", time.Minute))
		require.NoError(t, s.PutNonce(ctx, "0xabc", "n2", time.Minute))

		got, err := s.TakeNonce(ctx, "0xabc")
		require.NoError(t, err)
		require.Equal(t, "n2", got)
	})

	t.Run("expired nonces are gone", func(t *testing.T) {
		now := time.Unix(1700000000, 0)
		s := memory.NewNonceStore().WithClock(func() time.Time { return now })
		require.NoError(t, s.PutNonce(ctx, "0xabc", "n1", time.Minute))

		now = now.Add(time.Minute)
		_, err := s.TakeNonce(ctx, "0xabc")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("concurrent takers get it once", func(t *testing.T) {
		s := memory.NewNonceStore()
		require.NoError(t, s.PutNonce(ctx, "0xabc", "n1", time.Minute))

		var wins atomic.Int32
		var wg sync.WaitGroup
		for range 16 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if _, err := s.TakeNonce(ctx, "0xabc"); err == nil {
					wins.Add(1)
				}
			}()
		}
		wg.Wait()
		require.Equal(t, int32(1), wins.Load())
	})
}
