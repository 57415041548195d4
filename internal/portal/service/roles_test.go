package service

import (
	"context"
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/carebridge/internal/portal/domain"
)

func TestRoleResolver(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	newRegistry := func() *fakeRegistry {
		return &fakeRegistry{
			owners:    map[common.Address]bool{ownerAddr: true},
			verifiers: map[common.Address]bool{verifierAddr: true, ownerAddr: true},
		}
	}

	t.Run("zero address is default without chain calls", func(t *testing.T) {
		t.Parallel()
		reg := newRegistry()
		r := &RoleResolver{Registry: reg}
		require.Equal(t, domain.RoleDefault, r.Resolve(ctx, common.Address{}))
		require.Zero(t, reg.callCount())
	})

	t.Run("owner short-circuits", func(t *testing.T) {
		t.Parallel()
		reg := newRegistry()
		r := &RoleResolver{Registry: reg}
		require.Equal(t, domain.RoleOwner, r.Resolve(ctx, ownerAddr))
		require.Equal(t, 1, reg.callCount())
	})

	t.Run("approved verifier", func(t *testing.T) {
		t.Parallel()
		r := &RoleResolver{Registry: newRegistry()}
		require.Equal(t, domain.RoleVerifier, r.Resolve(ctx, verifierAddr))
	})

	t.Run("unregistered address is default", func(t *testing.T) {
		t.Parallel()
		r := &RoleResolver{Registry: newRegistry()}
		require.Equal(t, domain.RoleDefault, r.Resolve(ctx, userAddr))
	})

	t.Run("owner check failure falls back to default", func(t *testing.T) {
		t.Parallel()
		reg := newRegistry()
		reg.ownerErr = errors.New("rpc down")
		r := &RoleResolver{Registry: reg}
		require.Equal(t, domain.RoleDefault, r.Resolve(ctx, ownerAddr))
	})

	t.Run("verifier check failure falls back to default", func(t *testing.T) {
		t.Parallel()
		reg := newRegistry()
		reg.verifErr = errors.New("execution reverted")
		r := &RoleResolver{Registry: reg}
		require.Equal(t, domain.RoleDefault, r.Resolve(ctx, verifierAddr))
	})

	t.Run("fail open is counted", func(t *testing.T) {
		t.Parallel()
		m := NewMetrics(prometheus.NewRegistry())
		reg := newRegistry()
		reg.ownerErr = errors.New("timeout")
		r := &RoleResolver{Registry: reg, Metrics: m}

		r.Resolve(ctx, userAddr)
		r.Resolve(ctx, userAddr)
		require.Equal(t, 2.0, testutil.ToFloat64(m.roles.WithLabelValues("default", "fail_open")))
	})
}
