package service

import (
	"context"
	"crypto/ecdsa"
	"strings"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/carebridge/internal/portal/store/drivers/memory"
	"github.com/aussiebroadwan/carebridge/internal/portal/wallet"
	"github.com/aussiebroadwan/carebridge/pkg/jwtx"
)

type sessionFixture struct {
	svc    *SessionService
	keys   *jwtx.KeyRing
	nonces *memory.NonceStore
	clock  *time.Time
}

func newSessionFixture(t *testing.T) *sessionFixture {
	t.Helper()
	keys, err := jwtx.NewKeyRing(1)
	require.NoError(t, err)

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	f := &sessionFixture{keys: keys, clock: &now}
	clock := func() time.Time { return *f.clock }
	f.nonces = memory.NewNonceStore().WithClock(clock)
	f.svc = &SessionService{
		Nonces:  f.nonces,
		Signer:  keys,
		Service: "careBridge",
		Issuer:  "carebridge-portal",
		ChainID: 11155111,
		TTL:     30 * time.Minute,
		Now:     clock,
	}
	return f
}

func signChallenge(t *testing.T, key *ecdsa.PrivateKey, message string) string {
	t.Helper()
	sig, err := wallet.SignMessage(key, message)
	require.NoError(t, err)
	return hexutil.Encode(sig)
}

func TestSessionRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newSessionFixture(t)

	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	addr := crypto.PubkeyToAddress(key.PublicKey)

	ch, err := f.svc.Challenge(ctx, addr.Hex())
	require.NoError(t, err)
	require.Equal(t, addr, ch.Address)
	require.Contains(t, ch.Message, addr.Hex())
	require.Contains(t, ch.Message, ch.Nonce)
	require.Equal(t, f.clock.Add(DefaultNonceTTL), ch.ExpiresAt)

	sess, err := f.svc.Establish(ctx, addr.Hex(), signChallenge(t, key, ch.Message))
	require.NoError(t, err)
	require.Equal(t, addr, sess.Address)
	require.Equal(t, f.clock.Add(30*time.Minute), sess.ExpiresAt)

	v := jwtx.NewSessionVerifier(f.keys, jwtx.VerifyOptions{
		Issuer:  "carebridge-portal",
		ChainID: 11155111,
		Now:     func() time.Time { return *f.clock },
	})
	claims, err := v.Verify(sess.Token)
	require.NoError(t, err)
	require.Equal(t, addr.Hex(), claims.Subject)
	require.Equal(t, ch.Nonce, claims.Nonce)

	t.Run("nonce is single use", func(t *testing.T) {
		_, err := f.svc.Establish(ctx, addr.Hex(), signChallenge(t, key, ch.Message))
		require.ErrorIs(t, err, ErrNoChallenge)
	})
}

func TestSessionRejections(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	addr := crypto.PubkeyToAddress(key.PublicKey)

	t.Run("bad address", func(t *testing.T) {
		t.Parallel()
		f := newSessionFixture(t)
		for _, in := range []string{"", "0x123", "not-an-address", "0x0000000000000000000000000000000000000000"} {
			_, err := f.svc.Challenge(ctx, in)
			require.ErrorIs(t, err, ErrInvalidAddress, in)
		}
	})

	t.Run("no challenge", func(t *testing.T) {
		t.Parallel()
		f := newSessionFixture(t)
		_, err := f.svc.Establish(ctx, addr.Hex(), hexutil.Encode(make([]byte, 65)))
		require.ErrorIs(t, err, ErrNoChallenge)
	})

	t.Run("expired challenge", func(t *testing.T) {
		t.Parallel()
		f := newSessionFixture(t)
		ch, err := f.svc.Challenge(ctx, addr.Hex())
		require.NoError(t, err)

		later := f.clock.Add(DefaultNonceTTL + time.Second)
		f.clock = &later
		_, err = f.svc.Establish(ctx, addr.Hex(), signChallenge(t, key, ch.Message))
		require.ErrorIs(t, err, ErrNoChallenge)
	})

	t.Run("signature from another key", func(t *testing.T) {
		t.Parallel()
		f := newSessionFixture(t)
		other, err := crypto.GenerateKey()
		require.NoError(t, err)

		ch, err := f.svc.Challenge(ctx, addr.Hex())
		require.NoError(t, err)
		_, err = f.svc.Establish(ctx, addr.Hex(), signChallenge(t, other, ch.Message))
		require.ErrorIs(t, err, ErrSignerMismatch)
	})

	t.Run("malformed signature", func(t *testing.T) {
		t.Parallel()
		f := newSessionFixture(t)
		_, err := f.svc.Challenge(ctx, addr.Hex())
		require.NoError(t, err)

		_, err = f.svc.Establish(ctx, addr.Hex(), "0xzz")
		require.ErrorIs(t, err, ErrInvalidSignature)

		_, err = f.svc.Establish(ctx, addr.Hex(), "0x1234")
		require.ErrorIs(t, err, ErrInvalidSignature)

		_, err = f.svc.Establish(ctx, addr.Hex(), "0x1234")
		require.ErrorIs(t, err, ErrNoChallenge, "a rejected signature still spends the challenge")
	})

	t.Run("lower-case address matches checksummed challenge", func(t *testing.T) {
		t.Parallel()
		f := newSessionFixture(t)
		ch, err := f.svc.Challenge(ctx, addr.Hex())
		require.NoError(t, err)

		_, err = f.svc.Establish(ctx, strings.ToLower(addr.Hex()), signChallenge(t, key, ch.Message))
		require.NoError(t, err)
	})
}
