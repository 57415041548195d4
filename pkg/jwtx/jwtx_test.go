package jwtx_test

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/carebridge/pkg/jwtx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer  = "carebridge-portal"
	testAddress = "0x5B38Da6a701c568545dCfcB03FcB875f56beddC4"
	testChain   = int64(11155111)
)

func newRing(t *testing.T, keep int) *jwtx.KeyRing {
	t.Helper()
	ring, err := jwtx.NewKeyRing(keep)
	require.NoError(t, err)
	return ring
}

func TestSignAndVerify(t *testing.T) {
	t.Parallel()

	ring := newRing(t, 1)
	now := time.Now().UTC()
	claims := jwtx.NewSessionClaims(testAddress, testChain, "n-1", testIssuer, 5*time.Minute, now)

	token, err := ring.Sign(claims)
	require.NoError(t, err)
	require.Len(t, strings.Split(token, "."), 3)

	v := jwtx.NewSessionVerifier(ring, jwtx.VerifyOptions{Issuer: testIssuer, ChainID: testChain})
	got, err := v.Verify(token)
	require.NoError(t, err)
	require.Equal(t, testAddress, got.Subject)
	require.Equal(t, testChain, got.ChainID)
	require.Equal(t, "n-1", got.Nonce)
	require.NotEmpty(t, got.ID)
}

func TestVerifyRejections(t *testing.T) {
	t.Parallel()

	ring := newRing(t, 0)
	now := time.Now().UTC()

	sign := func(c jwtx.Claims) string {
		tok, err := ring.Sign(c)
		require.NoError(t, err)
		return tok
	}

	t.Run("wrong issuer", func(t *testing.T) {
		tok := sign(jwtx.NewSessionClaims(testAddress, testChain, "", "someone-else", time.Minute, now))
		_, err := jwtx.NewSessionVerifier(ring, jwtx.VerifyOptions{Issuer: testIssuer}).Verify(tok)
		require.ErrorIs(t, err, jwtx.ErrIssuer)
	})

	t.Run("wrong chain", func(t *testing.T) {
		tok := sign(jwtx.NewSessionClaims(testAddress, 1, "", testIssuer, time.Minute, now))
		_, err := jwtx.NewSessionVerifier(ring, jwtx.VerifyOptions{ChainID: testChain}).Verify(tok)
		require.ErrorIs(t, err, jwtx.ErrChain)
	})

	t.Run("expired", func(t *testing.T) {
		tok := sign(jwtx.NewSessionClaims(testAddress, testChain, "", testIssuer, time.Minute, now.Add(-time.Hour)))
		_, err := jwtx.NewSessionVerifier(ring, jwtx.VerifyOptions{}).Verify(tok)
		require.ErrorIs(t, err, jwtx.ErrExpired)
	})

	t.Run("leeway covers skew", func(t *testing.T) {
		tok := sign(jwtx.NewSessionClaims(testAddress, testChain, "", testIssuer, time.Minute, now.Add(-70*time.Second)))
		_, err := jwtx.NewSessionVerifier(ring, jwtx.VerifyOptions{Leeway: 30 * time.Second}).Verify(tok)
		require.NoError(t, err)
	})

	t.Run("not yet valid", func(t *testing.T) {
		tok := sign(jwtx.NewSessionClaims(testAddress, testChain, "", testIssuer, time.Minute, now.Add(time.Hour)))
		_, err := jwtx.NewSessionVerifier(ring, jwtx.VerifyOptions{}).Verify(tok)
		require.ErrorIs(t, err, jwtx.ErrNotYetValid)
	})

	t.Run("missing subject", func(t *testing.T) {
		tok := sign(jwtx.NewSessionClaims("", testChain, "", testIssuer, time.Minute, now))
		_, err := jwtx.NewSessionVerifier(ring, jwtx.VerifyOptions{}).Verify(tok)
		require.ErrorIs(t, err, jwtx.ErrNoSubject)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := jwtx.NewSessionVerifier(ring, jwtx.VerifyOptions{}).Verify("not.a.jwt")
		require.ErrorIs(t, err, jwtx.ErrMalformed)
	})

	t.Run("foreign key", func(t *testing.T) {
		other := newRing(t, 0)
		tok, err := other.Sign(jwtx.NewSessionClaims(testAddress, testChain, "", testIssuer, time.Minute, now))
		require.NoError(t, err)
		_, err = jwtx.NewSessionVerifier(ring, jwtx.VerifyOptions{}).Verify(tok)
		require.ErrorIs(t, err, jwtx.ErrUnknownKID)
	})

	t.Run("HS256 refused", func(t *testing.T) {
		c := jwtx.NewSessionClaims(testAddress, testChain, "", testIssuer, time.Minute, now)
		tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString([]byte("secret"))
		require.NoError(t, err)
		_, err = jwtx.NewSessionVerifier(ring, jwtx.VerifyOptions{}).Verify(tok)
		require.ErrorIs(t, err, jwtx.ErrInvalidSig)
	})
}

func TestRotateKeepsRetiredKeys(t *testing.T) {
	t.Parallel()

	ring := newRing(t, 1)
	v := jwtx.NewSessionVerifier(ring, jwtx.VerifyOptions{})
	claims := jwtx.NewSessionClaims(testAddress, testChain, "", testIssuer, time.Minute, time.Now().UTC())

	first, err := ring.Sign(claims)
	require.NoError(t, err)
	firstKID := ring.KID()

	require.NoError(t, ring.Rotate())
	require.NotEqual(t, firstKID, ring.KID())

	_, err = v.Verify(first)
	require.NoError(t, err, "one retired key is kept")

	require.NoError(t, ring.Rotate())
	_, err = v.Verify(first)
	require.ErrorIs(t, err, jwtx.ErrUnknownKID)
}

func TestKeyRingFromPEM(t *testing.T) {
	t.Parallel()

	_, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	der, err := x509.MarshalPKCS8PrivateKey(priv)
	require.NoError(t, err)
	pemKey := pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der})

	ring, err := jwtx.NewKeyRingFromPEM("static", pemKey)
	require.NoError(t, err)
	require.Equal(t, "static", ring.KID())

	tok, err := ring.Sign(jwtx.NewSessionClaims(testAddress, testChain, "", testIssuer, time.Minute, time.Now().UTC()))
	require.NoError(t, err)
	_, err = jwtx.NewSessionVerifier(ring, jwtx.VerifyOptions{}).Verify(tok)
	require.NoError(t, err)

	_, err = jwtx.NewKeyRingFromPEM("bad", []byte("nope"))
	require.Error(t, err)

	rsaLike := pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: []byte{1}})
	_, err = jwtx.NewKeyRingFromPEM("bad", rsaLike)
	require.Error(t, err)
}
