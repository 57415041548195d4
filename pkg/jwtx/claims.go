package jwtx

import (
	"crypto/rand"
	"encoding/base64"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultSessionTTL is how long a wallet session lasts unless configured.
const DefaultSessionTTL = time.Hour

// Claims are wallet session claims. Subject is the checksummed address
// that proved control of its key by signing a challenge.
type Claims struct {
	jwt.RegisteredClaims

	// ChainID the session was established for.
	ChainID int64 `json:"chain_id,omitempty"`

	// Nonce is the challenge nonce that was consumed to mint this session.
	Nonce string `json:"nonce,omitempty"`
}

// NewSessionClaims builds claims for address valid from now for ttl.
func NewSessionClaims(address string, chainID int64, nonce, issuer string, ttl time.Duration, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   address,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        NewJTI(),
		},
		ChainID: chainID,
		Nonce:   nonce,
	}
}

// NewJTI returns a URL-safe random identifier for the "jti" claim.
func NewJTI() string {
	var b [16]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}

// ValidateIssuer checks if the issuer matches expected value.
func (c *Claims) ValidateIssuer(expected string) error {
	if expected == "" {
		return nil
	}
	if c.Issuer != expected {
		return ErrIssuer
	}
	return nil
}

// ValidateChain rejects sessions minted for another chain. Zero skips the check.
func (c *Claims) ValidateChain(expected int64) error {
	if expected == 0 {
		return nil
	}
	if c.ChainID != expected {
		return ErrChain
	}
	return nil
}

// ValidateExpiry checks exp and nbf against now, allowing leeway for clock skew.
func (c *Claims) ValidateExpiry(now time.Time, leeway time.Duration) error {
	if c.ExpiresAt != nil && now.After(c.ExpiresAt.Add(leeway)) {
		return ErrExpired
	}
	if c.NotBefore != nil && now.Before(c.NotBefore.Add(-leeway)) {
		return ErrNotYetValid
	}
	return nil
}
