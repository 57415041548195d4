package jwtx

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Verifier validates a session token and returns its claims.
type Verifier interface {
	Verify(token string) (Claims, error)
}

var (
	ErrMalformed   = errors.New("jwtx: malformed token")
	ErrUnknownKID  = errors.New("jwtx: unknown kid")
	ErrInvalidSig  = errors.New("jwtx: invalid signature")
	ErrIssuer      = errors.New("jwtx: issuer mismatch")
	ErrChain       = errors.New("jwtx: chain mismatch")
	ErrExpired     = errors.New("jwtx: token expired")
	ErrNotYetValid = errors.New("jwtx: token not yet valid")
	ErrNoSubject   = errors.New("jwtx: missing subject")
)

// VerifyOptions captures what a session must carry to be accepted.
type VerifyOptions struct {
	// Issuer the token must have. Empty means "don't care".
	Issuer string

	// ChainID the session must be bound to. Zero means "don't care".
	ChainID int64

	// Leeway allows small clock skew when validating exp/nbf.
	Leeway time.Duration

	// Now is the clock, defaulting to time.Now.
	Now func() time.Time
}

// SessionVerifier verifies EdDSA session tokens against a KeyRing.
type SessionVerifier struct {
	keys *KeyRing
	opts VerifyOptions
}

// NewSessionVerifier returns a Verifier over keys.
func NewSessionVerifier(keys *KeyRing, opts VerifyOptions) *SessionVerifier {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &SessionVerifier{keys: keys, opts: opts}
}

// Verify validates the JWT string and returns its parsed Claims.
func (v *SessionVerifier) Verify(tokenStr string) (Claims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodEdDSA.Alg()}),
		jwt.WithoutClaimsValidation(),
	)

	var claims Claims
	_, err := parser.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (any, error) {
		kid, _ := t.Header["kid"].(string)
		if kid == "" {
			return nil, ErrUnknownKID
		}
		return v.keys.publicKey(kid)
	})
	switch {
	case err == nil:
	case errors.Is(err, ErrUnknownKID):
		return Claims{}, ErrUnknownKID
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return Claims{}, ErrInvalidSig
	default:
		return Claims{}, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	if claims.Subject == "" {
		return Claims{}, ErrNoSubject
	}
	if err := claims.ValidateIssuer(v.opts.Issuer); err != nil {
		return Claims{}, err
	}
	if err := claims.ValidateChain(v.opts.ChainID); err != nil {
		return Claims{}, err
	}
	if err := claims.ValidateExpiry(v.opts.Now().UTC(), v.opts.Leeway); err != nil {
		return Claims{}, err
	}
	return claims, nil
}
