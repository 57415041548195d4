package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/aussiebroadwan/carebridge/internal/portal/store"
	"github.com/aussiebroadwan/carebridge/internal/portal/wallet"
	"github.com/aussiebroadwan/carebridge/pkg/idx"
	"github.com/aussiebroadwan/carebridge/pkg/jwtx"
	"github.com/aussiebroadwan/carebridge/pkg/slogx"
)

// DefaultNonceTTL is how long a wallet challenge can be answered.
const DefaultNonceTTL = 5 * time.Minute

var (
	ErrInvalidAddress   = errors.New("service: invalid wallet address")
	ErrInvalidSignature = errors.New("service: invalid signature")
	ErrNoChallenge      = errors.New("service: no pending challenge")
	ErrSignerMismatch   = errors.New("service: signature is not from address")
)

// Challenge is the message a wallet must sign to open a session.
type Challenge struct {
	Address   common.Address
	Nonce     string
	Message   string
	ExpiresAt time.Time
}

// Session is an issued wallet session token.
type Session struct {
	Token     string
	Address   common.Address
	ExpiresAt time.Time
}

// SessionService turns a personal_sign signature over a one-time challenge
// into a session JWT.
type SessionService struct {
	Nonces  store.NonceStore
	Signer  jwtx.Signer
	Service string
	Issuer  string
	ChainID int64

	TTL      time.Duration
	NonceTTL time.Duration

	// Now is overridable in tests.
	Now func() time.Time
}

// Challenge mints a nonce for address and returns the message to sign. A
// new challenge replaces any unanswered one.
func (s *SessionService) Challenge(ctx context.Context, address string) (Challenge, error) {
	addr, err := ParseAddress(address)
	if err != nil {
		return Challenge{}, err
	}

	now := s.now()
	nonce := idx.NewAt(now).String()
	ttl := s.nonceTTL()

	// The issue time is stored with the nonce so the exact message can be
	// rebuilt when the signature comes back.
	stored := nonce + "|" + strconv.FormatInt(now.Unix(), 10)
	if err := s.Nonces.PutNonce(ctx, addr.Hex(), stored, ttl); err != nil {
		return Challenge{}, fmt.Errorf("store nonce: %w", err)
	}

	slogx.FromContext(ctx).Debug("wallet challenge issued", "address", addr.Hex())
	return Challenge{
		Address:   addr,
		Nonce:     nonce,
		Message:   wallet.ChallengeMessage(s.Service, addr, s.ChainID, nonce, time.Unix(now.Unix(), 0)),
		ExpiresAt: now.Add(ttl),
	}, nil
}

// Establish consumes the pending challenge for address and, when signature
// recovers to address, issues a session. The challenge is spent even when
// the signature is wrong.
func (s *SessionService) Establish(ctx context.Context, address, signature string) (Session, error) {
	l := slogx.FromContext(ctx)

	addr, err := ParseAddress(address)
	if err != nil {
		return Session{}, err
	}
	sig, err := hexutil.Decode(strings.TrimSpace(signature))
	if err != nil {
		return Session{}, ErrInvalidSignature
	}

	stored, err := s.Nonces.TakeNonce(ctx, addr.Hex())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return Session{}, ErrNoChallenge
		}
		return Session{}, fmt.Errorf("take nonce: %w", err)
	}
	nonce, issuedUnix, ok := strings.Cut(stored, "|")
	issued, perr := strconv.ParseInt(issuedUnix, 10, 64)
	if !ok || perr != nil {
		return Session{}, ErrNoChallenge
	}

	msg := wallet.ChallengeMessage(s.Service, addr, s.ChainID, nonce, time.Unix(issued, 0))
	signer, err := wallet.RecoverAddress(msg, sig)
	if err != nil {
		return Session{}, ErrInvalidSignature
	}
	if signer != addr {
		l.Info("wallet session rejected", "address", addr.Hex(), "signer", signer.Hex())
		return Session{}, ErrSignerMismatch
	}

	now := s.now()
	claims := jwtx.NewSessionClaims(addr.Hex(), s.ChainID, nonce, s.Issuer, s.ttl(), now)
	token, err := s.Signer.Sign(claims)
	if err != nil {
		return Session{}, fmt.Errorf("sign session: %w", err)
	}

	l.Info("wallet session issued", "address", addr.Hex())
	return Session{Token: token, Address: addr, ExpiresAt: claims.ExpiresAt.Time}, nil
}

// ParseAddress accepts a 0x-prefixed, non-zero hex address.
func ParseAddress(s string) (common.Address, error) {
	s = strings.TrimSpace(s)
	if !common.IsHexAddress(s) || !strings.HasPrefix(strings.ToLower(s), "0x") {
		return common.Address{}, ErrInvalidAddress
	}
	addr := common.HexToAddress(s)
	if addr == (common.Address{}) {
		return common.Address{}, ErrInvalidAddress
	}
	return addr, nil
}

func (s *SessionService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *SessionService) ttl() time.Duration {
	if s.TTL <= 0 {
		return jwtx.DefaultSessionTTL
	}
	return s.TTL
}

func (s *SessionService) nonceTTL() time.Duration {
	if s.NonceTTL <= 0 {
		return DefaultNonceTTL
	}
	return s.NonceTTL
}
