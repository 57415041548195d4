package jwtx

import (
	"crypto/ed25519"
	"crypto/rand"
	"fmt"
	"sync"

	"github.com/golang-jwt/jwt/v5"

	"github.com/aussiebroadwan/carebridge/pkg/cryptox"
)

// Signer signs session claims.
type Signer interface {
	KID() string
	Sign(Claims) (string, error)
}

// KeyRing holds the active Ed25519 signing key plus a bounded number of
// retired public keys, so sessions minted before a rotation stay valid
// until they expire. Keys live only in memory: restarting the portal
// ends every session.
type KeyRing struct {
	mu      sync.RWMutex
	kid     string
	priv    ed25519.PrivateKey
	pub     map[string]ed25519.PublicKey
	retired []string
	keep    int
}

// NewKeyRing generates a fresh signing key. keep is how many retired keys
// are still accepted for verification after Rotate.
func NewKeyRing(keep int) (*KeyRing, error) {
	k := &KeyRing{pub: make(map[string]ed25519.PublicKey), keep: max(keep, 0)}
	if err := k.Rotate(); err != nil {
		return nil, err
	}
	return k, nil
}

// NewKeyRingFromPEM uses a PKCS8 Ed25519 private key as the signing key.
func NewKeyRingFromPEM(kid string, pemKey []byte) (*KeyRing, error) {
	priv, err := cryptox.ParseEd25519Key(pemKey)
	if err != nil {
		return nil, fmt.Errorf("jwtx: %w", err)
	}

	return &KeyRing{
		kid:  kid,
		priv: priv,
		pub:  map[string]ed25519.PublicKey{kid: priv.Public().(ed25519.PublicKey)},
	}, nil
}

// Rotate replaces the signing key. The previous key is retired and kept
// for verification; the oldest retired keys beyond keep are forgotten.
func (k *KeyRing) Rotate() error {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return fmt.Errorf("jwtx: generate key: %w", err)
	}
	kid := NewJTI()

	k.mu.Lock()
	defer k.mu.Unlock()

	if k.kid != "" {
		k.retired = append(k.retired, k.kid)
		for len(k.retired) > k.keep {
			delete(k.pub, k.retired[0])
			k.retired = k.retired[1:]
		}
	}
	k.kid = kid
	k.priv = priv
	k.pub[kid] = pub
	return nil
}

// KID returns the key ID of the active signing key.
func (k *KeyRing) KID() string {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return k.kid
}

// Sign turns claims into a compact EdDSA JWT carrying the active kid.
func (k *KeyRing) Sign(claims Claims) (string, error) {
	k.mu.RLock()
	kid, priv := k.kid, k.priv
	k.mu.RUnlock()

	t := jwt.NewWithClaims(jwt.SigningMethodEdDSA, claims)
	t.Header["kid"] = kid
	return t.SignedString(priv)
}

func (k *KeyRing) publicKey(kid string) (ed25519.PublicKey, error) {
	k.mu.RLock()
	defer k.mu.RUnlock()
	if pub, ok := k.pub[kid]; ok {
		return pub, nil
	}
	return nil, ErrUnknownKID
}
