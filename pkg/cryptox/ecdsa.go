package cryptox

import (
	"crypto/ecdsa"
	"fmt"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// GenerateWalletKey generates a secp256k1 wallet key and returns it hex
// encoded without a 0x prefix, as `geth account import` expects, along
// with its address.
func GenerateWalletKey() (string, common.Address, error) {
	key, err := crypto.GenerateKey()
	if err != nil {
		return "", common.Address{}, fmt.Errorf("cryptox: failed to generate wallet key: %w", err)
	}
	return fmt.Sprintf("%x", crypto.FromECDSA(key)), crypto.PubkeyToAddress(key.PublicKey), nil
}

// ParseWalletKey decodes a hex secp256k1 key. Surrounding whitespace and a
// 0x prefix are ignored.
func ParseWalletKey(s string) (*ecdsa.PrivateKey, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "0x")
	key, err := crypto.HexToECDSA(s)
	if err != nil {
		return nil, fmt.Errorf("cryptox: parse wallet key: %w", err)
	}
	return key, nil
}

// LoadWalletKey reads a hex secp256k1 key from path.
func LoadWalletKey(path string) (*ecdsa.PrivateKey, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cryptox: read wallet key: %w", err)
	}
	return ParseWalletKey(string(raw))
}
