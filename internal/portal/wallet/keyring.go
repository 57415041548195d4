package wallet

import (
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"slices"
	"sync"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/aussiebroadwan/carebridge/internal/portal/domain"
)

var ErrLocked = errors.New("wallet: account locked or unknown")

// Keyring maps addresses to transaction signers. Accounts come from a
// go-ethereum keystore directory or from raw keys added in tests.
type Keyring struct {
	chainID *big.Int

	mu      sync.RWMutex
	signers map[common.Address]bind.SignerFn
	ks      *keystore.KeyStore
}

// NewKeyring returns an empty keyring signing for chainID.
func NewKeyring(chainID int64) *Keyring {
	return &Keyring{
		chainID: big.NewInt(chainID),
		signers: make(map[common.Address]bind.SignerFn),
	}
}

// OpenKeystore loads every account in dir and unlocks it with password.
// Accounts that fail to unlock are reported together; the ones that did
// unlock stay usable.
func OpenKeystore(dir, password string, chainID int64) (*Keyring, error) {
	k := NewKeyring(chainID)
	if dir == "" {
		return k, nil
	}

	k.ks = keystore.NewKeyStore(dir, keystore.StandardScryptN, keystore.StandardScryptP)

	var errs []error
	for _, acct := range k.ks.Accounts() {
		if err := k.ks.Unlock(acct, password); err != nil {
			errs = append(errs, fmt.Errorf("wallet: unlock %s: %w", acct.Address.Hex(), err))
			continue
		}
		if err := k.addKeystoreAccount(acct); err != nil {
			errs = append(errs, err)
		}
	}
	return k, errors.Join(errs...)
}

func (k *Keyring) addKeystoreAccount(acct accounts.Account) error {
	opts, err := bind.NewKeyStoreTransactorWithChainID(k.ks, acct, k.chainID)
	if err != nil {
		return fmt.Errorf("wallet: transactor %s: %w", acct.Address.Hex(), err)
	}
	k.mu.Lock()
	k.signers[acct.Address] = opts.Signer
	k.mu.Unlock()
	return nil
}

// AddKey registers a raw private key and returns its address.
func (k *Keyring) AddKey(key *ecdsa.PrivateKey) (common.Address, error) {
	opts, err := bind.NewKeyedTransactorWithChainID(key, k.chainID)
	if err != nil {
		return common.Address{}, fmt.Errorf("wallet: keyed transactor: %w", err)
	}
	addr := crypto.PubkeyToAddress(key.PublicKey)

	k.mu.Lock()
	k.signers[addr] = opts.Signer
	k.mu.Unlock()
	return addr, nil
}

// Account pairs addr with its signer. The signer is nil when the keyring
// holds no unlocked key for addr, which makes the account not connected.
func (k *Keyring) Account(addr common.Address) domain.Account {
	if k == nil {
		return domain.Account{Address: addr}
	}
	k.mu.RLock()
	defer k.mu.RUnlock()
	return domain.Account{Address: addr, Signer: k.signers[addr]}
}

// Signer returns the signer for addr or ErrLocked.
func (k *Keyring) Signer(addr common.Address) (bind.SignerFn, error) {
	if s := k.Account(addr).Signer; s != nil {
		return s, nil
	}
	return nil, ErrLocked
}

// Addresses lists unlocked accounts in a stable order.
func (k *Keyring) Addresses() []common.Address {
	if k == nil {
		return nil
	}
	k.mu.RLock()
	out := make([]common.Address, 0, len(k.signers))
	for a := range k.signers {
		out = append(out, a)
	}
	k.mu.RUnlock()

	slices.SortFunc(out, func(a, b common.Address) int { return a.Cmp(b) })
	return out
}

// Len is the number of unlocked accounts.
func (k *Keyring) Len() int {
	if k == nil {
		return 0
	}
	k.mu.RLock()
	defer k.mu.RUnlock()
	return len(k.signers)
}

// Close locks every keystore account.
func (k *Keyring) Close() {
	if k == nil || k.ks == nil {
		return
	}
	for _, acct := range k.ks.Accounts() {
		_ = k.ks.Lock(acct.Address)
	}
}
