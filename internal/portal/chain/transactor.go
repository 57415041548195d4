package chain

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/aussiebroadwan/carebridge/internal/portal/domain"
)

// ErrReceiptFailed is returned when a transaction was mined but reverted.
var ErrReceiptFailed = errors.New("chain: transaction reverted on chain")

// Transactor runs the three chain-facing stages of a dispatch.
type Transactor interface {
	// Simulate dry-runs call from the given address without broadcasting.
	Simulate(ctx context.Context, from common.Address, call Call) error
	// Send signs call with acct's signer and broadcasts it.
	Send(ctx context.Context, acct domain.Account, call Call) (*types.Transaction, error)
	// WaitMined blocks until tx has a receipt or ctx ends.
	WaitMined(ctx context.Context, tx *types.Transaction) (*types.Receipt, error)
}

// EthTransactor implements Transactor over a Backend.
type EthTransactor struct {
	backend Backend

	mu     sync.Mutex
	nonces map[common.Address]*sync.Mutex
}

func NewEthTransactor(b Backend) *EthTransactor {
	return &EthTransactor{backend: b, nonces: make(map[common.Address]*sync.Mutex)}
}

func (t *EthTransactor) Simulate(ctx context.Context, from common.Address, call Call) error {
	msg := ethereum.CallMsg{
		From:  from,
		To:    &call.To,
		Value: call.Value,
		Data:  call.Data,
	}
	if _, err := t.backend.CallContract(ctx, msg, nil); err != nil {
		return asRevert(err)
	}
	return nil
}

// Send holds a per-address lock while the nonce is picked and the
// transaction broadcast, so two actions from one account never reuse a
// pending nonce.
func (t *EthTransactor) Send(ctx context.Context, acct domain.Account, call Call) (*types.Transaction, error) {
	if acct.Signer == nil {
		return nil, errors.New("chain: account has no signer")
	}

	lock := t.nonceLock(acct.Address)
	lock.Lock()
	defer lock.Unlock()

	// bind refuses to estimate gas for targets without code, so estimate
	// here with the exact message that will be sent.
	gas, err := t.backend.EstimateGas(ctx, ethereum.CallMsg{
		From:  acct.Address,
		To:    &call.To,
		Value: call.Value,
		Data:  call.Data,
	})
	if err != nil {
		return nil, asRevert(err)
	}

	bound := bind.NewBoundContract(call.To, abi.ABI{}, t.backend, t.backend, t.backend)
	opts := &bind.TransactOpts{
		From:     acct.Address,
		Signer:   acct.Signer,
		Value:    call.Value,
		GasLimit: gas,
		Context:  ctx,
	}
	tx, err := bound.RawTransact(opts, call.Data)
	if err != nil {
		return nil, asRevert(err)
	}
	return tx, nil
}

func (t *EthTransactor) WaitMined(ctx context.Context, tx *types.Transaction) (*types.Receipt, error) {
	receipt, err := bind.WaitMined(ctx, t.backend, tx)
	if err != nil {
		return nil, fmt.Errorf("chain: wait mined %s: %w", tx.Hash().Hex(), err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return receipt, fmt.Errorf("%w: %s", ErrReceiptFailed, tx.Hash().Hex())
	}
	return receipt, nil
}

func (t *EthTransactor) nonceLock(addr common.Address) *sync.Mutex {
	t.mu.Lock()
	defer t.mu.Unlock()
	l, ok := t.nonces[addr]
	if !ok {
		l = &sync.Mutex{}
		t.nonces[addr] = l
	}
	return l
}

// ChainID asks the backend which chain it serves.
func ChainID(ctx context.Context, b Backend) (int64, error) {
	id, err := b.ChainID(ctx)
	if err != nil {
		return 0, fmt.Errorf("chain: chain id: %w", err)
	}
	if !id.IsInt64() {
		return 0, fmt.Errorf("chain: chain id %s out of range", id)
	}
	return id.Int64(), nil
}

// bigOrZero keeps nil big.Ints out of ABI results.
func bigOrZero(v *big.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}
	return v
}
