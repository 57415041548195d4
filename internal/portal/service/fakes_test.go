package service

import (
	"context"
	"errors"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/aussiebroadwan/carebridge/internal/portal/chain"
	"github.com/aussiebroadwan/carebridge/internal/portal/domain"
)

const (
	testCIDv0 = "QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG"
	testCIDv1 = "bafybeigdyrzt5sfp7udm7hu76uh7y26nf3efuylqabf3oclgtqy55fbzdi"
)

var (
	registryAddr     = common.HexToAddress("0x00000000000000000000000000000000000000aa")
	crowdfundingAddr = common.HexToAddress("0x00000000000000000000000000000000000000bb")
	ownerAddr        = common.HexToAddress("0x1000000000000000000000000000000000000001")
	verifierAddr     = common.HexToAddress("0x2000000000000000000000000000000000000002")
	userAddr         = common.HexToAddress("0x3000000000000000000000000000000000000003")
)

type fakeRegistry struct {
	mu        sync.Mutex
	owners    map[common.Address]bool
	verifiers map[common.Address]bool
	ownerErr  error
	verifErr  error
	calls     int
}

func (f *fakeRegistry) IsOwner(_ context.Context, addr common.Address) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.ownerErr != nil {
		return false, f.ownerErr
	}
	return f.owners[addr], nil
}

func (f *fakeRegistry) IsApprovedVerifier(_ context.Context, addr common.Address) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.verifErr != nil {
		return false, f.verifErr
	}
	return f.verifiers[addr], nil
}

func (f *fakeRegistry) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// fakeTransactor records calls and can fail or block at each stage.
type fakeTransactor struct {
	mu        sync.Mutex
	simulated []chain.Call
	sent      []chain.Call

	simulateErr error
	sendErr     error
	waitErr     error
	receipt     *types.Receipt
	panicMsg    string

	// sentCh, when set, is signalled after each Send.
	sentCh chan struct{}
	// release, when set, blocks WaitMined until closed.
	release chan struct{}
}

func (f *fakeTransactor) Simulate(_ context.Context, _ common.Address, call chain.Call) error {
	if f.panicMsg != "" {
		panic(f.panicMsg)
	}
	f.mu.Lock()
	f.simulated = append(f.simulated, call)
	f.mu.Unlock()
	return f.simulateErr
}

func (f *fakeTransactor) Send(_ context.Context, _ domain.Account, call chain.Call) (*types.Transaction, error) {
	f.mu.Lock()
	f.sent = append(f.sent, call)
	n := uint64(len(f.sent))
	f.mu.Unlock()
	if f.sentCh != nil {
		f.sentCh <- struct{}{}
	}
	if f.sendErr != nil {
		return nil, f.sendErr
	}
	return types.NewTx(&types.LegacyTx{Nonce: n, To: &call.To, Value: call.Value, Data: call.Data}), nil
}

func (f *fakeTransactor) WaitMined(ctx context.Context, _ *types.Transaction) (*types.Receipt, error) {
	if f.release != nil {
		select {
		case <-f.release:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if f.waitErr != nil {
		return f.receipt, f.waitErr
	}
	if f.receipt != nil {
		return f.receipt, nil
	}
	return &types.Receipt{Status: types.ReceiptStatusSuccessful, BlockNumber: big.NewInt(7)}, nil
}

func (f *fakeTransactor) counts() (simulated, sent int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.simulated), len(f.sent)
}

func (f *fakeTransactor) lastSimulated() chain.Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.simulated[len(f.simulated)-1]
}

type recordingNotifier struct {
	mu       sync.Mutex
	outcomes []Outcome
}

func (n *recordingNotifier) Notify(_ context.Context, o Outcome) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.outcomes = append(n.outcomes, o)
}

func (n *recordingNotifier) all() []Outcome {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]Outcome, len(n.outcomes))
	copy(out, n.outcomes)
	return out
}

func connected(addr common.Address) domain.Account {
	return domain.Account{
		Address: addr,
		Signer: func(common.Address, *types.Transaction) (*types.Transaction, error) {
			return nil, errors.New("fake signer")
		},
	}
}

type fakeCampaigns struct {
	campaigns []domain.Campaign
	// count, when set, is reported instead of len(campaigns); IDs past the
	// fixture read as empty campaigns.
	count     uint64
	countErr  error
	readErr   error
	balances  map[common.Address]*big.Int

	mu      sync.Mutex
	active  int
	maxSeen int
}

func (f *fakeCampaigns) CampaignCount(context.Context) (uint64, error) {
	if f.count != 0 {
		return f.count, f.countErr
	}
	return uint64(len(f.campaigns)), f.countErr
}

func (f *fakeCampaigns) Campaign(_ context.Context, id uint64) (domain.Campaign, error) {
	f.mu.Lock()
	f.active++
	f.maxSeen = max(f.maxSeen, f.active)
	f.mu.Unlock()
	defer func() {
		f.mu.Lock()
		f.active--
		f.mu.Unlock()
	}()

	if f.readErr != nil {
		return domain.Campaign{}, f.readErr
	}
	if id >= uint64(len(f.campaigns)) {
		return domain.Campaign{ID: id}, nil
	}
	return f.campaigns[id], nil
}

func (f *fakeCampaigns) Documents(_ context.Context, id uint64) (domain.SharedDocuments, error) {
	return domain.SharedDocuments{DiagnosisReport: testCIDv0}, nil
}

func (f *fakeCampaigns) VerifierBalance(_ context.Context, v common.Address) (*big.Int, error) {
	if b, ok := f.balances[v]; ok {
		return b, nil
	}
	return new(big.Int), nil
}
