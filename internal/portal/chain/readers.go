package chain

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/aussiebroadwan/carebridge/internal/portal/domain"
)

// RegistryReader answers role questions from the registry contract.
type RegistryReader struct {
	bound *bind.BoundContract
}

func NewRegistryReader(addr common.Address, b bind.ContractCaller) *RegistryReader {
	return &RegistryReader{bound: bind.NewBoundContract(addr, RegistryABI, b, nil, nil)}
}

func (r *RegistryReader) IsOwner(ctx context.Context, addr common.Address) (bool, error) {
	return r.callBool(ctx, "isOwner", addr)
}

func (r *RegistryReader) IsApprovedVerifier(ctx context.Context, addr common.Address) (bool, error) {
	return r.callBool(ctx, "isApprovedVerifier", addr)
}

func (r *RegistryReader) callBool(ctx context.Context, method string, args ...any) (bool, error) {
	var out []any
	if err := r.bound.Call(&bind.CallOpts{Context: ctx}, &out, method, args...); err != nil {
		return false, fmt.Errorf("chain: registry.%s: %w", method, asRevert(err))
	}
	if len(out) != 1 {
		return false, fmt.Errorf("chain: registry.%s: %d outputs", method, len(out))
	}
	v, ok := out[0].(bool)
	if !ok {
		return false, fmt.Errorf("chain: registry.%s: unexpected %T", method, out[0])
	}
	return v, nil
}

// CrowdfundingReader reads campaign state from the crowdfunding contract.
type CrowdfundingReader struct {
	bound *bind.BoundContract
}

func NewCrowdfundingReader(addr common.Address, b bind.ContractCaller) *CrowdfundingReader {
	return &CrowdfundingReader{bound: bind.NewBoundContract(addr, CrowdfundingABI, b, nil, nil)}
}

func (r *CrowdfundingReader) call(ctx context.Context, method string, args ...any) ([]any, error) {
	var out []any
	if err := r.bound.Call(&bind.CallOpts{Context: ctx}, &out, method, args...); err != nil {
		return nil, fmt.Errorf("chain: crowdfunding.%s: %w", method, asRevert(err))
	}
	return out, nil
}

// CampaignCount returns s_campaignCount.
func (r *CrowdfundingReader) CampaignCount(ctx context.Context) (uint64, error) {
	out, err := r.call(ctx, "s_campaignCount")
	if err != nil {
		return 0, err
	}
	n := *abi.ConvertType(out[0], new(*big.Int)).(**big.Int)
	if !n.IsUint64() {
		return 0, fmt.Errorf("chain: campaign count %s out of range", n)
	}
	return n.Uint64(), nil
}

// Campaign returns the getCampaign summary for id.
func (r *CrowdfundingReader) Campaign(ctx context.Context, id uint64) (domain.Campaign, error) {
	out, err := r.call(ctx, "getCampaign", new(big.Int).SetUint64(id))
	if err != nil {
		return domain.Campaign{}, err
	}
	if len(out) != 7 {
		return domain.Campaign{}, fmt.Errorf("chain: crowdfunding.getCampaign: %d outputs", len(out))
	}
	return domain.Campaign{
		ID:              id,
		Patient:         *abi.ConvertType(out[0], new(common.Address)).(*common.Address),
		AmountNeededUSD: bigOrZero(*abi.ConvertType(out[1], new(*big.Int)).(**big.Int)),
		DonatedWei:      bigOrZero(*abi.ConvertType(out[2], new(*big.Int)).(**big.Int)),
		Status:          domain.CampaignStatus(*abi.ConvertType(out[3], new(uint8)).(*uint8)),
		HealthYesVotes:  bigOrZero(*abi.ConvertType(out[4], new(*big.Int)).(**big.Int)),
		HealthNoVotes:   bigOrZero(*abi.ConvertType(out[5], new(*big.Int)).(**big.Int)),
		FeesDistributed: *abi.ConvertType(out[6], new(bool)).(*bool),
	}, nil
}

// Documents returns the consented document CIDs for a campaign.
func (r *CrowdfundingReader) Documents(ctx context.Context, id uint64) (domain.SharedDocuments, error) {
	out, err := r.call(ctx, "getCampaignDocuments", new(big.Int).SetUint64(id))
	if err != nil {
		return domain.SharedDocuments{}, err
	}
	docs := *abi.ConvertType(out[0], new(DocumentsTuple)).(*DocumentsTuple)
	return domain.SharedDocuments{
		DiagnosisReport: docs.DiagnosisReportIPFS,
		DoctorsLetter:   docs.DoctorsLetterIPFS,
		MedicalBills:    docs.MedicalBillsIPFS,
		AdmissionDoc:    docs.AdmissionDocIPFS,
		GovernmentID:    docs.GovernmentIDIPFS,
		PatientPhoto:    docs.PatientPhotoIPFS,
	}, nil
}

// VerifierBalance returns the wei a verifier can withdraw.
func (r *CrowdfundingReader) VerifierBalance(ctx context.Context, verifier common.Address) (*big.Int, error) {
	out, err := r.call(ctx, "getVerifierBalance", verifier)
	if err != nil {
		return nil, err
	}
	return bigOrZero(*abi.ConvertType(out[0], new(*big.Int)).(**big.Int)), nil
}

// CampaignCreatedID finds the campaign ID emitted by a createCampaign
// receipt. The ID is the first indexed topic.
func CampaignCreatedID(receipt *types.Receipt, crowdfunding common.Address) (uint64, bool) {
	ev, ok := CrowdfundingABI.Events["CampaignCreated"]
	if !ok || receipt == nil {
		return 0, false
	}
	for _, l := range receipt.Logs {
		if l.Address != crowdfunding || len(l.Topics) < 2 || l.Topics[0] != ev.ID {
			continue
		}
		id := new(big.Int).SetBytes(l.Topics[1].Bytes())
		if !id.IsUint64() {
			return 0, false
		}
		return id.Uint64(), true
	}
	return 0, false
}
