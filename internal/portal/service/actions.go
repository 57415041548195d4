package service

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-playground/validator/v10"

	"github.com/aussiebroadwan/carebridge/internal/portal/chain"
	"github.com/aussiebroadwan/carebridge/internal/portal/domain"
)

// Action is a Dispatcher with its request type erased, for callers that
// pick the action at runtime.
type Action interface {
	Kind() domain.ActionKind
	DispatchDecoded(ctx context.Context, acct domain.Account, decode func(any) error) (domain.Result, error)
}

// ActionsConfig is shared by every dispatcher.
type ActionsConfig struct {
	Registry     common.Address
	Crowdfunding common.Address
	Transactor   chain.Transactor
	Validator    *validator.Validate
	Notifier     Notifier
	Metrics      *Metrics
}

// Actions holds one dispatcher per action kind. Each dispatcher keeps its
// own in-flight set, so different actions for one account run concurrently.
type Actions struct {
	ApplyGenesis            *Dispatcher[domain.ApplicationRequest]
	ApplyHealthProfessional *Dispatcher[domain.ApplicationRequest]
	ApplyDao                *Dispatcher[domain.ApplicationRequest]
	VoteApplication         *Dispatcher[domain.VoteRequest]
	VoteRevocation          *Dispatcher[domain.VoteRequest]
	FinalizeApplication     *Dispatcher[domain.FinalizeRequest]
	FinalizeRevocation      *Dispatcher[domain.FinalizeRequest]
	ProposeRevocation       *Dispatcher[domain.RevocationProposal]
	ProposeFee              *Dispatcher[domain.FeeProposal]
	CreateCampaign          *Dispatcher[domain.CampaignRequest]
	Donate                  *Dispatcher[domain.DonateRequest]
	VoteCampaign            *Dispatcher[domain.CampaignVoteRequest]
	AppealCampaign          *Dispatcher[domain.AppealRequest]
	WithdrawFees            *Dispatcher[domain.WithdrawRequest]

	byKind map[domain.ActionKind]Action
}

func NewActions(cfg ActionsConfig) *Actions {
	if cfg.Validator == nil {
		cfg.Validator = NewValidator()
	}
	registry := chain.Registry(cfg.Registry)
	crowdfunding := chain.Crowdfunding(cfg.Crowdfunding)

	a := &Actions{
		ApplyGenesis:            newDispatcher(cfg, applyGenesisSpec(registry)),
		ApplyHealthProfessional: newDispatcher(cfg, applyHealthSpec(registry)),
		ApplyDao:                newDispatcher(cfg, applyDaoSpec(registry)),
		VoteApplication:         newDispatcher(cfg, voteApplicationSpec(registry)),
		VoteRevocation:          newDispatcher(cfg, voteRevocationSpec(registry)),
		FinalizeApplication:     newDispatcher(cfg, finalizeApplicationSpec(registry)),
		FinalizeRevocation:      newDispatcher(cfg, finalizeRevocationSpec(registry)),
		ProposeRevocation:       newDispatcher(cfg, proposeRevocationSpec(registry)),
		ProposeFee:              newDispatcher(cfg, proposeFeeSpec(registry)),
		CreateCampaign:          newDispatcher(cfg, createCampaignSpec(crowdfunding)),
		Donate:                  newDispatcher(cfg, donateSpec(crowdfunding)),
		VoteCampaign:            newDispatcher(cfg, voteCampaignSpec(crowdfunding)),
		AppealCampaign:          newDispatcher(cfg, appealCampaignSpec(crowdfunding)),
		WithdrawFees:            newDispatcher(cfg, withdrawFeesSpec(crowdfunding)),
	}

	a.byKind = make(map[domain.ActionKind]Action)
	for _, act := range []Action{
		a.ApplyGenesis, a.ApplyHealthProfessional, a.ApplyDao,
		a.VoteApplication, a.VoteRevocation,
		a.FinalizeApplication, a.FinalizeRevocation,
		a.ProposeRevocation, a.ProposeFee,
		a.CreateCampaign, a.Donate, a.VoteCampaign, a.AppealCampaign, a.WithdrawFees,
	} {
		a.byKind[act.Kind()] = act
	}
	return a
}

func newDispatcher[Req any](cfg ActionsConfig, spec ActionSpec[Req]) *Dispatcher[Req] {
	return NewDispatcher(spec, cfg.Transactor, cfg.Validator, cfg.Notifier, cfg.Metrics)
}

// Lookup returns the dispatcher for kind.
func (a *Actions) Lookup(kind domain.ActionKind) (Action, bool) {
	act, ok := a.byKind[kind]
	return act, ok
}
