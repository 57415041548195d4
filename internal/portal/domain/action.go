package domain

import (
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// ActionKind names one contract write the portal can dispatch.
type ActionKind string

const (
	ActionApplyGenesis            ActionKind = "apply_genesis"
	ActionApplyHealthProfessional ActionKind = "apply_health_professional"
	ActionApplyDao                ActionKind = "apply_dao"
	ActionVoteApplication         ActionKind = "vote_application"
	ActionVoteRevocation          ActionKind = "vote_revocation"
	ActionFinalizeApplication     ActionKind = "finalize_application"
	ActionFinalizeRevocation      ActionKind = "finalize_revocation"
	ActionProposeRevocation       ActionKind = "propose_revocation"
	ActionProposeFee              ActionKind = "propose_fee"
	ActionCreateCampaign          ActionKind = "create_campaign"
	ActionDonate                  ActionKind = "donate"
	ActionVoteCampaign            ActionKind = "vote_campaign"
	ActionAppealCampaign          ActionKind = "appeal_campaign"
	ActionWithdrawFees            ActionKind = "withdraw_fees"
)

var actionKinds = []ActionKind{
	ActionApplyGenesis,
	ActionApplyHealthProfessional,
	ActionApplyDao,
	ActionVoteApplication,
	ActionVoteRevocation,
	ActionFinalizeApplication,
	ActionFinalizeRevocation,
	ActionProposeRevocation,
	ActionProposeFee,
	ActionCreateCampaign,
	ActionDonate,
	ActionVoteCampaign,
	ActionAppealCampaign,
	ActionWithdrawFees,
}

// ActionKinds returns every dispatchable action.
func ActionKinds() []ActionKind {
	out := make([]ActionKind, len(actionKinds))
	copy(out, actionKinds)
	return out
}

// ParseActionKind rejects names outside ActionKinds.
func ParseActionKind(s string) (ActionKind, error) {
	for _, k := range actionKinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("domain: unknown action %q", s)
}

// Stage is a state of the dispatch state machine. Stages only move forward.
type Stage string

const (
	StageIdle       Stage = "idle"
	StageGuarding   Stage = "guarding"
	StageSimulating Stage = "simulating"
	StageSubmitting Stage = "submitting"
	StageConfirming Stage = "confirming"
	StageSucceeded  Stage = "succeeded"
	StageFailed     Stage = "failed"
)

// Status is the outcome of one Dispatch call.
type Status string

const (
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
	// StatusBusy means a dispatch for the same account was already running
	// and this one did nothing.
	StatusBusy Status = "busy"
)

// FailureKind classifies why a dispatch failed.
type FailureKind string

const (
	FailureNotConnected       FailureKind = "not_connected"
	FailureValidation         FailureKind = "validation_failed"
	FailureSimulationReverted FailureKind = "simulation_reverted"
	FailureSubmissionRejected FailureKind = "submission_rejected"
	FailureConfirmation       FailureKind = "confirmation_failed"
	FailureUnknown            FailureKind = "unknown_error"
)

// Failure carries the kind plus the underlying reason, verbatim.
type Failure struct {
	Kind   FailureKind
	Reason string
	// Fields holds per-field messages for validation failures.
	Fields map[string]string
}

func (f *Failure) Error() string {
	if f.Reason == "" {
		return string(f.Kind)
	}
	return string(f.Kind) + ": " + f.Reason
}

// NoticeLevel is the toast variant.
type NoticeLevel string

const (
	NoticeSuccess NoticeLevel = "success"
	NoticeError   NoticeLevel = "error"
)

// Notification is the user-facing message for a terminal dispatch outcome.
type Notification struct {
	Level   NoticeLevel
	Title   string
	Message string
}

// Result is what Dispatch returns. Exactly one of Failure or a successful
// Status is meaningful; busy results carry neither a failure nor a notice.
type Result struct {
	Kind        ActionKind
	Account     common.Address
	Status      Status
	// Stage is terminal (succeeded or failed) once Dispatch returns; Reached
	// is the last stage entered before that.
	Stage       Stage
	Reached     Stage
	Failure     *Failure
	Notice      *Notification
	TxHash      common.Hash
	BlockNumber uint64
	// Data carries action-specific outputs such as the new campaign ID.
	Data       map[string]string
	FinishedAt time.Time
}

func (r Result) Succeeded() bool { return r.Status == StatusSucceeded }
func (r Result) Busy() bool      { return r.Status == StatusBusy }
