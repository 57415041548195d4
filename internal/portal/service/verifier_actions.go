package service

import (
	"encoding/json"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/aussiebroadwan/carebridge/internal/portal/chain"
	"github.com/aussiebroadwan/carebridge/internal/portal/domain"
)

const (
	titleApplicationSubmitted = "Application Submitted"
	titleApplicationFailed    = "Application Failed"
	titleVoteSubmitted        = "Vote Submitted"
	titleVoteFailed           = "Vote Failed"
	titleProposalFailed       = "Proposal Failed"
	titleFinalizationFailed   = "Finalization Failed"
)

func applyGenesisSpec(registry chain.Contract) ActionSpec[domain.ApplicationRequest] {
	return ActionSpec[domain.ApplicationRequest]{
		Kind:         domain.ActionApplyGenesis,
		Verb:         "apply",
		SuccessTitle: titleApplicationSubmitted,
		SuccessMessage: func(domain.ApplicationRequest) string {
			return "Your Genesis member application has been submitted successfully."
		},
		FailureTitle: titleApplicationFailed,
		Build: func(r domain.ApplicationRequest) (chain.Call, error) {
			return chain.NewCall(registry, "applyAsGenesis", r.FullName, r.ContactInfo, r.GovernmentID, r.ProfessionalDocs)
		},
	}
}

func applyHealthSpec(registry chain.Contract) ActionSpec[domain.ApplicationRequest] {
	return ActionSpec[domain.ApplicationRequest]{
		Kind:         domain.ActionApplyHealthProfessional,
		Verb:         "apply",
		SuccessTitle: titleApplicationSubmitted,
		SuccessMessage: func(domain.ApplicationRequest) string {
			return "Your Health Professional application has been submitted successfully."
		},
		FailureTitle: titleApplicationFailed,
		Check: func(r domain.ApplicationRequest) *domain.Failure {
			if r.ProfessionalDocs == "" {
				return &domain.Failure{
					Kind:   domain.FailureValidation,
					Reason: "professionalDocs is required",
					Fields: map[string]string{"professionalDocs": "is required"},
				}
			}
			return nil
		},
		Build: func(r domain.ApplicationRequest) (chain.Call, error) {
			return chain.NewCall(registry, "applyAsHealthProfessional", r.FullName, r.ContactInfo, r.GovernmentID, r.ProfessionalDocs)
		},
	}
}

// DAO applications carry no professional documents; any supplied are not sent.
func applyDaoSpec(registry chain.Contract) ActionSpec[domain.ApplicationRequest] {
	return ActionSpec[domain.ApplicationRequest]{
		Kind:         domain.ActionApplyDao,
		Verb:         "apply",
		SuccessTitle: titleApplicationSubmitted,
		SuccessMessage: func(domain.ApplicationRequest) string {
			return "Your DAO member application has been submitted successfully."
		},
		FailureTitle: titleApplicationFailed,
		Build: func(r domain.ApplicationRequest) (chain.Call, error) {
			return chain.NewCall(registry, "applyAsDaoVerifier", r.FullName, r.ContactInfo, r.GovernmentID)
		},
	}
}

func voteApplicationSpec(registry chain.Contract) ActionSpec[domain.VoteRequest] {
	return ActionSpec[domain.VoteRequest]{
		Kind:         domain.ActionVoteApplication,
		Verb:         "vote",
		SuccessTitle: titleVoteSubmitted,
		SuccessMessage: func(r domain.VoteRequest) string {
			return "Your " + voteWord(r.Support) + " vote has been recorded."
		},
		FailureTitle: titleVoteFailed,
		Build: func(r domain.VoteRequest) (chain.Call, error) {
			return chain.NewCall(registry, "voteOnApplication", common.HexToAddress(r.Target), r.Support)
		},
	}
}

func voteRevocationSpec(registry chain.Contract) ActionSpec[domain.VoteRequest] {
	return ActionSpec[domain.VoteRequest]{
		Kind:         domain.ActionVoteRevocation,
		Verb:         "vote",
		SuccessTitle: titleVoteSubmitted,
		SuccessMessage: func(r domain.VoteRequest) string {
			return "Your " + voteWord(r.Support) + " vote for revocation has been recorded."
		},
		FailureTitle: titleVoteFailed,
		Build: func(r domain.VoteRequest) (chain.Call, error) {
			return chain.NewCall(registry, "voteOnRevocation", common.HexToAddress(r.Target), r.Support)
		},
	}
}

func finalizeApplicationSpec(registry chain.Contract) ActionSpec[domain.FinalizeRequest] {
	return ActionSpec[domain.FinalizeRequest]{
		Kind:         domain.ActionFinalizeApplication,
		Verb:         "finalize an application",
		SuccessTitle: "Application Finalized",
		SuccessMessage: func(r domain.FinalizeRequest) string {
			return "Voting on the application from " + common.HexToAddress(r.Target).Hex() + " has been finalized."
		},
		FailureTitle: titleFinalizationFailed,
		Build: func(r domain.FinalizeRequest) (chain.Call, error) {
			return chain.NewCall(registry, "finalizeApplication", common.HexToAddress(r.Target))
		},
	}
}

func finalizeRevocationSpec(registry chain.Contract) ActionSpec[domain.FinalizeRequest] {
	return ActionSpec[domain.FinalizeRequest]{
		Kind:         domain.ActionFinalizeRevocation,
		Verb:         "finalize a revocation",
		SuccessTitle: "Revocation Finalized",
		SuccessMessage: func(r domain.FinalizeRequest) string {
			return "Voting on the revocation of " + common.HexToAddress(r.Target).Hex() + " has been finalized."
		},
		FailureTitle: titleFinalizationFailed,
		Build: func(r domain.FinalizeRequest) (chain.Call, error) {
			return chain.NewCall(registry, "finalizeRevocation", common.HexToAddress(r.Target))
		},
	}
}

// The contract only takes the target; the reason travels as activity detail.
func proposeRevocationSpec(registry chain.Contract) ActionSpec[domain.RevocationProposal] {
	return ActionSpec[domain.RevocationProposal]{
		Kind:         domain.ActionProposeRevocation,
		Verb:         "propose revocation",
		SuccessTitle: "Proposal Submitted",
		SuccessMessage: func(domain.RevocationProposal) string {
			return "Your revocation proposal has been submitted successfully."
		},
		FailureTitle: titleProposalFailed,
		Build: func(r domain.RevocationProposal) (chain.Call, error) {
			return chain.NewCall(registry, "proposeRevocation", common.HexToAddress(r.Target))
		},
		Detail: func(r domain.RevocationProposal) string {
			b, err := json.Marshal(struct {
				Target string `json:"target"`
				Reason string `json:"reason"`
			}{common.HexToAddress(r.Target).Hex(), r.Reason})
			if err != nil {
				return ""
			}
			return string(b)
		},
	}
}

func proposeFeeSpec(registry chain.Contract) ActionSpec[domain.FeeProposal] {
	return ActionSpec[domain.FeeProposal]{
		Kind:         domain.ActionProposeFee,
		Verb:         "propose a fee change",
		SuccessTitle: "Fee Proposal Submitted",
		SuccessMessage: func(r domain.FeeProposal) string {
			return "Your proposal for a " + r.FeePercent() + "% fee has been submitted successfully."
		},
		FailureTitle: titleProposalFailed,
		Invalid: &domain.Notification{
			Level:   domain.NoticeError,
			Title:   "Invalid fee amount",
			Message: "Fee must be between 100 and 300 basis points (1-3%)",
		},
		Build: func(r domain.FeeProposal) (chain.Call, error) {
			return chain.NewCall(registry, "proposeFeeChange", new(big.Int).SetUint64(r.FeeBps))
		},
	}
}

func voteWord(support bool) string {
	if support {
		return "approval"
	}
	return "rejection"
}
