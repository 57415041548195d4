package service

import (
	"encoding/json"
	"math/big"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/aussiebroadwan/carebridge/internal/portal/chain"
	"github.com/aussiebroadwan/carebridge/internal/portal/domain"
)

func createCampaignSpec(crowdfunding chain.Contract) ActionSpec[domain.CampaignRequest] {
	return ActionSpec[domain.CampaignRequest]{
		Kind:         domain.ActionCreateCampaign,
		Verb:         "create a campaign",
		SuccessTitle: "Campaign Created",
		SuccessMessage: func(domain.CampaignRequest) string {
			return "Your medical crowdfunding campaign has been submitted successfully."
		},
		FailureTitle: "Campaign Creation Failed",
		Build: func(r domain.CampaignRequest) (chain.Call, error) {
			return chain.NewCall(crowdfunding, "createCampaign",
				new(big.Int).SetUint64(r.AmountNeededUSD),
				new(big.Int).SetUint64(r.DurationDays),
				r.Comment,
				patientTuple(r.Patient),
				consentTuple(r.Consent),
				documentsTuple(r.Documents),
				guardianTuple(r.Guardian),
			)
		},
		Outputs: func(_ domain.CampaignRequest, receipt *types.Receipt) map[string]string {
			id, ok := chain.CampaignCreatedID(receipt, crowdfunding.Address)
			if !ok {
				return nil
			}
			return map[string]string{"campaignId": strconv.FormatUint(id, 10)}
		},
	}
}

func donateSpec(crowdfunding chain.Contract) ActionSpec[domain.DonateRequest] {
	return ActionSpec[domain.DonateRequest]{
		Kind:         domain.ActionDonate,
		Verb:         "donate",
		SuccessTitle: "Donation Successful",
		SuccessMessage: func(domain.DonateRequest) string {
			return "Thank you for your donation to this medical campaign."
		},
		FailureTitle: "Donation Failed",
		Build: func(r domain.DonateRequest) (chain.Call, error) {
			wei, err := chain.ParseEther(r.Amount)
			if err != nil {
				return chain.Call{}, err
			}
			call, err := chain.NewCall(crowdfunding, "donate", new(big.Int).SetUint64(r.CampaignID))
			if err != nil {
				return chain.Call{}, err
			}
			return call.WithValue(wei), nil
		},
		Outputs: func(r domain.DonateRequest, _ *types.Receipt) map[string]string {
			wei, _ := chain.ParseEther(r.Amount)
			return map[string]string{
				"campaignId": strconv.FormatUint(r.CampaignID, 10),
				"amountWei":  wei.String(),
			}
		},
	}
}

func voteCampaignSpec(crowdfunding chain.Contract) ActionSpec[domain.CampaignVoteRequest] {
	return ActionSpec[domain.CampaignVoteRequest]{
		Kind:         domain.ActionVoteCampaign,
		Verb:         "vote",
		SuccessTitle: titleVoteSubmitted,
		SuccessMessage: func(r domain.CampaignVoteRequest) string {
			return "Your " + voteWord(r.Support) + " vote has been recorded."
		},
		FailureTitle: titleVoteFailed,
		Build: func(r domain.CampaignVoteRequest) (chain.Call, error) {
			return chain.NewCall(crowdfunding, "voteOnCampaign", new(big.Int).SetUint64(r.CampaignID), r.Support, r.Comment)
		},
	}
}

// The contract only takes the campaign ID; the reason and supporting
// document travel as activity detail.
func appealCampaignSpec(crowdfunding chain.Contract) ActionSpec[domain.AppealRequest] {
	return ActionSpec[domain.AppealRequest]{
		Kind:         domain.ActionAppealCampaign,
		Verb:         "appeal",
		SuccessTitle: "Appeal Submitted",
		SuccessMessage: func(domain.AppealRequest) string {
			return "Your campaign appeal has been submitted successfully."
		},
		FailureTitle: "Appeal Failed",
		Build: func(r domain.AppealRequest) (chain.Call, error) {
			return chain.NewCall(crowdfunding, "appealCampaign", new(big.Int).SetUint64(r.CampaignID))
		},
		Detail: func(r domain.AppealRequest) string {
			b, err := json.Marshal(struct {
				CampaignID uint64 `json:"campaignId"`
				Reason     string `json:"reason"`
				Document   string `json:"document"`
			}{r.CampaignID, r.Reason, r.Document})
			if err != nil {
				return ""
			}
			return string(b)
		},
	}
}

func withdrawFeesSpec(crowdfunding chain.Contract) ActionSpec[domain.WithdrawRequest] {
	return ActionSpec[domain.WithdrawRequest]{
		Kind:         domain.ActionWithdrawFees,
		Verb:         "withdraw fees",
		SuccessTitle: "Fees Withdrawn",
		SuccessMessage: func(domain.WithdrawRequest) string {
			return "Your verifier fees have been withdrawn successfully."
		},
		FailureTitle: "Withdrawal Failed",
		Invalid: &domain.Notification{
			Level:   domain.NoticeError,
			Title:   "Invalid amount",
			Message: "Please enter a valid amount greater than 0",
		},
		Build: func(r domain.WithdrawRequest) (chain.Call, error) {
			wei, err := chain.ParseEther(r.Amount)
			if err != nil {
				return chain.Call{}, err
			}
			return chain.NewCall(crowdfunding, "withdrawVerifierFees", wei)
		},
		Outputs: func(r domain.WithdrawRequest, _ *types.Receipt) map[string]string {
			wei, _ := chain.ParseEther(r.Amount)
			return map[string]string{"amountWei": wei.String()}
		},
	}
}

func patientTuple(p domain.PatientDetails) chain.PatientTuple {
	return chain.PatientTuple{
		FullName:          p.FullName,
		DateOfBirth:       p.DateOfBirth,
		ContactInfo:       p.ContactInfo,
		ResidenceLocation: p.ResidenceLocation,
	}
}

func consentTuple(c domain.DocumentConsent) chain.ConsentTuple {
	return chain.ConsentTuple{
		ShareDiagnosisReport: c.ShareDiagnosisReport,
		ShareDoctorsLetter:   c.ShareDoctorsLetter,
		ShareMedicalBills:    c.ShareMedicalBills,
		ShareAdmissionDoc:    c.ShareAdmissionDoc,
		ShareGovernmentID:    c.ShareGovernmentID,
		SharePatientPhoto:    c.SharePatientPhoto,
	}
}

func documentsTuple(d domain.CampaignDocuments) chain.DocumentsTuple {
	return chain.DocumentsTuple{
		DiagnosisReportIPFS: d.DiagnosisReport,
		DoctorsLetterIPFS:   d.DoctorsLetter,
		MedicalBillsIPFS:    d.MedicalBills,
		AdmissionDocIPFS:    d.AdmissionDoc,
		GovernmentIDIPFS:    d.GovernmentID,
		PatientPhotoIPFS:    d.PatientPhoto,
	}
}

// guardianTuple sends the zero address and empty strings when there is no
// guardian.
func guardianTuple(g *domain.GuardianDetails) chain.GuardianTuple {
	if g == nil {
		return chain.GuardianTuple{}
	}
	return chain.GuardianTuple{
		Guardian:                   common.HexToAddress(g.Address),
		GuardianGovernmentID:       g.GovernmentID,
		GuardianFullName:           g.FullName,
		GuardianMobileNumber:       g.MobileNumber,
		GuardianResidentialAddress: g.ResidentialAddress,
	}
}
