package domain

import (
	"errors"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

var ErrCampaignNotFound = errors.New("domain: campaign not found")

// CampaignStatus mirrors the crowdfunding contract's enum.
type CampaignStatus uint8

const (
	CampaignPending CampaignStatus = iota
	CampaignApproved
	CampaignRejected
	CampaignActive
	CampaignCompleted
)

var campaignStatusNames = [...]string{"pending", "approved", "rejected", "active", "completed"}

func (s CampaignStatus) String() string {
	if int(s) < len(campaignStatusNames) {
		return campaignStatusNames[s]
	}
	return "unknown"
}

// ParseCampaignStatus accepts the names produced by String.
func ParseCampaignStatus(s string) (CampaignStatus, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range campaignStatusNames {
		if name == s {
			return CampaignStatus(i), true
		}
	}
	return 0, false
}

// Campaign is the summary returned by getCampaign.
type Campaign struct {
	ID              uint64
	Patient         common.Address
	AmountNeededUSD *big.Int
	DonatedWei      *big.Int
	Status          CampaignStatus
	HealthYesVotes  *big.Int
	HealthNoVotes   *big.Int
	FeesDistributed bool
}

// SharedDocuments are the document CIDs the patient consented to share.
// Withheld documents come back empty.
type SharedDocuments struct {
	DiagnosisReport string
	DoctorsLetter   string
	MedicalBills    string
	AdmissionDoc    string
	GovernmentID    string
	PatientPhoto    string
}
