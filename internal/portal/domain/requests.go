package domain

import "strconv"

// Action request payloads. Struct tags drive go-playground/validator; rules
// that depend on the action kind are checked by the dispatcher's validate
// step. Addresses arrive as hex strings and CIDs as their string form.

type ApplicationRequest struct {
	FullName         string `json:"fullName" validate:"required,max=56"`
	ContactInfo      string `json:"contactInfo" validate:"required,max=56"`
	GovernmentID     string `json:"governmentId" validate:"required,max=56"`
	ProfessionalDocs string `json:"professionalDocs,omitempty" validate:"omitempty,cid"`
}

type VoteRequest struct {
	Target  string `json:"target" validate:"required,eth_addr"`
	Support bool   `json:"support"`
}

type FinalizeRequest struct {
	Target string `json:"target" validate:"required,eth_addr"`
}

type RevocationProposal struct {
	Target string `json:"target" validate:"required,eth_addr"`
	Reason string `json:"reason" validate:"required,min=10,max=500"`
}

type FeeProposal struct {
	FeeBps uint64 `json:"feeBps" validate:"gte=100,lte=300"`
}

// FeePercent renders basis points as a percentage, e.g. 250 -> "2.5".
func (p FeeProposal) FeePercent() string {
	whole, frac := p.FeeBps/100, p.FeeBps%100
	switch {
	case frac == 0:
		return strconv.FormatUint(whole, 10)
	case frac%10 == 0:
		return strconv.FormatUint(whole, 10) + "." + strconv.FormatUint(frac/10, 10)
	case frac < 10:
		return strconv.FormatUint(whole, 10) + ".0" + strconv.FormatUint(frac, 10)
	default:
		return strconv.FormatUint(whole, 10) + "." + strconv.FormatUint(frac, 10)
	}
}

type PatientDetails struct {
	FullName          string `json:"fullName" validate:"required,min=2,max=100"`
	DateOfBirth       string `json:"dateOfBirth" validate:"required"`
	ContactInfo       string `json:"contactInfo" validate:"required,min=5,max=100"`
	ResidenceLocation string `json:"residenceLocation" validate:"required,min=5,max=200"`
}

type DocumentConsent struct {
	ShareDiagnosisReport bool `json:"shareDiagnosisReport"`
	ShareDoctorsLetter   bool `json:"shareDoctorsLetter"`
	ShareMedicalBills    bool `json:"shareMedicalBills"`
	ShareAdmissionDoc    bool `json:"shareAdmissionDoc"`
	ShareGovernmentID    bool `json:"shareGovernmentId"`
	SharePatientPhoto    bool `json:"sharePatientPhoto"`
}

type CampaignDocuments struct {
	DiagnosisReport string `json:"diagnosisReport" validate:"required,cid"`
	DoctorsLetter   string `json:"doctorsLetter" validate:"required,cid"`
	MedicalBills    string `json:"medicalBills,omitempty" validate:"omitempty,cid"`
	AdmissionDoc    string `json:"admissionDoc,omitempty" validate:"omitempty,cid"`
	GovernmentID    string `json:"governmentId" validate:"required,cid"`
	PatientPhoto    string `json:"patientPhoto" validate:"required,cid"`
}

type GuardianDetails struct {
	Address            string `json:"address" validate:"required,eth_addr"`
	GovernmentID       string `json:"governmentId" validate:"required"`
	FullName           string `json:"fullName" validate:"required"`
	MobileNumber       string `json:"mobileNumber" validate:"required"`
	ResidentialAddress string `json:"residentialAddress" validate:"required"`
}

type CampaignRequest struct {
	AmountNeededUSD uint64            `json:"amountNeededUsd" validate:"gte=100"`
	DurationDays    uint64            `json:"durationDays" validate:"gte=1"`
	Comment         string            `json:"comment" validate:"required,min=10,max=500"`
	Patient         PatientDetails    `json:"patient"`
	Consent         DocumentConsent   `json:"consent"`
	Documents       CampaignDocuments `json:"documents"`
	Guardian        *GuardianDetails  `json:"guardian,omitempty" validate:"omitempty"`
}

type DonateRequest struct {
	CampaignID uint64 `json:"campaignId"`
	// Amount is a decimal ether string, e.g. "0.05".
	Amount string `json:"amount" validate:"required,ether"`
}

type CampaignVoteRequest struct {
	CampaignID uint64 `json:"campaignId"`
	Support    bool   `json:"support"`
	Comment    string `json:"comment" validate:"required_if=Support false,max=500"`
}

type AppealRequest struct {
	CampaignID uint64 `json:"campaignId"`
	Reason     string `json:"reason" validate:"required,min=10,max=500"`
	Document   string `json:"document" validate:"required,cid"`
}

type WithdrawRequest struct {
	Amount string `json:"amount" validate:"required,ether"`
}
