package chain

import (
	"bytes"
	_ "embed"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

var (
	//go:embed abi/registry.json
	registryJSON []byte
	//go:embed abi/crowdfunding.json
	crowdfundingJSON []byte

	RegistryABI     = mustParseABI("registry", registryJSON)
	CrowdfundingABI = mustParseABI("crowdfunding", crowdfundingJSON)
)

func mustParseABI(name string, raw []byte) abi.ABI {
	parsed, err := abi.JSON(bytes.NewReader(raw))
	if err != nil {
		panic(fmt.Sprintf("chain: parse %s abi: %v", name, err))
	}
	return parsed
}

// Contract is a deployed contract the portal talks to.
type Contract struct {
	Name    string
	Address common.Address
	ABI     abi.ABI
}

// Registry binds the verifier registry ABI to addr.
func Registry(addr common.Address) Contract {
	return Contract{Name: "registry", Address: addr, ABI: RegistryABI}
}

// Crowdfunding binds the crowdfunding ABI to addr.
func Crowdfunding(addr common.Address) Contract {
	return Contract{Name: "crowdfunding", Address: addr, ABI: CrowdfundingABI}
}

// Call is a packed contract write, ready to simulate or send.
type Call struct {
	Contract string
	To       common.Address
	Method   string
	Data     []byte
	// Value is the wei attached to payable calls; nil means zero.
	Value *big.Int
}

// NewCall ABI-encodes method(args...) against c.
func NewCall(c Contract, method string, args ...any) (Call, error) {
	data, err := c.ABI.Pack(method, args...)
	if err != nil {
		return Call{}, fmt.Errorf("chain: pack %s.%s: %w", c.Name, method, err)
	}
	return Call{Contract: c.Name, To: c.Address, Method: method, Data: data}, nil
}

// WithValue returns a copy of the call carrying wei.
func (c Call) WithValue(wei *big.Int) Call {
	c.Value = wei
	return c
}

// Tuples for createCampaign and getCampaignDocuments. Field tags map to the
// ABI component names.

type PatientTuple struct {
	FullName          string `abi:"fullName"`
	DateOfBirth       string `abi:"dateOfBirth"`
	ContactInfo       string `abi:"contactInfo"`
	ResidenceLocation string `abi:"residenceLocation"`
}

type ConsentTuple struct {
	ShareDiagnosisReport bool `abi:"shareDiagnosisReport"`
	ShareDoctorsLetter   bool `abi:"shareDoctorsLetter"`
	ShareMedicalBills    bool `abi:"shareMedicalBills"`
	ShareAdmissionDoc    bool `abi:"shareAdmissionDoc"`
	ShareGovernmentID    bool `abi:"shareGovernmentID"`
	SharePatientPhoto    bool `abi:"sharePatientPhoto"`
}

type DocumentsTuple struct {
	DiagnosisReportIPFS string `abi:"diagnosisReportIPFS"`
	DoctorsLetterIPFS   string `abi:"doctorsLetterIPFS"`
	MedicalBillsIPFS    string `abi:"medicalBillsIPFS"`
	AdmissionDocIPFS    string `abi:"admissionDocIPFS"`
	GovernmentIDIPFS    string `abi:"governmentIDIPFS"`
	PatientPhotoIPFS    string `abi:"patientPhotoIPFS"`
}

type GuardianTuple struct {
	Guardian                   common.Address `abi:"guardian"`
	GuardianGovernmentID       string         `abi:"guardianGovernmentID"`
	GuardianFullName           string         `abi:"guardianFullName"`
	GuardianMobileNumber       string         `abi:"guardianMobileNumber"`
	GuardianResidentialAddress string         `abi:"guardianResidentialAddress"`
}
