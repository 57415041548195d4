package portalsdk

import "time"

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// ============================================================================
// Health
// ============================================================================

// HealthResponse is returned by /livez and /readyz.
type HealthResponse struct {
	Status string `json:"status"`

	// Checks maps a dependency ("database", "nonces", "rpc", "signers") to
	// "ok" or a failure description. Only readiness fills it in.
	Checks map[string]string `json:"checks,omitempty"`
}

// ============================================================================
// Roles, navigation and pages
// ============================================================================

// Role names.
const (
	RoleDefault  = "default"
	RoleVerifier = "verifier"
	RoleOwner    = "owner"
)

// RoleResponse is the resolved role of an address.
type RoleResponse struct {
	Address string `json:"address,omitempty"`
	Role    string `json:"role"`
}

// Navigation item types.
const (
	NavTypeLink     = "link"
	NavTypeDropdown = "dropdown"
)

// NavItem is a menu entry. Links carry a Path; dropdowns carry Items.
type NavItem struct {
	Type  string    `json:"type"`
	Title string    `json:"title"`
	Icon  string    `json:"icon"`
	Path  string    `json:"path,omitempty"`
	Items []NavItem `json:"items,omitempty"`
}

// NavigationResponse is the menu for a role.
type NavigationResponse struct {
	Role  string    `json:"role"`
	Items []NavItem `json:"items"`
}

// EntryPoint documents one registry function.
type EntryPoint struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Params      []string `json:"params"`
}

// VerifierType is a class of registry verifier.
type VerifierType struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ContractInfo describes the deployment the portal talks to.
type ContractInfo struct {
	ChainID       int64          `json:"chainId"`
	Registry      string         `json:"registry"`
	Crowdfunding  string         `json:"crowdfunding"`
	EntryPoints   []EntryPoint   `json:"entryPoints"`
	VerifierTypes []VerifierType `json:"verifierTypes"`
}

// PageResponse is a resolved front-end route.
type PageResponse struct {
	Path       string        `json:"path"`
	Name       string        `json:"name"`
	Action     string        `json:"action,omitempty"`
	Role       string        `json:"role"`
	Navigation []NavItem     `json:"navigation"`
	Contract   *ContractInfo `json:"contract,omitempty"`
}

// ============================================================================
// Wallet sessions
// ============================================================================

// ChallengeRequest asks for a message to sign.
type ChallengeRequest struct {
	Address string `json:"address"`
}

// ChallengeResponse carries the message to sign with personal_sign.
type ChallengeResponse struct {
	Address   string    `json:"address"`
	Nonce     string    `json:"nonce"`
	Message   string    `json:"message"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// SessionRequest exchanges a signed challenge for a session.
type SessionRequest struct {
	Address   string `json:"address"`
	Signature string `json:"signature"`
}

// SessionResponse carries a wallet session token.
type SessionResponse struct {
	AccessToken string    `json:"accessToken"`
	TokenType   string    `json:"tokenType"`
	ExpiresIn   int       `json:"expiresIn"`
	ExpiresAt   time.Time `json:"expiresAt"`
	Address     string    `json:"address"`
}

// ============================================================================
// Actions
// ============================================================================

// Action kinds accepted by POST /v1/actions/{kind}.
const (
	ActionApplyGenesis            = "apply_genesis"
	ActionApplyHealthProfessional = "apply_health_professional"
	ActionApplyDao                = "apply_dao"
	ActionVoteApplication         = "vote_application"
	ActionVoteRevocation          = "vote_revocation"
	ActionFinalizeApplication     = "finalize_application"
	ActionFinalizeRevocation      = "finalize_revocation"
	ActionProposeRevocation       = "propose_revocation"
	ActionProposeFee              = "propose_fee"
	ActionCreateCampaign          = "create_campaign"
	ActionDonate                  = "donate"
	ActionVoteCampaign            = "vote_campaign"
	ActionAppealCampaign          = "appeal_campaign"
	ActionWithdrawFees            = "withdraw_fees"
)

// Dispatch statuses.
const (
	StatusSucceeded = "succeeded"
	StatusFailed    = "failed"
	StatusBusy      = "busy"
)

// Failure explains a failed dispatch.
type Failure struct {
	Kind   string            `json:"kind"`
	Reason string            `json:"reason"`
	Fields map[string]string `json:"fields,omitempty"`
}

// Notice is the user-facing toast for a finished dispatch.
type Notice struct {
	Level   string `json:"level"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

// ActionResponse is the outcome of one dispatch. It is returned with 200
// (succeeded), 422 (failed) or 409 (busy).
type ActionResponse struct {
	Kind        string            `json:"kind"`
	Account     string            `json:"account"`
	Status      string            `json:"status"`
	Stage       string            `json:"stage"`
	Reached     string            `json:"reached"`
	Failure     *Failure          `json:"failure,omitempty"`
	Notice      *Notice           `json:"notice,omitempty"`
	TxHash      string            `json:"txHash,omitempty"`
	BlockNumber uint64            `json:"blockNumber,omitempty"`
	Data        map[string]string `json:"data,omitempty"`
	FinishedAt  *time.Time        `json:"finishedAt,omitempty"`
}

// ============================================================================
// Campaigns
// ============================================================================

// Campaign is a crowdfunding campaign summary. Big numbers are decimal
// strings.
type Campaign struct {
	ID              uint64 `json:"id"`
	Patient         string `json:"patient"`
	AmountNeededUSD string `json:"amountNeededUsd"`
	DonatedWei      string `json:"donatedWei"`
	DonatedEther    string `json:"donatedEther"`
	Status          string `json:"status"`
	HealthYesVotes  string `json:"healthYesVotes"`
	HealthNoVotes   string `json:"healthNoVotes"`
	FeesDistributed bool   `json:"feesDistributed"`
}

// CampaignListResponse is returned by GET /v1/campaigns.
type CampaignListResponse struct {
	Campaigns []Campaign `json:"campaigns"`
}

// CampaignDocuments are the document CIDs a patient agreed to share.
type CampaignDocuments struct {
	CampaignID      uint64 `json:"campaignId"`
	DiagnosisReport string `json:"diagnosisReport,omitempty"`
	DoctorsLetter   string `json:"doctorsLetter,omitempty"`
	MedicalBills    string `json:"medicalBills,omitempty"`
	AdmissionDoc    string `json:"admissionDoc,omitempty"`
	GovernmentID    string `json:"governmentId,omitempty"`
	PatientPhoto    string `json:"patientPhoto,omitempty"`
}

// BalanceResponse is a verifier's withdrawable fee balance.
type BalanceResponse struct {
	Address string `json:"address"`
	Wei     string `json:"wei"`
	Ether   string `json:"ether"`
}

// ============================================================================
// Activity
// ============================================================================

// Activity is one recorded dispatch outcome.
type Activity struct {
	ID          string    `json:"id"`
	Kind        string    `json:"kind"`
	Address     string    `json:"address"`
	Status      string    `json:"status"`
	Stage       string    `json:"stage"`
	FailureKind string    `json:"failureKind,omitempty"`
	Title       string    `json:"title,omitempty"`
	Message     string    `json:"message,omitempty"`
	TxHash      string    `json:"txHash,omitempty"`
	BlockNumber uint64    `json:"blockNumber,omitempty"`
	Detail      string    `json:"detail,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ActivityListResponse is returned by GET /v1/activity.
type ActivityListResponse struct {
	Activity []Activity `json:"activity"`
}
