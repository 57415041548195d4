package domain

import (
	"errors"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

var ErrPageNotFound = errors.New("domain: page not found")

// Page is one route of the front-end. Action is empty for read-only pages.
type Page struct {
	Path   string
	Name   string
	Action ActionKind
}

var pages = []Page{
	{Path: "/", Name: "Home"},
	{Path: "/apply/genesis", Name: "Apply as Genesis Member", Action: ActionApplyGenesis},
	{Path: "/apply/health", Name: "Apply as Health Professional", Action: ActionApplyHealthProfessional},
	{Path: "/apply/dao", Name: "Apply as DAO", Action: ActionApplyDao},
	{Path: "/contract", Name: "Contract Details"},
	{Path: "/campaigns/new", Name: "New Campaign", Action: ActionCreateCampaign},
	{Path: "/campaigns/appeal", Name: "Appeal Campaign", Action: ActionAppealCampaign},
	{Path: "/donate", Name: "Donate", Action: ActionDonate},
}

// Pages returns the routing table in declaration order.
func Pages() []Page {
	out := make([]Page, len(pages))
	copy(out, pages)
	return out
}

// NormalizePath trims surrounding space and trailing slashes and makes the
// path absolute. An empty path is the home page.
func NormalizePath(p string) string {
	p = strings.TrimSpace(p)
	p = strings.TrimRight(p, "/")
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return p
}

// LookupPage finds the page for path, or ErrPageNotFound for the catch-all.
func LookupPage(path string) (Page, error) {
	path = NormalizePath(path)
	for _, p := range pages {
		if p.Path == path {
			return p, nil
		}
	}
	return Page{}, ErrPageNotFound
}

// PageView is what the front-end needs to render a route.
type PageView struct {
	Page       Page
	Role       Role
	Navigation []NavItem
	Contract   *ContractInfo
}

// EntryPoint documents one registry function.
type EntryPoint struct {
	Name        string
	Description string
	Params      []string
}

// VerifierType is a class of registry verifier.
type VerifierType struct {
	Name        string
	Description string
}

// ContractInfo describes the deployed contracts for the /contract page.
type ContractInfo struct {
	ChainID       int64
	Registry      common.Address
	Crowdfunding  common.Address
	EntryPoints   []EntryPoint
	VerifierTypes []VerifierType
}

// RegistryEntryPoints lists the registry functions the portal can call.
func RegistryEntryPoints() []EntryPoint {
	return []EntryPoint{
		{Name: "applyAsGenesis", Description: "Apply to become a Genesis committee member", Params: []string{"fullName", "contactInfo", "governmentID", "professionalDocs"}},
		{Name: "applyAsHealthProfessional", Description: "Apply as a Healthcare Professional verifier", Params: []string{"fullName", "contactInfo", "governmentID", "professionalDocs"}},
		{Name: "applyAsDaoVerifier", Description: "Apply as a DAO member verifier", Params: []string{"fullName", "contactInfo", "governmentID"}},
		{Name: "voteOnApplication", Description: "Vote on a pending verifier application", Params: []string{"applicant", "support"}},
		{Name: "finalizeApplication", Description: "Close voting on an application", Params: []string{"applicant"}},
		{Name: "proposeRevocation", Description: "Propose revoking a verifier's status", Params: []string{"target"}},
		{Name: "voteOnRevocation", Description: "Vote on a revocation proposal", Params: []string{"target", "support"}},
		{Name: "finalizeRevocation", Description: "Close voting on a revocation", Params: []string{"target"}},
		{Name: "proposeFeeChange", Description: "Propose a new platform fee in basis points", Params: []string{"newFeeBps"}},
	}
}

// VerifierTypes lists the registry's verifier classes.
func VerifierTypes() []VerifierType {
	return []VerifierType{
		{Name: "Genesis", Description: "Initial governance committee members who bootstrap the system"},
		{Name: "HealthProfessional", Description: "Licensed medical practitioners who verify medical campaigns"},
		{Name: "Dao", Description: "Community-elected members who participate in governance"},
		{Name: "AutoDao", Description: "Automatically approved via significant donation history"},
	}
}
