package http

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/aussiebroadwan/carebridge/internal/portal/chain"
	"github.com/aussiebroadwan/carebridge/internal/portal/domain"
	"github.com/aussiebroadwan/carebridge/pkg/portalsdk"
)

func toNavItems(items []domain.NavItem) []portalsdk.NavItem {
	out := make([]portalsdk.NavItem, 0, len(items))
	for _, item := range items {
		switch it := item.(type) {
		case domain.Link:
			out = append(out, toLink(it))
		case domain.DropdownGroup:
			group := portalsdk.NavItem{
				Type:  portalsdk.NavTypeDropdown,
				Title: it.Title,
				Icon:  it.Icon,
				Items: make([]portalsdk.NavItem, len(it.Items)),
			}
			for i, l := range it.Items {
				group.Items[i] = toLink(l)
			}
			out = append(out, group)
		}
	}
	return out
}

func toLink(l domain.Link) portalsdk.NavItem {
	return portalsdk.NavItem{Type: portalsdk.NavTypeLink, Title: l.Title, Icon: l.Icon, Path: l.Path}
}

func toContractInfo(info domain.ContractInfo) portalsdk.ContractInfo {
	out := portalsdk.ContractInfo{
		ChainID:       info.ChainID,
		Registry:      info.Registry.Hex(),
		Crowdfunding:  info.Crowdfunding.Hex(),
		EntryPoints:   make([]portalsdk.EntryPoint, len(info.EntryPoints)),
		VerifierTypes: make([]portalsdk.VerifierType, len(info.VerifierTypes)),
	}
	for i, ep := range info.EntryPoints {
		out.EntryPoints[i] = portalsdk.EntryPoint{Name: ep.Name, Description: ep.Description, Params: ep.Params}
	}
	for i, vt := range info.VerifierTypes {
		out.VerifierTypes[i] = portalsdk.VerifierType{Name: vt.Name, Description: vt.Description}
	}
	return out
}

func toPage(view domain.PageView) portalsdk.PageResponse {
	resp := portalsdk.PageResponse{
		Path:       view.Page.Path,
		Name:       view.Page.Name,
		Action:     string(view.Page.Action),
		Role:       view.Role.String(),
		Navigation: toNavItems(view.Navigation),
	}
	if view.Contract != nil {
		info := toContractInfo(*view.Contract)
		resp.Contract = &info
	}
	return resp
}

func toActionResponse(res domain.Result) portalsdk.ActionResponse {
	resp := portalsdk.ActionResponse{
		Kind:        string(res.Kind),
		Account:     res.Account.Hex(),
		Status:      string(res.Status),
		Stage:       string(res.Stage),
		Reached:     string(res.Reached),
		BlockNumber: res.BlockNumber,
		Data:        res.Data,
	}
	if res.TxHash != (common.Hash{}) {
		resp.TxHash = res.TxHash.Hex()
	}
	if f := res.Failure; f != nil {
		resp.Failure = &portalsdk.Failure{Kind: string(f.Kind), Reason: f.Reason, Fields: f.Fields}
	}
	if n := res.Notice; n != nil {
		resp.Notice = &portalsdk.Notice{Level: string(n.Level), Title: n.Title, Message: n.Message}
	}
	if !res.FinishedAt.IsZero() {
		at := res.FinishedAt
		resp.FinishedAt = &at
	}
	return resp
}

func toCampaign(c domain.Campaign) portalsdk.Campaign {
	return portalsdk.Campaign{
		ID:              c.ID,
		Patient:         c.Patient.Hex(),
		AmountNeededUSD: bigString(c.AmountNeededUSD),
		DonatedWei:      bigString(c.DonatedWei),
		DonatedEther:    chain.FormatEther(c.DonatedWei),
		Status:          c.Status.String(),
		HealthYesVotes:  bigString(c.HealthYesVotes),
		HealthNoVotes:   bigString(c.HealthNoVotes),
		FeesDistributed: c.FeesDistributed,
	}
}

func toDocuments(id uint64, d domain.SharedDocuments) portalsdk.CampaignDocuments {
	return portalsdk.CampaignDocuments{
		CampaignID:      id,
		DiagnosisReport: d.DiagnosisReport,
		DoctorsLetter:   d.DoctorsLetter,
		MedicalBills:    d.MedicalBills,
		AdmissionDoc:    d.AdmissionDoc,
		GovernmentID:    d.GovernmentID,
		PatientPhoto:    d.PatientPhoto,
	}
}

func toActivity(a domain.Activity) portalsdk.Activity {
	return portalsdk.Activity{
		ID:          a.ID,
		Kind:        string(a.Kind),
		Address:     a.Address,
		Status:      string(a.Status),
		Stage:       string(a.Stage),
		FailureKind: string(a.FailureKind),
		Title:       a.Title,
		Message:     a.Message,
		TxHash:      a.TxHash,
		BlockNumber: a.BlockNumber,
		Detail:      a.Detail,
		CreatedAt:   a.CreatedAt,
	}
}

func bigString(v *big.Int) string {
	if v == nil {
		return "0"
	}
	return v.String()
}
