package service

import (
	"context"

	"github.com/ethereum/go-ethereum/common"

	"github.com/aussiebroadwan/carebridge/internal/portal/domain"
)

// PageService resolves front-end routes into renderable views.
type PageService struct {
	Roles *RoleResolver

	ChainID      int64
	Registry     common.Address
	Crowdfunding common.Address
}

// ContractInfo describes the configured deployment.
func (s *PageService) ContractInfo() domain.ContractInfo {
	return domain.ContractInfo{
		ChainID:       s.ChainID,
		Registry:      s.Registry,
		Crowdfunding:  s.Crowdfunding,
		EntryPoints:   domain.RegistryEntryPoints(),
		VerifierTypes: domain.VerifierTypes(),
	}
}

// ResolvePage returns the page at path with the caller's role and menu.
// Unknown paths return domain.ErrPageNotFound.
func (s *PageService) ResolvePage(ctx context.Context, path string, addr common.Address) (domain.PageView, error) {
	page, err := domain.LookupPage(path)
	if err != nil {
		return domain.PageView{}, err
	}

	role := s.Roles.Resolve(ctx, addr)
	view := domain.PageView{
		Page:       page,
		Role:       role,
		Navigation: ComposeNavigation(role),
	}
	if page.Path == "/contract" {
		info := s.ContractInfo()
		view.Contract = &info
	}
	return view, nil
}
