package service

import (
	"context"

	"github.com/ethereum/go-ethereum/common"

	"github.com/aussiebroadwan/carebridge/internal/portal/domain"
	"github.com/aussiebroadwan/carebridge/pkg/slogx"
)

// RegistryReader is the read side of the registry contract that role
// resolution needs.
type RegistryReader interface {
	IsOwner(ctx context.Context, addr common.Address) (bool, error)
	IsApprovedVerifier(ctx context.Context, addr common.Address) (bool, error)
}

// RoleResolver maps a wallet address to a portal role.
type RoleResolver struct {
	Registry RegistryReader
	Metrics  *Metrics
}

// Resolve checks ownership first and verifier approval second. The zero
// address is Default without touching the chain. A failed read is logged
// and treated as Default.
func (s *RoleResolver) Resolve(ctx context.Context, addr common.Address) domain.Role {
	if addr == (common.Address{}) {
		return domain.RoleDefault
	}
	l := slogx.FromContext(ctx).With("address", addr.Hex())

	owner, err := s.Registry.IsOwner(ctx, addr)
	if err != nil {
		l.Warn("owner check failed, falling back to default role", "error", err)
		s.Metrics.role(domain.RoleDefault, true)
		return domain.RoleDefault
	}
	if owner {
		s.Metrics.role(domain.RoleOwner, false)
		return domain.RoleOwner
	}

	verifier, err := s.Registry.IsApprovedVerifier(ctx, addr)
	if err != nil {
		l.Warn("verifier check failed, falling back to default role", "error", err)
		s.Metrics.role(domain.RoleDefault, true)
		return domain.RoleDefault
	}
	if verifier {
		s.Metrics.role(domain.RoleVerifier, false)
		return domain.RoleVerifier
	}

	s.Metrics.role(domain.RoleDefault, false)
	return domain.RoleDefault
}
