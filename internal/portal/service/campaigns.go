package service

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/sync/errgroup"

	"github.com/aussiebroadwan/carebridge/internal/portal/domain"
)

const (
	// DefaultReadConcurrency bounds parallel getCampaign calls in ListCampaigns.
	DefaultReadConcurrency = 8

	// DefaultMaxListed is how many of the newest campaigns ListCampaigns reads.
	DefaultMaxListed = 500
)

// CampaignReader is the read side of the crowdfunding contract.
type CampaignReader interface {
	CampaignCount(ctx context.Context) (uint64, error)
	Campaign(ctx context.Context, id uint64) (domain.Campaign, error)
	Documents(ctx context.Context, id uint64) (domain.SharedDocuments, error)
	VerifierBalance(ctx context.Context, verifier common.Address) (*big.Int, error)
}

type CampaignService struct {
	Reader      CampaignReader
	Concurrency int
	MaxListed   int
}

// GetCampaign returns campaign id, or domain.ErrCampaignNotFound when id is
// past the contract's campaign count.
func (s *CampaignService) GetCampaign(ctx context.Context, id uint64) (domain.Campaign, error) {
	if err := s.checkID(ctx, id); err != nil {
		return domain.Campaign{}, err
	}
	return s.Reader.Campaign(ctx, id)
}

// CampaignDocuments returns the CIDs the patient consented to share.
func (s *CampaignService) CampaignDocuments(ctx context.Context, id uint64) (domain.SharedDocuments, error) {
	if err := s.checkID(ctx, id); err != nil {
		return domain.SharedDocuments{}, err
	}
	return s.Reader.Documents(ctx, id)
}

// ListCampaigns reads the newest MaxListed campaigns and keeps those
// matching status, or all of them when status is nil. Results are in ID
// order. The count comes from the contract, so it is never trusted as an
// allocation size.
func (s *CampaignService) ListCampaigns(ctx context.Context, status *domain.CampaignStatus) ([]domain.Campaign, error) {
	count, err := s.Reader.CampaignCount(ctx)
	if err != nil {
		return nil, err
	}

	var first uint64
	if limit := uint64(s.maxListed()); count > limit {
		first = count - limit
	}

	all := make([]domain.Campaign, count-first)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency())
	for id := first; id < count; id++ {
		g.Go(func() error {
			c, err := s.Reader.Campaign(gctx, id)
			if err != nil {
				return fmt.Errorf("campaign %d: %w", id, err)
			}
			all[id-first] = c
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]domain.Campaign, 0, len(all))
	for _, c := range all {
		if status == nil || c.Status == *status {
			out = append(out, c)
		}
	}
	return out, nil
}

// VerifierBalance returns the wei verifier can withdraw.
func (s *CampaignService) VerifierBalance(ctx context.Context, verifier common.Address) (*big.Int, error) {
	return s.Reader.VerifierBalance(ctx, verifier)
}

func (s *CampaignService) checkID(ctx context.Context, id uint64) error {
	count, err := s.Reader.CampaignCount(ctx)
	if err != nil {
		return err
	}
	if id >= count {
		return domain.ErrCampaignNotFound
	}
	return nil
}

func (s *CampaignService) maxListed() int {
	if s.MaxListed <= 0 {
		return DefaultMaxListed
	}
	return s.MaxListed
}

func (s *CampaignService) concurrency() int {
	if s.Concurrency <= 0 {
		return DefaultReadConcurrency
	}
	return s.Concurrency
}
