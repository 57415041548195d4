package service

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/carebridge/internal/portal/domain"
)

func campaignsFixture(n int) *fakeCampaigns {
	f := &fakeCampaigns{}
	for i := range n {
		status := domain.CampaignPending
		if i%3 == 0 {
			status = domain.CampaignActive
		}
		f.campaigns = append(f.campaigns, domain.Campaign{ID: uint64(i), Status: status, DonatedWei: big.NewInt(int64(i))})
	}
	return f
}

func TestListCampaigns(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("all in id order", func(t *testing.T) {
		t.Parallel()
		svc := &CampaignService{Reader: campaignsFixture(20)}
		all, err := svc.ListCampaigns(ctx, nil)
		require.NoError(t, err)
		require.Len(t, all, 20)
		for i, c := range all {
			require.Equal(t, uint64(i), c.ID)
		}
	})

	t.Run("status filter", func(t *testing.T) {
		t.Parallel()
		svc := &CampaignService{Reader: campaignsFixture(10)}
		active := domain.CampaignActive
		got, err := svc.ListCampaigns(ctx, &active)
		require.NoError(t, err)
		require.Len(t, got, 4)
		for _, c := range got {
			require.Equal(t, domain.CampaignActive, c.Status)
		}
	})

	t.Run("concurrency is bounded", func(t *testing.T) {
		t.Parallel()
		reader := campaignsFixture(64)
		svc := &CampaignService{Reader: reader, Concurrency: 3}
		_, err := svc.ListCampaigns(ctx, nil)
		require.NoError(t, err)
		require.LessOrEqual(t, reader.maxSeen, 3)
	})

	t.Run("empty contract", func(t *testing.T) {
		t.Parallel()
		svc := &CampaignService{Reader: &fakeCampaigns{}}
		got, err := svc.ListCampaigns(ctx, nil)
		require.NoError(t, err)
		require.Empty(t, got)
	})

	t.Run("only the newest are read", func(t *testing.T) {
		t.Parallel()
		svc := &CampaignService{Reader: campaignsFixture(10), MaxListed: 4}
		got, err := svc.ListCampaigns(ctx, nil)
		require.NoError(t, err)
		require.Len(t, got, 4)
		for i, c := range got {
			require.Equal(t, uint64(6+i), c.ID)
		}
	})

	t.Run("huge on-chain count is capped", func(t *testing.T) {
		t.Parallel()
		reader := &fakeCampaigns{count: 1 << 62}
		svc := &CampaignService{Reader: reader}
		got, err := svc.ListCampaigns(ctx, nil)
		require.NoError(t, err)
		require.Len(t, got, DefaultMaxListed)
		require.Equal(t, uint64(1<<62-1), got[len(got)-1].ID)
	})

	t.Run("read errors propagate", func(t *testing.T) {
		t.Parallel()
		reader := campaignsFixture(5)
		reader.readErr = errors.New("rpc down")
		svc := &CampaignService{Reader: reader}
		_, err := svc.ListCampaigns(ctx, nil)
		require.ErrorContains(t, err, "rpc down")
	})
}

func TestGetCampaign(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := &CampaignService{Reader: campaignsFixture(3)}

	c, err := svc.GetCampaign(ctx, 2)
	require.NoError(t, err)
	require.Equal(t, uint64(2), c.ID)

	_, err = svc.GetCampaign(ctx, 3)
	require.ErrorIs(t, err, domain.ErrCampaignNotFound)

	_, err = svc.CampaignDocuments(ctx, 9)
	require.ErrorIs(t, err, domain.ErrCampaignNotFound)

	docs, err := svc.CampaignDocuments(ctx, 0)
	require.NoError(t, err)
	require.Equal(t, testCIDv0, docs.DiagnosisReport)
}

func TestVerifierBalance(t *testing.T) {
	t.Parallel()

	reader := &fakeCampaigns{balances: map[common.Address]*big.Int{verifierAddr: big.NewInt(42)}}
	svc := &CampaignService{Reader: reader}

	bal, err := svc.VerifierBalance(context.Background(), verifierAddr)
	require.NoError(t, err)
	require.Equal(t, int64(42), bal.Int64())

	bal, err = svc.VerifierBalance(context.Background(), userAddr)
	require.NoError(t, err)
	require.Zero(t, bal.Sign())
}
