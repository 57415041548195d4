package domain_test

import (
	"testing"

	"github.com/aussiebroadwan/carebridge/internal/portal/domain"
	"github.com/stretchr/testify/require"
)

func TestRoleRoundTrip(t *testing.T) {
	t.Parallel()

	for _, r := range []domain.Role{domain.RoleDefault, domain.RoleVerifier, domain.RoleOwner} {
		got, err := domain.ParseRole(r.String())
		require.NoError(t, err)
		require.Equal(t, r, got)
	}

	_, err := domain.ParseRole("admin")
	require.Error(t, err)

	require.Equal(t, "default", domain.Role(42).String())
}

func TestLookupPage(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"":                  "/",
		"/":                 "/",
		"/apply/genesis/":   "/apply/genesis",
		"apply/health":      "/apply/health",
		" /apply/dao ":      "/apply/dao",
		"/campaigns/new":    "/campaigns/new",
		"/campaigns/appeal": "/campaigns/appeal",
		"/donate":           "/donate",
		"/contract":         "/contract",
	}
	for in, want := range cases {
		p, err := domain.LookupPage(in)
		require.NoError(t, err, in)
		require.Equal(t, want, p.Path)
	}

	for _, in := range []string{"/nope", "/apply", "/campaigns", "/APPLY/GENESIS"} {
		_, err := domain.LookupPage(in)
		require.ErrorIs(t, err, domain.ErrPageNotFound, in)
	}
}

func TestPagesBindActions(t *testing.T) {
	t.Parallel()

	bound := map[string]domain.ActionKind{}
	for _, p := range domain.Pages() {
		bound[p.Path] = p.Action
	}
	require.Equal(t, domain.ActionApplyGenesis, bound["/apply/genesis"])
	require.Equal(t, domain.ActionDonate, bound["/donate"])
	require.Empty(t, bound["/contract"])
}

func TestParseActionKind(t *testing.T) {
	t.Parallel()

	for _, k := range domain.ActionKinds() {
		got, err := domain.ParseActionKind(string(k))
		require.NoError(t, err)
		require.Equal(t, k, got)
	}
	_, err := domain.ParseActionKind("mint")
	require.Error(t, err)
}

func TestFeePercent(t *testing.T) {
	t.Parallel()

	cases := map[uint64]string{100: "1", 150: "1.5", 200: "2", 250: "2.5", 105: "1.05", 299: "2.99", 300: "3"}
	for bps, want := range cases {
		require.Equal(t, want, domain.FeeProposal{FeeBps: bps}.FeePercent(), bps)
	}
}

func TestCampaignStatus(t *testing.T) {
	t.Parallel()

	s, ok := domain.ParseCampaignStatus("Active")
	require.True(t, ok)
	require.Equal(t, domain.CampaignActive, s)
	require.Equal(t, "active", s.String())

	_, ok = domain.ParseCampaignStatus("live")
	require.False(t, ok)
	require.Equal(t, "unknown", domain.CampaignStatus(9).String())
}

func TestAccountConnected(t *testing.T) {
	t.Parallel()

	require.False(t, domain.Account{}.Connected())
}
