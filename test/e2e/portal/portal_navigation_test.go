//go:build e2e

package portal_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/carebridge/pkg/portalsdk"
)

const someAddress = "0x70997970C51812dc3A010C7d01b50e0d17dc79C8"

// TestRoleFailsOpen verifies an unanswered registry lookup resolves to the
// default role instead of an error.
func TestRoleFailsOpen(t *testing.T) {
	baseURL, cleanup := setupPortalContainer(t)
	defer cleanup()

	client := portalsdk.NewSDKClient(baseURL)

	t.Run("address", func(t *testing.T) {
		role, err := client.GetRole(t.Context(), someAddress)
		require.NoError(t, err)
		require.Equal(t, portalsdk.RoleDefault, role.Role)
	})

	t.Run("no address", func(t *testing.T) {
		role, err := client.GetRole(t.Context(), "")
		require.NoError(t, err)
		require.Equal(t, portalsdk.RoleDefault, role.Role)
	})

	t.Run("session", func(t *testing.T) {
		session, _ := login(t, client)
		role, err := session.GetRole(t.Context())
		require.NoError(t, err)
		require.Equal(t, portalsdk.RoleDefault, role.Role)
	})

	t.Run("malformed address", func(t *testing.T) {
		_, err := client.GetRole(t.Context(), "not-an-address")
		requireAPIError(t, err, http.StatusBadRequest)
	})
}

// TestNavigationMenus verifies each role gets its own menu.
func TestNavigationMenus(t *testing.T) {
	baseURL, cleanup := setupPortalContainer(t)
	defer cleanup()

	client := portalsdk.NewSDKClient(baseURL)

	titles := func(items []portalsdk.NavItem) []string {
		var out []string
		for _, item := range items {
			out = append(out, item.Title)
		}
		return out
	}

	def, err := client.GetNavigation(t.Context(), someAddress)
	require.NoError(t, err)
	require.Equal(t, portalsdk.RoleDefault, def.Role)
	require.Contains(t, titles(def.Items), "Become Verifier")

	owner, err := client.GetNavigationForRole(t.Context(), portalsdk.RoleOwner)
	require.NoError(t, err)
	require.Equal(t, portalsdk.RoleOwner, owner.Role)
	require.NotContains(t, titles(owner.Items), "Become Verifier")

	_, err = client.GetNavigationForRole(t.Context(), "admin")
	requireAPIError(t, err, http.StatusBadRequest)
}

// TestPagesAndContracts verifies page resolution and the deployment info.
func TestPagesAndContracts(t *testing.T) {
	baseURL, cleanup := setupPortalContainer(t)
	defer cleanup()

	client := portalsdk.NewSDKClient(baseURL)

	home, err := client.GetPage(t.Context(), "/", "")
	require.NoError(t, err)
	require.Equal(t, "/", home.Path)
	require.NotEmpty(t, home.Navigation)

	_, err = client.GetPage(t.Context(), "/no-such-page", "")
	requireAPIError(t, err, http.StatusNotFound)

	info, err := client.GetContracts(t.Context())
	require.NoError(t, err)
	require.EqualValues(t, 31337, info.ChainID)
	require.NotEmpty(t, info.EntryPoints)
}

// TestCampaignsWithoutChain verifies chain reads fail as 502.
func TestCampaignsWithoutChain(t *testing.T) {
	baseURL, cleanup := setupPortalContainer(t)
	defer cleanup()

	client := portalsdk.NewSDKClient(baseURL)

	_, err := client.ListCampaigns(t.Context(), "")
	requireAPIError(t, err, http.StatusBadGateway)
}
