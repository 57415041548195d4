//go:build e2e

package portal_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/carebridge/pkg/portalsdk"
)

// TestDispatchNotConnected verifies a session wallet with no signer fails
// at the guard and that the failure is recorded.
func TestDispatchNotConnected(t *testing.T) {
	baseURL, cleanup := setupPortalContainer(t)
	defer cleanup()

	client := portalsdk.NewSDKClient(baseURL)
	session, _ := login(t, client)

	res, err := session.Dispatch(t.Context(), portalsdk.ActionWithdrawFees, map[string]any{"amount": "0.01"})
	require.NoError(t, err)
	require.Equal(t, portalsdk.StatusFailed, res.Status)
	require.Equal(t, "guarding", res.Reached)
	require.NotNil(t, res.Failure)
	require.Equal(t, "not_connected", res.Failure.Kind)
	require.Empty(t, res.TxHash)

	records, err := session.ListActivity(t.Context(), 10)
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, portalsdk.ActionWithdrawFees, records[0].Kind)
	require.Equal(t, "not_connected", records[0].FailureKind)

	got, err := session.GetActivity(t.Context(), records[0].ID)
	require.NoError(t, err)
	require.Equal(t, records[0].ID, got.ID)
}

// TestDispatchRejections verifies requests rejected before the state
// machine runs.
func TestDispatchRejections(t *testing.T) {
	baseURL, cleanup := setupPortalContainer(t)
	defer cleanup()

	client := portalsdk.NewSDKClient(baseURL)

	t.Run("no session", func(t *testing.T) {
		anon := client.NewSessionFromToken(someAddress, "", time.Time{})
		_, err := anon.Dispatch(t.Context(), portalsdk.ActionWithdrawFees, map[string]any{"amount": "0.01"})
		requireAPIError(t, err, http.StatusUnauthorized)
	})

	session, _ := login(t, client)

	t.Run("unknown action", func(t *testing.T) {
		_, err := session.Dispatch(t.Context(), "mint_tokens", map[string]any{})
		requireAPIError(t, err, http.StatusNotFound)
	})

	t.Run("invalid fee", func(t *testing.T) {
		res, err := session.Dispatch(t.Context(), portalsdk.ActionProposeFee, map[string]any{"feeBps": 50})
		require.NoError(t, err)
		require.Equal(t, portalsdk.StatusFailed, res.Status)
		require.Equal(t, "idle", res.Reached)
	})
}
