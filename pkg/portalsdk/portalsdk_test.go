package portalsdk

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestAPIError(t *testing.T) {
	t.Parallel()

	t.Run("write and parse round trip", func(t *testing.T) {
		rec := httptest.NewRecorder()
		ErrNoChallenge.WriteError(rec)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Equal(t, "no-store", rec.Header().Get("Cache-Control"))

		err := parseErrorResponse(rec.Result(), rec.Body.Bytes())
		require.ErrorIs(t, err, ErrNoChallenge)
		require.NotErrorIs(t, err, ErrInvalidSignature)
	})

	t.Run("unknown bodies become server errors", func(t *testing.T) {
		resp := &http.Response{StatusCode: http.StatusBadGateway}
		err := parseErrorResponse(resp, []byte("<html>bad gateway</html>"))

		var apiErr *APIError
		require.True(t, errors.As(err, &apiErr))
		require.Equal(t, ErrorCodeServerError, apiErr.Code)
		require.Contains(t, apiErr.Description, "502")
	})
}

func TestPublicReads(t *testing.T) {
	t.Parallel()

	var gotQuery string
	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/role", func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		writeJSON(w, http.StatusOK, RoleResponse{Address: r.URL.Query().Get("address"), Role: RoleVerifier})
	})
	mux.HandleFunc("GET /v1/navigation", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, NavigationResponse{Role: r.URL.Query().Get("role"), Items: []NavItem{
			{Type: NavTypeLink, Title: "Browse Campaign", Icon: "heart", Path: "/campaigns"},
		}})
	})
	mux.HandleFunc("GET /v1/pages/{path...}", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("path") != "contract" {
			ErrNotFound.WriteError(w)
			return
		}
		writeJSON(w, http.StatusOK, PageResponse{Path: "/contract", Name: "Contract Details", Contract: &ContractInfo{ChainID: 1337}})
	})
	mux.HandleFunc("GET /v1/campaigns", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "active", r.URL.Query().Get("status"))
		writeJSON(w, http.StatusOK, CampaignListResponse{Campaigns: []Campaign{{ID: 3, Status: "active"}}})
	})
	mux.HandleFunc("GET /v1/verifiers/{address}/balance", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, BalanceResponse{Address: r.PathValue("address"), Wei: "1000", Ether: "0.000000000000001"})
	})
	mux.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "unavailable", Checks: map[string]string{"rpc": "dial tcp: refused"}})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	client := NewSDKClient(srv.URL + "/")
	ctx := context.Background()

	role, err := client.GetRole(ctx, "0x2000000000000000000000000000000000000002")
	require.NoError(t, err)
	require.Equal(t, RoleVerifier, role.Role)
	require.Equal(t, "address=0x2000000000000000000000000000000000000002", gotQuery)

	nav, err := client.GetNavigationForRole(ctx, RoleOwner)
	require.NoError(t, err)
	require.Equal(t, RoleOwner, nav.Role)
	require.Len(t, nav.Items, 1)

	page, err := client.GetPage(ctx, "/contract", "")
	require.NoError(t, err)
	require.Equal(t, int64(1337), page.Contract.ChainID)

	_, err = client.GetPage(ctx, "/nope", "")
	require.ErrorIs(t, err, ErrNotFound)

	campaigns, err := client.ListCampaigns(ctx, "active")
	require.NoError(t, err)
	require.Len(t, campaigns, 1)

	bal, err := client.GetVerifierBalance(ctx, "0xabc")
	require.NoError(t, err)
	require.Equal(t, "0xabc", bal.Address)

	ready, err := client.GetReadiness(ctx)
	require.NoError(t, err)
	require.Equal(t, "unavailable", ready.Status)
	require.Contains(t, ready.Checks, "rpc")
}

func TestAuthenticateWithKeyAndDispatch(t *testing.T) {
	t.Parallel()

	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	address := crypto.PubkeyToAddress(key.PublicKey).Hex()
	const message = "careBridge wants you to sign in"

	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/wallet/challenge", func(w http.ResponseWriter, r *http.Request) {
		var req ChallengeRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, address, req.Address)
		writeJSON(w, http.StatusOK, ChallengeResponse{Address: req.Address, Nonce: "n1", Message: message})
	})
	mux.HandleFunc("POST /v1/wallet/session", func(w http.ResponseWriter, r *http.Request) {
		var req SessionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		sig, err := hexutil.Decode(req.Signature)
		require.NoError(t, err)
		sig[crypto.RecoveryIDOffset] -= 27
		pub, err := crypto.SigToPub(accounts.TextHash([]byte(message)), sig)
		require.NoError(t, err)
		if crypto.PubkeyToAddress(*pub).Hex() != req.Address {
			ErrInvalidSignature.WriteError(w)
			return
		}
		writeJSON(w, http.StatusOK, SessionResponse{
			AccessToken: "tok", TokenType: "Bearer", ExpiresIn: 3600,
			ExpiresAt: time.Now().Add(time.Hour), Address: req.Address,
		})
	})
	mux.HandleFunc("POST /v1/actions/{kind}", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok" {
			ErrInvalidToken.WriteError(w)
			return
		}
		switch r.PathValue("kind") {
		case ActionProposeFee:
			writeJSON(w, http.StatusUnprocessableEntity, ActionResponse{
				Kind: ActionProposeFee, Status: StatusFailed,
				Failure: &Failure{Kind: "validation_failed", Reason: "feeBps must be at least 100"},
			})
		case ActionDonate:
			writeJSON(w, http.StatusConflict, ActionResponse{Kind: ActionDonate, Status: StatusBusy})
		default:
			ErrUnknownAction.WriteError(w)
		}
	})
	mux.HandleFunc("GET /v1/activity", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "5", r.URL.Query().Get("limit"))
		writeJSON(w, http.StatusOK, ActivityListResponse{Activity: []Activity{{ID: "a1", Kind: ActionDonate}}})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	client := NewSDKClient(srv.URL)
	ctx := context.Background()

	session, err := client.AuthenticateWithKey(ctx, key)
	require.NoError(t, err)
	require.Equal(t, address, session.Address())
	require.False(t, session.Expired())

	res, err := session.Dispatch(ctx, ActionProposeFee, map[string]any{"feeBps": 50})
	require.NoError(t, err)
	require.Equal(t, StatusFailed, res.Status)
	require.Equal(t, "validation_failed", res.Failure.Kind)

	res, err = session.Dispatch(ctx, ActionDonate, map[string]any{"campaignId": 1, "amount": "0.1"})
	require.NoError(t, err)
	require.Equal(t, StatusBusy, res.Status)

	_, err = session.Dispatch(ctx, "launch_rocket", nil)
	require.ErrorIs(t, err, ErrUnknownAction)

	activity, err := session.ListActivity(ctx, 5)
	require.NoError(t, err)
	require.Len(t, activity, 1)

	stale := client.NewSessionFromToken(address, "old", time.Now().Add(-time.Minute))
	require.True(t, stale.Expired())
	_, err = stale.Dispatch(ctx, ActionDonate, nil)
	require.ErrorIs(t, err, ErrInvalidToken)
}
