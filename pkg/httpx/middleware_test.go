package httpx_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/carebridge/pkg/httpx"
	"github.com/aussiebroadwan/carebridge/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func TestChainOrder(t *testing.T) {
	t.Parallel()

	var order []string
	mark := func(name string) httpx.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := httpx.Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "handler")
	}), mark("first"), mark("second"))

	serve(h, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, []string{"first", "second", "handler"}, order)
}

func TestDecodeJSON(t *testing.T) {
	t.Parallel()

	type body struct {
		Fee int `json:"fee"`
	}

	decode := func(payload string) (body, error) {
		var b body
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(payload))
		err := httpx.DecodeJSON(httptest.NewRecorder(), req, &b)
		return b, err
	}

	got, err := decode(`{"fee":200}`)
	require.NoError(t, err)
	require.Equal(t, 200, got.Fee)

	_, err = decode(`{"fee":200,"extra":1}`)
	require.Error(t, err)

	_, err = decode(`{"fee":200}{"fee":300}`)
	require.Error(t, err)

	_, err = decode(`{"fee":`)
	require.Error(t, err)
}

func TestWriteJSON(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	httpx.WriteJSON(rec, http.StatusTeapot, map[string]string{"ok": "yes"})

	require.Equal(t, http.StatusTeapot, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	require.JSONEq(t, `{"ok":"yes"}`, rec.Body.String())
}

func TestSessionMiddleware(t *testing.T) {
	t.Parallel()

	ring, err := jwtx.NewKeyRing(0)
	require.NoError(t, err)
	verifier := jwtx.NewSessionVerifier(ring, jwtx.VerifyOptions{Issuer: "portal"})

	const addr = "0x5B38Da6a701c568545dCfcB03FcB875f56beddC4"
	token, err := ring.Sign(jwtx.NewSessionClaims(addr, 1, "", "portal", time.Minute, time.Now().UTC()))
	require.NoError(t, err)

	echo := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok := httpx.AddressFromContext(r.Context())
		if !ok {
			got = "anonymous"
		}
		_, _ = w.Write([]byte(got))
	})

	call := func(mw httpx.Middleware, authz string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if authz != "" {
			req.Header.Set("Authorization", authz)
		}
		return serve(mw(echo), req)
	}

	t.Run("required accepts valid token", func(t *testing.T) {
		rec := call(httpx.RequireSession(verifier), "Bearer "+token)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, addr, rec.Body.String())
	})

	t.Run("required rejects missing token", func(t *testing.T) {
		rec := call(httpx.RequireSession(verifier), "")
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Contains(t, rec.Header().Get("WWW-Authenticate"), "invalid_token")
	})

	t.Run("rejects non bearer scheme", func(t *testing.T) {
		rec := call(httpx.OptionalSession(verifier), "Basic Zm9vOmJhcg==")
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("optional passes anonymous", func(t *testing.T) {
		rec := call(httpx.OptionalSession(verifier), "")
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "anonymous", rec.Body.String())
	})

	t.Run("optional still rejects bad token", func(t *testing.T) {
		rec := call(httpx.OptionalSession(verifier), "Bearer nope")
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("claims reach the context", func(t *testing.T) {
		h := httpx.RequireSession(verifier)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c, ok := httpx.ClaimsFromContext(r.Context())
			require.True(t, ok)
			require.Equal(t, int64(1), c.ChainID)
		}))
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		require.Equal(t, http.StatusOK, serve(h, req).Code)
	})
}
