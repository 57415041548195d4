package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/carebridge/pkg/httpx"
	"github.com/aussiebroadwan/carebridge/pkg/portalsdk"
	"github.com/aussiebroadwan/carebridge/pkg/slogx"
)

// LivezHandler godoc
//
//	@Summary		Health Check Endpoint
//	@Description	Liveness probe endpoint returning basic service health status.
//	@Description	This endpoint always returns 200 OK if the service is running
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	portalsdk.HealthResponse	"status"
//	@Router			/livez [get].
func LivezHandler(startTime time.Time, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Uptime", time.Since(startTime).Round(time.Second).String())
		w.Header().Set("X-Version", version)
		httpx.WriteJSON(w, http.StatusOK, portalsdk.HealthResponse{Status: "ok"})
	}
}

// ReadyzHandler reports whether every dependency a dispatch needs is reachable.
type ReadyzHandler struct {
	Database Pinger
	Nonces   Pinger
	RPC      ChainPinger
	Accounts Accounts
}

// ServeHTTP godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Readiness probe endpoint returning service health status and checks for critical dependencies
//	@Description	Checks the activity database, the nonce store, the JSON-RPC endpoint and the loaded signer accounts.
//	@Description	A portal with no signer accounts is reported as degraded but still ready for reads.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	portalsdk.HealthResponse	"status, checks"
//	@Failure		503	{object}	portalsdk.HealthResponse	"status, checks - service not ready"
//	@Router			/readyz [get].
func (h *ReadyzHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	checks := map[string]string{
		"database": "ok",
		"nonces":   "ok",
		"rpc":      "ok",
		"signers":  "ok",
	}
	status := "ok"
	code := http.StatusOK

	fail := func(name string, err error) {
		log.Warn("readiness check failed", "check", name, "error", err)
		checks[name] = "error: " + err.Error()
		status = "unavailable"
		code = http.StatusServiceUnavailable
	}

	if h.Database != nil {
		if err := h.Database.Ping(ctx); err != nil {
			fail("database", err)
		}
	}
	if h.Nonces != nil {
		if err := h.Nonces.Ping(ctx); err != nil {
			fail("nonces", err)
		}
	}
	if h.RPC != nil {
		if _, err := h.RPC.ChainID(ctx); err != nil {
			fail("rpc", err)
		}
	}

	// Reads still work without signers, so this only degrades.
	if h.Accounts == nil || h.Accounts.Len() == 0 {
		checks["signers"] = "none loaded"
		if code == http.StatusOK {
			status = "degraded"
		}
	}

	httpx.WriteJSON(w, code, portalsdk.HealthResponse{Status: status, Checks: checks})
}
