package httpx

import (
	"net/http"
	"strings"

	"github.com/aussiebroadwan/carebridge/pkg/jwtx"
	"github.com/aussiebroadwan/carebridge/pkg/slogx"
)

// RequireSession rejects requests without a valid wallet session token and
// stores the session address in the request context.
func RequireSession(v jwtx.Verifier) Middleware {
	return sessionMiddleware(v, true)
}

// OptionalSession verifies a session token when one is sent. Requests
// without one pass through untouched; a bad token is still rejected.
func OptionalSession(v jwtx.Verifier) Middleware {
	return sessionMiddleware(v, false)
}

func sessionMiddleware(v jwtx.Verifier, required bool) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			authz := r.Header.Get("Authorization")
			if authz == "" {
				if required {
					writeBearerError(w, "missing bearer token")
					return
				}
				next.ServeHTTP(w, r)
				return
			}
			if !strings.HasPrefix(authz, "Bearer ") {
				writeBearerError(w, "malformed authorization header")
				return
			}
			raw := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))

			claims, err := v.Verify(raw)
			if err != nil {
				log.Warn("session verify failed", "err", err)
				writeBearerError(w, "session verification failed")
				return
			}

			ctx = contextWithSession(ctx, claims)
			ctx = slogx.WithAddress(ctx, claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RFC 6750-compliant error response for bearer auth.
func writeBearerError(w http.ResponseWriter, desc string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+desc+`"`)
	WriteJSON(w, http.StatusUnauthorized, map[string]string{
		"error":             "invalid_token",
		"error_description": desc,
	})
}
