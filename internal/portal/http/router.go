package http

import (
	"context"
	"log/slog"
	"math/big"
	"net/http"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aussiebroadwan/carebridge/internal/portal/domain"
	"github.com/aussiebroadwan/carebridge/internal/portal/service"
	"github.com/aussiebroadwan/carebridge/pkg/httpx"
	"github.com/aussiebroadwan/carebridge/pkg/jwtx"
	"github.com/aussiebroadwan/carebridge/pkg/slogx"

	_ "github.com/aussiebroadwan/carebridge/api/portal" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Accounts maps a session address to the account actions are signed with.
type Accounts interface {
	Account(addr common.Address) domain.Account
	Len() int
}

// Pinger is a dependency that can report whether it is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// ChainPinger reports the chain ID of the RPC endpoint.
type ChainPinger interface {
	ChainID(ctx context.Context) (*big.Int, error)
}

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	Database Pinger
	Nonces   Pinger
	RPC      ChainPinger
	Accounts Accounts

	// Gatherer backs /metrics. Nil leaves the route unregistered.
	Gatherer prometheus.Gatherer

	Roles     *service.RoleResolver
	Pages     *service.PageService
	Sessions  *service.SessionService
	Actions   *service.Actions
	Campaigns *service.CampaignService
	Activity  *service.ActivityService
}

func NewRouter(verifier jwtx.Verifier, buildVersion string, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		logger:       logger,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerSystem()
	r.registerPortal()
	r.registerWallet()
	r.registerActions()
	r.registerCampaigns()
	r.registerActivity()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			careBridge Portal API
//	@version		0.1.0
//	@description	Back end for the careBridge medical crowdfunding front end. Resolves wallet roles,
//	@description	navigation and pages, reads campaigns and dispatches registry and crowdfunding
//	@description	contract writes on behalf of wallets that hold a session.
//	@description
//	@description				Sessions are EdDSA JWTs minted from a personal_sign signature over a one-time challenge.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/carebridge
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Wallet session token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerSystem() {
	// Probes and scrapes poll often, so they share the public limit.
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(&ReadyzHandler{
			Database: r.Database,
			Nonces:   r.Nonces,
			RPC:      r.RPC,
			Accounts: r.Accounts,
		},
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)

	if r.Gatherer != nil {
		r.Mux.Handle("GET /metrics", promhttp.HandlerFor(r.Gatherer, promhttp.HandlerOpts{}))
	}
}

func (r *Router) registerPortal() {
	roles := &RoleHandler{Roles: r.Roles}
	nav := &NavigationHandler{Roles: r.Roles}
	pages := &PageHandler{Pages: r.Pages}

	// Role lookups hit the registry, navigation by name does not.
	r.Mux.Handle("GET /v1/role",
		httpx.Chain(roles,
			httpx.OptionalSession(r.verifier),
			httpx.RateLimitByAddress(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /v1/navigation",
		httpx.Chain(nav,
			httpx.OptionalSession(r.verifier),
			httpx.RateLimitByAddress(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /v1/pages/{path...}",
		httpx.Chain(pages,
			httpx.OptionalSession(r.verifier),
			httpx.RateLimitByAddress(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /v1/contracts",
		httpx.Chain(http.HandlerFunc(pages.HandleContracts),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}

func (r *Router) registerWallet() {
	h := &WalletHandler{Sessions: r.Sessions}

	// Strict by IP: both endpoints are unauthenticated and mint state.
	r.Mux.Handle("POST /v1/wallet/challenge",
		httpx.Chain(http.HandlerFunc(h.HandleChallenge),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /v1/wallet/session",
		httpx.Chain(http.HandlerFunc(h.HandleSession),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerActions() {
	h := &ActionHandler{Actions: r.Actions, Accounts: r.Accounts}

	r.Mux.Handle("POST /v1/actions/{kind}",
		httpx.Chain(h,
			httpx.RequireSession(r.verifier),
			httpx.RateLimitByAddress(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerCampaigns() {
	h := &CampaignHandler{Campaigns: r.Campaigns}

	lenient := func(fn http.HandlerFunc) http.Handler {
		return httpx.Chain(fn, httpx.RateLimitByIP(httpx.LenientLimit))
	}

	r.Mux.Handle("GET /v1/campaigns", lenient(h.HandleList))
	r.Mux.Handle("GET /v1/campaigns/{id}", lenient(h.HandleGet))
	r.Mux.Handle("GET /v1/campaigns/{id}/documents", lenient(h.HandleDocuments))
	r.Mux.Handle("GET /v1/verifiers/{address}/balance", lenient(h.HandleBalance))
}

func (r *Router) registerActivity() {
	h := &ActivityHandler{Activity: r.Activity}

	r.Mux.Handle("GET /v1/activity",
		httpx.Chain(h,
			httpx.RequireSession(r.verifier),
			httpx.RateLimitByAddress(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /v1/activity/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			httpx.RequireSession(r.verifier),
			httpx.RateLimitByAddress(httpx.LenientLimit),
		),
	)
}
