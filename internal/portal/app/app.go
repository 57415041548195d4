package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/aussiebroadwan/carebridge/internal/portal/chain"
	httpapi "github.com/aussiebroadwan/carebridge/internal/portal/http"
	"github.com/aussiebroadwan/carebridge/internal/portal/service"
	"github.com/aussiebroadwan/carebridge/internal/portal/store"
	"github.com/aussiebroadwan/carebridge/internal/portal/store/drivers/memory"
	"github.com/aussiebroadwan/carebridge/internal/portal/store/drivers/redis"
	"github.com/aussiebroadwan/carebridge/internal/portal/store/drivers/sqlite"
	"github.com/aussiebroadwan/carebridge/internal/portal/wallet"
	"github.com/aussiebroadwan/carebridge/pkg/jwtx"
	"github.com/aussiebroadwan/carebridge/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v0.1.0"
)

// Application encapsulates the portal with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db           store.Store
	nonces       store.NonceStore
	client       *ethclient.Client
	accounts     *wallet.Keyring
	keys         *jwtx.KeyRing
	rotateKeys   bool
	registry     common.Address
	crowdfunding common.Address
	metricsReg   *prometheus.Registry
	metrics      *service.Metrics

	// Services
	roles               *service.RoleResolver
	pages               *service.PageService
	sessions            *service.SessionService
	actions             *service.Actions
	campaigns           *service.CampaignService
	activity            *service.ActivityService
	housekeepingService *service.HousekeepingService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "carebridge-portal",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	var err error
	if app.registry, err = parseContractAddress("registry", cfg.RegistryAddress); err != nil {
		return nil, err
	}
	if app.crowdfunding, err = parseContractAddress("crowdfunding", cfg.CrowdfundingAddress); err != nil {
		return nil, err
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}
	if err := app.initNonces(); err != nil {
		app.closeStores()
		return nil, err
	}
	if err := app.initChain(); err != nil {
		app.closeStores()
		return nil, err
	}

	app.keys, app.rotateKeys, err = InitSessionKeys(cfg, app.logger)
	if err != nil {
		app.closeAll()
		return nil, fmt.Errorf("failed to initialize session keys: %w", err)
	}

	app.initMetrics()
	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.housekeepingService.Start()

	app.logger.Info("portal starting",
		"port", app.cfg.Port,
		"version", BuildVersion,
		"chain_id", app.cfg.ChainID,
		"signers", app.accounts.Len(),
	)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown drains in-flight requests, which includes dispatches waiting
// on confirmation, then closes everything else.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down portal...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.housekeepingService.Stop()

	err := app.closeAll()
	app.logger.Info("portal stopped")
	return err
}

func (app *Application) closeAll() error {
	if app.accounts != nil {
		app.accounts.Close()
	}
	if app.client != nil {
		app.client.Close()
	}
	return app.closeStores()
}

func (app *Application) closeStores() error {
	var errs []error
	if app.nonces != nil {
		if err := app.nonces.Close(); err != nil {
			app.logger.Error("error closing nonce store", "error", err)
			errs = append(errs, err)
		}
	}
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("error closing database", "error", err)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// initDatabase opens the activity log and applies migrations
func (app *Application) initDatabase() error {
	host := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(host)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		app.db = nil
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

// initNonces picks Redis when configured, process memory otherwise
func (app *Application) initNonces() error {
	if app.cfg.RedisURL == "" {
		app.nonces = memory.NewNonceStore()
		app.logger.Info("using in-memory nonce store")
		return nil
	}

	nonces, err := redis.NewNonceStore(app.cfg.RedisURL)
	if err != nil {
		return fmt.Errorf("failed to initialize nonce store: %w", err)
	}
	app.nonces = nonces

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := nonces.Ping(ctx); err != nil {
		app.logger.Warn("redis not reachable, continuing", "error", err)
	} else {
		app.logger.Info("using redis nonce store")
	}
	return nil
}

// initChain dials the RPC endpoint and unlocks the keystore
func (app *Application) initChain() error {
	client, err := DialChain(context.Background(), app.cfg, app.logger)
	if err != nil {
		return fmt.Errorf("failed to connect to chain: %w", err)
	}
	app.client = client

	accounts, err := wallet.OpenKeystore(app.cfg.KeystoreDir, app.cfg.KeystorePassword, app.cfg.ChainID)
	if err != nil {
		// Accounts that did unlock are still served.
		app.logger.Warn("some keystore accounts could not be unlocked", "error", err)
	}
	if accounts == nil {
		accounts = wallet.NewKeyring(app.cfg.ChainID)
	}
	app.accounts = accounts

	for _, addr := range accounts.Addresses() {
		app.logger.Info("signer account loaded", "address", addr.Hex())
	}
	return nil
}

func (app *Application) initMetrics() {
	app.metricsReg = prometheus.NewRegistry()
	app.metricsReg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	app.metrics = service.NewMetrics(app.metricsReg)
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	app.roles = &service.RoleResolver{
		Registry: chain.NewRegistryReader(app.registry, app.client),
		Metrics:  app.metrics,
	}
	app.pages = &service.PageService{
		Roles:        app.roles,
		ChainID:      app.cfg.ChainID,
		Registry:     app.registry,
		Crowdfunding: app.crowdfunding,
	}
	app.sessions = &service.SessionService{
		Nonces:  app.nonces,
		Signer:  app.keys,
		Service: app.cfg.ServiceName,
		Issuer:  app.cfg.Issuer,
		ChainID: app.cfg.ChainID,
		TTL:     app.cfg.SessionTTL,
	}
	app.campaigns = &service.CampaignService{
		Reader: chain.NewCrowdfundingReader(app.crowdfunding, app.client),
	}
	app.activity = &service.ActivityService{Store: app.db}

	app.actions = service.NewActions(service.ActionsConfig{
		Registry:     app.registry,
		Crowdfunding: app.crowdfunding,
		Transactor:   chain.NewEthTransactor(app.client),
		Notifier: service.FanOut{
			service.LogNotifier{Logger: app.logger},
			app.activity,
		},
		Metrics: app.metrics,
	})

	app.housekeepingService = service.NewHousekeepingService(
		app.activity,
		app.logger,
		app.cfg.HousekeepingInterval,
		app.cfg.ActivityRetention,
	)
	app.housekeepingService.Metrics = app.metrics
	if app.rotateKeys {
		app.housekeepingService.Keys = app.keys
	}
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	verifier := jwtx.NewSessionVerifier(app.keys, jwtx.VerifyOptions{
		Issuer:  app.cfg.Issuer,
		ChainID: app.cfg.ChainID,
		Leeway:  30 * time.Second,
	})

	router := httpapi.NewRouter(verifier, BuildVersion, app.logger)

	router.Database = app.db
	router.Nonces = app.nonces
	router.RPC = app.client
	router.Accounts = app.accounts
	router.Gatherer = app.metricsReg
	router.Roles = app.roles
	router.Pages = app.pages
	router.Sessions = app.sessions
	router.Actions = app.actions
	router.Campaigns = app.campaigns
	router.Activity = app.activity
	router.ApplyRoutes()

	app.router = router

	// WriteTimeout is left unset: a dispatch holds its request open until
	// the transaction is mined.
	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
