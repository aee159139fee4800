package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cerebro-wallet/config"
	httpHandler "cerebro-wallet/internal/adapter/http/handler"
	memStorage "cerebro-wallet/internal/adapter/storage/memory"
	pgStorage "cerebro-wallet/internal/adapter/storage/postgres"
	redisStorage "cerebro-wallet/internal/adapter/storage/redis"
	"cerebro-wallet/internal/core/domain"
	"cerebro-wallet/internal/core/ports"
	"cerebro-wallet/internal/service"
	"cerebro-wallet/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Str("backend", cfg.Storage.Backend).
		Int("port", cfg.Server.Port).
		Msg("Starting Cerebro Wallet Engine")

	ctx := context.Background()

	// Initialize stores per configured backend
	var (
		walletStore    ports.WalletStore
		txStore        ports.TransactionStore
		subsidyStore   ports.SubsidyStore
		userStore      ports.UserStore
		healthCheckers []ports.HealthChecker
	)

	switch cfg.Storage.Backend {
	case "postgres":
		pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
		}
		defer pool.Close()

		walletStore = pgStorage.NewWalletStore(pool)
		txStore = pgStorage.NewTransactionStore(pool)
		subsidyStore = pgStorage.NewSubsidyStore(pool)
		userStore = pgStorage.NewUserStore(pool)
		healthCheckers = append(healthCheckers, pgStorage.NewHealthCheck(pool))
	case "memory":
		walletStore = memStorage.NewWalletStore()
		txStore = memStorage.NewTransactionStore()
		subsidyStore = memStorage.NewSubsidyStore()
		userStore = memStorage.NewUserStore()
	default:
		log.Fatal().Str("backend", cfg.Storage.Backend).Msg("Unknown storage backend")
	}

	// Redis-backed stores (optional)
	var tokenStore ports.ValidationTokenStore
	var rateLimitStore *redisStorage.RateLimitStore
	if cfg.Redis.Enabled {
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()

		tokenStore = redisStorage.NewValidationTokenStore(rdb)
		rateLimitStore = redisStorage.NewRateLimitStore(rdb)
		healthCheckers = append(healthCheckers, redisStorage.NewHealthCheck(rdb))
	}

	// Shield registry with the default shield set
	registry := memStorage.NewShieldRegistry()
	registerDefaultShields(registry)

	// Collaborators
	semaphore := service.NewStaticTerritorySemaphore(nil)
	authz := service.NewStaticAuthorizationService()
	biometric := service.NewStubBiometricProvider(true, 3, log)

	// Core services
	hashSvc := service.NewArgon2HashService()
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)

	ledgerSvc := service.NewLedgerService(walletStore, txStore, log)
	shieldEngine := service.NewShieldEngine(semaphore, ledgerSvc, cfg.Guard.FreshnessWindow, log)
	guardSvc := service.NewGuardService(walletStore, authz, registry, shieldEngine, log)
	txSvc := service.NewTransactionService(txStore, ledgerSvc, guardSvc, log)
	identitySvc := service.NewIdentityService(userStore, hashSvc, tokenSvc, ledgerSvc, log)
	subsidySvc := service.NewSubsidyService(subsidyStore, ledgerSvc, authz, identitySvc, registry, shieldEngine, log)

	catalog := service.NewIntentCatalog()
	cerebroSvc := service.NewCerebroService(catalog, authz, txSvc, ledgerSvc, log)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		IdentitySvc:     identitySvc,
		CerebroSvc:      cerebroSvc,
		TransactionSvc:  txSvc,
		LedgerSvc:       ledgerSvc,
		SubsidySvc:      subsidySvc,
		TokenSvc:        tokenSvc,
		Biometric:       biometric,
		TokenStore:      tokenStore,
		FreshnessWindow: cfg.Guard.FreshnessWindow,
		RateLimitStore:  rateLimitStore,
		HealthCheckers:  healthCheckers,
		Logger:          log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// registerDefaultShields installs the stock shield set. Wallets opt in via
// their ActiveShieldIDs.
func registerDefaultShields(registry ports.ShieldRegistry) {
	registry.Register(domain.Shield{
		ID:      "biometric-l2",
		Enabled: true,
		Rule:    domain.BiometricRule{MinLevel: 2},
	})
	registry.Register(domain.Shield{
		ID:      "time-delay-24h",
		Enabled: true,
		Rule:    domain.TimeDelayRule{Delay: 24 * time.Hour},
	})
	registry.Register(domain.Shield{
		ID:      "daily-limit-100k",
		Enabled: true,
		Rule:    domain.AmountLimitRule{Limit: 100_000, PerDay: true},
	})
	registry.Register(domain.Shield{
		ID:      "territorial",
		Enabled: true,
		Rule:    domain.TerritorialRule{UseSemaphore: true},
	})
	registry.Register(domain.Shield{
		ID:      "owner-only",
		Enabled: true,
		Rule:    domain.RoleBasedRule{AllowedRoles: []domain.Role{domain.RoleOwner, domain.RoleAdmin}},
	})
}
