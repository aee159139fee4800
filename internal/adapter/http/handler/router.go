package handler

import (
	"time"

	"cerebro-wallet/internal/adapter/http/middleware"
	redisStore "cerebro-wallet/internal/adapter/storage/redis"
	"cerebro-wallet/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	IdentitySvc     ports.IdentityService
	CerebroSvc      ports.CerebroService
	TransactionSvc  ports.TransactionService
	LedgerSvc       ports.LedgerService
	SubsidySvc      ports.SubsidyService
	TokenSvc        ports.TokenService
	Biometric       ports.BiometricProvider
	TokenStore      ports.ValidationTokenStore // nil = freshness tokens disabled
	FreshnessWindow time.Duration
	RateLimitStore  *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers  []ports.HealthChecker
	Logger          zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep, verifies backing stores)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	// API v1 routes
	v1 := r.Group("/api/v1")

	// --- Public routes (no auth) ---
	authHandler := NewAuthHandler(deps.IdentitySvc)
	auth := v1.Group("/auth")
	{
		auth.POST("/register", rl("auth_register"), authHandler.Register)
		auth.POST("/login", rl("auth_login"), authHandler.Login)
	}

	// --- JWT-authenticated routes ---
	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)

	cerebroHandler := NewCerebroHandler(deps.CerebroSvc, deps.Biometric, deps.TokenStore, deps.FreshnessWindow, deps.Logger)
	cerebro := v1.Group("/cerebro", jwtAuth)
	{
		cerebro.POST("/decide", rl("cerebro"), cerebroHandler.Decide)
		cerebro.POST("/validate", rl("cerebro"), cerebroHandler.ValidateBiometric)
	}

	walletHandler := NewWalletHandler(deps.LedgerSvc, deps.TransactionSvc, deps.TokenStore)
	wallets := v1.Group("/wallets", jwtAuth)
	{
		wallets.GET("/balance", rl("wallets"), walletHandler.GetBalance)
		wallets.POST("/transfer", rl("transfers"), walletHandler.Transfer)
	}

	txHandler := NewTransactionHandler(deps.TransactionSvc, deps.CerebroSvc, deps.TokenStore)
	transactions := v1.Group("/transactions", jwtAuth)
	{
		transactions.GET("/:id", rl("transactions"), txHandler.Get)
		transactions.POST("/:id/apply", rl("transactions"), txHandler.Apply)
		transactions.POST("/:id/release", rl("transactions"), txHandler.Release)
		transactions.POST("/:id/block", rl("transactions"), txHandler.Block)
	}

	subsidyHandler := NewSubsidyHandler(deps.SubsidySvc, deps.TokenStore)
	subsidies := v1.Group("/subsidies", jwtAuth)
	{
		subsidies.POST("", rl("subsidies"), subsidyHandler.Create)
		subsidies.GET("", rl("subsidies"), subsidyHandler.List)
		subsidies.POST("/:id/eligibility", rl("subsidies"), subsidyHandler.CheckEligibility)
		subsidies.POST("/:id/accept", rl("subsidies"), subsidyHandler.Accept)
	}

	return r
}
