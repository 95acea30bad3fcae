package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"federation-payments/config"
	httpHandler "federation-payments/internal/adapter/http/handler"
	"federation-payments/internal/adapter/http/middleware"
	"federation-payments/internal/adapter/provider/mercadopago"
	"federation-payments/internal/adapter/storage/memory"
	pgStorage "federation-payments/internal/adapter/storage/postgres"
	redisStorage "federation-payments/internal/adapter/storage/redis"
	"federation-payments/internal/core/ports"
	"federation-payments/internal/service"
	"federation-payments/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	// .env is optional; real environment variables win over it.
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load(os.Getenv("FED_CONFIG_FILE"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)
	gin.SetMode(cfg.Server.Mode)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Str("storage", cfg.Storage.Driver).
		Msg("Starting Federation Payments")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize repositories
	var (
		cobroRepo      ports.CobroRepository
		linkRepo       ports.PublicLinkRepository
		auditRepo      ports.AuditRepository
		healthCheckers []ports.HealthChecker
	)
	switch cfg.Storage.Driver {
	case "postgres":
		pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
		}
		defer pool.Close()

		cobroRepo = pgStorage.NewCobroRepo(pool)
		linkRepo = pgStorage.NewLinkRepo(pool)
		auditRepo = pgStorage.NewAuditRepo(pool)
		healthCheckers = append(healthCheckers, pgStorage.NewHealthCheck(pool))
	default:
		log.Warn().Msg("Using in-memory storage; data is lost on restart")
		cobroRepo = memory.NewCobroStore()
		linkRepo = memory.NewLinkStore()
		auditRepo = memory.NewAuditStore()
	}

	// Initialize Redis stores (optional: dedup fast path and rate limiting)
	var (
		notificationCache ports.NotificationCache
		rateLimitStore    middleware.RateLimitStore
	)
	if cfg.Redis.Enabled {
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()

		notificationCache = redisStorage.NewNotificationCache(rdb)
		rateLimitStore = redisStorage.NewRateLimitStore(rdb)
		healthCheckers = append(healthCheckers, redisStorage.NewHealthCheck(rdb))
	}

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := service.NewMetrics(registry)

	// Payment provider
	provider, err := mercadopago.NewClient(cfg.MercadoPago, logger.Component(log, "mercadopago"))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize MercadoPago client")
	}

	// Initialize core services
	events := service.NewEventFeed(logger.Component(log, "events"), metrics)
	reconciler := service.NewReconciler(cobroRepo, provider, notificationCache, events, service.ReconcilerConfig{
		MaxConflictRetries: cfg.Reconciler.MaxConflictRetries,
		DedupTTL:           cfg.Reconciler.DedupTTL,
	}, metrics, logger.Component(log, "reconciler"))
	monitor := service.NewMonitor(cobroRepo, provider, reconciler, events, service.MonitorConfig{
		Interval:     cfg.Monitor.Interval,
		MaxDuration:  cfg.Monitor.MaxDuration,
		CheckTimeout: cfg.Monitor.CheckTimeout,
		CheckSource:  cfg.Monitor.CheckSource,
	}, metrics, logger.Component(log, "monitor"))
	// webhook commits must not be reported again by the next poll
	reconciler.AddObserver(monitor)
	cobroSvc := service.NewCobroService(cobroRepo, provider, reconciler, monitor, log)
	linkSvc := service.NewLinkService(linkRepo, cobroRepo, log)
	auditSvc := service.NewAuditService(auditRepo, log)
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	verifier := service.NewWebhookSignatureService(cfg.MercadoPago.WebhookSecret)
	if !verifier.Enabled() {
		log.Warn().Msg("No webhook secret configured, x-signature is not verified")
	}

	// Background work
	if err := monitor.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to start polling monitor")
	}
	defer monitor.Stop()
	if cfg.Monitor.WatchOnStart {
		if _, err := monitor.WatchPending(ctx); err != nil {
			log.Error().Err(err).Msg("Failed to watch pending cobros")
		}
	}

	if cfg.Sweep.Enabled {
		sweeper := service.NewOverdueSweeper(cobroSvc, cfg.Sweep.Schedule, logger.Component(log, "sweep"))
		if err := sweeper.Start(ctx); err != nil {
			log.Fatal().Err(err).Msg("Failed to schedule overdue sweep")
		}
		defer sweeper.Stop()
		sweeper.RunOnce(ctx)
	}

	// Load OpenAPI spec for Swagger UI
	if specBytes, err := os.ReadFile("docs/api/openapi.yaml"); err == nil {
		httpHandler.SetSwaggerSpec(specBytes)
		log.Info().Msg("OpenAPI spec loaded for Swagger UI at /swagger")
	} else {
		log.Warn().Err(err).Msg("OpenAPI spec not found, Swagger UI will be unavailable")
	}

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		CobroSvc:       cobroSvc,
		LinkSvc:        linkSvc,
		Reconciler:     reconciler,
		Monitor:        monitor,
		EventFeed:      events,
		TokenSvc:       tokenSvc,
		Verifier:       verifier,
		AuditSvc:       auditSvc,
		WebhookMetrics: metrics,
		Gatherer:       registry,
		RateLimitStore: rateLimitStore,
		WebhookRateLimit: middleware.RateLimitRule{
			Limit:  int64(cfg.RateLimit.WebhookLimit),
			Window: cfg.RateLimit.WebhookWindow,
		},
		PublicRateLimit: middleware.RateLimitRule{
			Limit:  int64(cfg.RateLimit.PublicLimit),
			Window: cfg.RateLimit.PublicWindow,
		},
		HealthCheckers: healthCheckers,
		MaxBodyBytes:   cfg.Server.MaxBodyBytes,
		WSOrigins:      cfg.Server.WSOrigins,
		Logger:         log,
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
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	<-ctx.Done()
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
