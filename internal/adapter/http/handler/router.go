package handler

import (
	"federation-payments/internal/adapter/http/middleware"
	"federation-payments/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	CobroSvc   ports.CobroService
	LinkSvc    ports.LinkService
	Reconciler ports.Reconciler
	Monitor    ports.StateMonitor
	EventFeed  ports.EventFeed
	TokenSvc   ports.TokenService
	Verifier   ports.WebhookVerifier // nil = signatures not checked
	AuditSvc   ports.AuditService    // nil = audit logging disabled

	WebhookMetrics WebhookMetrics
	Gatherer       prometheus.Gatherer // nil = no /metrics endpoint

	RateLimitStore   middleware.RateLimitStore // nil = rate limiting disabled
	WebhookRateLimit middleware.RateLimitRule
	PublicRateLimit  middleware.RateLimitRule

	HealthCheckers []ports.HealthChecker
	MaxBodyBytes   int64
	WSOrigins      []string
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	// "//api/webhooks/mercadopago" is matched against the cleaned path while
	// c.Request.URL.Path keeps what the provider sent.
	r.RemoveExtraSlash = true

	maxBody := deps.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = 1 << 20
	}

	// Global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(maxBody))

	// Audit logging (after response)
	if deps.AuditSvc != nil {
		r.Use(middleware.AuditLog(deps.AuditSvc))
	}

	// Health check (pings PostgreSQL and Redis when configured)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))
	if deps.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}

	// Swagger documentation
	swagger := r.Group("/swagger")
	{
		swagger.GET("", SwaggerUI)
		swagger.GET("/spec", SwaggerSpec)
	}

	// Helper: return rate limiter middleware if store and rule are set, else noop.
	rl := func(group string, rule middleware.RateLimitRule) gin.HandlerFunc {
		if deps.RateLimitStore == nil || rule.Limit <= 0 {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	// --- Provider callbacks (no auth; optional x-signature) ---
	webhookHandler := NewWebhookHandler(deps.Reconciler, deps.Verifier, deps.WebhookMetrics, deps.Logger)
	webhookRL := rl("webhook", deps.WebhookRateLimit)
	for _, path := range []string{WebhookPathPrimary, WebhookPathNoPrefix, WebhookPathRoot} {
		r.GET(path, webhookRL, webhookHandler.Handle)
		r.POST(path, webhookRL, webhookHandler.Handle)
	}

	// --- Payer pages (no auth) ---
	publicHandler := NewPublicHandler(deps.LinkSvc, deps.CobroSvc)
	pagar := r.Group("/pagar", rl("public", deps.PublicRateLimit))
	{
		pagar.GET("/:slug", publicHandler.GetCobro)
		pagar.POST("/:slug/checkout", publicHandler.Checkout)
	}

	// --- Administration (JWT-authenticated) ---
	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)
	cobroHandler := NewCobroHandler(deps.CobroSvc, deps.Reconciler, deps.Monitor)
	monitorHandler := NewMonitorHandler(deps.CobroSvc, deps.Monitor)
	linkHandler := NewLinkHandler(deps.LinkSvc)
	eventsHandler := NewEventsHandler(deps.EventFeed, deps.WSOrigins, deps.Logger)

	v1 := r.Group("/api/v1", jwtAuth)

	cobros := v1.Group("/cobros")
	{
		cobros.POST("", cobroHandler.Create)
		cobros.GET("", cobroHandler.List)
		cobros.GET("/:id", cobroHandler.Get)
		cobros.POST("/:id/state", cobroHandler.ForceState)
		cobros.POST("/:id/checkout", cobroHandler.Checkout)

		cobros.POST("/:id/monitor", monitorHandler.Start)
		cobros.DELETE("/:id/monitor", monitorHandler.Stop)
		cobros.GET("/:id/monitor", monitorHandler.Status)

		cobros.POST("/:id/links", linkHandler.Generate)
		cobros.GET("/:id/links", linkHandler.List)
	}

	links := v1.Group("/links")
	{
		links.PATCH("/:id", linkHandler.Toggle)
		links.DELETE("/:id", linkHandler.Delete)
	}

	v1.GET("/monitoring", monitorHandler.List)
	v1.POST("/sweeps/overdue", cobroHandler.SweepOverdue)
	v1.GET("/events/ws", eventsHandler.Stream)

	return r
}
