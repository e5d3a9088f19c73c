// ABOUTME: Huma API server configuration and setup
// ABOUTME: Provides OpenAPI documentation, the middleware chain and the /metrics mount

package api

import (
	"net/http"

	"opportunities-portal-api/api/middleware"
	"opportunities-portal-api/core/interfaces"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

const (
	apiTitle   = "Opportunities Portal API"
	apiVersion = "1.0.0"
)

// MetricsRecorder observes requests and serves the exposition endpoint
type MetricsRecorder interface {
	middleware.RequestObserver
	Handler() http.Handler
}

// APIConfig holds configuration for the API
type APIConfig struct {
	Logger interfaces.Logger

	// RateLimitRPS and RateLimitBurst enable per-IP rate limiting when both are positive
	RateLimitRPS   float64
	RateLimitBurst int

	// TrustProxyHeaders keys rate limits by X-Forwarded-For / X-Real-IP.
	// Set it only behind a proxy that overwrites those headers.
	TrustProxyHeaders bool

	// CORSOrigins lists allowed origins. Empty allows any origin but without
	// credentials, so session cookies only cross listed origins.
	CORSOrigins []string

	// PublicOrigin is the browsing origin used when a request carries no host
	PublicOrigin string

	// Metrics, when set, records every request and is served at /metrics
	Metrics MetricsRecorder
}

// NewAPI creates and configures a new Huma API instance without middleware
func NewAPI() (huma.API, chi.Router) {
	return NewAPIWithMiddleware(APIConfig{})
}

// NewAPIWithMiddleware creates a new API with middleware configured
func NewAPIWithMiddleware(cfg APIConfig) (huma.API, chi.Router) {
	router := chi.NewRouter()

	// CORS must run first so preflight requests are answered before anything else
	router.Use(cors.Handler(corsOptions(cfg.CORSOrigins)))

	if cfg.Logger != nil {
		router.Use(middleware.RequestLoggingMiddleware(cfg.Logger))
	}

	if cfg.Metrics != nil {
		router.Use(middleware.MetricsMiddleware(cfg.Metrics))
	}

	if cfg.RateLimitRPS > 0 && cfg.RateLimitBurst > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst).TrustProxyHeaders(cfg.TrustProxyHeaders)
		router.Use(middleware.RateLimitMiddleware(limiter))
	}

	router.Use(middleware.BrowsingContext(cfg.PublicOrigin))

	// chi rejects middleware added after the first route
	if cfg.Metrics != nil {
		router.Method(http.MethodGet, "/metrics", cfg.Metrics.Handler())
	}

	config := huma.DefaultConfig(apiTitle, apiVersion)
	config.Info.Description = "News and open calls for funding opportunities, with share links and login redirects"

	// The OpenAPI spec is served at /openapi.json and the docs UI at /docs
	api := humachi.New(router, config)

	return api, router
}

func corsOptions(origins []string) cors.Options {
	// Cookies are forwarded to the backend, so credentials are allowed for listed origins only
	credentials := len(origins) > 0
	if !credentials {
		origins = []string{"*"}
	}
	return cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID", "Retry-After"},
		AllowCredentials: credentials,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}
}
