// ABOUTME: Application wiring shared by the API server and the portalctl CLI
// ABOUTME: Builds the store, transport, query cache, resolvers, session controller and share service from config

package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"opportunities-portal-api/api"
	"opportunities-portal-api/api/handlers"
	"opportunities-portal-api/core/content"
	"opportunities-portal-api/core/domain"
	"opportunities-portal-api/core/interfaces"
	"opportunities-portal-api/core/page"
	"opportunities-portal-api/core/querycache"
	"opportunities-portal-api/core/session"
	"opportunities-portal-api/core/share"
	"opportunities-portal-api/infrastructure/cache/memory"
	"opportunities-portal-api/infrastructure/cache/redis"
	"opportunities-portal-api/infrastructure/cache/sqlite"
	stdhttp "opportunities-portal-api/infrastructure/http/standard"
	"opportunities-portal-api/infrastructure/metrics"
	"opportunities-portal-api/infrastructure/rpc"
	"opportunities-portal-api/infrastructure/snapshot"
	"opportunities-portal-api/pkg/config"
	"opportunities-portal-api/pkg/featureflags"
)

// DefaultFlags are the feature states used when no FEATURE_* variable is set
var DefaultFlags = map[featureflags.FeatureFlag]bool{
	featureflags.NewsEnabled:      true,
	featureflags.OpenCallsEnabled: true,
	featureflags.ShareEnabled:     true,
	featureflags.MetricsEnabled:   true,
	featureflags.RateLimitEnabled: true,
	featureflags.CacheEnabled:     true,
}

// App holds every wired component
type App struct {
	Config  *config.Config
	Logger  interfaces.Logger
	Metrics *metrics.Prometheus
	Flags   featureflags.Manager

	// HTTPClient makes remote procedure calls; SnapshotClient fetches the fallback files
	HTTPClient     interfaces.HTTPClient
	SnapshotClient interfaces.HTTPClient
	Transport      rpc.Transport
	Queries        *querycache.Cache
	Session        *session.Controller

	News      *content.Resolver[domain.NewsItem]
	OpenCalls *content.Resolver[domain.OpenCall]
	Loader    *page.Loader
	Share     *share.Service

	closers []func() error
}

// Option customizes New
type Option func(*App)

// WithFlags replaces the environment-backed feature flags
func WithFlags(flags featureflags.Manager) Option {
	return func(a *App) { a.Flags = flags }
}

// WithHTTPClient replaces both outbound HTTP clients
func WithHTTPClient(client interfaces.HTTPClient) Option {
	return func(a *App) {
		a.HTTPClient = client
		a.SnapshotClient = client
	}
}

// New wires the application from cfg
func New(cfg *config.Config, logger interfaces.Logger, opts ...Option) (*App, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}
	if logger == nil {
		logger = interfaces.NopLogger{}
	}

	a := &App{
		Config:  cfg,
		Logger:  logger,
		Metrics: metrics.NewPrometheus(),
		Flags:   featureflags.NewEnvManager("FEATURE_").WithDefaults(DefaultFlags),
	}
	for _, opt := range opts {
		opt(a)
	}

	if a.HTTPClient == nil {
		a.HTTPClient = stdhttp.NewStandardHTTPClientWithOptions(stdhttp.Options{
			Timeout:     cfg.RequestTimeout(),
			MaxAttempts: 1,
			Logger:      logger,
		})
	}
	if a.SnapshotClient == nil {
		a.SnapshotClient = stdhttp.NewStandardHTTPClientWithOptions(stdhttp.Options{
			Timeout:     cfg.RequestTimeout(),
			MaxAttempts: cfg.Backend.SnapshotMaxAttempts,
			Logger:      logger,
		})
	}

	ctx := context.Background()
	queryOpts := []querycache.Option{
		querycache.WithStaleTime(cfg.StaleTime()),
		querycache.WithLogger(logger),
	}
	var store interfaces.Cache
	if a.Flags.IsEnabled(ctx, featureflags.CacheEnabled) {
		s, closeStore, err := NewStore(cfg.Cache, logger)
		if err != nil {
			return nil, err
		}
		store = s
		a.closers = append(a.closers, closeStore)
		queryOpts = append(queryOpts, querycache.WithStore(store))
	}
	a.Queries = querycache.New(queryOpts...)

	a.Transport = rpc.NewGuard(rpc.NewHTTPTransport(cfg.Backend.URL, a.HTTPClient), logger, a.Metrics)

	a.Session = session.NewController(session.Config{
		PortalURL:    cfg.Auth.PortalURL,
		AppID:        cfg.Auth.AppID,
		PublicOrigin: cfg.Server.PublicOrigin,
	}, logger)
	detach := a.Session.Attach(a.Queries)
	a.closers = append(a.closers, func() error { detach(); return nil })

	deps := interfaces.Dependencies{
		Cache:      store,
		HTTPClient: a.HTTPClient,
		Logger:     logger,
		Metrics:    a.Metrics,
	}

	a.News = content.NewResolver[domain.NewsItem](domain.KindNews, deps,
		rpc.NewSource[domain.NewsItem](rpc.ProcedureNews, a.Transport, a.Queries),
		snapshot.NewSource[domain.NewsItem](snapshotURL(cfg.Backend.SnapshotBaseURL, cfg.Backend.NewsSnapshotPath), a.SnapshotClient),
	)
	a.OpenCalls = content.NewResolver[domain.OpenCall](domain.KindOpenCalls, deps,
		rpc.NewSource[domain.OpenCall](rpc.ProcedureOpenCalls, a.Transport, a.Queries),
		snapshot.NewSource[domain.OpenCall](snapshotURL(cfg.Backend.SnapshotBaseURL, cfg.Backend.OpenCallsSnapshotPath), a.SnapshotClient),
	)
	a.Loader = page.NewLoader(a.News, a.OpenCalls, deps)
	a.Share = share.NewService(deps, share.DefaultConfirmationDelay)
	a.closers = append(a.closers, func() error { a.Share.Close(); return nil })

	logger.Info("Application wired", map[string]interface{}{
		"backend_url":   cfg.Backend.URL,
		"snapshot_base": cfg.Backend.SnapshotBaseURL,
		"cache_type":    cfg.Cache.Type,
		"cache_enabled": store != nil,
		"stale_time":    cfg.StaleTime().String(),
		"login_enabled": cfg.Auth.PortalURL != "" && cfg.Auth.AppID != "",
	})

	return a, nil
}

// NewStore creates the query-result store selected by cfg.Type.
// A Redis or SQLite store that cannot be opened falls back to memory.
func NewStore(cfg config.CacheConfig, logger interfaces.Logger) (interfaces.Cache, func() error, error) {
	noop := func() error { return nil }
	fallback := func(kind string, err error) (interfaces.Cache, func() error, error) {
		logger.Error("Failed to create "+kind+" cache, falling back to memory", map[string]interface{}{
			"error": err.Error(),
		})
		return newMemoryStore(cfg), noop, nil
	}

	switch cfg.Type {
	case "redis":
		c, err := redis.NewRedisCache(cfg.Redis)
		if err != nil {
			return fallback("Redis", err)
		}
		logger.Info("Using Redis cache", map[string]interface{}{"address": cfg.Redis.Address})
		return c, c.Close, nil
	case "sqlite":
		c, err := sqlite.NewSQLiteCacheWithLogger(cfg.SQLite.Path, logger)
		if err != nil {
			return fallback("SQLite", err)
		}
		logger.Info("Using SQLite cache", map[string]interface{}{"path": cfg.SQLite.Path})
		return c, c.Close, nil
	case "", "memory":
		logger.Info("Using memory cache", nil)
		return newMemoryStore(cfg), noop, nil
	default:
		return nil, nil, fmt.Errorf("unknown cache type %q", cfg.Type)
	}
}

func newMemoryStore(cfg config.CacheConfig) *memory.MemoryCache {
	if cfg.Memory.CleanupSeconds > 0 {
		return memory.NewMemoryCacheWithCleanup(time.Duration(cfg.Memory.CleanupSeconds) * time.Second)
	}
	return memory.NewMemoryCache()
}

// snapshotURL leaves the URL empty when no base is configured so the tier reports itself unconfigured
func snapshotURL(base, path string) string {
	if base == "" {
		return ""
	}
	return snapshot.URL(base, path)
}

// Router builds the HTTP API with every handler registered
func (a *App) Router() http.Handler {
	ctx := context.Background()
	apiCfg := api.APIConfig{
		Logger:       a.Logger,
		CORSOrigins:  a.Config.Server.CORSOrigins,
		PublicOrigin: a.Config.Server.PublicOrigin,
	}
	if a.Flags.IsEnabled(ctx, featureflags.RateLimitEnabled) {
		apiCfg.RateLimitRPS = a.Config.RateLimit.RPS
		apiCfg.RateLimitBurst = a.Config.RateLimit.Burst
		apiCfg.TrustProxyHeaders = a.Config.RateLimit.TrustProxy
	}
	if a.Flags.IsEnabled(ctx, featureflags.MetricsEnabled) {
		apiCfg.Metrics = a.Metrics
	}

	humaAPI, router := api.NewAPIWithMiddleware(apiCfg)

	handlers.NewContentHandler(a.Loader, a.Flags).RegisterRoutes(humaAPI)
	handlers.NewShareHandler(a.Share, a.Flags).RegisterRoutes(humaAPI)
	handlers.NewAuthHandler(a.Session).RegisterRoutes(humaAPI)
	handlers.NewHealthHandler(a.Queries, a.Flags).RegisterRoutes(humaAPI)

	return router
}

// Close releases every component in reverse wiring order
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
