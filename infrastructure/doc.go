// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package: caching, HTTP communication, the remote
// procedure transport, static snapshots, logging and metrics.
//
// The infrastructure package is organized by technical concern:
//
// - cache/memory: In-memory store backed by go-cache
// - cache/redis: Redis store
// - cache/sqlite: SQLite store
// - http/standard: Standard library HTTP client with retry logic
// - rpc: Remote procedure transport, guard and listing source
// - snapshot: Static JSON snapshot source
// - logger: logrus and zap loggers with optional file rotation
// - metrics: Prometheus collectors
//
// # Cache Implementations
//
// Memory Cache Example:
//
//	cache := memory.NewMemoryCache()
//	err := cache.Set(ctx, "key", []byte("value"), 1*time.Hour)
//	value, err := cache.Get(ctx, "key")
//
// Redis Cache Example:
//
//	cache, err := redis.NewRedisCache(config.RedisConfig{Address: "localhost:6379"})
//
// # Remote Procedures
//
// The guard absorbs transport failures so callers only ever see application errors:
//
//	transport := rpc.NewGuard(rpc.NewHTTPTransport(baseURL, client), logger, metrics)
//	news := rpc.NewSource[domain.NewsItem](rpc.ProcedureNews, transport, queries)
//	items, err := news.Fetch(ctx)
//
// # Logger
//
//	log, err := logger.New(logger.Config{Backend: "zap", Level: "debug"})
//	log.Info("Resolving listing", map[string]interface{}{
//	    "kind": "news",
//	})
package infrastructure
