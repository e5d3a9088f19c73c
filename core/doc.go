// Package core contains the business logic for the Opportunities Portal API.
// It is framework-agnostic and can be used independently of any web
// framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Pure domain models (NewsItem, OpenCall, Envelope, ShareLink)
// - content: Tiered resolver and the open-call projection
// - page: Concurrent loading of the home page listings
// - querycache: Process-wide query state and error event fan-out
// - session: Unauthorized-error handling and login location building
// - share: Share link builder and confirmation timers
// - errors: Custom error types and the error classifier
// - interfaces: Contracts for external dependencies (cache, HTTP, logger, metrics)
//
// # Design Principles
//
// - No infrastructure imports; dependencies are injected via interfaces
// - Settled listings are always well-formed envelopes
// - Business logic is testable in isolation
//
// # Usage Example
//
//	import (
//	    "opportunities-portal-api/core/content"
//	    "opportunities-portal-api/core/domain"
//	    "opportunities-portal-api/core/interfaces"
//	)
//
//	deps := interfaces.Dependencies{
//	    Logger:  myLogger,  // implements interfaces.Logger
//	    Metrics: myMetrics, // implements interfaces.Metrics
//	}
//
//	news := content.NewResolver[domain.NewsItem](domain.KindNews, deps, remote, snapshot)
//	envelope := news.Resolve(ctx)
package core
