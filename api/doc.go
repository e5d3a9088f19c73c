// Package api provides the HTTP API layer for the opportunities portal.
// It uses the Huma framework to provide automatic OpenAPI documentation,
// request/response validation, and a clean handler interface.
//
// # Architecture
//
// The API package is structured as follows:
//
// - server.go: Huma API configuration and the middleware chain
// - handlers/: HTTP request handlers
// - dto/: Data Transfer Objects for requests and responses
// - middleware/: HTTP middleware for cross-cutting concerns
//
// # Endpoints
//
//	GET  /api/v1/home                            both listings plus loginRedirect
//	GET  /api/v1/news                            news envelope
//	GET  /api/v1/open-calls                      first five open calls
//	POST /api/v1/share                           build a share link
//	GET  /api/v1/share/{controlId}/confirmation  live share confirmation
//	GET  /api/v1/auth/login-url                  computed login location
//	GET  /api/v1/health                          liveness and query states
//	GET  /metrics                                Prometheus exposition
//
// The OpenAPI spec is served at /openapi.json and the docs UI at /docs.
//
// # Browsing context
//
// Every request gets a navigator, an origin and its forwarded session cookie
// (see middleware.BrowsingContext). When a remote call made while serving the
// request is rejected as unauthorized, the session controller navigates that
// navigator and the home response carries the login location.
//
// # Usage Example
//
//	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{
//	    Logger:         logger,
//	    RateLimitRPS:   10,
//	    RateLimitBurst: 20,
//	    PublicOrigin:   "https://portal.example.org",
//	    Metrics:        prom,
//	})
//	handlers.NewContentHandler(loader, flags).RegisterRoutes(humaAPI)
//	http.ListenAndServe(":8000", router)
//
// # Error Handling
//
// Errors follow RFC 7807. Validation errors map to 400, unknown share
// controls to 404, anything else to 500. Listing endpoints never fail: total
// backend failure is an empty envelope with failed set.
package api
