// ABOUTME: Dependencies container provides dependency injection for core services
// ABOUTME: Defines the contract for dependencies required by the core business logic

package interfaces

// Dependencies holds all external dependencies required by the core business logic
type Dependencies struct {
	// Cache backs the query-result cache
	Cache Cache

	// HTTPClient performs remote calls and snapshot fetches
	HTTPClient HTTPClient

	// Logger provides structured logging
	Logger Logger

	// Metrics records resolution outcomes
	Metrics Metrics
}
