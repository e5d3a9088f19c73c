// ABOUTME: Health handler reports liveness, the last outcome of each cached query and feature flags

package handlers

import (
	"context"
	"net/http"

	"opportunities-portal-api/api/dto/mappers"
	"opportunities-portal-api/api/dto/responses"
	"opportunities-portal-api/core/querycache"
	"opportunities-portal-api/pkg/featureflags"

	"github.com/danielgtaylor/huma/v2"
)

// QueryStates lists the recorded query states
type QueryStates interface {
	States() []querycache.State
}

// HealthHandler serves the health endpoint
type HealthHandler struct {
	queries QueryStates
	flags   featureflags.Manager
}

// NewHealthHandler creates a health handler; both arguments are optional
func NewHealthHandler(queries QueryStates, flags featureflags.Manager) *HealthHandler {
	return &HealthHandler{queries: queries, flags: flags}
}

// RegisterRoutes registers the health route
func (h *HealthHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "getHealth",
		Method:      http.MethodGet,
		Path:        "/api/v1/health",
		Summary:     "Health check",
		Tags:        []string{"System"},
	}, h.Health)
}

// HealthOutput is the health response
type HealthOutput struct {
	Body responses.HealthResponse
}

// Health handles GET /api/v1/health
func (h *HealthHandler) Health(ctx context.Context, _ *struct{}) (*HealthOutput, error) {
	out := &HealthOutput{Body: responses.HealthResponse{
		Status:  "ok",
		Queries: []responses.QueryStateResponse{},
	}}

	if h.queries != nil {
		out.Body.Queries = mappers.ToQueryStates(h.queries.States())
	}

	if h.flags != nil {
		out.Body.Flags = make(map[string]bool)
		for flag, on := range h.flags.GetAllFlags() {
			out.Body.Flags[string(flag)] = on
		}
	}

	return out, nil
}
