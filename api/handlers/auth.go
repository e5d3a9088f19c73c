// ABOUTME: Auth handler exposes the computed login location for the caller's origin

package handlers

import (
	"context"
	"net/http"

	"opportunities-portal-api/api/dto/responses"

	"github.com/danielgtaylor/huma/v2"
)

// LoginLocator computes the login location for the browsing context in ctx
type LoginLocator interface {
	LoginLocation(ctx context.Context) string
}

// AuthHandler handles auth-related requests
type AuthHandler struct {
	locator LoginLocator
}

// NewAuthHandler creates an auth handler
func NewAuthHandler(locator LoginLocator) *AuthHandler {
	return &AuthHandler{locator: locator}
}

// RegisterRoutes registers auth routes
func (h *AuthHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "getLoginURL",
		Method:      http.MethodGet,
		Path:        "/api/v1/auth/login-url",
		Summary:     "Login location",
		Description: "Login portal URL that returns to this origin's OAuth callback. \"/\" when the portal is not configured.",
		Tags:        []string{"Auth"},
	}, h.LoginURL)
}

// LoginURLOutput is the login location response
type LoginURLOutput struct {
	Body responses.LoginURLResponse
}

// LoginURL handles GET /api/v1/auth/login-url
func (h *AuthHandler) LoginURL(ctx context.Context, _ *struct{}) (*LoginURLOutput, error) {
	return &LoginURLOutput{Body: responses.LoginURLResponse{Location: h.locator.LoginLocation(ctx)}}, nil
}
