// ABOUTME: Share handlers build social share links and expose the per-control confirmation
// ABOUTME: The confirmation clears itself two seconds after the last share

package handlers

import (
	"context"
	"net/http"

	"opportunities-portal-api/api/dto/mappers"
	"opportunities-portal-api/api/dto/requests"
	"opportunities-portal-api/api/dto/responses"
	"opportunities-portal-api/core/domain"
	coreerrors "opportunities-portal-api/core/errors"
	"opportunities-portal-api/core/share"
	"opportunities-portal-api/pkg/featureflags"

	"github.com/danielgtaylor/huma/v2"
)

// ShareService defines the methods needed from the share service
type ShareService interface {
	Share(ctx context.Context, req share.Request) (*share.Result, error)
	Confirmation(ctx context.Context, controlID string) (domain.Confirmation, error)
}

// ShareHandler handles share-related HTTP requests
type ShareHandler struct {
	service ShareService
	flags   featureflags.Manager
}

// NewShareHandler creates a new share handler
func NewShareHandler(service ShareService, flags featureflags.Manager) *ShareHandler {
	return &ShareHandler{service: service, flags: flags}
}

// RegisterRoutes registers share routes
func (h *ShareHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "createShare",
		Method:        http.MethodPost,
		Path:          "/api/v1/share",
		Summary:       "Build a share link",
		Description:   "Builds the share URL of a news record for a target and sets the control's confirmation label",
		Tags:          []string{"Share"},
		DefaultStatus: http.StatusCreated,
	}, h.Share)

	huma.Register(api, huma.Operation{
		OperationID: "getShareConfirmation",
		Method:      http.MethodGet,
		Path:        "/api/v1/share/{controlId}/confirmation",
		Summary:     "Current share confirmation",
		Description: "Returns the live confirmation of a share control; 404 once it has cleared",
		Tags:        []string{"Share"},
	}, h.Confirmation)
}

// ShareInput defines the input for the Share operation
type ShareInput struct {
	Body requests.ShareRequest
}

// ShareOutput defines the output for the Share operation
type ShareOutput struct {
	Body responses.ShareResponse
}

// ConfirmationInput identifies a share control
type ConfirmationInput struct {
	ControlID string `path:"controlId" doc:"Share control ID"`
}

// ConfirmationOutput is the live confirmation
type ConfirmationOutput struct {
	Body responses.ConfirmationResponse
}

// Share handles POST /api/v1/share
func (h *ShareHandler) Share(ctx context.Context, input *ShareInput) (*ShareOutput, error) {
	if !h.enabled(ctx) {
		return nil, huma.Error404NotFound("Sharing is disabled")
	}

	input.Body.Normalize()
	target, err := domain.ParseShareTarget(input.Body.Target)
	if err != nil {
		return nil, toHumaError(&coreerrors.ValidationError{Field: "target", Message: err.Error()})
	}

	res, err := h.service.Share(ctx, share.Request{
		ControlID: input.Body.ControlID,
		Target:    target,
		Item:      mappers.ToNewsItem(input.Body.Item),
	})
	if err != nil {
		return nil, toHumaError(err)
	}

	return &ShareOutput{Body: mappers.ToShareResponse(res)}, nil
}

// Confirmation handles GET /api/v1/share/{controlId}/confirmation
func (h *ShareHandler) Confirmation(ctx context.Context, input *ConfirmationInput) (*ConfirmationOutput, error) {
	if !h.enabled(ctx) {
		return nil, huma.Error404NotFound("Sharing is disabled")
	}

	conf, err := h.service.Confirmation(ctx, input.ControlID)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &ConfirmationOutput{Body: mappers.ToConfirmationResponse(conf)}, nil
}

func (h *ShareHandler) enabled(ctx context.Context) bool {
	return h.flags == nil || h.flags.IsEnabled(ctx, featureflags.ShareEnabled)
}
