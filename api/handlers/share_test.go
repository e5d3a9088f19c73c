package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"opportunities-portal-api/api/dto/responses"
	"opportunities-portal-api/core/domain"
	coreerrors "opportunities-portal-api/core/errors"
	"opportunities-portal-api/core/interfaces"
	"opportunities-portal-api/core/share"
	"opportunities-portal-api/pkg/featureflags"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testControlID = "3b241101-e2bb-4255-8caf-4136c566a962"

func shareBody(target string) map[string]interface{} {
	return map[string]interface{}{
		"controlId": testControlID,
		"target":    target,
		"item": map[string]interface{}{
			"title":  "Nuovo Avviso",
			"entity": "FonARCom",
			"link":   "https://example.com/news/1",
		},
	}
}

func TestShareHandler_RegisterRoutes(t *testing.T) {
	_, api := humatest.New(t)
	NewShareHandler(&mockShareService{}, nil).RegisterRoutes(api)

	paths := api.OpenAPI().Paths
	require.Contains(t, paths, "/api/v1/share")
	assert.NotNil(t, paths["/api/v1/share"].Post)
	require.Contains(t, paths, "/api/v1/share/{controlId}/confirmation")
	assert.NotNil(t, paths["/api/v1/share/{controlId}/confirmation"].Get)
}

func TestShareHandler_Share(t *testing.T) {
	expires := time.Date(2025, 3, 1, 10, 0, 2, 0, time.UTC)
	svc := &mockShareService{
		shareFunc: func(ctx context.Context, req share.Request) (*share.Result, error) {
			return &share.Result{
				ControlID: req.ControlID,
				Link: domain.ShareLink{
					Target:         req.Target,
					URL:            "https://www.facebook.com/sharer/sharer.php?u=x",
					Disposition:    domain.DispositionPopup,
					WindowFeatures: domain.PopupFeatures,
				},
				Confirmation: domain.Confirmation{Label: req.Target.Label(), ExpiresAt: expires},
			}, nil
		},
	}

	_, api := humatest.New(t)
	NewShareHandler(svc, nil).RegisterRoutes(api)

	resp := api.Post("/api/v1/share", shareBody("facebook"))
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())

	var body responses.ShareResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, testControlID, body.ControlID)
	assert.Equal(t, "facebook", body.Target)
	assert.Equal(t, "popup", body.Disposition)
	assert.Equal(t, domain.PopupFeatures, body.WindowFeatures)
	assert.Equal(t, "Facebook", body.Confirmation.Label)
	assert.True(t, expires.Equal(body.Confirmation.ExpiresAt))

	assert.Equal(t, domain.ShareFacebook, svc.lastRequest.Target)
	assert.Equal(t, "Nuovo Avviso", svc.lastRequest.Item.Title)
	assert.Equal(t, "FonARCom", svc.lastRequest.Item.Entity)
}

func TestShareHandler_RejectsUnknownTarget(t *testing.T) {
	_, api := humatest.New(t)
	NewShareHandler(&mockShareService{}, nil).RegisterRoutes(api)

	resp := api.Post("/api/v1/share", shareBody("myspace"))
	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}

func TestShareHandler_ServiceValidationError(t *testing.T) {
	svc := &mockShareService{
		shareFunc: func(ctx context.Context, req share.Request) (*share.Result, error) {
			return nil, &coreerrors.ValidationError{Field: "controlId", Message: "invalid control ID format"}
		},
	}
	_, api := humatest.New(t)
	NewShareHandler(svc, nil).RegisterRoutes(api)

	resp := api.Post("/api/v1/share", shareBody("linkedin"))
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestShareHandler_Confirmation(t *testing.T) {
	svc := &mockShareService{
		confirmationFunc: func(ctx context.Context, controlID string) (domain.Confirmation, error) {
			if controlID != testControlID {
				return domain.Confirmation{}, &coreerrors.NotFoundError{Resource: "confirmation", ID: controlID}
			}
			return domain.Confirmation{Label: "LinkedIn", ExpiresAt: time.Now().Add(time.Second)}, nil
		},
	}
	_, api := humatest.New(t)
	NewShareHandler(svc, nil).RegisterRoutes(api)

	resp := api.Get("/api/v1/share/" + testControlID + "/confirmation")
	require.Equal(t, http.StatusOK, resp.Code)

	var body responses.ConfirmationResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "LinkedIn", body.Label)

	resp = api.Get("/api/v1/share/0b8f4e4c-5d0d-4bb6-9d7e-6f3f1b7f2a10/confirmation")
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestShareHandler_Disabled(t *testing.T) {
	_, api := humatest.New(t)
	NewShareHandler(&mockShareService{}, featureflags.NewStaticManager(nil)).RegisterRoutes(api)

	assert.Equal(t, http.StatusNotFound, api.Post("/api/v1/share", shareBody("email")).Code)
	assert.Equal(t, http.StatusNotFound, api.Get("/api/v1/share/"+testControlID+"/confirmation").Code)
}

func TestShareHandler_WithRealService(t *testing.T) {
	svc := share.NewService(interfaces.Dependencies{}, 50*time.Millisecond)
	t.Cleanup(svc.Close)

	_, api := humatest.New(t)
	NewShareHandler(svc, nil).RegisterRoutes(api)

	resp := api.Post("/api/v1/share", shareBody("linkedin"))
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())

	var body responses.ShareResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "https://www.linkedin.com/sharing/share-offsite/?url=https%3A%2F%2Fexample.com%2Fnews%2F1", body.URL)
	assert.Equal(t, "LinkedIn", body.Confirmation.Label)

	resp = api.Get("/api/v1/share/" + testControlID + "/confirmation")
	assert.Equal(t, http.StatusOK, resp.Code)

	assert.Eventually(t, func() bool {
		return api.Get("/api/v1/share/"+testControlID+"/confirmation").Code == http.StatusNotFound
	}, time.Second, 10*time.Millisecond, "confirmation clears after the delay")
}
