// ABOUTME: Listing handlers for the home page, news and open calls
// ABOUTME: Listings never fail; backend trouble shows up as an empty envelope

package handlers

import (
	"context"
	"net/http"

	"opportunities-portal-api/api/dto/mappers"
	"opportunities-portal-api/api/dto/responses"
	"opportunities-portal-api/api/middleware"
	"opportunities-portal-api/core/domain"
	"opportunities-portal-api/core/page"
	"opportunities-portal-api/pkg/featureflags"

	"github.com/danielgtaylor/huma/v2"
)

// PageLoader resolves the listings
type PageLoader interface {
	Load(ctx context.Context) page.View
	News(ctx context.Context) domain.Envelope[domain.NewsItem]
	OpenCalls(ctx context.Context) domain.Envelope[domain.OpenCall]
}

// ContentHandler serves the listing endpoints
type ContentHandler struct {
	loader PageLoader
	flags  featureflags.Manager
}

// NewContentHandler creates a content handler. A nil flags manager enables every listing.
func NewContentHandler(loader PageLoader, flags featureflags.Manager) *ContentHandler {
	return &ContentHandler{loader: loader, flags: flags}
}

// RegisterRoutes registers all listing routes
func (h *ContentHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "getHome",
		Method:      http.MethodGet,
		Path:        "/api/v1/home",
		Summary:     "Home page view",
		Description: "Resolves the news listing and the open calls listing concurrently. Open calls are limited to the first five with status Aperto.",
		Tags:        []string{"Content"},
	}, h.Home)

	huma.Register(api, huma.Operation{
		OperationID: "listNews",
		Method:      http.MethodGet,
		Path:        "/api/v1/news",
		Summary:     "Latest news",
		Tags:        []string{"Content"},
	}, h.News)

	huma.Register(api, huma.Operation{
		OperationID: "listOpenCalls",
		Method:      http.MethodGet,
		Path:        "/api/v1/open-calls",
		Summary:     "Open calls",
		Description: "First five open calls with status Aperto, in source order",
		Tags:        []string{"Content"},
	}, h.OpenCalls)
}

// HomeOutput is the home page response
type HomeOutput struct {
	Body responses.HomeResponse
}

// NewsOutput is the news listing response
type NewsOutput struct {
	Body responses.NewsListing
}

// OpenCallsOutput is the open-calls listing response
type OpenCallsOutput struct {
	Body responses.OpenCallListing
}

// Home handles GET /api/v1/home
func (h *ContentHandler) Home(ctx context.Context, _ *struct{}) (*HomeOutput, error) {
	newsOn := h.enabled(ctx, featureflags.NewsEnabled)
	callsOn := h.enabled(ctx, featureflags.OpenCallsEnabled)

	var view page.View
	if newsOn && callsOn {
		view = h.loader.Load(ctx)
	} else {
		view = page.View{
			News:      domain.EmptyEnvelope[domain.NewsItem](false),
			OpenCalls: domain.EmptyEnvelope[domain.OpenCall](false),
		}
		if newsOn {
			view.News = h.loader.News(ctx)
		}
		if callsOn {
			view.OpenCalls = h.loader.OpenCalls(ctx)
		}
	}

	return &HomeOutput{Body: mappers.ToHomeResponse(view, middleware.LoginRedirect(ctx))}, nil
}

// News handles GET /api/v1/news
func (h *ContentHandler) News(ctx context.Context, _ *struct{}) (*NewsOutput, error) {
	env := domain.EmptyEnvelope[domain.NewsItem](false)
	if h.enabled(ctx, featureflags.NewsEnabled) {
		env = h.loader.News(ctx)
	}
	return &NewsOutput{Body: mappers.ToNewsListing(env)}, nil
}

// OpenCalls handles GET /api/v1/open-calls
func (h *ContentHandler) OpenCalls(ctx context.Context, _ *struct{}) (*OpenCallsOutput, error) {
	env := domain.EmptyEnvelope[domain.OpenCall](false)
	if h.enabled(ctx, featureflags.OpenCallsEnabled) {
		env = h.loader.OpenCalls(ctx)
	}
	return &OpenCallsOutput{Body: mappers.ToOpenCallListing(env)}, nil
}

func (h *ContentHandler) enabled(ctx context.Context, flag featureflags.FeatureFlag) bool {
	return h.flags == nil || h.flags.IsEnabled(ctx, flag)
}
