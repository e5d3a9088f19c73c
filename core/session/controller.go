// ABOUTME: Session redirect controller turns unauthorized remote errors into a login navigation
// ABOUTME: Other errors are logged and otherwise ignored

package session

import (
	"context"

	coreerrors "opportunities-portal-api/core/errors"
	"opportunities-portal-api/core/interfaces"
	"opportunities-portal-api/core/querycache"
)

// Config holds the login portal settings
type Config struct {
	// PortalURL is the OAuth portal base URL
	PortalURL string

	// AppID identifies this application to the portal
	AppID string

	// PublicOrigin is used when the context carries no origin
	PublicOrigin string
}

// Controller reacts to failed operations
type Controller struct {
	config Config
	logger interfaces.Logger
}

// NewController creates a session redirect controller
func NewController(config Config, logger interfaces.Logger) *Controller {
	if logger == nil {
		logger = interfaces.NopLogger{}
	}
	return &Controller{config: config, logger: logger}
}

// LoginLocation computes the login location for the origin carried by ctx
func (c *Controller) LoginLocation(ctx context.Context) string {
	origin := OriginFromContext(ctx)
	if origin == "" {
		origin = c.config.PublicOrigin
	}
	return LoginURL(origin, c.config.PortalURL, c.config.AppID)
}

// HandleError handles one error event. Unauthorized errors navigate the context's
// Navigator to the login location unless that location is HomeLocation.
func (c *Controller) HandleError(ctx context.Context, err error) {
	if err == nil {
		return
	}

	if coreerrors.Classify(err) != coreerrors.ClassUnauthorized {
		c.logger.Error("Query failed", map[string]interface{}{
			"error": err.Error(),
			"class": coreerrors.ClassOther.String(),
		})
		return
	}

	location := c.LoginLocation(ctx)
	if location == HomeLocation {
		c.logger.Warn("Login required but the login portal is not configured", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	nav := NavigatorFromContext(ctx)
	if nav == nil {
		c.logger.Debug("Login required outside a browsing context", map[string]interface{}{"location": location})
		return
	}

	nav.Navigate(location)
}

// Attach subscribes the controller to the query cache's error events and
// returns the function that detaches it
func (c *Controller) Attach(queries *querycache.Cache) (detach func()) {
	return queries.Subscribe(func(e querycache.Event) {
		c.HandleError(e.Ctx, e.Err)
	})
}
