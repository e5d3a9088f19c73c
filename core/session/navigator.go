// ABOUTME: Request-scoped navigation intents and origin
// ABOUTME: The API layer reads recorded intents back and returns them to the client

package session

import (
	"context"
	"net/http"
	"strings"
	"sync"
)

// Navigator receives navigation intents for the current browsing context
type Navigator interface {
	Navigate(location string)
}

// Recorder is a Navigator that keeps the last intent. Safe for concurrent use.
type Recorder struct {
	mu       sync.Mutex
	location string
	count    int
}

// Navigate records location; repeating the same location is a no-op
func (r *Recorder) Navigate(location string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.location == location {
		return
	}
	r.location = location
	r.count++
}

// Location returns the last recorded location, or "" if none
func (r *Recorder) Location() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.location
}

// Count returns how many distinct intents were recorded
func (r *Recorder) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

type navigatorKey struct{}
type originKey struct{}

// WithNavigator adds a navigator to the context
func WithNavigator(ctx context.Context, n Navigator) context.Context {
	return context.WithValue(ctx, navigatorKey{}, n)
}

// NavigatorFromContext retrieves the navigator, or nil when the context has none
func NavigatorFromContext(ctx context.Context) Navigator {
	if ctx == nil {
		return nil
	}
	if n, ok := ctx.Value(navigatorKey{}).(Navigator); ok {
		return n
	}
	return nil
}

// WithOrigin adds the browsing context's origin to the context
func WithOrigin(ctx context.Context, origin string) context.Context {
	return context.WithValue(ctx, originKey{}, origin)
}

// OriginFromContext retrieves the origin, or "" when unset
func OriginFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	origin, _ := ctx.Value(originKey{}).(string)
	return origin
}

// RequestOrigin derives scheme://host from r, honouring X-Forwarded-Proto and
// X-Forwarded-Host. fallback is returned when r carries no host.
func RequestOrigin(r *http.Request, fallback string) string {
	host := firstValue(r.Header.Get("X-Forwarded-Host"))
	if host == "" {
		host = r.Host
	}
	if host == "" {
		return fallback
	}

	scheme := strings.ToLower(firstValue(r.Header.Get("X-Forwarded-Proto")))
	if scheme != "http" && scheme != "https" {
		scheme = "http"
		if r.TLS != nil {
			scheme = "https"
		}
	}

	return scheme + "://" + host
}

// firstValue returns the first entry of a comma-separated proxy header
func firstValue(v string) string {
	if i := strings.IndexByte(v, ','); i >= 0 {
		v = v[:i]
	}
	return strings.TrimSpace(v)
}
