// ABOUTME: Browsing context middleware gives each request a navigator, an origin and its session headers
// ABOUTME: Remote calls made while serving the request forward the visitor's cookies

package middleware

import (
	"context"
	"net/http"

	"opportunities-portal-api/core/session"
	"opportunities-portal-api/infrastructure/rpc"
)

// forwardedHeaders are copied from the visitor's request onto remote calls
var forwardedHeaders = []string{"Cookie", "Authorization"}

// BrowsingContext installs a session.Recorder as the request's navigator, the
// request origin (falling back to publicOrigin) and the forwarded session headers
func BrowsingContext(publicOrigin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := session.WithNavigator(r.Context(), &session.Recorder{})
			ctx = session.WithOrigin(ctx, session.RequestOrigin(r, publicOrigin))

			headers := make(map[string]string, len(forwardedHeaders))
			for _, name := range forwardedHeaders {
				if v := r.Header.Get(name); v != "" {
					headers[name] = v
				}
			}
			if len(headers) > 0 {
				ctx = rpc.WithHeaders(ctx, headers)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// LoginRedirect returns the login location navigated to under ctx, if any
func LoginRedirect(ctx context.Context) string {
	if rec, ok := session.NavigatorFromContext(ctx).(*session.Recorder); ok {
		return rec.Location()
	}
	return ""
}
