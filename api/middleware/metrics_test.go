package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsMiddleware_UsesRoutePattern(t *testing.T) {
	observer := &mockObserver{}

	r := chi.NewRouter()
	r.Use(MetricsMiddleware(observer))
	r.Get("/api/v1/share/{controlId}/confirmation", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/api/v1/share/abc/confirmation", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/nowhere", nil))

	require.Len(t, observer.seen, 2)
	assert.Equal(t, "GET", observer.seen[0].method)
	assert.Equal(t, "/api/v1/share/{controlId}/confirmation", observer.seen[0].route)
	assert.Equal(t, "404", observer.seen[0].status)
	assert.Equal(t, "unmatched", observer.seen[1].route)
}

func TestMetricsMiddleware_WithoutChi(t *testing.T) {
	observer := &mockObserver{}
	handler := MetricsMiddleware(observer)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("POST", "/x", nil))

	require.Len(t, observer.seen, 1)
	assert.Equal(t, "200", observer.seen[0].status)
	assert.Equal(t, "unmatched", observer.seen[0].route)
}
