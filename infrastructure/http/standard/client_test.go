package standard

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStandardHTTPClient(t *testing.T) {
	timeout := 10 * time.Second
	client := NewStandardHTTPClient(timeout)

	require.NotNil(t, client)
	assert.Equal(t, timeout, client.client.Timeout)
	assert.Equal(t, 1, client.maxAttempts, "default client must not retry")
}

func TestNewStandardHTTPClientWithOptions_ClampsAttempts(t *testing.T) {
	client := NewStandardHTTPClientWithOptions(Options{Timeout: time.Second, MaxAttempts: 0})

	assert.Equal(t, 1, client.maxAttempts)
}

func TestStandardHTTPClient_Get_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("Expected GET request, got %s", r.Method)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewStandardHTTPClient(10 * time.Second)

	resp, err := client.Get(context.Background(), server.URL)
	require.NoError(t, err)
	require.NotNil(t, resp)
	defer resp.Body().Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, "application/json", resp.Header("content-type"))

	body, err := io.ReadAll(resp.Body())
	require.NoError(t, err)
	assert.Equal(t, "[]", string(body))
}

func TestStandardHTTPClient_GetWithHeaders(t *testing.T) {
	var cookie, agent string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie = r.Header.Get("Cookie")
		agent = r.Header.Get("User-Agent")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewStandardHTTPClient(10 * time.Second)

	resp, err := client.GetWithHeaders(context.Background(), server.URL, map[string]string{
		"Cookie": "app_session_id=abc",
	})
	require.NoError(t, err)
	resp.Body().Close()

	assert.Equal(t, "app_session_id=abc", cookie)
	assert.True(t, strings.Contains(agent, "OpportunitiesPortal"), "User-Agent = %s", agent)
}

func TestStandardHTTPClient_Get_ContextTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewStandardHTTPClient(10 * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := client.Get(ctx, server.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "context deadline exceeded")
}

func TestStandardHTTPClient_Get_InvalidURL(t *testing.T) {
	client := NewStandardHTTPClient(10 * time.Second)

	_, err := client.Get(context.Background(), "://not a valid url")
	assert.Error(t, err)
}

func TestStandardHTTPClient_SingleAttemptReturns503(t *testing.T) {
	var attempts int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&attempts, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewStandardHTTPClient(10 * time.Second)

	resp, err := client.Get(context.Background(), server.URL)
	require.NoError(t, err)
	resp.Body().Close()

	assert.Equal(t, int32(1), atomic.LoadInt32(&attempts))
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode())
}

func TestStandardHTTPClient_Get_Retry503(t *testing.T) {
	var attempts int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&attempts, 1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewStandardHTTPClientWithOptions(Options{Timeout: 10 * time.Second, MaxAttempts: 3})

	resp, err := client.Get(context.Background(), server.URL)
	require.NoError(t, err)
	resp.Body().Close()

	assert.Equal(t, int32(3), atomic.LoadInt32(&attempts))
	assert.Equal(t, http.StatusOK, resp.StatusCode())
}

func TestStandardHTTPClient_Get_MaxAttemptsKeepsLastResponse(t *testing.T) {
	var attempts int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&attempts, 1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewStandardHTTPClientWithOptions(Options{Timeout: 10 * time.Second, MaxAttempts: 2})

	resp, err := client.Get(context.Background(), server.URL)
	require.NoError(t, err)
	resp.Body().Close()

	assert.Equal(t, int32(2), atomic.LoadInt32(&attempts))
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode())
}

func TestStandardHTTPClient_Get_NoRetryOn4xx(t *testing.T) {
	var attempts int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&attempts, 1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewStandardHTTPClientWithOptions(Options{Timeout: 10 * time.Second, MaxAttempts: 3})

	resp, err := client.Get(context.Background(), server.URL)
	require.NoError(t, err)
	resp.Body().Close()

	assert.Equal(t, int32(1), atomic.LoadInt32(&attempts))
}

type recordingLogger struct {
	debug []string
}

func (l *recordingLogger) Debug(msg string, fields map[string]interface{}) {
	l.debug = append(l.debug, msg)
}
func (l *recordingLogger) Info(msg string, fields map[string]interface{})  {}
func (l *recordingLogger) Warn(msg string, fields map[string]interface{})  {}
func (l *recordingLogger) Error(msg string, fields map[string]interface{}) {}

func TestLoggingRoundTripper(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	logger := &recordingLogger{}
	client := NewStandardHTTPClientWithOptions(Options{Timeout: time.Second, Logger: logger})

	resp, err := client.Get(context.Background(), server.URL)
	require.NoError(t, err)
	resp.Body().Close()

	assert.Equal(t, []string{"Outgoing HTTP response"}, logger.debug)
}
