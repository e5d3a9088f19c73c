// ABOUTME: HTTP transport for remote procedure calls
// ABOUTME: Decodes responses into envelopes and reports undecodable ones as transport failures

package rpc

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strings"

	"opportunities-portal-api/core/interfaces"
)

// maxEnvelopeBytes caps how much of a response body is read
const maxEnvelopeBytes = 4 << 20

// Operation describes one remote procedure call
type Operation struct {
	// Procedure is the dotted procedure path, e.g. "news.latest"
	Procedure string

	// Input is marshalled into the input query parameter when non-nil
	Input interface{}

	// Headers are forwarded to the backend (session cookie)
	Headers map[string]string
}

// Transport performs one remote procedure call
type Transport interface {
	Call(ctx context.Context, op Operation) (*Envelope, error)
}

// TransportError is a failure below the application layer
type TransportError struct {
	Procedure string
	Err       error
}

// Error implements the error interface
func (e *TransportError) Error() string {
	return fmt.Sprintf("remote call %s: %v", e.Procedure, e.Err)
}

// Unwrap returns the underlying cause
func (e *TransportError) Unwrap() error {
	return e.Err
}

// HTTPTransport calls procedures as GET {baseURL}/api/trpc/{procedure}
type HTTPTransport struct {
	baseURL string
	client  interfaces.HTTPClient
}

// NewHTTPTransport creates a transport for the backend at baseURL
func NewHTTPTransport(baseURL string, client interfaces.HTTPClient) *HTTPTransport {
	return &HTTPTransport{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
	}
}

// Call performs the request and decodes the envelope.
// A decodable error envelope is returned with a nil error whatever the HTTP status.
func (t *HTTPTransport) Call(ctx context.Context, op Operation) (*Envelope, error) {
	endpoint, err := t.endpoint(op)
	if err != nil {
		return nil, &TransportError{Procedure: op.Procedure, Err: err}
	}

	resp, err := t.client.GetWithHeaders(ctx, endpoint, mergeHeaders(ctx, op.Headers))
	if err != nil {
		return nil, &TransportError{Procedure: op.Procedure, Err: err}
	}
	defer resp.Body().Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body(), maxEnvelopeBytes))
	if err != nil {
		return nil, &TransportError{Procedure: op.Procedure, Err: fmt.Errorf("read body: %w", err)}
	}

	var env Envelope
	if err := json.Unmarshal(body, &env); err != nil || !env.IsWellFormed() {
		if err == nil {
			err = fmt.Errorf("missing result and error")
		}
		return nil, &TransportError{
			Procedure: op.Procedure,
			Err:       fmt.Errorf("malformed response (status %d): %w", resp.StatusCode(), err),
		}
	}

	return &env, nil
}

func (t *HTTPTransport) endpoint(op Operation) (string, error) {
	if t.baseURL == "" {
		return "", fmt.Errorf("backend URL not configured")
	}
	if op.Procedure == "" {
		return "", fmt.Errorf("procedure cannot be empty")
	}

	endpoint := t.baseURL + "/api/trpc/" + url.PathEscape(op.Procedure)
	if op.Input != nil {
		input, err := json.Marshal(map[string]interface{}{"json": op.Input})
		if err != nil {
			return "", fmt.Errorf("encode input: %w", err)
		}
		endpoint += "?input=" + url.QueryEscape(string(input))
	}

	return endpoint, nil
}
