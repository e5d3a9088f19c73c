// ABOUTME: Context plumbing for headers forwarded on remote calls
// ABOUTME: The API attaches the visitor's session headers; operations may override them

package rpc

import "context"

type headersKey struct{}

// WithHeaders returns a context whose remote calls forward headers to the backend.
// Headers set on an Operation take precedence.
func WithHeaders(ctx context.Context, headers map[string]string) context.Context {
	if len(headers) == 0 {
		return ctx
	}
	return context.WithValue(ctx, headersKey{}, headers)
}

// HeadersFromContext returns the headers attached by WithHeaders
func HeadersFromContext(ctx context.Context) map[string]string {
	if h, ok := ctx.Value(headersKey{}).(map[string]string); ok {
		return h
	}
	return nil
}

func mergeHeaders(ctx context.Context, op map[string]string) map[string]string {
	fromCtx := HeadersFromContext(ctx)
	if len(fromCtx) == 0 {
		return op
	}
	merged := make(map[string]string, len(fromCtx)+len(op))
	for k, v := range fromCtx {
		merged[k] = v
	}
	for k, v := range op {
		merged[k] = v
	}
	return merged
}
