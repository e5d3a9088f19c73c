package rpc

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuard_PassesThroughSuccess(t *testing.T) {
	want := &Envelope{Result: &Result{Data: []byte(`{"json":[{"title":"a"}]}`)}}
	logger := &mockLogger{}
	guard := NewGuard(&mockTransport{
		callFunc: func(ctx context.Context, op Operation) (*Envelope, error) {
			return want, nil
		},
	}, logger, nil)

	env, err := guard.Call(context.Background(), Operation{Procedure: "news.latest"})

	require.NoError(t, err)
	assert.Same(t, want, env)
	assert.Equal(t, 0, logger.count("warn"))
}

func TestGuard_PassesThroughErrorEnvelope(t *testing.T) {
	want := &Envelope{Error: &ErrorShape{JSON: &ErrorBody{Message: "Please login (10001)"}}}
	guard := NewGuard(&mockTransport{
		callFunc: func(ctx context.Context, op Operation) (*Envelope, error) {
			return want, nil
		},
	}, nil, nil)

	env, err := guard.Call(context.Background(), Operation{Procedure: "news.latest"})

	require.NoError(t, err)
	assert.Same(t, want, env)
}

func TestGuard_AbsorbsTransportFailures(t *testing.T) {
	failures := []struct {
		name string
		call func(ctx context.Context, op Operation) (*Envelope, error)
	}{
		{"network error", func(ctx context.Context, op Operation) (*Envelope, error) {
			return nil, &TransportError{Procedure: op.Procedure, Err: errors.New("connection refused")}
		}},
		{"timeout", func(ctx context.Context, op Operation) (*Envelope, error) {
			return nil, context.DeadlineExceeded
		}},
		{"nil envelope", func(ctx context.Context, op Operation) (*Envelope, error) {
			return nil, nil
		}},
		{"envelope without result or error", func(ctx context.Context, op Operation) (*Envelope, error) {
			return &Envelope{}, nil
		}},
		{"panic", func(ctx context.Context, op Operation) (*Envelope, error) {
			panic("transport exploded")
		}},
	}

	for _, tt := range failures {
		t.Run(tt.name, func(t *testing.T) {
			logger := &mockLogger{}
			metrics := &mockMetrics{}
			guard := NewGuard(&mockTransport{callFunc: tt.call}, logger, metrics)

			var env *Envelope
			var err error
			assert.NotPanics(t, func() {
				env, err = guard.Call(context.Background(), Operation{Procedure: "news.latest"})
			})

			require.NoError(t, err)
			require.NotNil(t, env)
			require.NotNil(t, env.Result, "synthetic envelope must look like a success")
			assert.Nil(t, env.Error)
			assert.Nil(t, env.Payload())
			assert.Equal(t, 1, logger.count("warn"), "exactly one diagnostic per guarded failure")
			assert.Equal(t, 1, metrics.absorbed["news.latest"])
		})
	}
}

func TestGuard_DoesNotRetry(t *testing.T) {
	calls := 0
	guard := NewGuard(&mockTransport{
		callFunc: func(ctx context.Context, op Operation) (*Envelope, error) {
			calls++
			return nil, errors.New("boom")
		},
	}, nil, nil)

	guard.Call(context.Background(), Operation{Procedure: "bandi.latest"})

	assert.Equal(t, 1, calls)
}
