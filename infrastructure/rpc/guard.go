// ABOUTME: Transport guard converts remote call failures into empty success envelopes
// ABOUTME: Callers see "no backend" exactly as "backend returned nothing"

package rpc

import (
	"context"

	"opportunities-portal-api/core/interfaces"
)

// Guard wraps a Transport so Call never returns an error
type Guard struct {
	next    Transport
	logger  interfaces.Logger
	metrics interfaces.Metrics
}

// NewGuard wraps next; logger and metrics may be nil
func NewGuard(next Transport, logger interfaces.Logger, metrics interfaces.Metrics) *Guard {
	if logger == nil {
		logger = interfaces.NopLogger{}
	}
	if metrics == nil {
		metrics = interfaces.NopMetrics{}
	}
	return &Guard{next: next, logger: logger, metrics: metrics}
}

// Call forwards to the wrapped transport. Any failure is logged once and
// replaced by EmptyEnvelope. No retry is attempted here.
func (g *Guard) Call(ctx context.Context, op Operation) (env *Envelope, err error) {
	defer func() {
		if r := recover(); r != nil {
			g.absorb(op, map[string]interface{}{"panic": r})
			env, err = EmptyEnvelope(), nil
		}
	}()

	env, err = g.next.Call(ctx, op)
	if err != nil {
		g.absorb(op, map[string]interface{}{"error": err.Error()})
		return EmptyEnvelope(), nil
	}
	if !env.IsWellFormed() {
		g.absorb(op, map[string]interface{}{"error": "malformed envelope"})
		return EmptyEnvelope(), nil
	}

	return env, nil
}

// Absorb logs and counts a failure found after Call returned
func (g *Guard) Absorb(op Operation, err error) {
	g.absorb(op, map[string]interface{}{"error": err.Error()})
}

func (g *Guard) absorb(op Operation, fields map[string]interface{}) {
	fields["procedure"] = op.Procedure
	g.logger.Warn("Remote call failed, backend unavailable; returning empty envelope", fields)
	g.metrics.TransportAbsorbed(op.Procedure)
}
