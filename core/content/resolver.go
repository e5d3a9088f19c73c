// ABOUTME: Tiered resolver settles one content listing from an ordered chain of sources
// ABOUTME: The first tier with data wins; when every tier is empty or fails the listing is empty

package content

import (
	"context"

	"opportunities-portal-api/core/domain"
	"opportunities-portal-api/core/interfaces"
)

// Resolver resolves one kind of listing. Tiers are tried strictly in order.
type Resolver[T any] struct {
	kind    domain.ContentKind
	sources []interfaces.Source[T]
	logger  interfaces.Logger
	metrics interfaces.Metrics
}

// NewResolver creates a resolver over sources, highest priority first
func NewResolver[T any](kind domain.ContentKind, deps interfaces.Dependencies, sources ...interfaces.Source[T]) *Resolver[T] {
	r := &Resolver[T]{
		kind:    kind,
		sources: sources,
		logger:  deps.Logger,
		metrics: deps.Metrics,
	}
	if r.logger == nil {
		r.logger = interfaces.NopLogger{}
	}
	if r.metrics == nil {
		r.metrics = interfaces.NopMetrics{}
	}
	return r
}

// Kind returns the listing kind
func (r *Resolver[T]) Kind() domain.ContentKind {
	return r.kind
}

// Resolve walks the tiers and always returns an exhausted envelope.
// An empty tier falls through exactly like a failing one.
func (r *Resolver[T]) Resolve(ctx context.Context) domain.Envelope[T] {
	failed := false

	for _, src := range r.sources {
		items, err := src.Fetch(ctx)
		if err != nil {
			failed = true
			r.metrics.TierFailed(string(r.kind), src.Name())
			r.logger.Warn("Content tier failed, trying next", map[string]interface{}{
				"kind":  string(r.kind),
				"tier":  src.Name(),
				"error": err.Error(),
			})
			continue
		}

		if len(items) == 0 {
			r.logger.Debug("Content tier empty, trying next", map[string]interface{}{
				"kind": string(r.kind),
				"tier": src.Name(),
			})
			continue
		}

		r.metrics.TierServed(string(r.kind), src.Name())
		return domain.ResolvedEnvelope(items, src.Name())
	}

	r.metrics.TierServed(string(r.kind), domain.SourceEmpty)
	if failed {
		r.logger.Info("Content unavailable from every tier", map[string]interface{}{"kind": string(r.kind)})
	}
	return domain.EmptyEnvelope[T](failed)
}
