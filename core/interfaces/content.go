// ABOUTME: Content interfaces describe the tiers a listing can be resolved from
// ABOUTME: Sources return an ordered sequence or an error; emptiness is not an error

package interfaces

import "context"

// Source is one tier of a listing's fallback chain
type Source[T any] interface {
	// Name identifies the tier in envelopes, logs and metrics
	Name() string

	// Fetch returns the tier's records in source order.
	// An empty result with a nil error means the tier had nothing.
	Fetch(ctx context.Context) ([]T, error)
}

// SourceFunc adapts a function to Source
type SourceFunc[T any] struct {
	TierName string
	Fn       func(ctx context.Context) ([]T, error)
}

// Name returns the tier name
func (s SourceFunc[T]) Name() string {
	return s.TierName
}

// Fetch calls Fn
func (s SourceFunc[T]) Fetch(ctx context.Context) ([]T, error) {
	return s.Fn(ctx)
}
