package content

import (
	"context"
	"sync"
)

// mockSource is a function-backed interfaces.Source
type mockSource[T any] struct {
	name      string
	fetchFunc func(ctx context.Context) ([]T, error)
	calls     int
}

func (m *mockSource[T]) Name() string {
	return m.name
}

func (m *mockSource[T]) Fetch(ctx context.Context) ([]T, error) {
	m.calls++
	if m.fetchFunc != nil {
		return m.fetchFunc(ctx)
	}
	return nil, nil
}

func returning[T any](name string, items []T, err error) *mockSource[T] {
	return &mockSource[T]{
		name: name,
		fetchFunc: func(ctx context.Context) ([]T, error) {
			return items, err
		},
	}
}

// mockMetrics records tier outcomes
type mockMetrics struct {
	mu     sync.Mutex
	served []string
	failed []string
}

func (m *mockMetrics) TierServed(kind, tier string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.served = append(m.served, kind+"/"+tier)
}

func (m *mockMetrics) TierFailed(kind, tier string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failed = append(m.failed, kind+"/"+tier)
}

func (m *mockMetrics) TransportAbsorbed(procedure string) {}
func (m *mockMetrics) ShareBuilt(target string)           {}
