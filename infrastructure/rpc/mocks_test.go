package rpc

import (
	"context"
	"errors"
	"sync"
	"time"
)

// mockTransport is a function-backed Transport
type mockTransport struct {
	callFunc func(ctx context.Context, op Operation) (*Envelope, error)
}

func (m *mockTransport) Call(ctx context.Context, op Operation) (*Envelope, error) {
	if m.callFunc != nil {
		return m.callFunc(ctx, op)
	}
	return nil, nil
}

type logEntry struct {
	level  string
	msg    string
	fields map[string]interface{}
}

// mockLogger records entries
type mockLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

func (m *mockLogger) record(level, msg string, fields map[string]interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, logEntry{level: level, msg: msg, fields: fields})
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) { m.record("debug", msg, fields) }
func (m *mockLogger) Info(msg string, fields map[string]interface{})  { m.record("info", msg, fields) }
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  { m.record("warn", msg, fields) }
func (m *mockLogger) Error(msg string, fields map[string]interface{}) { m.record("error", msg, fields) }

func (m *mockLogger) count(level string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, e := range m.entries {
		if e.level == level {
			n++
		}
	}
	return n
}

// mockMetrics counts absorbed failures
type mockMetrics struct {
	absorbed map[string]int
}

func (m *mockMetrics) TierServed(kind, tier string) {}
func (m *mockMetrics) TierFailed(kind, tier string) {}
func (m *mockMetrics) ShareBuilt(target string)     {}
func (m *mockMetrics) TransportAbsorbed(procedure string) {
	if m.absorbed == nil {
		m.absorbed = map[string]int{}
	}
	m.absorbed[procedure]++
}

// memoryStore is a map-backed interfaces.Cache
type memoryStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemoryStore() *memoryStore {
	return &memoryStore{data: map[string][]byte{}}
}

func (m *memoryStore) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if v, ok := m.data[key]; ok {
		return v, nil
	}
	return nil, errors.New("miss")
}

func (m *memoryStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *memoryStore) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}
