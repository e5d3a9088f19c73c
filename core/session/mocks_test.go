package session

import "sync"

type logEntry struct {
	level string
	msg   string
}

// mockLogger records entries
type mockLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

func (m *mockLogger) record(level, msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, logEntry{level: level, msg: msg})
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) { m.record("debug", msg) }
func (m *mockLogger) Info(msg string, fields map[string]interface{})  { m.record("info", msg) }
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  { m.record("warn", msg) }
func (m *mockLogger) Error(msg string, fields map[string]interface{}) { m.record("error", msg) }

func (m *mockLogger) levels() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	levels := make([]string, len(m.entries))
	for i, e := range m.entries {
		levels[i] = e.level
	}
	return levels
}
