// ABOUTME: Query cache is the process-scoped registry of query results keyed by operation identity
// ABOUTME: Records per-query state, optionally reuses fresh results, and publishes error events to subscribers

package querycache

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"time"

	"opportunities-portal-api/core/interfaces"
)

// Status is the lifecycle state of one query key
type Status string

const (
	StatusIdle    Status = "idle"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// State is the last recorded outcome of a query key
type State struct {
	Key       string    `json:"key"`
	Status    Status    `json:"status"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
	Error     string    `json:"error,omitempty"`
	Count     int       `json:"count"`
}

// Event is published once for every failed query
type Event struct {
	// Ctx is the context the failing query ran under
	Ctx context.Context

	// Key is the query key
	Key string

	// Err is the error the query returned
	Err error
}

type scopeKey struct{}

// WithScope returns a context whose stored results are kept apart from every
// other scope. Use it when a query's result depends on who is asking.
func WithScope(ctx context.Context, scope string) context.Context {
	if scope == "" {
		return ctx
	}
	return context.WithValue(ctx, scopeKey{}, scope)
}

func scopeFromContext(ctx context.Context) string {
	scope, _ := ctx.Value(scopeKey{}).(string)
	return scope
}

// Listener receives error events. It runs on the querying goroutine and must not block.
type Listener func(Event)

// Option configures a Cache
type Option func(*Cache)

// WithStore keeps successful results in store so they can be reused within the stale time
func WithStore(store interfaces.Cache) Option {
	return func(c *Cache) {
		c.store = store
	}
}

// WithStaleTime sets how long a stored result counts as fresh. Zero always refetches.
func WithStaleTime(d time.Duration) Option {
	return func(c *Cache) {
		if d > 0 {
			c.staleTime = d
		}
	}
}

// WithLogger sets the logger
func WithLogger(logger interfaces.Logger) Option {
	return func(c *Cache) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithClock overrides the time source
func WithClock(now func() time.Time) Option {
	return func(c *Cache) {
		c.now = now
	}
}

// Cache tracks query outcomes for the whole process. Safe for concurrent use.
type Cache struct {
	store     interfaces.Cache
	staleTime time.Duration
	logger    interfaces.Logger
	now       func() time.Time

	mu        sync.RWMutex
	states    map[string]State
	listeners map[int]Listener
	nextID    int
}

// New creates a Cache
func New(opts ...Option) *Cache {
	c := &Cache{
		logger:    interfaces.NopLogger{},
		now:       time.Now,
		states:    make(map[string]State),
		listeners: make(map[int]Listener),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// StaleTime returns the configured freshness window
func (c *Cache) StaleTime() time.Duration {
	return c.staleTime
}

// Subscribe registers l for error events and returns a function that removes it
func (c *Cache) Subscribe(l Listener) (unsubscribe func()) {
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.listeners[id] = l
	c.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			delete(c.listeners, id)
			c.mu.Unlock()
		})
	}
}

// State returns the recorded state of key
func (c *Cache) State(key string) State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if s, ok := c.states[key]; ok {
		return s
	}
	return State{Key: key, Status: StatusIdle}
}

// States returns every recorded state ordered by key
func (c *Cache) States() []State {
	c.mu.RLock()
	states := make([]State, 0, len(c.states))
	for _, s := range c.states {
		states = append(states, s)
	}
	c.mu.RUnlock()

	sort.Slice(states, func(i, j int) bool { return states[i].Key < states[j].Key })
	return states
}

// Query runs fn for key, recording its outcome. With a store and a non-zero stale
// time, a stored non-empty result of the same scope is returned without calling fn.
// State is tracked per key regardless of scope.
func Query[T any](ctx context.Context, c *Cache, key string, fn func(ctx context.Context) ([]T, error)) ([]T, error) {
	if items, ok := lookup[T](ctx, c, key); ok {
		return items, nil
	}

	items, err := fn(ctx)
	if err != nil {
		c.record(State{Key: key, Status: StatusError, UpdatedAt: c.now(), Error: err.Error()})
		c.publish(Event{Ctx: ctx, Key: key, Err: err})
		return nil, err
	}

	c.record(State{Key: key, Status: StatusSuccess, UpdatedAt: c.now(), Count: len(items)})
	keep(ctx, c, key, items)
	return items, nil
}

func lookup[T any](ctx context.Context, c *Cache, key string) ([]T, bool) {
	if c.store == nil || c.staleTime == 0 {
		return nil, false
	}

	data, err := c.store.Get(ctx, storeKey(ctx, key))
	if err != nil || len(data) == 0 {
		return nil, false
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		c.logger.Warn("Discarding undecodable cached query result", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
		_ = c.store.Delete(ctx, storeKey(ctx, key))
		return nil, false
	}

	c.logger.Debug("Query served from cache", map[string]interface{}{"key": key, "count": len(items)})
	return items, true
}

// keep stores non-empty results only so an empty tier is retried next time
func keep[T any](ctx context.Context, c *Cache, key string, items []T) {
	if c.store == nil || c.staleTime == 0 || len(items) == 0 {
		return
	}

	data, err := json.Marshal(items)
	if err != nil {
		c.logger.Warn("Failed to encode query result for cache", map[string]interface{}{"key": key, "error": err.Error()})
		return
	}
	if err := c.store.Set(ctx, storeKey(ctx, key), data, c.staleTime); err != nil {
		c.logger.Warn("Failed to cache query result", map[string]interface{}{"key": key, "error": err.Error()})
	}
}

func (c *Cache) record(s State) {
	c.mu.Lock()
	c.states[s.Key] = s
	c.mu.Unlock()
}

func (c *Cache) publish(e Event) {
	c.mu.RLock()
	ids := make([]int, 0, len(c.listeners))
	for id := range c.listeners {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	listeners := make([]Listener, 0, len(ids))
	for _, id := range ids {
		listeners = append(listeners, c.listeners[id])
	}
	c.mu.RUnlock()

	for _, l := range listeners {
		l(e)
	}
}

func storeKey(ctx context.Context, key string) string {
	if scope := scopeFromContext(ctx); scope != "" {
		return "query:" + key + ":" + scope
	}
	return "query:" + key
}
