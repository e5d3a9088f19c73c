// ABOUTME: Remote listing tier backed by a procedure call through the query cache
// ABOUTME: Implements interfaces.Source so resolvers can chain it ahead of the snapshot tier

package rpc

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"sort"

	"opportunities-portal-api/core/domain"
	"opportunities-portal-api/core/querycache"
)

// Procedures serving the two listings
const (
	ProcedureNews      = "news.latest"
	ProcedureOpenCalls = "bandi.latest"
)

// Source fetches a listing by calling one procedure.
// Calls are made once per Fetch; retries are left to the caller.
type Source[T any] struct {
	procedure string
	transport Transport
	queries   *querycache.Cache
}

// NewSource creates a remote tier for procedure. queries may be nil.
func NewSource[T any](procedure string, transport Transport, queries *querycache.Cache) *Source[T] {
	return &Source[T]{procedure: procedure, transport: transport, queries: queries}
}

// Name returns the tier name
func (s *Source[T]) Name() string {
	return domain.SourceRemote
}

// Procedure returns the procedure path, which is also the query key
func (s *Source[T]) Procedure() string {
	return s.procedure
}

// Fetch calls the procedure. Guarded transport failures yield an empty result.
// Stored results are scoped to the forwarded session headers, so one visitor
// never receives another's data.
func (s *Source[T]) Fetch(ctx context.Context) ([]T, error) {
	call := func(ctx context.Context) ([]T, error) {
		return Query[T](ctx, s.transport, Operation{Procedure: s.procedure})
	}
	if s.queries == nil {
		return call(ctx)
	}
	ctx = querycache.WithScope(ctx, sessionScope(HeadersFromContext(ctx)))
	return querycache.Query(ctx, s.queries, s.procedure, call)
}

// sessionScope hashes the forwarded headers; anonymous requests share the empty scope.
func sessionScope(headers map[string]string) string {
	if len(headers) == 0 {
		return ""
	}
	names := make([]string, 0, len(headers))
	for name := range headers {
		names = append(names, name)
	}
	sort.Strings(names)

	h := sha256.New()
	for _, name := range names {
		h.Write([]byte(name + "=" + headers[name] + "\n"))
	}
	return hex.EncodeToString(h.Sum(nil))[:16]
}
