// ABOUTME: Envelope wraps one resolution attempt of a content listing
// ABOUTME: Guarantees that a settled envelope always carries a non-nil sequence

package domain

// ContentKind identifies an independently resolved listing
type ContentKind string

const (
	// KindNews is the news listing
	KindNews ContentKind = "news"

	// KindOpenCalls is the open calls (bandi) listing
	KindOpenCalls ContentKind = "open_calls"
)

// Tier names reported in Envelope.Source
const (
	SourceRemote   = "remote"
	SourceSnapshot = "snapshot"
	SourceEmpty    = "empty"
)

// Envelope carries a resolution's data plus metadata
type Envelope[T any] struct {
	// Data is nil until the envelope is exhausted
	Data []T `json:"data"`

	// Failed is true when the envelope settled empty after a tier error
	Failed bool `json:"failed"`

	// Exhausted is true once every tier has been tried or one produced data
	Exhausted bool `json:"exhausted"`

	// Source names the tier that produced Data
	Source string `json:"source,omitempty"`
}

// PendingEnvelope returns the envelope of a resolution that has not settled
func PendingEnvelope[T any]() Envelope[T] {
	return Envelope[T]{}
}

// ResolvedEnvelope returns a settled envelope carrying items from source
func ResolvedEnvelope[T any](items []T, source string) Envelope[T] {
	if items == nil {
		items = []T{}
	}
	return Envelope[T]{
		Data:      items,
		Exhausted: true,
		Source:    source,
	}
}

// EmptyEnvelope returns a settled envelope with no data
func EmptyEnvelope[T any](failed bool) Envelope[T] {
	return Envelope[T]{
		Data:      []T{},
		Failed:    failed,
		Exhausted: true,
		Source:    SourceEmpty,
	}
}

// IsValid reports whether the exhausted-implies-data invariant holds
func (e Envelope[T]) IsValid() bool {
	return !e.Exhausted || e.Data != nil
}

// IsEmpty reports whether a settled envelope has nothing to show
func (e Envelope[T]) IsEmpty() bool {
	return e.Exhausted && len(e.Data) == 0
}
