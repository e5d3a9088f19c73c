// ABOUTME: Static snapshot client fetches pre-generated JSON listings over plain HTTP GET
// ABOUTME: Any failure (network, non-2xx status, invalid JSON) surfaces as a SnapshotError

package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"opportunities-portal-api/core/domain"
	coreerrors "opportunities-portal-api/core/errors"
	"opportunities-portal-api/core/interfaces"
)

// TierName identifies snapshot-served listings in envelopes and metrics
const TierName = domain.SourceSnapshot

// maxSnapshotBytes caps how much of a snapshot file is read
const maxSnapshotBytes = 8 << 20

// Source fetches one snapshot file and decodes it as a JSON array of T
type Source[T any] struct {
	url    string
	client interfaces.HTTPClient
}

// NewSource creates a snapshot source for the file at url
func NewSource[T any](url string, client interfaces.HTTPClient) *Source[T] {
	return &Source[T]{url: url, client: client}
}

// URL joins a snapshot base URL and a file path
func URL(baseURL, path string) string {
	if baseURL == "" {
		return path
	}
	return strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(path, "/")
}

// Name returns the tier name
func (s *Source[T]) Name() string {
	return TierName
}

// Fetch downloads and decodes the snapshot. A JSON null decodes to an empty result.
func (s *Source[T]) Fetch(ctx context.Context) ([]T, error) {
	if s.url == "" {
		return nil, &coreerrors.SnapshotError{URL: s.url, Err: fmt.Errorf("snapshot URL not configured")}
	}

	resp, err := s.client.Get(ctx, s.url)
	if err != nil {
		return nil, &coreerrors.SnapshotError{URL: s.url, Err: err}
	}
	defer resp.Body().Close()

	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		return nil, &coreerrors.SnapshotError{
			URL: s.url,
			Err: &coreerrors.ExternalAPIError{
				API:        "snapshot",
				StatusCode: resp.StatusCode(),
				Message:    http.StatusText(resp.StatusCode()),
			},
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body(), maxSnapshotBytes))
	if err != nil {
		return nil, &coreerrors.SnapshotError{URL: s.url, Err: fmt.Errorf("read body: %w", err)}
	}

	var items []T
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, &coreerrors.SnapshotError{URL: s.url, Err: fmt.Errorf("decode: %w", err)}
	}

	return items, nil
}
