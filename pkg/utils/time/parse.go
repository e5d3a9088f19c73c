// ABOUTME: Time parsing utilities for the timestamps found in listing producers
// ABOUTME: Covers RFC 3339, Python isoformat() without a zone, plain dates and Italian dd/mm/yyyy

package time

import (
	"strings"
	"time"
)

// layouts are tried in order. The scraper writes isoformat() values without a zone.
var layouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02/01/2006",
}

// Parse parses s with the first matching layout
func Parse(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
