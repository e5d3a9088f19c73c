// ABOUTME: Lenient timestamp decoding for producer records
// ABOUTME: Unparseable or missing values decode to the zero time instead of failing the record

package domain

import (
	"encoding/json"
	"time"

	timeutil "opportunities-portal-api/pkg/utils/time"
)

// parseTime parses s with the producer layouts
func parseTime(s string) (time.Time, bool) {
	return timeutil.Parse(s)
}

// flexTime decodes any producer layout, leaving the zero time for unparseable values
type flexTime struct {
	time.Time
}

func (f *flexTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		// null and non-string values are treated as unknown
		return nil
	}
	if t, ok := parseTime(s); ok {
		f.Time = t
	}
	return nil
}
