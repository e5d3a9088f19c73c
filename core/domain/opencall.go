// ABOUTME: OpenCall domain model represents a funding or training call (bando)
// ABOUTME: Carries a lifecycle status marker and a deadline that may be free text or a date

package domain

import (
	"encoding/json"
	"time"
)

// OpenStatus is the status marker of a call that is still accepting applications.
// Matching is byte-for-byte; upstream variants such as "aperto" or "Open" are not open.
const OpenStatus = "Aperto"

// OpenCall represents a funding or training opportunity
type OpenCall struct {
	// Fondo is the funding scheme name
	Fondo string `json:"fondo"`

	// Titolo is the call title
	Titolo string `json:"titolo"`

	// Scadenza is the application deadline
	Scadenza Deadline `json:"scadenza"`

	// Stato is the lifecycle status marker
	Stato string `json:"stato"`

	// Link points to the call page
	Link string `json:"link"`
}

// IsOpen reports whether the call status equals OpenStatus exactly
func (o OpenCall) IsOpen() bool {
	return o.Stato == OpenStatus
}

// Deadline holds a deadline as published, plus the parsed date when it is one
type Deadline struct {
	// Raw is the value exactly as received
	Raw string

	// Date is set when Raw parses as a date
	Date *time.Time
}

// NewDeadline builds a Deadline from its raw representation
func NewDeadline(raw string) Deadline {
	d := Deadline{Raw: raw}
	if t, ok := parseTime(raw); ok {
		d.Date = &t
	}
	return d
}

// String returns the raw deadline
func (d Deadline) String() string {
	return d.Raw
}

// MarshalJSON writes the raw value so round trips are lossless
func (d Deadline) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Raw)
}

// UnmarshalJSON accepts a string; null leaves the deadline empty
func (d *Deadline) UnmarshalJSON(data []byte) error {
	var raw *string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		*d = Deadline{}
		return nil
	}
	*d = NewDeadline(*raw)
	return nil
}
