// ABOUTME: Share domain model enumerates outbound share targets and confirmation state
// ABOUTME: Each target maps to a fixed label and opening disposition

package domain

import (
	"fmt"
	"strings"
	"time"
)

// ShareTarget is an outbound share destination
type ShareTarget string

const (
	ShareLinkedIn ShareTarget = "linkedin"
	ShareTwitter  ShareTarget = "twitter"
	ShareFacebook ShareTarget = "facebook"
	ShareEmail    ShareTarget = "email"
)

// ShareTargets lists every target in menu order
var ShareTargets = []ShareTarget{ShareLinkedIn, ShareTwitter, ShareFacebook, ShareEmail}

// Disposition tells the client how to open a share link
type Disposition string

const (
	// DispositionPopup opens the link in a new sized window
	DispositionPopup Disposition = "popup"

	// DispositionNavigate replaces the current location (mail clients)
	DispositionNavigate Disposition = "navigate"
)

// PopupFeatures are the window features used for social share popups
const PopupFeatures = "width=600,height=400"

// ParseShareTarget parses a target name case-insensitively
func ParseShareTarget(s string) (ShareTarget, error) {
	t := ShareTarget(strings.ToLower(strings.TrimSpace(s)))
	switch t {
	case ShareLinkedIn, ShareTwitter, ShareFacebook, ShareEmail:
		return t, nil
	case "x":
		return ShareTwitter, nil
	case "mail":
		return ShareEmail, nil
	}
	return "", fmt.Errorf("unknown share target %q", s)
}

// Label returns the human label shown in confirmations
func (t ShareTarget) Label() string {
	switch t {
	case ShareLinkedIn:
		return "LinkedIn"
	case ShareTwitter:
		return "Twitter"
	case ShareFacebook:
		return "Facebook"
	case ShareEmail:
		return "Email"
	default:
		return string(t)
	}
}

// Disposition returns how links for this target are opened
func (t ShareTarget) Disposition() Disposition {
	if t == ShareEmail {
		return DispositionNavigate
	}
	return DispositionPopup
}

// ShareLink is a built outbound URL ready to be opened by the client
type ShareLink struct {
	Target         ShareTarget `json:"target"`
	URL            string      `json:"url"`
	Disposition    Disposition `json:"disposition"`
	WindowFeatures string      `json:"windowFeatures,omitempty"`
}

// Confirmation is the transient "shared via X" state of a share control
type Confirmation struct {
	// Label is the human label of the last used target
	Label string `json:"label"`

	// ExpiresAt is when the confirmation clears
	ExpiresAt time.Time `json:"expiresAt"`
}

// IsExpired checks if the confirmation is past its expiry at now
func (c Confirmation) IsExpired(now time.Time) bool {
	return !now.Before(c.ExpiresAt)
}
