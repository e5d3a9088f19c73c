// ABOUTME: Response DTOs for share endpoints

package responses

import "time"

// ConfirmationResponse is the transient "shared via" label of a share control
type ConfirmationResponse struct {
	Label     string    `json:"label" doc:"Target label shown to the user"`
	ExpiresAt time.Time `json:"expiresAt" doc:"When the label clears"`
}

// ShareResponse is a built share link
type ShareResponse struct {
	ControlID      string               `json:"controlId" doc:"Share control to poll for the confirmation"`
	Target         string               `json:"target"`
	URL            string               `json:"url" doc:"Share URL to open"`
	Disposition    string               `json:"disposition" doc:"How to open the URL" enum:"popup,navigate"`
	WindowFeatures string               `json:"windowFeatures,omitempty" doc:"Popup window features"`
	Confirmation   ConfirmationResponse `json:"confirmation"`
}
