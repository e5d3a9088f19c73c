// ABOUTME: Request DTOs for share endpoints
// ABOUTME: Validation rules are expressed as huma struct tags

package requests

import "strings"

// NewsItemRequest is the news record being shared
type NewsItemRequest struct {
	Title       string `json:"title" minLength:"1" maxLength:"500" doc:"Headline"`
	Entity      string `json:"entity,omitempty" maxLength:"200" doc:"Publishing entity"`
	Category    string `json:"category,omitempty" maxLength:"200"`
	Description string `json:"description,omitempty" maxLength:"5000"`
	Link        string `json:"link" format:"uri" doc:"Absolute URL of the news article"`
	SourceURL   string `json:"sourceUrl,omitempty"`
}

// ShareRequest asks for a share link
type ShareRequest struct {
	ControlID string          `json:"controlId,omitempty" doc:"Existing share control; omitted allocates a new one"`
	Target    string          `json:"target" enum:"linkedin,twitter,facebook,email" doc:"Share target"`
	Item      NewsItemRequest `json:"item"`
}

// Normalize trims whitespace the client may have sent
func (r *ShareRequest) Normalize() {
	r.ControlID = strings.TrimSpace(r.ControlID)
	r.Target = strings.TrimSpace(r.Target)
	r.Item.Link = strings.TrimSpace(r.Item.Link)
}
