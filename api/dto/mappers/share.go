package mappers

import (
	"opportunities-portal-api/api/dto/responses"
	"opportunities-portal-api/core/domain"
	"opportunities-portal-api/core/querycache"
	"opportunities-portal-api/core/share"
)

// ToShareResponse converts a share result
func ToShareResponse(res *share.Result) responses.ShareResponse {
	return responses.ShareResponse{
		ControlID:      res.ControlID,
		Target:         string(res.Link.Target),
		URL:            res.Link.URL,
		Disposition:    string(res.Link.Disposition),
		WindowFeatures: res.Link.WindowFeatures,
		Confirmation:   ToConfirmationResponse(res.Confirmation),
	}
}

// ToConfirmationResponse converts a confirmation
func ToConfirmationResponse(c domain.Confirmation) responses.ConfirmationResponse {
	return responses.ConfirmationResponse{Label: c.Label, ExpiresAt: c.ExpiresAt}
}

// ToQueryStates converts query cache states
func ToQueryStates(states []querycache.State) []responses.QueryStateResponse {
	out := make([]responses.QueryStateResponse, 0, len(states))
	for _, s := range states {
		out = append(out, responses.QueryStateResponse{
			Key:       s.Key,
			Status:    string(s.Status),
			UpdatedAt: timePtr(s.UpdatedAt),
			Error:     s.Error,
			Count:     s.Count,
		})
	}
	return out
}
