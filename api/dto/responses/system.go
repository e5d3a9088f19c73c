// ABOUTME: Response DTOs for auth and health endpoints

package responses

import "time"

// LoginURLResponse carries the computed login location
type LoginURLResponse struct {
	Location string `json:"location" doc:"Login location; \"/\" when login is not configured"`
}

// QueryStateResponse reports the last outcome of one cached query
type QueryStateResponse struct {
	Key       string     `json:"key"`
	Status    string     `json:"status" enum:"idle,success,error"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
	Error     string     `json:"error,omitempty"`
	Count     int        `json:"count"`
}

// HealthResponse reports liveness
type HealthResponse struct {
	Status  string               `json:"status"`
	Queries []QueryStateResponse `json:"queries"`
	Flags   map[string]bool      `json:"flags,omitempty"`
}
