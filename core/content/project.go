package content

import "opportunities-portal-api/core/domain"

// MaxOpenCalls is how many open calls a page shows
const MaxOpenCalls = 5

// Project keeps open calls whose status is exactly domain.OpenStatus, in source
// order, and truncates to MaxOpenCalls. The input is not modified.
func Project(records []domain.OpenCall) []domain.OpenCall {
	projected := make([]domain.OpenCall, 0, MaxOpenCalls)
	for _, r := range records {
		if len(projected) == MaxOpenCalls {
			break
		}
		if r.IsOpen() {
			projected = append(projected, r)
		}
	}
	return projected
}

// ProjectEnvelope applies Project to a settled envelope; pending envelopes are returned as is
func ProjectEnvelope(env domain.Envelope[domain.OpenCall]) domain.Envelope[domain.OpenCall] {
	if !env.Exhausted {
		return env
	}
	env.Data = Project(env.Data)
	return env
}
