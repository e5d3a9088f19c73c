package interfaces

// Metrics receives resolution and share outcomes.
// The Prometheus implementation lives in infrastructure/metrics.
type Metrics interface {
	// TierServed counts a listing settled by the named tier
	TierServed(kind, tier string)

	// TierFailed counts a tier attempt that returned an error
	TierFailed(kind, tier string)

	// TransportAbsorbed counts a transport failure swallowed by the guard
	TransportAbsorbed(procedure string)

	// ShareBuilt counts a share link emitted for a target
	ShareBuilt(target string)
}

// NopMetrics discards everything
type NopMetrics struct{}

func (NopMetrics) TierServed(kind, tier string)       {}
func (NopMetrics) TierFailed(kind, tier string)       {}
func (NopMetrics) TransportAbsorbed(procedure string) {}
func (NopMetrics) ShareBuilt(target string)           {}
