// ABOUTME: Prometheus implementation of the resolution and share metrics
// ABOUTME: Also carries HTTP request metrics recorded by the API middleware

package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Namespace prefixes every metric name
const Namespace = "portal"

// Prometheus records metrics into its own registry
type Prometheus struct {
	registry *prometheus.Registry

	tierServed        *prometheus.CounterVec
	tierFailed        *prometheus.CounterVec
	transportAbsorbed *prometheus.CounterVec
	shareBuilt        *prometheus.CounterVec

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
}

// NewPrometheus creates a registry with the service metrics plus Go and process collectors
func NewPrometheus() *Prometheus {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	factory := promauto.With(reg)
	return &Prometheus{
		registry: reg,
		tierServed: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "content",
			Name:      "resolutions_total",
			Help:      "Listings settled, by content kind and the tier that produced them",
		}, []string{"kind", "tier"}),
		tierFailed: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "content",
			Name:      "tier_failures_total",
			Help:      "Tier attempts that returned an error",
		}, []string{"kind", "tier"}),
		transportAbsorbed: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "rpc",
			Name:      "transport_failures_absorbed_total",
			Help:      "Remote call failures replaced by an empty envelope",
		}, []string{"procedure"}),
		shareBuilt: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "share",
			Name:      "links_built_total",
			Help:      "Share links built, by target",
		}, []string{"target"}),
		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests served",
		}, []string{"method", "route", "status"}),
		httpDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: Namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
}

// TierServed counts a listing settled by tier
func (p *Prometheus) TierServed(kind, tier string) {
	p.tierServed.WithLabelValues(kind, tier).Inc()
}

// TierFailed counts a failing tier attempt
func (p *Prometheus) TierFailed(kind, tier string) {
	p.tierFailed.WithLabelValues(kind, tier).Inc()
}

// TransportAbsorbed counts a guarded transport failure
func (p *Prometheus) TransportAbsorbed(procedure string) {
	p.transportAbsorbed.WithLabelValues(procedure).Inc()
}

// ShareBuilt counts a built share link
func (p *Prometheus) ShareBuilt(target string) {
	p.shareBuilt.WithLabelValues(target).Inc()
}

// ObserveRequest records one served HTTP request
func (p *Prometheus) ObserveRequest(method, route string, status string, elapsed time.Duration) {
	p.httpRequests.WithLabelValues(method, route, status).Inc()
	p.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// Registry exposes the underlying registry
func (p *Prometheus) Registry() *prometheus.Registry {
	return p.registry
}

// Handler serves the exposition format
func (p *Prometheus) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{Registry: p.registry})
}
