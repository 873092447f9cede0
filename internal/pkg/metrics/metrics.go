// Package metrics exposes interface bring-up and lease maintenance as Prometheus metrics.
package metrics

import (
	"net/http"

	"golang-ethernetd/internal/port"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "ethernetd"

// Metrics is the set of daemon metrics. A nil *Metrics records nothing.
type Metrics struct {
	registry *prometheus.Registry

	LeaseChecks *prometheus.CounterVec
	BringUps    *prometheus.CounterVec
	Configured  *prometheus.GaugeVec
	LinkUp      *prometheus.GaugeVec
}

// NewMetrics creates the metrics and registers them in registry.
func NewMetrics(registry *prometheus.Registry) *Metrics {
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		LeaseChecks: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "dhcp",
			Name:      "lease_checks_total",
			Help:      "Lease maintenance outcomes other than none",
		}, []string{"interface", "outcome"}),
		BringUps: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bring_ups_total",
			Help:      "Interface bring-up attempts",
		}, []string{"interface", "mode", "result"}),
		Configured: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "interface_configured",
			Help:      "Whether the interface currently holds an address set",
		}, []string{"interface"}),
		LinkUp: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "link_up",
			Help:      "Whether the Ethernet link is up",
		}, []string{"interface"}),
	}
}

// ObserveLeaseCheck counts a Maintain outcome. LeaseCheckNone is not counted.
func (m *Metrics) ObserveLeaseCheck(iface string, rc port.LeaseCheck) {
	if m == nil || rc == port.LeaseCheckNone {
		return
	}
	m.LeaseChecks.WithLabelValues(iface, rc.String()).Inc()
}

// ObserveBringUp counts a bring-up attempt and updates the configured gauge.
func (m *Metrics) ObserveBringUp(iface, mode string, ok bool) {
	if m == nil {
		return
	}
	result := "failure"
	if ok {
		result = "success"
	}
	m.BringUps.WithLabelValues(iface, mode, result).Inc()
	m.Configured.WithLabelValues(iface).Set(boolToFloat(ok))
}

// SetLinkUp records the link state of iface.
func (m *Metrics) SetLinkUp(iface string, up bool) {
	if m == nil {
		return
	}
	m.LinkUp.WithLabelValues(iface).Set(boolToFloat(up))
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
