package service

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the reconciliation subsystem's Prometheus collectors.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	webhooks        *prometheus.CounterVec
	reconciliations *prometheus.CounterVec
	monitored       prometheus.Gauge
	events          *prometheus.CounterVec
	laggingDropped  prometheus.Counter
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		webhooks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "federation",
			Subsystem: "payments",
			Name:      "webhooks_total",
			Help:      "Provider callbacks received, by URL alias and result.",
		}, []string{"path", "result"}),
		reconciliations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "federation",
			Subsystem: "payments",
			Name:      "reconciliations_total",
			Help:      "Reconciliation attempts, by source and outcome.",
		}, []string{"source", "outcome"}),
		monitored: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "federation",
			Subsystem: "payments",
			Name:      "monitored_cobros",
			Help:      "Cobros currently watched by the polling monitor.",
		}),
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "federation",
			Subsystem: "payments",
			Name:      "state_changes_total",
			Help:      "State change events published, by source and new state.",
		}, []string{"source", "state"}),
		laggingDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "federation",
			Subsystem: "payments",
			Name:      "event_subscribers_dropped_total",
			Help:      "Event feed subscribers closed for lagging behind.",
		}),
	}

	if reg != nil {
		reg.MustRegister(m.webhooks, m.reconciliations, m.monitored, m.events, m.laggingDropped)
	}
	return m
}

// ObserveWebhook counts one provider callback.
func (m *Metrics) ObserveWebhook(path, result string) {
	if m == nil {
		return
	}
	m.webhooks.WithLabelValues(path, result).Inc()
}

func (m *Metrics) observeReconciliation(source, outcome string) {
	if m == nil {
		return
	}
	m.reconciliations.WithLabelValues(source, outcome).Inc()
}

func (m *Metrics) setMonitored(n int) {
	if m == nil {
		return
	}
	m.monitored.Set(float64(n))
}

func (m *Metrics) observeEvent(source, state string) {
	if m == nil {
		return
	}
	m.events.WithLabelValues(source, state).Inc()
}

func (m *Metrics) observeLagging() {
	if m == nil {
		return
	}
	m.laggingDropped.Inc()
}
