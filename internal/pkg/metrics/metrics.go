// Package metrics exposes the prometheus collectors of the service.
//
// A nil *Metrics is valid and records nothing, so components can be built
// without metrics in tests.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "bakery"

const (
	OutcomeOK      = "ok"
	OutcomeSkipped = "skipped"
	OutcomeFailed  = "failed"
)

type Metrics struct {
	gatherer prometheus.Gatherer

	eventsRelayed  *prometheus.CounterVec
	relayBatchSize prometheus.Histogram
	eventsHandled  *prometheus.CounterVec
	handleDuration *prometheus.HistogramVec
	offersCreated  prometheus.Counter
	notifications  *prometheus.CounterVec
	payments       *prometheus.CounterVec
}

// New registers the collectors on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	return NewWithRegistry(reg, reg)
}

func NewWithRegistry(reg prometheus.Registerer, gatherer prometheus.Gatherer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		gatherer: gatherer,
		eventsRelayed: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "outbox",
			Name:      "events_relayed_total",
			Help:      "Stored events handed to the event transport.",
		}, []string{"event_type"}),
		relayBatchSize: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "outbox",
			Name:      "relay_batch_size",
			Help:      "Events fetched per relay run.",
			Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 250},
		}),
		eventsHandled: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "policy",
			Name:      "events_handled_total",
			Help:      "Events handled by policies, by outcome.",
		}, []string{"policy", "event_type", "outcome"}),
		handleDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "policy",
			Name:      "handle_duration_seconds",
			Help:      "Time spent handling one event.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"policy"}),
		offersCreated: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "dispatch",
			Name:      "offers_created_total",
			Help:      "Delivery offers created for nearby couriers.",
		}),
		notifications: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "notifier",
			Name:      "notifications_total",
			Help:      "Notifications sent, by kind and outcome.",
		}, []string{"kind", "outcome"}),
		payments: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "payment",
			Name:      "gateway_results_total",
			Help:      "Payment gateway answers.",
		}, []string{"result"}),
	}
}

func (m *Metrics) EventRelayed(eventType string) {
	if m == nil {
		return
	}
	m.eventsRelayed.WithLabelValues(eventType).Inc()
}

func (m *Metrics) RelayBatch(size int) {
	if m == nil {
		return
	}
	m.relayBatchSize.Observe(float64(size))
}

func (m *Metrics) EventHandled(policy, eventType, outcome string, seconds float64) {
	if m == nil {
		return
	}
	m.eventsHandled.WithLabelValues(policy, eventType, outcome).Inc()
	m.handleDuration.WithLabelValues(policy).Observe(seconds)
}

func (m *Metrics) OffersCreated(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.offersCreated.Add(float64(n))
}

func (m *Metrics) Notification(kind, outcome string) {
	if m == nil {
		return
	}
	m.notifications.WithLabelValues(kind, outcome).Inc()
}

func (m *Metrics) PaymentResult(success bool) {
	if m == nil {
		return
	}
	result := "declined"
	if success {
		result = "approved"
	}
	m.payments.WithLabelValues(result).Inc()
}

// Handler serves the registry in the prometheus text format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
