package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"bakery/internal/pkg/metrics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Handler(t *testing.T) {
	// Given
	m := metrics.New()
	m.EventRelayed("PaymentMarkedPaid")
	m.OffersCreated(2)
	m.EventHandled("dispatch", "PackageDroppedByBaker", metrics.OutcomeOK, 0.01)

	// When
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	// Then
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `bakery_outbox_events_relayed_total{event_type="PaymentMarkedPaid"} 1`)
	assert.Contains(t, body, "bakery_dispatch_offers_created_total 2")
	assert.Contains(t, body, `bakery_policy_events_handled_total{event_type="PackageDroppedByBaker",outcome="ok",policy="dispatch"} 1`)
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *metrics.Metrics

	assert.NotPanics(t, func() {
		m.EventRelayed("x")
		m.RelayBatch(3)
		m.OffersCreated(1)
		m.Notification("courier.offer", metrics.OutcomeFailed)
		m.PaymentResult(true)
	})
}
