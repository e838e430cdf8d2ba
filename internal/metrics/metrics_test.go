package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"print4me/internal/domain"
	"print4me/internal/metrics"
)

func TestMetrics_RecordsPipelineEvents(t *testing.T) {
	m := metrics.New()

	m.ObservePageCount(domain.KindPDF, 12)
	m.ObservePageCount(domain.KindPDF, 0)
	m.OrderAccepted(12)
	m.OrderRejected("validation")
	m.DispatchStarted()
	m.DispatchFinished(metrics.OutcomeSent, 150*time.Millisecond)

	count, err := testutil.GatherAndCount(m.Registry(),
		"print4me_pagecount_detections_total",
		"print4me_orders_accepted_total",
		"print4me_orders_rejected_total",
		"print4me_notify_dispatches_total",
	)
	require.NoError(t, err)
	assert.Equal(t, 5, count)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body, _ := io.ReadAll(rec.Body)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(body), `print4me_pagecount_detections_total{kind="pdf",result="undetermined"} 1`)
	assert.Contains(t, string(body), "print4me_orders_pages_billed_total 12")
	assert.Contains(t, string(body), "print4me_notify_dispatches_in_flight 0")
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *metrics.Metrics

	assert.NotPanics(t, func() {
		m.ObservePageCount(domain.KindOther, 1)
		m.OrderAccepted(1)
		m.OrderRejected("validation")
		m.DispatchStarted()
		m.DispatchFinished(metrics.OutcomeFailed, time.Second)
	})
}
