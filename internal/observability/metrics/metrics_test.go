package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestResponderMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewResponderMetrics(reg)

	m.ObserveResponse("customer_service", true)
	m.ObserveResponse("internal_analysis", false)
	m.ObserveLLMRequest("ok", 0.25)
	m.ObserveCleanup(3)
	m.ObserveFeedback("5")
	m.ObserveArchive(2, false)
	m.ObserveArchive(0, true)

	if got := testutil.ToFloat64(m.responsesTotal.WithLabelValues("customer_service", "true")); got != 1 {
		t.Errorf("responses_total = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.cleanupRemoved); got != 3 {
		t.Errorf("cleanup_removed_total = %v, want 3", got)
	}
	if got := testutil.ToFloat64(m.archivedTotal); got != 2 {
		t.Errorf("archived_conversations_total = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.archiveFailures); got != 1 {
		t.Errorf("archive_failures_total = %v, want 1", got)
	}
}

func TestResponderMetrics_NilReceiverSafe(t *testing.T) {
	var m *ResponderMetrics

	m.ObserveResponse("customer_service", true)
	m.ObserveLLMRequest("error", 0)
	m.ObserveCleanup(1)
	m.ObserveFeedback("1")
	m.ObserveArchive(1, false)
}
