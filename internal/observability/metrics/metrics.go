package metrics

import "github.com/prometheus/client_golang/prometheus"

// ResponderMetrics exposes counters/histograms for the response pipeline.
type ResponderMetrics struct {
	responsesTotal  *prometheus.CounterVec
	llmRequests     *prometheus.CounterVec
	llmLatency      prometheus.Histogram
	cleanupRemoved  prometheus.Counter
	feedbackTotal   *prometheus.CounterVec
	archivedTotal   prometheus.Counter
	archiveFailures prometheus.Counter
}

func NewResponderMetrics(reg prometheus.Registerer) *ResponderMetrics {
	m := &ResponderMetrics{
		responsesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "swc",
			Subsystem: "responder",
			Name:      "responses_total",
			Help:      "Total response requests by recommendation outcome",
		}, []string{"response_type", "should_respond"}),
		llmRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "swc",
			Subsystem: "responder",
			Name:      "llm_requests_total",
			Help:      "Total LLM completion attempts",
		}, []string{"status"}),
		llmLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "swc",
			Subsystem: "responder",
			Name:      "llm_latency_seconds",
			Help:      "Latency of LLM completions",
			Buckets:   prometheus.DefBuckets,
		}),
		cleanupRemoved: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "swc",
			Subsystem: "responder",
			Name:      "cleanup_removed_total",
			Help:      "Conversations removed by retention sweeps",
		}),
		feedbackTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "swc",
			Subsystem: "responder",
			Name:      "feedback_total",
			Help:      "Feedback submissions by rating",
		}, []string{"rating"}),
		archivedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "swc",
			Subsystem: "responder",
			Name:      "archived_conversations_total",
			Help:      "Conversations archived to object storage",
		}),
		archiveFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "swc",
			Subsystem: "responder",
			Name:      "archive_failures_total",
			Help:      "Failed archive uploads",
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(
		m.responsesTotal,
		m.llmRequests,
		m.llmLatency,
		m.cleanupRemoved,
		m.feedbackTotal,
		m.archivedTotal,
		m.archiveFailures,
	)
	return m
}

func (m *ResponderMetrics) ObserveResponse(responseType string, shouldRespond bool) {
	if m == nil {
		return
	}
	label := "false"
	if shouldRespond {
		label = "true"
	}
	m.responsesTotal.WithLabelValues(responseType, label).Inc()
}

func (m *ResponderMetrics) ObserveLLMRequest(status string, seconds float64) {
	if m == nil {
		return
	}
	m.llmRequests.WithLabelValues(status).Inc()
	m.llmLatency.Observe(seconds)
}

func (m *ResponderMetrics) ObserveCleanup(removed int) {
	if m == nil {
		return
	}
	m.cleanupRemoved.Add(float64(removed))
}

func (m *ResponderMetrics) ObserveFeedback(rating string) {
	if m == nil {
		return
	}
	m.feedbackTotal.WithLabelValues(rating).Inc()
}

func (m *ResponderMetrics) ObserveArchive(count int, failed bool) {
	if m == nil {
		return
	}
	if failed {
		m.archiveFailures.Inc()
		return
	}
	m.archivedTotal.Add(float64(count))
}
