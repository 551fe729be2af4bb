package metrics

import "github.com/prometheus/client_golang/prometheus"

const namespace = "barberflow"

// Metrics exposes counters and histograms for the booking console. Every
// method is safe on a nil receiver so tests can pass nil.
type Metrics struct {
	upstreamTotal     *prometheus.CounterVec
	upstreamLatency   *prometheus.HistogramVec
	calendarEdits     *prometheus.CounterVec
	staleResponses    *prometheus.CounterVec
	wizardTransitions *prometheus.CounterVec
	wizardSubmissions *prometheus.CounterVec
	activeSessions    *prometheus.GaugeVec
	cacheLookups      *prometheus.CounterVec
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		upstreamTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "upstream",
			Name:      "requests_total",
			Help:      "Booking API requests by endpoint and outcome",
		}, []string{"endpoint", "outcome"}),
		upstreamLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "upstream",
			Name:      "request_duration_seconds",
			Help:      "Latency of booking API requests",
			Buckets:   prometheus.DefBuckets,
		}, []string{"endpoint"}),
		calendarEdits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "calendar",
			Name:      "edits_total",
			Help:      "Optimistic calendar edits by kind and final state",
		}, []string{"kind", "state"}),
		staleResponses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "session",
			Name:      "stale_responses_total",
			Help:      "Fetch results discarded because a newer request superseded them",
		}, []string{"resource"}),
		wizardTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "wizard",
			Name:      "step_entered_total",
			Help:      "Wizard steps entered",
		}, []string{"step"}),
		wizardSubmissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "wizard",
			Name:      "submissions_total",
			Help:      "Booking submissions by outcome",
		}, []string{"outcome"}),
		activeSessions: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "session",
			Name:      "active",
			Help:      "Live sessions by kind",
		}, []string{"kind"}),
		cacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "catalog_cache",
			Name:      "lookups_total",
			Help:      "Catalog cache lookups by result",
		}, []string{"result"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(
		m.upstreamTotal,
		m.upstreamLatency,
		m.calendarEdits,
		m.staleResponses,
		m.wizardTransitions,
		m.wizardSubmissions,
		m.activeSessions,
		m.cacheLookups,
	)
	return m
}

func (m *Metrics) ObserveUpstream(endpoint, outcome string, seconds float64) {
	if m == nil {
		return
	}
	m.upstreamTotal.WithLabelValues(endpoint, outcome).Inc()
	m.upstreamLatency.WithLabelValues(endpoint).Observe(seconds)
}

func (m *Metrics) ObserveEdit(kind, state string) {
	if m == nil {
		return
	}
	m.calendarEdits.WithLabelValues(kind, state).Inc()
}

func (m *Metrics) ObserveStale(resource string) {
	if m == nil {
		return
	}
	m.staleResponses.WithLabelValues(resource).Inc()
}

func (m *Metrics) ObserveStep(step string) {
	if m == nil {
		return
	}
	m.wizardTransitions.WithLabelValues(step).Inc()
}

func (m *Metrics) ObserveSubmission(outcome string) {
	if m == nil {
		return
	}
	m.wizardSubmissions.WithLabelValues(outcome).Inc()
}

func (m *Metrics) SetActiveSessions(kind string, n int) {
	if m == nil {
		return
	}
	m.activeSessions.WithLabelValues(kind).Set(float64(n))
}

func (m *Metrics) ObserveCache(hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.cacheLookups.WithLabelValues(result).Inc()
}
