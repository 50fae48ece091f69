package criteria

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts what a session evaluated
type Metrics struct {
	// Labels: kind, result (match, miss, skipped)
	Evaluations *prometheus.CounterVec
	// Labels: result (hit, miss)
	ContextLookups *prometheus.CounterVec
}

// NewMetrics creates the session counters and registers them with reg. A nil
// reg leaves them unregistered, which is what tests and one-shot runs want.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Evaluations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sigfind",
			Subsystem: "criteria",
			Name:      "evaluations_total",
			Help:      "Criterion evaluations by kind and result",
		}, []string{"kind", "result"}),
		ContextLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sigfind",
			Subsystem: "resolve",
			Name:      "context_lookups_total",
			Help:      "Resolution context cache lookups by result",
		}, []string{"result"}),
	}
	if reg != nil {
		reg.MustRegister(m.Evaluations, m.ContextLookups)
	}
	return m
}

func (m *Metrics) recordEvaluation(kind Kind, result string) {
	m.Evaluations.WithLabelValues(string(kind), result).Inc()
}

func (m *Metrics) recordLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	m.ContextLookups.WithLabelValues(result).Inc()
}
