// Package metrics exposes Prometheus instruments for scoring runs.
package metrics

import (
	"fmt"
	"time"

	"github.com/jonathan/jd-matcher/internal/types"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "jd_matcher"

// Metrics groups the scoring instruments registered on one registry.
type Metrics struct {
	gatherer prometheus.Gatherer

	Verdicts         *prometheus.CounterVec
	ScoringDuration  prometheus.Histogram
	Verifications    prometheus.Counter
	CandidatesActive prometheus.Gauge
}

// New registers the instruments on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	return NewWithRegistry(reg, reg)
}

// NewWithRegistry registers the instruments on reg and gathers from g.
func NewWithRegistry(reg prometheus.Registerer, g prometheus.Gatherer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		gatherer: g,
		Verdicts: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "verdicts_total",
				Help:      "Total number of match verdicts by status and level",
			},
			[]string{"status", "level"},
		),
		ScoringDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "scoring_duration_seconds",
				Help:      "Duration of scoring one CV against a JD in seconds",
				Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
			},
		),
		Verifications: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "institution_verifications_total",
				Help:      "Total number of candidates whose institutions need manual verification",
			},
		),
		CandidatesActive: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "candidates_active",
				Help:      "Number of candidates currently being scored",
			},
		),
	}
}

// ObserveVerdict records one verdict and how long it took.
func (m *Metrics) ObserveVerdict(v types.MatchVerdict, elapsed time.Duration) {
	m.Verdicts.WithLabelValues(string(v.Status), string(v.Level)).Inc()
	m.ScoringDuration.Observe(elapsed.Seconds())
}

// ObserveInstitutions records an institution evaluation.
func (m *Metrics) ObserveInstitutions(eval *types.InstitutionEvaluation) {
	if eval != nil && eval.VerificationNeeded {
		m.Verifications.Inc()
	}
}

// WriteTextfile writes every gathered metric to path in the text exposition
// format, for node_exporter's textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.gatherer); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %w", path, err)
	}
	return nil
}
