package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "turbo"

// Metrics holds the Prometheus collectors for wind lookups.
type Metrics struct {
	CacheLookups        *prometheus.CounterVec   // labels: result={hit,miss,error}
	ProviderRequests    *prometheus.CounterVec   // labels: outcome={success,unavailable,malformed}
	ProviderDuration    prometheus.Histogram     // seconds
	PersistenceFailures *prometheus.CounterVec   // labels: entity={wind_data,profitability_score}
	Assessments         *prometheus.CounterVec   // labels: grade
	PublishFailures     prometheus.Counter       //
	TerritorySamples    *prometheus.CounterVec   // labels: outcome={sampled,skipped,failed}
	RequestDuration     *prometheus.HistogramVec // labels: source={cache,provider}
}

func newMetrics() *Metrics {
	return &Metrics{
		CacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "wind_cache_lookups_total",
			Help:      "Wind data cache lookups by result.",
		}, []string{"result"}),
		ProviderRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "weather_provider_requests_total",
			Help:      "Weather provider calls by outcome.",
		}, []string{"outcome"}),
		ProviderDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "weather_provider_duration_seconds",
			Help:      "Weather provider call duration in seconds.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		PersistenceFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "persistence_failures_total",
			Help:      "Store writes that failed, by entity.",
		}, []string{"entity"}),
		Assessments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "assessments_total",
			Help:      "Profitability assessments computed, by grade.",
		}, []string{"grade"}),
		PublishFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "assessment_publish_failures_total",
			Help:      "Assessment events that could not be published.",
		}),
		TerritorySamples: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "territory_samples_total",
			Help:      "Scheduled territory samples by outcome.",
		}, []string{"outcome"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "wind_lookup_duration_seconds",
			Help:      "End to end wind lookup duration by source.",
			Buckets:   []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10},
		}, []string{"source"}),
	}
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := newMetrics()
	reg.MustRegister(
		m.CacheLookups,
		m.ProviderRequests,
		m.ProviderDuration,
		m.PersistenceFailures,
		m.Assessments,
		m.PublishFailures,
		m.TerritorySamples,
		m.RequestDuration,
	)
	return m
}

// NewMetricsForTesting creates unregistered collectors so tests can build many instances.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}
