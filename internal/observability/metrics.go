package observability

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds the Prometheus collectors for the ingestion pipeline.
type Metrics struct {
	UploadsTotal    *prometheus.CounterVec
	FeaturesCreated *prometheus.CounterVec
	FeaturesSkipped *prometheus.CounterVec
	FeatureErrors   *prometheus.CounterVec
	IngestDuration  prometheus.Histogram
}

// NewMetrics builds the collectors and registers them with the default
// registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.UploadsTotal,
		m.FeaturesCreated,
		m.FeaturesSkipped,
		m.FeatureErrors,
		m.IngestDuration,
	)
	return m
}

// NewMetricsForTesting builds unregistered collectors so tests can run in
// parallel without duplicate registration panics.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		UploadsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hazard_maps",
			Name:      "uploads_total",
			Help:      "Shapefile uploads by dataset type and outcome.",
		}, []string{"dataset_type", "outcome"}),
		FeaturesCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hazard_maps",
			Name:      "features_created_total",
			Help:      "Susceptibility features persisted.",
		}, []string{"dataset_type"}),
		FeaturesSkipped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hazard_maps",
			Name:      "features_skipped_total",
			Help:      "Features skipped because they carry no geometry.",
		}, []string{"dataset_type"}),
		FeatureErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hazard_maps",
			Name:      "feature_errors_total",
			Help:      "Features that failed mid-run and were skipped.",
		}, []string{"dataset_type"}),
		IngestDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "hazard_maps",
			Name:      "ingest_duration_seconds",
			Help:      "Duration of a full extract and ingest cycle.",
			Buckets:   []float64{0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30, 60},
		}),
	}
}
