package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for simulation runs.
type Metrics struct {
	RunsStarted   prometheus.Counter
	RunsCompleted prometheus.Counter
	StepsTotal    prometheus.Counter
	Ignitions     prometheus.Counter

	StepDuration prometheus.Histogram
	RunDuration  prometheus.Histogram

	BurnedAreaHectares prometheus.Gauge
	FirePerimeterKM    prometheus.Gauge

	PublishErrors prometheus.Counter
}

// NewMetrics creates and registers all simulation metrics with the given registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := newMetrics()
	reg.MustRegister(
		m.RunsStarted,
		m.RunsCompleted,
		m.StepsTotal,
		m.Ignitions,
		m.StepDuration,
		m.RunDuration,
		m.BurnedAreaHectares,
		m.FirePerimeterKM,
		m.PublishErrors,
	)
	return m
}

// NewMetricsForTesting creates unregistered Metrics to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		RunsStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "firesim",
			Name:      "runs_started_total",
			Help:      "Total scenario runs started.",
		}),
		RunsCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "firesim",
			Name:      "runs_completed_total",
			Help:      "Total scenario runs that recorded every requested hour.",
		}),
		StepsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "firesim",
			Name:      "steps_total",
			Help:      "Total grid evolution steps executed.",
		}),
		Ignitions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "firesim",
			Name:      "ignitions_total",
			Help:      "Total cells ignited by spread across all steps.",
		}),
		StepDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "firesim",
			Name:      "step_duration_seconds",
			Help:      "Wall time of one grid evolution step.",
			Buckets:   []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.5},
		}),
		RunDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "firesim",
			Name:      "run_duration_seconds",
			Help:      "Wall time of a complete scenario run.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		BurnedAreaHectares: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "firesim",
			Name:      "burned_area_hectares",
			Help:      "Burned area after the most recent step.",
		}),
		FirePerimeterKM: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "firesim",
			Name:      "fire_perimeter_km",
			Help:      "Fire perimeter after the most recent step.",
		}),
		PublishErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "firesim",
			Name:      "publish_errors_total",
			Help:      "Step records that could not be published.",
		}),
	}
}
