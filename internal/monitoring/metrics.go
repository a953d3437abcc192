package monitoring

import (
	gomath "math"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Generator metrics
	StreamsTotal       prometheus.Counter
	EventsTotal        prometheus.Counter
	GenerationDuration prometheus.Histogram

	// Analysis metrics
	AnalysisDuration *prometheus.HistogramVec
	MeasureMean      *prometheus.GaugeVec
	MeasureNaNs      *prometheus.CounterVec
}

var durationBuckets = []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1, 5}

// NewMetrics creates a new metrics collector registered on reg
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		StreamsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "pointproc_streams_generated_total",
				Help: "Total number of event streams generated",
			},
		),
		EventsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "pointproc_events_generated_total",
				Help: "Total number of events in generated streams",
			},
		),
		GenerationDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "pointproc_generation_duration_seconds",
				Help:    "Stream generation duration in seconds",
				Buckets: durationBuckets,
			},
		),
		AnalysisDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "pointproc_analysis_duration_seconds",
				Help:    "Measure computation duration in seconds",
				Buckets: durationBuckets,
			},
			[]string{"measure"},
		),
		MeasureMean: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "pointproc_measure_mean",
				Help: "Mean of the last computed measure across processes",
			},
			[]string{"measure"},
		),
		MeasureNaNs: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pointproc_measure_nan_total",
				Help: "Total number of processes a measure was undefined for",
			},
			[]string{"measure"},
		),
	}
}

// RecordStream records a generated stream
func (m *Metrics) RecordStream(events int, duration time.Duration) {
	m.StreamsTotal.Inc()
	m.EventsTotal.Add(float64(events))
	m.GenerationDuration.Observe(duration.Seconds())
}

// RecordMeasure records the outcome of one measure over a stream
func (m *Metrics) RecordMeasure(measure string, mean float64, nans int, duration time.Duration) {
	m.AnalysisDuration.WithLabelValues(measure).Observe(duration.Seconds())
	if !gomath.IsNaN(mean) {
		m.MeasureMean.WithLabelValues(measure).Set(mean)
	}
	m.MeasureNaNs.WithLabelValues(measure).Add(float64(nans))
}
