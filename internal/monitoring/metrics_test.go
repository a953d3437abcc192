package monitoring

import (
	"math"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordStream(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	m.RecordStream(120, time.Millisecond)
	m.RecordStream(80, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.StreamsTotal))
	assert.Equal(t, 200.0, testutil.ToFloat64(m.EventsTotal))
}

func TestRecordMeasure(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	m.RecordMeasure("lv", 0.98, 2, time.Microsecond)
	// An undefined mean keeps the last defined one.
	m.RecordMeasure("lv", math.NaN(), 1, time.Microsecond)

	assert.Equal(t, 0.98, testutil.ToFloat64(m.MeasureMean.WithLabelValues("lv")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.MeasureNaNs.WithLabelValues("lv")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.AnalysisDuration))
}

func TestSeparateRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		NewMetrics(prometheus.NewRegistry())
		NewMetrics(prometheus.NewRegistry())
	})
}

func TestTimer(t *testing.T) {
	timer := StartTimer()
	assert.GreaterOrEqual(t, timer.Elapsed(), time.Duration(0))
}
