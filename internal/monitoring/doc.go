/*
Package monitoring provides Prometheus metrics for generation and analysis runs.

# Overview

Metrics register on a caller-supplied prometheus.Registerer so that tests and
repeated runs never collide on the global default registry.

# Features

- Streams and events generated
- Generation and analysis duration
- Last aggregate value per measure
- NaN results per measure

# Usage

	reg := prometheus.NewRegistry()
	metrics := monitoring.NewMetrics(reg)

	timer := monitoring.StartTimer()
	lv := analysis.LV(stream)
	metrics.RecordMeasure("lv", analysis.Summarize(lv, 1).Mean, 0, timer.Elapsed())

# Metrics Endpoint

Expose the registry through promhttp when running behind a scraper:

	http.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
*/
package monitoring
