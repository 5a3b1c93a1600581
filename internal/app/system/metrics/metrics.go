// Package metrics exposes Prometheus instruments for catalog loading and the
// dashboard handlers.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	loadCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activitymap",
		Subsystem: "catalog",
		Name:      "loads_total",
		Help:      "Number of catalog loads grouped by source and outcome.",
	}, []string{"source", "outcome"})

	loadDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "activitymap",
		Subsystem: "catalog",
		Name:      "load_duration_seconds",
		Help:      "Time spent fetching and parsing the catalog.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"source"})

	activitiesGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "activitymap",
		Subsystem: "catalog",
		Name:      "activities",
		Help:      "Number of activities in the published catalog.",
	})

	droppedGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "activitymap",
		Subsystem: "catalog",
		Name:      "dropped_lines",
		Help:      "Number of catalog lines dropped by the last successful load.",
	})

	lastLoadGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "activitymap",
		Subsystem: "catalog",
		Name:      "last_load_timestamp_seconds",
		Help:      "Unix timestamp of the most recent successful catalog load.",
	})

	filterCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activitymap",
		Subsystem: "dashboard",
		Name:      "views_total",
		Help:      "Number of dashboard views grouped by endpoint.",
	}, []string{"endpoint"})
)

func init() {
	prometheus.MustRegister(loadCounter, loadDuration, activitiesGauge, droppedGauge, lastLoadGauge, filterCounter)
}

// Outcome labels for RecordLoad.
const (
	OutcomeSuccess  = "success"
	OutcomeFailure  = "failure"
	OutcomeCanceled = "canceled"
)

// RecordLoad records one finished catalog load.
func RecordLoad(source, outcome string, took time.Duration) {
	loadCounter.WithLabelValues(source, outcome).Inc()
	loadDuration.WithLabelValues(source).Observe(took.Seconds())
}

// RecordPublished updates the gauges describing the published catalog.
func RecordPublished(activities, dropped int, at time.Time) {
	activitiesGauge.Set(float64(activities))
	droppedGauge.Set(float64(dropped))
	if !at.IsZero() {
		lastLoadGauge.Set(float64(at.Unix()))
	}
}

// RecordCleared resets the catalog gauges after a failed load.
func RecordCleared() {
	activitiesGauge.Set(0)
	droppedGauge.Set(0)
}

// RecordView counts one dashboard request for endpoint.
func RecordView(endpoint string) {
	filterCounter.WithLabelValues(endpoint).Inc()
}
