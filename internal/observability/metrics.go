package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// feed refresh cycle and the dashboard API.
type Metrics struct {
	FetchRequests *prometheus.CounterVec // labels: outcome={success,error}
	FetchDuration prometheus.Histogram

	SnapshotEvents prometheus.Gauge
	SnapshotStale  prometheus.Gauge
	RefreshIgnored prometheus.Counter

	FilterQueries   prometheus.Counter
	EventsPublished prometheus.Counter
	PublishErrors   prometheus.Counter
}

// NewMetrics creates and registers all service metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		FetchRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "quake_dashboard",
			Name:      "fetch_requests_total",
			Help:      "Feed fetch attempts by outcome.",
		}, []string{"outcome"}),
		FetchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "quake_dashboard",
			Name:      "fetch_duration_seconds",
			Help:      "Duration of a complete feed fetch and decode.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		SnapshotEvents: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "quake_dashboard",
			Name:      "snapshot_events",
			Help:      "Number of events in the current snapshot.",
		}),
		SnapshotStale: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "quake_dashboard",
			Name:      "snapshot_stale",
			Help:      "1 when the snapshot is stale after a failed fetch, 0 otherwise.",
		}),
		RefreshIgnored: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "quake_dashboard",
			Name:      "refresh_ignored_total",
			Help:      "Manual refresh requests ignored because one was already pending.",
		}),
		FilterQueries: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "quake_dashboard",
			Name:      "filter_queries_total",
			Help:      "Filtered event list requests served.",
		}),
		EventsPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "quake_dashboard",
			Name:      "events_published_total",
			Help:      "Events published to the snapshot sink topic.",
		}),
		PublishErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "quake_dashboard",
			Name:      "publish_errors_total",
			Help:      "Failed snapshot publish attempts.",
		}),
	}

	prometheus.MustRegister(
		m.FetchRequests,
		m.FetchDuration,
		m.SnapshotEvents,
		m.SnapshotStale,
		m.RefreshIgnored,
		m.FilterQueries,
		m.EventsPublished,
		m.PublishErrors,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		FetchRequests:   prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "quake_dashboard", Name: "fetch_requests_total"}, []string{"outcome"}),
		FetchDuration:   prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "quake_dashboard", Name: "fetch_duration_seconds"}),
		SnapshotEvents:  prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "quake_dashboard", Name: "snapshot_events"}),
		SnapshotStale:   prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "quake_dashboard", Name: "snapshot_stale"}),
		RefreshIgnored:  prometheus.NewCounter(prometheus.CounterOpts{Namespace: "quake_dashboard", Name: "refresh_ignored_total"}),
		FilterQueries:   prometheus.NewCounter(prometheus.CounterOpts{Namespace: "quake_dashboard", Name: "filter_queries_total"}),
		EventsPublished: prometheus.NewCounter(prometheus.CounterOpts{Namespace: "quake_dashboard", Name: "events_published_total"}),
		PublishErrors:   prometheus.NewCounter(prometheus.CounterOpts{Namespace: "quake_dashboard", Name: "publish_errors_total"}),
	}
}
