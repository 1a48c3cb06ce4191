// Package metrics provides Prometheus metrics for the geochron animation engine.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the engine.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	registry         prometheus.Registerer

	// Orchestrator metrics
	authorsLoaded   prometheus.Counter
	authorCacheHits prometheus.Counter
	routesDropped   prometheus.Counter

	// Timeline metrics
	timelinesBuilt        prometheus.Counter
	timelineEvents        prometheus.Counter
	timelineBuildDuration prometheus.Histogram

	// Animation metrics
	featureRegistrations   prometheus.Counter
	duplicateRegistrations prometheus.Counter
	registeredFeatures     prometheus.Gauge
	clockPosition          prometheus.Gauge

	// Playback metrics
	seeks prometheus.Counter

	// Camera metrics
	flyToStarted    prometheus.Counter
	flyToSuperseded prometheus.Counter
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "geochron",
		subsystem:        "engine",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.authorsLoaded = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "authors_loaded_total",
		Help:      "Total number of author payloads loaded and normalized",
	})

	m.authorCacheHits = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "author_cache_hits_total",
		Help:      "Total number of author loads served from the cache",
	})

	m.routesDropped = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "routes_dropped_total",
		Help:      "Total number of routes dropped during validation",
	})

	m.timelinesBuilt = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "timelines_built_total",
		Help:      "Total number of timelines built",
	})

	m.timelineEvents = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "timeline_events_total",
		Help:      "Total number of timeline events emitted",
	})

	m.timelineBuildDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "timeline_build_duration_seconds",
		Help:      "Wall time spent building a timeline",
		Buckets:   m.histogramBuckets,
	})

	m.featureRegistrations = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "feature_registrations_total",
		Help:      "Total number of animation feature registrations",
	})

	m.duplicateRegistrations = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "feature_duplicate_registrations_total",
		Help:      "Total number of duplicate feature registrations (last write wins)",
	})

	m.registeredFeatures = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "registered_features",
		Help:      "Current number of registered animation features",
	})

	m.clockPosition = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "clock_position_seconds",
		Help:      "Current animation clock position from timeline origin",
	})

	m.seeks = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "playback_seeks_total",
		Help:      "Total number of playback seek operations",
	})

	m.flyToStarted = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "camera_flyto_started_total",
		Help:      "Total number of camera fly-to transitions started",
	})

	m.flyToSuperseded = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "camera_flyto_superseded_total",
		Help:      "Total number of fly-to transitions replaced before completion",
	})
}

// Registry returns the registry backing the global manager, for scraping or testing.
func Registry() *prometheus.Registry { return customRegistry }

// Package-level recording helpers, delegating to the global manager.

func RecordAuthorLoaded() {
	if globalManager.enabled {
		globalManager.authorsLoaded.Inc()
	}
}

func RecordAuthorCacheHit() {
	if globalManager.enabled {
		globalManager.authorCacheHits.Inc()
	}
}

func RecordRouteDropped() {
	if globalManager.enabled {
		globalManager.routesDropped.Inc()
	}
}

func RecordTimelineBuilt(events int, elapsed time.Duration) {
	if globalManager.enabled {
		globalManager.timelinesBuilt.Inc()
		globalManager.timelineEvents.Add(float64(events))
		globalManager.timelineBuildDuration.Observe(elapsed.Seconds())
	}
}

func RecordFeatureRegistered() {
	if globalManager.enabled {
		globalManager.featureRegistrations.Inc()
	}
}

func RecordDuplicateRegistration() {
	if globalManager.enabled {
		globalManager.duplicateRegistrations.Inc()
	}
}

func UpdateRegisteredFeatures(count int) {
	if globalManager.enabled {
		globalManager.registeredFeatures.Set(float64(count))
	}
}

func UpdateClockPosition(position time.Duration) {
	if globalManager.enabled {
		globalManager.clockPosition.Set(position.Seconds())
	}
}

func RecordSeek() {
	if globalManager.enabled {
		globalManager.seeks.Inc()
	}
}

func RecordFlyToStarted() {
	if globalManager.enabled {
		globalManager.flyToStarted.Inc()
	}
}

func RecordFlyToSuperseded() {
	if globalManager.enabled {
		globalManager.flyToSuperseded.Inc()
	}
}
