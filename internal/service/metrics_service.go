package service

import (
	"net/http"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/danishayman/Timetable-Webapp-sub002/internal/models"
)

// MetricsService encapsulates Prometheus instrumentation for the planner
// engine and provides lightweight snapshots for API consumption.
type MetricsService struct {
	registry          *prometheus.Registry
	handler           http.Handler
	detectionDuration prometheus.Observer
	layoutDuration    prometheus.Observer
	clashesTotal      *prometheus.CounterVec
	buildsTotal       prometheus.Counter

	buildCount             uint64
	clashCount             uint64
	detectionCount         uint64
	detectionDurationTotal uint64
	layoutCount            uint64
	layoutDurationTotal    uint64
}

// NewMetricsService registers the planner Prometheus collectors.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	detectionDuration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "timetable_detection_duration_seconds",
		Help:    "Duration of clash detection passes",
		Buckets: prometheus.DefBuckets,
	})

	layoutDuration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "timetable_layout_duration_seconds",
		Help:    "Duration of grid mapping and lateral layout passes",
		Buckets: prometheus.DefBuckets,
	})

	clashesTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "timetable_clashes_total",
		Help: "Total clashes reported, by type and severity",
	}, []string{"type", "severity"})

	buildsTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "timetable_builds_total",
		Help: "Total timetable build requests processed",
	})

	registry.MustRegister(detectionDuration, layoutDuration, clashesTotal, buildsTotal)

	handler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})

	return &MetricsService{
		registry:          registry,
		handler:           handler,
		detectionDuration: detectionDuration,
		layoutDuration:    layoutDuration,
		clashesTotal:      clashesTotal,
		buildsTotal:       buildsTotal,
	}
}

// Handler exposes the Prometheus HTTP handler for an external collaborator to
// mount; the engine itself owns no routes.
func (m *MetricsService) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// ObserveDetection records one clash detection pass.
func (m *MetricsService) ObserveDetection(duration time.Duration, clashes []models.Clash) {
	if m == nil {
		return
	}
	m.detectionDuration.Observe(duration.Seconds())
	for _, clash := range clashes {
		m.clashesTotal.WithLabelValues(string(clash.Type), string(clash.Severity)).Inc()
	}
	atomic.AddUint64(&m.detectionCount, 1)
	atomic.AddUint64(&m.detectionDurationTotal, uint64(duration.Nanoseconds()))
	atomic.AddUint64(&m.clashCount, uint64(len(clashes)))
}

// ObserveLayout records one mapping/layout pass.
func (m *MetricsService) ObserveLayout(duration time.Duration) {
	if m == nil {
		return
	}
	m.layoutDuration.Observe(duration.Seconds())
	atomic.AddUint64(&m.layoutCount, 1)
	atomic.AddUint64(&m.layoutDurationTotal, uint64(duration.Nanoseconds()))
}

// IncBuild counts a completed build request.
func (m *MetricsService) IncBuild() {
	if m == nil {
		return
	}
	m.buildsTotal.Inc()
	atomic.AddUint64(&m.buildCount, 1)
}

// Snapshot returns aggregated counters for analytics endpoints.
func (m *MetricsService) Snapshot() models.PlannerMetrics {
	if m == nil {
		return models.PlannerMetrics{}
	}
	builds := atomic.LoadUint64(&m.buildCount)
	clashes := atomic.LoadUint64(&m.clashCount)
	detections := atomic.LoadUint64(&m.detectionCount)
	detectionNanos := atomic.LoadUint64(&m.detectionDurationTotal)
	layouts := atomic.LoadUint64(&m.layoutCount)
	layoutNanos := atomic.LoadUint64(&m.layoutDurationTotal)

	var avgDetectionMs float64
	if detections > 0 {
		avgDetectionMs = float64(detectionNanos) / float64(detections) / float64(time.Millisecond)
	}
	var avgLayoutMs float64
	if layouts > 0 {
		avgLayoutMs = float64(layoutNanos) / float64(layouts) / float64(time.Millisecond)
	}

	return models.PlannerMetrics{
		BuildsTotal:              builds,
		ClashesTotal:             clashes,
		AverageDetectionDuration: avgDetectionMs,
		AverageLayoutDuration:    avgLayoutMs,
		GeneratedAt:              time.Now().UTC(),
	}
}
