package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Manager owns every metric of the service on its own registry.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         *prometheus.Registry

	// Domain
	evaluationsCreated   prometheus.Counter
	evaluationsSubmitted prometheus.Counter
	reviewersAssigned    prometheus.Counter
	answersRecorded      prometheus.Counter
	versionConflicts     *prometheus.CounterVec
	notifications        *prometheus.CounterVec

	// HTTP
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "evaluation",
		subsystem:        "service",
		histogramBuckets: prometheus.DefBuckets,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.registry == nil {
		m.registry = prometheus.NewRegistry()
	}

	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.evaluationsCreated = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "evaluations_created_total",
		Help:      "Total number of evaluations created",
	})

	m.evaluationsSubmitted = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "evaluations_submitted_total",
		Help:      "Total number of evaluation submissions",
	})

	m.reviewersAssigned = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "reviewers_assigned_total",
		Help:      "Total number of reviewer slots written by assignments",
	})

	m.answersRecorded = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "answers_recorded_total",
		Help:      "Total number of answers stored",
	})

	m.versionConflicts = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "version_conflicts_total",
			Help:      "Optimistic concurrency conflicts by operation",
		},
		[]string{"operation"},
	)

	m.notifications = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "notifications_total",
			Help:      "Reviewer notifications by outcome",
		},
		[]string{"outcome"},
	)

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by route and method",
		},
		[]string{"route", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"route", "method", "status_code"},
	)
}

func (m *Manager) EvaluationCreated() {
	m.evaluationsCreated.Inc()
}

func (m *Manager) EvaluationSubmitted() {
	m.evaluationsSubmitted.Inc()
}

func (m *Manager) ReviewersAssigned(n int) {
	m.reviewersAssigned.Add(float64(n))
}

func (m *Manager) AnswersRecorded(n int) {
	m.answersRecorded.Add(float64(n))
}

func (m *Manager) VersionConflict(operation string) {
	m.versionConflicts.WithLabelValues(operation).Inc()
}

func (m *Manager) NotificationSent() {
	m.notifications.WithLabelValues("sent").Inc()
}

func (m *Manager) NotificationFailed() {
	m.notifications.WithLabelValues("failed").Inc()
}

func (m *Manager) ObserveHTTPRequest(route, method string, status int, duration time.Duration) {
	code := strconv.Itoa(status)
	m.httpRequests.WithLabelValues(route, method, code).Inc()
	m.httpRequestDuration.WithLabelValues(route, method, code).Observe(duration.Seconds())
}

// Handler serves the registry in the Prometheus text format.
func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
