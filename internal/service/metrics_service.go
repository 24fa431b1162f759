package service

import (
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Transaction outcomes recorded by the coordinator.
const (
	OutcomeCommit   = "commit"
	OutcomeRollback = "rollback"
	OutcomeConflict = "conflict"
	OutcomeFailed   = "failed"
)

// MetricsService encapsulates Prometheus instrumentation.
type MetricsService struct {
	registry         *prometheus.Registry
	handler          http.Handler
	requestDuration  *prometheus.HistogramVec
	requestTotal     *prometheus.CounterVec
	txDuration       *prometheus.HistogramVec
	txTotal          *prometheus.CounterVec
	redemptions      *prometheus.CounterVec
	rateLimited      prometheus.Counter
	eventsDispatched prometheus.Counter
}

// NewMetricsService registers core Prometheus collectors.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	txDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "hours_transaction_duration_seconds",
		Help:    "Duration of workflow transactions",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})

	txTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "hours_transactions_total",
		Help: "Workflow transactions by outcome",
	}, []string{"operation", "outcome"})

	redemptions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "hours_key_redemptions_total",
		Help: "Enrollment key redemption attempts by key type and result code",
	}, []string{"key", "result"})

	rateLimited := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "hours_rate_limited_total",
		Help: "Requests rejected by the rate limiter",
	})

	eventsDispatched := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "hours_events_dispatched_total",
		Help: "Domain events handed to the dispatcher after commit",
	})

	goroutines := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "goroutines_total",
		Help: "Total number of goroutines",
	}, func() float64 {
		return float64(runtime.NumGoroutine())
	})

	registry.MustRegister(requestDuration, requestTotal, txDuration, txTotal, redemptions, rateLimited, eventsDispatched, goroutines)

	return &MetricsService{
		registry:         registry,
		handler:          promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestDuration:  requestDuration,
		requestTotal:     requestTotal,
		txDuration:       txDuration,
		txTotal:          txTotal,
		redemptions:      redemptions,
		rateLimited:      rateLimited,
		eventsDispatched: eventsDispatched,
	}
}

// Registry exposes the underlying registry.
func (m *MetricsService) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler exposes the Prometheus HTTP handler.
func (m *MetricsService) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// ObserveHTTPRequest records request metrics.
func (m *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	labelStatus := fmt.Sprintf("%d", status)
	m.requestDuration.WithLabelValues(method, path, labelStatus).Observe(duration.Seconds())
	m.requestTotal.WithLabelValues(method, path, labelStatus).Inc()
}

// ObserveTransaction records a coordinator scope.
func (m *MetricsService) ObserveTransaction(operation, outcome string, duration time.Duration) {
	if m == nil {
		return
	}
	m.txDuration.WithLabelValues(operation).Observe(duration.Seconds())
	m.txTotal.WithLabelValues(operation, outcome).Inc()
}

// ObserveRedemption records a key redemption attempt. result is "ok" or the
// failure code.
func (m *MetricsService) ObserveRedemption(key, result string) {
	if m == nil {
		return
	}
	m.redemptions.WithLabelValues(key, result).Inc()
}

// ObserveRateLimited counts a rejected request.
func (m *MetricsService) ObserveRateLimited() {
	if m == nil {
		return
	}
	m.rateLimited.Inc()
}

// ObserveEvents counts events handed to the dispatcher.
func (m *MetricsService) ObserveEvents(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.eventsDispatched.Add(float64(n))
}
