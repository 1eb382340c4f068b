package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"kuro-ml/internal/shared/telemetry"
	"kuro-ml/internal/version"
)

const (
	Namespace          = "kuro_ml"
	SubsystemHTTP      = "http"
	SubsystemInference = "inference"
)

var latencyBuckets = []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30}

// Metrics owns a private registry so tests can build as many as they like.
type Metrics struct {
	registry *prometheus.Registry

	buildInfo prometheus.Gauge

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	inferenceCalls    *prometheus.CounterVec
	inferenceDuration *prometheus.HistogramVec
}

func New() *Metrics {
	m := &Metrics{registry: prometheus.NewRegistry()}
	m.registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{Namespace: Namespace}))
	m.registry.MustRegister(collectors.NewGoCollector())

	m.buildInfo = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace:   Namespace,
		Name:        "build_info",
		Help:        "Sidecar build information.",
		ConstLabels: prometheus.Labels{"version": version.Version},
	})
	m.buildInfo.Set(1)

	m.httpRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Subsystem: SubsystemHTTP,
		Name:      "requests_total",
		Help:      "Completed HTTP requests.",
	}, []string{"route", "method", "status"})

	m.httpDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Subsystem: SubsystemHTTP,
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency.",
		Buckets:   latencyBuckets,
	}, []string{"route", "method", "status"})

	m.inferenceCalls = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Subsystem: SubsystemInference,
		Name:      "calls_total",
		Help:      "Inference calls by operation and outcome.",
	}, []string{"op", "outcome"})

	m.inferenceDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Subsystem: SubsystemInference,
		Name:      "duration_seconds",
		Help:      "Inference call latency.",
		Buckets:   latencyBuckets,
	}, []string{"op", "outcome"})

	m.registry.MustRegister(m.buildInfo, m.httpRequests, m.httpDuration, m.inferenceCalls, m.inferenceDuration)
	return m
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveRequest records a completed HTTP request.
func (m *Metrics) ObserveRequest(route, method string, status int, elapsed time.Duration) {
	code := strconv.Itoa(status)
	m.httpRequests.WithLabelValues(route, method, code).Inc()
	m.httpDuration.WithLabelValues(route, method, code).Observe(elapsed.Seconds())
}

// ObserveInference records a completed inference call.
func (m *Metrics) ObserveInference(op, outcome string, elapsed time.Duration) {
	m.inferenceCalls.WithLabelValues(op, outcome).Inc()
	m.inferenceDuration.WithLabelValues(op, outcome).Observe(elapsed.Seconds())
}

type errorLogger struct{}

func (errorLogger) Println(v ...any) {
	telemetry.Warn("metrics.scrape_error", map[string]any{"error": v})
}

// Handler exposes metrics in Prometheus text format.
func (m *Metrics) Handler() gin.HandlerFunc {
	h := promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{ErrorLog: errorLogger{}})
	return gin.WrapH(h)
}
