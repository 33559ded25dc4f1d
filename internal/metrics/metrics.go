package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors for the application.
//
// Metrics:
//   - philologic_http_requests_total{method,route,status}
//   - philologic_http_request_duration_seconds{method,route}
//   - philologic_inference_requests_total{operation,outcome}
//   - philologic_inference_duration_seconds{operation}
//   - philologic_flashcards_created_total
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	InferenceRequestsTotal *prometheus.CounterVec
	InferenceDuration      *prometheus.HistogramVec

	FlashcardsCreatedTotal prometheus.Counter
}

// New registers all collectors on a fresh registry, so it can be called
// more than once per process (tests).
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "philologic_http_requests_total",
				Help: "Total number of HTTP requests handled",
			},
			[]string{"method", "route", "status"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "philologic_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		InferenceRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "philologic_inference_requests_total",
				Help: "Total number of calls to the inference service",
			},
			[]string{"operation", "outcome"},
		),
		InferenceDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "philologic_inference_duration_seconds",
				Help:    "Duration of inference calls in seconds",
				Buckets: []float64{0.25, 0.5, 1, 2, 5, 10, 20, 40, 60},
			},
			[]string{"operation"},
		),
		FlashcardsCreatedTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "philologic_flashcards_created_total",
				Help: "Total number of flashcards persisted",
			},
		),
	}
}

// ObserveInference records one upstream inference call.
func (m *Metrics) ObserveInference(operation, outcome string, duration time.Duration) {
	if m == nil {
		return
	}
	m.InferenceRequestsTotal.WithLabelValues(operation, outcome).Inc()
	m.InferenceDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// AddFlashcards counts persisted flashcards.
func (m *Metrics) AddFlashcards(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.FlashcardsCreatedTotal.Add(float64(n))
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Middleware counts requests by route template, not raw path.
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			status := c.Response().Status
			if err != nil {
				if he, ok := err.(*echo.HTTPError); ok {
					status = he.Code
				} else if !c.Response().Committed {
					status = http.StatusInternalServerError
				}
			}

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			method := c.Request().Method
			m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
			m.HTTPRequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
			return err
		}
	}
}
