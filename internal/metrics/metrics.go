// Package metrics contém os instrumentos Prometheus da API.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics agrupa os instrumentos registrados em um registry próprio
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequests *prometheus.CounterVec
	HTTPLatency  *prometheus.HistogramVec

	Queries      *prometheus.CounterVec
	QueryLatency *prometheus.HistogramVec

	ReportRuns *prometheus.CounterVec
}

// New cria e registra os instrumentos com o namespace informado
func New(namespace string) *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		HTTPRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests handled",
			},
			[]string{"method", "route", "status"},
		),
		HTTPLatency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency",
				Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
			},
			[]string{"method", "route"},
		),
		Queries: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "aggregation_queries_total",
				Help:      "Aggregation queries issued against the stats store",
			},
			[]string{"operation", "status"},
		),
		QueryLatency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "aggregation_query_duration_seconds",
				Help:      "Aggregation query latency",
				Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 5},
			},
			[]string{"operation"},
		),
		ReportRuns: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "daily_report_runs_total",
				Help:      "Daily performance report executions",
			},
			[]string{"status"},
		),
	}
}

// Handler retorna o handler HTTP do registry
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry expõe o registry (usado em testes)
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveQuery registra o resultado e a duração de uma consulta de agregação.
// Seguro para receiver nil.
func (m *Metrics) ObserveQuery(operation string, startedAt time.Time, err error) {
	if m == nil {
		return
	}

	status := "ok"
	if err != nil {
		status = "error"
	}

	m.Queries.WithLabelValues(operation, status).Inc()
	m.QueryLatency.WithLabelValues(operation).Observe(time.Since(startedAt).Seconds())
}

// ObserveRequest registra uma requisição HTTP finalizada
func (m *Metrics) ObserveRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}

	m.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPLatency.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveReportRun registra uma execução do relatório diário
func (m *Metrics) ObserveReportRun(err error) {
	if m == nil {
		return
	}

	status := "ok"
	if err != nil {
		status = "error"
	}
	m.ReportRuns.WithLabelValues(status).Inc()
}
