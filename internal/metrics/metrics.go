package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Исходы запроса на генерацию.
const (
	OutcomeOK             = "ok"
	OutcomeMisconfigured  = "misconfigured"
	OutcomeBadRequest     = "bad_request"
	OutcomeUpstreamFailed = "upstream_failed"
)

// Metrics набор коллекторов прокси. Каждый экземпляр держит свой реестр,
// поэтому тесты не мешают друг другу.
type Metrics struct {
	registry        *prometheus.Registry
	generateTotal   *prometheus.CounterVec
	upstreamLatency *prometheus.HistogramVec
	httpRequests    *prometheus.CounterVec
}

// New регистрирует коллекторы в новом реестре.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		generateTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "proposal",
			Name:      "generate_requests_total",
			Help:      "Generate requests by outcome.",
		}, []string{"outcome"}),
		upstreamLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "proposal",
			Name:      "upstream_request_duration_seconds",
			Help:      "Latency of calls to the text generation provider.",
			Buckets:   []float64{0.5, 1, 2.5, 5, 10, 20, 40, 80, 120},
		}, []string{"result"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "proposal",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route, method and status.",
		}, []string{"route", "method", "status"}),
	}

	m.registry.MustRegister(
		m.generateTotal,
		m.upstreamLatency,
		m.httpRequests,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveGenerate учитывает исход запроса на генерацию.
func (m *Metrics) ObserveGenerate(outcome string) {
	m.generateTotal.WithLabelValues(outcome).Inc()
}

// ObserveUpstream учитывает длительность вызова провайдера.
func (m *Metrics) ObserveUpstream(d time.Duration, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.upstreamLatency.WithLabelValues(result).Observe(d.Seconds())
}

// ObserveHTTP учитывает обработанный HTTP запрос.
func (m *Metrics) ObserveHTTP(route, method, status string) {
	m.httpRequests.WithLabelValues(route, method, status).Inc()
}

// GenerateCounter счётчик запросов с данным исходом. Нужен тестам для чтения значений.
func (m *Metrics) GenerateCounter(outcome string) prometheus.Counter {
	return m.generateTotal.WithLabelValues(outcome)
}

// Registry нужен тестам для чтения значений.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler отдаёт метрики в формате Prometheus.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
