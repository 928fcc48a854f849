package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор prometheus коллекторов, экспортируемых сервисом
type Metrics struct {
	RequestsTotal    *prometheus.CounterVec
	RequestDuration  *prometheus.HistogramVec
	RequestsInFlight prometheus.Gauge
}

// New регистрирует коллекторы сервиса в реестре по умолчанию и возвращает их
func New(serviceName string) *Metrics {
	m := &Metrics{
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "http_requests_total",
				Help:        "Total number of HTTP requests processed.",
				ConstLabels: prometheus.Labels{"service": serviceName},
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "http_request_duration_seconds",
				Help:        "HTTP request latency distribution.",
				Buckets:     prometheus.DefBuckets,
				ConstLabels: prometheus.Labels{"service": serviceName},
			},
			[]string{"method", "path"},
		),
		RequestsInFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name:        "http_requests_in_flight",
				Help:        "Number of HTTP requests currently being served.",
				ConstLabels: prometheus.Labels{"service": serviceName},
			},
		),
	}

	prometheus.MustRegister(m.RequestsTotal, m.RequestDuration, m.RequestsInFlight)
	return m
}
