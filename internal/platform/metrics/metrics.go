package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics agrupa los collectors del servicio sobre un registry propio
// (no el global, así cada router de test tiene el suyo).
type Metrics struct {
	registry *prometheus.Registry

	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	searches *prometheus.CounterVec
	records  prometheus.Gauge
	loaded   prometheus.Gauge
}

func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fishing_finder",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route, method and status.",
		}, []string{"route", "method", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "fishing_finder",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
		searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fishing_finder",
			Name:      "searches_total",
			Help:      "Searches by mode and outcome (hit/empty).",
		}, []string{"mode", "outcome"}),
		records: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "fishing_finder",
			Name:      "catalog_records",
			Help:      "Records in the loaded catalog.",
		}),
		loaded: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "fishing_finder",
			Name:      "catalog_loaded",
			Help:      "1 if the catalog loaded, 0 otherwise.",
		}),
	}

	reg.MustRegister(
		m.requests,
		m.duration,
		m.searches,
		m.records,
		m.loaded,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler expone /metrics.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) ObserveRequest(route, method string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	m.requests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.duration.WithLabelValues(route).Observe(elapsed.Seconds())
}

// ObserveSearch implementa fish.SearchObserver.
func (m *Metrics) ObserveSearch(mode string, results int) {
	outcome := "hit"
	if results == 0 {
		outcome = "empty"
	}
	m.searches.WithLabelValues(mode, outcome).Inc()
}

// SetCatalog registra el estado de la carga.
func (m *Metrics) SetCatalog(loaded bool, records int) {
	if loaded {
		m.loaded.Set(1)
	} else {
		m.loaded.Set(0)
	}
	m.records.Set(float64(records))
}
