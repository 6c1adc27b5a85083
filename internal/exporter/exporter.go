package exporter

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	METRIC_REPORTS_RENDERED = "reports_rendered_total"
	METRIC_RENDER_ERRORS    = "render_errors_total"
	METRIC_VIEWS_BUILT      = "views_built_total"
)

var (
	once     sync.Once
	registry *prometheus.Registry
	counters map[string]prometheus.Counter
	rendered *prometheus.CounterVec
)

// Init registers the dashboard metrics. Calling it again is a no-op.
func Init() {
	once.Do(func() {
		registry = prometheus.NewRegistry()
		counters = make(map[string]prometheus.Counter)

		rendered = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "agora",
			Subsystem: "dashboard",
			Name:      METRIC_REPORTS_RENDERED,
			Help:      "Counts rendered dashboard reports by output format",
		}, []string{"format"})
		registry.MustRegister(rendered)

		for name, help := range map[string]string{
			METRIC_RENDER_ERRORS: "Counts failed report renders",
			METRIC_VIEWS_BUILT:   "Counts dashboard views derived from a snapshot",
		} {
			counter := prometheus.NewCounter(prometheus.CounterOpts{
				Namespace: "agora",
				Subsystem: "dashboard",
				Name:      name,
				Help:      help,
			})
			registry.MustRegister(counter)
			counters[name] = counter
		}
	})
}

// Registry returns the registry holding the dashboard metrics.
func Registry() *prometheus.Registry {
	Init()
	return registry
}

// Handler serves the dashboard metrics in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry(), promhttp.HandlerOpts{})
}

func GetCounter(name string) prometheus.Counter {
	Init()
	return counters[name]
}

func IncReportRendered(format string) {
	Init()
	rendered.WithLabelValues(format).Inc()
}

func IncRenderError() {
	GetCounter(METRIC_RENDER_ERRORS).Inc()
}

func IncViewsBuilt() {
	GetCounter(METRIC_VIEWS_BUILT).Inc()
}
