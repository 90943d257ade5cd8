package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics usa un registry propio en vez del global, así cada router
// (y cada test) tiene sus contadores.
type Metrics struct {
	registry *prometheus.Registry

	DogsCreated        prometheus.Counter
	CreationFailures   prometheus.Counter
	ValidationFailures prometheus.Counter
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	factory := promauto.With(reg)
	return &Metrics{
		registry: reg,
		DogsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "dog_registry_dogs_created_total",
			Help: "Total number of dogs persisted",
		}),
		CreationFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "dog_registry_dog_creation_failures_total",
			Help: "Total number of dog creations that failed in the store",
		}),
		ValidationFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "dog_registry_dog_validation_failures_total",
			Help: "Total number of dog submissions rejected by validation",
		}),
	}
}

func (m *Metrics) Created()          { m.DogsCreated.Inc() }
func (m *Metrics) CreationFailed()   { m.CreationFailures.Inc() }
func (m *Metrics) ValidationFailed() { m.ValidationFailures.Inc() }

func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler expone el registry en formato Prometheus.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
