package simulator

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics are the simulator's prometheus collectors on a private registry.
type Metrics struct {
	registry         *prometheus.Registry
	HumidityRequests prometheus.Counter
	MotorStarts      prometheus.Counter
	SoilRaw          prometheus.Gauge
}

// NewMetrics registers the simulator collectors on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		HumidityRequests: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "plantsim_humidity_requests_total",
			Help: "GET /gethumidity requests served.",
		}),
		MotorStarts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "plantsim_motor_starts_total",
			Help: "POST /startmotor requests served.",
		}),
		SoilRaw: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "plantsim_soil_raw",
			Help: "Current raw soil humidity value.",
		}),
	}
	m.registry.MustRegister(m.HumidityRequests, m.MotorStarts, m.SoilRaw)
	return m
}

// Handler exposes the registry in the prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
