// Package metrics holds the Prometheus collectors for the sensor and the
// status page, registered on a private registry.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	Registry *prometheus.Registry

	MotionEvents prometheus.Counter
	LastMotion   prometheus.Gauge
	SensorLevel  prometheus.Gauge
	PageRequests *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		MotionEvents: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pirstatus_motion_events_total",
			Help: "Total number of motion episodes (rising edges) detected",
		}),
		LastMotion: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "pirstatus_last_motion_timestamp_seconds",
			Help: "Unix time of the last recorded motion",
		}),
		SensorLevel: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "pirstatus_sensor_level",
			Help: "Last sampled level of the sensor line (0 low, 1 high)",
		}),
		PageRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pirstatus_page_requests_total",
			Help: "Total number of HTTP requests by route",
		}, []string{"route"}),
	}
	m.Registry.MustRegister(
		m.MotionEvents,
		m.LastMotion,
		m.SensorLevel,
		m.PageRequests,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Motion counts the start of a motion episode at t.
func (m *Metrics) Motion(t time.Time) {
	m.MotionEvents.Inc()
	m.Seen(t)
}

// Seen moves the last motion time without counting a new episode.
func (m *Metrics) Seen(t time.Time) {
	m.LastMotion.Set(float64(t.Unix()) + float64(t.Nanosecond())/1e9)
}

func (m *Metrics) Level(high bool) {
	if high {
		m.SensorLevel.Set(1)
	} else {
		m.SensorLevel.Set(0)
	}
}

// Handler serves the registry in the text exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}
