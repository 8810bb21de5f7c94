// Package observability exposes the relay counters to prometheus.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "chat_relay"

// Metrics groups every collector of the relay. It is created once per
// process with the registry that /metrics serves.
type Metrics struct {
	activeSessions prometheus.Gauge
	events         *prometheus.CounterVec
	deliveries     *prometheus.CounterVec
	skipped        *prometheus.CounterVec
	commands       *prometheus.CounterVec
	queueLength    *prometheus.GaugeVec
	queueCapacity  *prometheus.GaugeVec
	cpuPercent     prometheus.Gauge
	rssBytes       prometheus.Gauge
}

func NewMetrics(registry prometheus.Registerer) *Metrics {
	factory := promauto.With(registry)
	return &Metrics{
		activeSessions: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_sessions",
			Help:      "Number of logged-in sessions",
		}),
		events: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_total",
			Help:      "Domain events consumed by the relay",
		}, []string{"event"}),
		deliveries: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "deliveries_total",
			Help:      "Frames pushed to sessions by the relay",
		}, []string{"event"}),
		skipped: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "skipped_total",
			Help:      "Deliveries dropped because the recipient had no live session",
		}, []string{"event"}),
		commands: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "commands_total",
			Help:      "Client commands handled by the gateway",
		}, []string{"command", "result"}),
		queueLength: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "queue_length",
			Help:      "Sampled number of pending items in an internal queue",
		}, []string{"queue"}),
		queueCapacity: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "queue_capacity",
			Help:      "Buffer size of an internal queue",
		}, []string{"queue"}),
		cpuPercent: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "cpu_percent",
			Help:      "CPU usage of the relay process since it started",
		}),
		rssBytes: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "rss_bytes",
			Help:      "Resident memory of the relay process",
		}),
	}
}

func (m *Metrics) SessionOpened() { m.activeSessions.Inc() }
func (m *Metrics) SessionClosed() { m.activeSessions.Dec() }

func (m *Metrics) EventConsumed(name string) { m.events.WithLabelValues(name).Inc() }
func (m *Metrics) Delivered(name string)     { m.deliveries.WithLabelValues(name).Inc() }
func (m *Metrics) Skipped(name string)       { m.skipped.WithLabelValues(name).Inc() }

// Command records the outcome of one gateway command.
func (m *Metrics) Command(command string, err error) {
	result := "ok"
	if err != nil {
		result = "rejected"
	}
	m.commands.WithLabelValues(command, result).Inc()
}

// QueueDepth records a sample of an internal buffered channel.
func (m *Metrics) QueueDepth(queue string, length, capacity int) {
	m.queueLength.WithLabelValues(queue).Set(float64(length))
	m.queueCapacity.WithLabelValues(queue).Set(float64(capacity))
}

// ProcessUsage records a sample of the relay's own resource usage.
func (m *Metrics) ProcessUsage(cpuPercent float64, rssBytes uint64) {
	m.cpuPercent.Set(cpuPercent)
	m.rssBytes.Set(float64(rssBytes))
}
