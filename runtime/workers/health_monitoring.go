package workers

import (
	"chat-relay/observability"
	"context"
	"log/slog"
	"time"

	"github.com/shirou/gopsutil/process"
)

// HealthMonitoringWorker samples the CPU and memory of one process, the
// relay itself in production, and exposes them as gauges.
type HealthMonitoringWorker struct {
	log            *slog.Logger
	pid            int32
	metrics        *observability.Metrics
	metricInterval time.Duration
}

func NewHealthMonitoringWorker(log *slog.Logger, pid int32,
	metrics *observability.Metrics, metricInterval time.Duration) *HealthMonitoringWorker {
	return &HealthMonitoringWorker{
		log:            log,
		pid:            pid,
		metrics:        metrics,
		metricInterval: metricInterval,
	}
}

func (w *HealthMonitoringWorker) Run(ctx context.Context) error {
	p, err := process.NewProcess(w.pid)
	if err != nil {
		// A restart would fail the same way.
		w.log.Warn("Process not found, health sampling disabled", "pid", w.pid, "error", err)
		return nil
	}
	ticker := time.NewTicker(w.metricInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping health sampling")
			return nil
		case <-ticker.C:
			rss, cpu, err := selfStats(p)
			if err != nil {
				w.log.Debug("Failed to collect process stats", "pid", w.pid, "error", err)
				continue
			}
			w.metrics.ProcessUsage(cpu, rss)
		}
	}
}

func selfStats(p *process.Process) (uint64, float64, error) {
	memInfo, err := p.MemoryInfo()
	if err != nil {
		return 0, 0, err
	}
	cpuPercent, err := p.CPUPercent()
	if err != nil {
		return 0, 0, err
	}
	return memInfo.RSS, cpuPercent, nil
}
