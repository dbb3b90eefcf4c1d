package workers

import (
	"context"
	"log/slog"
	"time"
	"tx-lab/contract"
	"tx-lab/observability"
)

var _ contract.Worker = (*ReporterWorker)(nil)

// ReporterWorker periodically logs a monitoring snapshot.
type ReporterWorker struct {
	log        *slog.Logger
	monitoring *observability.MonitoringManager
	interval   time.Duration
}

func NewReporterWorker(log *slog.Logger, monitoring *observability.MonitoringManager, interval time.Duration) *ReporterWorker {
	return &ReporterWorker{log: log, monitoring: monitoring, interval: interval}
}

// Run starts the reporting loop until context cancellation, with a last report on the way out
func (w *ReporterWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.report()
			w.log.Debug("Reporter stopped")
			return ctx.Err()
		case <-ticker.C:
			w.report()
		}
	}
}

func (w *ReporterWorker) report() {
	stats := w.monitoring.GetLatest()
	w.log.Info("Service stats",
		"uptime", time.Duration(stats.UptimeSeconds*float64(time.Second)).Round(time.Second).String(),
		"submitted", stats.Submitted,
		"persisted", stats.Persisted,
		"listed", stats.Listed,
		"rejected", stats.Rejected,
		"queue", stats.QueueDepth,
		"capacity", stats.QueueCapacity,
		"rss_bytes", stats.RssBytes,
	)
}
