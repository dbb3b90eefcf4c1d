package observability

import (
	"log/slog"
	"os"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/shirou/gopsutil/process"
)

// QueueProbe reports the executor backlog.
type QueueProbe interface {
	QueueDepth() int
	Capacity() int
}

// MonitoringStats is the snapshot served on the health endpoint.
type MonitoringStats struct {
	Status        string  `json:"status"`
	UptimeSeconds float64 `json:"uptime_seconds"`

	// --- REQUEST METRICS ---
	Submitted uint64 `json:"submitted"`
	Persisted uint64 `json:"persisted"`
	Listed    uint64 `json:"listed"`
	Rejected  uint64 `json:"rejected"`

	// --- EXECUTOR METRICS ---
	QueueDepth    int `json:"queue_depth"`
	QueueCapacity int `json:"queue_capacity"`

	// --- SYSTEM METRICS ---
	Goroutines int     `json:"goroutines"`
	AllocMemMb uint64  `json:"alloc_mem_mb"`
	RssBytes   uint64  `json:"rss_bytes"`
	CpuPercent float64 `json:"cpu_percent"`
}

// MonitoringManager counts what the message service does and samples the
// process on demand.
type MonitoringManager struct {
	log       *slog.Logger
	startedAt time.Time
	queue     QueueProbe

	procOnce sync.Once
	proc     *process.Process

	submitted atomic.Uint64
	persisted atomic.Uint64
	listed    atomic.Uint64
	rejected  atomic.Uint64
}

func NewMonitoringManager(log *slog.Logger, queue QueueProbe) *MonitoringManager {
	return &MonitoringManager{log: log, startedAt: time.Now(), queue: queue}
}

func (mm *MonitoringManager) IncrSubmitted() {
	mm.submitted.Add(1)
}

func (mm *MonitoringManager) IncrPersisted() {
	mm.persisted.Add(1)
}

func (mm *MonitoringManager) IncrListed() {
	mm.listed.Add(1)
}

func (mm *MonitoringManager) IncrRejected() {
	mm.rejected.Add(1)
}

func (mm *MonitoringManager) GetLatest() MonitoringStats {
	stats := MonitoringStats{
		Status:        "ok",
		UptimeSeconds: time.Since(mm.startedAt).Seconds(),
		Submitted:     mm.submitted.Load(),
		Persisted:     mm.persisted.Load(),
		Listed:        mm.listed.Load(),
		Rejected:      mm.rejected.Load(),
		Goroutines:    runtime.NumGoroutine(),
	}
	if mm.queue != nil {
		stats.QueueDepth = mm.queue.QueueDepth()
		stats.QueueCapacity = mm.queue.Capacity()
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	stats.AllocMemMb = m.Alloc / 1024 / 1024

	if p := mm.process(); p != nil {
		if memInfo, err := p.MemoryInfo(); err == nil {
			stats.RssBytes = memInfo.RSS
		} else {
			mm.log.Debug("Failed to read process memory", "err", err)
		}
		if cpu, err := p.CPUPercent(); err == nil {
			stats.CpuPercent = cpu
		} else {
			mm.log.Debug("Failed to read process cpu", "err", err)
		}
	}
	return stats
}

func (mm *MonitoringManager) process() *process.Process {
	mm.procOnce.Do(func() {
		p, err := process.NewProcess(int32(os.Getpid()))
		if err != nil {
			mm.log.Warn("Process stats unavailable", "err", err)
			return
		}
		mm.proc = p
	})
	return mm.proc
}
