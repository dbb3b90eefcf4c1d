package workers

import (
	"context"
	"log/slog"
	"tx-lab/contract"
)

// Ensure *PoolUnitWorker implements the contract.Worker interface at compile time.
// This prevents "type mismatch" errors from appearing late in other packages
// and acts as a static assertion of our architectural rules.
var _ contract.Worker = (*PoolUnitWorker)(nil)

// PoolUnitWorker runs queued tasks one after another.
// It doesn't recover panics: the supervisor restarts it.
type PoolUnitWorker struct {
	tasks <-chan contract.Task
	log   *slog.Logger
}

func NewPoolUnitWorker(tasks <-chan contract.Task, log *slog.Logger) *PoolUnitWorker {
	return &PoolUnitWorker{tasks: tasks, log: log}
}

// Run keeps draining the queue even after ctx is canceled, so a scheduled
// task always runs. It returns once the queue is closed and empty.
func (w *PoolUnitWorker) Run(_ context.Context) error {
	for task := range w.tasks {
		task()
	}
	w.log.Debug("Task channel is closed")
	return nil
}
