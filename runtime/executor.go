// Package runtime runs units of work away from the goroutine that asked for them.
// It owns the worker pool without containing business logic or store access.
package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"tx-lab/contract"
	"tx-lab/errors"
	"tx-lab/runtime/workers"
)

// Executor is the process wide worker pool.
// Tasks are queued on a bounded channel and drained by supervised
// PoolUnitWorkers. Submit blocks only while the queue is full.
type Executor struct {
	mu         sync.RWMutex
	log        *slog.Logger
	supervisor contract.ISupervisor
	numWorkers int
	tasks      chan contract.Task
	started    bool
	closed     bool
	stopped    chan struct{}
}

func NewExecutor(log *slog.Logger, supervisor contract.ISupervisor, numWorkers, queueSize int) *Executor {
	return &Executor{
		log:        log,
		supervisor: supervisor,
		numWorkers: numWorkers,
		tasks:      make(chan contract.Task, queueSize),
		stopped:    make(chan struct{}),
	}
}

// Start registers the pool workers to the supervisor and runs it in the background.
func (e *Executor) Start(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.started || e.closed {
		return
	}
	e.started = true

	for i := 0; i < e.numWorkers; i++ {
		e.supervisor.Add(workers.NewPoolUnitWorker(e.tasks, e.log))
	}

	e.log.Info("Starting executor", "workers", e.numWorkers, "queue_size", cap(e.tasks))
	go func() {
		defer close(e.stopped)
		e.supervisor.Run(ctx)
	}()
}

// Submit queues a task. It fails with errors.ErrExecutorStopped once Stop has been called.
func (e *Executor) Submit(task contract.Task) error {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.closed {
		return errors.ErrExecutorStopped
	}
	e.tasks <- task
	return nil
}

// Stop refuses new tasks, lets the workers drain what is already queued and
// waits for them to return. Every queued task has run when Stop returns.
func (e *Executor) Stop() {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	e.closed = true
	close(e.tasks)
	started := e.started
	e.mu.Unlock()

	e.log.Info("Draining executor", "pending", len(e.tasks))
	if started {
		<-e.stopped
	}

	// Workers may be gone before the queue is empty (canceled before their
	// first run, or crashed after cancellation). Whatever is left runs here.
	leftover := 0
	for task := range e.tasks {
		leftover++
		runTask(task)
	}
	if leftover > 0 {
		e.log.Warn("Ran tasks left behind by workers", "count", leftover)
	}
	e.log.Info("Executor stopped")
}

func runTask(task contract.Task) {
	defer func() { _ = recover() }()
	task()
}

func (e *Executor) QueueDepth() int {
	return len(e.tasks)
}

func (e *Executor) Capacity() int {
	return cap(e.tasks)
}

// Async schedules fn on the executor and returns the future of its result.
// A panic in fn rejects the future with errors.ErrUnexpected.
func Async[T any](e *Executor, fn func() (T, error)) *Future[T] {
	future := NewFuture[T]()
	err := e.Submit(func() {
		defer func() {
			if r := recover(); r != nil {
				future.Reject(fmt.Errorf("%w: panic in task: %v", errors.ErrUnexpected, r))
			}
		}()
		future.Complete(fn())
	})
	if err != nil {
		future.Reject(err)
	}
	return future
}
