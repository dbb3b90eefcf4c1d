//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"
	"tx-lab/domain"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// Task is one unit of work handed to the executor.
type Task func()

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

type TxMode int

const (
	ReadWrite TxMode = iota
	ReadOnly
)

func (m TxMode) String() string {
	if m == ReadOnly {
		return "read-only"
	}
	return "read-write"
}

// Transactor opens transactions on a message store.
type Transactor interface {
	Begin(ctx context.Context, mode TxMode) (Tx, error)
}

// Tx is a single open transaction. Every Tx must end with exactly one
// Commit or Rollback; calling Rollback after Commit is a no-op.
type Tx interface {
	// Persist inserts the message and assigns its generated identifier.
	Persist(ctx context.Context, message *domain.Message) error
	// FindAll scans every stored message, in store order.
	FindAll(ctx context.Context) ([]domain.Message, error)
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}
