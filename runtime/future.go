package runtime

import (
	"context"
	"sync"
)

// Future is the handle of an asynchronous result.
// It settles exactly once, either resolved with a value or rejected with an
// error; later attempts to settle it are ignored.
type Future[T any] struct {
	once  sync.Once
	done  chan struct{}
	value T
	err   error
}

func NewFuture[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

// Resolve settles the future with a value. It reports whether this call settled it.
func (f *Future[T]) Resolve(value T) bool {
	return f.settle(value, nil)
}

// Reject settles the future with an error. It reports whether this call settled it.
func (f *Future[T]) Reject(err error) bool {
	var zero T
	return f.settle(zero, err)
}

// Complete resolves with value when err is nil, rejects otherwise.
func (f *Future[T]) Complete(value T, err error) bool {
	if err != nil {
		return f.Reject(err)
	}
	return f.Resolve(value)
}

func (f *Future[T]) settle(value T, err error) bool {
	settled := false
	f.once.Do(func() {
		f.value, f.err = value, err
		settled = true
		close(f.done)
	})
	return settled
}

// Done is closed once the future is settled.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Await blocks until the future settles or ctx ends.
// Giving up on ctx does not stop the work behind the future.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
