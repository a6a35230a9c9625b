package runtime

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// Future holds the outcome of one delayed computation.
// It settles exactly once, either with a value or with an error.
type Future[T any] struct {
	ID    uuid.UUID
	once  sync.Once
	done  chan struct{}
	value T
	err   error
}

func newFuture[T any]() *Future[T] {
	return &Future[T]{
		ID:   uuid.New(),
		done: make(chan struct{}),
	}
}

func (f *Future[T]) resolve(value T) bool {
	return f.settle(value, nil)
}

func (f *Future[T]) reject(err error) bool {
	var zero T
	return f.settle(zero, err)
}

// settle returns false when the future was already settled
func (f *Future[T]) settle(value T, err error) bool {
	settled := false
	f.once.Do(func() {
		f.value = value
		f.err = err
		settled = true
		close(f.done)
	})
	return settled
}

// Done is closed once the future is settled.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

func (f *Future[T]) Settled() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Await waits for the outcome.
// Cancelling ctx only stops the wait, the computation still settles later.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	if f.Settled() {
		return f.value, f.err
	}
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
