package fsutil

import (
	"context"
	"sync"
)

// Result is a single-assignment cell holding the outcome of an asynchronous
// operation. Only the first settle takes effect.
type Result[T any] struct {
	once  sync.Once
	done  chan struct{}
	value T
	err   error
}

func newResult[T any]() *Result[T] {
	return &Result[T]{done: make(chan struct{})}
}

// goSettle runs fn on a new goroutine and settles the returned Result with
// its outcome.
func goSettle[T any](fn func() (T, error)) *Result[T] {
	r := newResult[T]()
	go func() {
		r.settle(fn())
	}()
	return r
}

// settle stores value and err and wakes waiters. It reports whether this
// call was the one that settled r.
func (r *Result[T]) settle(value T, err error) (settled bool) {
	r.once.Do(func() {
		r.value, r.err = value, err
		close(r.done)
		settled = true
	})
	return settled
}

// Done returns a channel that is closed once r has settled.
func (r *Result[T]) Done() <-chan struct{} {
	return r.done
}

// Wait blocks until r settles and returns its outcome. If ctx ends first,
// Wait returns ctx.Err(); the operation itself keeps running.
func (r *Result[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-r.done:
		return r.value, r.err
	default:
	}

	select {
	case <-r.done:
		return r.value, r.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
