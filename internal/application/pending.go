package application

import (
	"context"
	"time"
)

// Pending is the completion handle of an asynchronous catalog operation.
// It resolves exactly once; every Wait after that returns the same result.
type Pending[T any] struct {
	done  chan struct{}
	value T
	err   error
}

// resolveAfter returns a handle that resolves to (value, err) once delay has elapsed.
// A non-positive delay resolves the handle before it is returned.
func resolveAfter[T any](delay time.Duration, value T, err error) *Pending[T] {
	p := &Pending[T]{done: make(chan struct{}), value: value, err: err}
	if delay <= 0 {
		close(p.done)
		return p
	}
	time.AfterFunc(delay, func() { close(p.done) })
	return p
}

// Done is closed when the operation has resolved.
func (p *Pending[T]) Done() <-chan struct{} { return p.done }

// Wait blocks until the operation resolves or ctx ends. Ending ctx only stops
// the wait; the operation itself has already been applied and is not undone.
func (p *Pending[T]) Wait(ctx context.Context) (T, error) {
	if p.Resolved() {
		return p.value, p.err
	}
	select {
	case <-p.done:
		return p.value, p.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Resolved reports whether the operation has resolved, without blocking.
func (p *Pending[T]) Resolved() bool {
	select {
	case <-p.done:
		return true
	default:
		return false
	}
}
