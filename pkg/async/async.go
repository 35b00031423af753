package async

import (
	"context"
	"sync"
	"time"
)

// Future represents the result of an asynchronous computation that returns a value and an error.
type Future[U any] struct {
	value U
	err   error
	once  sync.Once
	done  chan struct{}
}

// Await waits for the asynchronous function to complete and returns its result.
func (f *Future[U]) Await() (U, error) {
	<-f.done
	return f.value, f.err
}

// AwaitWithTimeout waits for the asynchronous function to complete with a timeout.
// Returns the result if the function completes before the timeout.
// If the timeout occurs before completion, returns the zero value and ErrTimeout.
func (f *Future[U]) AwaitWithTimeout(timeout time.Duration) (U, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-time.After(timeout):
		var zero U
		return zero, ErrTimeout
	}
}

// IsComplete checks if the asynchronous function is complete without blocking.
// Returns true if the function has completed, false otherwise.
func (f *Future[U]) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Async executes a function asynchronously and returns a Future holding its eventual result.
// The function accepts a context.Context and a parameter of any type T, and returns (U, error).
func Async[T, U any](ctx context.Context, param T, fn func(context.Context, T) (U, error)) *Future[U] {
	f := &Future[U]{done: make(chan struct{})}

	go func() {
		defer close(f.done)

		// Early exit prevents goroutine leak when context is pre-canceled
		select {
		case <-ctx.Done():
			f.err = ctx.Err()
			return
		default:
		}

		value, err := fn(ctx, param)

		// Use sync.Once to prevent race conditions on multiple goroutine completions
		f.once.Do(func() {
			f.value = value
			f.err = err
		})
	}()

	return f
}

// WaitAll waits for all futures to complete and returns their results in the same order.
// If any future returns an error, WaitAll returns the first error encountered along with
// the results collected so far.
func WaitAll[U any](futures ...*Future[U]) ([]U, error) {
	results := make([]U, 0, len(futures))
	for _, future := range futures {
		value, err := future.Await()
		if err != nil {
			return results, err
		}
		results = append(results, value)
	}
	return results, nil
}

// WaitAny waits for any of the futures to complete and returns the index of the completed
// future, its value, and any error it might have returned.
// Note: This function spawns one goroutine per future. All goroutines will complete naturally
// when their respective futures finish.
func WaitAny[U any](futures ...*Future[U]) (int, U, error) {
	var zero U
	if len(futures) == 0 {
		return -1, zero, ErrNoFutures
	}

	type result struct {
		index int
		value U
		err   error
	}
	done := make(chan result, 1)

	for i, future := range futures {
		go func(index int, f *Future[U]) {
			value, err := f.Await()
			select {
			case done <- result{index, value, err}:
			default:
				// Prevents race condition where multiple futures complete simultaneously
			}
		}(i, future)
	}

	res := <-done
	return res.index, res.value, res.err
}
