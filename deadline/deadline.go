package deadline

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Sentinel errors for timed execution.
var (
	ErrTimeout       = errors.New("deadline: task exceeded its time budget")
	ErrTaskPanic     = errors.New("deadline: task panicked")
	ErrInvalidBudget = errors.New("deadline: budget must be positive")
)

type outcome[T any] struct {
	val T
	err error
}

// Run starts task on a new goroutine and waits for the first of: the task
// returning, budget elapsing, or ctx being done.
//
// On timeout the returned error wraps ErrTimeout; on ctx cancellation it
// wraps ctx.Err(). In both cases the zero T is returned and the task's
// eventual result is discarded without blocking the worker.
func Run[T any](ctx context.Context, budget time.Duration, task func() (T, error)) (T, error) {
	var zero T
	if budget <= 0 {
		return zero, fmt.Errorf("%w: %s", ErrInvalidBudget, budget)
	}
	if err := ctx.Err(); err != nil {
		return zero, fmt.Errorf("deadline: not started: %w", err)
	}

	// Buffered so the worker can always deliver and exit, even when nobody listens.
	done := make(chan outcome[T], 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- outcome[T]{err: fmt.Errorf("%w: %v", ErrTaskPanic, r)}
			}
		}()
		v, err := task()
		done <- outcome[T]{val: v, err: err}
	}()

	timer := time.NewTimer(budget)
	defer timer.Stop()

	select {
	case out := <-done:
		return out.val, out.err
	case <-timer.C:
		return zero, fmt.Errorf("%w (%s)", ErrTimeout, budget)
	case <-ctx.Done():
		return zero, fmt.Errorf("deadline: abandoned: %w", ctx.Err())
	}
}

// IsTimeout reports whether err signals an elapsed budget.
func IsTimeout(err error) bool {
	return errors.Is(err, ErrTimeout)
}
