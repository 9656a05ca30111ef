// Package deadline runs a unit of work on a worker goroutine and waits for
// it no longer than a fixed budget.
//
// The task receives no cancellation token. When the budget elapses first,
// Run returns ErrTimeout immediately; the worker may keep running in the
// background, and whatever it eventually produces is dropped. Deciding what
// to do about a timeout (abort the run, exit the process) is left to the
// caller.
//
// Errors:
//
//   - ErrTimeout: the budget elapsed before the task finished.
//   - ErrTaskPanic: the task panicked; the panic value is included in the message.
//   - ErrInvalidBudget: a non-positive budget was supplied.
package deadline
