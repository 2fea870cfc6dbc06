// Package workers runs jobs that outlive the command that scheduled them,
// such as clearing the clipboard after a secret was copied.
package workers

import "context"

// Worker is a job that blocks until it is finished or ctx is done.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) error {
//	    // wait, then do the work
//	}
type Worker interface {
	Run(ctx context.Context) error
}

// WorkerFunc adapts a plain function to [Worker].
type WorkerFunc func(ctx context.Context) error

func (f WorkerFunc) Run(ctx context.Context) error {
	return f(ctx)
}
