// Package workers runs the host process's background work as one group.
//
// Each [Worker] gets its own goroutine and the shared context; the group
// returns once every worker has returned.
package workers

import "context"

// Worker is a unit of background work. Run blocks until the work is done or
// ctx is cancelled.
//
//	type bridgeWorker struct{ srv server.Server }
//
//	func (w bridgeWorker) Run(ctx context.Context) error {
//	    return w.srv.RunServer(ctx)
//	}
type Worker interface {
	Run(ctx context.Context) error
}

// WorkerFunc adapts a function to [Worker].
type WorkerFunc func(ctx context.Context) error

func (f WorkerFunc) Run(ctx context.Context) error {
	return f(ctx)
}
