package workers

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-wa-desk/internal/logger"
)

type namedWorker struct {
	name   string
	worker Worker
}

type Workers struct {
	workers []namedWorker
	logger  *logger.Logger
}

func New(logger *logger.Logger) *Workers {
	return &Workers{logger: logger}
}

// Add registers worker under name. Workers added after Run has started are
// not picked up by that run.
func (w *Workers) Add(name string, worker Worker) *Workers {
	w.workers = append(w.workers, namedWorker{name: name, worker: worker})
	return w
}

// Run starts every worker and waits for all of them. Worker errors are
// logged as they happen and returned joined; a panicking worker is reported
// as an error instead of taking the process down.
func (w *Workers) Run(ctx context.Context) error {
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)

	for _, nw := range w.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()

			if err := w.runOne(ctx, nw); err != nil {
				w.logger.Err(err).Str("worker", nw.name).Msg("worker stopped with error")
				mu.Lock()
				errs = append(errs, fmt.Errorf("%s: %w", nw.name, err))
				mu.Unlock()
				return
			}
			w.logger.Debug().Str("worker", nw.name).Msg("worker finished")
		}()
	}

	wg.Wait()
	return errors.Join(errs...)
}

func (w *Workers) runOne(ctx context.Context, nw namedWorker) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrWorkerPanicked, r)
		}
	}()

	return nw.worker.Run(ctx)
}
