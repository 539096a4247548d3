package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-light-client/internal/logger"
	"golang.org/x/sync/errgroup"
)

type Workers struct {
	workers []Worker
}

func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Add registers w. It must not be called concurrently with Run.
func (w *Workers) Add(worker Worker) {
	w.workers = append(w.workers, worker)
}

// Run starts every worker in its own goroutine and blocks until all of them
// return. The first non-nil error cancels the context passed to the others
// and is returned.
func (w *Workers) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, worker := range w.workers {
		g.Go(func() error {
			return worker.Run(gctx)
		})
	}

	return g.Wait()
}

// Periodic returns a Worker that calls fn once immediately and then every
// interval until ctx is cancelled. Errors from fn are logged and do not stop
// the loop.
func Periodic(name string, interval time.Duration, fn func(ctx context.Context) error, log *logger.Logger) Worker {
	return WorkerFunc(func(ctx context.Context) error {
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			if err := fn(ctx); err != nil && ctx.Err() == nil {
				log.Err(err).
					Str("func", "workers.Periodic").
					Str("worker", name).
					Msg("periodic run failed")
			}

			select {
			case <-ctx.Done():
				return nil
			case <-t.C:
			}
		}
	})
}
