package workers

import "context"

// Workers aggregates background workers so the application can manage their
// lifecycle as one unit.
type Workers struct {
	workers []Worker
}

func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

func (w *Workers) Start(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Start(ctx)
	}
}

func (w *Workers) Stop() {
	for _, worker := range w.workers {
		worker.Stop()
	}
}
