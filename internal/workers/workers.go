package workers

type Workers struct {
	workers []Worker
}

// NewWorkers builds an aggregate over the given workers. Order is preserved
// for Run; Stop walks the list in reverse.
func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}
