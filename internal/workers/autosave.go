package workers

import (
	"context"
	"time"

	"github.com/pathforge/pathforge/internal/service"
)

// AutosaveWorker adapts the draft autosave job to the Worker lifecycle so it
// can run alongside other background workers.
type AutosaveWorker struct {
	job      service.AutosaveJob
	source   service.DraftSource
	interval time.Duration
}

func NewAutosaveWorker(job service.AutosaveJob, source service.DraftSource, interval time.Duration) *AutosaveWorker {
	return &AutosaveWorker{
		job:      job,
		source:   source,
		interval: interval,
	}
}

func (w *AutosaveWorker) Run() {
	w.job.Start(context.Background(), w.source, w.interval)
}

func (w *AutosaveWorker) Stop() {
	w.job.Stop()
}
