package service

import (
	"context"
	"sync"
	"time"
)

type autosaveJob struct {
	drafts DraftService

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewAutosaveJob creates an autosaveJob that snapshots the wizard draft on a
// ticker. The job is idle until Start is called.
func NewAutosaveJob(drafts DraftService) AutosaveJob {
	return &autosaveJob{drafts: drafts}
}

// Start implements AutosaveJob. It stops any previously running job, then
// launches a background goroutine that saves the source's snapshot every
// interval. If interval is zero or negative it defaults to 30 seconds. The
// goroutine exits when ctx is cancelled or Stop is called.
func (j *autosaveJob) Start(ctx context.Context, source DraftSource, interval time.Duration) {
	if interval <= 0 {
		interval = 30 * time.Second
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if draft, ok := source.Snapshot(); ok {
					_ = j.drafts.Save(jobCtx, draft)
				}
			}
		}
	}()
}

// Stop implements AutosaveJob. It cancels the background goroutine's context
// and blocks until the goroutine has fully exited. Safe to call when the job
// is not running (no-op in that case).
func (j *autosaveJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
