// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The dbtbridge Authors

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/dbtbridge/dbtbridge/internal/logger"
	"github.com/dbtbridge/dbtbridge/models"
)

const defaultJobInterval = time.Minute

type sensorJob struct {
	spec   models.SensorSpec
	handle EventHandler
	logger *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSensorJob creates a worker that calls spec.Poll on a ticker and passes
// any returned events to handle. The job is idle until Start is called.
func NewSensorJob(spec models.SensorSpec, handle EventHandler, log *logger.Logger) Worker {
	return &sensorJob{spec: spec, handle: handle, logger: log}
}

// Start implements [Worker]. It stops any previously running job, then
// launches a background goroutine that polls every spec.Interval. If the
// interval is zero or negative it defaults to one minute. The goroutine
// exits when ctx is cancelled or Stop is called.
func (j *sensorJob) Start(ctx context.Context) {
	interval := j.spec.Interval
	if interval <= 0 {
		interval = defaultJobInterval
	}

	j.Stop()

	j.mu.Lock()
	// handlers pick the job's logger back up via logger.FromContext
	jobCtx, cancel := context.WithCancel(j.logger.WithContext(ctx))
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
				j.pollOnce(jobCtx)
			}
		}
	}()
}

// Stop implements [Worker]. It cancels the background goroutine's context and
// blocks until the goroutine has fully exited. Safe to call when the job is
// not running (no-op in that case).
func (j *sensorJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

// pollOnce runs one sensor pass. Poll errors are logged and swallowed so a
// transient API failure does not kill the job.
func (j *sensorJob) pollOnce(ctx context.Context) {
	events, err := j.spec.Poll(ctx)
	if err != nil {
		j.logger.Error().Err(err).Str("sensor", j.spec.Name).Msg("sensor poll failed")
		return
	}

	if len(events) == 0 {
		return
	}

	j.logger.Debug().Str("sensor", j.spec.Name).Int("events", len(events)).Msg("sensor pass produced events")

	if j.handle != nil {
		j.handle(ctx, events)
	}
}
