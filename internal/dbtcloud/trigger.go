// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The dbtbridge Authors

package dbtcloud

import (
	"context"
	"time"

	"github.com/dbtbridge/dbtbridge/models"
)

// DefaultTriggerCause is recorded in the dbt Cloud run history when the
// caller does not supply a cause.
const DefaultTriggerCause = "Triggered via dbt Cloud bridge"

// TriggerBuild starts a build of the workspace's environment and returns a
// lazy, single-pass stream of run events. The first job defined for the
// project/environment pair is triggered; its run is then polled until it
// reaches a terminal state.
//
// The returned channel is unbuffered: events are produced as the caller
// consumes them, in order, and the channel is closed after the terminal
// event or when ctx is cancelled. The stream is not restartable.
func TriggerBuild(ctx context.Context, ws *Workspace, cause string) (<-chan models.RunEvent, error) {
	if cause == "" {
		cause = DefaultTriggerCause
	}

	jobs, err := ws.client.ListJobs(ctx, ws.ProjectID, ws.EnvironmentID)
	if err != nil {
		return nil, err
	}
	if len(jobs) == 0 {
		return nil, ErrNoJobs
	}

	run, err := ws.client.TriggerJobRun(ctx, jobs[0].ID, models.TriggerRunRequest{Cause: cause})
	if err != nil {
		return nil, err
	}

	events := make(chan models.RunEvent)
	go ws.streamRunEvents(ctx, run, events)

	return events, nil
}

// streamRunEvents polls the run until it is terminal, forwarding one event
// per observed status change. It owns the events channel and always closes
// it on exit.
func (ws *Workspace) streamRunEvents(ctx context.Context, run models.Run, events chan<- models.RunEvent) {
	defer close(events)

	if !emit(ctx, events, newRunEvent(models.RunEventStarted, run)) {
		return
	}

	lastStatus := run.Status

	ticker := time.NewTicker(ws.runPollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			current, err := ws.client.GetRun(ctx, run.ID)
			if err != nil {
				ws.logger.Error().Err(err).Int64("run_id", run.ID).Msg("poll triggered run")
				failed := models.Run{ID: run.ID, Status: lastStatus, StatusMessage: err.Error()}
				emit(ctx, events, newRunEvent(models.RunEventFailed, failed))
				return
			}

			// terminal wins over the unchanged-status skip: a run that was
			// already terminal at trigger time must still close the stream
			if current.Status.Terminal() {
				emit(ctx, events, newRunEvent(terminalEventKind(current.Status), current))
				return
			}

			if current.Status == lastStatus {
				continue
			}
			lastStatus = current.Status

			if !emit(ctx, events, newRunEvent(models.RunEventProgress, current)) {
				return
			}
		}
	}
}

func emit(ctx context.Context, events chan<- models.RunEvent, event models.RunEvent) bool {
	select {
	case <-ctx.Done():
		return false
	case events <- event:
		return true
	}
}
