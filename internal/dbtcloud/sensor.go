// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The dbtbridge Authors

package dbtcloud

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/dbtbridge/dbtbridge/models"
)

// SensorName is the fixed name of the run-status polling sensor.
const SensorName = "dbt_cloud_run_status_sensor"

const (
	defaultSensorInterval = 30 * time.Second
	runHistoryPageSize    = 50
)

// BuildPollingSensor builds the polling sensor that syncs the workspace's
// run history. The returned spec's Poll function diffs the environment's run
// history against an in-memory cursor and emits one event per newly-terminal
// run. The first pass only primes the cursor, so already-terminal history is
// not replayed; runs still executing at that point are reported once they
// finish.
func BuildPollingSensor(ws *Workspace, interval time.Duration) models.SensorSpec {
	if interval <= 0 {
		interval = defaultSensorInterval
	}

	p := &runPoller{ws: ws}

	return models.SensorSpec{
		Name:        SensorName,
		Description: fmt.Sprintf("Polls dbt Cloud run history for environment %d", ws.EnvironmentID),
		Interval:    interval,
		Poll:        p.poll,
	}
}

// runPoller holds the sensor's only state: the id of the newest terminal run
// already reported. Durable run-state tracking is owned by the host.
type runPoller struct {
	ws *Workspace

	mu     sync.Mutex
	cursor int64
	primed bool
}

func (p *runPoller) poll(ctx context.Context) ([]models.RunEvent, error) {
	runs, err := p.ws.client.ListRuns(ctx, p.ws.EnvironmentID, runHistoryPageSize)
	if err != nil {
		return nil, err
	}

	// oldest first, so events come out in execution order
	sort.Slice(runs, func(i, j int) bool { return runs[i].ID < runs[j].ID })

	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.primed {
		p.primed = true
		// skip already-terminal history, but leave runs still executing at
		// prime time above the cursor so their completion is reported later
		for _, run := range runs {
			if !run.Status.Terminal() {
				break
			}
			p.cursor = run.ID
		}
		return nil, nil
	}

	var events []models.RunEvent
	for _, run := range runs {
		if run.ID <= p.cursor {
			continue
		}
		if !run.Status.Terminal() {
			// keep ordering: stop at the first still-running run
			break
		}

		events = append(events, newRunEvent(terminalEventKind(run.Status), run))
		p.cursor = run.ID
	}

	return events, nil
}
