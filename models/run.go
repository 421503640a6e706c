// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The dbtbridge Authors

package models

import "time"

// RunStatus is the numeric run state reported by the dbt Cloud
// Administrative API.
type RunStatus int

// Run states as defined by the dbt Cloud v2 API.
const (
	RunQueued    RunStatus = 1
	RunStarting  RunStatus = 2
	RunRunning   RunStatus = 3
	RunSuccess   RunStatus = 10
	RunError     RunStatus = 20
	RunCancelled RunStatus = 30
)

// Terminal reports whether the run has reached a final state.
func (s RunStatus) Terminal() bool {
	return s == RunSuccess || s == RunError || s == RunCancelled
}

// String returns the lower-case status label used in logs and events.
func (s RunStatus) String() string {
	switch s {
	case RunQueued:
		return "queued"
	case RunStarting:
		return "starting"
	case RunRunning:
		return "running"
	case RunSuccess:
		return "success"
	case RunError:
		return "error"
	case RunCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Run is a single dbt Cloud job run as returned by the runs endpoints.
type Run struct {
	ID            int64     `json:"id"`
	JobID         int64     `json:"job_definition_id"`
	ProjectID     int       `json:"project_id"`
	EnvironmentID int       `json:"environment_id"`
	Status        RunStatus `json:"status"`
	StatusMessage string    `json:"status_message,omitempty"`
	StartedAt     string    `json:"started_at,omitempty"`
	FinishedAt    string    `json:"finished_at,omitempty"`
}

// RunEventKind classifies a single element of a run-event sequence.
type RunEventKind string

// Event kinds emitted by the build trigger and the polling sensor.
const (
	RunEventStarted   RunEventKind = "run_started"
	RunEventProgress  RunEventKind = "run_progress"
	RunEventCompleted RunEventKind = "run_completed"
	RunEventFailed    RunEventKind = "run_failed"
)

// RunEvent is one observation about a remote run, forwarded to the host
// exactly as produced.
type RunEvent struct {
	// EventID is a host-side unique id, usable for event deduplication.
	EventID string `json:"event_id"`

	Kind      RunEventKind `json:"kind"`
	RunID     int64        `json:"run_id"`
	Status    RunStatus    `json:"status"`
	Message   string       `json:"message,omitempty"`
	Timestamp time.Time    `json:"timestamp"`
}
