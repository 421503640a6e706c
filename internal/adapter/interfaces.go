// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The dbtbridge Authors

// Package adapter implements the client side of the dbt Cloud Administrative
// API (v2). It exposes the handful of endpoints the bridge needs: job
// discovery, run triggering, run history, and run artifact retrieval.
//
// The adapter neither retries nor interprets failures: HTTP error statuses
// are mapped to sentinel errors and propagate unmodified to the caller.
package adapter

import (
	"context"

	"github.com/dbtbridge/dbtbridge/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/cloud_adapter_mock.go -package=mock

// CloudAdapter is the contract for talking to a single dbt Cloud account.
// All methods are safe for concurrent use.
type CloudAdapter interface {
	// ListJobs returns the job definitions of the given project/environment
	// pair, in API order.
	ListJobs(ctx context.Context, projectID, environmentID int) ([]models.Job, error)

	// GetJob returns a single job definition by id.
	GetJob(ctx context.Context, jobID int64) (models.Job, error)

	// TriggerJobRun starts a new run of the given job and returns the run
	// record the API created for it.
	TriggerJobRun(ctx context.Context, jobID int64, req models.TriggerRunRequest) (models.Run, error)

	// GetRun returns the current state of a single run.
	GetRun(ctx context.Context, runID int64) (models.Run, error)

	// ListRuns returns up to limit most recent runs of the given
	// environment, newest first.
	ListRuns(ctx context.Context, environmentID, limit int) ([]models.Run, error)

	// ListRunArtifacts returns the artifact paths available for a completed
	// run (e.g. "manifest.json", "run_results.json").
	ListRunArtifacts(ctx context.Context, runID int64) ([]string, error)

	// GetRunArtifact downloads one artifact of a completed run as raw bytes.
	GetRunArtifact(ctx context.Context, runID int64, path string) ([]byte, error)
}
