// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The dbtbridge Authors

package models

// Job is a dbt Cloud job definition scoped to a project/environment pair.
type Job struct {
	ID            int64    `json:"id"`
	AccountID     int      `json:"account_id"`
	ProjectID     int      `json:"project_id"`
	EnvironmentID int      `json:"environment_id"`
	Name          string   `json:"name"`
	ExecuteSteps  []string `json:"execute_steps,omitempty"`
	State         int      `json:"state,omitempty"`
}

// TriggerRunRequest is the payload of the job trigger endpoint.
type TriggerRunRequest struct {
	// Cause is the human-readable trigger reason shown in the dbt Cloud run
	// history. Required by the API.
	Cause string `json:"cause"`

	// GitBranch optionally overrides the branch the run checks out.
	GitBranch string `json:"git_branch,omitempty"`
}
