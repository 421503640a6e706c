// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The dbtbridge Authors

package models

// APIStatus is the status envelope the dbt Cloud Administrative API wraps
// around every JSON response body.
type APIStatus struct {
	Code        int    `json:"code"`
	IsSuccess   bool   `json:"is_success"`
	UserMessage string `json:"user_message,omitempty"`
}

// JobsResponse is the envelope of the jobs list endpoint.
type JobsResponse struct {
	Status APIStatus `json:"status"`
	Data   []Job     `json:"data"`
}

// JobResponse is the envelope of the single-job endpoint.
type JobResponse struct {
	Status APIStatus `json:"status"`
	Data   Job       `json:"data"`
}

// RunsResponse is the envelope of the runs list endpoint.
type RunsResponse struct {
	Status APIStatus `json:"status"`
	Data   []Run     `json:"data"`
}

// RunResponse is the envelope of the single-run and trigger endpoints.
type RunResponse struct {
	Status APIStatus `json:"status"`
	Data   Run       `json:"data"`
}

// RunArtifactsResponse is the envelope of the run artifact index endpoint.
// Data lists the artifact paths available for download (e.g. "manifest.json").
type RunArtifactsResponse struct {
	Status APIStatus `json:"status"`
	Data   []string  `json:"data"`
}
