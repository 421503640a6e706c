// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The dbtbridge Authors

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dbtbridge/dbtbridge/internal/logger"
	"github.com/dbtbridge/dbtbridge/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T, serverURL string) *httpCloudAdapter {
	t.Helper()
	log := logger.Nop()

	a, err := NewHTTPCloudAdapter(42, serverURL, "dbtc_test_token", 5*time.Second, log)
	require.NoError(t, err)
	return a.(*httpCloudAdapter)
}

func writeEnvelope(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

// ── NewHTTPCloudAdapter ──────────────────────────────────────────────────────

func TestNewHTTPCloudAdapter_EmptyURL(t *testing.T) {
	_, err := NewHTTPCloudAdapter(1, "", "t", time.Second, logger.Nop())
	require.Error(t, err)
}

func TestNewHTTPCloudAdapter_SchemeAdded(t *testing.T) {
	a, err := NewHTTPCloudAdapter(1, "cloud.getdbt.com", "t", time.Second, logger.Nop())
	require.NoError(t, err)
	assert.Contains(t, a.(*httpCloudAdapter).client.BaseURL, "https://cloud.getdbt.com")
}

// ── ListJobs ─────────────────────────────────────────────────────────────────

func TestListJobs_Success(t *testing.T) {
	want := []models.Job{{ID: 100, Name: "Daily build", ProjectID: 2, EnvironmentID: 3}}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v2/accounts/42/jobs/", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("project_id"))
		assert.Equal(t, "3", r.URL.Query().Get("environment_id"))
		assert.Equal(t, "Token dbtc_test_token", r.Header.Get("Authorization"))

		writeEnvelope(t, w, models.JobsResponse{
			Status: models.APIStatus{Code: 200, IsSuccess: true},
			Data:   want,
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.ListJobs(context.Background(), 2, 3)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestListJobs_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("invalid token"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.ListJobs(context.Background(), 2, 3)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

// ── TriggerJobRun ────────────────────────────────────────────────────────────

func TestTriggerJobRun_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v2/accounts/42/jobs/100/run/", r.URL.Path)

		var req models.TriggerRunRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Triggered via bridge", req.Cause)

		writeEnvelope(t, w, models.RunResponse{
			Status: models.APIStatus{Code: 200, IsSuccess: true},
			Data:   models.Run{ID: 555, JobID: 100, Status: models.RunQueued},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	run, err := a.TriggerJobRun(context.Background(), 100, models.TriggerRunRequest{Cause: "Triggered via bridge"})

	require.NoError(t, err)
	assert.Equal(t, int64(555), run.ID)
	assert.Equal(t, models.RunQueued, run.Status)
}

func TestTriggerJobRun_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("job not found"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.TriggerJobRun(context.Background(), 100, models.TriggerRunRequest{Cause: "x"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

// ── GetRun / ListRuns ────────────────────────────────────────────────────────

func TestGetRun_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/accounts/42/runs/555/", r.URL.Path)

		writeEnvelope(t, w, models.RunResponse{
			Data: models.Run{ID: 555, Status: models.RunSuccess},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	run, err := a.GetRun(context.Background(), 555)

	require.NoError(t, err)
	assert.True(t, run.Status.Terminal())
}

func TestListRuns_QueryParams(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/accounts/42/runs/", r.URL.Path)
		assert.Equal(t, "3", r.URL.Query().Get("environment_id"))
		assert.Equal(t, "-id", r.URL.Query().Get("order_by"))
		assert.Equal(t, "20", r.URL.Query().Get("limit"))

		writeEnvelope(t, w, models.RunsResponse{
			Data: []models.Run{{ID: 2}, {ID: 1}},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	runs, err := a.ListRuns(context.Background(), 3, 20)

	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, int64(2), runs[0].ID)
}

func TestListRuns_InternalServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("internal server error"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.ListRuns(context.Background(), 3, 20)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternalServerError)
}

// ── Artifacts ────────────────────────────────────────────────────────────────

func TestListRunArtifacts_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/accounts/42/runs/555/artifacts/", r.URL.Path)

		writeEnvelope(t, w, models.RunArtifactsResponse{
			Data: []string{"manifest.json", "run_results.json"},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	paths, err := a.ListRunArtifacts(context.Background(), 555)

	require.NoError(t, err)
	assert.Equal(t, []string{"manifest.json", "run_results.json"}, paths)
}

func TestGetRunArtifact_RawBody(t *testing.T) {
	manifest := []byte(`{"nodes":{}}`)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/accounts/42/runs/555/artifacts/manifest.json", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(manifest)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	body, err := a.GetRunArtifact(context.Background(), 555, "manifest.json")

	require.NoError(t, err)
	assert.Equal(t, manifest, body)
}

func TestGetRunArtifact_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("artifact not found"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.GetRunArtifact(context.Background(), 555, "manifest.json")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}
