package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dbtbridge/dbtbridge/internal/logger"
	"github.com/dbtbridge/dbtbridge/internal/utils"
	"github.com/dbtbridge/dbtbridge/models"
	"github.com/go-resty/resty/v2"
)

type httpCloudAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPCloudAdapter constructs an HTTP/REST implementation of
// [CloudAdapter] for one dbt Cloud account. It normalises and validates
// accessURL, scopes the underlying HTTP client to
// {accessURL}/api/v2/accounts/{accountID}, and attaches the service token to
// every request via the Authorization header.
//
// Returns an error if accessURL is empty or cannot be parsed as a valid URL.
func NewHTTPCloudAdapter(accountID int, accessURL, token string, timeout time.Duration, logger *logger.Logger) (CloudAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(accessURL)
	if err != nil {
		return nil, fmt.Errorf("invalid dbt cloud access url: %w", err)
	}

	client.
		SetBaseURL(baseURL + "/api/v2/accounts/" + strconv.Itoa(accountID)).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetHeader("Authorization", "Token "+strings.TrimSpace(token))

	return &httpCloudAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// ListJobs implements [CloudAdapter]. It GETs /jobs/ filtered by project and
// environment and decodes the enveloped job list.
func (h *httpCloudAdapter) ListJobs(ctx context.Context, projectID, environmentID int) ([]models.Job, error) {
	resp, err := h.request(ctx).
		SetQueryParam("project_id", strconv.Itoa(projectID)).
		SetQueryParam("environment_id", strconv.Itoa(environmentID)).
		Get("/jobs/")
	if err != nil {
		return nil, fmt.Errorf("list jobs request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var envelope models.JobsResponse
	if err = json.Unmarshal(resp.Body(), &envelope); err != nil {
		return nil, fmt.Errorf("decode jobs response: %w", err)
	}

	return envelope.Data, nil
}

// GetJob implements [CloudAdapter]. It GETs /jobs/{id}/ and decodes the
// enveloped job record.
func (h *httpCloudAdapter) GetJob(ctx context.Context, jobID int64) (models.Job, error) {
	resp, err := h.request(ctx).Get(fmt.Sprintf("/jobs/%d/", jobID))
	if err != nil {
		return models.Job{}, fmt.Errorf("get job request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Job{}, err
	}

	var envelope models.JobResponse
	if err = json.Unmarshal(resp.Body(), &envelope); err != nil {
		return models.Job{}, fmt.Errorf("decode job response: %w", err)
	}

	return envelope.Data, nil
}

// TriggerJobRun implements [CloudAdapter]. It POSTs the trigger payload to
// /jobs/{id}/run/ and returns the run the API created. The cause field is
// required by the API; an empty cause is rejected server-side.
func (h *httpCloudAdapter) TriggerJobRun(ctx context.Context, jobID int64, req models.TriggerRunRequest) (models.Run, error) {
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post(fmt.Sprintf("/jobs/%d/run/", jobID))
	if err != nil {
		return models.Run{}, fmt.Errorf("trigger job run request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Run{}, err
	}

	var envelope models.RunResponse
	if err = json.Unmarshal(resp.Body(), &envelope); err != nil {
		return models.Run{}, fmt.Errorf("decode trigger run response: %w", err)
	}

	return envelope.Data, nil
}

// GetRun implements [CloudAdapter]. It GETs /runs/{id}/ and decodes the
// enveloped run record.
func (h *httpCloudAdapter) GetRun(ctx context.Context, runID int64) (models.Run, error) {
	resp, err := h.request(ctx).Get(fmt.Sprintf("/runs/%d/", runID))
	if err != nil {
		return models.Run{}, fmt.Errorf("get run request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Run{}, err
	}

	var envelope models.RunResponse
	if err = json.Unmarshal(resp.Body(), &envelope); err != nil {
		return models.Run{}, fmt.Errorf("decode run response: %w", err)
	}

	return envelope.Data, nil
}

// ListRuns implements [CloudAdapter]. It GETs /runs/ for the environment,
// newest first, capped at limit entries.
func (h *httpCloudAdapter) ListRuns(ctx context.Context, environmentID, limit int) ([]models.Run, error) {
	resp, err := h.request(ctx).
		SetQueryParam("environment_id", strconv.Itoa(environmentID)).
		SetQueryParam("order_by", "-id").
		SetQueryParam("limit", strconv.Itoa(limit)).
		Get("/runs/")
	if err != nil {
		return nil, fmt.Errorf("list runs request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var envelope models.RunsResponse
	if err = json.Unmarshal(resp.Body(), &envelope); err != nil {
		return nil, fmt.Errorf("decode runs response: %w", err)
	}

	return envelope.Data, nil
}

// ListRunArtifacts implements [CloudAdapter]. It GETs /runs/{id}/artifacts/
// and decodes the enveloped path list.
func (h *httpCloudAdapter) ListRunArtifacts(ctx context.Context, runID int64) ([]string, error) {
	resp, err := h.request(ctx).Get(fmt.Sprintf("/runs/%d/artifacts/", runID))
	if err != nil {
		return nil, fmt.Errorf("list run artifacts request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var envelope models.RunArtifactsResponse
	if err = json.Unmarshal(resp.Body(), &envelope); err != nil {
		return nil, fmt.Errorf("decode run artifacts response: %w", err)
	}

	return envelope.Data, nil
}

// GetRunArtifact implements [CloudAdapter]. It GETs
// /runs/{id}/artifacts/{path} and returns the artifact body as-is. Unlike
// the other endpoints, artifact downloads are not wrapped in the status
// envelope.
func (h *httpCloudAdapter) GetRunArtifact(ctx context.Context, runID int64, path string) ([]byte, error) {
	resp, err := h.request(ctx).Get(fmt.Sprintf("/runs/%d/artifacts/%s", runID, path))
	if err != nil {
		return nil, fmt.Errorf("get run artifact request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return resp.Body(), nil
}

func (h *httpCloudAdapter) request(ctx context.Context) *resty.Request {
	return h.client.R().SetContext(ctx)
}
