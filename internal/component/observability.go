// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The dbtbridge Authors

package component

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dbtbridge/dbtbridge/internal/config"
	"github.com/dbtbridge/dbtbridge/internal/dbtcloud"
	"github.com/dbtbridge/dbtbridge/internal/logger"
	"github.com/dbtbridge/dbtbridge/models"
)

const defaultRequestTimeout = 30 * time.Second

// ObservabilityComponent exposes a dbt Cloud environment read-only: its
// definitions bundle contains the externally-computed asset specs of the
// environment plus the run-status polling sensor. Nothing in the bundle can
// trigger remote work.
type ObservabilityComponent struct {
	AccountID     int
	AccessURL     string
	Token         string
	ProjectID     int
	EnvironmentID int

	// SensorInterval overrides the polling sensor's default interval when
	// positive.
	SensorInterval time.Duration

	// RequestTimeout bounds every outbound dbt Cloud API request.
	RequestTimeout time.Duration

	loader  AssetSpecLoader
	sensors SensorBuilder
	logger  *logger.Logger
}

// NewObservabilityComponent builds the component from its configuration
// record.
func NewObservabilityComponent(cfg config.DBTCloud, log *logger.Logger) *ObservabilityComponent {
	sdk := defaultSDK{}
	return &ObservabilityComponent{
		AccountID:     cfg.AccountID,
		AccessURL:     cfg.AccessURL,
		Token:         cfg.Token,
		ProjectID:     cfg.ProjectID,
		EnvironmentID: cfg.EnvironmentID,
		loader:        sdk,
		sensors:       sdk,
		logger:        log,
	}
}

// BuildDefs implements [Component]. It validates the required configuration
// fields, builds the credentials and workspace values, and assembles the
// bundle from the asset-spec loader and the polling-sensor builder. The
// loaded specs and the sensor are returned unmodified and unfiltered; any
// loader failure propagates uncaught.
func (c *ObservabilityComponent) BuildDefs(ctx context.Context) (models.Definitions, error) {
	if missing := missingParams(c.AccountID, c.Token, c.ProjectID, c.EnvironmentID); len(missing) > 0 {
		return models.Definitions{}, fmt.Errorf("%w: [%s]", ErrMissingParams, strings.Join(missing, ", "))
	}

	ws, err := c.workspace()
	if err != nil {
		return models.Definitions{}, err
	}

	assetSpecs, err := c.loader.LoadAssetSpecs(ctx, ws)
	if err != nil {
		return models.Definitions{}, err
	}

	sensor := c.sensors.BuildPollingSensor(ws, c.SensorInterval)

	return models.Definitions{
		Assets:  assetSpecs,
		Sensors: []models.SensorSpec{sensor},
	}, nil
}

func (c *ObservabilityComponent) workspace() (*dbtcloud.Workspace, error) {
	creds := dbtcloud.NewCredentials(c.AccountID, c.Token, c.AccessURL)

	timeout := c.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	return dbtcloud.NewWorkspace(creds, c.ProjectID, c.EnvironmentID, timeout, c.logger)
}

// missingParams returns the names of the required configuration fields that
// are empty or zero, in declaration order.
func missingParams(accountID int, token string, projectID, environmentID int) []string {
	missing := make([]string, 0, 4)
	if accountID == 0 {
		missing = append(missing, "account_id")
	}
	if token == "" {
		missing = append(missing, "token")
	}
	if projectID == 0 {
		missing = append(missing, "project_id")
	}
	if environmentID == 0 {
		missing = append(missing, "environment_id")
	}
	return missing
}
