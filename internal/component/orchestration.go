// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The dbtbridge Authors

package component

import (
	"context"
	"time"

	"github.com/dbtbridge/dbtbridge/internal/config"
	"github.com/dbtbridge/dbtbridge/internal/dbtcloud"
	"github.com/dbtbridge/dbtbridge/internal/logger"
	"github.com/dbtbridge/dbtbridge/models"
)

const (
	// OrchestratedAssetsName is the fixed name of the single materializable
	// asset group the orchestration component declares.
	OrchestratedAssetsName = "dbt_cloud_orchestrated_assets"

	// WorkspaceResourceName is the fixed resource name the workspace is
	// registered under in the bundle.
	WorkspaceResourceName = "dbt_cloud"
)

// OrchestrationComponent lets the host trigger and schedule dbt Cloud builds.
// Its bundle always contains exactly one materializable asset group, the
// workspace as a named resource, and the run-status polling sensor.
type OrchestrationComponent struct {
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

	trigger BuildTrigger
	sensors SensorBuilder
	logger  *logger.Logger
}

// NewOrchestrationComponent builds the component from its configuration
// record.
func NewOrchestrationComponent(cfg config.DBTCloud, log *logger.Logger) *OrchestrationComponent {
	sdk := defaultSDK{}
	return &OrchestrationComponent{
		AccountID:     cfg.AccountID,
		AccessURL:     cfg.AccessURL,
		Token:         cfg.Token,
		ProjectID:     cfg.ProjectID,
		EnvironmentID: cfg.EnvironmentID,
		trigger:       sdk,
		sensors:       sdk,
		logger:        log,
	}
}

// BuildDefs implements [Component]. Unlike the observability component,
// required fields are not pre-validated: misconfiguration is logged here and
// otherwise surfaces as API errors at materialize time. The asset group's
// materialization is entirely delegated: invoking it triggers a remote build
// and forwards the run-event stream back to the caller as produced.
func (c *OrchestrationComponent) BuildDefs(ctx context.Context) (models.Definitions, error) {
	if missing := missingParams(c.AccountID, c.Token, c.ProjectID, c.EnvironmentID); len(missing) > 0 {
		c.logger.Warn().
			Strs("missing", missing).
			Msg("building orchestration defs with incomplete dbt cloud parameters")
	}

	ws, err := c.workspace()
	if err != nil {
		return models.Definitions{}, err
	}

	group := models.AssetGroup{
		Name: OrchestratedAssetsName,
		Materialize: func(mctx context.Context) (<-chan models.RunEvent, error) {
			return c.trigger.TriggerBuild(mctx, ws, dbtcloud.DefaultTriggerCause)
		},
	}

	sensor := c.sensors.BuildPollingSensor(ws, c.SensorInterval)

	return models.Definitions{
		AssetGroups: []models.AssetGroup{group},
		Sensors:     []models.SensorSpec{sensor},
		Resources:   map[string]any{WorkspaceResourceName: ws},
	}, nil
}

func (c *OrchestrationComponent) workspace() (*dbtcloud.Workspace, error) {
	creds := dbtcloud.NewCredentials(c.AccountID, c.Token, c.AccessURL)

	timeout := c.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	return dbtcloud.NewWorkspace(creds, c.ProjectID, c.EnvironmentID, timeout, c.logger)
}
