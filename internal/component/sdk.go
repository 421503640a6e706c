package component

import (
	"context"
	"time"

	"github.com/dbtbridge/dbtbridge/internal/dbtcloud"
	"github.com/dbtbridge/dbtbridge/models"
)

// defaultSDK forwards the component interfaces to the dbtcloud package.
type defaultSDK struct{}

func (defaultSDK) LoadAssetSpecs(ctx context.Context, ws *dbtcloud.Workspace) ([]models.AssetSpec, error) {
	return dbtcloud.LoadAssetSpecs(ctx, ws)
}

func (defaultSDK) BuildPollingSensor(ws *dbtcloud.Workspace, interval time.Duration) models.SensorSpec {
	return dbtcloud.BuildPollingSensor(ws, interval)
}

func (defaultSDK) TriggerBuild(ctx context.Context, ws *dbtcloud.Workspace, cause string) (<-chan models.RunEvent, error) {
	return dbtcloud.TriggerBuild(ctx, ws, cause)
}
