// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The dbtbridge Authors

// Package component defines the two declarative dbt Cloud components. Each
// component is constructed once from a static configuration record and has a
// single BuildDefs method that assembles a definitions bundle by delegating
// to the dbtcloud helpers. The components hold no state beyond their
// configuration fields and are not re-entrant.
package component

import (
	"context"
	"time"

	"github.com/dbtbridge/dbtbridge/internal/dbtcloud"
	"github.com/dbtbridge/dbtbridge/models"
)

// The mocks live in this package (not internal/mock) because their
// signatures mention dbtcloud types and the dbtcloud tests import
// internal/mock.
//go:generate mockgen -source=interfaces.go -destination=defs_builders_mock_test.go -package=component

// Component is a declarative configuration object that produces a
// definitions bundle for the orchestration host.
type Component interface {
	// BuildDefs assembles the component's definitions bundle. It is called
	// once per component instance, at definition-load time.
	BuildDefs(ctx context.Context) (models.Definitions, error)
}

// AssetSpecLoader computes the externally-defined asset specs of a
// workspace.
type AssetSpecLoader interface {
	LoadAssetSpecs(ctx context.Context, ws *dbtcloud.Workspace) ([]models.AssetSpec, error)
}

// SensorBuilder builds the run-status polling sensor of a workspace.
type SensorBuilder interface {
	BuildPollingSensor(ws *dbtcloud.Workspace, interval time.Duration) models.SensorSpec
}

// BuildTrigger starts a remote build and exposes its execution events as a
// lazy, single-pass stream.
type BuildTrigger interface {
	TriggerBuild(ctx context.Context, ws *dbtcloud.Workspace, cause string) (<-chan models.RunEvent, error)
}
