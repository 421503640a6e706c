// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The dbtbridge Authors

package models

import (
	"context"
	"time"
)

// AssetKey identifies a single asset in the orchestration host's asset graph.
// For dbt Cloud assets the key is the dbt node name (e.g. "stg_orders").
type AssetKey string

// AssetSpec describes one externally-computed asset: its key, upstream
// dependencies, and presentation metadata. Specs produced by the asset-spec
// loader are passed through to the definitions bundle unmodified.
type AssetSpec struct {
	// Key is the unique asset identifier inside the bundle.
	Key AssetKey `json:"key"`

	// Deps lists the keys of upstream assets this asset depends on.
	// Only dependencies that are themselves part of the bundle are listed.
	Deps []AssetKey `json:"deps,omitempty"`

	// Description is the human-readable description taken from the dbt node.
	Description string `json:"description,omitempty"`

	// Group is the asset group name the host should present this asset under.
	Group string `json:"group,omitempty"`

	// Kinds carries compute/storage kind tags (e.g. "dbt", "model").
	Kinds []string `json:"kinds,omitempty"`

	// Metadata holds free-form key/value pairs attached to the asset
	// (dbt unique id, package name, and similar).
	Metadata map[string]string `json:"metadata,omitempty"`
}

// MaterializeFunc triggers a remote materialization and returns a lazy,
// single-pass sequence of run events. The sequence is not restartable: the
// caller consumes it synchronously, in order, until the channel is closed.
type MaterializeFunc func(ctx context.Context) (<-chan RunEvent, error)

// AssetGroup is a set of assets materialized together by a single delegated
// remote job. The group itself is the unit of execution; individual specs are
// informational.
type AssetGroup struct {
	// Name is the fixed name of the group inside the bundle.
	Name string `json:"name"`

	// Specs lists the assets belonging to the group, when known.
	Specs []AssetSpec `json:"specs,omitempty"`

	// Materialize delegates the group's materialization to the remote
	// service and forwards its execution events back to the caller.
	Materialize MaterializeFunc `json:"-"`
}

// PollFunc is one cursor-advancing pass of a polling sensor. It returns the
// events observed since the previous pass.
type PollFunc func(ctx context.Context) ([]RunEvent, error)

// SensorSpec describes a polling sensor: a named poll function the host
// invokes on a fixed interval to sync remote run history.
type SensorSpec struct {
	// Name is the sensor name inside the bundle.
	Name string `json:"name"`

	// Description is shown by the host next to the sensor.
	Description string `json:"description,omitempty"`

	// Interval is the minimum delay between two poll invocations.
	Interval time.Duration `json:"interval"`

	// Poll performs one polling pass.
	Poll PollFunc `json:"-"`
}

// Definitions is the bundle returned by a component's BuildDefs call. The
// host consumes it as-is; the bundle holds no behavior of its own.
type Definitions struct {
	// Assets are the read-only (external) asset specs of the bundle.
	Assets []AssetSpec `json:"assets,omitempty"`

	// AssetGroups are the materializable asset groups of the bundle.
	AssetGroups []AssetGroup `json:"asset_groups,omitempty"`

	// Sensors are the polling sensors of the bundle.
	Sensors []SensorSpec `json:"sensors,omitempty"`

	// Resources maps fixed resource names to the values backing them
	// (e.g. the workspace handle under "dbt_cloud").
	Resources map[string]any `json:"-"`
}
