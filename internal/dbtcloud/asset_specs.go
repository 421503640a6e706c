// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The dbtbridge Authors

package dbtcloud

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/dbtbridge/dbtbridge/models"
)

// assetSpecRunLookback caps how many recent runs are inspected when looking
// for the latest successful one.
const assetSpecRunLookback = 20

// manifestArtifactPath is the artifact the asset graph is derived from.
const manifestArtifactPath = "manifest.json"

// assetResourceTypes are the dbt resource types that become assets.
var assetResourceTypes = map[string]struct{}{
	"model":    {},
	"seed":     {},
	"snapshot": {},
}

// LoadAssetSpecs computes the external asset specs of the workspace's
// environment. It locates the most recent successful run, downloads its
// manifest artifact, and maps every model, seed, and snapshot node to an
// [models.AssetSpec] with intra-dbt dependency edges.
//
// Failures of the underlying API calls propagate unmodified.
func LoadAssetSpecs(ctx context.Context, ws *Workspace) ([]models.AssetSpec, error) {
	runs, err := ws.client.ListRuns(ctx, ws.EnvironmentID, assetSpecRunLookback)
	if err != nil {
		return nil, err
	}

	var manifestRun *models.Run
	for i := range runs {
		if runs[i].Status == models.RunSuccess {
			manifestRun = &runs[i]
			break // runs are newest first
		}
	}
	if manifestRun == nil {
		return nil, fmt.Errorf("%w: environment %d", ErrNoCompletedRuns, ws.EnvironmentID)
	}

	raw, err := ws.client.GetRunArtifact(ctx, manifestRun.ID, manifestArtifactPath)
	if err != nil {
		return nil, err
	}

	var manifest models.Manifest
	if err = json.Unmarshal(raw, &manifest); err != nil {
		return nil, fmt.Errorf("decode manifest artifact: %w", err)
	}

	return manifestToAssetSpecs(manifest), nil
}

// manifestToAssetSpecs maps manifest nodes to asset specs. Dependencies that
// are not themselves assets (tests, macros, sources) are dropped from the
// edge list.
func manifestToAssetSpecs(manifest models.Manifest) []models.AssetSpec {
	assetNodes := make(map[string]models.ManifestNode, len(manifest.Nodes))
	for uniqueID, node := range manifest.Nodes {
		if _, ok := assetResourceTypes[node.ResourceType]; ok {
			assetNodes[uniqueID] = node
		}
	}

	specs := make([]models.AssetSpec, 0, len(assetNodes))
	for uniqueID, node := range assetNodes {
		var deps []models.AssetKey
		for _, depID := range node.DependsOn.Nodes {
			if dep, ok := assetNodes[depID]; ok {
				deps = append(deps, models.AssetKey(dep.Name))
			}
		}
		sort.Slice(deps, func(i, j int) bool { return deps[i] < deps[j] })

		specs = append(specs, models.AssetSpec{
			Key:         models.AssetKey(node.Name),
			Deps:        deps,
			Description: node.Description,
			Group:       node.PackageName,
			Kinds:       []string{"dbt", node.ResourceType},
			Metadata: map[string]string{
				"dbt_unique_id": uniqueID,
				"dbt_package":   node.PackageName,
			},
		})
	}

	sort.Slice(specs, func(i, j int) bool { return specs[i].Key < specs[j].Key })

	return specs
}
