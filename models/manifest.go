// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The dbtbridge Authors

package models

// Manifest is the subset of a dbt manifest.json artifact needed to build the
// asset graph: the compiled nodes and their dependency edges.
type Manifest struct {
	Nodes   map[string]ManifestNode `json:"nodes"`
	Sources map[string]ManifestNode `json:"sources,omitempty"`
}

// ManifestNode is one compiled dbt node (model, seed, snapshot, test, ...).
type ManifestNode struct {
	UniqueID     string `json:"unique_id"`
	Name         string `json:"name"`
	ResourceType string `json:"resource_type"`
	PackageName  string `json:"package_name,omitempty"`
	Description  string `json:"description,omitempty"`

	DependsOn ManifestDeps `json:"depends_on"`
}

// ManifestDeps lists the upstream node ids of a manifest node.
type ManifestDeps struct {
	Nodes []string `json:"nodes,omitempty"`
}
