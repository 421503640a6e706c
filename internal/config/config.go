// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The dbtbridge Authors

package config

import (
	"time"
)

// Component kinds accepted by the bridge. The kind selects which of the two
// declarative components is built at startup.
const (
	ComponentObservability = "observability"
	ComponentOrchestration = "orchestration"
)

// DefaultAccessURL is the fixed vendor URL used when no access URL is
// configured.
const DefaultAccessURL = "https://cloud.getdbt.com"

// Defaults applied after all sources are merged.
const (
	defaultHTTPAddress    = "localhost:8090"
	defaultRequestTimeout = 30 * time.Second
	defaultPollInterval   = 30 * time.Second
)

// Config is the top-level configuration container for the dbt Cloud bridge.
// It aggregates all sub-configurations and is populated by merging values
// from environment variables, command-line flags, and an optional YAML
// component file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type Config struct {
	// DBTCloud holds the credentials and workspace identifiers of the
	// remote dbt Cloud account.
	DBTCloud DBTCloud `envPrefix:"DBT_CLOUD_"`

	// Server holds network address and timeout settings for the
	// introspection HTTP server.
	Server Server `envPrefix:"BRIDGE_SERVER_"`

	// Workers holds configuration for the background sensor jobs.
	Workers Workers `envPrefix:"BRIDGE_WORKERS_"`

	// Component selects which component the bridge builds at startup:
	// "observability" (default) or "orchestration".
	// Env: BRIDGE_COMPONENT
	Component string `env:"BRIDGE_COMPONENT"`

	// YAMLFilePath is the optional path to a YAML component file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the BRIDGE_CONFIG environment variable or the
	// -c / -config flag.
	YAMLFilePath string `env:"BRIDGE_CONFIG"`
}

// DBTCloud holds the configuration record of a dbt Cloud workspace. The
// record is constructed once at load time and is immutable thereafter.
type DBTCloud struct {
	// AccountID is the numeric dbt Cloud account identifier.
	// Env: DBT_CLOUD_ACCOUNT_ID
	AccountID int `env:"ACCOUNT_ID"`

	// AccessURL is the base URL of the dbt Cloud instance. Empty means
	// [DefaultAccessURL].
	// Env: DBT_CLOUD_ACCESS_URL
	AccessURL string `env:"ACCESS_URL"`

	// Token is the dbt Cloud service token. The literal sentinel value
	// "${DBT_CLOUD_TOKEN}" means "resolve from the DBT_CLOUD_TOKEN
	// environment variable at credentials-build time".
	// Env: DBT_CLOUD_TOKEN
	Token string `env:"TOKEN"`

	// ProjectID is the numeric dbt Cloud project identifier.
	// Env: DBT_CLOUD_PROJECT_ID
	ProjectID int `env:"PROJECT_ID"`

	// EnvironmentID is the numeric dbt Cloud environment identifier.
	// Env: DBT_CLOUD_ENVIRONMENT_ID
	EnvironmentID int `env:"ENVIRONMENT_ID"`
}

// Server holds network and timeout settings for the introspection HTTP
// server and for outbound dbt Cloud requests.
type Server struct {
	// HTTPAddress is the TCP address on which the introspection server
	// listens, in "host:port" format.
	// Env: BRIDGE_SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single outbound
	// dbt Cloud API request (e.g. "30s", "1m").
	// Env: BRIDGE_SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for the background sensor jobs.
type Workers struct {
	// PollInterval is the delay between two polling-sensor passes
	// (e.g. "30s", "2m").
	// Env: BRIDGE_WORKERS_POLL_INTERVAL
	PollInterval time.Duration `env:"POLL_INTERVAL"`
}

// GetConfig loads, merges, and validates the bridge configuration from all
// available sources in the following priority order (earlier sources win for
// non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. YAML component file (path resolved from sources 1 and 2)
//
// Returns a fully populated *Config or an error if any source fails to load
// or the final config fails validation.
func GetConfig() (*Config, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withYAML().
		build()
}
