// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The dbtbridge Authors

// Package dbtcloud holds the credentials and workspace values derived from a
// component's configuration record, plus the helpers the components delegate
// to: the asset-spec loader, the polling-sensor builder, and the build
// trigger with its run-event stream.
package dbtcloud

import (
	"os"
	"time"

	"github.com/dbtbridge/dbtbridge/internal/adapter"
	"github.com/dbtbridge/dbtbridge/internal/logger"
)

// Token sentinel handling. The sentinel is matched by exact string equality;
// any other literal token passes through unchanged.
const (
	// TokenEnvSentinel is the literal token value that means "resolve the
	// token from the environment".
	TokenEnvSentinel = "${DBT_CLOUD_TOKEN}"

	// TokenEnvVar is the environment variable the sentinel resolves from.
	TokenEnvVar = "DBT_CLOUD_TOKEN"
)

const defaultAccessURL = "https://cloud.getdbt.com"

const defaultRunPollInterval = 10 * time.Second

// Credentials authenticates against one dbt Cloud account. A Credentials
// value is derived 1:1 from the configuration record and is owned by the
// workspace that wraps it.
type Credentials struct {
	AccountID int
	Token     string
	AccessURL string
}

// NewCredentials builds a Credentials value from raw configuration fields.
// A token equal to [TokenEnvSentinel] is replaced with the current value of
// the [TokenEnvVar] environment variable; every other token is used
// verbatim. An empty accessURL falls back to the fixed vendor URL.
func NewCredentials(accountID int, token, accessURL string) Credentials {
	if token == TokenEnvSentinel {
		token = os.Getenv(TokenEnvVar)
	}
	if accessURL == "" {
		accessURL = defaultAccessURL
	}

	return Credentials{
		AccountID: accountID,
		Token:     token,
		AccessURL: accessURL,
	}
}

// Workspace combines credentials with the project/environment pair they are
// scoped to. It carries the API handle used by the loader, sensor, and
// trigger helpers; it holds no run state of its own.
type Workspace struct {
	Credentials   Credentials
	ProjectID     int
	EnvironmentID int

	client          adapter.CloudAdapter
	runPollInterval time.Duration
	logger          *logger.Logger
}

// NewWorkspace constructs a workspace and its underlying API client.
// Returns an error if the credentials' access URL is invalid.
func NewWorkspace(creds Credentials, projectID, environmentID int, timeout time.Duration, log *logger.Logger) (*Workspace, error) {
	client, err := adapter.NewHTTPCloudAdapter(creds.AccountID, creds.AccessURL, creds.Token, timeout, log)
	if err != nil {
		return nil, err
	}

	return &Workspace{
		Credentials:     creds,
		ProjectID:       projectID,
		EnvironmentID:   environmentID,
		client:          client,
		runPollInterval: defaultRunPollInterval,
		logger:          log,
	}, nil
}
