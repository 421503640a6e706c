// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The dbtbridge Authors

package dbtcloud

import (
	"testing"
	"time"

	"github.com/dbtbridge/dbtbridge/internal/logger"
	"github.com/dbtbridge/dbtbridge/internal/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestWorkspace wires a workspace to a mock API client with a fast poll
// interval, so streaming tests finish in milliseconds.
func newTestWorkspace(t *testing.T, ctrl *gomock.Controller) (*Workspace, *mock.MockCloudAdapter) {
	t.Helper()
	client := mock.NewMockCloudAdapter(ctrl)

	ws := &Workspace{
		Credentials:     Credentials{AccountID: 42, Token: "dbtc_test_token", AccessURL: defaultAccessURL},
		ProjectID:       2,
		EnvironmentID:   3,
		client:          client,
		runPollInterval: 5 * time.Millisecond,
		logger:          logger.Nop(),
	}
	return ws, client
}

// ── token resolution ─────────────────────────────────────────────────────────

func TestNewCredentials_SentinelResolvesFromEnv(t *testing.T) {
	t.Setenv(TokenEnvVar, "dbtc_from_env")

	creds := NewCredentials(42, TokenEnvSentinel, "")

	assert.Equal(t, "dbtc_from_env", creds.Token)
}

func TestNewCredentials_SentinelWithUnsetEnv(t *testing.T) {
	t.Setenv(TokenEnvVar, "")

	creds := NewCredentials(42, TokenEnvSentinel, "")

	// unset variable resolves to empty, not to the sentinel literal
	assert.Empty(t, creds.Token)
}

func TestNewCredentials_LiteralTokenUsedVerbatim(t *testing.T) {
	t.Setenv(TokenEnvVar, "dbtc_from_env")

	tests := []struct {
		name  string
		token string
	}{
		{name: "plain literal", token: "dbtc_literal"},
		// near-sentinels are matched by exact string equality only
		{name: "embedded sentinel", token: "prefix-${DBT_CLOUD_TOKEN}"},
		{name: "other variable reference", token: "${OTHER_TOKEN}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			creds := NewCredentials(42, tt.token, "")
			assert.Equal(t, tt.token, creds.Token)
		})
	}
}

func TestNewCredentials_AccessURLDefault(t *testing.T) {
	creds := NewCredentials(42, "t", "")
	assert.Equal(t, "https://cloud.getdbt.com", creds.AccessURL)

	creds = NewCredentials(42, "t", "https://emea.dbt.com")
	assert.Equal(t, "https://emea.dbt.com", creds.AccessURL)
}

// ── workspace construction ───────────────────────────────────────────────────

func TestNewWorkspace(t *testing.T) {
	creds := NewCredentials(42, "dbtc_test_token", "")

	ws, err := NewWorkspace(creds, 2, 3, 30*time.Second, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, creds, ws.Credentials)
	assert.Equal(t, 2, ws.ProjectID)
	assert.Equal(t, 3, ws.EnvironmentID)
	assert.NotNil(t, ws.client)
	assert.Equal(t, defaultRunPollInterval, ws.runPollInterval)
}
