// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The dbtbridge Authors

package config

// validate checks that the final merged [Config] satisfies all bridge-level
// invariants before it is used at startup.
//
// The per-component required-field validation (account id, token, project id,
// environment id) is deliberately not performed here: it is part of the
// observability component's contract and happens when its definitions are
// built.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *Config) validate() error {
	if cfg.Component != ComponentObservability && cfg.Component != ComponentOrchestration {
		return ErrInvalidComponentKind
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Workers.PollInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
