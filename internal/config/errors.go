package config

import "errors"

// Validation errors returned by [Config.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidComponentKind indicates an unknown component kind
	// (neither "observability" nor "orchestration").
	ErrInvalidComponentKind = errors.New("invalid component kind")
	// ErrInvalidServerConfigs indicates invalid introspection server
	// settings (for example, missing HTTP address or request timeout).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, negative poll interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
