package component

import "errors"

var (
	// ErrMissingParams is returned by the observability component when one
	// or more required configuration fields are empty or zero. The error
	// message lists exactly the missing field names.
	ErrMissingParams = errors.New("missing required dbt cloud parameters")
)
