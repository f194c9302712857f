package config

import "errors"

var (
	// ErrInvalidConfig indicates a malformed or incomplete configuration:
	// syntax errors, unknown keys, wrong value types or missing required
	// entries. The wrapped message names the offending key.
	ErrInvalidConfig = errors.New("config: invalid configuration")
)
