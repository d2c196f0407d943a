package config

import "errors"

// Errors returned by Load and Validate; the offending key is wrapped in.
var (
	ErrInvalidConfig = errors.New("config: invalid value")
	ErrLoadConfig    = errors.New("config: cannot load")
)
