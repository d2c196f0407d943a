package cli

import "errors"

// Sentinel errors for the draft tool.
var (
	ErrNoSource    = errors.New("one of -pool, -fpl or -server is required")
	ErrManySources = errors.New("-pool, -fpl and -server are mutually exclusive")
	ErrRemote      = errors.New("remote draft failed")
)
