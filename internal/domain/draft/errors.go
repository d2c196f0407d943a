package draft

import "errors"

// Sentinel error kinds for the draft engine.
var (
	ErrUnknownStrategy   = errors.New("unknown strategy")
	ErrDuplicateStrategy = errors.New("strategy already registered")
	ErrDuplicatePlayer   = errors.New("duplicate player name")
	ErrInvalidRules      = errors.New("invalid draft rules")
)
