package recommend

import "errors"

// Sentinel error kinds for recommendations.
var (
	ErrInvalidLimit = errors.New("recommendation limit must be positive")
	ErrNoFixtures   = errors.New("season has no fixtures")
)
