package provider

import "errors"

// Sentinel error kinds for this package.
var (
	ErrFetch        = errors.New("provider: fetch failed")
	ErrStatus       = errors.New("provider: unexpected status")
	ErrDecode       = errors.New("provider: decode failed")
	ErrEmptyPayload = errors.New("provider: empty payload")
	ErrNoFixtures   = errors.New("provider: no fixtures source")
)
