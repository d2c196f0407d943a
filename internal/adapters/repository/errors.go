package repository

import "errors"

var (
	// ErrEmptyPool is returned by reads before the first Replace.
	ErrEmptyPool = errors.New("player pool is empty")
	// ErrInvalidLimit rejects TopN calls with n <= 0.
	ErrInvalidLimit = errors.New("invalid ranking limit")
)
