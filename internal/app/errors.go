package service

import (
	"errors"

	"github.com/okian/squadraft/internal/adapters/repository"
)

// Sentinel error kinds for the service.
var (
	// ErrEmptyPool is returned when a draft has no players to pick from.
	ErrEmptyPool = repository.ErrEmptyPool
	// ErrNoProvider is returned by RefreshPool when no loader is configured.
	ErrNoProvider = errors.New("no pool provider configured")
	// ErrRefresh wraps loader failures.
	ErrRefresh = errors.New("pool refresh failed")
	// ErrNoSeasonLoader is returned by recommendations when no season
	// loader is configured.
	ErrNoSeasonLoader = errors.New("no season loader configured")
	// ErrSeason wraps season load failures.
	ErrSeason = errors.New("season load failed")
)
