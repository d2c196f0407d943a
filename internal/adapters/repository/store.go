// Package repository holds the loaded player pool and its ranked views.
package repository

import (
	"context"
	"time"

	"github.com/okian/squadraft/internal/domain/model"
)

// Entry is one row of a per-position value ranking.
type Entry struct {
	Rank   int
	Player model.Player
	Score  float64
}

// Summary describes the currently loaded pool.
type Summary struct {
	Count      int
	Source     string
	LoadedAt   time.Time
	Version    uint64
	ByPosition map[model.Position]int
}

// Store provides read/write access to the player pool.
type Store interface {
	// Replace swaps the whole pool. The slice is copied.
	Replace(ctx context.Context, players []model.Player, source string) (Summary, error)

	// Players returns a private copy of the pool.
	// Returns ErrEmptyPool if nothing is loaded.
	Players(ctx context.Context) ([]model.Player, error)

	// Summary reports what is loaded; the zero Summary if nothing is.
	Summary(ctx context.Context) Summary

	// TopN returns the best-value players of a position, score desc.
	// PositionUnknown ranks across all positions.
	TopN(ctx context.Context, pos model.Position, n int) ([]Entry, error)

	// Count returns the number of players loaded.
	Count(ctx context.Context) int
}
