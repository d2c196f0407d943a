package repository

import (
	"time"

	"github.com/okian/squadraft/internal/domain/scoring"
)

// Option applies a configuration option to the PoolStore.
type Option func(*PoolStore)

// WithScorer sets the scorer used to rank the published snapshot.
func WithScorer(s scoring.Scorer) Option {
	return func(p *PoolStore) {
		if s != nil {
			p.scorer = s
		}
	}
}

// WithClock overrides time.Now for LoadedAt stamps.
func WithClock(now func() time.Time) Option {
	return func(p *PoolStore) {
		if now != nil {
			p.now = now
		}
	}
}
