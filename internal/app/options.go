package service

import (
	"time"

	"github.com/okian/squadraft/internal/adapters/repository"
	"github.com/okian/squadraft/internal/domain/draft"
	"github.com/okian/squadraft/internal/domain/recommend"
	"github.com/okian/squadraft/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithEngine sets the draft engine.
func WithEngine(e *draft.Engine) Option {
	return func(s *Service) {
		if e != nil {
			s.engine = e
		}
	}
}

// WithStore sets the pool store. A custom store keeps its own scorer, so
// /pool/top may rank differently from the engine unless they match.
func WithStore(st repository.Store) Option {
	return func(s *Service) {
		if st != nil {
			s.store = st
		}
	}
}

// WithLoader sets where RefreshPool reads players from.
func WithLoader(l PoolLoader) Option {
	return func(s *Service) {
		if l != nil {
			s.loader = l
		}
	}
}

// WithCompareStrategies sets the strategies run by Compare. Empty means all
// registered strategies.
func WithCompareStrategies(names []string) Option {
	return func(s *Service) {
		s.compare = append([]string(nil), names...)
	}
}

// WithIDGenerator overrides run id generation.
func WithIDGenerator(fn func() string) Option {
	return func(s *Service) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// WithSeasonLoader sets where recommendations read season data from.
func WithSeasonLoader(l SeasonLoader) Option {
	return func(s *Service) {
		if l != nil {
			s.seasons = l
		}
	}
}

// WithRecommender replaces the default recommender.
func WithRecommender(r *recommend.Recommender) Option {
	return func(s *Service) {
		if r != nil {
			s.recommender = r
		}
	}
}

// WithSeasonTTL sets how long loaded season data is reused. Zero reloads on
// every request.
func WithSeasonTTL(d time.Duration) Option {
	return func(s *Service) {
		if d >= 0 {
			s.seasonTTL = d
		}
	}
}
