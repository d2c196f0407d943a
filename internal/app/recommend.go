package service

import (
	"context"
	"fmt"
	"time"

	"github.com/okian/squadraft/internal/domain/model"
	"github.com/okian/squadraft/internal/domain/recommend"
	"github.com/okian/squadraft/pkg/logger"
)

const defaultSeasonTTL = 10 * time.Minute

// SeasonLoader fetches the season data behind recommendations.
type SeasonLoader interface {
	LoadSeason(ctx context.Context) (recommend.Season, error)
}

type seasonSnapshot struct {
	season   recommend.Season
	loadedAt time.Time
}

// RecommendPlayers ranks transfer targets at pos (PositionUnknown for all).
func (s *Service) RecommendPlayers(ctx context.Context, pos model.Position, limit int) ([]recommend.Pick, error) {
	season, err := s.season(ctx)
	if err != nil {
		return nil, err
	}
	return s.recommender.Players(season, pos, limit)
}

// RecommendChips picks the best gameweeks for Bench Boost and Triple Captain.
func (s *Service) RecommendChips(ctx context.Context, count int) (recommend.Chips, error) {
	season, err := s.season(ctx)
	if err != nil {
		return recommend.Chips{}, err
	}
	return s.recommender.Chips(season, count)
}

// season returns the cached season, reloading it once it is older than the
// TTL. Concurrent reloads share one fetch.
func (s *Service) season(ctx context.Context) (recommend.Season, error) {
	if s.seasons == nil {
		return recommend.Season{}, ErrNoSeasonLoader
	}
	if season, ok := s.cachedSeason(); ok {
		return season, nil
	}

	v, err, _ := s.seasonGroup.Do("season", func() (any, error) {
		if season, ok := s.cachedSeason(); ok {
			return season, nil
		}
		start := time.Now()
		season, err := s.seasons.LoadSeason(context.WithoutCancel(ctx))
		if err != nil {
			s.log().Warn(ctx, "season load failed", logger.Error(err))
			return nil, fmt.Errorf("%w: %w", ErrSeason, err)
		}
		s.seasonCache.Store(&seasonSnapshot{season: season, loadedAt: time.Now()})
		s.log().Info(ctx, "season loaded",
			logger.Int("gameweek", season.Gameweek()),
			logger.Int("players", len(season.Players)),
			logger.Int("fixtures", len(season.Fixtures)),
			logger.Duration("took", time.Since(start)),
		)
		return season, nil
	})
	if err != nil {
		return recommend.Season{}, err
	}
	return v.(recommend.Season), nil
}

func (s *Service) cachedSeason() (recommend.Season, bool) {
	snap := s.seasonCache.Load()
	if snap == nil || time.Since(snap.loadedAt) >= s.seasonTTL {
		return recommend.Season{}, false
	}
	return snap.season, true
}
