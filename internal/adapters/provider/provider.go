// Package provider loads the player pool from FPL bootstrap-static payloads
// and the season data used for recommendations.
package provider

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/okian/squadraft/internal/domain/model"
	"github.com/okian/squadraft/internal/domain/recommend"
	"github.com/okian/squadraft/pkg/logger"
)

// Provider turns a Source payload into players.
type Provider struct {
	source   Source
	eligible []string
	log      logger.Logger
}

// Option configures a Provider.
type Option func(*Provider)

// WithEligibleStatuses sets the availability codes that are kept.
func WithEligibleStatuses(statuses []string) Option {
	return func(p *Provider) {
		p.eligible = append([]string(nil), statuses...)
	}
}

// WithLogger sets the logger.
func WithLogger(l logger.Logger) Option {
	return func(p *Provider) {
		if l != nil {
			p.log = l
		}
	}
}

// New creates a Provider reading from source.
func New(source Source, opts ...Option) *Provider {
	p := &Provider{
		source:   source,
		eligible: []string{"a"},
		log:      logger.Nop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Name reports the underlying source name.
func (p *Provider) Name() string { return p.source.Name() }

// Load fetches and parses the pool.
func (p *Provider) Load(ctx context.Context) ([]model.Player, error) {
	start := time.Now()
	data, err := p.source.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	players, err := ParseAny(data, p.eligible)
	if err != nil {
		return nil, fmt.Errorf("%s source: %w", p.source.Name(), err)
	}
	p.log.Debug(ctx, "pool payload parsed",
		logger.String("pool_source", p.source.Name()),
		logger.Int("bytes", len(data)),
		logger.Int("players", len(players)),
		logger.Duration("took", time.Since(start)),
	)
	return players, nil
}

// LoadSeason fetches bootstrap-static and the fixture list in parallel and
// parses them for recommendations. Sources without fixtures fail with
// ErrNoFixtures.
func (p *Provider) LoadSeason(ctx context.Context) (recommend.Season, error) {
	fs, ok := p.source.(FixtureSource)
	if !ok {
		return recommend.Season{}, fmt.Errorf("%s source: %w", p.source.Name(), ErrNoFixtures)
	}
	start := time.Now()

	var boot, fixtures []byte
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		boot, err = p.source.Fetch(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		fixtures, err = fs.FetchFixtures(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return recommend.Season{}, err
	}

	season, err := ParseSeason(boot, fixtures, p.eligible)
	if err != nil {
		return recommend.Season{}, fmt.Errorf("%s source: %w", p.source.Name(), err)
	}
	p.log.Debug(ctx, "season payload parsed",
		logger.String("pool_source", p.source.Name()),
		logger.Int("gameweek", season.Gameweek()),
		logger.Int("players", len(season.Players)),
		logger.Int("fixtures", len(season.Fixtures)),
		logger.Duration("took", time.Since(start)),
	)
	return season, nil
}
