// Package cli implements the offline draft tool behind cmd/draft.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/okian/squadraft/internal/adapters/provider"
	service "github.com/okian/squadraft/internal/app"
	"github.com/okian/squadraft/internal/domain/draft"
	"github.com/okian/squadraft/internal/domain/types"
	"github.com/okian/squadraft/pkg/logger"
)

// Run drafts according to cfg and writes the result to out. Local pools
// (-pool, -fpl) are drafted with engine; -server delegates to a running
// server and ignores engine.
func Run(ctx context.Context, cfg *Config, engine *draft.Engine, out io.Writer) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	log := logger.Get().Named("cli")

	if cfg.Server != "" {
		return runRemote(ctx, cfg, out)
	}

	p := provider.New(source(cfg),
		provider.WithEligibleStatuses(cfg.Eligible),
		provider.WithLogger(log),
	)
	players, err := p.Load(ctx)
	if err != nil {
		return fmt.Errorf("load pool from %s: %w", p.Name(), err)
	}
	log.Debug(ctx, "pool loaded",
		logger.String("pool_source", p.Name()),
		logger.Int("players", len(players)),
	)

	svc := service.New(service.WithEngine(engine), service.WithLogger(log))
	if cfg.Compare {
		results, err := svc.ComparePool(ctx, players)
		if err != nil {
			return err
		}
		squads := make([]types.Squad, 0, len(results))
		for _, r := range results {
			squads = append(squads, r.View())
		}
		return renderComparison(out, types.NewComparison(squads), cfg.JSON)
	}

	res, err := svc.DraftPool(ctx, players, cfg.Strategy)
	if err != nil {
		return err
	}
	return renderSquad(out, res.View(), cfg.JSON)
}

func source(cfg *Config) provider.Source {
	if cfg.PoolFile != "" {
		return provider.NewFileSource(cfg.PoolFile)
	}
	return provider.NewHTTPSource(cfg.FPLURL, provider.WithTimeout(cfg.Timeout))
}

func runRemote(ctx context.Context, cfg *Config, out io.Writer) error {
	c := NewClient(cfg.Server, cfg.Timeout)
	if cfg.Compare {
		cmp, err := c.Compare(ctx)
		if err != nil {
			return err
		}
		return renderComparison(out, cmp, cfg.JSON)
	}
	sq, err := c.Draft(ctx, cfg.Strategy)
	if err != nil {
		return err
	}
	return renderSquad(out, sq, cfg.JSON)
}
