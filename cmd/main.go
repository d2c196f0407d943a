package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/okian/squadraft/internal/adapters/http/api"
	"github.com/okian/squadraft/internal/adapters/http/swagger"
	"github.com/okian/squadraft/internal/adapters/provider"
	service "github.com/okian/squadraft/internal/app"
	"github.com/okian/squadraft/internal/config"
	"github.com/okian/squadraft/pkg/logger"
	"github.com/okian/squadraft/pkg/metrics"
)

// HTTP server timeout constants.
const (
	readTimeout           = 10 * time.Second
	writeTimeout          = 30 * time.Second
	idleTimeout           = 60 * time.Second
	readHeaderTimeout     = 5 * time.Second
	shutdownTimeout       = 30 * time.Second
	systemMetricsInterval = 10 * time.Second
)

func main() {
	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return
	}
	if err := logger.Init(logger.WithFormat(cfg.LogFormat), logger.WithLevel(cfg.LogLevel)); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}
	log := logger.Get()

	svc, err := newService(cfg, log)
	if err != nil {
		log.Error(ctx, "failed to build service", logger.Error(err))
		return
	}
	if err := svc.Start(ctx); err != nil {
		log.Error(ctx, "failed to start service", logger.Error(err))
		return
	}
	defer svc.Stop()

	// A failed initial load leaves an empty pool; POST /pool/refresh retries.
	if sum, err := svc.RefreshPool(ctx); err != nil {
		log.Warn(ctx, "initial pool load failed", logger.Error(err))
	} else {
		log.Info(ctx, "initial pool loaded",
			logger.String("pool_source", sum.Source),
			logger.Int("players", sum.Count),
		)
	}

	go startSystemMetricsUpdater(ctx)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           newMux(svc, cfg, log),
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		log.Info(ctx, "starting HTTP server", logger.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error(ctx, "HTTP server failed", logger.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	log.Info(context.Background(), "shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(shutdownCtx, "server shutdown failed", logger.Error(err))
	}
	log.Info(shutdownCtx, "server stopped")
}

// newSource picks the pool file when configured, the FPL API otherwise.
func newSource(cfg *config.Config) provider.Source {
	if cfg.PoolFile != "" {
		var opts []provider.FileOption
		if cfg.FixturesFile != "" {
			opts = append(opts, provider.WithFixturesFile(cfg.FixturesFile))
		}
		return provider.NewFileSource(cfg.PoolFile, opts...)
	}
	return provider.NewHTTPSource(cfg.FPLBaseURL,
		provider.WithTimeout(time.Duration(cfg.FPLTimeoutMS)*time.Millisecond),
		provider.WithRateLimit(cfg.FPLRequestsPerSecond),
	)
}

func newService(cfg *config.Config, log logger.Logger) (*service.Service, error) {
	engine, err := cfg.Engine()
	if err != nil {
		return nil, err
	}
	loader := provider.New(newSource(cfg),
		provider.WithEligibleStatuses(cfg.EligibleStatuses),
		provider.WithLogger(log.Named("provider")),
	)
	return service.New(
		service.WithLogger(log.Named("service")),
		service.WithEngine(engine),
		service.WithLoader(loader),
		service.WithSeasonLoader(loader),
		service.WithRecommender(cfg.Recommender()),
		service.WithSeasonTTL(cfg.SeasonTTL()),
		service.WithCompareStrategies(cfg.CompareStrategies),
	), nil
}

func newMux(svc *service.Service, cfg *config.Config, log logger.Logger) *http.ServeMux {
	mux := http.NewServeMux()
	swagger.Register(mux)
	api.NewServer(svc,
		api.WithEligibleStatuses(cfg.EligibleStatuses),
		api.WithLogger(log.Named("api")),
	).Register(mux)
	return mux
}

// startSystemMetricsUpdater samples runtime metrics until ctx is done.
func startSystemMetricsUpdater(ctx context.Context) {
	ticker := time.NewTicker(systemMetricsInterval)
	defer ticker.Stop()

	metrics.UpdateSystemMetrics()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			metrics.UpdateSystemMetrics()
		}
	}
}
