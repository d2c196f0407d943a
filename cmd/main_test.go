package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/smartystreets/goconvey/convey"

	"github.com/okian/squadraft/internal/adapters/provider"
	"github.com/okian/squadraft/internal/config"
	"github.com/okian/squadraft/internal/domain/model"
	"github.com/okian/squadraft/pkg/logger"
)

func init() {
	if err := logger.Init(logger.WithLevel("error")); err != nil {
		panic(err)
	}
}

func TestNewSource(t *testing.T) {
	convey.Convey("Given a default config", t, func() {
		cfg := config.New()

		convey.Convey("Then the pool comes from the FPL API", func() {
			src := newSource(cfg)
			_, ok := src.(*provider.HTTPSource)
			convey.So(ok, convey.ShouldBeTrue)
			convey.So(src.Name(), convey.ShouldEqual, "http")
		})

		convey.Convey("When a pool file is configured", func() {
			cfg.PoolFile = "pool.json"

			convey.Convey("Then the file wins", func() {
				convey.So(newSource(cfg).Name(), convey.ShouldEqual, "file")
			})
		})
	})
}

func TestServerWiring(t *testing.T) {
	convey.Convey("Given a service fed by the bootstrap fixture", t, func() {
		ctx := context.Background()
		cfg := config.New()
		dir := filepath.Join("..", "internal", "adapters", "provider", "testdata")
		cfg.PoolFile = filepath.Join(dir, "bootstrap.json")
		cfg.FixturesFile = filepath.Join(dir, "fixtures.json")

		svc, err := newService(cfg, logger.Get())
		convey.So(err, convey.ShouldBeNil)
		convey.So(svc.Start(ctx), convey.ShouldBeNil)
		defer svc.Stop()

		sum, err := svc.RefreshPool(ctx)
		convey.So(err, convey.ShouldBeNil)
		convey.So(sum.Count, convey.ShouldEqual, 7)

		mux := newMux(svc, cfg, logger.Get())

		convey.Convey("Then every route is served", func() {
			for _, path := range []string{
				"/healthz", "/stats", "/strategies", "/pool", "/pool/top",
				"/draft", "/draft/compare", "/api-docs", "/openapi.yaml",
				"/recommendations/players", "/recommendations/chips",
			} {
				rec := httptest.NewRecorder()
				mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, http.NoBody))
				convey.So(rec.Code, convey.ShouldEqual, http.StatusOK)
			}
		})
	})

	convey.Convey("Given an engine with a custom score epsilon", t, func() {
		cfg := config.New()
		cfg.ScoreEpsilon = 1
		svc, err := newService(cfg, logger.Get())
		convey.So(err, convey.ShouldBeNil)

		convey.Convey("Then the pool ranking should use the same scorer", func() {
			_, err := svc.ReplacePool(context.Background(), []model.Player{
				{ID: 1, Name: "free", Position: model.Forward, Team: "A", ValueStat: 5},
				{ID: 2, Name: "paid", Price: 20, Position: model.Forward, Team: "B", ValueStat: 8},
			})
			convey.So(err, convey.ShouldBeNil)
			top, err := svc.TopPlayers(context.Background(), model.Forward, 1)
			convey.So(err, convey.ShouldBeNil)
			convey.So(top[0].Player.Name, convey.ShouldEqual, "paid")
		})
	})

	convey.Convey("Given a config with an unknown default strategy", t, func() {
		cfg := config.New()
		cfg.DefaultStrategy = "moneyball"

		convey.Convey("Then the service is not built", func() {
			_, err := newService(cfg, logger.Get())
			convey.So(err, convey.ShouldNotBeNil)
		})
	})
}

func TestSystemMetricsUpdater(t *testing.T) {
	convey.Convey("Given a short-lived context", t, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		convey.Convey("Then the updater returns when it is done", func() {
			done := make(chan struct{})
			go func() {
				startSystemMetricsUpdater(ctx)
				close(done)
			}()
			select {
			case <-done:
			case <-time.After(time.Second):
				t.Fatal("updater did not stop")
			}
		})
	})
}
