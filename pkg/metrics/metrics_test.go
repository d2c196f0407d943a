package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	. "github.com/smartystreets/goconvey/convey"
)

// find returns the metric family with the given fully qualified name.
func find(reg *prometheus.Registry, name string) *dto.MetricFamily {
	families, err := reg.Gather()
	So(err, ShouldBeNil)
	for _, f := range families {
		if f.GetName() == name {
			return f
		}
	}
	return nil
}

// labelled returns the metric whose labels match all given pairs.
func labelled(f *dto.MetricFamily, pairs map[string]string) *dto.Metric {
	if f == nil {
		return nil
	}
	for _, m := range f.GetMetric() {
		hits := 0
		for _, lp := range m.GetLabel() {
			if v, ok := pairs[lp.GetName()]; ok && v == lp.GetValue() {
				hits++
			}
		}
		if hits == len(pairs) {
			return m
		}
	}
	return nil
}

func TestMetricsManagerCreation(t *testing.T) {
	Convey("Given metrics manager creation", t, func() {
		Convey("When creating with default options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(WithRegistry(registry))

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
				So(manager.namespace, ShouldEqual, "squadraft")
				So(manager.subsystem, ShouldBeEmpty)
			})
		})

		Convey("When creating with custom options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace("test"),
				WithSubsystem("unit"),
				WithLatencyBuckets([]float64{1, 10}),
				WithConstLabels(map[string]string{"env": "test"}),
				WithRegistry(registry),
			)
			manager.RecordDraftError("unknown_strategy")

			Convey("Then metric names and labels should reflect them", func() {
				f := find(registry, "test_unit_draft_errors_total")
				So(f, ShouldNotBeNil)
				m := labelled(f, map[string]string{"env": "test", "reason": "unknown_strategy"})
				So(m, ShouldNotBeNil)
				So(m.GetCounter().GetValue(), ShouldEqual, 1)
			})
		})

		Convey("When two managers share a registry", func() {
			registry := prometheus.NewRegistry()
			NewManager(WithRegistry(registry))

			Convey("Then registration should panic on duplicates", func() {
				So(func() { NewManager(WithRegistry(registry)) }, ShouldPanic)
			})
		})
	})
}

func TestMetricsRecording(t *testing.T) {
	Convey("Given a manager on a private registry", t, func() {
		registry := prometheus.NewRegistry()
		manager := NewManager(WithRegistry(registry))

		Convey("When recording draft runs", func() {
			manager.RecordDraft("balanced", StatusComplete, 1.5, 15, 18.5)
			manager.RecordDraft("balanced", StatusPartial, 0.5, 12, 3)
			manager.UpdateShortfall("balanced", "FWD", 3)

			Convey("Then counters should be split by status", func() {
				f := find(registry, "squadraft_drafts_total")
				complete := labelled(f, map[string]string{"strategy": "balanced", "status": StatusComplete})
				partial := labelled(f, map[string]string{"strategy": "balanced", "status": StatusPartial})
				So(complete.GetCounter().GetValue(), ShouldEqual, 1)
				So(partial.GetCounter().GetValue(), ShouldEqual, 1)
			})

			Convey("Then gauges should hold the last run", func() {
				size := labelled(find(registry, "squadraft_squad_size"), map[string]string{"strategy": "balanced"})
				budget := labelled(find(registry, "squadraft_squad_remaining_budget"), map[string]string{"strategy": "balanced"})
				short := labelled(find(registry, "squadraft_squad_shortfall"), map[string]string{"position": "FWD"})
				So(size.GetGauge().GetValue(), ShouldEqual, 12)
				So(budget.GetGauge().GetValue(), ShouldEqual, 3)
				So(short.GetGauge().GetValue(), ShouldEqual, 3)
			})

			Convey("Then latency should be observed per run", func() {
				h := labelled(find(registry, "squadraft_draft_latency_milliseconds"), map[string]string{"strategy": "balanced"})
				So(h.GetHistogram().GetSampleCount(), ShouldEqual, 2)
				So(h.GetHistogram().GetSampleSum(), ShouldEqual, 2.0)
			})
		})

		Convey("When recording pool refreshes", func() {
			manager.RecordPoolRefresh("file", ResultSuccess, 3, 1700000000)
			manager.RecordPoolRefresh("http", ResultFailure, 7, 1800000000)
			manager.UpdatePoolPlayers("MID", 42)
			manager.RecordProviderRequest("200")

			Convey("Then only successful refreshes move the timestamp", func() {
				last := find(registry, "squadraft_pool_last_refresh_unix")
				So(last.GetMetric()[0].GetGauge().GetValue(), ShouldEqual, 1700000000)
			})

			Convey("Then refresh counters and pool gauges should be set", func() {
				failed := labelled(find(registry, "squadraft_pool_refresh_total"), map[string]string{"source": "http", "result": ResultFailure})
				So(failed.GetCounter().GetValue(), ShouldEqual, 1)
				mid := labelled(find(registry, "squadraft_pool_players"), map[string]string{"position": "MID"})
				So(mid.GetGauge().GetValue(), ShouldEqual, 42)
				req := labelled(find(registry, "squadraft_provider_requests_total"), map[string]string{"status_code": "200"})
				So(req.GetCounter().GetValue(), ShouldEqual, 1)
			})
		})

		Convey("When recording HTTP and error metrics", func() {
			manager.RecordHTTPRequest("/draft", "GET", "200", 4)
			manager.RecordErrorByComponent("provider", "decode")
			manager.RecordErrorByEndpoint("/draft", "GET", "bad_request")
			manager.UpdateSystemMetrics()

			Convey("Then each family should be exported", func() {
				So(find(registry, "squadraft_http_requests_total"), ShouldNotBeNil)
				So(find(registry, "squadraft_http_request_duration_milliseconds"), ShouldNotBeNil)
				So(find(registry, "squadraft_errors_by_component_total"), ShouldNotBeNil)
				So(find(registry, "squadraft_errors_by_endpoint_total"), ShouldNotBeNil)
				g := find(registry, "squadraft_system_goroutine_count")
				So(g.GetMetric()[0].GetGauge().GetValue(), ShouldBeGreaterThan, 0)
			})
		})
	})
}

func TestGlobalHelpers(t *testing.T) {
	Convey("Given the global manager", t, func() {
		Convey("When calling the package level helpers", func() {
			Convey("Then none of them should panic", func() {
				So(func() {
					RecordDraft("stars_and_scrubs", StatusComplete, 0.2, 15, 1.0)
					UpdateShortfall("stars_and_scrubs", "GKP", 0)
					RecordDraftError("empty_pool")
					UpdatePoolPlayers("GKP", 10)
					RecordPoolRefresh("file", ResultSuccess, 1, 1)
					RecordProviderRequest("503")
					RecordHTTPRequest("/healthz", "GET", "200", 0.1)
					RecordErrorByComponent("api", "encode")
					RecordErrorByEndpoint("/pool", "POST", "bad_request")
					UpdateSystemMetrics()
				}, ShouldNotPanic)
				So(GetRegistry(), ShouldNotBeNil)
			})
		})
	})
}
