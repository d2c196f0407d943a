package types_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/squadraft/internal/domain/draft"
	"github.com/okian/squadraft/internal/domain/model"
	"github.com/okian/squadraft/internal/domain/recommend"
	types "github.com/okian/squadraft/internal/domain/types"
)

func candidate(name string, pos model.Position, price int, score float64) draft.Candidate {
	return draft.Candidate{
		Player: model.Player{Name: name, Position: pos, Price: price, Team: "T", ValueStat: 1},
		Score:  score,
	}
}

func TestNewSquad(t *testing.T) {
	Convey("Given an engine squad", t, func() {
		sq := draft.Squad{
			Strategy:        "balanced",
			Members:         []draft.Candidate{candidate("A", model.Goalkeeper, 45, 2), candidate("B", model.Forward, 75, 3.5)},
			Budget:          decimal.RequireFromString("100"),
			RemainingBudget: decimal.RequireFromString("88"),
			TeamCounts:      map[string]int{"T": 2},
			PositionCounts:  map[model.Position]int{model.Goalkeeper: 1, model.Forward: 1},
			Shortfall:       map[model.Position]int{model.Goalkeeper: 1},
			Status:          draft.StatusPartial,
		}

		Convey("When converting it to a view", func() {
			view := types.NewSquad("run-1", sq, 1500*time.Microsecond)

			Convey("Then totals and codes should be filled", func() {
				So(view.RunID, ShouldEqual, "run-1")
				So(view.Status, ShouldEqual, "PARTIAL")
				So(view.Size, ShouldEqual, 2)
				So(view.Spent.String(), ShouldEqual, "12")
				So(view.TotalScore, ShouldEqual, 5.5)
				So(view.PositionCounts["FWD"], ShouldEqual, 1)
				So(view.Shortfall["GKP"], ShouldEqual, 1)
				So(view.Members[0].Price.String(), ShouldEqual, "4.5")
				So(view.Members[1].Position, ShouldEqual, "FWD")
				So(view.TookMS, ShouldEqual, 1.5)
			})
		})
	})
}

func TestNewComparison(t *testing.T) {
	Convey("Given squads from several strategies", t, func() {
		squads := []types.Squad{
			{Strategy: "balanced", Status: "COMPLETE", TotalScore: 10},
			{Strategy: "stars_and_scrubs", Status: "COMPLETE", TotalScore: 12},
			{Strategy: "greedy", Status: "PARTIAL", TotalScore: 50},
		}

		Convey("When comparing", func() {
			c := types.NewComparison(squads)

			Convey("Then the best complete squad should win", func() {
				So(c.Best, ShouldEqual, "stars_and_scrubs")
				So(c.Squads, ShouldHaveLength, 3)
			})
		})

		Convey("When no squad is complete", func() {
			c := types.NewComparison(squads[2:])

			Convey("Then no winner should be named", func() {
				So(c.Best, ShouldBeEmpty)
			})
		})
	})
}

func TestPositionCounts(t *testing.T) {
	Convey("Given a sparse position map", t, func() {
		out := types.PositionCounts(map[model.Position]int{model.Defender: 4})

		Convey("Then every position should be listed", func() {
			So(out, ShouldResemble, map[string]int{"GKP": 0, "DEF": 4, "MID": 0, "FWD": 0})
		})
	})
}

func TestNewRecommendations(t *testing.T) {
	Convey("Given ranked picks", t, func() {
		picks := []recommend.Pick{
			{
				Player:        recommend.Player{ID: 3, Name: "Salah", Position: model.Midfielder, Price: 130, Form: 7.5, TotalPoints: 160},
				Team:          recommend.Team{ID: 12, Name: "Liverpool", ShortName: "LIV"},
				AvgDifficulty: 3.67,
				Score:         32.5,
			},
			{Player: recommend.Player{Name: "Saka", Position: model.Midfielder, Price: 100}},
		}
		out := types.NewRecommendations(picks)

		Convey("Then ranks should start at 1 and prices should be in units", func() {
			So(out, ShouldHaveLength, 2)
			So(out[0].Rank, ShouldEqual, 1)
			So(out[1].Rank, ShouldEqual, 2)
			So(out[0].Price.String(), ShouldEqual, "13")
			So(out[0].Team, ShouldEqual, "Liverpool")
			So(out[0].Position, ShouldEqual, "MID")
			So(out[0].Points, ShouldEqual, 160)
		})
	})
}

func TestNewChipPlan(t *testing.T) {
	Convey("Given chip recommendations", t, func() {
		gw := recommend.GameweekMetrics{Gameweek: 3, DifficultyScore: -4, TeamsWithMultipleFixtures: 1, AvgFixtureDifficulty: 3.33}
		plan := types.NewChipPlan(recommend.Chips{
			Gameweek:      2,
			BenchBoost:    []recommend.GameweekMetrics{gw},
			TripleCaptain: []recommend.GameweekMetrics{gw},
		})

		Convey("Then every rating should be copied", func() {
			So(plan.CurrentGameweek, ShouldEqual, 2)
			So(plan.BenchBoost, ShouldResemble, []types.GameweekRating{{Gameweek: 3, DifficultyScore: -4, TeamsWithMultipleFixtures: 1, AvgFixtureDifficulty: 3.33}})
			So(plan.TripleCaptain, ShouldHaveLength, 1)
		})
	})
}
