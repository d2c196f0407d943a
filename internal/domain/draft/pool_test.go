package draft_test

import (
	"errors"
	"testing"

	"github.com/okian/squadraft/internal/domain/draft"
	"github.com/okian/squadraft/internal/domain/model"
	"github.com/okian/squadraft/internal/domain/scoring"
	. "github.com/smartystreets/goconvey/convey"
)

func TestPool(t *testing.T) {
	Convey("Given a pool of defenders", t, func() {
		players := []model.Player{
			player("low", model.Defender, "A", 50, 5),
			player("high", model.Defender, "B", 50, 20),
			player("tieA", model.Defender, "C", 50, 10),
			player("tieB", model.Defender, "D", 50, 10),
			player("keeper", model.Goalkeeper, "E", 45, 10),
		}
		pool, err := draft.NewPool(players, scoring.NewValueScorer())
		So(err, ShouldBeNil)

		Convey("Then candidates should be ranked by score with ties in input order", func() {
			So(names(pool.Available(model.Defender)), ShouldResemble, []string{"high", "tieA", "tieB", "low"})
			So(names(pool.Available(model.Goalkeeper)), ShouldResemble, []string{"keeper"})
			So(pool.Len(), ShouldEqual, 5)
		})

		Convey("When a player is removed", func() {
			So(pool.Remove("tieA"), ShouldBeTrue)

			Convey("Then it should vanish from the ranked view", func() {
				So(pool.Contains("tieA"), ShouldBeFalse)
				So(names(pool.Available(model.Defender)), ShouldResemble, []string{"high", "tieB", "low"})
				So(pool.Len(), ShouldEqual, 4)
			})

			Convey("And removing it again should report false", func() {
				So(pool.Remove("tieA"), ShouldBeFalse)
				So(pool.Remove("ghost"), ShouldBeFalse)
				So(pool.Len(), ShouldEqual, 4)
			})
		})

		Convey("When the pool is cloned", func() {
			clone := pool.Clone()
			clone.Remove("high")

			Convey("Then the original should be unaffected", func() {
				So(pool.Contains("high"), ShouldBeTrue)
				So(clone.Contains("high"), ShouldBeFalse)
			})
		})

		Convey("When walking and removing at the same time", func() {
			var seen []string
			pool.Each(model.Defender, func(c draft.Candidate) bool {
				seen = append(seen, c.Name)
				pool.Remove(c.Name)
				return len(seen) < 2
			})

			Convey("Then the walk should stop when asked", func() {
				So(seen, ShouldResemble, []string{"high", "tieA"})
				So(names(pool.Available(model.Defender)), ShouldResemble, []string{"tieB", "low"})
			})
		})

		Convey("And the input slice should not be modified", func() {
			pool.Remove("high")
			So(players[1].Name, ShouldEqual, "high")
		})
	})

	Convey("Given two players with the same name", t, func() {
		players := []model.Player{
			player("dup", model.Forward, "A", 50, 5),
			player("dup", model.Forward, "B", 60, 5),
		}

		_, err := draft.NewPool(players, scoring.NewValueScorer())

		Convey("Then the pool should be rejected", func() {
			So(errors.Is(err, draft.ErrDuplicatePlayer), ShouldBeTrue)
		})
	})
}

func TestChecker(t *testing.T) {
	Convey("Given a checker with a team cap of 3 and an empty squad", t, func() {
		checker := draft.Checker{TeamCap: 3}
		state := draft.NewState(100)

		Convey("Then a player costing exactly the budget should be addable", func() {
			So(checker.IsAddable(player("x", model.Forward, "A", 100, 1), state), ShouldBeTrue)
		})

		Convey("Then a player costing more than the budget should not", func() {
			So(checker.IsAddable(player("y", model.Forward, "A", 101, 1), state), ShouldBeFalse)
		})

		Convey("Then a player with a negative price should not", func() {
			So(checker.IsAddable(player("z", model.Forward, "A", -1, 1), state), ShouldBeFalse)
		})
	})

	Convey("Given a midfield-only draft with a 10.0 budget", t, func() {
		rules := draft.DefaultRules()
		rules.Budget = 100
		rules.Quotas[model.Midfielder] = 10

		engine, err := draft.NewEngine(draft.WithRules(rules), draft.WithRegistry(mustRegistry(fillOnly{})), draft.WithDefaultStrategy("fill_only"))
		So(err, ShouldBeNil)

		Convey("Then budget and club limits should both apply", func() {
			players := []model.Player{
				player("a", model.Midfielder, "ARS", 20, 50),
				player("b", model.Midfielder, "ARS", 20, 40),
				player("c", model.Midfielder, "ARS", 20, 30),
				player("d", model.Midfielder, "ARS", 20, 20),
				player("e", model.Midfielder, "CHE", 45, 10),
				player("f", model.Midfielder, "LIV", 40, 9),
			}
			squad, err := engine.Draft(ctx(), players, "")
			So(err, ShouldBeNil)
			// a, b, c fill ARS; d is capped; e does not fit the 4.0 left; f does.
			So(names(squad.Members), ShouldResemble, []string{"a", "b", "c", "f"})
			So(squad.RemainingBudget.String(), ShouldEqual, "0")
			So(squad.TeamCounts["ARS"], ShouldEqual, 3)
		})
	})
}

func mustRegistry(s ...draft.Strategy) *draft.Registry {
	r, err := draft.NewRegistry(s...)
	if err != nil {
		panic(err)
	}
	return r
}
