package scoring_test

import (
	"math"
	"testing"

	"github.com/okian/squadraft/internal/domain/model"
	scoring "github.com/okian/squadraft/internal/domain/scoring"
	. "github.com/smartystreets/goconvey/convey"
)

func TestValueScorer_Score(t *testing.T) {
	Convey("Given a default value scorer", t, func() {
		scorer := scoring.NewValueScorer()

		Convey("When scoring a priced player", func() {
			score := scorer.Score(scoring.Input{ValueStat: 30, Price: 60})

			Convey("Then it should be value squared over cost in units", func() {
				So(score, ShouldAlmostEqual, 900.0/6.0, 1e-9)
			})
		})

		Convey("When two players cost the same", func() {
			elite := scorer.Score(scoring.Input{ValueStat: 40, Price: 80})
			good := scorer.Score(scoring.Input{ValueStat: 20, Price: 80})

			Convey("Then doubling the stat should quadruple the score", func() {
				So(elite, ShouldAlmostEqual, good*4, 1e-9)
			})
		})

		Convey("When the price is zero and the stat is positive", func() {
			score := scorer.Score(scoring.Input{ValueStat: 1, Price: 0})

			Convey("Then the score should be very large but finite", func() {
				So(math.IsInf(score, 0), ShouldBeFalse)
				So(score, ShouldBeGreaterThan, 1e6)
			})
		})

		Convey("When both price and stat are zero", func() {
			score := scorer.Score(scoring.Input{ValueStat: 0, Price: 0})

			Convey("Then the score should be zero", func() {
				So(score, ShouldEqual, 0.0)
			})
		})

		Convey("When the stat is not a number", func() {
			So(scorer.Score(scoring.Input{ValueStat: math.NaN(), Price: 50}), ShouldEqual, 0.0)
			So(scorer.Score(scoring.Input{ValueStat: -3, Price: 50}), ShouldEqual, 0.0)
		})
	})

	Convey("Given a scorer with a custom epsilon", t, func() {
		scorer := scoring.NewValueScorer(scoring.WithEpsilon(0.5))

		Convey("Then free players should be divided by epsilon", func() {
			So(scorer.Score(scoring.Input{ValueStat: 2, Price: 0}), ShouldAlmostEqual, 8.0, 1e-9)
		})

		Convey("And invalid epsilons should be ignored", func() {
			s := scoring.NewValueScorer(scoring.WithEpsilon(-1))
			So(s.Score(scoring.Input{ValueStat: 2, Price: 20}), ShouldAlmostEqual, 2.0, 1e-9)
		})
	})
}

func TestScoreAll(t *testing.T) {
	Convey("Given a list of players", t, func() {
		players := []model.Player{
			{Name: "a", Price: 50, ValueStat: 10},
			{Name: "b", Price: 100, ValueStat: 10},
			{Name: "c", Price: 0, ValueStat: 0},
		}

		scores := scoring.ScoreAll(scoring.NewValueScorer(), players)

		Convey("Then scores should line up with the input order", func() {
			So(len(scores), ShouldEqual, 3)
			So(scores[0], ShouldAlmostEqual, 20.0, 1e-9)
			So(scores[1], ShouldAlmostEqual, 10.0, 1e-9)
			So(scores[2], ShouldEqual, 0.0)
		})
	})
}
