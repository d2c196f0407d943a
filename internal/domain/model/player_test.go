package model_test

import (
	"encoding/json"
	"errors"
	"testing"

	model "github.com/okian/squadraft/internal/domain/model"
	"github.com/shopspring/decimal"
	"github.com/smartystreets/goconvey/convey"
)

func TestPlayerRecord(t *testing.T) {
	convey.Convey("Given a player record decoded from JSON", t, func() {
		convey.Convey("When numeric fields are well formed", func() {
			var r model.PlayerRecord
			err := json.Unmarshal([]byte(`{"id":7,"name":"Saka","price":100,"position":"MID","team":"ARS","value_stat":"45.6"}`), &r)
			convey.So(err, convey.ShouldBeNil)

			p, err := r.Player()

			convey.Convey("Then the player should carry the coerced values", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(p.ID, convey.ShouldEqual, 7)
				convey.So(p.Name, convey.ShouldEqual, "Saka")
				convey.So(p.Price, convey.ShouldEqual, 100)
				convey.So(p.Position, convey.ShouldEqual, model.Midfielder)
				convey.So(p.Team, convey.ShouldEqual, "ARS")
				convey.So(p.ValueStat, convey.ShouldAlmostEqual, 45.6, 1e-9)
				convey.So(p.Cost().Equal(decimal.RequireFromString("10.0")), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When numeric fields are malformed", func() {
			var r model.PlayerRecord
			err := json.Unmarshal([]byte(`{"id":8,"name":"Nobody","price":"n/a","position":"FWD","team":"XYZ","value_stat":null}`), &r)
			convey.So(err, convey.ShouldBeNil)

			p, err := r.Player()

			convey.Convey("Then they should be coerced to zero", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(p.Price, convey.ShouldEqual, 0)
				convey.So(p.ValueStat, convey.ShouldEqual, 0.0)
			})
		})

		convey.Convey("When numeric fields are negative", func() {
			r := model.PlayerRecord{ID: 9, Name: "Neg", Price: -5, Position: "DEF", ValueStat: -1}
			p, err := r.Player()

			convey.Convey("Then they should be clamped to zero", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(p.Price, convey.ShouldEqual, 0)
				convey.So(p.ValueStat, convey.ShouldEqual, 0.0)
			})
		})

		convey.Convey("When numeric fields are out of range", func() {
			var r model.PlayerRecord
			err := json.Unmarshal([]byte(`{"id":10,"name":"Huge","price":1e20,"position":"GKP","team":"BIG","value_stat":-1e20}`), &r)
			convey.So(err, convey.ShouldBeNil)

			p, err := r.Player()

			convey.Convey("Then the price should be treated as malformed", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(p.Price, convey.ShouldEqual, 0)
				convey.So(p.ValueStat, convey.ShouldEqual, 0.0)
			})
		})

		convey.Convey("When the price is fractional", func() {
			var r model.PlayerRecord
			err := json.Unmarshal([]byte(`{"name":"Frac","price":"45.9","position":"MID"}`), &r)
			convey.So(err, convey.ShouldBeNil)

			p, err := r.Player()

			convey.Convey("Then it should be rounded to the nearest tenth", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(p.Price, convey.ShouldEqual, 46)
			})
		})

		convey.Convey("When the name is blank", func() {
			_, err := model.PlayerRecord{ID: 1, Position: "GKP"}.Player()

			convey.Convey("Then it should be rejected", func() {
				convey.So(errors.Is(err, model.ErrMissingName), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When the position is unknown", func() {
			_, err := model.PlayerRecord{ID: 1, Name: "X", Position: "COACH"}.Player()

			convey.Convey("Then it should be rejected", func() {
				convey.So(errors.Is(err, model.ErrUnknownPosition), convey.ShouldBeTrue)
			})
		})
	})
}

func TestPlayersFromRecords(t *testing.T) {
	convey.Convey("Given a list with one bad record", t, func() {
		records := []model.PlayerRecord{
			{ID: 1, Name: "A", Position: "GKP", Price: 45},
			{ID: 2, Name: "B", Position: "??", Price: 45},
		}

		_, err := model.PlayersFromRecords(records)

		convey.Convey("Then conversion should fail with the record index", func() {
			convey.So(err, convey.ShouldNotBeNil)
			convey.So(err.Error(), convey.ShouldContainSubstring, "record 1")
		})
	})
}

func TestParsePosition(t *testing.T) {
	convey.Convey("Given the accepted position spellings", t, func() {
		cases := map[string]model.Position{
			"GOALKEEPER": model.Goalkeeper,
			"gkp":        model.Goalkeeper,
			"GK":         model.Goalkeeper,
			"1":          model.Goalkeeper,
			"Defender":   model.Defender,
			"2":          model.Defender,
			"MID":        model.Midfielder,
			" fwd ":      model.Forward,
			"4":          model.Forward,
		}

		convey.Convey("Then each should parse to the right position", func() {
			for in, want := range cases {
				got, err := model.ParsePosition(in)
				convey.So(err, convey.ShouldBeNil)
				convey.So(got, convey.ShouldEqual, want)
			}
		})

		convey.Convey("And element type 5 should be rejected", func() {
			_, err := model.ParsePosition("5")
			convey.So(errors.Is(err, model.ErrUnknownPosition), convey.ShouldBeTrue)
		})

		convey.Convey("And positions should render full and short names", func() {
			convey.So(model.Forward.String(), convey.ShouldEqual, "FORWARD")
			convey.So(model.Forward.Short(), convey.ShouldEqual, "FWD")
			convey.So(model.Position(9).String(), convey.ShouldEqual, "UNKNOWN")
		})
	})
}

func TestMoney(t *testing.T) {
	convey.Convey("Given amounts in tenths", t, func() {
		convey.So(model.Money(1000).String(), convey.ShouldEqual, "100")
		convey.So(model.Money(85).String(), convey.ShouldEqual, "8.5")
		convey.So(model.Tenths(decimal.RequireFromString("31.5")), convey.ShouldEqual, 315)
		convey.So(model.Tenths(decimal.NewFromFloat(100.0)), convey.ShouldEqual, 1000)
	})
}

func TestNumberTenths(t *testing.T) {
	convey.Convey("Given lenient numbers", t, func() {
		cases := map[string]int{
			`45`:         45,
			`"45.4"`:     45,
			`45.5`:       46,
			`-3`:         0,
			`-1e20`:      0,
			`1e20`:       0,
			`2147483647`: model.MaxTenths,
			`2147483648`: 0,
			`"junk"`:     0,
		}

		convey.Convey("Then each should coerce to a bounded price", func() {
			for raw, want := range cases {
				var n model.Number
				convey.So(json.Unmarshal([]byte(raw), &n), convey.ShouldBeNil)
				convey.So(n.Tenths(), convey.ShouldEqual, want)
			}
		})
	})
}
