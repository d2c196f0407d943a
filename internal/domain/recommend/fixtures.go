package recommend

import (
	"cmp"
	"maps"
	"slices"
)

const (
	neutralDifficulty = 3.0
	difficultyWeight  = 0.3
	multiFixtureBonus = 5.0
)

// GameweekMetrics rates one gameweek for chip use. Lower DifficultyScore is
// better.
type GameweekMetrics struct {
	Gameweek                  int
	DifficultyScore           float64
	TeamsWithMultipleFixtures int
	AvgFixtureDifficulty      float64
}

// Chips holds the best gameweeks for each chip, best first.
type Chips struct {
	Gameweek      int
	BenchBoost    []GameweekMetrics
	TripleCaptain []GameweekMetrics
}

// FixtureCounts counts fixtures per team for every gameweek from onward.
// Fixtures without a gameweek are ignored. The result maps gameweek to team
// to fixture count; a count above one marks a double gameweek.
func FixtureCounts(fixtures []Fixture, from int) map[int]map[int]int {
	out := make(map[int]map[int]int)
	for _, f := range fixtures {
		if f.Event <= 0 || f.Event < from {
			continue
		}
		gw := out[f.Event]
		if gw == nil {
			gw = make(map[int]int)
			out[f.Event] = gw
		}
		gw[f.Home]++
		gw[f.Away]++
	}
	return out
}

// GameweekDifficulty rates gameweek gw. counts is that gameweek's row from
// FixtureCounts. The average is taken per team first, then across teams; a
// gameweek with no fixtures reads as neutral.
func GameweekDifficulty(gw int, counts map[int]int, fixtures []Fixture) GameweekMetrics {
	faced := make(map[int][]int)
	for _, f := range fixtures {
		if f.Event != gw {
			continue
		}
		faced[f.Home] = append(faced[f.Home], f.HomeDifficulty)
		faced[f.Away] = append(faced[f.Away], f.AwayDifficulty)
	}

	avg := neutralDifficulty
	if len(faced) > 0 {
		var sum float64
		for _, team := range slices.Sorted(maps.Keys(faced)) {
			sum += mean(faced[team])
		}
		avg = sum / float64(len(faced))
	}

	multi := 0
	for _, n := range counts {
		if n > 1 {
			multi++
		}
	}
	return GameweekMetrics{
		Gameweek:                  gw,
		DifficultyScore:           round2(avg*difficultyWeight - float64(multi)*multiFixtureBonus),
		TeamsWithMultipleFixtures: multi,
		AvgFixtureDifficulty:      round2(avg),
	}
}

// Chips picks up to n gameweeks for each chip from the current gameweek on.
// Bench Boost prefers the most teams with extra fixtures, then the easiest
// average. Triple Captain prefers the lowest difficulty score. Ties keep
// gameweek order.
func (r *Recommender) Chips(s Season, n int) (Chips, error) {
	if n <= 0 {
		return Chips{}, ErrInvalidLimit
	}
	if len(s.Fixtures) == 0 {
		return Chips{}, ErrNoFixtures
	}
	current := s.Gameweek()
	counts := FixtureCounts(s.Fixtures, current)

	metrics := make([]GameweekMetrics, 0, len(counts))
	for _, gw := range slices.Sorted(maps.Keys(counts)) {
		metrics = append(metrics, GameweekDifficulty(gw, counts[gw], s.Fixtures))
	}

	bench := slices.Clone(metrics)
	slices.SortStableFunc(bench, func(a, b GameweekMetrics) int {
		return cmp.Or(
			cmp.Compare(b.TeamsWithMultipleFixtures, a.TeamsWithMultipleFixtures),
			cmp.Compare(a.AvgFixtureDifficulty, b.AvgFixtureDifficulty),
		)
	})
	triple := slices.Clone(metrics)
	slices.SortStableFunc(triple, func(a, b GameweekMetrics) int {
		return cmp.Compare(a.DifficultyScore, b.DifficultyScore)
	})

	return Chips{
		Gameweek:      current,
		BenchBoost:    bench[:min(n, len(bench))],
		TripleCaptain: triple[:min(n, len(triple))],
	}, nil
}

// UpcomingDifficulty averages the difficulty team faces over its next
// horizon unfinished fixtures from gameweek from on. It is neutral when the
// team has none.
func UpcomingDifficulty(fixtures []Fixture, team, from, horizon int) float64 {
	var next []Fixture
	for _, f := range fixtures {
		if f.Finished || f.Event <= 0 || f.Event < from {
			continue
		}
		if f.Home == team || f.Away == team {
			next = append(next, f)
		}
	}
	if len(next) == 0 || horizon <= 0 {
		return neutralDifficulty
	}
	slices.SortStableFunc(next, func(a, b Fixture) int {
		return cmp.Or(cmp.Compare(a.Event, b.Event), cmp.Compare(a.ID, b.ID))
	})
	next = next[:min(horizon, len(next))]

	faced := make([]int, len(next))
	for i, f := range next {
		if f.Home == team {
			faced[i] = f.HomeDifficulty
		} else {
			faced[i] = f.AwayDifficulty
		}
	}
	return mean(faced)
}

func mean(xs []int) float64 {
	var sum int
	for _, x := range xs {
		sum += x
	}
	return float64(sum) / float64(len(xs))
}
