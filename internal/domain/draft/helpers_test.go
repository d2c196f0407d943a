package draft_test

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/okian/squadraft/internal/domain/draft"
	"github.com/okian/squadraft/internal/domain/model"
)

var nextID int

func player(name string, pos model.Position, team string, price int, stat float64) model.Player {
	nextID++
	return model.Player{ID: nextID, Name: name, Price: price, Position: pos, Team: team, ValueStat: stat}
}

// exactPool has 2/5/5/3 players on distinct clubs, each inside the Balanced
// sub-budgets when bought together.
func exactPool() []model.Player {
	var out []model.Player
	for i := 0; i < 2; i++ {
		out = append(out, player(fmt.Sprintf("gk%d", i), model.Goalkeeper, fmt.Sprintf("T%d", i), 40, 10))
	}
	for i := 0; i < 5; i++ {
		out = append(out, player(fmt.Sprintf("def%d", i), model.Defender, fmt.Sprintf("T%d", 2+i), 45, 12))
	}
	for i := 0; i < 5; i++ {
		out = append(out, player(fmt.Sprintf("mid%d", i), model.Midfielder, fmt.Sprintf("T%d", 7+i), 60, 20))
	}
	for i := 0; i < 3; i++ {
		out = append(out, player(fmt.Sprintf("fwd%d", i), model.Forward, fmt.Sprintf("T%d", 12+i), 70, 25))
	}
	return out
}

// randomPool builds a seeded pool of n players spread over 20 clubs.
func randomPool(seed int64, n int) []model.Player {
	rng := rand.New(rand.NewSource(seed))
	out := make([]model.Player, 0, n)
	for i := 0; i < n; i++ {
		pos := model.Positions()[rng.Intn(4)]
		price := 38 + rng.Intn(100)
		stat := float64(rng.Intn(800)) / 10
		out = append(out, player(fmt.Sprintf("p%d", i), pos, fmt.Sprintf("C%02d", rng.Intn(20)), price, stat))
	}
	return out
}

func names(cs []draft.Candidate) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.Name
	}
	return out
}

// fillOnly runs the generic greedy fill with no premium phase.
type fillOnly struct{}

func (fillOnly) Name() string { return "fill_only" }

func (fillOnly) Allocate(a *draft.Allocation) {
	for _, pos := range model.Positions() {
		a.Fill(pos)
	}
}

// looseRules removes budget and club pressure so picks depend on score only.
func looseRules() draft.Rules {
	r := draft.DefaultRules()
	r.Budget = 1_000_000
	r.TeamCap = 1_000
	for _, pos := range model.Positions() {
		r.SubBudgets[pos] = 1_000_000
	}
	return r
}

func ctx() context.Context { return context.Background() }
