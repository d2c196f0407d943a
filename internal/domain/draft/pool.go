package draft

import (
	"fmt"
	"sort"

	"github.com/okian/squadraft/internal/domain/model"
	"github.com/okian/squadraft/internal/domain/scoring"
)

// Candidate is a player with its value score for this run.
type Candidate struct {
	model.Player
	Score float64
}

// Pool is a per-run arena of candidates. Players are stored once in input
// order; removal flips a bit found through the name index, so it is O(1)
// and never disturbs the ranked views.
type Pool struct {
	arena     []Candidate
	byName    map[string]int
	removed   []bool
	ranked    map[model.Position][]int // arena indexes, score desc, stable
	remaining int
}

// NewPool copies players into a private arena, scores every one once and
// ranks each position by score, keeping input order on ties.
func NewPool(players []model.Player, scorer scoring.Scorer) (*Pool, error) {
	p := &Pool{
		arena:   make([]Candidate, len(players)),
		byName:  make(map[string]int, len(players)),
		removed: make([]bool, len(players)),
		ranked:  make(map[model.Position][]int, len(model.Positions())),
	}
	for i, pl := range players {
		if _, dup := p.byName[pl.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicatePlayer, pl.Name)
		}
		p.byName[pl.Name] = i
		p.arena[i] = Candidate{Player: pl, Score: scorer.Score(scoring.InputFor(pl))}
		if pl.Position.Valid() {
			p.ranked[pl.Position] = append(p.ranked[pl.Position], i)
		}
	}
	for _, idx := range p.ranked {
		sort.SliceStable(idx, func(a, b int) bool {
			return p.arena[idx[a]].Score > p.arena[idx[b]].Score
		})
	}
	p.remaining = len(players)
	return p, nil
}

// Len returns the number of players still available.
func (p *Pool) Len() int { return p.remaining }

// Contains reports whether name is still available.
func (p *Pool) Contains(name string) bool {
	i, ok := p.byName[name]
	return ok && !p.removed[i]
}

// Remove takes name out of the pool. It returns false if the player was
// unknown or already removed.
func (p *Pool) Remove(name string) bool {
	i, ok := p.byName[name]
	if !ok || p.removed[i] {
		return false
	}
	p.removed[i] = true
	p.remaining--
	return true
}

// Each visits the available candidates of pos in rank order until fn
// returns false. Removing players during the walk is allowed.
func (p *Pool) Each(pos model.Position, fn func(Candidate) bool) {
	for _, i := range p.ranked[pos] {
		if p.removed[i] {
			continue
		}
		if !fn(p.arena[i]) {
			return
		}
	}
}

// Available returns the candidates of pos still in the pool, in rank order.
func (p *Pool) Available(pos model.Position) []Candidate {
	var out []Candidate
	p.Each(pos, func(c Candidate) bool {
		out = append(out, c)
		return true
	})
	return out
}

// Clone returns an independent copy; the arena itself is never mutated so
// only the removal state needs copying.
func (p *Pool) Clone() *Pool {
	c := *p
	c.removed = make([]bool, len(p.removed))
	copy(c.removed, p.removed)
	return &c
}
