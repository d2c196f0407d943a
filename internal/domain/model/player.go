// Package model contains domain models passed between layers.
package model

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Player is a draft candidate. Price is in tenths of a million (FPL now_cost).
type Player struct {
	ID        int
	Name      string // unique within one draft run
	Price     int
	Position  Position
	Team      string
	ValueStat float64 // non-negative performance proxy, e.g. influence
}

// Cost returns the price in currency units.
func (p Player) Cost() decimal.Decimal {
	return Money(p.Price)
}

// PlayerRecord is the loosely typed wire shape of a player. Numeric fields
// tolerate strings and junk; Player() coalesces them once.
type PlayerRecord struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Price     Number `json:"price"`
	Position  string `json:"position"`
	Team      string `json:"team"`
	ValueStat Number `json:"value_stat"`
}

// Player validates identity fields and coalesces numbers: missing,
// non-numeric or negative price/value_stat become 0.
func (r PlayerRecord) Player() (Player, error) {
	name := strings.TrimSpace(r.Name)
	if name == "" {
		return Player{}, fmt.Errorf("player %d: %w", r.ID, ErrMissingName)
	}
	pos, err := ParsePosition(r.Position)
	if err != nil {
		return Player{}, fmt.Errorf("player %q: %w", name, err)
	}
	return Player{
		ID:        r.ID,
		Name:      name,
		Price:     r.Price.Tenths(),
		Position:  pos,
		Team:      strings.TrimSpace(r.Team),
		ValueStat: r.ValueStat.NonNegative(),
	}, nil
}

// Record converts p back to its wire shape.
func (p Player) Record() PlayerRecord {
	return PlayerRecord{
		ID:        p.ID,
		Name:      p.Name,
		Price:     Number(p.Price),
		Position:  p.Position.String(),
		Team:      p.Team,
		ValueStat: Number(p.ValueStat),
	}
}

// PlayersFromRecords converts records in order, stopping at the first invalid one.
func PlayersFromRecords(records []PlayerRecord) ([]Player, error) {
	out := make([]Player, 0, len(records))
	for i, r := range records {
		p, err := r.Player()
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		out = append(out, p)
	}
	return out, nil
}
