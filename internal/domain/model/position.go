package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Position is a squad slot category. Values match the FPL element_type ids.
type Position int

// Known positions, in drafting order.
const (
	PositionUnknown Position = iota
	Goalkeeper
	Defender
	Midfielder
	Forward
)

var positionNames = [...]string{"UNKNOWN", "GOALKEEPER", "DEFENDER", "MIDFIELDER", "FORWARD"}
var positionShort = [...]string{"UNK", "GKP", "DEF", "MID", "FWD"}

// Positions returns every real position in drafting order.
func Positions() []Position {
	return []Position{Goalkeeper, Defender, Midfielder, Forward}
}

// Valid reports whether p is one of the four real positions.
func (p Position) Valid() bool {
	return p >= Goalkeeper && p <= Forward
}

func (p Position) String() string {
	if !p.Valid() {
		return positionNames[PositionUnknown]
	}
	return positionNames[p]
}

// Short returns the FPL short code (GKP, DEF, MID, FWD).
func (p Position) Short() string {
	if !p.Valid() {
		return positionShort[PositionUnknown]
	}
	return positionShort[p]
}

// MarshalText implements encoding.TextMarshaler.
func (p Position) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Position) UnmarshalText(b []byte) error {
	v, err := ParsePosition(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// ParsePosition accepts full names, FPL short codes, "GK" and element_type ids.
func ParsePosition(s string) (Position, error) {
	key := strings.ToUpper(strings.TrimSpace(s))
	switch key {
	case "GOALKEEPER", "GKP", "GK", "GOA":
		return Goalkeeper, nil
	case "DEFENDER", "DEF":
		return Defender, nil
	case "MIDFIELDER", "MID":
		return Midfielder, nil
	case "FORWARD", "FWD", "FW":
		return Forward, nil
	}
	if n, err := strconv.Atoi(key); err == nil && Position(n).Valid() {
		return Position(n), nil
	}
	return PositionUnknown, fmt.Errorf("%w: %q", ErrUnknownPosition, s)
}
