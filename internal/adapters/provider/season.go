package provider

import (
	"bytes"
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/okian/squadraft/internal/domain/model"
	"github.com/okian/squadraft/internal/domain/recommend"
)

// seasonDoc is bootstrap-static read for recommendations: players with their
// form counters plus the gameweek calendar.
type seasonDoc struct {
	Elements []seasonElement `json:"elements"`
	Teams    []team          `json:"teams"`
	Events   []event         `json:"events"`
}

type seasonElement struct {
	element
	Form        model.Number `json:"form"`
	TotalPoints model.Number `json:"total_points"`
	Minutes     model.Number `json:"minutes"`
}

type event struct {
	ID        int  `json:"id"`
	IsCurrent bool `json:"is_current"`
}

type fixture struct {
	ID             int  `json:"id"`
	Event          *int `json:"event"`
	TeamH          int  `json:"team_h"`
	TeamA          int  `json:"team_a"`
	TeamHDifficulty int  `json:"team_h_difficulty"`
	TeamADifficulty int  `json:"team_a_difficulty"`
	Finished       bool `json:"finished"`
}

// ParseSeason combines a bootstrap-static payload and a fixtures payload.
// Players go through the same status filter as ParseBootstrap.
func ParseSeason(bootstrapData, fixturesData []byte, eligible []string) (recommend.Season, error) {
	if len(bytes.TrimSpace(bootstrapData)) == 0 {
		return recommend.Season{}, ErrEmptyPayload
	}
	var doc seasonDoc
	if err := json.Unmarshal(bootstrapData, &doc); err != nil {
		return recommend.Season{}, fmt.Errorf("%w: bootstrap: %w", ErrDecode, err)
	}
	fixtures, err := ParseFixtures(fixturesData)
	if err != nil {
		return recommend.Season{}, err
	}

	s := recommend.Season{
		Teams:    make([]recommend.Team, 0, len(doc.Teams)),
		Players:  make([]recommend.Player, 0, len(doc.Elements)),
		Fixtures: fixtures,
	}
	for _, ev := range doc.Events {
		if ev.IsCurrent {
			s.Current = ev.ID
			break
		}
	}
	for _, t := range doc.Teams {
		s.Teams = append(s.Teams, recommend.Team{ID: t.ID, Name: t.Name, ShortName: t.ShortName})
	}
	allow := statusSet(eligible)
	for _, e := range doc.Elements {
		pos, name, ok := e.playable(allow)
		if !ok {
			continue
		}
		s.Players = append(s.Players, recommend.Player{
			ID:          e.ID,
			Name:        name,
			Team:        e.Team,
			Position:    pos,
			Price:       e.NowCost.Tenths(),
			Form:        e.Form.NonNegative(),
			TotalPoints: e.TotalPoints.Count(),
			Minutes:     e.Minutes.Count(),
		})
	}
	return s, nil
}

// ParseFixtures decodes the FPL fixtures list. A null event becomes 0.
func ParseFixtures(data []byte) ([]recommend.Fixture, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyPayload
	}
	var raw []fixture
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: fixtures: %w", ErrDecode, err)
	}
	out := make([]recommend.Fixture, 0, len(raw))
	for _, f := range raw {
		gw := 0
		if f.Event != nil {
			gw = *f.Event
		}
		out = append(out, recommend.Fixture{
			ID:             f.ID,
			Event:          gw,
			Home:           f.TeamH,
			Away:           f.TeamA,
			HomeDifficulty: f.TeamHDifficulty,
			AwayDifficulty: f.TeamADifficulty,
			Finished:       f.Finished,
		})
	}
	return out, nil
}
