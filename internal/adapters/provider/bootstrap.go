package provider

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/okian/squadraft/internal/domain/model"
)

// bootstrap mirrors the parts of the FPL bootstrap-static document we use.
type bootstrap struct {
	Elements []element `json:"elements"`
	Teams    []team    `json:"teams"`
}

type element struct {
	ID          int          `json:"id"`
	WebName     string       `json:"web_name"`
	FirstName   string       `json:"first_name"`
	SecondName  string       `json:"second_name"`
	Team        int          `json:"team"`
	ElementType int          `json:"element_type"`
	NowCost     model.Number `json:"now_cost"`
	Influence   model.Number `json:"influence"`
	Status      string       `json:"status"`
}

type team struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"short_name"`
}

// ParseBootstrap converts a bootstrap-static payload into players. Elements
// whose status is not in eligible are dropped; an empty eligible list keeps
// everyone. Elements with an unknown element_type (managers) are skipped.
func ParseBootstrap(data []byte, eligible []string) ([]model.Player, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyPayload
	}
	var doc bootstrap
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	teams := make(map[int]string, len(doc.Teams))
	for _, t := range doc.Teams {
		teams[t.ID] = t.ShortName
	}
	allow := statusSet(eligible)

	players := make([]model.Player, 0, len(doc.Elements))
	for _, e := range doc.Elements {
		pos, name, ok := e.playable(allow)
		if !ok {
			continue
		}
		short, ok := teams[e.Team]
		if !ok || short == "" {
			short = strconv.Itoa(e.Team)
		}
		players = append(players, model.Player{
			ID:        e.ID,
			Name:      name,
			Price:     e.NowCost.Tenths(),
			Position:  pos,
			Team:      short,
			ValueStat: e.Influence.NonNegative(),
		})
	}
	dedupeNames(players)
	return players, nil
}

func statusSet(eligible []string) map[string]struct{} {
	allow := make(map[string]struct{}, len(eligible))
	for _, s := range eligible {
		allow[strings.ToLower(strings.TrimSpace(s))] = struct{}{}
	}
	return allow
}

// playable applies the status filter and resolves the position and display
// name. An empty allow set keeps every status.
func (e element) playable(allow map[string]struct{}) (model.Position, string, bool) {
	if len(allow) > 0 {
		if _, ok := allow[strings.ToLower(e.Status)]; !ok {
			return model.PositionUnknown, "", false
		}
	}
	pos := model.Position(e.ElementType)
	if !pos.Valid() {
		return model.PositionUnknown, "", false
	}
	name := strings.TrimSpace(e.WebName)
	if name == "" {
		name = strings.TrimSpace(e.FirstName + " " + e.SecondName)
	}
	return pos, name, name != ""
}

// dedupeNames qualifies clashing names with the team, then with the id.
func dedupeNames(players []model.Player) {
	seen := make(map[string]int, len(players))
	for _, p := range players {
		seen[p.Name]++
	}
	for i := range players {
		if seen[players[i].Name] > 1 {
			players[i].Name = fmt.Sprintf("%s (%s)", players[i].Name, players[i].Team)
		}
	}

	seen = make(map[string]int, len(players))
	for _, p := range players {
		seen[p.Name]++
	}
	for i := range players {
		if seen[players[i].Name] > 1 {
			players[i].Name = fmt.Sprintf("%s #%d", players[i].Name, players[i].ID)
		}
	}
}

// ParseRecords decodes a JSON array of player records.
func ParseRecords(data []byte) ([]model.Player, error) {
	var records []model.PlayerRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return model.PlayersFromRecords(records)
}

// ParseAny accepts either a bootstrap-static document or a record array,
// deciding by the first non-space byte.
func ParseAny(data []byte, eligible []string) ([]model.Player, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, ErrEmptyPayload
	}
	if trimmed[0] == '[' {
		return ParseRecords(trimmed)
	}
	return ParseBootstrap(trimmed, eligible)
}
