package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	json "github.com/goccy/go-json"

	"github.com/okian/squadraft/internal/domain/model"
	"github.com/okian/squadraft/internal/domain/types"
)

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func renderSquad(out io.Writer, sq types.Squad, asJSON bool) error {
	if asJSON {
		return writeJSON(out, sq)
	}
	return writeSquadTable(out, sq)
}

func renderComparison(out io.Writer, cmp types.Comparison, asJSON bool) error {
	if asJSON {
		return writeJSON(out, cmp)
	}
	for i, sq := range cmp.Squads {
		if i > 0 {
			fmt.Fprintln(out)
		}
		if err := writeSquadTable(out, sq); err != nil {
			return err
		}
	}
	best := cmp.Best
	if best == "" {
		best = "none (no complete squad)"
	}
	_, err := fmt.Fprintf(out, "\nbest: %s\n", best)
	return err
}

func writeSquadTable(out io.Writer, sq types.Squad) error {
	fmt.Fprintf(out, "strategy: %s  status: %s  run: %s\n", sq.Strategy, sq.Status, sq.RunID)

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "POS\tNAME\tTEAM\tPRICE\tVALUE\tSCORE")
	for _, m := range sq.Members {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%.1f\t%.3f\n",
			m.Position, m.Name, m.Team, m.Price.StringFixed(1), m.ValueStat, m.Score)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(out, "players: %d  spent: %s / %s  remaining: %s  total score: %.3f\n",
		sq.Size, sq.Spent.StringFixed(1), sq.Budget.StringFixed(1),
		sq.RemainingBudget.StringFixed(1), sq.TotalScore)
	if len(sq.Shortfall) > 0 {
		fmt.Fprint(out, "shortfall:")
		for _, pos := range model.Positions() {
			if n := sq.Shortfall[pos.Short()]; n > 0 {
				fmt.Fprintf(out, " %s %d", pos.Short(), n)
			}
		}
		fmt.Fprintln(out)
	}
	return nil
}
