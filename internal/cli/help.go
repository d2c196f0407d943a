package cli

import "io"

// ShowHelp prints usage information for the draft tool.
func ShowHelp(w io.Writer) {
	_, _ = io.WriteString(w, `Squad Draft Tool
================

Drafts a fifteen-player squad from an FPL player pool.

Usage:
  go run ./cmd/draft [options]

Pool source (exactly one):
  -pool string     bootstrap-static JSON or an array of player records
  -fpl string      FPL API root to fetch bootstrap-static from
  -server string   base URL of a running squadraft server

Options:
  -strategy string balanced or stars_and_scrubs (default: configured default)
  -compare         run every strategy and report the best complete squad
  -json            print JSON instead of a table
  -status string   comma separated FPL status codes to keep (default: configured)
  -timeout dur     HTTP timeout for -fpl and -server (default 20s)
  -verbose         debug logging on stderr
  -help            show this help

Draft rules (budget, quotas, sub-budgets, team cap) come from the same
SQUADRAFT_* environment and SQUADRAFT_CONFIG file as the server.

Examples:
  go run ./cmd/draft -pool bootstrap.json
  go run ./cmd/draft -pool bootstrap.json -compare -json
  go run ./cmd/draft -fpl https://fantasy.premierleague.com/api -strategy stars_and_scrubs
  go run ./cmd/draft -server http://localhost:9080 -compare
`)
}
