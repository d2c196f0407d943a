package cli

import (
	"fmt"
	"time"
)

// Config holds the options of one draft tool invocation.
type Config struct {
	PoolFile string        // bootstrap-static or record array on disk
	FPLURL   string        // FPL API root to fetch bootstrap-static from
	Server   string        // base URL of a running squadraft server
	Strategy string        // empty selects the default strategy
	Compare  bool          // run every comparison strategy
	JSON     bool          // print JSON instead of a table
	Eligible []string      // FPL status codes kept in the pool
	Timeout  time.Duration // HTTP timeout for -fpl and -server
	Verbose  bool
}

// Validate checks that exactly one pool source is set.
func (c *Config) Validate() error {
	n := 0
	for _, s := range []string{c.PoolFile, c.FPLURL, c.Server} {
		if s != "" {
			n++
		}
	}
	switch {
	case n == 0:
		return ErrNoSource
	case n > 1:
		return ErrManySources
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	return nil
}
