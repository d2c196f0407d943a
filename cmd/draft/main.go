package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/okian/squadraft/internal/cli"
	"github.com/okian/squadraft/internal/config"
	"github.com/okian/squadraft/pkg/logger"
)

const defaultTimeout = 20 * time.Second

func main() {
	var (
		poolFile = flag.String("pool", "", "bootstrap-static JSON or player record array")
		fplURL   = flag.String("fpl", "", "FPL API root to fetch the pool from")
		server   = flag.String("server", "", "base URL of a running squadraft server")
		strategy = flag.String("strategy", "", "strategy name (default: configured default)")
		compare  = flag.Bool("compare", false, "run every strategy")
		asJSON   = flag.Bool("json", false, "print JSON")
		statuses = flag.String("status", "", "comma separated FPL status codes to keep (default: configured)")
		timeout  = flag.Duration("timeout", defaultTimeout, "HTTP timeout")
		verbose  = flag.Bool("verbose", false, "debug logging")
		help     = flag.Bool("help", false, "show help")
	)
	flag.Parse()

	if *help {
		cli.ShowHelp(os.Stdout)
		return
	}

	level := "warn"
	if *verbose {
		level = "debug"
	}
	if err := logger.Init(logger.WithWriter(os.Stderr), logger.WithLevel(level)); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}
	engine, err := cfg.Engine()
	if err != nil {
		os.Stderr.WriteString("invalid draft rules: " + err.Error() + "\n")
		os.Exit(1)
	}

	eligible := cfg.EligibleStatuses
	if *statuses != "" {
		eligible = strings.Split(*statuses, ",")
	}

	run := &cli.Config{
		PoolFile: *poolFile,
		FPLURL:   *fplURL,
		Server:   *server,
		Strategy: *strategy,
		Compare:  *compare,
		JSON:     *asJSON,
		Eligible: eligible,
		Timeout:  *timeout,
		Verbose:  *verbose,
	}
	if err := cli.Run(ctx, run, engine, os.Stdout); err != nil {
		os.Stderr.WriteString("draft failed: " + err.Error() + "\n")
		os.Exit(1)
	}
}
