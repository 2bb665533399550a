package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/okian/lineup/internal/lineupcheck"
)

// Default configuration constants.
const (
	defaultRosters     = 200
	defaultMaxHeroes   = 30
	defaultWorkers     = 2 // multiplier for runtime.NumCPU()
	defaultTimeout     = 30 * time.Second
	defaultTestTimeout = 10 * time.Minute
)

func main() {
	var (
		baseURL   = flag.String("url", "http://localhost:9080", "Base URL of the service")
		rosters   = flag.Int("rosters", defaultRosters, "Number of random rosters to submit")
		maxHeroes = flag.Int("max-heroes", defaultMaxHeroes, "Maximum heroes per roster")
		workers   = flag.Int("workers", runtime.NumCPU()*defaultWorkers, "Number of concurrent workers")
		timeout   = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		seed      = flag.Int64("seed", 0, "Seed for roster generation (0 uses the current time)")
		catalog   = flag.String("catalog", "", "Hero catalog YAML the service was started with")
		verbose   = flag.Bool("verbose", false, "Log every violation")
		help      = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		lineupcheck.ShowHelp()
		return
	}

	if err := lineupcheck.SetupLogging(os.Stdout, *verbose); err != nil {
		os.Stderr.WriteString("Failed to setup logging: " + err.Error() + "\n")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, defaultTestTimeout)
	defer cancel()

	config := &lineupcheck.Config{
		BaseURL:   *baseURL,
		Rosters:   *rosters,
		MaxHeroes: *maxHeroes,
		Workers:   *workers,
		Timeout:   *timeout,
		Seed:      *seed,
		Catalog:   *catalog,
		Verbose:   *verbose,
	}

	if _, err := lineupcheck.Run(ctx, config); err != nil {
		os.Stderr.WriteString("Check failed: " + err.Error() + "\n")
		os.Exit(1)
	}
}
