package lineupcheck

import (
	"fmt"
	"io"
	"os"

	"github.com/okian/lineup/pkg/logger"
)

// SetupLogging initializes the global logger for the tool.
func SetupLogging(out io.Writer, verbose bool) error {
	if err := logger.Init(logger.WithOutput(out)); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	if verbose {
		return logger.SetLevelString("debug")
	}
	return nil
}

// ShowHelp prints usage information for the check tool.
func ShowHelp() {
	os.Stdout.WriteString(`Lineup Check Tool
=================

Submits random rosters to a running lineup service and verifies that every
recommendation is deterministic, respects slot roles, never assigns a hero
twice, and lists unused candidates by score.

Usage:
  go run ./cmd/lineup-check [options]

Options:
  -url string
        Base URL of the service (default "http://localhost:9080")
  -rosters int
        Number of random rosters to submit (default 200)
  -max-heroes int
        Maximum heroes per roster (default 30)
  -workers int
        Number of concurrent workers (default CPU cores * 2)
  -timeout duration
        HTTP request timeout (default 30s)
  -seed int
        Seed for roster generation (default: current time)
  -catalog string
        Hero catalog YAML the service was started with
  -verbose
        Log every violation
  -help
        Show this help message

Examples:
  # Check a local service
  go run ./cmd/lineup-check

  # Reproduce a failing run
  go run ./cmd/lineup-check -seed 1700000000 -rosters 1000 -verbose
`)
}
