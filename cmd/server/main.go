package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/harmonium-server/harmonium/internal/cli"
	"github.com/harmonium-server/harmonium/internal/logger"
)

const prog = "harmonium-server"

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run())
}

func run() int {
	printBuildInfo()

	opts, err := cli.Parse(context.Background(), prog, os.Args[1:], os.Stdout, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		// The parse pass already reported the error and a usage message;
		// no other subsystem has run yet.
		return 2
	}

	log := logger.NewLogger(prog, opts.LogLevel, opts.LogPretty)
	log.Debug().Any("overrides", opts.Overrides).Msg("parsed configuration overrides")

	// Hand-off point: the override map goes by reference to the
	// configuration loader, which assembles the final server configuration
	// before bootstrap, migrations, and the media scanner take over.
	log.Info().
		Str("engine", opts.Engine).
		Int("overrides", len(opts.Overrides)).
		Msg("command line parsed, configuration overrides ready")

	return 0
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
