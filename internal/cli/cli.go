// Package cli assembles the full command-line surface of the Harmonium
// server: the configuration-override options, the shortcut options bound to
// fixed configuration keys, and the top-level flags that are unrelated to
// the override map. It runs exactly one parse pass per invocation and
// returns the finished [LaunchOptions] for bootstrap.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/harmonium-server/harmonium/internal/overrides"
)

// Parse selects a parsing backend, builds the flag surface, and runs the
// single parse pass over args (without the program name).
//
// On any failure the error has already been reported to stderr together
// with a usage message; callers only map the returned error to an exit
// code. A help request is reported as flag.ErrHelp.
func Parse(ctx context.Context, prog string, args []string, stdout, stderr io.Writer) (*LaunchOptions, error) {
	backend, err := overrides.Select(prog, stdout, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", prog, err)
		return nil, err
	}

	return parseWith(ctx, backend, prog, args, stderr)
}

// parseWith runs the parse pass against an already selected backend.
func parseWith(ctx context.Context, backend overrides.Backend, prog string, args []string, stderr io.Writer) (*LaunchOptions, error) {
	registry := overrides.NewRegistry(backend)
	registry.General(overrides.GeneralSpec{
		Name:  "conf",
		Alias: "c",
		Usage: "set a configuration override, repeatable",
	})
	registry.Shortcut(overrides.ShortcutSpec{
		Name:  "port",
		Alias: "p",
		Key:   "server.port",
		Type:  overrides.TypeInt,
		Usage: "web server listen port, shortcut for --conf server.port=N",
	})
	registry.Shortcut(overrides.ShortcutSpec{
		Name:  "host",
		Key:   "server.host",
		Type:  overrides.TypeString,
		Usage: "web server listen address, shortcut for --conf server.host=ADDR",
	})

	var flagOpts LaunchOptions
	backend.StringVar(&flagOpts.LogLevel, "log-level", "", "log level: trace, debug, info, warn, error")
	backend.BoolVar(&flagOpts.LogPretty, "log-pretty", false, "human-readable console logs instead of JSON")

	if err := registry.Parse(ctx, args); err != nil {
		// The engine has already written the error and its usage message.
		return nil, err
	}

	opts, err := newLaunchBuilder().
		withFlags(&flagOpts).
		withEnv().
		build()
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", prog, err)
		return nil, err
	}

	opts.Overrides = registry.Overrides()
	opts.Engine = backend.Name()
	opts.Args = backend.Args()

	return opts, nil
}
