package cli

import (
	"bytes"
	"context"
	"flag"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harmonium-server/harmonium/internal/overrides"
)

// ── helpers ───────────────────────────────────────────────────────────────────

// testEngines builds both real backends so every assembly test runs the full
// flag surface against each engine.
var testEngines = []struct {
	name  string
	build func(errw io.Writer) overrides.Backend
}{
	{
		name: "command",
		build: func(errw io.Writer) overrides.Backend {
			return overrides.NewCommandBackend("harmonium-test", io.Discard, errw)
		},
	},
	{
		name: "flagset",
		build: func(errw io.Writer) overrides.Backend {
			return overrides.NewFlagSetBackend("harmonium-test", errw)
		},
	},
}

// ── the full flag surface ─────────────────────────────────────────────────────

// TestParseWith_FullSurface verifies overrides, shortcuts, and top-level
// flags all land in the launch options, identically on both engines.
func TestParseWith_FullSurface(t *testing.T) {
	args := []string{
		"--conf", "music.folder=/srv/music",
		"-p", "4533",
		"--host", "0.0.0.0",
		"--conf", "music.folder=/mnt/library",
		"--log-level", "debug",
	}

	for _, engine := range testEngines {
		t.Run(engine.name, func(t *testing.T) {
			backend := engine.build(io.Discard)

			opts, err := parseWith(context.Background(), backend, "harmonium-test", args, io.Discard)
			require.NoError(t, err)

			assert.Equal(t, overrides.Map{
				"music.folder": "/mnt/library",
				"server.port":  4533,
				"server.host":  "0.0.0.0",
			}, opts.Overrides)
			assert.Equal(t, backend.Name(), opts.Engine)
			assert.Equal(t, "debug", opts.LogLevel)
			assert.False(t, opts.LogPretty)
			assert.Empty(t, opts.Args)
		})
	}
}

// TestParseWith_NoArguments verifies an empty command line produces an empty
// override map and default launch options.
func TestParseWith_NoArguments(t *testing.T) {
	for _, engine := range testEngines {
		t.Run(engine.name, func(t *testing.T) {
			backend := engine.build(io.Discard)

			opts, err := parseWith(context.Background(), backend, "harmonium-test", nil, io.Discard)
			require.NoError(t, err)

			assert.Empty(t, opts.Overrides)
			assert.Empty(t, opts.LogLevel)
			assert.False(t, opts.LogPretty)
		})
	}
}

// TestParseWith_MalformedOverride verifies the error and exit-path contract
// for malformed tokens on both engines.
func TestParseWith_MalformedOverride(t *testing.T) {
	for _, engine := range testEngines {
		t.Run(engine.name, func(t *testing.T) {
			errw := &bytes.Buffer{}
			backend := engine.build(errw)

			opts, err := parseWith(context.Background(), backend, "harmonium-test",
				[]string{"--conf", "broken"}, errw)

			assert.Nil(t, opts)
			require.Error(t, err)
			assert.ErrorIs(t, err, overrides.ErrMalformedOverride)
			assert.Contains(t, errw.String(), overrides.MetaVar)
		})
	}
}

// TestParseWith_BadShortcutValue verifies a failed type conversion aborts
// the parse pass on both engines.
func TestParseWith_BadShortcutValue(t *testing.T) {
	for _, engine := range testEngines {
		t.Run(engine.name, func(t *testing.T) {
			backend := engine.build(io.Discard)

			_, err := parseWith(context.Background(), backend, "harmonium-test",
				[]string{"--port", "abc"}, io.Discard)

			require.Error(t, err)
			assert.ErrorIs(t, err, overrides.ErrValueConversion)
		})
	}
}

// ── Parse end to end ──────────────────────────────────────────────────────────

// TestParse_EnginePin verifies HARMONIUM_CLI_ENGINE selects the backend.
func TestParse_EnginePin(t *testing.T) {
	t.Setenv("HARMONIUM_CLI_ENGINE", "flagset")

	opts, err := Parse(context.Background(), "harmonium-test",
		[]string{"--conf", "a=1"}, io.Discard, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, "flagset", opts.Engine)
	assert.Equal(t, overrides.Map{"a": "1"}, opts.Overrides)
}

// TestParse_UnknownEngine verifies an unknown pin fails before parsing with
// a message on stderr.
func TestParse_UnknownEngine(t *testing.T) {
	t.Setenv("HARMONIUM_CLI_ENGINE", "getopt")
	errw := &bytes.Buffer{}

	opts, err := Parse(context.Background(), "harmonium-test", nil, io.Discard, errw)

	assert.Nil(t, opts)
	require.Error(t, err)
	assert.ErrorIs(t, err, overrides.ErrBackendUnavailable)
	assert.Contains(t, errw.String(), "getopt")
}

// TestParse_Help verifies a help request is reported as flag.ErrHelp so the
// entry point can exit zero.
func TestParse_Help(t *testing.T) {
	t.Setenv("HARMONIUM_CLI_ENGINE", "flagset")

	_, err := Parse(context.Background(), "harmonium-test", []string{"-h"}, io.Discard, io.Discard)
	assert.ErrorIs(t, err, flag.ErrHelp)
}

// TestParse_EnvLaunchOptions verifies environment launch options apply when
// the corresponding flags are not set.
func TestParse_EnvLaunchOptions(t *testing.T) {
	t.Setenv("HARMONIUM_LOG_LEVEL", "trace")
	t.Setenv("HARMONIUM_LOG_PRETTY", "true")

	opts, err := Parse(context.Background(), "harmonium-test", nil, io.Discard, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, "trace", opts.LogLevel)
	assert.True(t, opts.LogPretty)
}

// TestParse_FlagBeatsEnv verifies a flag set on the command line wins over
// its environment variable.
func TestParse_FlagBeatsEnv(t *testing.T) {
	t.Setenv("HARMONIUM_LOG_LEVEL", "error")

	opts, err := Parse(context.Background(), "harmonium-test",
		[]string{"--log-level", "debug"}, io.Discard, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, "debug", opts.LogLevel)
}
