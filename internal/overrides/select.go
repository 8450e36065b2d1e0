// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Harmonium Authors

package overrides

import (
	"fmt"
	"io"

	"github.com/caarlos0/env/v11"
)

// envPrefix is the prefix for all environment variables read by this
// subsystem.
const envPrefix = "HARMONIUM_"

// engineSettings is parsed from the environment before any flag parsing.
type engineSettings struct {
	// Engine pins the parsing engine: "auto" probes candidates in
	// preference order, "command" and "flagset" force one engine.
	// Env: HARMONIUM_CLI_ENGINE
	Engine string `env:"CLI_ENGINE" envDefault:"auto"`
}

// engineProbes lists the known engines in preference order. An engine whose
// probe reports false is skipped; in this build both engines are always
// linked in, so the probe result is constant, but selection still walks the
// list so the modern engine wins whenever it is present.
var engineProbes = []struct {
	name  string
	avail func() bool
	build func(prog string, stdout, errw io.Writer) Backend
}{
	{
		name:  "command",
		avail: func() bool { return true },
		build: func(prog string, stdout, errw io.Writer) Backend {
			return NewCommandBackend(prog, stdout, errw)
		},
	},
	{
		name:  "flagset",
		avail: func() bool { return true },
		build: func(prog string, _, errw io.Writer) Backend {
			return NewFlagSetBackend(prog, errw)
		},
	},
}

// Select performs the one-time, deterministic backend selection. The choice
// is immutable for the process's lifetime: there is no fallback after a
// backend has been handed out.
//
// Returns a wrapped [ErrBackendUnavailable] when the pinned engine is
// unknown or no probe succeeds.
func Select(prog string, stdout, errw io.Writer) (Backend, error) {
	var settings engineSettings
	if err := env.ParseWithOptions(&settings, env.Options{Prefix: envPrefix}); err != nil {
		return nil, fmt.Errorf("error reading engine settings: %w", err)
	}

	if settings.Engine == "" {
		settings.Engine = "auto"
	}

	if settings.Engine != "auto" {
		for _, p := range engineProbes {
			if p.name == settings.Engine && p.avail() {
				return p.build(prog, stdout, errw), nil
			}
		}

		return nil, fmt.Errorf("%w: unknown engine %q", ErrBackendUnavailable, settings.Engine)
	}

	for _, p := range engineProbes {
		if p.avail() {
			return p.build(prog, stdout, errw), nil
		}
	}

	return nil, ErrBackendUnavailable
}
