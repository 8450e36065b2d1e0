// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Harmonium Authors

package cli

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"

	"github.com/harmonium-server/harmonium/internal/overrides"
)

// envPrefix is applied to every environment variable read by the launch
// layer (e.g. HARMONIUM_LOG_LEVEL).
const envPrefix = "HARMONIUM_"

// LaunchOptions is everything the single parse pass produces for the server
// bootstrap: the finished override map, the top-level flags unrelated to it,
// and the leftover positional arguments.
//
// Struct tags map the flag-independent fields to environment variables via
// caarlos0/env; a flag explicitly set on the command line wins over the
// corresponding variable.
type LaunchOptions struct {
	// Overrides is the merged configuration override map, handed by
	// reference to the configuration loader and treated as frozen from
	// then on.
	Overrides overrides.Map

	// Engine is the name of the parsing engine that was active ("command"
	// or "flagset"), recorded for logs.
	Engine string

	// LogLevel selects the zerolog level ("trace" through "fatal").
	// Env: HARMONIUM_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// LogPretty switches log output to the human-readable console writer.
	// Env: HARMONIUM_LOG_PRETTY
	LogPretty bool `env:"LOG_PRETTY"`

	// Args holds the positional arguments left over after flag parsing.
	Args []string
}

// launchBuilder layers LaunchOptions sources in priority order (first
// non-zero field wins) and merges them into one result.
type launchBuilder struct {
	layers []*LaunchOptions
	err    error
}

func newLaunchBuilder() *launchBuilder {
	return &launchBuilder{
		layers: make([]*LaunchOptions, 0, 2),
	}
}

func (b *launchBuilder) build() (*LaunchOptions, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building launch options: %w", b.err)
	}

	opts := new(LaunchOptions)
	for _, layer := range b.layers {
		if err := mergo.Merge(opts, layer); err != nil {
			return nil, fmt.Errorf("error merging launch options: %w", err)
		}
	}

	return opts, nil
}

// withFlags layers the values collected from the top-level flags. Must come
// before withEnv so that explicitly set flags take priority.
func (b *launchBuilder) withFlags(parsed *LaunchOptions) *launchBuilder {
	b.layers = append(b.layers, parsed)
	return b
}

// withEnv layers HARMONIUM_-prefixed environment variables.
func (b *launchBuilder) withEnv() *launchBuilder {
	envOpts := &LaunchOptions{}
	if err := env.ParseWithOptions(envOpts, env.Options{Prefix: envPrefix}); err != nil {
		b.err = errors.Join(b.err, fmt.Errorf("error getting env launch options: %w", err))
		return b
	}

	b.layers = append(b.layers, envOpts)
	return b
}
