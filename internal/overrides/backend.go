// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Harmonium Authors

package overrides

import (
	"context"
	"fmt"
	"strconv"
	"time"
)

// SetFunc stores one resolved override into the map owned by the caller.
// Backends invoke it at the moment a flag occurrence is consumed, so calling
// order follows command-line order and "last write wins" reduces to
// "rightmost occurrence wins".
type SetFunc func(key string, value any)

// GeneralSpec describes a repeatable flag that accepts free-form
// KEY=VALUE override tokens not bound to any fixed configuration key.
type GeneralSpec struct {
	// Name is the long flag name without dashes (e.g. "conf").
	Name string
	// Alias is an optional short name (e.g. "c"). Empty means no alias.
	Alias string
	// Usage is the help text shown next to the flag.
	Usage string
}

// ShortcutSpec describes a single-value flag bound to one fixed
// configuration key with a declared value type.
type ShortcutSpec struct {
	Name  string
	Alias string
	// Key is the configuration key the flag writes to (e.g. "server.port").
	Key string
	// Type declares how the raw value is coerced before it reaches the map.
	Type ValueType
	// Usage is the help text shown next to the flag.
	Usage string
}

// ValueType enumerates the closed set of types a shortcut option may declare.
type ValueType int

const (
	TypeString ValueType = iota
	TypeInt
	TypeBool
	TypeDuration
)

// String returns the type identifier used in usage and error text.
func (t ValueType) String() string {
	switch t {
	case TypeString:
		return "string"
	case TypeInt:
		return "int"
	case TypeBool:
		return "bool"
	case TypeDuration:
		return "duration"
	default:
		return "unknown"
	}
}

// converters maps each supported shortcut type to its primitive conversion.
// The table is shared by both backends so a given raw value either converts
// identically or fails with an identical error under either engine.
var converters = map[ValueType]func(string) (any, error){
	TypeString: func(raw string) (any, error) { return raw, nil },
	TypeInt:    func(raw string) (any, error) { return strconv.Atoi(raw) },
	TypeBool:   func(raw string) (any, error) { return strconv.ParseBool(raw) },
	TypeDuration: func(raw string) (any, error) {
		return time.ParseDuration(raw)
	},
}

// convertValue coerces raw to the declared shortcut type, wrapping failures
// in [ErrValueConversion]. Panics on a type outside the enumerated set; that
// is a registration-time programming error, like a duplicate flag name.
func convertValue(t ValueType, raw string) (any, error) {
	conv, ok := converters[t]
	if !ok {
		panic(fmt.Sprintf("overrides: unsupported shortcut value type %d", t))
	}

	v, err := conv(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot parse %q as %s", ErrValueConversion, raw, t)
	}

	return v, nil
}

// Backend adapts one underlying argument-parsing engine to a uniform
// contract. A backend is stateless with respect to user data: it holds only
// the engine's builder plus the closures needed to mutate the override map
// owned by a [Registry].
//
// All registrations must happen before the single call to Parse.
type Backend interface {
	// Name identifies the engine ("command" or "flagset"), for logs.
	Name() string

	// General adds a repeatable KEY=VALUE flag. Every accepted token is
	// split by the override grammar and upserted through put; a malformed
	// token aborts the parse pass through the engine's own error channel.
	General(spec GeneralSpec, put SetFunc)

	// Shortcut adds a single-value flag bound to spec.Key. The raw value is
	// coerced to spec.Type before put runs; a failed coercion aborts the
	// parse pass the same way a malformed general token does.
	Shortcut(spec ShortcutSpec, put SetFunc)

	// StringVar and BoolVar add plain top-level flags unrelated to the
	// override map, stored through the given pointer with the given default.
	StringVar(p *string, name, value, usage string)
	BoolVar(p *bool, name string, value bool, usage string)

	// Parse runs the engine's single parse pass over args (without the
	// program name). A help request is reported as [flag.ErrHelp] after the
	// engine has printed its help text.
	Parse(ctx context.Context, args []string) error

	// Args returns the positional arguments left over after Parse.
	Args() []string
}
