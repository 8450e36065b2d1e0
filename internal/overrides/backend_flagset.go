package overrides

import (
	"context"
	"flag"
	"io"
)

// FlagSetBackend adapts the legacy callback engine, a standard-library
// [flag.FlagSet], to the [Backend] contract. Every flag is registered as a
// per-value callback via [flag.FlagSet.Func], so each occurrence carries
// exactly one value and mutations run in command-line order. Typed shortcut
// values are coerced by resolving the declared type through the shared
// converter table.
type FlagSetBackend struct {
	fs *flag.FlagSet

	// lastErr keeps the domain error raised inside a callback. The flag
	// package flattens callback errors into plain text, so the backend
	// catches its own error value here and Parse hands it back to the call
	// site with the sentinel chain intact.
	lastErr error
}

// NewFlagSetBackend builds a FlagSetBackend for the given program name.
// Parse errors and usage text are written to errw.
func NewFlagSetBackend(prog string, errw io.Writer) *FlagSetBackend {
	fs := flag.NewFlagSet(prog, flag.ContinueOnError)
	fs.SetOutput(errw)

	return &FlagSetBackend{fs: fs}
}

// Name identifies the legacy engine.
func (b *FlagSetBackend) Name() string { return "flagset" }

// General registers spec as repeatable KEY=VALUE callbacks under the long
// name and, when present, the alias.
func (b *FlagSetBackend) General(spec GeneralSpec, put SetFunc) {
	apply := func(token string) error {
		key, value, err := splitOverride(token)
		if err != nil {
			b.lastErr = err
			return err
		}
		put(key, value)

		return nil
	}

	// The backquoted metavariable makes the flag package print
	// "-conf KEY=VALUE" in its usage output.
	usage := "`" + MetaVar + "` " + spec.Usage
	b.fs.Func(spec.Name, usage, apply)
	if spec.Alias != "" {
		b.fs.Func(spec.Alias, usage, apply)
	}
}

// Shortcut registers spec as a single-value callback that coerces the raw
// value to spec.Type and upserts spec.Key.
func (b *FlagSetBackend) Shortcut(spec ShortcutSpec, put SetFunc) {
	apply := func(raw string) error {
		v, err := convertValue(spec.Type, raw)
		if err != nil {
			b.lastErr = err
			return err
		}
		put(spec.Key, v)

		return nil
	}

	usage := "`" + spec.Type.String() + "` " + spec.Usage
	b.fs.Func(spec.Name, usage, apply)
	if spec.Alias != "" {
		b.fs.Func(spec.Alias, usage, apply)
	}
}

// StringVar adds a plain top-level string flag.
func (b *FlagSetBackend) StringVar(p *string, name, value, usage string) {
	b.fs.StringVar(p, name, value, usage)
}

// BoolVar adds a plain top-level bool flag.
func (b *FlagSetBackend) BoolVar(p *bool, name string, value bool, usage string) {
	b.fs.BoolVar(p, name, value, usage)
}

// Parse runs the single parse pass. The flag package already prints the
// error and the usage message to the configured output, so callers only map
// the returned error to an exit code. Help requests come back as
// [flag.ErrHelp].
func (b *FlagSetBackend) Parse(_ context.Context, args []string) error {
	b.lastErr = nil
	err := b.fs.Parse(args)
	if err == nil {
		return nil
	}
	if b.lastErr != nil {
		return b.lastErr
	}

	return err
}

// Args returns the positional arguments left over after Parse.
func (b *FlagSetBackend) Args() []string { return b.fs.Args() }

var _ Backend = (*FlagSetBackend)(nil)
