package overrides

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/urfave/cli/v3"
)

// CommandBackend adapts the modern extensible engine, a urfave/cli
// [cli.Command], to the [Backend] contract. Override options are custom
// [cli.Flag] implementations whose Set callbacks run at the moment each flag
// occurrence is consumed, which keeps "rightmost occurrence wins" true even
// when a general token and a shortcut target the same key. Top-level flags
// use the engine's native typed flags.
//
// Note: the engine's per-flag Action hooks run after parsing in definition
// order, not command-line order, so they cannot back the override options.
type CommandBackend struct {
	cmd  *cli.Command
	errw io.Writer
	args []string
	ran  bool

	// lastErr keeps the domain error raised inside a flag's Set callback;
	// the engine flattens it into the usage-error text, so Parse returns
	// this value to preserve the sentinel chain for errors.Is.
	lastErr error
}

// NewCommandBackend builds a CommandBackend for the given program name.
// Help output goes to stdout, parse errors and the usage hint to errw.
func NewCommandBackend(prog string, stdout, errw io.Writer) *CommandBackend {
	b := &CommandBackend{errw: errw}
	b.cmd = &cli.Command{
		Name:            prog,
		Usage:           "self-hosted music streaming server",
		Writer:          stdout,
		ErrWriter:       errw,
		HideHelpCommand: true,
		Action: func(_ context.Context, cmd *cli.Command) error {
			b.ran = true
			b.args = cmd.Args().Slice()

			return nil
		},
		// Returning the error unchanged keeps the engine from printing on
		// its own; Parse owns the error reporting.
		OnUsageError: func(_ context.Context, _ *cli.Command, err error, _ bool) error {
			return err
		},
	}

	return b
}

// Name identifies the modern engine.
func (b *CommandBackend) Name() string { return "command" }

// General appends a custom repeatable KEY=VALUE flag to the command.
func (b *CommandBackend) General(spec GeneralSpec, put SetFunc) {
	b.cmd.Flags = append(b.cmd.Flags, &generalFlag{spec: spec, put: put, errp: &b.lastErr})
}

// Shortcut appends a custom typed single-value flag bound to spec.Key.
func (b *CommandBackend) Shortcut(spec ShortcutSpec, put SetFunc) {
	b.cmd.Flags = append(b.cmd.Flags, &shortcutFlag{spec: spec, put: put, errp: &b.lastErr})
}

// StringVar adds a native top-level string flag writing through p.
func (b *CommandBackend) StringVar(p *string, name, value, usage string) {
	*p = value
	b.cmd.Flags = append(b.cmd.Flags, &cli.StringFlag{
		Name:        name,
		Value:       value,
		Usage:       usage,
		Destination: p,
	})
}

// BoolVar adds a native top-level bool flag writing through p.
func (b *CommandBackend) BoolVar(p *bool, name string, value bool, usage string) {
	*p = value
	b.cmd.Flags = append(b.cmd.Flags, &cli.BoolFlag{
		Name:        name,
		Value:       value,
		Usage:       usage,
		Destination: p,
	})
}

// Parse runs the engine over args. Errors are reported to the error writer
// together with a usage hint; a help request short-circuits the root action
// and is normalized to [flag.ErrHelp] so both backends share one help path.
func (b *CommandBackend) Parse(ctx context.Context, args []string) error {
	b.ran = false
	b.lastErr = nil
	argv := append([]string{b.cmd.Name}, args...)
	if err := b.cmd.Run(ctx, argv); err != nil {
		fmt.Fprintln(b.errw, err)
		fmt.Fprintf(b.errw, "run '%s --help' for usage\n", b.cmd.Name)
		if b.lastErr != nil {
			return b.lastErr
		}

		return err
	}
	if !b.ran {
		return flag.ErrHelp
	}

	return nil
}

// Args returns the positional arguments left over after Parse.
func (b *CommandBackend) Args() []string { return b.args }

var (
	_ Backend  = (*CommandBackend)(nil)
	_ cli.Flag = (*generalFlag)(nil)
	_ cli.Flag = (*shortcutFlag)(nil)
)

// generalFlag implements [cli.Flag] for the repeatable KEY=VALUE option.
// The engine calls Set once per occurrence, in command-line order.
type generalFlag struct {
	spec GeneralSpec
	put  SetFunc
	errp *error
	set  bool
}

func (f *generalFlag) Names() []string    { return flagNames(f.spec.Name, f.spec.Alias) }
func (f *generalFlag) IsSet() bool        { return f.set }
func (f *generalFlag) IsVisible() bool    { return true }
func (f *generalFlag) TakesValue() bool   { return true }
func (f *generalFlag) GetUsage() string   { return f.spec.Usage }
func (f *generalFlag) GetValue() string   { return "" }
func (f *generalFlag) GetDefaultText() string { return "" }
func (f *generalFlag) GetEnvVars() []string   { return nil }
func (f *generalFlag) Get() any               { return nil }
func (f *generalFlag) PreParse() error        { return nil }
func (f *generalFlag) PostParse() error       { return nil }

func (f *generalFlag) String() string {
	return prefixedNames(f.Names(), MetaVar) + "\t" + f.spec.Usage
}

// Set splits the accepted token and upserts it into the override map. A
// malformed token is recorded through errp before aborting the parse pass.
func (f *generalFlag) Set(_, token string) error {
	key, value, err := splitOverride(token)
	if err != nil {
		*f.errp = err
		return err
	}
	f.set = true
	f.put(key, value)

	return nil
}

// shortcutFlag implements [cli.Flag] for a typed single-value option bound
// to one configuration key. Coercion happens in Set, before the stored value
// ever reaches the override map, so a bad value aborts the parse pass the
// same way a malformed general token does.
type shortcutFlag struct {
	spec  ShortcutSpec
	put   SetFunc
	errp  *error
	set   bool
	value any
}

func (f *shortcutFlag) Names() []string    { return flagNames(f.spec.Name, f.spec.Alias) }
func (f *shortcutFlag) IsSet() bool        { return f.set }
func (f *shortcutFlag) IsVisible() bool    { return true }
func (f *shortcutFlag) TakesValue() bool   { return true }
func (f *shortcutFlag) GetUsage() string   { return f.spec.Usage }
func (f *shortcutFlag) GetValue() string   { return "" }
func (f *shortcutFlag) GetDefaultText() string { return "" }
func (f *shortcutFlag) GetEnvVars() []string   { return nil }
func (f *shortcutFlag) Get() any               { return f.value }
func (f *shortcutFlag) PreParse() error        { return nil }
func (f *shortcutFlag) PostParse() error       { return nil }

func (f *shortcutFlag) String() string {
	return prefixedNames(f.Names(), f.spec.Type.String()) + "\t" + f.spec.Usage
}

// Set coerces the raw value to the declared type and upserts the bound key.
func (f *shortcutFlag) Set(_, raw string) error {
	v, err := convertValue(f.spec.Type, raw)
	if err != nil {
		*f.errp = err
		return err
	}
	f.set = true
	f.value = v
	f.put(f.spec.Key, v)

	return nil
}

func flagNames(name, alias string) []string {
	if alias == "" {
		return []string{name}
	}

	return []string{name, alias}
}

// prefixedNames renders "--name metavar, -a metavar" for help output, in the
// engine's usual format.
func prefixedNames(names []string, metavar string) string {
	parts := make([]string, 0, len(names))
	for _, name := range names {
		prefix := "--"
		if len(name) == 1 {
			prefix = "-"
		}
		parts = append(parts, prefix+name+" "+metavar)
	}

	return strings.Join(parts, ", ")
}
