// Package overrides implements the command-line configuration-override
// subsystem of the Harmonium server.
//
// A user supplies free-form overrides (--conf KEY=VALUE, repeatable) and
// typed shortcut overrides (e.g. --port N) on the command line. The package
// merges them into a single override map with "rightmost occurrence wins"
// precedence, regardless of which option kind set a key.
//
// Two argument-parsing engines are supported behind the [Backend] contract:
// a modern extensible engine built on urfave/cli and a legacy callback
// engine built on the standard flag package. [Select] picks one at start-up;
// the rest of the program depends only on [Backend] and never branches on
// which engine is active. Both engines produce identical override-map
// contents and identical error values for identical argument lists.
//
// The typical sequence is: [Select] a backend, register options through a
// [Registry], run one parse pass, then hand [Registry.Overrides] to the
// configuration loader.
package overrides
