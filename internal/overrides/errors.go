package overrides

import "errors"

// Errors reported by the override subsystem during backend selection and the
// single parse pass. All of them are fatal for the invocation: the caller
// prints a usage message and exits non-zero before any other subsystem runs.
var (
	// ErrMalformedOverride indicates a general-option token that lacks `=`
	// or has an empty key or value half (e.g. "=v", "k=", "=", "novalue").
	ErrMalformedOverride = errors.New("malformed configuration override")

	// ErrValueConversion indicates a shortcut-option value that cannot be
	// parsed as the option's declared type (e.g. --port abc).
	ErrValueConversion = errors.New("invalid option value")

	// ErrBackendUnavailable indicates that no usable argument-parsing engine
	// could be selected. Checked before parsing begins.
	ErrBackendUnavailable = errors.New("no usable command-line backend")
)
