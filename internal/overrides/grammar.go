package overrides

import (
	"fmt"
	"strings"
)

// MetaVar is the metavariable label shown for general-option tokens in usage
// and error text.
const MetaVar = "KEY=VALUE"

// splitOverride splits a general-option token on the first '=' character.
//
// Both halves must be non-empty; the key keeps any further '=' characters in
// the value untouched. Returns a wrapped [ErrMalformedOverride] naming the
// offending token and the expected form otherwise.
func splitOverride(token string) (key, value string, err error) {
	key, value, ok := strings.Cut(token, "=")
	if !ok || key == "" || value == "" {
		return "", "", fmt.Errorf("%w: %q is not of the form %s", ErrMalformedOverride, token, MetaVar)
	}

	return key, value, nil
}
