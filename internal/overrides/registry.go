package overrides

import "context"

// Map is the merged result of all general and shortcut overrides, keyed by
// configuration key. General overrides store raw strings; shortcut overrides
// store the coerced value of their declared type. Once handed off after the
// parse pass the map is treated as frozen by its consumer.
type Map map[string]any

// Registry orchestrates option registration against whichever backend is
// active and owns the resulting override map. It is the only writer of the
// map during the parse pass.
type Registry struct {
	backend   Backend
	overrides Map
}

// NewRegistry builds a Registry bound to the given backend with an empty
// override map.
func NewRegistry(b Backend) *Registry {
	return &Registry{
		backend:   b,
		overrides: make(Map),
	}
}

// General registers a repeatable KEY=VALUE flag. Every token accepted
// anywhere on the command line is split by the grammar and upserted into the
// map, overwriting any prior value for that key.
func (r *Registry) General(spec GeneralSpec) {
	r.backend.General(spec, r.set)
}

// Shortcut registers a single-value flag bound to spec.Key. When supplied,
// the coerced value is upserted; when never supplied, the key stays
// untouched.
func (r *Registry) Shortcut(spec ShortcutSpec) {
	r.backend.Shortcut(spec, r.set)
}

// Parse runs the backend's single parse pass.
func (r *Registry) Parse(ctx context.Context, args []string) error {
	return r.backend.Parse(ctx, args)
}

// Overrides exposes the finished override map. Valid after Parse; the
// registry does not mutate it afterwards.
func (r *Registry) Overrides() Map { return r.overrides }

func (r *Registry) set(key string, value any) {
	r.overrides[key] = value
}
