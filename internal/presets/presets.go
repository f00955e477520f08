// Package presets registers ready-made automatons so the commands can run
// interesting configurations without any input files.
package presets

import (
	"fmt"
	"sort"
	"strconv"

	"rulegrid/pkg/automaton"
)

// Factory constructs an automaton from flag-style key/value options.
// Recognized keys are preset-specific; every preset honors "w", "h" and
// "seed".
type Factory func(cfg map[string]string) (*automaton.Automaton, error)

var presets = map[string]Factory{}

// Register adds a preset factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	presets[name] = f
}

// Names returns the registered preset names in sorted order.
func Names() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New builds the named preset.
func New(name string, cfg map[string]string) (*automaton.Automaton, error) {
	f, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("presets: unknown preset %q", name)
	}
	return f(cfg)
}

// dims extracts the shared "w", "h" and "seed" options, falling back to the
// provided defaults.
func dims(cfg map[string]string, defW, defH int, defSeed int64) (w, h int, seed int64) {
	w, h, seed = defW, defH, defSeed
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			w = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			h = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			seed = parsed
		}
	}
	return w, h, seed
}
