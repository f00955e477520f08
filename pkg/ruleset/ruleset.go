// Package ruleset loads rule descriptions from YAML files. It covers the
// rule kinds that have a closed data shape: pattern-replacement rules and
// Life-style counting rules. Environment rules and custom counting
// transforms are arbitrary functions and stay code-only.
//
// A rule file looks like:
//
//	boundary: fixed
//	void: "_"
//	colors:
//	  "X": "#e0d29f"
//	  " ": "#3d9fb8"
//	rules:
//	  - kind: pattern
//	    priority: 1
//	    chance: 0.9
//	    before: ["X", " "]
//	    after: [" ", "X"]
//	  - kind: life
//	    alive: "X"
//	    dead: " "
//	    birth: [3]
//	    survive: [2, 3]
package ruleset

import (
	"errors"
	"fmt"
	"image/color"
	"os"

	"gopkg.in/yaml.v3"

	"rulegrid/pkg/automaton"
	"rulegrid/pkg/grid"
	"rulegrid/pkg/rule"
)

// Set is a parsed rule file: an ordered rule list plus the boundary and
// display configuration that goes with it.
type Set struct {
	Boundary grid.BoundaryMode
	Void     grid.State
	Colors   map[grid.State]color.RGBA
	Rules    []rule.Rule
}

// Apply copies the set's configuration onto an automaton builder.
func (s *Set) Apply(b *automaton.Builder) *automaton.Builder {
	b.Boundary(s.Boundary).Void(s.Void).Rules(s.Rules...)
	for state, c := range s.Colors {
		b.Color(state, c)
	}
	return b
}

type fileSpec struct {
	Boundary string            `yaml:"boundary"`
	Void     string            `yaml:"void"`
	Colors   map[string]string `yaml:"colors"`
	Rules    []ruleSpec        `yaml:"rules"`
}

type ruleSpec struct {
	Kind     string   `yaml:"kind"`
	Priority int      `yaml:"priority"`

	// kind: pattern
	Chance *float64 `yaml:"chance"`
	Before []string `yaml:"before"`
	After  []string `yaml:"after"`

	// kind: life
	Alive   string `yaml:"alive"`
	Dead    string `yaml:"dead"`
	Birth   []int  `yaml:"birth"`
	Survive []int  `yaml:"survive"`
}

// Load reads and parses the named YAML rule file.
func Load(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes a YAML rule description.
func Parse(data []byte) (*Set, error) {
	var spec fileSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("ruleset: %w", err)
	}

	set := &Set{Void: ' ', Colors: make(map[grid.State]color.RGBA)}

	switch spec.Boundary {
	case "", "periodic":
		set.Boundary = grid.Periodic
	case "fixed":
		set.Boundary = grid.Fixed
	default:
		return nil, fmt.Errorf("ruleset: unknown boundary %q", spec.Boundary)
	}

	if spec.Void != "" {
		s, err := stateOf("void", spec.Void)
		if err != nil {
			return nil, err
		}
		set.Void = s
	}

	for sym, hex := range spec.Colors {
		state, err := stateOf("colors key", sym)
		if err != nil {
			return nil, err
		}
		c, err := parseHexColor(hex)
		if err != nil {
			return nil, fmt.Errorf("ruleset: color for %q: %w", sym, err)
		}
		set.Colors[state] = c
	}

	for i, rs := range spec.Rules {
		r, err := rs.build()
		if err != nil {
			return nil, fmt.Errorf("ruleset: rule %d: %w", i, err)
		}
		set.Rules = append(set.Rules, r)
	}
	return set, nil
}

func (rs *ruleSpec) build() (rule.Rule, error) {
	switch rs.Kind {
	case "pattern":
		r, err := rule.NewPattern(rs.Before, rs.After)
		if err != nil {
			return nil, err
		}
		r.Priority = rs.Priority
		if rs.Chance != nil {
			r.Chance = *rs.Chance
		}
		if err := r.Validate(); err != nil {
			return nil, err
		}
		return r, nil
	case "life":
		alive, err := stateOf("alive", rs.Alive)
		if err != nil {
			return nil, err
		}
		dead, err := stateOf("dead", rs.Dead)
		if err != nil {
			return nil, err
		}
		if len(rs.Birth) == 0 && len(rs.Survive) == 0 {
			return nil, errors.New("life rule needs birth or survive counts")
		}
		r := rule.Life(alive, dead, rs.Birth, rs.Survive)
		r.Priority = rs.Priority
		return r, nil
	case "":
		return nil, errors.New("missing rule kind")
	default:
		return nil, fmt.Errorf("unknown rule kind %q", rs.Kind)
	}
}

// stateOf maps a one-character YAML string onto a cell state.
func stateOf(field, s string) (grid.State, error) {
	if len(s) != 1 {
		return 0, fmt.Errorf("ruleset: %s must be a single character, got %q", field, s)
	}
	return s[0], nil
}

func parseHexColor(s string) (color.RGBA, error) {
	if len(s) == 0 || s[0] != '#' {
		return color.RGBA{}, fmt.Errorf("want #rrggbb or #rrggbbaa, got %q", s)
	}
	hex := s[1:]
	if len(hex)%2 != 0 {
		return color.RGBA{}, fmt.Errorf("want #rrggbb or #rrggbbaa, got %q", s)
	}
	var v []byte
	for i := 0; i+1 < len(hex); i += 2 {
		hi, okHi := unhex(hex[i])
		lo, okLo := unhex(hex[i+1])
		if !okHi || !okLo {
			return color.RGBA{}, fmt.Errorf("want #rrggbb or #rrggbbaa, got %q", s)
		}
		v = append(v, hi<<4|lo)
	}
	switch len(v) {
	case 3:
		return color.RGBA{R: v[0], G: v[1], B: v[2], A: 0xff}, nil
	case 4:
		return color.RGBA{R: v[0], G: v[1], B: v[2], A: v[3]}, nil
	default:
		return color.RGBA{}, fmt.Errorf("want #rrggbb or #rrggbbaa, got %q", s)
	}
}

func unhex(b byte) (byte, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	default:
		return 0, false
	}
}
