package automaton

import (
	"errors"
	"fmt"
	"image/color"
	"runtime"

	"rulegrid/pkg/grid"
	"rulegrid/pkg/rng"
	"rulegrid/pkg/rule"
)

// ErrNoGrid reports a build attempt without an initial grid.
var ErrNoGrid = errors.New("automaton: initial grid required")

// DefaultSeed is the seed used when the builder is not given one.
const DefaultSeed int64 = 1337

// Builder assembles an Automaton. All validation happens in Build;
// a builder that fails to build leaves no runnable automaton behind.
type Builder struct {
	initial *grid.Grid
	rules   []rule.Rule
	mode    grid.BoundaryMode
	void    grid.State
	seed    int64
	workers int
	palette map[grid.State]color.RGBA
}

// NewBuilder returns a builder with periodic boundaries, the default seed
// and one worker per CPU.
func NewBuilder() *Builder {
	return &Builder{
		mode:    grid.Periodic,
		seed:    DefaultSeed,
		workers: runtime.NumCPU(),
		palette: make(map[grid.State]color.RGBA),
	}
}

// Grid sets the initial grid. The builder keeps its own copy.
func (b *Builder) Grid(g *grid.Grid) *Builder {
	if g != nil {
		b.initial = g.Clone()
	}
	return b
}

// Rules appends rules in evaluation order. Earlier rules win priority ties.
func (b *Builder) Rules(rs ...rule.Rule) *Builder {
	b.rules = append(b.rules, rs...)
	return b
}

// Boundary sets the boundary mode for all neighborhood and pattern reads.
func (b *Builder) Boundary(mode grid.BoundaryMode) *Builder {
	b.mode = mode
	return b
}

// Void sets the sentinel state returned for out-of-range reads under
// grid.Fixed boundary mode.
func (b *Builder) Void(s grid.State) *Builder {
	b.void = s
	return b
}

// Seed sets the seed for the probability-sampling random stream.
func (b *Builder) Seed(seed int64) *Builder {
	b.seed = seed
	return b
}

// Workers bounds the worker pool used during proposal generation. Values
// below 1 fall back to one worker per CPU.
func (b *Builder) Workers(n int) *Builder {
	b.workers = n
	return b
}

// Color assigns a display color to a cell state.
func (b *Builder) Color(s grid.State, c color.RGBA) *Builder {
	b.palette[s] = c
	return b
}

// Build validates the configuration and returns a runnable automaton.
// Malformed rules and a missing grid are reported here and never reach
// the step scheduler.
func (b *Builder) Build() (*Automaton, error) {
	if b.initial == nil {
		return nil, ErrNoGrid
	}
	for i, r := range b.rules {
		if r == nil {
			return nil, fmt.Errorf("automaton: rule %d is nil", i)
		}
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("automaton: rule %d: %w", i, err)
		}
	}
	workers := b.workers
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	g := b.initial.Clone()
	a := &Automaton{
		cur:     g,
		next:    grid.New(g.Dims()),
		rules:   append([]rule.Rule(nil), b.rules...),
		env:     rule.Env{Mode: b.mode, Void: b.void},
		rnd:     rng.New(b.seed),
		seed:    b.seed,
		workers: workers,
		claimed: make([]bool, g.Rows()*g.Cols()),
		palette: b.palette,
	}
	return a, nil
}
