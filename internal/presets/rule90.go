package presets

import (
	"image/color"

	"rulegrid/pkg/automaton"
	"rulegrid/pkg/grid"
	"rulegrid/pkg/rng"
	"rulegrid/pkg/rule"
)

const (
	r90Zero grid.State = '0'
	r90One  grid.State = '1'
	r90Void grid.State = '_'
)

// NewRule90 renders the one-dimensional Rule 90 automaton on a 2D grid:
// each row recomputes from the row above it, so successive generations
// appear as successive rows.
func NewRule90(w, h int, seed int64) (*automaton.Automaton, error) {
	g := grid.New(h, w)
	g.Fill(r90Zero)
	cells := g.Cells()
	r := rng.New(seed)
	for col := 0; col < w; col++ {
		if r.Bool() {
			cells[col] = r90One
		}
	}

	// The cell one row up plus its two diagonal neighbors. The straight-up
	// sample only flags the top row, which keeps its value forever.
	env := &rule.EnvironmentRule{
		Offsets: []grid.Offset{
			{DRow: -1, DCol: -1},
			{DRow: -1, DCol: 1},
			{DRow: -1, DCol: 0},
		},
		Transform: func(center grid.State, neigh []grid.State) grid.State {
			if neigh[2] == r90Void {
				return center
			}
			if (neigh[0] == r90One) != (neigh[1] == r90One) {
				return r90One
			}
			return r90Zero
		},
	}

	return automaton.NewBuilder().
		Grid(g).
		Boundary(grid.Fixed).
		Void(r90Void).
		Seed(seed).
		Rules(env).
		Color(r90Zero, color.RGBA{A: 255}).
		Color(r90One, color.RGBA{R: 255, G: 255, B: 255, A: 255}).
		Build()
}

func init() {
	Register("rule90", func(cfg map[string]string) (*automaton.Automaton, error) {
		w, h, seed := dims(cfg, 256, 256, automaton.DefaultSeed)
		return NewRule90(w, h, seed)
	})
}
