package presets

import (
	"image/color"

	"rulegrid/pkg/automaton"
	"rulegrid/pkg/grid"
	"rulegrid/pkg/rng"
	"rulegrid/pkg/rule"
)

const (
	lifeDead  grid.State = ' '
	lifeAlive grid.State = 'X'
)

// NewLife builds Conway's Game of Life on a randomized board. Cells beyond
// the edge count as dead.
func NewLife(w, h int, seed int64) (*automaton.Automaton, error) {
	g := grid.New(h, w)
	cells := g.Cells()
	r := rng.New(seed)
	for i := range cells {
		cells[i] = lifeDead
		if r.Bool() {
			cells[i] = lifeAlive
		}
	}

	return automaton.NewBuilder().
		Grid(g).
		Boundary(grid.Fixed).
		Void(lifeDead).
		Seed(seed).
		Rules(rule.Life(lifeAlive, lifeDead, []int{3}, []int{2, 3})).
		Color(lifeDead, color.RGBA{R: 16, G: 16, B: 24, A: 255}).
		Color(lifeAlive, color.RGBA{R: 95, G: 205, B: 228, A: 255}).
		Build()
}

func init() {
	Register("life", func(cfg map[string]string) (*automaton.Automaton, error) {
		w, h, seed := dims(cfg, 256, 256, automaton.DefaultSeed)
		return NewLife(w, h, seed)
	})
}
