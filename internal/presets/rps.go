package presets

import (
	"image/color"

	"rulegrid/pkg/automaton"
	"rulegrid/pkg/grid"
	"rulegrid/pkg/rule"
)

// NewRPS builds a four-faction rock-paper-scissors automaton: a cell is
// converted when at least three of its neighbors belong to the faction
// that beats it, producing slowly rotating spirals.
func NewRPS(w, h int, seed int64) (*automaton.Automaton, error) {
	const factions = 4

	g := grid.New(h, w)
	cells := g.Cells()
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			var f grid.State
			switch {
			case row >= h/2 && col >= w/2:
				f = 0
			case row >= h/2:
				f = 1
			case col >= w/2:
				f = 3
			default:
				f = 2
			}
			cells[row*w+col] = f
		}
	}

	conquer := &rule.CountingRule{
		Offsets: grid.Moore(1),
		Transform: func(center grid.State, counts *rule.Counts) grid.State {
			predator := (center + 1) % factions
			if counts.Of(predator) >= 3 {
				return predator
			}
			return center
		},
	}

	return automaton.NewBuilder().
		Grid(g).
		Boundary(grid.Periodic).
		Seed(seed).
		Rules(conquer).
		Color(0, color.RGBA{R: 66, G: 135, B: 245, A: 255}).
		Color(1, color.RGBA{R: 36, G: 80, B: 201, A: 255}).
		Color(2, color.RGBA{R: 61, G: 159, B: 235, A: 255}).
		Color(3, color.RGBA{R: 146, G: 199, B: 240, A: 255}).
		Build()
}

func init() {
	Register("rps", func(cfg map[string]string) (*automaton.Automaton, error) {
		w, h, seed := dims(cfg, 384, 384, automaton.DefaultSeed)
		return NewRPS(w, h, seed)
	})
}
