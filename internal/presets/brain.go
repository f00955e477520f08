package presets

import (
	"image/color"

	"rulegrid/pkg/automaton"
	"rulegrid/pkg/grid"
	"rulegrid/pkg/rng"
	"rulegrid/pkg/rule"
)

const (
	brainDead  grid.State = 0
	brainOn    grid.State = 1
	brainDying grid.State = 2
)

// NewBrain builds Brian's Brain: firing cells always decay through a dying
// state to dead, and a dead cell fires when exactly two neighbors fire.
func NewBrain(w, h int, seed int64) (*automaton.Automaton, error) {
	g := grid.New(h, w)
	cells := g.Cells()
	r := rng.New(seed)
	for i := range cells {
		cells[i] = brainDead
		if r.IntN(8) == 0 {
			cells[i] = brainOn
		}
	}

	brain := &rule.CountingRule{
		Offsets: grid.Moore(1),
		Transform: func(center grid.State, counts *rule.Counts) grid.State {
			switch center {
			case brainOn:
				return brainDying
			case brainDying:
				return brainDead
			default:
				if counts.Of(brainOn) == 2 {
					return brainOn
				}
				return brainDead
			}
		},
	}

	return automaton.NewBuilder().
		Grid(g).
		Boundary(grid.Periodic).
		Seed(seed).
		Rules(brain).
		Color(brainDead, color.RGBA{A: 255}).
		Color(brainOn, color.RGBA{R: 240, G: 240, B: 255, A: 255}).
		Color(brainDying, color.RGBA{R: 70, G: 90, B: 200, A: 255}).
		Build()
}

func init() {
	Register("brain", func(cfg map[string]string) (*automaton.Automaton, error) {
		w, h, seed := dims(cfg, 256, 256, automaton.DefaultSeed)
		return NewBrain(w, h, seed)
	})
}
