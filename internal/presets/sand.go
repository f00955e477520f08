package presets

import (
	"image/color"

	"rulegrid/pkg/automaton"
	"rulegrid/pkg/grid"
	"rulegrid/pkg/rng"
	"rulegrid/pkg/rule"
)

const (
	sandEmpty  grid.State = ' '
	sandGrain  grid.State = 'X'
	sandFire   grid.State = 'F'
	sandAsh    grid.State = 'A'
	sandSource grid.State = 'S'
	sandVoid   grid.State = '_'
)

// sandPatterns describes a falling-sand world with fire and ash. Order
// matters: earlier patterns win ties against later ones.
func sandPatterns() ([]rule.Rule, error) {
	type spec struct {
		before, after []string
		priority      int
		chance        float64
	}
	specs := []spec{
		// Sand falls two cells when it can, one otherwise.
		{before: []string{"X", " ", " "}, after: []string{" ", " ", "X"}, priority: 1, chance: 0.9},
		{before: []string{"X", " "}, after: []string{" ", "X"}, chance: 1},
		// Stacks of sand collapse sideways.
		{before: []string{"X ", "X "}, after: []string{" *", "*X"}, chance: 1},
		{before: []string{" X", " X"}, after: []string{"* ", "X*"}, chance: 1},
		// So do 45 degree slopes.
		{before: []string{"X  ", "XX "}, after: []string{" **", "**X"}, chance: 1},
		{before: []string{"  X", " XX"}, after: []string{"** ", "X**"}, chance: 1},
		// Fire drifts upward, occasionally down or sideways.
		{before: []string{" ", "F"}, after: []string{"F", " "}, chance: 0.3},
		{before: []string{"F", " "}, after: []string{" ", "F"}, chance: 0.1},
		{before: []string{" F"}, after: []string{"F "}, chance: 0.1},
		{before: []string{"F "}, after: []string{" F"}, chance: 0.1},
		// Fire ignites adjacent sand.
		{before: []string{"X", "F"}, after: []string{"F", "*"}, chance: 0.8},
		{before: []string{"F", "X"}, after: []string{"*", "F"}, chance: 0.8},
		{before: []string{"XF"}, after: []string{"F*"}, chance: 0.8},
		{before: []string{"FX"}, after: []string{"*F"}, chance: 0.8},
		// Ignition across corners.
		{before: []string{"X*", "*F"}, after: []string{"F*", "**"}, chance: 0.8},
		{before: []string{"*X", "F*"}, after: []string{"*F", "**"}, chance: 0.8},
		{before: []string{"*F", "X*"}, after: []string{"**", "F*"}, chance: 0.8},
		{before: []string{"F*", "*X"}, after: []string{"**", "*F"}, chance: 0.8},
		// Fire burns out into ash.
		{before: []string{"F"}, after: []string{"A"}, priority: 1, chance: 0.03},
		// Ash falls and collapses like slow sand.
		{before: []string{"A", " "}, after: []string{" ", "A"}, chance: 1},
		{before: []string{"A ", "A "}, after: []string{" *", "*A"}, chance: 1},
		{before: []string{" A", " A"}, after: []string{"* ", "A*"}, chance: 1},
		// Fire passes upward through ash.
		{before: []string{"A", "F"}, after: []string{"F", "A"}, chance: 1},
		// Ash smothers into fire when pressed against sand.
		{before: []string{"A", "X"}, after: []string{" ", "F"}, chance: 1},
		{before: []string{"X", "A"}, after: []string{"F", "*"}, chance: 1},
		// The source breathes fire.
		{before: []string{"*", "S"}, after: []string{"F", "S"}, chance: 0.5},
	}

	rules := make([]rule.Rule, 0, len(specs))
	for _, s := range specs {
		r, err := rule.NewPattern(s.before, s.after)
		if err != nil {
			return nil, err
		}
		r.Priority = s.priority
		r.Chance = s.chance
		rules = append(rules, r)
	}
	return rules, nil
}

// NewSand builds a falling-sand simulation: sand settles into piles, a
// fire source ignites it, and burnt sand rains down as ash.
func NewSand(w, h int, seed int64) (*automaton.Automaton, error) {
	g := grid.New(h, w)
	g.Fill(sandEmpty)
	cells := g.Cells()
	r := rng.New(seed)

	// Sprinkle sand through the upper half and anchor a fire source at
	// the bottom center.
	for row := 0; row < h/2; row++ {
		for col := 0; col < w; col++ {
			if r.Float64() < 0.25 {
				cells[row*w+col] = sandGrain
			}
		}
	}
	cells[(h-1)*w+w/2] = sandSource

	rules, err := sandPatterns()
	if err != nil {
		return nil, err
	}

	return automaton.NewBuilder().
		Grid(g).
		Boundary(grid.Fixed).
		Void(sandVoid).
		Seed(seed).
		Rules(rules...).
		Color(sandEmpty, color.RGBA{R: 61, G: 159, B: 184, A: 255}).
		Color(sandGrain, color.RGBA{R: 224, G: 210, B: 159, A: 255}).
		Color(sandFire, color.RGBA{R: 224, G: 105, B: 54, A: 255}).
		Color(sandAsh, color.RGBA{R: 184, G: 182, B: 182, A: 255}).
		Color(sandSource, color.RGBA{R: 128, G: 25, B: 14, A: 255}).
		Build()
}

func init() {
	Register("sand", func(cfg map[string]string) (*automaton.Automaton, error) {
		w, h, seed := dims(cfg, 180, 120, automaton.DefaultSeed)
		return NewSand(w, h, seed)
	})
}
