// Package automaton ties a grid and an ordered rule list together and
// advances them step by step through a proposal/claim/commit cycle.
package automaton

import (
	"image/color"

	"rulegrid/pkg/grid"
	"rulegrid/pkg/rng"
	"rulegrid/pkg/rule"
)

// Automaton holds the current grid, the ordered rule list and a step
// counter. It is mutated only through Step, Reset and SetCell.
//
// An Automaton is not safe for concurrent use; callers needing parallel
// simulations must own independent instances. Parallelism inside a single
// Step never changes the result.
type Automaton struct {
	cur  *grid.Grid
	next *grid.Grid

	rules   []rule.Rule
	env     rule.Env
	rnd     *rng.RNG
	seed    int64
	workers int

	claimed []bool
	steps   uint64

	palette map[grid.State]color.RGBA
}

// Grid returns the current grid. The returned grid is owned by the
// automaton and must be treated as read-only between steps; use Snapshot
// for an independent copy.
func (a *Automaton) Grid() *grid.Grid { return a.cur }

// Snapshot returns a deep copy of the current grid.
func (a *Automaton) Snapshot() *grid.Grid { return a.cur.Clone() }

// StepCount returns the number of committed steps since construction or
// the last Reset.
func (a *Automaton) StepCount() uint64 { return a.steps }

// Boundary returns the active boundary mode and the void state used for
// out-of-range reads under grid.Fixed mode.
func (a *Automaton) Boundary() (grid.BoundaryMode, grid.State) {
	return a.env.Mode, a.env.Void
}

// Palette returns the display colors configured at build time, keyed by
// cell state. The map is shared; callers must not modify it.
func (a *Automaton) Palette() map[grid.State]color.RGBA { return a.palette }

// SetCell force-sets a single cell outside the rule pipeline. The write is
// an immediate grid mutation between steps, not a proposal.
func (a *Automaton) SetCell(row, col int, s grid.State) error {
	return a.cur.Set(row, col, s)
}

// Reset replaces the current grid and zeroes the step counter. The rule
// list, boundary configuration and random stream are left untouched; use
// Reseed to restart the randomness as well. The new grid may have different
// dimensions from the old one.
func (a *Automaton) Reset(g *grid.Grid) error {
	if g == nil {
		return ErrNoGrid
	}
	a.cur = g.Clone()
	a.next = grid.New(g.Dims())
	a.claimed = make([]bool, g.Rows()*g.Cols())
	a.steps = 0
	return nil
}

// Reseed restarts the random stream used for probability sampling. Two
// automatons with identical grids, rules and seeds produce identical
// results regardless of worker count.
func (a *Automaton) Reseed(seed int64) {
	a.seed = seed
	a.rnd.Reseed(seed)
}

// Seed returns the seed the random stream was last started from.
func (a *Automaton) Seed() int64 { return a.seed }
