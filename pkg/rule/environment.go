package rule

import (
	"errors"

	"rulegrid/pkg/grid"
)

// EnvironmentRule computes each cell's next state from the states sampled
// at a fixed set of relative offsets. The transform is total: it runs for
// every cell, and a result equal to the current state means the cell is
// left alone.
type EnvironmentRule struct {
	// Offsets describe the neighborhood shape. The sample passed to
	// Transform preserves this order.
	Offsets []grid.Offset
	// Priority orders this rule's proposals against others, higher first.
	Priority int
	// Transform maps the center state and its sampled neighborhood to the
	// cell's next state. It must be deterministic and must not retain the
	// neighborhood slice, which is reused between cells.
	Transform func(center grid.State, neighborhood []grid.State) grid.State
}

// Validate checks that the rule carries a transform and a neighborhood.
func (r *EnvironmentRule) Validate() error {
	if r.Transform == nil {
		return errors.New("rule: environment rule needs a transform function")
	}
	if len(r.Offsets) == 0 {
		return errors.New("rule: environment rule needs a neighborhood shape")
	}
	return nil
}

// Propose evaluates every cell with row in [rowLo, rowHi) and emits a 1x1
// proposal for each cell whose computed state differs from its current one.
func (r *EnvironmentRule) Propose(snap *grid.Grid, env Env, rowLo, rowHi int) []Proposal {
	_, cols := snap.Dims()
	buf := make([]grid.State, len(r.Offsets))

	var proposals []Proposal
	for row := rowLo; row < rowHi; row++ {
		for col := 0; col < cols; col++ {
			center := snap.At(row, col)
			buf = snap.Sample(buf, row, col, r.Offsets, env.Mode, env.Void)
			next := r.Transform(center, buf)
			if next == center {
				continue
			}
			proposals = append(proposals, Proposal{
				Row:      row,
				Col:      col,
				Priority: r.Priority,
				Chance:   1,
				Writes:   []Write{{Row: row, Col: col, State: next}},
			})
		}
	}
	return proposals
}
