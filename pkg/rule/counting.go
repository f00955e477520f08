package rule

import (
	"errors"

	"rulegrid/pkg/grid"
)

// Counts tallies how often each state appears in a sampled neighborhood.
type Counts [256]uint16

// Of returns the number of neighbors holding the given state.
func (c *Counts) Of(s grid.State) int { return int(c[s]) }

// CountingRule is an environment rule restricted to neighbor-state counts:
// the next state of a cell depends only on its own state and on how many
// neighbors hold each state, not on where they sit.
type CountingRule struct {
	// Offsets describe the counted neighborhood.
	Offsets []grid.Offset
	// Priority orders this rule's proposals against others, higher first.
	Priority int
	// Transform maps the center state and the neighbor count vector to the
	// cell's next state. It must be deterministic and must not retain the
	// counts pointer, which is reused between cells.
	Transform func(center grid.State, counts *Counts) grid.State
}

// Validate checks that the rule carries a transform and a neighborhood.
func (r *CountingRule) Validate() error {
	if r.Transform == nil {
		return errors.New("rule: counting rule needs a transform function")
	}
	if len(r.Offsets) == 0 {
		return errors.New("rule: counting rule needs a neighborhood shape")
	}
	return nil
}

// Propose evaluates every cell with row in [rowLo, rowHi) and emits a 1x1
// proposal for each cell whose computed state differs from its current one.
func (r *CountingRule) Propose(snap *grid.Grid, env Env, rowLo, rowHi int) []Proposal {
	_, cols := snap.Dims()
	buf := make([]grid.State, len(r.Offsets))
	var counts Counts

	var proposals []Proposal
	for row := rowLo; row < rowHi; row++ {
		for col := 0; col < cols; col++ {
			center := snap.At(row, col)
			buf = snap.Sample(buf, row, col, r.Offsets, env.Mode, env.Void)
			counts = Counts{}
			for _, s := range buf {
				counts[s]++
			}
			next := r.Transform(center, &counts)
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

// Life returns a Game-of-Life style counting rule over the Moore
// neighborhood: a dead cell becomes alive when its live-neighbor count
// appears in birth, a live cell stays alive when it appears in survive.
func Life(alive, dead grid.State, birth, survive []int) *CountingRule {
	var born, keep [9]bool
	for _, n := range birth {
		if n >= 0 && n < len(born) {
			born[n] = true
		}
	}
	for _, n := range survive {
		if n >= 0 && n < len(keep) {
			keep[n] = true
		}
	}
	return &CountingRule{
		Offsets: grid.Moore(1),
		Transform: func(center grid.State, counts *Counts) grid.State {
			n := counts.Of(alive)
			if center == alive {
				if keep[n] {
					return alive
				}
				return dead
			}
			if born[n] {
				return alive
			}
			return center
		},
	}
}
