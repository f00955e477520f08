// Package rule defines the three rule kinds a cellular automaton can be
// built from and the proposal shape they all reduce to.
//
// Rules never mutate the grid they are given. Each rule inspects a
// read-only snapshot and proposes cell writes; the automaton's step
// scheduler decides which proposals commit.
package rule

import "rulegrid/pkg/grid"

// Env carries the boundary configuration every rule evaluates under.
type Env struct {
	Mode grid.BoundaryMode
	// Void is the sentinel state returned for out-of-range reads under
	// grid.Fixed boundary mode.
	Void grid.State
}

// Write is a single staged cell mutation.
type Write struct {
	Row, Col int
	State    grid.State
}

// Proposal is a candidate group of cell writes generated by one rule at one
// scan position. A proposal commits atomically or not at all.
type Proposal struct {
	// Row, Col anchor the proposal at its scan position. Conflict
	// resolution uses them as the final tie-break.
	Row, Col int
	// Priority orders proposals during conflict resolution, higher first.
	Priority int
	// Chance is the probability in [0, 1] that the proposal survives to
	// conflict resolution. Values >= 1 never consume randomness.
	Chance float64
	// Writes are the cells the proposal wants to claim.
	Writes []Write
}

// Rule is the capability shared by the pattern, environment and counting
// rule kinds: propose transformations for one step.
type Rule interface {
	// Propose scans rows [rowLo, rowHi) of the snapshot and returns the
	// rule's candidate writes. It must be safe to call concurrently with
	// other Propose calls on the same snapshot.
	Propose(snap *grid.Grid, env Env, rowLo, rowHi int) []Proposal

	// Validate reports configuration errors. It is called once when the
	// automaton is built; a rule that fails validation never runs.
	Validate() error
}
