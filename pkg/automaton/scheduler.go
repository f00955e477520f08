package automaton

import (
	"fmt"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"

	"rulegrid/pkg/grid"
	"rulegrid/pkg/rule"
)

// tagged pairs a proposal with the position of its rule in the automaton's
// rule list, the secondary tie-break during conflict resolution.
type tagged struct {
	rule.Proposal
	ruleIdx int
}

// Step advances the automaton by exactly one step: all rules propose in
// parallel against the current grid, the proposals are resolved
// deterministically, and the surviving writes commit atomically into a
// fresh grid. On error the current grid is left at the last committed
// state.
//
// Step must not be called concurrently with itself or any other method.
func (a *Automaton) Step() error {
	proposals := a.gather()
	a.sortProposals(proposals)

	if err := a.next.CopyFrom(a.cur); err != nil {
		return fmt.Errorf("automaton: step %d: %w", a.steps, err)
	}
	for i := range a.claimed {
		a.claimed[i] = false
	}

	for i := range proposals {
		p := &proposals[i]
		// Probability is consumed in sorted order for every weighted
		// proposal, before conflict resolution, so a fixed seed yields a
		// fixed outcome regardless of worker count.
		if p.Chance < 1 && a.rnd.Float64() >= p.Chance {
			continue
		}
		accepted, err := a.claim(p.Writes)
		if err != nil {
			// Rules only produce resolved in-bounds writes; reaching this
			// is an internal invariant violation and aborts the step
			// before commit.
			return fmt.Errorf("automaton: step %d: %w", a.steps, err)
		}
		if !accepted {
			continue
		}
		cells := a.next.Cells()
		cols := a.next.Cols()
		for _, w := range p.Writes {
			cells[w.Row*cols+w.Col] = w.State
		}
	}

	a.cur, a.next = a.next, a.cur
	a.steps++
	return nil
}

// gather runs every rule's proposal phase over the immutable snapshot,
// partitioned into row bands across a bounded worker pool.
func (a *Automaton) gather() []tagged {
	snap := a.cur
	rows := snap.Rows()

	bands := a.workers
	if bands > rows {
		bands = rows
	}
	if bands < 1 {
		bands = 1
	}
	bandSize := (rows + bands - 1) / bands

	var (
		mu  sync.Mutex
		out []tagged
		eg  errgroup.Group
	)
	eg.SetLimit(a.workers)

	for ri, r := range a.rules {
		for lo := 0; lo < rows; lo += bandSize {
			hi := lo + bandSize
			if hi > rows {
				hi = rows
			}
			eg.Go(func() error {
				ps := r.Propose(snap, a.env, lo, hi)
				if len(ps) == 0 {
					return nil
				}
				mu.Lock()
				for _, p := range ps {
					out = append(out, tagged{Proposal: p, ruleIdx: ri})
				}
				mu.Unlock()
				return nil
			})
		}
	}
	// Propose never fails; Wait only joins the workers.
	_ = eg.Wait()
	return out
}

// sortProposals orders proposals by priority descending, then rule order
// ascending, then scan position ascending. The order is total, so the
// resolution outcome does not depend on generation order.
func (a *Automaton) sortProposals(proposals []tagged) {
	slices.SortFunc(proposals, func(x, y tagged) int {
		switch {
		case x.Priority != y.Priority:
			if x.Priority > y.Priority {
				return -1
			}
			return 1
		case x.ruleIdx != y.ruleIdx:
			return x.ruleIdx - y.ruleIdx
		case x.Row != y.Row:
			return x.Row - y.Row
		default:
			return x.Col - y.Col
		}
	})
}

// claim accepts the write group iff none of its cells are already claimed
// this step, marking them claimed on acceptance. A group touching any
// claimed cell is rejected in full. Writes outside the grid are an
// invariant violation and reported as an error.
func (a *Automaton) claim(writes []rule.Write) (bool, error) {
	rows, cols := a.cur.Dims()
	for _, w := range writes {
		if w.Row < 0 || w.Row >= rows || w.Col < 0 || w.Col >= cols {
			return false, &grid.OutOfBoundsError{Row: w.Row, Col: w.Col, Rows: rows, Cols: cols}
		}
		if a.claimed[w.Row*cols+w.Col] {
			return false, nil
		}
	}
	for _, w := range writes {
		a.claimed[w.Row*cols+w.Col] = true
	}
	return true, nil
}
