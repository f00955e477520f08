package rule

import (
	"errors"
	"fmt"

	"rulegrid/pkg/grid"
)

// Wildcard is the character that marks a don't-care cell in a pattern row.
// In the source pattern it matches any state; in the target pattern it
// leaves the cell untouched.
const Wildcard = '*'

// ErrInvalidProbability reports a chance outside [0, 1] at rule construction.
var ErrInvalidProbability = errors.New("rule: chance must be within [0, 1]")

type patternCell struct {
	state grid.State
	wild  bool
}

// PatternGrid is a small rectangle of cell states with wildcard positions,
// used as the source or target of a PatternRule.
type PatternGrid struct {
	rows, cols int
	cells      []patternCell
}

// ParsePatternGrid builds a pattern from text rows. Each byte is one cell
// state; Wildcard bytes become don't-care cells. All rows must have equal
// length.
func ParsePatternGrid(rows ...string) (PatternGrid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return PatternGrid{}, errors.New("rule: pattern must have at least one cell")
	}
	cols := len(rows[0])
	p := PatternGrid{rows: len(rows), cols: cols, cells: make([]patternCell, 0, len(rows)*cols)}
	for i, row := range rows {
		if len(row) != cols {
			return PatternGrid{}, fmt.Errorf("rule: pattern row %d has %d cells, want %d", i, len(row), cols)
		}
		for j := 0; j < cols; j++ {
			c := patternCell{state: row[j]}
			if row[j] == Wildcard {
				c = patternCell{wild: true}
			}
			p.cells = append(p.cells, c)
		}
	}
	return p, nil
}

// Dims returns the pattern dimensions.
func (p PatternGrid) Dims() (rows, cols int) { return p.rows, p.cols }

func (p PatternGrid) at(row, col int) patternCell { return p.cells[row*p.cols+col] }

// PatternRule replaces occurrences of a source pattern with a target
// pattern of identical dimensions.
type PatternRule struct {
	Before PatternGrid
	After  PatternGrid
	// Priority orders this rule's proposals against others, higher first.
	Priority int
	// Chance is sampled once per matched occurrence.
	Chance float64
}

// NewPattern builds a pattern rule from text rows with chance 1 and
// priority 0. Use the exported fields to adjust either.
func NewPattern(before, after []string) (*PatternRule, error) {
	b, err := ParsePatternGrid(before...)
	if err != nil {
		return nil, fmt.Errorf("rule: source pattern: %w", err)
	}
	a, err := ParsePatternGrid(after...)
	if err != nil {
		return nil, fmt.Errorf("rule: target pattern: %w", err)
	}
	r := &PatternRule{Before: b, After: a, Chance: 1}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// Validate checks the pattern shapes and the chance range.
func (r *PatternRule) Validate() error {
	if r.Before.rows == 0 || r.After.rows == 0 {
		return errors.New("rule: pattern rule needs source and target patterns")
	}
	if r.Before.rows != r.After.rows || r.Before.cols != r.After.cols {
		return fmt.Errorf("rule: source pattern is (%d, %d) but target pattern is (%d, %d)",
			r.Before.rows, r.Before.cols, r.After.rows, r.After.cols)
	}
	if r.Chance < 0 || r.Chance > 1 {
		return fmt.Errorf("%w: %v", ErrInvalidProbability, r.Chance)
	}
	return nil
}

// Propose scans all anchor positions with rows in [rowLo, rowHi) and emits
// one proposal per full match. Under grid.Fixed boundary mode anchors whose
// pattern would extend past an edge are unmatchable; under grid.Periodic
// the pattern wraps and every anchor is a candidate.
func (r *PatternRule) Propose(snap *grid.Grid, env Env, rowLo, rowHi int) []Proposal {
	rows, cols := snap.Dims()
	if env.Mode == grid.Fixed && (r.Before.rows > rows || r.Before.cols > cols) {
		// Permanently unmatchable on this grid; yields zero proposals.
		return nil
	}

	var proposals []Proposal
	for row := rowLo; row < rowHi; row++ {
		for col := 0; col < cols; col++ {
			if env.Mode == grid.Fixed && (row+r.Before.rows > rows || col+r.Before.cols > cols) {
				continue
			}
			if p, ok := r.matchAt(snap, row, col); ok {
				proposals = append(proposals, p)
			}
		}
	}
	return proposals
}

func (r *PatternRule) matchAt(snap *grid.Grid, row, col int) (Proposal, bool) {
	for dr := 0; dr < r.Before.rows; dr++ {
		for dc := 0; dc < r.Before.cols; dc++ {
			cell := r.Before.at(dr, dc)
			if cell.wild {
				continue
			}
			tr, tc := snap.Wrap(row+dr, col+dc)
			if snap.At(tr, tc) != cell.state {
				return Proposal{}, false
			}
		}
	}

	writes := make([]Write, 0, r.After.rows*r.After.cols)
	for dr := 0; dr < r.After.rows; dr++ {
		for dc := 0; dc < r.After.cols; dc++ {
			cell := r.After.at(dr, dc)
			if cell.wild {
				continue
			}
			tr, tc := snap.Wrap(row+dr, col+dc)
			writes = append(writes, Write{Row: tr, Col: tc, State: cell.state})
		}
	}
	return Proposal{Row: row, Col: col, Priority: r.Priority, Chance: r.Chance, Writes: writes}, true
}
