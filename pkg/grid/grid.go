// Package grid provides the dense 2D cell container shared by every rule
// kind, together with boundary-aware neighborhood sampling.
package grid

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
)

// State is the value held by a single cell. States are byte-sized symbols,
// commonly loaded from and rendered as text characters.
type State = uint8

// OutOfBoundsError reports an access outside the grid dimensions.
type OutOfBoundsError struct {
	Row, Col   int
	Rows, Cols int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("grid: index (%d, %d) out of bounds for grid of size (%d, %d)",
		e.Row, e.Col, e.Rows, e.Cols)
}

// Grid stores a rectangular block of cell states in row-major order.
// Dimensions are fixed after construction.
type Grid struct {
	rows, cols int
	cells      []State
}

// New allocates a grid with the given dimensions, filled with the zero state.
// Dimensions smaller than 1 are clamped to 1.
func New(rows, cols int) *Grid {
	if rows <= 0 {
		rows = 1
	}
	if cols <= 0 {
		cols = 1
	}
	return &Grid{rows: rows, cols: cols, cells: make([]State, rows*cols)}
}

// FromCells builds a grid from a row-major slice. The slice is copied.
func FromCells(rows, cols int, cells []State) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("grid: dimensions (%d, %d) must be positive", rows, cols)
	}
	if len(cells) != rows*cols {
		return nil, fmt.Errorf("grid: %d cells do not fill a (%d, %d) grid", len(cells), rows, cols)
	}
	g := New(rows, cols)
	copy(g.cells, cells)
	return g, nil
}

// Dims returns the number of rows and columns.
func (g *Grid) Dims() (rows, cols int) { return g.rows, g.cols }

// Rows returns the grid height.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the grid width.
func (g *Grid) Cols() int { return g.cols }

// Cells exposes the backing slice so callers can read values directly.
func (g *Grid) Cells() []State { return g.cells }

// Index returns the linear slice index for (row, col). No bounds check.
func (g *Grid) Index(row, col int) int { return row*g.cols + col }

// In reports whether (row, col) lies inside the grid.
func (g *Grid) In(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Get returns the state at (row, col), or an OutOfBoundsError when the
// coordinates exceed the declared dimensions. Boundary resolution (wrapping
// or void substitution) is the caller's job; see Sample.
func (g *Grid) Get(row, col int) (State, error) {
	if !g.In(row, col) {
		return 0, &OutOfBoundsError{Row: row, Col: col, Rows: g.rows, Cols: g.cols}
	}
	return g.cells[row*g.cols+col], nil
}

// At returns the state at (row, col) without a bounds check. Callers must
// have validated the coordinates already.
func (g *Grid) At(row, col int) State { return g.cells[row*g.cols+col] }

// Set writes the state at (row, col), or returns an OutOfBoundsError.
func (g *Grid) Set(row, col int, s State) error {
	if !g.In(row, col) {
		return &OutOfBoundsError{Row: row, Col: col, Rows: g.rows, Cols: g.cols}
	}
	g.cells[row*g.cols+col] = s
	return nil
}

// Wrap reduces the coordinates modulo the grid dimensions so that any
// integer pair maps onto the grid (toroidal addressing).
func (g *Grid) Wrap(row, col int) (int, int) {
	row = (row%g.rows + g.rows) % g.rows
	col = (col%g.cols + g.cols) % g.cols
	return row, col
}

// Fill sets every cell to the given state.
func (g *Grid) Fill(s State) {
	for i := range g.cells {
		g.cells[i] = s
	}
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	c := New(g.rows, g.cols)
	copy(c.cells, g.cells)
	return c
}

// CopyFrom overwrites this grid's cells with those of src. The grids must
// have identical dimensions.
func (g *Grid) CopyFrom(src *Grid) error {
	if g.rows != src.rows || g.cols != src.cols {
		return fmt.Errorf("grid: cannot copy (%d, %d) grid into (%d, %d) grid",
			src.rows, src.cols, g.rows, g.cols)
	}
	copy(g.cells, src.cells)
	return nil
}

// Equal reports structural equality: same dimensions and identical cell
// values in the same positions.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.rows != o.rows || g.cols != o.cols {
		return false
	}
	for i, c := range g.cells {
		if o.cells[i] != c {
			return false
		}
	}
	return true
}

// Hash returns a structural FNV-1a hash consistent with Equal.
func (g *Grid) Hash() uint64 {
	h := fnv.New64a()
	var dims [16]byte
	binary.LittleEndian.PutUint64(dims[:8], uint64(g.rows))
	binary.LittleEndian.PutUint64(dims[8:], uint64(g.cols))
	h.Write(dims[:])
	h.Write(g.cells)
	return h.Sum64()
}
