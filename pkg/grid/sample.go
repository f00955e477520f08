package grid

// BoundaryMode decides how neighbor reads outside the grid are resolved.
type BoundaryMode uint8

const (
	// Periodic wraps out-of-range coordinates modulo the grid dimensions.
	Periodic BoundaryMode = iota
	// Fixed substitutes a configured void state for out-of-range reads.
	Fixed
)

func (m BoundaryMode) String() string {
	switch m {
	case Periodic:
		return "periodic"
	case Fixed:
		return "fixed"
	default:
		return "unknown"
	}
}

// Offset is a relative cell coordinate used to describe neighborhood shapes.
type Offset struct {
	DRow, DCol int
}

// Moore returns the Moore neighborhood of the given radius, excluding the
// center, in row-major offset order.
func Moore(radius int) []Offset {
	if radius < 1 {
		radius = 1
	}
	offsets := make([]Offset, 0, (2*radius+1)*(2*radius+1)-1)
	for dr := -radius; dr <= radius; dr++ {
		for dc := -radius; dc <= radius; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			offsets = append(offsets, Offset{DRow: dr, DCol: dc})
		}
	}
	return offsets
}

// VonNeumann returns the von Neumann neighborhood of the given radius,
// excluding the center, in row-major offset order.
func VonNeumann(radius int) []Offset {
	if radius < 1 {
		radius = 1
	}
	offsets := make([]Offset, 0, 2*radius*(radius+1))
	for dr := -radius; dr <= radius; dr++ {
		for dc := -radius; dc <= radius; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			if abs(dr)+abs(dc) <= radius {
				offsets = append(offsets, Offset{DRow: dr, DCol: dc})
			}
		}
	}
	return offsets
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Sample reads the states at the given offsets around (row, col) into dst
// and returns it. Offset order is preserved. Under Periodic mode coordinates
// wrap; under Fixed mode out-of-range offsets yield the void state. Sample
// never mutates the grid and is safe to call concurrently against the same
// snapshot. When dst is too small a fresh slice is allocated.
func (g *Grid) Sample(dst []State, row, col int, offsets []Offset, mode BoundaryMode, void State) []State {
	if cap(dst) < len(offsets) {
		dst = make([]State, len(offsets))
	}
	dst = dst[:len(offsets)]
	for i, off := range offsets {
		r := row + off.DRow
		c := col + off.DCol
		if g.In(r, c) {
			dst[i] = g.cells[r*g.cols+c]
			continue
		}
		if mode == Periodic {
			r, c = g.Wrap(r, c)
			dst[i] = g.cells[r*g.cols+c]
			continue
		}
		dst[i] = void
	}
	return dst
}
