// Package textgrid converts between grids and plain text, one character
// per cell and one line per row. It backs the grid construction and
// persistence collaborators; the simulation core itself never touches
// files.
package textgrid

import (
	"errors"
	"os"
	"strings"

	"rulegrid/pkg/grid"
)

// Pad is the state used to fill short lines so the parsed grid stays
// rectangular.
const Pad grid.State = ' '

// Parse builds a grid from text. Lines become rows; every line is padded
// with Pad up to the longest line. Carriage returns are stripped, and a
// single trailing newline does not produce an empty row.
func Parse(text string) (*grid.Grid, error) {
	text = strings.ReplaceAll(text, "\r", "")
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")

	cols := 0
	for _, line := range lines {
		if len(line) > cols {
			cols = len(line)
		}
	}
	if cols == 0 {
		return nil, errors.New("textgrid: no cells in input")
	}

	g := grid.New(len(lines), cols)
	cells := g.Cells()
	for row, line := range lines {
		base := row * cols
		for col := 0; col < cols; col++ {
			if col < len(line) {
				cells[base+col] = line[col]
				continue
			}
			cells[base+col] = Pad
		}
	}
	return g, nil
}

// Format renders the grid as text, one line per row.
func Format(g *grid.Grid) string {
	rows, cols := g.Dims()
	cells := g.Cells()
	var sb strings.Builder
	sb.Grow(rows * (cols + 1))
	for row := 0; row < rows; row++ {
		sb.Write(cells[row*cols : (row+1)*cols])
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ReadFile parses a grid from the named text file.
func ReadFile(path string) (*grid.Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(string(data))
}

// WriteFile writes the grid to the named file in Format's layout.
func WriteFile(path string, g *grid.Grid) error {
	return os.WriteFile(path, []byte(Format(g)), 0o644)
}
