// Package render turns grid states into pixels for the live view and for
// image export.
package render

import (
	"image/color"

	"rulegrid/pkg/grid"
)

// Palette maps every possible cell state to a display color.
type Palette [256]color.RGBA

// PaletteTable expands a sparse state-to-color map into a full lookup
// table. States without an entry render as transparent black.
func PaletteTable(colors map[grid.State]color.RGBA) *Palette {
	var pal Palette
	for state, c := range colors {
		pal[state] = c
	}
	return &pal
}

// fillRGBA converts cell states into RGBA pixels using the palette.
func fillRGBA(buf []byte, cells []grid.State, pal *Palette) {
	for i, c := range cells {
		base := i * 4
		col := pal[c]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
