//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"rulegrid/pkg/grid"
)

// GridPainter uploads grid states into a single texture and draws it
// scaled onto the screen.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid with the given dimensions.
func NewGridPainter(rows, cols int) *GridPainter {
	gp := &GridPainter{w: cols, h: rows, buf: make([]byte, 4*rows*cols)}
	gp.img = ebiten.NewImage(cols, rows)
	return gp
}

// Blit converts the grid through the palette and draws it onto dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, g *grid.Grid, pal *Palette, scale int) {
	cells := g.Cells()
	if len(cells) != gp.w*gp.h {
		return
	}
	fillRGBA(gp.buf, cells, pal)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the painted grid dimensions as (rows, cols).
func (gp *GridPainter) Size() (int, int) { return gp.h, gp.w }
