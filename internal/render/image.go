package render

import (
	"image"

	"rulegrid/pkg/grid"
)

// ToImage renders the grid into a new RGBA image, one pixel per cell.
func ToImage(g *grid.Grid, pal *Palette) *image.RGBA {
	rows, cols := g.Dims()
	img := image.NewRGBA(image.Rect(0, 0, cols, rows))
	fillRGBA(img.Pix, g.Cells(), pal)
	return img
}
