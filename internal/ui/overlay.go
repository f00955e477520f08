//go:build ebiten

// Package ui draws the status overlay for the live view.
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Overlay renders a single status line on top of the simulation view.
type Overlay struct {
	visible bool
}

// NewOverlay constructs a visible overlay.
func NewOverlay() *Overlay {
	return &Overlay{visible: true}
}

// Update toggles overlay visibility on F1.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		o.visible = !o.visible
	}
}

// Draw renders the status line unless the overlay is hidden.
func (o *Overlay) Draw(screen *ebiten.Image, status string) {
	if !o.visible || status == "" {
		return
	}
	// Drop shadow keeps the text readable on light palettes.
	text.Draw(screen, status, basicfont.Face7x13, 7, 17, color.Black)
	text.Draw(screen, status, basicfont.Face7x13, 6, 16, color.White)
}
