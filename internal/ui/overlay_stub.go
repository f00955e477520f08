//go:build !ebiten

// Package ui draws the status overlay for the live view.
package ui

// Overlay is a placeholder that satisfies the API expected by the GUI build.
type Overlay struct{}

// NewOverlay returns an inert overlay for headless builds.
func NewOverlay() *Overlay { return &Overlay{} }

// Update is a no-op placeholder.
func (o *Overlay) Update() {}

// Draw is a no-op placeholder to satisfy the interface shape.
func (o *Overlay) Draw(any, string) {}
