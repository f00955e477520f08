//go:build ebiten

// Package app adapts an automaton to the ebiten game loop: stepping,
// pausing, cell painting and state snapshots.
package app

import (
	"fmt"
	"image/png"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"rulegrid/internal/render"
	"rulegrid/internal/ui"
	"rulegrid/pkg/automaton"
	"rulegrid/pkg/grid"
	"rulegrid/pkg/textgrid"
)

// Game adapts an automaton to the ebiten.Game interface.
type Game struct {
	auto    *automaton.Automaton
	initial *grid.Grid
	painter *render.GridPainter
	overlay *ui.Overlay
	pal     *render.Palette

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
	pacer    *FixedStep

	paintStates []grid.State
	paintIdx    int
}

// New constructs a Game for the provided automaton. A positive
// stepsPerSecond decouples simulation stepping from the frame rate;
// zero steps once per frame.
func New(auto *automaton.Automaton, scale int, stepsPerSecond int) *Game {
	g := &Game{
		auto:    auto,
		initial: auto.Snapshot(),
		painter: render.NewGridPainter(auto.Grid().Dims()),
		overlay: ui.NewOverlay(),
		pal:     render.PaletteTable(auto.Palette()),
		scale:   scale,
		seed:    auto.Seed(),
	}
	if stepsPerSecond > 0 {
		g.pacer = NewFixedStep(stepsPerSecond)
	}
	for state := 0; state < 256; state++ {
		if _, ok := auto.Palette()[grid.State(state)]; ok {
			g.paintStates = append(g.paintStates, grid.State(state))
		}
	}
	if len(g.paintStates) == 0 {
		g.paintStates = []grid.State{1}
	}
	return g
}

// Reset restores the initial grid and restarts the random stream.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	if err := g.auto.Reset(g.initial); err != nil {
		// The initial snapshot is never nil once New has run.
		panic(err)
	}
	g.auto.Reseed(seed)
	g.tickOnce = false
}

// Update handles input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.paintIdx = (g.paintIdx + 1) % len(g.paintStates)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyW) {
		if err := g.saveSnapshot(); err != nil {
			return err
		}
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.paintCell()
	}

	g.overlay.Update()

	step := g.tickOnce
	if !g.paused && !step {
		step = g.pacer == nil || g.pacer.ShouldStep()
	}
	if step {
		g.tickOnce = false
		if err := g.auto.Step(); err != nil {
			return err
		}
	}
	return nil
}

// paintCell force-sets the hovered cell to the selected paint state. This
// bypasses the rule pipeline on purpose: painting is an immediate mutation
// between steps.
func (g *Game) paintCell() {
	x, y := ebiten.CursorPosition()
	row := y / g.scale
	col := x / g.scale
	if err := g.auto.SetCell(row, col, g.paintStates[g.paintIdx]); err != nil {
		// Cursor outside the grid; nothing to paint.
		return
	}
}

// saveSnapshot writes the current grid as both text and PNG, named after
// the step count.
func (g *Game) saveSnapshot() error {
	base := fmt.Sprintf("rulegrid-%06d", g.auto.StepCount())
	if err := textgrid.WriteFile(base+".txt", g.auto.Grid()); err != nil {
		return err
	}
	f, err := os.Create(base + ".png")
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, render.ToImage(g.auto.Grid(), g.pal))
}

// Draw renders the current grid and the status overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.auto.Grid(), g.pal, g.scale)

	status := fmt.Sprintf("step %d", g.auto.StepCount())
	if g.paused {
		status += " [paused]"
	}
	status += fmt.Sprintf(" | paint %q | seed %d", g.paintStates[g.paintIdx], g.seed)
	g.overlay.Draw(screen, status)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	rows, cols := g.auto.Grid().Dims()
	return cols * g.scale, rows * g.scale
}
