package automaton

import (
	"errors"
	"testing"

	"rulegrid/pkg/grid"
	"rulegrid/pkg/rng"
	"rulegrid/pkg/rule"
)

func mustGrid(t *testing.T, lines ...string) *grid.Grid {
	t.Helper()
	cells := make([]grid.State, 0, len(lines)*len(lines[0]))
	for _, line := range lines {
		cells = append(cells, []grid.State(line)...)
	}
	g, err := grid.FromCells(len(lines), len(lines[0]), cells)
	if err != nil {
		t.Fatalf("building grid: %v", err)
	}
	return g
}

func mustPattern(t *testing.T, before, after []string) *rule.PatternRule {
	t.Helper()
	r, err := rule.NewPattern(before, after)
	if err != nil {
		t.Fatalf("NewPattern: %v", err)
	}
	return r
}

func render(g *grid.Grid) string {
	rows, cols := g.Dims()
	out := make([]byte, 0, rows*(cols+1))
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			out = append(out, g.At(r, c))
		}
		out = append(out, '\n')
	}
	return string(out)
}

func TestBuildValidation(t *testing.T) {
	if _, err := NewBuilder().Build(); !errors.Is(err, ErrNoGrid) {
		t.Fatalf("build without grid: err = %v, want ErrNoGrid", err)
	}

	g := mustGrid(t, "AB")
	if _, err := NewBuilder().Grid(g).Rules(nil).Build(); err == nil {
		t.Fatal("build with a nil rule should fail")
	}

	bad := mustPattern(t, []string{"A"}, []string{"B"})
	bad.Chance = 2
	if _, err := NewBuilder().Grid(g).Rules(bad).Build(); !errors.Is(err, rule.ErrInvalidProbability) {
		t.Fatalf("build with chance 2: err = %v, want ErrInvalidProbability", err)
	}
}

func TestNoRulesLeaveGridUnchanged(t *testing.T) {
	g := mustGrid(t, "AB", "CD")
	a, err := NewBuilder().Grid(g).Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	for i := 0; i < 50; i++ {
		if err := a.Step(); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}
	if !a.Grid().Equal(g) {
		t.Fatalf("grid changed with no rules:\n%s", render(a.Grid()))
	}
	if a.StepCount() != 50 {
		t.Fatalf("step count = %d, want 50", a.StepCount())
	}
}

func TestStepPreservesDimensions(t *testing.T) {
	g := mustGrid(t, " X ", "X X", " X ")
	a, err := NewBuilder().
		Grid(g).
		Rules(rule.Life('X', ' ', []int{3}, []int{2, 3})).
		Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	for i := 0; i < 20; i++ {
		if err := a.Step(); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		if rows, cols := a.Grid().Dims(); rows != 3 || cols != 3 {
			t.Fatalf("dims = (%d, %d) after step %d, want (3, 3)", rows, cols, i)
		}
	}
}

func TestPatternSwapReplacesDisjointMatches(t *testing.T) {
	a, err := NewBuilder().
		Grid(mustGrid(t, "1010")).
		Rules(mustPattern(t, []string{"10"}, []string{"01"})).
		Boundary(grid.Fixed).
		Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if err := a.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if got, want := render(a.Grid()), "0101\n"; got != want {
		t.Fatalf("after one step:\n%swant:\n%s", got, want)
	}
}

func TestOverlappingMatchesRejectInFull(t *testing.T) {
	// "XX" matches at columns 0 and 1. The first claim wins both cells;
	// the overlapping second match is rejected whole, so the third X is
	// carried over untouched rather than half-rewritten.
	a, err := NewBuilder().
		Grid(mustGrid(t, "XXX")).
		Rules(mustPattern(t, []string{"XX"}, []string{"YY"})).
		Boundary(grid.Fixed).
		Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if err := a.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if got, want := render(a.Grid()), "YYX\n"; got != want {
		t.Fatalf("after one step:\n%swant:\n%s", got, want)
	}
}

func TestHigherPriorityWinsConflicts(t *testing.T) {
	low := mustPattern(t, []string{"A"}, []string{"X"})
	high := mustPattern(t, []string{"A"}, []string{"Y"})
	high.Priority = 5

	a, err := NewBuilder().
		Grid(mustGrid(t, "AB")).
		Rules(low, high).
		Boundary(grid.Fixed).
		Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if err := a.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if got, want := render(a.Grid()), "YB\n"; got != want {
		t.Fatalf("after one step:\n%swant:\n%s", got, want)
	}
}

func TestRuleOrderBreaksPriorityTies(t *testing.T) {
	first := mustPattern(t, []string{"A"}, []string{"X"})
	second := mustPattern(t, []string{"A"}, []string{"Y"})

	a, err := NewBuilder().
		Grid(mustGrid(t, "AB")).
		Rules(first, second).
		Boundary(grid.Fixed).
		Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if err := a.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if got, want := render(a.Grid()), "XB\n"; got != want {
		t.Fatalf("after one step:\n%swant:\n%s", got, want)
	}
}

func TestLifeBlockForms(t *testing.T) {
	a, err := NewBuilder().
		Grid(mustGrid(t, "XX ", "X  ", "   ")).
		Rules(rule.Life('X', ' ', []int{3}, []int{2, 3})).
		Boundary(grid.Fixed).
		Void(' ').
		Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if err := a.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	want := "XX \nXX \n   \n"
	if got := render(a.Grid()); got != want {
		t.Fatalf("after one step:\n%swant:\n%s", got, want)
	}
	// Still life: further steps change nothing.
	if err := a.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if got := render(a.Grid()); got != want {
		t.Fatalf("block decayed:\n%swant:\n%s", got, want)
	}
}

func TestLifeBlinkerOscillates(t *testing.T) {
	initial := mustGrid(t,
		"     ",
		"  X  ",
		"  X  ",
		"  X  ",
		"     ")
	a, err := NewBuilder().
		Grid(initial).
		Rules(rule.Life('X', ' ', []int{3}, []int{2, 3})).
		Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if err := a.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	horizontal := "     \n     \n XXX \n     \n     \n"
	if got := render(a.Grid()); got != horizontal {
		t.Fatalf("after one step:\n%swant:\n%s", got, horizontal)
	}

	if err := a.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if !a.Grid().Equal(initial) {
		t.Fatalf("blinker did not return after two steps:\n%s", render(a.Grid()))
	}
}

func TestDeterminismAcrossWorkerCounts(t *testing.T) {
	build := func(workers int) *Automaton {
		src := rng.New(99)
		g := grid.New(16, 16)
		cells := g.Cells()
		for i := range cells {
			if src.Bool() {
				cells[i] = 'X'
			} else {
				cells[i] = ' '
			}
		}

		drift := mustPattern(t, []string{" X"}, []string{"X "})
		drift.Chance = 0.5
		decay := mustPattern(t, []string{"X"}, []string{" "})
		decay.Chance = 0.05

		a, err := NewBuilder().
			Grid(g).
			Rules(drift, decay).
			Seed(42).
			Workers(workers).
			Build()
		if err != nil {
			t.Fatalf("Build with %d workers: %v", workers, err)
		}
		return a
	}

	one := build(1)
	many := build(8)
	for i := 0; i < 30; i++ {
		if err := one.Step(); err != nil {
			t.Fatalf("single worker step %d: %v", i, err)
		}
		if err := many.Step(); err != nil {
			t.Fatalf("pooled step %d: %v", i, err)
		}
		if !one.Grid().Equal(many.Grid()) {
			t.Fatalf("grids diverged at step %d:\n%s\nvs\n%s", i, render(one.Grid()), render(many.Grid()))
		}
	}
	if one.Grid().Hash() != many.Grid().Hash() {
		t.Fatal("equal grids must hash identically")
	}
}

func TestSetCellOverride(t *testing.T) {
	a, err := NewBuilder().Grid(mustGrid(t, "AB")).Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if err := a.SetCell(0, 1, 'Z'); err != nil {
		t.Fatalf("SetCell: %v", err)
	}
	if got, _ := a.Grid().Get(0, 1); got != 'Z' {
		t.Fatalf("cell (0, 1) = %q, want Z", got)
	}

	var oob *grid.OutOfBoundsError
	if err := a.SetCell(5, 5, 'Z'); !errors.As(err, &oob) {
		t.Fatalf("out-of-range SetCell error = %v, want OutOfBoundsError", err)
	}
}

func TestResetReplacesGridAndCounter(t *testing.T) {
	a, err := NewBuilder().
		Grid(mustGrid(t, "A")).
		Rules(mustPattern(t, []string{"A"}, []string{"B"})).
		Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if err := a.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if a.StepCount() != 1 {
		t.Fatalf("step count = %d, want 1", a.StepCount())
	}

	if err := a.Reset(nil); !errors.Is(err, ErrNoGrid) {
		t.Fatalf("Reset(nil) error = %v, want ErrNoGrid", err)
	}

	bigger := mustGrid(t, "AA", "AA")
	if err := a.Reset(bigger); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if a.StepCount() != 0 {
		t.Fatalf("step count after reset = %d, want 0", a.StepCount())
	}
	if rows, cols := a.Grid().Dims(); rows != 2 || cols != 2 {
		t.Fatalf("dims after reset = (%d, %d), want (2, 2)", rows, cols)
	}
	// Reset keeps its own copy of the new grid.
	bigger.Fill('Z')
	if got, _ := a.Grid().Get(0, 0); got != 'A' {
		t.Fatalf("reset grid aliases the caller's grid")
	}
	if err := a.Step(); err != nil {
		t.Fatalf("step after reset: %v", err)
	}
	if got, want := render(a.Grid()), "BB\nBB\n"; got != want {
		t.Fatalf("after reset step:\n%swant:\n%s", got, want)
	}
}

func TestSnapshotIsIndependent(t *testing.T) {
	a, err := NewBuilder().Grid(mustGrid(t, "AB")).Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	snap := a.Snapshot()
	if err := a.SetCell(0, 0, 'Z'); err != nil {
		t.Fatalf("SetCell: %v", err)
	}
	if got, _ := snap.Get(0, 0); got != 'A' {
		t.Fatal("snapshot shares storage with the live grid")
	}
}
