package rule

import (
	"testing"

	"rulegrid/pkg/grid"
)

func TestEnvironmentValidate(t *testing.T) {
	r := &EnvironmentRule{Offsets: grid.Moore(1)}
	if err := r.Validate(); err == nil {
		t.Fatal("nil transform should fail validation")
	}
	r.Transform = func(center grid.State, _ []grid.State) grid.State { return center }
	r.Offsets = nil
	if err := r.Validate(); err == nil {
		t.Fatal("empty neighborhood should fail validation")
	}
}

func TestEnvironmentProposesOnlyChanges(t *testing.T) {
	g := mustGrid(t, "AB", "BA")
	r := &EnvironmentRule{
		Offsets: grid.Moore(1),
		Transform: func(center grid.State, _ []grid.State) grid.State {
			if center == 'A' {
				return 'B'
			}
			return center
		},
	}
	proposals := r.Propose(g, Env{Mode: grid.Periodic}, 0, g.Rows())
	if len(proposals) != 2 {
		t.Fatalf("got %d proposals, want 2", len(proposals))
	}
	for _, p := range proposals {
		if g.At(p.Row, p.Col) != 'A' {
			t.Fatalf("proposal at (%d, %d) targets a non-A cell", p.Row, p.Col)
		}
		if len(p.Writes) != 1 || p.Writes[0].State != 'B' {
			t.Fatalf("proposal writes = %+v, want one B write", p.Writes)
		}
		if p.Chance != 1 {
			t.Fatalf("chance = %v, want 1", p.Chance)
		}
	}
}

func TestEnvironmentSeesOffsetsInOrder(t *testing.T) {
	// Transform copies the state sampled at the first offset, so every cell
	// takes the value of its left neighbor with periodic wrapping.
	g := mustGrid(t, "ABC")
	r := &EnvironmentRule{
		Offsets: []grid.Offset{{DRow: 0, DCol: -1}, {DRow: 0, DCol: 1}},
		Transform: func(_ grid.State, neighborhood []grid.State) grid.State {
			return neighborhood[0]
		},
	}
	proposals := r.Propose(g, Env{Mode: grid.Periodic}, 0, 1)
	want := map[[2]int]grid.State{
		{0, 0}: 'C',
		{0, 1}: 'A',
		{0, 2}: 'B',
	}
	if len(proposals) != len(want) {
		t.Fatalf("got %d proposals, want %d", len(proposals), len(want))
	}
	for _, p := range proposals {
		if got := p.Writes[0].State; got != want[[2]int{p.Row, p.Col}] {
			t.Fatalf("cell (%d, %d) proposes %q, want %q", p.Row, p.Col, got, want[[2]int{p.Row, p.Col}])
		}
	}
}
