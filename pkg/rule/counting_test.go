package rule

import (
	"testing"

	"rulegrid/pkg/grid"
)

func TestCountingValidate(t *testing.T) {
	r := &CountingRule{Offsets: grid.Moore(1)}
	if err := r.Validate(); err == nil {
		t.Fatal("nil transform should fail validation")
	}
	r.Transform = func(center grid.State, _ *Counts) grid.State { return center }
	r.Offsets = nil
	if err := r.Validate(); err == nil {
		t.Fatal("empty neighborhood should fail validation")
	}
}

func TestCountingTalliesNeighbors(t *testing.T) {
	g := mustGrid(t, "XX ", "X  ", "   ")
	var seen Counts
	r := &CountingRule{
		Offsets: grid.Moore(1),
		Transform: func(center grid.State, counts *Counts) grid.State {
			if center == ' ' && counts.Of('X') == 3 {
				seen = *counts
				return 'X'
			}
			return center
		},
	}
	proposals := r.Propose(g, Env{Mode: grid.Fixed, Void: ' '}, 0, g.Rows())
	if len(proposals) != 1 {
		t.Fatalf("got %d proposals, want 1", len(proposals))
	}
	if p := proposals[0]; p.Row != 1 || p.Col != 1 {
		t.Fatalf("birth at (%d, %d), want (1, 1)", p.Row, p.Col)
	}
	if seen.Of('X') != 3 || seen.Of(' ') != 5 {
		t.Fatalf("counts at (1, 1): X=%d blank=%d, want 3 and 5", seen.Of('X'), seen.Of(' '))
	}
}

func TestLifeRule(t *testing.T) {
	r := Life('X', ' ', []int{3}, []int{2, 3})
	if err := r.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	cases := []struct {
		center grid.State
		alive  int
		want   grid.State
	}{
		{'X', 1, ' '},
		{'X', 2, 'X'},
		{'X', 3, 'X'},
		{'X', 4, ' '},
		{' ', 2, ' '},
		{' ', 3, 'X'},
		{' ', 4, ' '},
	}
	for _, tc := range cases {
		var counts Counts
		counts['X'] = uint16(tc.alive)
		counts[' '] = uint16(8 - tc.alive)
		if got := r.Transform(tc.center, &counts); got != tc.want {
			t.Fatalf("center %q with %d live neighbors: got %q, want %q", tc.center, tc.alive, got, tc.want)
		}
	}
}
