package grid

import "testing"

func TestNewGridIsEmpty(t *testing.T) {
	g := New(4, 3)
	if g.Width != 4 || g.Height != 3 {
		t.Fatalf("dimensions: expected 4x3, got %dx%d", g.Width, g.Height)
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if g.Occupied(x, y) {
				t.Errorf("cell (%d,%d): expected unoccupied on a fresh grid", x, y)
			}
		}
	}
}

func TestInBounds(t *testing.T) {
	g := New(5, 5)
	tests := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{4, 4, true},
		{-1, 0, false},
		{0, -1, false},
		{5, 0, false},
		{0, 5, false},
	}
	for _, tt := range tests {
		if got := g.InBounds(tt.x, tt.y); got != tt.want {
			t.Errorf("InBounds(%d,%d): expected %v, got %v", tt.x, tt.y, tt.want, got)
		}
	}
}

func TestSetClearOccupantInvariant(t *testing.T) {
	g := New(3, 3)
	g.SetOccupant(1, 1, 42)
	if !g.Occupied(1, 1) {
		t.Fatal("Occupied: expected true after SetOccupant")
	}
	if g.Cell(1, 1).CreatureID != 42 {
		t.Errorf("CreatureID: expected 42, got %d", g.Cell(1, 1).CreatureID)
	}

	g.ClearOccupant(1, 1)
	if g.Occupied(1, 1) {
		t.Error("Occupied: expected false after ClearOccupant")
	}
	if g.Cell(1, 1).CreatureID != 0 {
		t.Errorf("CreatureID: expected 0 after ClearOccupant, got %d", g.Cell(1, 1).CreatureID)
	}
}

func TestEachVisitsRowMajorOrder(t *testing.T) {
	g := New(2, 2)
	var seen [][2]int
	g.Each(func(x, y int) {
		seen = append(seen, [2]int{x, y})
	})
	want := [][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	if len(seen) != len(want) {
		t.Fatalf("Each: expected %d cells, got %d", len(want), len(seen))
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("Each order[%d]: expected %v, got %v", i, want[i], seen[i])
		}
	}
}

type fakeRNG struct{ vals []int }

func (f *fakeRNG) Intn(n int) int {
	v := f.vals[0] % n
	f.vals = f.vals[1:]
	return v
}

func TestRandomFreeCellSkipsOccupied(t *testing.T) {
	g := New(2, 1)
	g.SetOccupant(0, 0, 1)
	rng := &fakeRNG{vals: []int{0, 0, 1, 0}} // first draw picks the occupied cell, second the free one
	x, y := g.RandomFreeCell(rng)
	if x != 1 || y != 0 {
		t.Errorf("RandomFreeCell: expected (1,0), got (%d,%d)", x, y)
	}
}

func TestDirectionStep(t *testing.T) {
	tests := []struct {
		d          Direction
		wantX, wantY int
	}{
		{North, 5, 4},
		{South, 5, 6},
		{East, 6, 5},
		{West, 4, 5},
		{NorthEast, 6, 4},
		{SouthWest, 4, 6},
	}
	for _, tt := range tests {
		x, y := tt.d.Step(5, 5)
		if x != tt.wantX || y != tt.wantY {
			t.Errorf("Step(%v): expected (%d,%d), got (%d,%d)", tt.d, tt.wantX, tt.wantY, x, y)
		}
	}
}
