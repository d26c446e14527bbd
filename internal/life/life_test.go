package life

import (
	"slices"
	"testing"

	"conway/internal/core"
)

func seed(l *Life, cells ...[2]int) {
	for _, c := range cells {
		l.Toggle(c[0], c[1])
	}
}

func expectAlive(t *testing.T, l *Life, expects map[[2]int]bool, stage string) {
	t.Helper()
	size := l.Size()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			alive := l.Alive(x, y)
			shouldBeAlive := expects[[2]int{x, y}]
			if shouldBeAlive != alive {
				t.Fatalf("%s: cell (%d,%d) alive=%v, expected %v", stage, x, y, alive, shouldBeAlive)
			}
		}
	}
}

func TestNewGridIsDead(t *testing.T) {
	for _, dims := range [][2]int{{1, 1}, {1, 7}, {3, 2}, {100, 60}} {
		l := New(dims[0], dims[1])
		if l.Running() {
			t.Fatalf("%dx%d: new simulation should start stopped", dims[0], dims[1])
		}
		if got := l.Population(); got != 0 {
			t.Fatalf("%dx%d: expected empty grid, got %d live cells", dims[0], dims[1], got)
		}
		if s := l.Size(); s.W != dims[0] || s.H != dims[1] {
			t.Fatalf("size = %+v, expected %v", s, dims)
		}
	}
}

func TestToggleFlipsCell(t *testing.T) {
	l := New(4, 4)
	l.Toggle(1, 2)
	if !l.Alive(1, 2) {
		t.Fatal("toggle should bring a dead cell to life")
	}
	l.Toggle(1, 2)
	if l.Alive(1, 2) {
		t.Fatal("second toggle should kill the cell")
	}
}

func TestToggleOutOfRangeIsNoop(t *testing.T) {
	l := New(4, 3)
	before := l.Snapshot(nil)
	for _, c := range [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 3}, {100, 100}} {
		l.Toggle(c[0], c[1])
	}
	if !slices.Equal(before, l.Snapshot(nil)) {
		t.Fatal("out-of-range toggles must not change the grid")
	}
}

func TestClearResetsAndIsIdempotent(t *testing.T) {
	l := New(6, 5)
	seed(l, [2]int{0, 0}, [2]int{3, 3}, [2]int{5, 4})

	l.Clear()
	once := l.Snapshot(nil)
	l.Clear()
	twice := l.Snapshot(nil)

	if !slices.Equal(once, twice) {
		t.Fatal("clearing twice should match clearing once")
	}
	if s := l.Size(); s.W != 6 || s.H != 5 {
		t.Fatalf("clear changed dimensions to %+v", s)
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 6; x++ {
			if n := l.CountNeighbors(x, y); n != 0 {
				t.Fatalf("cell (%d,%d) has %d neighbours after clear", x, y, n)
			}
		}
	}
}

func TestCountNeighborsWrapsDiagonally(t *testing.T) {
	l := New(7, 5)
	l.Toggle(0, 0)
	if n := l.CountNeighbors(6, 4); n != 1 {
		t.Fatalf("expected wrap-around diagonal neighbour, got %d", n)
	}
	if n := l.CountNeighbors(6, 0); n != 1 {
		t.Fatalf("expected wrap-around horizontal neighbour, got %d", n)
	}
	if n := l.CountNeighbors(0, 4); n != 1 {
		t.Fatalf("expected wrap-around vertical neighbour, got %d", n)
	}
	if n := l.CountNeighbors(0, 0); n != 0 {
		t.Fatalf("cell must not count itself, got %d", n)
	}
}

func TestCountNeighborsFull(t *testing.T) {
	l := New(5, 5)
	for y := 1; y <= 3; y++ {
		for x := 1; x <= 3; x++ {
			l.Toggle(x, y)
		}
	}
	if n := l.CountNeighbors(2, 2); n != 8 {
		t.Fatalf("expected 8 neighbours, got %d", n)
	}
}

func TestEditsIgnoredWhileRunning(t *testing.T) {
	l := New(5, 5)
	seed(l, [2]int{1, 1}, [2]int{2, 2})
	before := l.Snapshot(nil)

	l.SetRunning(true)
	l.Toggle(3, 3)
	l.Toggle(1, 1)
	l.Clear()
	l.Randomize(99, core.SoupUniform)

	if !slices.Equal(before, l.Snapshot(nil)) {
		t.Fatal("edits must be ignored while running")
	}
}

func TestStepWhileStoppedIsNoop(t *testing.T) {
	l := New(5, 5)
	seed(l, [2]int{2, 1}, [2]int{2, 2}, [2]int{2, 3})
	before := l.Snapshot(nil)

	l.Step()

	if !slices.Equal(before, l.Snapshot(nil)) {
		t.Fatal("step while stopped changed the grid")
	}
	if l.Generation() != 0 {
		t.Fatalf("generation advanced while stopped: %d", l.Generation())
	}
}

func TestBlockStillLife(t *testing.T) {
	l := New(6, 6)
	block := map[[2]int]bool{{2, 2}: true, {3, 2}: true, {2, 3}: true, {3, 3}: true}
	for c := range block {
		l.Toggle(c[0], c[1])
	}
	l.SetRunning(true)
	l.Step()
	expectAlive(t, l, block, "block after one step")
}

func TestBlinkerOscillation(t *testing.T) {
	l := New(5, 5)
	seed(l, [2]int{1, 2}, [2]int{2, 2}, [2]int{3, 2})
	l.SetRunning(true)

	l.Step()
	expectAlive(t, l, map[[2]int]bool{{2, 1}: true, {2, 2}: true, {2, 3}: true}, "first step")

	l.Step()
	expectAlive(t, l, map[[2]int]bool{{1, 2}: true, {2, 2}: true, {3, 2}: true}, "second step")

	if l.Generation() != 2 {
		t.Fatalf("expected generation 2, got %d", l.Generation())
	}
}

func TestBirthRule(t *testing.T) {
	cases := []struct {
		name      string
		neighbors [][2]int
		born      bool
	}{
		{"two", [][2]int{{1, 1}, {3, 1}}, false},
		{"three", [][2]int{{1, 1}, {3, 1}, {2, 3}}, true},
		{"four", [][2]int{{1, 1}, {3, 1}, {1, 3}, {3, 3}}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l := New(7, 7)
			seed(l, tc.neighbors...)
			if n := l.CountNeighbors(2, 2); n != len(tc.neighbors) {
				t.Fatalf("setup: expected %d neighbours, got %d", len(tc.neighbors), n)
			}
			l.SetRunning(true)
			l.Step()
			if got := l.Alive(2, 2); got != tc.born {
				t.Fatalf("dead cell with %d neighbours alive=%v, expected %v", len(tc.neighbors), got, tc.born)
			}
		})
	}
}

func TestSurvivalRule(t *testing.T) {
	ring := [][2]int{{1, 1}, {2, 1}, {3, 1}, {1, 2}, {3, 2}, {1, 3}, {2, 3}, {3, 3}}
	for n := 0; n <= 8; n++ {
		l := New(7, 7)
		l.Toggle(2, 2)
		seed(l, ring[:n]...)
		if got := l.CountNeighbors(2, 2); got != n {
			t.Fatalf("setup: expected %d neighbours, got %d", n, got)
		}
		l.SetRunning(true)
		l.Step()
		survives := n == 2 || n == 3
		if got := l.Alive(2, 2); got != survives {
			t.Fatalf("live cell with %d neighbours alive=%v, expected %v", n, got, survives)
		}
	}
}

func TestStepUsesPreviousGeneration(t *testing.T) {
	// A glider on a small torus returns to its shape shifted by (1,1) every
	// four generations; any read-after-write in Step breaks this.
	l := New(8, 8)
	glider := [][2]int{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}
	seed(l, glider...)
	l.SetRunning(true)
	for i := 0; i < 4*8; i++ {
		l.Step()
	}
	expects := map[[2]int]bool{}
	for _, c := range glider {
		expects[c] = true
	}
	expectAlive(t, l, expects, "glider after a full lap")
}

func TestRandomizeDeterministic(t *testing.T) {
	a := New(20, 12)
	b := New(20, 12)
	a.Randomize(5, core.SoupNoise)
	b.Randomize(5, core.SoupNoise)
	if !slices.Equal(a.Snapshot(nil), b.Snapshot(nil)) {
		t.Fatal("Randomize should be deterministic for a seed")
	}

	a.SetRunning(true)
	a.Step()
	a.SetRunning(false)
	a.Randomize(5, core.SoupUniform)
	if a.Generation() != 0 {
		t.Fatalf("Randomize should reset the generation counter, got %d", a.Generation())
	}
}

func TestEachVisitsRowMajor(t *testing.T) {
	l := New(3, 2)
	l.Toggle(2, 1)
	var visited [][2]int
	alive := 0
	l.Each(func(x, y int, a bool) {
		visited = append(visited, [2]int{x, y})
		if a {
			alive++
			if x != 2 || y != 1 {
				t.Fatalf("unexpected live cell at (%d,%d)", x, y)
			}
		}
	})
	if len(visited) != 6 || visited[0] != [2]int{0, 0} || visited[5] != [2]int{2, 1} {
		t.Fatalf("unexpected visit order %v", visited)
	}
	if alive != 1 {
		t.Fatalf("expected one live cell, got %d", alive)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	l := New(3, 3)
	snap := l.Snapshot(nil)
	snap[0] = 1
	if l.Alive(0, 0) {
		t.Fatal("mutating a snapshot must not affect the grid")
	}
}
