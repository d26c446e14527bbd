// Package life implements Conway's Game of Life on a toroidal grid.
//
// A Life value is either stopped or running. Cell edits (Toggle, Clear,
// Randomize) only apply while stopped; Step only applies while running.
// Calls made in the wrong state are silently ignored, as are edits outside
// the grid.
package life

import (
	"conway/internal/core"
)

// Life holds the current generation, a scratch buffer for the next one and
// the running flag.
type Life struct {
	cur *core.ByteGrid
	nxt *core.ByteGrid

	running    bool
	generation uint64
}

// New returns a stopped Life simulation with every cell dead. Non-positive
// dimensions are clamped to 1.
func New(w, h int) *Life {
	cur := core.NewByteGrid(w, h)
	return &Life{cur: cur, nxt: core.NewByteGrid(cur.W, cur.H)}
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return l.cur.Size() }

// Running reports whether generations are currently advancing.
func (l *Life) Running() bool { return l.running }

// SetRunning starts or stops the simulation. The grid is not touched.
func (l *Life) SetRunning(running bool) { l.running = running }

// Generation returns the number of generations advanced since the grid was
// last cleared or randomized.
func (l *Life) Generation() uint64 { return l.generation }

// Alive reports whether the cell at (x, y) is alive. Coordinates outside
// the grid report false.
func (l *Life) Alive(x, y int) bool { return l.cur.Get(x, y) == 1 }

// Population counts the live cells.
func (l *Life) Population() int {
	n := 0
	for _, c := range l.cur.Cells() {
		n += int(c)
	}
	return n
}

// Each calls fn for every cell in row-major order.
func (l *Life) Each(fn func(x, y int, alive bool)) {
	w, h := l.cur.W, l.cur.H
	cells := l.cur.Cells()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			fn(x, y, cells[y*w+x] == 1)
		}
	}
}

// Snapshot copies the current cells into dst, growing it if needed, and
// returns the filled slice. Callers may reuse the returned buffer.
func (l *Life) Snapshot(dst []uint8) []uint8 {
	return append(dst[:0], l.cur.Cells()...)
}

// Toggle flips the cell at (x, y) between alive and dead.
func (l *Life) Toggle(x, y int) {
	if l.running || !l.cur.Contains(x, y) {
		return
	}
	l.cur.Set(x, y, 1-l.cur.Get(x, y))
}

// Clear kills every cell and resets the generation counter.
func (l *Life) Clear() {
	if l.running {
		return
	}
	l.cur.Clear()
	l.generation = 0
}

// Randomize fills the board from seed using the given soup and resets the
// generation counter.
func (l *Life) Randomize(seed int64, soup core.Soup) {
	if l.running {
		return
	}
	core.Fill(l.cur.Cells(), l.cur.W, l.cur.H, seed, soup)
	l.generation = 0
}

// CountNeighbors returns the number of live cells among the eight toroidal
// neighbours of (x, y).
func (l *Life) CountNeighbors(x, y int) int {
	g := l.cur
	cells := g.Cells()
	neighbors := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := g.Wrap(x+dx, y+dy)
			neighbors += int(cells[g.Index(nx, ny)])
		}
	}
	return neighbors
}

// Step advances the simulation by one generation.
func (l *Life) Step() {
	if !l.running {
		return
	}
	w, h := l.cur.W, l.cur.H
	cur := l.cur.Cells()
	nxt := l.nxt.Cells()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			neighbors := l.CountNeighbors(x, y)
			alive := cur[idx] == 1
			nxt[idx] = 0
			if (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3) {
				nxt[idx] = 1
			}
		}
	}
	l.cur, l.nxt = l.nxt, l.cur
	l.generation++
}
