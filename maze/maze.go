package maze

import (
	"fmt"

	"github.com/katalvlaran/pathsearch/search"
)

var _ search.StateSpace[Cell] = (*Maze)(nil)

// New constructs a fully walled w×h maze with the given endpoints.
// Returns ErrEmptyMaze if w or h is below one and ErrOutOfBounds if an
// endpoint lies outside the grid.
func New(w, h int, start, goal Cell) (*Maze, error) {
	if w < 1 || h < 1 {
		return nil, ErrEmptyMaze
	}
	m := &Maze{
		Width:    w,
		Height:   h,
		Start:    start,
		Goal:     goal,
		passages: make([]uint8, w*h),
	}
	for _, c := range []Cell{start, goal} {
		if !m.InBounds(c) {
			return nil, fmt.Errorf("%w: endpoint %v in %dx%d maze", ErrOutOfBounds, c, w, h)
		}
	}

	return m, nil
}

// InBounds reports whether c lies within the grid boundaries.
func (m *Maze) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < m.Width && c.Y >= 0 && c.Y < m.Height
}

// Open carves a passage between orthogonal neighbours a and b.
func (m *Maze) Open(a, b Cell) error {
	if !m.InBounds(a) || !m.InBounds(b) {
		return fmt.Errorf("%w: %v-%v", ErrOutOfBounds, a, b)
	}
	for _, d := range directions {
		if a.Step(d) == b {
			m.carve(a, d)
			return nil
		}
	}

	return fmt.Errorf("%w: %v-%v", ErrNotAdjacent, a, b)
}

// IsOpen reports whether the passage from c in direction d is open.
// Cells outside the grid have no open passages.
func (m *Maze) IsOpen(c Cell, d Direction) bool {
	if !m.InBounds(c) {
		return false
	}
	return m.passages[m.index(c)]&d.bit() != 0
}

// carve opens the wall on both sides; the caller guarantees bounds.
func (m *Maze) carve(c Cell, d Direction) {
	n := c.Step(d)
	m.passages[m.index(c)] |= d.bit()
	m.passages[m.index(n)] |= d.Opposite().bit()
}

// Passages counts open passages, each shared wall once.
func (m *Maze) Passages() int {
	n := 0
	for _, mask := range m.passages {
		if mask&East.bit() != 0 {
			n++
		}
		if mask&South.bit() != 0 {
			n++
		}
	}
	return n
}

// InitialState returns Start.
func (m *Maze) InitialState() Cell {
	return m.Start
}

// Successors returns the cells reachable from c through open passages,
// in N, E, S, W order.
func (m *Maze) Successors(c Cell) []Cell {
	if !m.InBounds(c) {
		return nil
	}
	mask := m.passages[m.index(c)]
	next := make([]Cell, 0, 4)
	for _, d := range directions {
		if mask&d.bit() != 0 {
			next = append(next, c.Step(d))
		}
	}
	return next
}

// IsGoal reports whether c is Goal.
func (m *Maze) IsGoal(c Cell) bool {
	return c == m.Goal
}

// index maps c to a row-major index: Y*Width + X.
func (m *Maze) index(c Cell) int {
	return c.Y*m.Width + c.X
}

// Coordinate converts a row-major index back to a Cell.
func (m *Maze) Coordinate(idx int) Cell {
	return Cell{X: idx % m.Width, Y: idx / m.Width}
}
