package maze

import (
	"fmt"
	"strings"
)

// Cell and wall markers of the ASCII format.
const (
	wallChar  = '#'
	openChar  = ' '
	startChar = 'S'
	goalChar  = 'G'
	bothChar  = '*'
)

// Parse reads a maze from its ASCII rendering. Leading and trailing blank
// lines are ignored, as are carriage returns. Exactly one start and one goal
// must be marked.
func Parse(s string) (*Maze, error) {
	s = strings.ReplaceAll(s, "\r", "")
	lines := strings.Split(strings.Trim(s, "\n"), "\n")
	if len(lines) < 3 || len(lines)%2 == 0 {
		return nil, fmt.Errorf("%w: need an odd number of lines (at least 3), got %d", ErrMalformed, len(lines))
	}
	cols := len(lines[0])
	if cols < 3 || cols%2 == 0 {
		return nil, fmt.Errorf("%w: need an odd line width (at least 3), got %d", ErrMalformed, cols)
	}
	for i, line := range lines {
		if len(line) != cols {
			return nil, fmt.Errorf("%w: line %d has width %d, want %d", ErrMalformed, i+1, len(line), cols)
		}
	}

	w, h := cols/2, len(lines)/2
	m := &Maze{Width: w, Height: h, passages: make([]uint8, w*h)}
	var starts, goals []Cell

	for y := 0; y < h; y++ {
		row, below := lines[2*y+1], lines[2*y+2]
		for x := 0; x < w; x++ {
			c := Cell{X: x, Y: y}
			switch row[2*x+1] {
			case openChar:
			case startChar:
				starts = append(starts, c)
			case goalChar:
				goals = append(goals, c)
			case bothChar:
				starts = append(starts, c)
				goals = append(goals, c)
			default:
				return nil, fmt.Errorf("%w: unexpected %q at cell %v", ErrMalformed, row[2*x+1], c)
			}
			if x < w-1 && row[2*x+2] == openChar {
				m.carve(c, East)
			}
			if y < h-1 && below[2*x+1] == openChar {
				m.carve(c, South)
			}
		}
	}

	if len(starts) != 1 || len(goals) != 1 {
		return nil, fmt.Errorf("%w: want one start and one goal, got %d and %d", ErrMalformed, len(starts), len(goals))
	}
	m.Start, m.Goal = starts[0], goals[0]

	return m, nil
}

// String renders the maze in the format accepted by Parse, one line per
// row terminated by a newline.
func (m *Maze) String() string {
	var sb strings.Builder
	sb.Grow((2*m.Width + 2) * (2*m.Height + 1))

	m.writeBorder(&sb)
	for y := 0; y < m.Height; y++ {
		label := byte('0' + y%10)
		sb.WriteByte(label)
		for x := 0; x < m.Width; x++ {
			c := Cell{X: x, Y: y}
			sb.WriteByte(m.marker(c))
			if x < m.Width-1 {
				sb.WriteByte(passageChar(m.IsOpen(c, East)))
			}
		}
		sb.WriteByte(label)
		sb.WriteByte('\n')

		if y == m.Height-1 {
			break
		}
		sb.WriteByte(wallChar)
		for x := 0; x < m.Width; x++ {
			sb.WriteByte(passageChar(m.IsOpen(Cell{X: x, Y: y}, South)))
			sb.WriteByte(wallChar)
		}
		sb.WriteByte('\n')
	}
	m.writeBorder(&sb)

	return sb.String()
}

// writeBorder writes a top or bottom border with column labels.
func (m *Maze) writeBorder(sb *strings.Builder) {
	sb.WriteByte(wallChar)
	for x := 0; x < m.Width; x++ {
		sb.WriteByte(byte('0' + x%10))
		sb.WriteByte(wallChar)
	}
	sb.WriteByte('\n')
}

func (m *Maze) marker(c Cell) byte {
	switch {
	case c == m.Start && c == m.Goal:
		return bothChar
	case c == m.Start:
		return startChar
	case c == m.Goal:
		return goalChar
	}
	return openChar
}

func passageChar(open bool) byte {
	if open {
		return openChar
	}
	return wallChar
}
