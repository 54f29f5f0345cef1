package puzzle

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/pathsearch/search"
)

// Side is the board width and height.
const Side = 3

// Size is the number of cells on the board.
const Size = Side * Side

// ErrInvalidTiles indicates the tiles are not a permutation of 0..8.
var ErrInvalidTiles = errors.New("puzzle: tiles must be a permutation of 0..8")

// Board is one puzzle configuration. It is comparable and can be used as a
// map key directly.
type Board [Size]int

// Goal is the solved configuration.
var Goal = Board{1, 2, 3, 4, 5, 6, 7, 8, 0}

// EightPuzzle is an immutable puzzle instance bound to a starting board.
type EightPuzzle struct {
	initial Board
}

var _ search.StateSpace[Board] = (*EightPuzzle)(nil)

// New builds a puzzle from nine starting values. The slice is copied.
// Returns ErrInvalidTiles unless tiles is a permutation of 0..8.
func New(tiles []int) (*EightPuzzle, error) {
	b, err := boardFrom(tiles)
	if err != nil {
		return nil, err
	}

	return &EightPuzzle{initial: b}, nil
}

// InitialState returns the starting board.
func (p *EightPuzzle) InitialState() Board {
	return p.initial
}

// Successors returns the boards reachable by sliding one tile into the blank.
// Moves are generated with the blank going left, right, up, then down.
func (p *EightPuzzle) Successors(b Board) []Board {
	blank := b.Blank()
	row, col := blank/Side, blank%Side
	next := make([]Board, 0, 4)
	if col > 0 {
		next = append(next, b.swap(blank, blank-1))
	}
	if col < Side-1 {
		next = append(next, b.swap(blank, blank+1))
	}
	if row > 0 {
		next = append(next, b.swap(blank, blank-Side))
	}
	if row < Side-1 {
		next = append(next, b.swap(blank, blank+Side))
	}

	return next
}

// IsGoal reports whether b is the solved board.
func (p *EightPuzzle) IsGoal(b Board) bool {
	return b == Goal
}

// Blank returns the index of the empty cell, or -1 if there is none.
func (b Board) Blank() int {
	for i, v := range b {
		if v == 0 {
			return i
		}
	}
	return -1
}

// swap returns a copy of b with cells i and j exchanged.
func (b Board) swap(i, j int) Board {
	b[i], b[j] = b[j], b[i]
	return b
}

// String renders the board as three space-separated rows.
func (b Board) String() string {
	var sb strings.Builder
	for i, v := range b {
		switch {
		case i > 0 && i%Side == 0:
			sb.WriteByte('\n')
		case i > 0:
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(v))
	}
	return sb.String()
}

// Solvable reports whether b can reach Goal. On a 3×3 board a configuration
// is solvable iff the number of inversions among tiles 1–8 is even.
func Solvable(b Board) bool {
	inv := 0
	for i := 0; i < Size; i++ {
		if b[i] == 0 {
			continue
		}
		for j := i + 1; j < Size; j++ {
			if b[j] != 0 && b[i] > b[j] {
				inv++
			}
		}
	}
	return inv%2 == 0
}

// ParseBoard reads nine values separated by spaces or commas, or a run of
// nine digits such as "123405678".
func ParseBoard(s string) (Board, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
	if len(fields) == 1 && len(fields[0]) == Size {
		fields = strings.Split(fields[0], "")
	}
	tiles := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return Board{}, fmt.Errorf("%w: %q is not a number", ErrInvalidTiles, f)
		}
		tiles = append(tiles, v)
	}

	return boardFrom(tiles)
}

// boardFrom validates tiles and copies them into a Board.
func boardFrom(tiles []int) (Board, error) {
	var b Board
	if len(tiles) != Size {
		return b, fmt.Errorf("%w: got %d values", ErrInvalidTiles, len(tiles))
	}
	var seen [Size]bool
	for i, v := range tiles {
		if v < 0 || v >= Size || seen[v] {
			return b, fmt.Errorf("%w: bad or repeated value %d", ErrInvalidTiles, v)
		}
		seen[v] = true
		b[i] = v
	}

	return b, nil
}
