// Package maze defines core types for the maze subpackage.
package maze

import "fmt"

// Cell is a grid coordinate. X grows to the east, Y to the south.
type Cell struct {
	X, Y int
}

// String formats the cell as "(x,y)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Direction is one of the four orthogonal moves.
type Direction uint8

// Directions in successor order.
const (
	North Direction = iota
	East
	South
	West
)

// directions lists every Direction in successor order.
var directions = [4]Direction{North, East, South, West}

// offsets holds the (dx,dy) step per Direction.
var offsets = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// bit is the passage flag for d in a cell's mask.
func (d Direction) bit() uint8 { return 1 << d }

// Opposite returns the direction pointing back.
func (d Direction) Opposite() Direction { return (d + 2) % 4 }

// Step returns the neighbour of c in direction d. It may be out of bounds.
func (c Cell) Step(d Direction) Cell {
	return Cell{X: c.X + offsets[d][0], Y: c.Y + offsets[d][1]}
}

// Maze is a rectangular grid with walls between cells.
// Width and Height define dimensions; Start and Goal are the search endpoints.
// passages[y*Width+x] holds one bit per Direction that is open.
type Maze struct {
	Width, Height int
	Start, Goal   Cell
	passages      []uint8
}
