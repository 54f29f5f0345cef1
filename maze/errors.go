package maze

import "errors"

var (
	// ErrEmptyMaze indicates width or height is less than one.
	ErrEmptyMaze = errors.New("maze: width and height must be at least one")
	// ErrOutOfBounds indicates a cell outside the grid.
	ErrOutOfBounds = errors.New("maze: cell out of bounds")
	// ErrNotAdjacent indicates two cells that do not share a wall.
	ErrNotAdjacent = errors.New("maze: cells are not orthogonal neighbours")
	// ErrMalformed indicates ASCII input that cannot be parsed.
	ErrMalformed = errors.New("maze: malformed layout")
)
