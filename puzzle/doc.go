// Package puzzle implements the eight-puzzle as a search.StateSpace.
//
// The board cells are indexed row-major:
//
//	0 | 1 | 2
//	--+---+---
//	3 | 4 | 5
//	--+---+---
//	6 | 7 | 8
//
// Tiles 1–8 occupy eight cells and 0 marks the blank. The puzzle is solved
// when the board reads 1 2 3 / 4 5 6 / 7 8 0. A move swaps the blank with an
// orthogonal neighbour, without wrapping around rows.
//
// Only half of all permutations can reach the solved board; Solvable tells
// them apart by inversion parity so callers can avoid exhausting the
// 181440-state component of an unsolvable start.
//
// Errors:
//
//   - ErrInvalidTiles: input is not a permutation of 0..8.
package puzzle
