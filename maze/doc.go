// Package maze treats a rectangular grid of cells separated by walls as a
// search.StateSpace, so that path-finding reduces to generic BFS.
//
// What:
//
//   - Maze holds Width×Height cells; a passage between two orthogonal
//     neighbours is either open or walled.
//   - Successors yields neighbours through open passages in N, E, S, W order.
//   - Parse/String read and write a compact ASCII rendering.
//   - Generate carves a perfect maze (exactly one route between any two cells)
//     by seeded randomized depth-first search.
//
// ASCII format (3×3, start S at (1,0), goal G at (1,2)):
//
//	#0#1#2#
//	0  S  0
//	# # # #
//	1     1
//	# ### #
//	2  G  2
//	#0#1#2#
//
// Even rows are borders or horizontal walls, odd rows are cells. Between two
// cells a space is an open passage and '#' a wall. Border digits are labels
// and are ignored when parsing. '*' marks a cell that is both start and goal.
//
// Complexity:
//
//   - Successors: O(1).
//   - Parse, String: O(W×H).
//   - Generate: O(W×H) time and memory.
//
// Errors:
//
//   - ErrEmptyMaze: width or height below one.
//   - ErrOutOfBounds: a cell lies outside the grid.
//   - ErrNotAdjacent: Open called on cells that are not orthogonal neighbours.
//   - ErrMalformed: ASCII input does not follow the format above.
package maze
