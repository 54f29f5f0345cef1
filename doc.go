// Package pathsearch finds fewest-step solutions in implicitly defined
// state spaces and checks candidate solutions against them.
//
// What is pathsearch?
//
//	A small, dependency-light toolkit built around one generic engine:
//		• search/  — StateSpace contract, breadth-first Searcher, validator
//		• puzzle/  — the eight-puzzle as a StateSpace
//		• maze/    — grid mazes: ASCII codec, seeded generator, StateSpace
//		• problem/ — YAML problem files for puzzles and mazes
//		• cmd/pathsearch — solve, validate and generate from the command line
//
// A problem is never built as an explicit graph. It only has to say where
// it starts, which states follow a given state, and which states are goals:
//
//	type StateSpace[S comparable] interface {
//		InitialState() S
//		Successors(state S) []S
//		IsGoal(state S) bool
//	}
//
// Quick example:
//
//	p, _ := puzzle.New([]int{1, 2, 3, 4, 0, 6, 7, 5, 8})
//	s, _ := search.NewSearcher[puzzle.Board](p)
//	path := s.FindSolution() // 3 boards, ending in 1 2 3 / 4 5 6 / 7 8 0
//
//	go get github.com/katalvlaran/pathsearch
package pathsearch
