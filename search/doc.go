// Package search provides a generic breadth-first solver over implicitly
// defined state spaces, returning fewest-step solution paths, and an
// independent validator for candidate paths.
//
// What
//
//   - A StateSpace describes one problem through three operations:
//     InitialState, Successors and IsGoal. The graph is never materialized.
//   - Searcher.FindSolution expands states in non-decreasing depth order and
//     returns the path initial→goal with the fewest edges.
//   - Searcher.Search does the same and also reports how many states were
//     expanded and discovered.
//   - Searcher.IsValidSolution checks any candidate path, including ones
//     built by hand, against the same StateSpace.
//
// Why
//
//   - Puzzles, mazes and planning problems rarely fit in an explicit graph.
//     Describing them by successor functions keeps memory proportional to
//     the states actually reached.
//
// Determinism
//
//	Successors are enqueued in the order the StateSpace yields them and the
//	first goal dequeued wins. Among several equally short solutions the one
//	reached through earlier successors is returned.
//
// Complexity (V = reachable states, E = transitions among them)
//
//   - Time:   O(V + E) for FindSolution, O(L·b) for IsValidSolution where L is
//     the path length and b the branching factor.
//   - Memory: O(V) for the frontier and the predecessor map.
//
// Usage
//
//	s, err := search.NewSearcher[puzzle.Board](p)
//	if err != nil {
//		// ErrNilSpace
//	}
//	path := s.FindSolution() // empty when no goal is reachable
//	ok, err := s.IsValidSolution(path)
//
// Options
//
//   - WithOnEnqueue(fn): hook fired when a state is first discovered.
//   - WithOnDequeue(fn): hook fired before a dequeued state is goal-tested.
//
// Errors
//
//   - ErrInvalidArgument  base condition for caller-contract violations.
//   - ErrNilSpace         NewSearcher called with a nil StateSpace.
//   - ErrNilSolution      IsValidSolution called with a nil slice.
//
// "No solution" is not an error: FindSolution returns an empty, non-nil
// slice. Unbounded state spaces with no reachable goal never terminate.
package search
