package search

import "slices"

// IsValidSolution reports whether solution is a valid path for the bound
// StateSpace: it is non-empty, starts at InitialState, every element is among
// the Successors of the element before it, and the last element is a goal.
//
// A nil solution is a caller error and yields ErrNilSolution. An empty
// non-nil solution is simply invalid.
func (s *Searcher[S]) IsValidSolution(solution []S) (bool, error) {
	if solution == nil {
		return false, ErrNilSolution
	}
	if len(solution) == 0 {
		return false, nil
	}
	if solution[0] != s.space.InitialState() {
		return false, nil
	}
	for i := 1; i < len(solution); i++ {
		if !slices.Contains(s.space.Successors(solution[i-1]), solution[i]) {
			return false, nil
		}
	}

	return s.space.IsGoal(solution[len(solution)-1]), nil
}
