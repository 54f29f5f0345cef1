// Package search defines the StateSpace contract, tunable options and
// error definitions for generic breadth-first search.
package search

import (
	"errors"
	"fmt"
)

// Sentinel errors for search execution.
var (
	// ErrInvalidArgument is the base condition for caller-contract violations.
	ErrInvalidArgument = errors.New("search: invalid argument")

	// ErrNilSpace is returned when NewSearcher receives a nil StateSpace.
	ErrNilSpace = fmt.Errorf("%w: state space is nil", ErrInvalidArgument)

	// ErrNilSolution is returned when IsValidSolution receives a nil slice.
	// An empty non-nil slice is a legal (and always invalid) candidate.
	ErrNilSolution = fmt.Errorf("%w: solution is nil", ErrInvalidArgument)
)

// StateSpace describes one searchable problem without prescribing how it is
// searched. S must be comparable: two states that are the same for search
// purposes must compare equal with ==.
//
// Implementations must be static for the duration of a search: calling
// Successors twice on equal states yields equal results, and a state is
// never its own successor.
type StateSpace[S comparable] interface {
	// InitialState returns the unique starting state.
	InitialState() S

	// Successors returns the states reachable from state in one step.
	// Duplicates and already-visited states are allowed; the order decides
	// which of several equally short solutions is found.
	Successors(state S) []S

	// IsGoal reports whether state satisfies the terminal condition.
	IsGoal(state S) bool
}

// Option configures Searcher behavior via functional arguments.
type Option[S comparable] func(*Options[S])

// Options holds the callbacks a Searcher invokes during traversal.
// Hooks only observe; they cannot change which states are explored.
type Options[S comparable] struct {
	// OnEnqueue is called when a state is first discovered, before it is
	// added to the frontier. Receives the state and its depth.
	OnEnqueue func(state S, depth int)

	// OnDequeue is called when a state leaves the frontier, before its
	// goal test.
	OnDequeue func(state S, depth int)
}

// DefaultOptions returns Options with no-op hooks.
func DefaultOptions[S comparable]() Options[S] {
	return Options[S]{
		OnEnqueue: func(S, int) {},
		OnDequeue: func(S, int) {},
	}
}

// WithOnEnqueue registers a callback to run on discovery.
func WithOnEnqueue[S comparable](fn func(state S, depth int)) Option[S] {
	return func(o *Options[S]) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on expansion.
func WithOnDequeue[S comparable](fn func(state S, depth int)) Option[S] {
	return func(o *Options[S]) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// Result holds the outcome of a search:
//   - Path: states from the initial state to the first goal found, or empty.
//   - Expanded: number of states dequeued (goal-tested).
//   - Discovered: number of distinct states recorded in the predecessor map.
type Result[S comparable] struct {
	Path       []S
	Expanded   int
	Discovered int
}

// Found reports whether the search reached a goal.
func (r *Result[S]) Found() bool {
	return len(r.Path) > 0
}

// Steps returns the number of transitions in Path, or -1 if nothing was found.
func (r *Result[S]) Steps() int {
	return len(r.Path) - 1
}
