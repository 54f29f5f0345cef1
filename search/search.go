package search

import "slices"

// Searcher finds and validates solutions for a single StateSpace.
// It keeps no state between calls; every search allocates its own
// frontier and predecessor map.
type Searcher[S comparable] struct {
	space StateSpace[S]
	opts  Options[S]
}

// NewSearcher binds a Searcher to space, applying any number of Options.
// Returns ErrNilSpace if space is nil.
func NewSearcher[S comparable](space StateSpace[S], opts ...Option[S]) (*Searcher[S], error) {
	if space == nil {
		return nil, ErrNilSpace
	}
	o := DefaultOptions[S]()
	for _, opt := range opts {
		opt(&o)
	}

	return &Searcher[S]{space: space, opts: o}, nil
}

// predecessor records the state a key was first discovered from.
// root is set only for the initial state, which has no predecessor.
type predecessor[S comparable] struct {
	state S
	root  bool
}

// queueItem pairs a state with its BFS depth.
type queueItem[S comparable] struct {
	state S
	depth int
}

// walker encapsulates the mutable state of one search.
type walker[S comparable] struct {
	space StateSpace[S]
	opts  Options[S]
	queue []queueItem[S]
	pred  map[S]predecessor[S]
	res   *Result[S]
}

// FindSolution returns the fewest-step path from the initial state to a goal
// state. The path starts with the initial state and ends with a goal; it has
// length one if the initial state is already a goal. When no goal is
// reachable the result is an empty, non-nil slice.
func (s *Searcher[S]) FindSolution() []S {
	return s.Search().Path
}

// Search runs breadth-first search and returns the path together with
// expansion counts. Result.Path follows the FindSolution contract.
func (s *Searcher[S]) Search() *Result[S] {
	w := &walker[S]{
		space: s.space,
		opts:  s.opts,
		pred:  make(map[S]predecessor[S]),
		res:   &Result[S]{Path: []S{}},
	}

	start := s.space.InitialState()
	w.discover(start, 0, predecessor[S]{root: true})
	w.loop()
	w.res.Discovered = len(w.pred)

	return w.res
}

// discover records the predecessor of state and appends it to the frontier.
func (w *walker[S]) discover(state S, depth int, from predecessor[S]) {
	w.pred[state] = from
	w.opts.OnEnqueue(state, depth)
	w.queue = append(w.queue, queueItem[S]{state: state, depth: depth})
}

// loop drains the frontier until a goal is found or it empties.
func (w *walker[S]) loop() {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Expanded++
		w.opts.OnDequeue(item.state, item.depth)

		if w.space.IsGoal(item.state) {
			w.res.Path = w.pathTo(item.state)
			return
		}
		for _, next := range w.space.Successors(item.state) {
			// first discovery wins
			if _, seen := w.pred[next]; seen {
				continue
			}
			w.discover(next, item.depth+1, predecessor[S]{state: item.state})
		}
	}
}

// pathTo walks the predecessor chain back from goal and reverses it so the
// path runs initial→goal.
func (w *walker[S]) pathTo(goal S) []S {
	path := []S{goal}
	for cur := w.pred[goal]; !cur.root; cur = w.pred[cur.state] {
		path = append(path, cur.state)
	}
	slices.Reverse(path)

	return path
}
