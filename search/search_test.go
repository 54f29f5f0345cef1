package search_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/pathsearch/search"
)

// graphSpace is an explicit adjacency list exposed through StateSpace.
type graphSpace struct {
	start string
	adj   map[string][]string
	goals map[string]bool
}

func (g *graphSpace) InitialState() string         { return g.start }
func (g *graphSpace) Successors(s string) []string { return g.adj[s] }
func (g *graphSpace) IsGoal(s string) bool         { return g.goals[s] }

func goals(ids ...string) map[string]bool {
	m := make(map[string]bool, len(ids))
	for _, id := range ids {
		m[id] = true
	}
	return m
}

// undirected builds a symmetric adjacency list from edge pairs, keeping
// insertion order for each endpoint.
func undirected(pairs ...[2]string) map[string][]string {
	adj := make(map[string][]string)
	for _, p := range pairs {
		adj[p[0]] = append(adj[p[0]], p[1])
		adj[p[1]] = append(adj[p[1]], p[0])
	}
	return adj
}

// counterSpace is an unbounded space over the integers: n → n+1, n*2.
type counterSpace struct {
	start, goal int
}

func (c counterSpace) InitialState() int      { return c.start }
func (c counterSpace) Successors(n int) []int { return []int{n + 1, n * 2} }
func (c counterSpace) IsGoal(n int) bool      { return n == c.goal }

func mustSearcher[S comparable](t *testing.T, space search.StateSpace[S], opts ...search.Option[S]) *search.Searcher[S] {
	t.Helper()
	s, err := search.NewSearcher(space, opts...)
	if err != nil {
		t.Fatalf("NewSearcher: unexpected error %v", err)
	}
	return s
}

// TestNewSearcher_Errors verifies that a nil StateSpace is rejected.
func TestNewSearcher_Errors(t *testing.T) {
	_, err := search.NewSearcher[string](nil)
	if !errors.Is(err, search.ErrNilSpace) {
		t.Errorf("nil space: want ErrNilSpace, got %v", err)
	}
	if !errors.Is(err, search.ErrInvalidArgument) {
		t.Errorf("nil space: want ErrInvalidArgument, got %v", err)
	}
}

// TestFindSolution_InitialIsGoal covers the trivial one-state solution.
func TestFindSolution_InitialIsGoal(t *testing.T) {
	s := mustSearcher[string](t, &graphSpace{
		start: "A",
		adj:   undirected([2]string{"A", "B"}),
		goals: goals("A", "B"),
	})
	if got, want := s.FindSolution(), []string{"A"}; !reflect.DeepEqual(got, want) {
		t.Errorf("FindSolution = %v; want %v", got, want)
	}
}

// TestFindSolution_Unreachable checks that exhaustion yields an empty,
// non-nil path which itself does not validate.
func TestFindSolution_Unreachable(t *testing.T) {
	s := mustSearcher[string](t, &graphSpace{
		start: "X",
		adj:   undirected([2]string{"X", "Y"}, [2]string{"P", "Q"}),
		goals: goals("Q"),
	})
	path := s.FindSolution()
	if path == nil || len(path) != 0 {
		t.Fatalf("FindSolution = %#v; want empty non-nil slice", path)
	}
	ok, err := s.IsValidSolution(path)
	if err != nil || ok {
		t.Errorf("IsValidSolution(empty) = %v, %v; want false, nil", ok, err)
	}
}

// TestFindSolution_ShortestPath has two competing routes from A to K of
// length 4 and 3; BFS must return the shorter one.
func TestFindSolution_ShortestPath(t *testing.T) {
	space := &graphSpace{
		start: "A",
		adj: undirected(
			[2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"C", "D"}, [2]string{"D", "K"},
			[2]string{"A", "E"}, [2]string{"E", "F"}, [2]string{"F", "K"},
			[2]string{"C", "G"}, [2]string{"G", "H"}, [2]string{"D", "I"}, [2]string{"I", "J"},
		),
		goals: goals("K"),
	}
	s := mustSearcher[string](t, space)
	path := s.FindSolution()
	if want := []string{"A", "E", "F", "K"}; !reflect.DeepEqual(path, want) {
		t.Errorf("FindSolution = %v; want %v", path, want)
	}
	if ok, err := s.IsValidSolution(path); err != nil || !ok {
		t.Errorf("IsValidSolution(FindSolution()) = %v, %v; want true, nil", ok, err)
	}
}

// TestFindSolution_TieBreak ensures that among equally short paths the one
// through the earlier successor wins.
func TestFindSolution_TieBreak(t *testing.T) {
	space := &graphSpace{
		start: "S",
		adj: map[string][]string{
			"S": {"L", "R"},
			"L": {"G1"},
			"R": {"G2"},
		},
		goals: goals("G1", "G2"),
	}
	if got, want := mustSearcher[string](t, space).FindSolution(), []string{"S", "L", "G1"}; !reflect.DeepEqual(got, want) {
		t.Errorf("FindSolution = %v; want %v", got, want)
	}

	space.adj["S"] = []string{"R", "L"}
	if got, want := mustSearcher[string](t, space).FindSolution(), []string{"S", "R", "G2"}; !reflect.DeepEqual(got, want) {
		t.Errorf("reordered FindSolution = %v; want %v", got, want)
	}
}

// TestFindSolution_DuplicatesAndCycles checks that repeated successors and
// back-edges never enqueue a state twice.
func TestFindSolution_DuplicatesAndCycles(t *testing.T) {
	space := &graphSpace{
		start: "A",
		adj: map[string][]string{
			"A": {"B", "B", "C"},
			"B": {"A", "C", "C"},
			"C": {"A", "B", "D"},
			"D": {"C"},
		},
		goals: goals("D"),
	}
	var enq []string
	s := mustSearcher(t, search.StateSpace[string](space),
		search.WithOnEnqueue(func(st string, _ int) { enq = append(enq, st) }),
	)
	res := s.Search()
	if want := []string{"A", "C", "D"}; !reflect.DeepEqual(res.Path, want) {
		t.Errorf("Path = %v; want %v", res.Path, want)
	}
	if want := []string{"A", "B", "C", "D"}; !reflect.DeepEqual(enq, want) {
		t.Errorf("enqueued = %v; want %v", enq, want)
	}
	if res.Discovered != 4 {
		t.Errorf("Discovered = %d; want 4", res.Discovered)
	}
}

// TestFindSolution_UnboundedSpace runs BFS over an infinite integer space
// with a reachable goal: 1→2→4→5→10 is the fewest-step route.
func TestFindSolution_UnboundedSpace(t *testing.T) {
	s := mustSearcher[int](t, counterSpace{start: 1, goal: 10})
	path := s.FindSolution()
	if want := []int{1, 2, 4, 5, 10}; !reflect.DeepEqual(path, want) {
		t.Errorf("FindSolution = %v; want %v", path, want)
	}
}

// TestFindSolution_Idempotent verifies repeated calls do not leak state.
func TestFindSolution_Idempotent(t *testing.T) {
	s := mustSearcher[int](t, counterSpace{start: 3, goal: 25})
	first := s.FindSolution()
	second := s.FindSolution()
	if len(first) == 0 || len(first) != len(second) {
		t.Fatalf("lengths differ: %v vs %v", first, second)
	}
	for i, p := range [][]int{first, second} {
		if ok, err := s.IsValidSolution(p); err != nil || !ok {
			t.Errorf("run #%d: IsValidSolution = %v, %v; want true, nil", i, ok, err)
		}
	}
}

// TestIsValidSolution covers each rejection rule of the validator.
func TestIsValidSolution(t *testing.T) {
	space := &graphSpace{
		start: "A",
		adj:   undirected([2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"C", "D"}),
		goals: goals("D"),
	}
	s := mustSearcher[string](t, space)

	cases := []struct {
		name     string
		solution []string
		want     bool
		err      error
	}{
		{"Nil", nil, false, search.ErrNilSolution},
		{"Empty", []string{}, false, nil},
		{"Valid", []string{"A", "B", "C", "D"}, true, nil},
		{"WrongStart", []string{"B", "C", "D"}, false, nil},
		{"SkipsState", []string{"A", "B", "D"}, false, nil},
		{"StopsShort", []string{"A", "B", "C"}, false, nil},
		{"Reversed", []string{"D", "C", "B", "A"}, false, nil},
		{"StartOnlyNotGoal", []string{"A"}, false, nil},
		{"Detour", []string{"A", "B", "A", "B", "C", "D"}, true, nil},
		{"RepeatedState", []string{"A", "A", "B", "C", "D"}, false, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := s.IsValidSolution(tc.solution)
			if !errors.Is(err, tc.err) {
				t.Fatalf("IsValidSolution(%v) error = %v; want %v", tc.solution, err, tc.err)
			}
			if got != tc.want {
				t.Errorf("IsValidSolution(%v) = %v; want %v", tc.solution, got, tc.want)
			}
		})
	}
}

// TestSearch_Counts checks Expanded/Discovered on a directed chain.
func TestSearch_Counts(t *testing.T) {
	space := &graphSpace{
		start: "a",
		adj:   map[string][]string{"a": {"b"}, "b": {"c"}, "c": {"d"}},
		goals: goals("d"),
	}
	res := mustSearcher[string](t, space).Search()
	if !res.Found() || res.Steps() != 3 {
		t.Fatalf("Found/Steps = %v/%d; want true/3", res.Found(), res.Steps())
	}
	if res.Expanded != 4 || res.Discovered != 4 {
		t.Errorf("Expanded/Discovered = %d/%d; want 4/4", res.Expanded, res.Discovered)
	}

	space.goals = goals("z")
	res = mustSearcher[string](t, space).Search()
	if res.Found() || res.Steps() != -1 {
		t.Errorf("unreachable: Found/Steps = %v/%d; want false/-1", res.Found(), res.Steps())
	}
}
