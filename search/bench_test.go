package search_test

import (
	"testing"

	"github.com/katalvlaran/pathsearch/search"
)

// gridSpace is an open M×M grid over packed coordinates, corner to corner.
type gridSpace struct{ m int }

func (g gridSpace) InitialState() int { return 0 }

func (g gridSpace) Successors(id int) []int {
	x, y := id%g.m, id/g.m
	next := make([]int, 0, 4)
	if x+1 < g.m {
		next = append(next, id+1)
	}
	if y+1 < g.m {
		next = append(next, id+g.m)
	}
	if x > 0 {
		next = append(next, id-1)
	}
	if y > 0 {
		next = append(next, id-g.m)
	}
	return next
}

func (g gridSpace) IsGoal(id int) bool { return id == g.m*g.m-1 }

// BenchmarkFindSolution_Grid runs BFS across an M×M grid (M² states).
func BenchmarkFindSolution_Grid(b *testing.B) {
	const M = 100
	s, err := search.NewSearcher[int](gridSpace{m: M})
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.SetBytes(int64(M * M))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.FindSolution()
	}
}

// BenchmarkIsValidSolution_Chain validates a long hand-built path.
func BenchmarkIsValidSolution_Chain(b *testing.B) {
	const M = 100
	space := gridSpace{m: M}
	s, _ := search.NewSearcher[int](space)
	// walk right along row 0, then down the last column
	path := make([]int, 0, 2*M-1)
	for x := 0; x < M; x++ {
		path = append(path, x)
	}
	for y := 1; y < M; y++ {
		path = append(path, y*M+M-1)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if ok, _ := s.IsValidSolution(path); !ok {
			b.Fatal("hand-built path rejected")
		}
	}
}
