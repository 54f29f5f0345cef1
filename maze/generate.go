package maze

import "math/rand"

// Generate carves a perfect w×h maze by randomized depth-first search from
// start. Every cell ends up reachable through exactly one route, so the
// maze has w·h−1 open passages. The same seed always yields the same maze.
func Generate(w, h int, start, goal Cell, seed int64) (*Maze, error) {
	m, err := New(w, h, start, goal)
	if err != nil {
		return nil, err
	}
	r := rand.New(rand.NewSource(seed))

	visited := make([]bool, w*h)
	visited[m.index(start)] = true
	stack := []Cell{start}
	order := directions

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		r.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })

		advanced := false
		for _, d := range order {
			next := cur.Step(d)
			if !m.InBounds(next) || visited[m.index(next)] {
				continue
			}
			m.carve(cur, d)
			visited[m.index(next)] = true
			stack = append(stack, next)
			advanced = true
			break
		}
		if !advanced {
			stack = stack[:len(stack)-1]
		}
	}

	return m, nil
}
