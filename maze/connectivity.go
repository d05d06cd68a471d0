package maze

import "entropia/model"

var steps = [4]Point{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

// flood runs a breadth-first search over open cells from (x, y) and calls visit for each
// reached cell with its distance in steps.
func flood(g *model.Grid, x, y int, visit func(p Point, dist int)) {
	if !g.IsOpen(x, y) {
		return
	}

	w := g.Width()
	seen := make([]bool, w*g.Height())
	seen[y*w+x] = true

	type item struct {
		p    Point
		dist int
	}
	queue := []item{{Point{x, y}, 0}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		visit(cur.p, cur.dist)

		for _, s := range steps {
			nx, ny := cur.p.X+s.X, cur.p.Y+s.Y
			if !g.IsOpen(nx, ny) || seen[ny*w+nx] {
				continue
			}
			seen[ny*w+nx] = true
			queue = append(queue, item{Point{nx, ny}, cur.dist + 1})
		}
	}
}

// Reachable returns how many open cells can be reached from (x, y), including itself.
func Reachable(g *model.Grid, x, y int) int {
	n := 0
	flood(g, x, y, func(Point, int) { n++ })
	return n
}

// Connected reports whether every open cell is reachable from (x, y).
func Connected(g *model.Grid, x, y int) bool {
	open := g.OpenCells()
	return open > 0 && Reachable(g, x, y) == open
}

// Farthest returns the open cell with the longest path from (x, y). Ties keep the first
// cell found, so the result is deterministic for a given grid.
func Farthest(g *model.Grid, x, y int) Point {
	best, bestDist := Point{x, y}, -1
	flood(g, x, y, func(p Point, dist int) {
		if dist > bestDist {
			best, bestDist = p, dist
		}
	})
	return best
}
