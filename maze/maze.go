// Package maze carves perfect mazes on odd-sized grids.
package maze

import (
	"errors"
	"fmt"
	"math/rand"

	"entropia/model"
)

// ErrInvalidSize is returned for even or too-small maze dimensions.
var ErrInvalidSize = errors.New("maze: dimensions must be odd and at least 5")

// MinSize is the smallest accepted width or height.
const MinSize = 5

// Start is the cell carving begins from; every open cell is reachable from it.
var Start = Point{X: 1, Y: 1}

type Point struct {
	X, Y int
}

var jumps = [4]Point{{0, -2}, {0, 2}, {-2, 0}, {2, 0}}

// Generate carves a perfect maze with a randomized depth-first traversal. The traversal uses
// an explicit stack so its memory is bounded by the grid area rather than the goroutine stack.
// The result depends only on rng.
func Generate(width, height int, rng *rand.Rand) (*model.Grid, error) {
	if err := validate(width, height); err != nil {
		return nil, err
	}

	rows := make([][]model.Cell, height)
	for y := range rows {
		rows[y] = make([]model.Cell, width)
		for x := range rows[y] {
			rows[y][x] = model.Wall
		}
	}

	type frame struct {
		at    Point
		order [4]int
		next  int
	}

	shuffled := func() [4]int {
		order := [4]int{0, 1, 2, 3}
		rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })
		return order
	}

	rows[Start.Y][Start.X] = model.Open
	stack := []frame{{at: Start, order: shuffled()}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == len(top.order) {
			stack = stack[:len(stack)-1]
			continue
		}

		d := jumps[top.order[top.next]]
		top.next++

		nx, ny := top.at.X+d.X, top.at.Y+d.Y
		// keep a one-cell wall border
		if nx <= 0 || ny <= 0 || nx >= width-1 || ny >= height-1 {
			continue
		}
		if rows[ny][nx] != model.Wall {
			continue
		}

		rows[top.at.Y+d.Y/2][top.at.X+d.X/2] = model.Open
		rows[ny][nx] = model.Open
		stack = append(stack, frame{at: Point{nx, ny}, order: shuffled()})
	}

	return model.NewGrid(rows)
}

func validate(width, height int) error {
	if width < MinSize || height < MinSize || width%2 == 0 || height%2 == 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidSize, width, height)
	}
	return nil
}
