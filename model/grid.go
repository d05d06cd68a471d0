package model

import (
	"fmt"
	"math"
)

// Cell is the state of one grid square.
type Cell uint8

const (
	Open Cell = iota
	Wall
)

// Grid is the static wall/open map. It is built once and never mutated.
type Grid struct {
	width, height int
	cells         []Cell
}

// NewGrid copies rows (indexed [y][x]) into a Grid. All rows must have the same length.
func NewGrid(rows [][]Cell) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("grid: empty rows")
	}

	w, h := len(rows[0]), len(rows)
	g := &Grid{width: w, height: h, cells: make([]Cell, w*h)}
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("grid: row %d has %d cells, want %d", y, len(row), w)
		}
		copy(g.cells[y*w:(y+1)*w], row)
	}
	return g, nil
}

// GridFromStrings builds a grid from text rows where '#' is a wall and anything else is open.
func GridFromStrings(lines ...string) (*Grid, error) {
	rows := make([][]Cell, len(lines))
	for y, line := range lines {
		rows[y] = make([]Cell, len(line))
		for x, ch := range line {
			if ch == '#' {
				rows[y][x] = Wall
			}
		}
	}
	return NewGrid(rows)
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.width && y < g.height
}

// At returns the cell at (x, y). Anything outside the grid reads as Wall.
func (g *Grid) At(x, y int) Cell {
	if !g.InBounds(x, y) {
		return Wall
	}
	return g.cells[y*g.width+x]
}

func (g *Grid) IsOpen(x, y int) bool {
	return g.At(x, y) == Open
}

// CellOf returns the cell coordinates containing the continuous point (x, y).
func CellOf(x, y float64) (int, int) {
	return int(math.Floor(x)), int(math.Floor(y))
}

// OpenAt reports whether the continuous point (x, y) lies in an open, in-bounds cell.
func (g *Grid) OpenAt(x, y float64) bool {
	cx, cy := CellOf(x, y)
	return g.IsOpen(cx, cy)
}

// OpenCells returns the number of open cells.
func (g *Grid) OpenCells() int {
	n := 0
	for _, c := range g.cells {
		if c == Open {
			n++
		}
	}
	return n
}

// String renders the grid with '#' for walls and '.' for open cells.
func (g *Grid) String() string {
	buf := make([]byte, 0, (g.width+1)*g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.At(x, y) == Wall {
				buf = append(buf, '#')
			} else {
				buf = append(buf, '.')
			}
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
