// Package term runs a session in a terminal, drawing frames as coloured cells with tcell.
package term

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"entropia/render"
)

// Surface scales frame rectangles from view pixels down to terminal cells. Each cell takes
// the background colour of the last rectangle covering it.
type Surface struct {
	screen tcell.Screen
	view   render.View
}

func NewSurface(screen tcell.Screen, view render.View) *Surface {
	return &Surface{screen: screen, view: view}
}

func (s *Surface) FillRect(x, y, w, h float32, c color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	cols, rows := s.screen.Size()
	sx := float64(cols) / float64(s.view.Width)
	sy := float64(rows) / float64(s.view.Height)

	x0, x1 := cellSpan(float64(x)*sx, float64(x+w)*sx, cols)
	y0, y1 := cellSpan(float64(y)*sy, float64(y+h)*sy, rows)

	style := tcell.StyleDefault.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
	for cy := y0; cy < y1; cy++ {
		for cx := x0; cx < x1; cx++ {
			s.screen.SetContent(cx, cy, ' ', nil, style)
		}
	}
}

// cellSpan rounds [a, b) to whole cells, keeping at least one cell so thin sprites stay
// visible, and clips to [0, limit).
func cellSpan(a, b float64, limit int) (int, int) {
	lo := int(math.Round(a))
	hi := int(math.Round(b))
	if hi <= lo {
		hi = lo + 1
	}
	return max(lo, 0), min(hi, limit)
}
