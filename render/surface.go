package render

import "image/color"

// Surface is anything that can fill axis-aligned rectangles in screen pixels.
type Surface interface {
	FillRect(x, y, w, h float32, c color.RGBA)
}

type Rect struct {
	X, Y, W, H float32
	Color      color.RGBA
}

// Recorder is a Surface that keeps every rectangle it is asked to fill.
type Recorder struct {
	Rects []Rect
}

func (r *Recorder) FillRect(x, y, w, h float32, c color.RGBA) {
	r.Rects = append(r.Rects, Rect{X: x, Y: y, W: w, H: h, Color: c})
}

func (r *Recorder) Reset() {
	r.Rects = r.Rects[:0]
}
