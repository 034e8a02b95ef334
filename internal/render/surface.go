// Package render paints a board onto a drawing surface once per frame.
//
// Static strokes are drawn as polylines through jittered points. Animated
// paths are drawn as a moving brush: the sample on display at the current
// time becomes a dot, or a faded connecting segment when the brush jumped
// far since the previous frame.
package render

import (
	"image/color"
	"math"

	"WigglyBoard/internal/config"
	"WigglyBoard/internal/state"
)

// Surface receives the drawing primitives of a frame. Coordinates are in
// canvas units, colours are non-premultiplied.
type Surface interface {
	Size() (w, h int)
	Clear(c color.NRGBA)
	StrokePolyline(points []state.Point, c color.NRGBA, width float64)
	StrokeLine(a, b state.Point, c color.NRGBA, width float64)
	FillCircle(center state.Point, radius float64, c color.NRGBA)
	FillRect(x, y, w, h float64, c color.NRGBA)
}

// WithAlpha scales the opacity of c by alpha.
func WithAlpha(c color.NRGBA, alpha float64) color.NRGBA {
	alpha = min(max(alpha, 0), 1)
	c.A = uint8(math.Round(float64(c.A) * alpha))
	return c
}

// dot stamps a single brush mark of the given diameter.
func dot(s Surface, at state.Point, diameter float64, c color.NRGBA, shape config.Shape) {
	if shape == config.ShapeSquare {
		s.FillRect(at.X-diameter/2, at.Y-diameter/2, diameter, diameter, c)
		return
	}
	s.FillCircle(at, diameter/2, c)
}
