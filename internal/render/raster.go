package render

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/fogleman/gg"

	"WigglyBoard/internal/state"
)

// Raster is an offscreen Surface backed by a gg context.
type Raster struct {
	dc *gg.Context
}

var _ Surface = (*Raster)(nil)

func NewRaster(width, height int) *Raster {
	dc := gg.NewContext(width, height)
	dc.SetLineCapRound()
	dc.SetLineJoinRound()
	return &Raster{dc: dc}
}

func (r *Raster) Size() (int, int) { return r.dc.Width(), r.dc.Height() }

func (r *Raster) Clear(c color.NRGBA) {
	r.dc.SetColor(c)
	r.dc.Clear()
}

func (r *Raster) StrokePolyline(points []state.Point, c color.NRGBA, width float64) {
	if len(points) < 2 {
		return
	}
	r.dc.NewSubPath()
	r.dc.MoveTo(points[0].X, points[0].Y)
	for _, p := range points[1:] {
		r.dc.LineTo(p.X, p.Y)
	}
	r.dc.SetColor(c)
	r.dc.SetLineWidth(width)
	r.dc.Stroke()
}

func (r *Raster) StrokeLine(a, b state.Point, c color.NRGBA, width float64) {
	r.StrokePolyline([]state.Point{a, b}, c, width)
}

func (r *Raster) FillCircle(center state.Point, radius float64, c color.NRGBA) {
	r.dc.DrawCircle(center.X, center.Y, radius)
	r.dc.SetColor(c)
	r.dc.Fill()
}

func (r *Raster) FillRect(x, y, w, h float64, c color.NRGBA) {
	r.dc.DrawRectangle(x, y, w, h)
	r.dc.SetColor(c)
	r.dc.Fill()
}

func (r *Raster) Image() image.Image { return r.dc.Image() }

// WritePNG encodes the current frame as PNG.
func (r *Raster) WritePNG(w io.Writer) error {
	if err := r.dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
