package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"

	"WigglyBoard/internal/render"
	"WigglyBoard/internal/state"
)

// canvasSurface collects one frame as fyne canvas objects. Every Clear
// starts a new frame.
type canvasSurface struct {
	size    fyne.Size
	objects []fyne.CanvasObject
}

var _ render.Surface = (*canvasSurface)(nil)

func (s *canvasSurface) Size() (int, int) {
	return int(s.size.Width), int(s.size.Height)
}

func (s *canvasSurface) Clear(c color.NRGBA) {
	bg := canvas.NewRectangle(c)
	bg.Resize(s.size)
	s.objects = append(s.objects[:0], bg)
}

func (s *canvasSurface) StrokePolyline(points []state.Point, c color.NRGBA, width float64) {
	for i := 1; i < len(points); i++ {
		s.StrokeLine(points[i-1], points[i], c, width)
	}
}

func (s *canvasSurface) StrokeLine(a, b state.Point, c color.NRGBA, width float64) {
	line := canvas.NewLine(c)
	line.StrokeWidth = float32(width)
	line.Position1 = pos(a)
	line.Position2 = pos(b)
	s.objects = append(s.objects, line)
}

func (s *canvasSurface) FillCircle(center state.Point, radius float64, c color.NRGBA) {
	circle := canvas.NewCircle(c)
	d := float32(2 * radius)
	circle.Resize(fyne.NewSize(d, d))
	circle.Move(fyne.NewPos(float32(center.X-radius), float32(center.Y-radius)))
	s.objects = append(s.objects, circle)
}

func (s *canvasSurface) FillRect(x, y, w, h float64, c color.NRGBA) {
	rect := canvas.NewRectangle(c)
	rect.Resize(fyne.NewSize(float32(w), float32(h)))
	rect.Move(fyne.NewPos(float32(x), float32(y)))
	s.objects = append(s.objects, rect)
}

func pos(p state.Point) fyne.Position {
	return fyne.NewPos(float32(p.X), float32(p.Y))
}

func point(p fyne.Position) state.Point {
	return state.Point{X: float64(p.X), Y: float64(p.Y)}
}
