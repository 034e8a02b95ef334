package render

import (
	"image/color"

	"WigglyBoard/internal/state"
)

type opKind int

const (
	opClear opKind = iota
	opPolyline
	opLine
	opCircle
	opRect
)

type op struct {
	kind   opKind
	points []state.Point
	color  color.NRGBA
	width  float64
	radius float64
	rect   [4]float64
}

// recorder is a Surface that keeps every primitive for inspection.
type recorder struct {
	ops []op
}

func (r *recorder) Size() (int, int) { return 640, 480 }

func (r *recorder) Clear(c color.NRGBA) {
	r.ops = append(r.ops, op{kind: opClear, color: c})
}

func (r *recorder) StrokePolyline(points []state.Point, c color.NRGBA, width float64) {
	pts := append([]state.Point(nil), points...)
	r.ops = append(r.ops, op{kind: opPolyline, points: pts, color: c, width: width})
}

func (r *recorder) StrokeLine(a, b state.Point, c color.NRGBA, width float64) {
	r.ops = append(r.ops, op{kind: opLine, points: []state.Point{a, b}, color: c, width: width})
}

func (r *recorder) FillCircle(center state.Point, radius float64, c color.NRGBA) {
	r.ops = append(r.ops, op{kind: opCircle, points: []state.Point{center}, radius: radius, color: c})
}

func (r *recorder) FillRect(x, y, w, h float64, c color.NRGBA) {
	r.ops = append(r.ops, op{kind: opRect, rect: [4]float64{x, y, w, h}, color: c})
}

func (r *recorder) only(kind opKind) []op {
	var out []op
	for _, o := range r.ops {
		if o.kind == kind {
			out = append(out, o)
		}
	}
	return out
}

// drawn returns every primitive except Clear.
func (r *recorder) drawn() []op {
	var out []op
	for _, o := range r.ops {
		if o.kind != opClear {
			out = append(out, o)
		}
	}
	return out
}
