package state

// Rect is an axis-aligned box on the canvas.
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// BoundsOf returns the bounding box of points. ok is false for no points.
func BoundsOf(points []Point) (r Rect, ok bool) {
	if len(points) == 0 {
		return Rect{}, false
	}
	r = Rect{MinX: points[0].X, MinY: points[0].Y, MaxX: points[0].X, MaxY: points[0].Y}
	for _, p := range points[1:] {
		r.MinX = min(r.MinX, p.X)
		r.MinY = min(r.MinY, p.Y)
		r.MaxX = max(r.MaxX, p.X)
		r.MaxY = max(r.MaxY, p.Y)
	}
	return r, true
}

// Inflate grows r by pad on every side.
func (r Rect) Inflate(pad float64) Rect {
	return Rect{MinX: r.MinX - pad, MinY: r.MinY - pad, MaxX: r.MaxX + pad, MaxY: r.MaxY + pad}
}

func (r Rect) Contains(p Point) bool {
	return p.X >= r.MinX && p.X <= r.MaxX && p.Y >= r.MinY && p.Y <= r.MaxY
}

// hitAny reports whether any point lies strictly closer than radius to at.
func hitAny(points []Point, at Point, radius float64) bool {
	box, ok := BoundsOf(points)
	if !ok || !box.Inflate(radius).Contains(at) {
		return false
	}
	for _, p := range points {
		if p.Dist(at) < radius {
			return true
		}
	}
	return false
}
