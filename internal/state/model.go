package state

import (
	"image/color"
	"math"
	"time"
)

type Point struct{ X, Y float64 }

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Lerp interpolates between p and q, t in [0, 1].
func (p Point) Lerp(q Point, t float64) Point {
	return Point{X: p.X + (q.X-p.X)*t, Y: p.Y + (q.Y-p.Y)*t}
}

type Layer string

const (
	Foreground Layer = "fg"
	Background Layer = "bg"
)

// Layers lists the layers in paint order, bottom first.
var Layers = []Layer{Background, Foreground}

type BrushStyle string

const (
	BrushNormal BrushStyle = "normal"
	BrushPencil BrushStyle = "pencil"
)

// Stroke is a static freehand stroke. Points are appended only while the
// stroke is the active capture.
type Stroke struct {
	ID        ID
	Layer     Layer
	Color     color.NRGBA
	Thickness float64
	Brush     BrushStyle
	Points    []Point
}

func NewStroke(layer Layer, c color.NRGBA, thickness float64, brush BrushStyle, first Point) *Stroke {
	return &Stroke{
		ID:        NewID(),
		Layer:     layer,
		Color:     c,
		Thickness: thickness,
		Brush:     brush,
		Points:    []Point{first},
	}
}

func (s *Stroke) Append(p Point) {
	s.Points = append(s.Points, p)
}

// Sample is one recorded position of an animated path.
type Sample struct {
	X, Y         float64
	TimeOffsetMs float64
	Thickness    float64
}

func (s Sample) Point() Point { return Point{X: s.X, Y: s.Y} }

// Path is a time-indexed stroke that replays its drawing motion.
type Path struct {
	ID            ID
	Layer         Layer
	Color         color.NRGBA
	BaseThickness float64
	CreatedAt     time.Time
	Samples       []Sample

	EchoAlpha   float64
	IsEcho      bool
	EchoDelayMs float64
}

func NewPath(layer Layer, c color.NRGBA, base float64, createdAt time.Time, first Sample) *Path {
	return &Path{
		ID:            NewID(),
		Layer:         layer,
		Color:         c,
		BaseThickness: base,
		CreatedAt:     createdAt,
		Samples:       []Sample{first},
		EchoAlpha:     1,
	}
}

func (p *Path) Append(s Sample) {
	p.Samples = append(p.Samples, s)
}

// Duration is the time offset of the last sample, 0 for an empty path.
func (p *Path) Duration() float64 {
	if len(p.Samples) == 0 {
		return 0
	}
	return p.Samples[len(p.Samples)-1].TimeOffsetMs
}

// Clone returns a copy of p with a new identity. The sample slice is not
// shared with p.
func (p *Path) Clone() *Path {
	c := *p
	c.ID = NewID()
	c.Samples = make([]Sample, len(p.Samples))
	copy(c.Samples, p.Samples)
	return &c
}

// Points returns the sample positions of p.
func (p *Path) Points() []Point {
	pts := make([]Point, len(p.Samples))
	for i, s := range p.Samples {
		pts[i] = s.Point()
	}
	return pts
}

// MsSince converts the interval between start and t into fractional
// milliseconds.
func MsSince(start, t time.Time) float64 {
	return float64(t.Sub(start)) / float64(time.Millisecond)
}
