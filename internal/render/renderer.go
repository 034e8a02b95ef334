package render

import (
	"image/color"
	"time"

	"WigglyBoard/internal/config"
	"WigglyBoard/internal/motion"
	"WigglyBoard/internal/state"
)

// Frame is everything the renderer needs for one paint pass.
type Frame struct {
	Now    time.Time
	Config config.Config
	Board  *state.Board

	// Live is the animated path still being captured, if any. It is drawn
	// from the wall clock instead of looping.
	Live *state.Path

	// Still repaints the current frame without advancing the jitter clock.
	Still bool
}

type Renderer struct {
	noise      *motion.NoiseCache
	Background color.NRGBA
}

func NewRenderer(noise *motion.NoiseCache) *Renderer {
	return &Renderer{
		noise:      noise,
		Background: color.NRGBA{R: 255, G: 255, B: 255, A: 255},
	}
}

// Paint draws the board bottom layer first, static strokes below paths,
// and advances the jitter clock by one frame unless the frame is Still.
func (r *Renderer) Paint(s Surface, f Frame) {
	cfg := f.Config
	r.noise.SetHoldFrames(cfg.HoldFrames())

	s.Clear(r.Background)
	if f.Board != nil {
		for _, l := range state.Layers {
			c := f.Board.Layer(l)
			for _, st := range c.Strokes {
				r.drawStatic(s, st, cfg)
			}
			for _, p := range c.Paths {
				if p == f.Live {
					r.drawLive(s, p, f)
				} else {
					r.drawPlayback(s, p, f)
				}
			}
		}
	}
	if !f.Still {
		r.noise.Advance()
	}
}

func (r *Renderer) drawStatic(s Surface, st *state.Stroke, cfg config.Config) {
	switch {
	case len(st.Points) == 0:
		return
	case len(st.Points) == 1:
		p := r.noise.Offset(st.ID, 0, 0, st.Points[0], cfg.Jitter)
		s.FillCircle(p, st.Thickness/2, st.Color)
		return
	case st.Brush == state.BrushPencil:
		r.drawPencil(s, st, cfg)
		return
	}
	s.StrokePolyline(r.jittered(st, 0, 0, len(st.Points), cfg.Jitter), st.Color, st.Thickness)
}

// jittered returns points [from, to) of st with the offsets of pass.
func (r *Renderer) jittered(st *state.Stroke, pass, from, to int, amplitude float64) []state.Point {
	pts := make([]state.Point, 0, to-from)
	for i := from; i < to; i++ {
		pts = append(pts, r.noise.Offset(st.ID, pass, i, st.Points[i], amplitude))
	}
	return pts
}
