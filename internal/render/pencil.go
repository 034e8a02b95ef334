package render

import (
	"math"
	"math/rand/v2"

	"WigglyBoard/internal/config"
	"WigglyBoard/internal/state"
)

// minLiftGap is the number of points a pencil pass must draw before the pen
// may lift again.
const minLiftGap = 4

// SketchCount is the number of overlapping passes a pencil stroke gets.
func SketchCount(density float64) int {
	return max(1, int(math.Floor(density*3)))
}

// LiftProbability is the per-point chance of a pen lift.
func LiftProbability(roughness float64) float64 {
	return 0.02 + 0.18*min(max(roughness, 0), 1)
}

// Segment is a half-open index range [Start, End) of stroke points drawn
// without lifting the pen.
type Segment struct{ Start, End int }

// PenLifts splits n points into segments. A lift only happens after at
// least minLiftGap points since the previous one.
func PenLifts(n int, prob float64, rng *rand.Rand) []Segment {
	if n == 0 {
		return nil
	}
	var segs []Segment
	start := 0
	for i := 1; i < n; i++ {
		if i-start >= minLiftGap && rng.Float64() < prob {
			segs = append(segs, Segment{Start: start, End: i})
			start = i
		}
	}
	return append(segs, Segment{Start: start, End: n})
}

func (r *Renderer) drawPencil(s Surface, st *state.Stroke, cfg config.Config) {
	passes := SketchCount(cfg.PencilDensity)
	col := WithAlpha(st.Color, 0.35+0.65/float64(passes))
	amp := cfg.Jitter * (1 + cfg.PencilRoughness)
	lift := LiftProbability(cfg.PencilRoughness)

	for pass := 1; pass <= passes; pass++ {
		// seeded per stroke and pass so lifts do not flicker between frames
		rng := rand.New(rand.NewPCG(st.ID.Seed(), uint64(pass)))
		width := st.Thickness * (0.5 + rng.Float64()*0.6)
		for _, seg := range PenLifts(len(st.Points), lift, rng) {
			if seg.End-seg.Start < 2 {
				continue
			}
			s.StrokePolyline(r.jittered(st, pass, seg.Start, seg.End, amp), col, width)
		}
	}
}
