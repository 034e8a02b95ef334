package motion

import (
	"WigglyBoard/internal/state"
)

const speedWindow = 10

// Thickness bounds and calibration for speed scaling.
type ThicknessRange struct {
	Min       float64
	Max       float64
	Threshold float64 // canvas units per millisecond treated as "fast"
	Floor     float64 // lower bound that keeps the brush visible
}

// Clamp limits v to [max(Min, Floor), Max].
func (r ThicknessRange) Clamp(v float64) float64 {
	lo := max(r.Min, r.Floor)
	return max(min(v, r.Max), lo)
}

// SpeedEstimator turns timestamped pointer positions of one capture into a
// per-sample brush thickness. The zero value is ready for a new capture.
type SpeedEstimator struct {
	window [speedWindow]float64
	n      int
	next   int

	last     state.Point
	lastMs   float64
	hasLast  bool
	thick    float64
	hasThick bool
}

// Reset discards speed history and thickness smoothing.
func (e *SpeedEstimator) Reset() {
	*e = SpeedEstimator{}
}

// Observe records p at time tMs and returns the mean speed over the last
// ten samples. A sample without predecessor or without elapsed time counts
// as speed 0.
func (e *SpeedEstimator) Observe(p state.Point, tMs float64) float64 {
	raw := 0.0
	if e.hasLast {
		if dt := tMs - e.lastMs; dt > 0 {
			raw = e.last.Dist(p) / dt
		}
	}
	e.last, e.lastMs, e.hasLast = p, tMs, true

	e.window[e.next] = raw
	e.next = (e.next + 1) % speedWindow
	e.n = min(e.n+1, speedWindow)

	sum := 0.0
	for i := 0; i < e.n; i++ {
		sum += e.window[i]
	}
	return sum / float64(e.n)
}

// Thickness observes p and returns the smoothed, clamped brush width.
func (e *SpeedEstimator) Thickness(p state.Point, tMs float64, r ThicknessRange) float64 {
	speed := e.Observe(p, tMs)
	target := r.Min + ThicknessRatio(speed, r.Threshold)*(r.Max-r.Min)
	if e.hasThick {
		target = SmoothThickness(e.thick, target)
	}
	e.thick = r.Clamp(target)
	e.hasThick = true
	return e.thick
}

// ThicknessRatio maps a smoothed speed to a fraction of the thickness range:
// slow motion stays near 1, fast motion thins out towards 0.05.
func ThicknessRatio(speed, threshold float64) float64 {
	if threshold <= 0 {
		return 1
	}
	r := min(max(speed, 0)/threshold, 1)
	switch {
	case r < 0.2:
		return 0.9 + 0.1*(1-r/0.2)
	case r < 0.6:
		k := (r - 0.2) / 0.4
		return 0.9 - k*k*0.6
	default:
		return 0.3 - ((r-0.6)/0.4)*0.25
	}
}

// SmoothThickness blends from the previous width towards target. Thinning
// follows almost immediately, thickening eases in.
func SmoothThickness(prev, target float64) float64 {
	if target < prev {
		return prev*0.05 + target*0.95
	}
	return prev*0.9 + target*0.1
}
