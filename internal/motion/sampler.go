package motion

import (
	"math"
	"sort"

	"WigglyBoard/internal/state"
)

// SampleAt returns the sample on display at elapsed time t: the last sample
// recorded at or before t. Positions hold between samples rather than
// blending. t <= 0 yields the first sample and t past the end the last.
// ok is false only for a path without samples.
func SampleAt(p *state.Path, t float64) (s state.Sample, index int, ok bool) {
	n := len(p.Samples)
	if n == 0 {
		return state.Sample{}, 0, false
	}
	if t <= 0 {
		return p.Samples[0], 0, true
	}
	// first sample strictly after t
	i := sort.Search(n, func(i int) bool { return p.Samples[i].TimeOffsetMs > t })
	index = max(i-1, 0)
	return p.Samples[index], index, true
}

// LoopTime folds an elapsed time into [0, duration) so a path replays
// forever. Non-positive durations fold to 0.
func LoopTime(elapsed, duration float64) float64 {
	if duration <= 0 {
		return 0
	}
	t := math.Mod(elapsed, duration)
	if t < 0 {
		t += duration
	}
	return t
}
