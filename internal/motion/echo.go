package motion

import (
	"math"

	"WigglyBoard/internal/state"
)

// EchoSettings control the ghosts spawned for a finished animated path.
type EchoSettings struct {
	DelayMs  float64
	MaxCount int
	Fade     float64
}

// EchoCount is the number of echoes that fit in duration at the configured
// spacing, capped at maxCount.
func EchoCount(duration, delayMs float64, maxCount int) int {
	if !(delayMs > 0) || maxCount <= 0 || !(duration > 0) {
		return 0
	}
	q := math.Floor(duration / delayMs)
	if math.IsNaN(q) || math.IsInf(q, 0) {
		return 0
	}
	if q >= float64(maxCount) {
		return maxCount
	}
	return int(q)
}

// EchoAlpha is the opacity of echo n (1-based) out of count. It falls with
// n and stays above 1-fade.
func EchoAlpha(n, count int, fade float64) float64 {
	return (1 - fade) + fade*(1-float64(n)/float64(count+1))
}

// SpawnEchoes clones the finished path once per echo. Clones get their own
// identity, an increasing delay and a decreasing alpha; p is not modified.
func SpawnEchoes(p *state.Path, es EchoSettings) []*state.Path {
	count := EchoCount(p.Duration(), es.DelayMs, es.MaxCount)
	if count <= 0 {
		return nil
	}
	echoes := make([]*state.Path, 0, count)
	for n := 1; n <= count; n++ {
		e := p.Clone()
		e.IsEcho = true
		e.EchoDelayMs = float64(n) * es.DelayMs
		e.EchoAlpha = EchoAlpha(n, count, es.Fade)
		echoes = append(echoes, e)
	}
	return echoes
}
