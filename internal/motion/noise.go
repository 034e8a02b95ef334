// Package motion implements the time-dependent parts of stroke rendering:
// frame-quantized jitter, pointer speed to thickness mapping, step sampling
// of recorded paths and echo generation.
package motion

import (
	"math/rand/v2"
	"time"

	"WigglyBoard/internal/state"
)

type Axis uint8

const (
	AxisX Axis = iota
	AxisY
)

// NoiseKey names one jittered coordinate: a point of a stroke, on one axis,
// in one drawing pass. Pass 0 is the regular stroke; pencil passes use 1..n.
type NoiseKey struct {
	Stroke state.ID
	Pass   int
	Index  int
	Axis   Axis
}

type noiseEntry struct {
	unit    float64
	frameAt uint64
}

// NoiseCache hands out jitter offsets that stay fixed for holdFrames frames
// and then snap to new values, giving strokes their stepped wiggle.
type NoiseCache struct {
	rng        *rand.Rand
	frame      uint64
	holdFrames int
	values     map[NoiseKey]noiseEntry
}

// NewNoiseCache creates a cache drawing from rng. A nil rng uses a source
// seeded from the current time.
func NewNoiseCache(rng *rand.Rand) *NoiseCache {
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
	}
	return &NoiseCache{
		rng:        rng,
		holdFrames: 1,
		values:     make(map[NoiseKey]noiseEntry),
	}
}

func (c *NoiseCache) SetHoldFrames(n int) {
	c.holdFrames = max(1, n)
}

func (c *NoiseCache) HoldFrames() int { return c.holdFrames }

func (c *NoiseCache) Frame() uint64 { return c.frame }

const (
	// sweepEvery is the number of frames between two sweeps for stale
	// offsets.
	sweepEvery = 256
	// staleHolds is the number of hold windows an offset may go unread
	// before a sweep drops it.
	staleHolds = 4
)

// Advance moves the cache to the next frame. Every sweepEvery frames it
// drops offsets nobody read for staleHolds hold windows, such as those of
// erased or undone strokes and of pencil passes no longer drawn.
func (c *NoiseCache) Advance() {
	c.frame++
	if c.frame%sweepEvery == 0 {
		c.sweep()
	}
}

func (c *NoiseCache) sweep() {
	stale := uint64(staleHolds * c.holdFrames)
	for k, e := range c.values {
		if c.frame-e.frameAt > stale {
			delete(c.values, k)
		}
	}
}

// Sample returns the offset for key, uniform in [-amplitude, +amplitude].
// The underlying value is refreshed when key is new or when the frame
// counter sits on a hold boundary; repeated calls within one frame agree.
func (c *NoiseCache) Sample(key NoiseKey, amplitude float64) float64 {
	e, seen := c.values[key]
	boundary := c.frame%uint64(c.holdFrames) == 0
	if !seen || (boundary && e.frameAt != c.frame) {
		e = noiseEntry{unit: (c.rng.Float64() - 0.5) * 2, frameAt: c.frame}
		c.values[key] = e
	}
	return e.unit * amplitude
}

// Offset jitters p for point index i of a stroke pass.
func (c *NoiseCache) Offset(id state.ID, pass, i int, p state.Point, amplitude float64) state.Point {
	return state.Point{
		X: p.X + c.Sample(NoiseKey{Stroke: id, Pass: pass, Index: i, Axis: AxisX}, amplitude),
		Y: p.Y + c.Sample(NoiseKey{Stroke: id, Pass: pass, Index: i, Axis: AxisY}, amplitude),
	}
}

// Reset forgets every cached offset.
func (c *NoiseCache) Reset() {
	clear(c.values)
}

// Len reports the number of cached offsets.
func (c *NoiseCache) Len() int { return len(c.values) }
