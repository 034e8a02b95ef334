package render

import (
	"image/color"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"WigglyBoard/internal/config"
	"WigglyBoard/internal/motion"
	"WigglyBoard/internal/state"
)

var (
	blue  = color.NRGBA{B: 255, A: 255}
	epoch = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
)

func newTestRenderer() (*Renderer, *motion.NoiseCache) {
	noise := motion.NewNoiseCache(rand.New(rand.NewPCG(7, 11)))
	return NewRenderer(noise), noise
}

func paint(r *Renderer, b *state.Board, cfg config.Config, now time.Time, live *state.Path) *recorder {
	rec := &recorder{}
	r.Paint(rec, Frame{Now: now, Config: cfg, Board: b, Live: live})
	return rec
}

func TestPaint_StaticStrokeWithoutJitter(t *testing.T) {
	r, _ := newTestRenderer()
	b := state.NewBoard()
	s := state.NewStroke(state.Foreground, blue, 4, state.BrushNormal, state.Point{X: 0, Y: 0})
	s.Append(state.Point{X: 10, Y: 0})
	s.Append(state.Point{X: 20, Y: 0})
	b.AddStroke(s)

	cfg := config.Default()
	cfg.Jitter = 0
	rec := paint(r, b, cfg, epoch, nil)

	lines := rec.only(opPolyline)
	require.Len(t, lines, 1)
	assert.Equal(t, []state.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 20, Y: 0}}, lines[0].points)
	assert.Equal(t, 4.0, lines[0].width)
	assert.Equal(t, blue, lines[0].color)
}

func TestPaint_StaticJitterHoldsBetweenRefreshes(t *testing.T) {
	r, noise := newTestRenderer()
	b := state.NewBoard()
	s := state.NewStroke(state.Background, blue, 4, state.BrushNormal, state.Point{X: 50, Y: 50})
	s.Append(state.Point{X: 60, Y: 50})
	b.AddStroke(s)

	cfg := config.Default()
	cfg.Jitter = 3
	cfg.WiggleSpeed = 18 // hold 3 frames

	first := paint(r, b, cfg, epoch, nil).only(opPolyline)[0].points
	second := paint(r, b, cfg, epoch, nil).only(opPolyline)[0].points
	third := paint(r, b, cfg, epoch, nil).only(opPolyline)[0].points
	assert.Equal(t, first, second)
	assert.Equal(t, first, third)
	assert.Equal(t, uint64(3), noise.Frame())

	fourth := paint(r, b, cfg, epoch, nil).only(opPolyline)[0].points
	assert.NotEqual(t, first, fourth)
	for i, p := range fourth {
		assert.InDelta(t, s.Points[i].X, p.X, 3)
		assert.InDelta(t, s.Points[i].Y, p.Y, 3)
	}
}

func TestPaint_StillFrameKeepsClock(t *testing.T) {
	r, noise := newTestRenderer()
	b := state.NewBoard()
	s := state.NewStroke(state.Foreground, blue, 4, state.BrushNormal, state.Point{X: 5, Y: 5})
	s.Append(state.Point{X: 25, Y: 5})
	b.AddStroke(s)

	cfg := config.Default()
	cfg.WiggleSpeed = 18

	first := paint(r, b, cfg, epoch, nil).only(opPolyline)[0].points
	for range 10 {
		rec := &recorder{}
		r.Paint(rec, Frame{Now: epoch, Config: cfg, Board: b, Still: true})
		assert.Equal(t, first, rec.only(opPolyline)[0].points)
	}
	assert.Equal(t, uint64(1), noise.Frame())
}

func TestPaint_SinglePointStroke(t *testing.T) {
	r, _ := newTestRenderer()
	b := state.NewBoard()
	b.AddStroke(state.NewStroke(state.Foreground, blue, 10, state.BrushNormal, state.Point{X: 5, Y: 5}))

	cfg := config.Default()
	cfg.Jitter = 0
	circles := paint(r, b, cfg, epoch, nil).only(opCircle)
	require.Len(t, circles, 1)
	assert.Equal(t, 5.0, circles[0].radius)
}

func TestPaint_LayerOrder(t *testing.T) {
	r, _ := newTestRenderer()
	b := state.NewBoard()
	fg := state.NewStroke(state.Foreground, blue, 4, state.BrushNormal, state.Point{X: 1})
	fg.Append(state.Point{X: 2})
	bg := state.NewStroke(state.Background, blue, 9, state.BrushNormal, state.Point{X: 1})
	bg.Append(state.Point{X: 2})
	b.AddStroke(fg)
	b.AddStroke(bg)

	rec := paint(r, b, config.Default(), epoch, nil)
	require.Equal(t, opClear, rec.ops[0].kind)
	lines := rec.only(opPolyline)
	require.Len(t, lines, 2)
	assert.Equal(t, 9.0, lines[0].width, "background first")
	assert.Equal(t, 4.0, lines[1].width)
}

// stepPath moves one unit per 100ms, slow enough that playback never blurs.
func stepPath(durationMs int) *state.Path {
	p := state.NewPath(state.Foreground, blue, 8, epoch, state.Sample{Thickness: 8})
	for t := 100; t <= durationMs; t += 100 {
		p.Append(state.Sample{X: float64(t / 100), TimeOffsetMs: float64(t), Thickness: 8})
	}
	return p
}

func TestPaint_PlaybackLoops(t *testing.T) {
	r, _ := newTestRenderer()
	b := state.NewBoard()
	b.AddPath(stepPath(1000))

	rec := paint(r, b, config.Default(), epoch.Add(1500*time.Millisecond), nil)
	circles := rec.only(opCircle)
	require.Len(t, circles, 1)
	assert.Equal(t, state.Point{X: 5}, circles[0].points[0])
	assert.Equal(t, 4.0, circles[0].radius)
	assert.Equal(t, blue, circles[0].color)

	fresh := state.NewBoard()
	fresh.AddPath(stepPath(1000))
	want := paint(r, fresh, config.Default(), epoch.Add(500*time.Millisecond), nil).only(opCircle)
	assert.Equal(t, want[0].points, circles[0].points)
}

func TestPaint_PlaybackSpeedFactor(t *testing.T) {
	r, _ := newTestRenderer()
	b := state.NewBoard()
	b.AddPath(stepPath(1000))

	cfg := config.Default()
	cfg.PlaybackSpeed = 2
	circles := paint(r, b, cfg, epoch.Add(300*time.Millisecond), nil).only(opCircle)
	require.Len(t, circles, 1)
	assert.Equal(t, state.Point{X: 6}, circles[0].points[0])

	cfg.PlaybackSpeed = -3 // treated as 1
	circles = paint(r, b, cfg, epoch.Add(300*time.Millisecond), nil).only(opCircle)
	require.Len(t, circles, 1)
	assert.Equal(t, state.Point{X: 3}, circles[0].points[0])
}

func TestPaint_EchoNotArrived(t *testing.T) {
	r, _ := newTestRenderer()
	b := state.NewBoard()
	echo := stepPath(1000)
	echo.IsEcho = true
	echo.EchoDelayMs = 1000
	echo.EchoAlpha = 0.5
	b.AddEchoes(state.Foreground, echo)

	assert.Empty(t, paint(r, b, config.Default(), epoch.Add(500*time.Millisecond), nil).drawn())

	circles := paint(r, b, config.Default(), epoch.Add(1200*time.Millisecond), nil).only(opCircle)
	require.Len(t, circles, 1)
	assert.Equal(t, state.Point{X: 2}, circles[0].points[0])
	assert.Equal(t, WithAlpha(blue, 0.5), circles[0].color)
}

// jumpPath leaps 100 units at 500ms.
func jumpPath() *state.Path {
	p := state.NewPath(state.Foreground, blue, 8, epoch, state.Sample{Thickness: 8})
	p.Append(state.Sample{X: 100, TimeOffsetMs: 500, Thickness: 12})
	p.Append(state.Sample{X: 100, TimeOffsetMs: 1000, Thickness: 12})
	return p
}

func TestPaint_BlurSegment(t *testing.T) {
	r, _ := newTestRenderer()
	b := state.NewBoard()
	b.AddPath(jumpPath())

	rec := paint(r, b, config.Default(), epoch.Add(510*time.Millisecond), nil)
	require.Len(t, rec.drawn(), 1)
	lines := rec.only(opLine)
	require.Len(t, lines, 1)
	assert.Equal(t, []state.Point{{X: 0}, {X: 100}}, lines[0].points)
	assert.Equal(t, 10.0, lines[0].width)
	assert.Equal(t, uint8(153), lines[0].color.A)
}

func TestPaint_BlurSegmentSquare(t *testing.T) {
	r, _ := newTestRenderer()
	b := state.NewBoard()
	b.AddPath(jumpPath())

	cfg := config.Default()
	cfg.Shape = config.ShapeSquare
	rec := paint(r, b, cfg, epoch.Add(510*time.Millisecond), nil)

	assert.Empty(t, rec.only(opLine))
	rects := rec.only(opRect)
	require.Len(t, rects, 29)
	for _, o := range rects {
		assert.Equal(t, uint8(153), o.color.A)
	}
	// first stamp centred on the previous sample, last on the current one
	assert.Equal(t, [4]float64{-4, -4, 8, 8}, rects[0].rect)
	assert.Equal(t, [4]float64{94, -6, 12, 12}, rects[len(rects)-1].rect)
}

func TestPaint_LoopSeamDrawsDot(t *testing.T) {
	r, _ := newTestRenderer()
	b := state.NewBoard()
	b.AddPath(jumpPath())

	rec := paint(r, b, config.Default(), epoch.Add(1005*time.Millisecond), nil)
	assert.Empty(t, rec.only(opLine))
	circles := rec.only(opCircle)
	require.Len(t, circles, 1)
	assert.Equal(t, state.Point{}, circles[0].points[0])
}

func TestPaint_SquareDot(t *testing.T) {
	r, _ := newTestRenderer()
	b := state.NewBoard()
	b.AddPath(stepPath(1000))

	cfg := config.Default()
	cfg.Shape = config.ShapeSquare
	rects := paint(r, b, cfg, epoch.Add(200*time.Millisecond), nil).only(opRect)
	require.Len(t, rects, 1)
	assert.Equal(t, [4]float64{-2, -4, 8, 8}, rects[0].rect)
}

func TestPaint_LiveSingleSample(t *testing.T) {
	r, _ := newTestRenderer()
	b := state.NewBoard()
	p := state.NewPath(state.Foreground, blue, 8, epoch, state.Sample{X: 3, Y: 4, Thickness: 8})
	b.AddPath(p)

	// a stalled capture keeps showing its only sample
	for _, at := range []time.Duration{0, 16 * time.Millisecond, 5 * time.Second} {
		circles := paint(r, b, config.Default(), epoch.Add(at), p).only(opCircle)
		require.Len(t, circles, 1)
		assert.Equal(t, state.Point{X: 3, Y: 4}, circles[0].points[0])
	}
}

func TestPaint_LiveEchoPreview(t *testing.T) {
	r, _ := newTestRenderer()
	b := state.NewBoard()
	p := stepPath(2500)
	b.AddPath(p)

	cfg := config.Default()
	cfg.Echo = true
	cfg.EchoDelayMs = 1000
	cfg.MaxEchoCount = 5
	cfg.EchoFade = 0.7

	circles := paint(r, b, cfg, epoch.Add(2500*time.Millisecond), p).only(opCircle)
	require.Len(t, circles, 3)
	assert.Equal(t, state.Point{X: 25}, circles[0].points[0])
	assert.Equal(t, blue, circles[0].color)

	assert.Equal(t, state.Point{X: 15}, circles[1].points[0])
	assert.Equal(t, WithAlpha(blue, motion.EchoAlpha(1, 2, 0.7)), circles[1].color)
	assert.Equal(t, state.Point{X: 5}, circles[2].points[0])
	assert.Equal(t, WithAlpha(blue, motion.EchoAlpha(2, 2, 0.7)), circles[2].color)

	cfg.EchoPreview = false
	assert.Len(t, paint(r, b, cfg, epoch.Add(2500*time.Millisecond), p).only(opCircle), 1)
}

func TestPaint_LiveDoesNotLoop(t *testing.T) {
	r, _ := newTestRenderer()
	b := state.NewBoard()
	p := stepPath(1000)
	b.AddPath(p)

	circles := paint(r, b, config.Default(), epoch.Add(1500*time.Millisecond), p).only(opCircle)
	require.Len(t, circles, 1)
	assert.Equal(t, state.Point{X: 10}, circles[0].points[0])
}

func TestPaint_AnimatedIgnoresNoise(t *testing.T) {
	r, noise := newTestRenderer()
	b := state.NewBoard()
	b.AddPath(stepPath(1000))

	cfg := config.Default()
	cfg.Jitter = 10
	paint(r, b, cfg, epoch.Add(300*time.Millisecond), nil)
	assert.Zero(t, noise.Len())
}

func TestWithAlpha(t *testing.T) {
	assert.Equal(t, uint8(255), WithAlpha(blue, 1).A)
	assert.Equal(t, uint8(0), WithAlpha(blue, -1).A)
	assert.Equal(t, uint8(128), WithAlpha(color.NRGBA{A: 255}, 0.5).A)
	assert.Equal(t, uint8(255), WithAlpha(blue, 3).A)
}
