package render

import (
	"image/color"
	"math"

	"WigglyBoard/internal/config"
	"WigglyBoard/internal/motion"
	"WigglyBoard/internal/state"
)

const (
	// blurJump is the jump, relative to the dot diameter, above which a
	// connecting segment replaces the dot.
	blurJump      = 0.75
	blurMaxAlpha  = 0.6
	squareSpacing = 0.3
)

func playbackSpeed(cfg config.Config) float64 {
	if cfg.PlaybackSpeed <= 0 {
		return 1
	}
	return cfg.PlaybackSpeed
}

func frameMs(cfg config.Config) float64 {
	return float64(cfg.FrameInterval().Microseconds()) / 1000
}

// drawPlayback replays a finished path or echo in a loop.
func (r *Renderer) drawPlayback(s Surface, p *state.Path, f Frame) {
	speed := playbackSpeed(f.Config)
	elapsed := (state.MsSince(p.CreatedAt, f.Now) - p.EchoDelayMs) * speed
	if elapsed < 0 {
		return
	}
	duration := p.Duration()
	looped := motion.LoopTime(elapsed, duration)

	prevElapsed := elapsed - frameMs(f.Config)*speed
	prevLooped := motion.LoopTime(prevElapsed, duration)
	seam := looped < prevLooped

	cur, _, ok := motion.SampleAt(p, looped)
	if !ok {
		return
	}
	prev, _, ok := motion.SampleAt(p, prevLooped)
	if !ok {
		return
	}
	drawMotion(s, prev, cur, p.Color, p.EchoAlpha, f.Config.Shape, prevElapsed >= 0 && !seam)
}

// drawLive follows the path being captured, plus echo previews trailing
// behind the cursor.
func (r *Renderer) drawLive(s Surface, p *state.Path, f Frame) {
	cfg := f.Config
	speed := playbackSpeed(cfg)
	elapsed := state.MsSince(p.CreatedAt, f.Now) * speed
	prevElapsed := elapsed - frameMs(cfg)*speed

	cur, _, ok := motion.SampleAt(p, elapsed)
	if !ok {
		return
	}
	prev, _, _ := motion.SampleAt(p, prevElapsed)
	drawMotion(s, prev, cur, p.Color, p.EchoAlpha, cfg.Shape, prevElapsed >= 0)

	if !cfg.Echo || !cfg.EchoPreview {
		return
	}
	count := motion.EchoCount(p.Duration(), cfg.EchoDelayMs, cfg.MaxEchoCount)
	for n := 1; n <= count; n++ {
		t := elapsed - float64(n)*cfg.EchoDelayMs*speed
		if t < 0 {
			continue
		}
		es, _, _ := motion.SampleAt(p, t)
		alpha := motion.EchoAlpha(n, count, cfg.EchoFade)
		dot(s, es.Point(), es.Thickness, WithAlpha(p.Color, alpha), cfg.Shape)
	}
}

// drawMotion draws the brush at cur. When the brush moved further than
// blurJump diameters since prev, the gap is bridged with a faded segment.
func drawMotion(s Surface, prev, cur state.Sample, c color.NRGBA, alpha float64, shape config.Shape, blur bool) {
	d := cur.Thickness
	if d <= 0 {
		return
	}
	a, b := prev.Point(), cur.Point()
	dist := a.Dist(b)
	if !blur || dist <= blurJump*d {
		dot(s, b, d, WithAlpha(c, alpha), shape)
		return
	}

	bc := WithAlpha(c, min(alpha, blurMaxAlpha))
	if shape != config.ShapeSquare {
		s.StrokeLine(a, b, bc, (prev.Thickness+cur.Thickness)/2)
		return
	}
	// stamp squares along the segment to keep the square silhouette
	n := int(math.Ceil(dist / (d * squareSpacing)))
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		size := prev.Thickness + (cur.Thickness-prev.Thickness)*t
		dot(s, a.Lerp(b, t), size, bc, shape)
	}
}
