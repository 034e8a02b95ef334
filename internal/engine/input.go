package engine

import (
	"time"

	"WigglyBoard/internal/config"
	"WigglyBoard/internal/motion"
	"WigglyBoard/internal/state"
)

// PointerDown starts a gesture: a new stroke in draw mode, an erase pass
// in erase mode.
func (e *Engine) PointerDown(p state.Point, at time.Time) {
	if e.Drawing() {
		// a down without a matching up; close the old gesture first
		e.finish()
	}
	e.pressed = true

	if e.cfg.Mode == config.ModeErase {
		e.erase(p)
		return
	}

	cfg := e.cfg
	col := cfg.StrokeColor()
	if cfg.Capture == config.CaptureAnimated {
		e.speed.Reset()
		first := state.Sample{X: p.X, Y: p.Y, Thickness: e.sampleThickness(p, 0)}
		e.path = state.NewPath(cfg.Layer, col, cfg.Thickness, at, first)
		e.board.AddPath(e.path)
		e.logger.Debug("capture started", "id", e.path.ID, "layer", cfg.Layer, "kind", "animated")
		return
	}

	e.stroke = state.NewStroke(cfg.Layer, col, cfg.Thickness, cfg.Brush, p)
	e.board.AddStroke(e.stroke)
	e.logger.Debug("capture started", "id", e.stroke.ID, "layer", cfg.Layer, "kind", "static", "brush", cfg.Brush)
}

// PointerMove extends the active stroke, or erases while the pointer is
// held in erase mode. Moves without a pressed pointer are ignored.
func (e *Engine) PointerMove(p state.Point, at time.Time) {
	if !e.pressed {
		return
	}
	switch {
	case e.stroke != nil:
		e.stroke.Append(p)
	case e.path != nil:
		t := max(state.MsSince(e.path.CreatedAt, at), e.path.Duration())
		e.path.Append(state.Sample{X: p.X, Y: p.Y, TimeOffsetMs: t, Thickness: e.sampleThickness(p, t)})
	case e.cfg.Mode == config.ModeErase:
		e.erase(p)
	}
}

// PointerUp ends the gesture.
func (e *Engine) PointerUp(time.Time) { e.finish() }

// PointerLeave ends the gesture when the pointer leaves the canvas.
func (e *Engine) PointerLeave(time.Time) { e.finish() }

func (e *Engine) finish() {
	e.pressed = false
	defer e.speed.Reset()

	if s := e.stroke; s != nil {
		e.stroke = nil
		e.logger.Debug("capture ended", "id", s.ID, "points", len(s.Points))
		return
	}
	p := e.path
	if p == nil {
		return
	}
	e.path = nil
	e.logger.Debug("capture ended", "id", p.ID, "samples", len(p.Samples), "duration_ms", p.Duration())

	if !e.cfg.Echo {
		return
	}
	echoes := motion.SpawnEchoes(p, motion.EchoSettings{
		DelayMs:  e.cfg.EchoDelayMs,
		MaxCount: e.cfg.MaxEchoCount,
		Fade:     e.cfg.EchoFade,
	})
	if len(echoes) == 0 {
		return
	}
	e.board.AddEchoes(p.Layer, echoes...)
	e.logger.Debug("echoes spawned", "id", p.ID, "count", len(echoes), "delay_ms", e.cfg.EchoDelayMs)
}

// sampleThickness is the brush width for a new animated sample: speed
// scaled when enabled, the configured thickness otherwise.
func (e *Engine) sampleThickness(p state.Point, tMs float64) float64 {
	if !e.cfg.SpeedScaling {
		return e.cfg.Thickness
	}
	return e.speed.Thickness(p, tMs, motion.ThicknessRange{
		Min:       e.cfg.MinThickness,
		Max:       e.cfg.MaxThickness,
		Threshold: e.cfg.SpeedThreshold,
		Floor:     config.MinVisibleThickness,
	})
}

func (e *Engine) erase(p state.Point) {
	if n := e.board.EraseAt(p, e.cfg.EraseRadius); n > 0 {
		e.logger.Debug("erased", "x", p.X, "y", p.Y, "count", n)
	}
}
