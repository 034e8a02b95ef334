// Package engine runs a drawing session: it turns pointer events into
// strokes on the board, keeps the capture state of the gesture in progress
// and paints the board once per frame.
//
// An Engine is not safe for concurrent use. Hosts deliver pointer events and
// frame ticks from a single goroutine, which is how fyne dispatches both.
package engine

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"WigglyBoard/internal/config"
	"WigglyBoard/internal/motion"
	"WigglyBoard/internal/render"
	"WigglyBoard/internal/state"
)

type Engine struct {
	cfg      config.Config
	board    *state.Board
	noise    *motion.NoiseCache
	renderer *render.Renderer
	logger   *log.Logger

	pressed bool
	stroke  *state.Stroke // active static capture
	path    *state.Path   // active animated capture
	speed   motion.SpeedEstimator
}

type Option func(*Engine)

// WithLogger sets the logger used for session events.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithNoise replaces the jitter cache, mainly to pin its random source.
func WithNoise(n *motion.NoiseCache) Option {
	return func(e *Engine) { e.noise = n }
}

func New(cfg config.Config, opts ...Option) *Engine {
	e := &Engine{
		cfg:   cfg.Sanitize(),
		board: state.NewBoard(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = log.New(io.Discard)
	}
	if e.noise == nil {
		e.noise = motion.NewNoiseCache(nil)
	}
	e.renderer = render.NewRenderer(e.noise)
	return e
}

func (e *Engine) Config() config.Config { return e.cfg }

func (e *Engine) Board() *state.Board { return e.board }

// Drawing reports whether a gesture is being captured.
func (e *Engine) Drawing() bool { return e.stroke != nil || e.path != nil }

// UpdateConfig installs a new settings snapshot. It may be called between
// any two events or frames; the gesture in progress keeps the brush it
// started with.
func (e *Engine) UpdateConfig(cfg config.Config) {
	e.cfg = cfg.Sanitize()
	e.logger.Debug("config updated",
		"layer", e.cfg.Layer, "mode", e.cfg.Mode, "capture", e.cfg.Capture,
		"brush", e.cfg.Brush, "shape", e.cfg.Shape, "echo", e.cfg.Echo)
}

// Paint draws the next frame onto s.
func (e *Engine) Paint(s render.Surface, now time.Time) {
	e.paint(s, now, false)
}

// Repaint draws onto s again without moving to the next frame, for hosts
// that redraw on resize or theme changes.
func (e *Engine) Repaint(s render.Surface, now time.Time) {
	e.paint(s, now, true)
}

func (e *Engine) paint(s render.Surface, now time.Time, still bool) {
	e.renderer.Paint(s, render.Frame{
		Now:    now,
		Config: e.cfg,
		Board:  e.board,
		Live:   e.path,
		Still:  still,
	})
}

// Frame reports how many frames have been painted.
func (e *Engine) Frame() uint64 { return e.noise.Frame() }
