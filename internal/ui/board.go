package ui

import (
	"io"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/charmbracelet/log"

	"WigglyBoard/internal/config"
	"WigglyBoard/internal/engine"
)

// BoardWidget is the drawing canvas. It forwards pointer input to the
// engine and repaints the engine's frame on every animation tick.
type BoardWidget struct {
	widget.BaseWidget

	engine *engine.Engine
	logger *log.Logger
	now    func() time.Time

	anim      *fyne.Animation
	lastFrame time.Time
	lastMove  fyne.Position
	nextFrame bool // the coming refresh is a frame tick
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)
var _ desktop.Hoverable = (*BoardWidget)(nil)

func NewBoardWidget(e *engine.Engine, logger *log.Logger) *BoardWidget {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	b := &BoardWidget{
		engine: e,
		logger: logger,
		now:    time.Now,
	}
	b.ExtendBaseWidget(b)
	return b
}

// Start runs the frame loop until Stop. Ticks arrive on the fyne main
// goroutine, so painting and input never overlap.
func (b *BoardWidget) Start() {
	if b.anim != nil {
		return
	}
	b.anim = fyne.NewAnimation(time.Second, func(float32) { b.tick() })
	b.anim.RepeatCount = fyne.AnimationRepeatForever
	b.anim.Curve = fyne.AnimationLinear
	b.anim.Start()
	b.logger.Debug("frame loop started", "fps", b.engine.Config().FrameRate)
}

func (b *BoardWidget) Stop() {
	if b.anim == nil {
		return
	}
	b.anim.Stop()
	b.anim = nil
	b.logger.Debug("frame loop stopped")
}

// frameSlack is the fraction of a frame interval a tick may arrive early
// and still be painted.
const frameSlack = 4

// tick paints the next frame once a frame interval has passed. Display
// ticks jitter around the interval, so a tick up to a quarter interval
// early still counts.
func (b *BoardWidget) tick() bool {
	now := b.now()
	interval := b.engine.Config().FrameInterval()
	if now.Sub(b.lastFrame) < interval-interval/frameSlack {
		return false
	}
	b.lastFrame = now
	b.nextFrame = true
	b.Refresh()
	return true
}

// Update edits the engine's settings in place.
func (b *BoardWidget) Update(edit func(*config.Config)) {
	cfg := b.engine.Config()
	edit(&cfg)
	b.engine.UpdateConfig(cfg)
}

func (b *BoardWidget) Config() config.Config { return b.engine.Config() }

func (b *BoardWidget) Undo()  { b.engine.Undo() }
func (b *BoardWidget) Redo()  { b.engine.Redo() }
func (b *BoardWidget) Clear() { b.engine.Clear() }

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	b.lastMove = e.Position
	b.engine.PointerDown(point(e.Position), b.now())
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	b.engine.PointerUp(b.now())
}

func (b *BoardWidget) MouseIn(*desktop.MouseEvent) {}

func (b *BoardWidget) MouseMoved(e *desktop.MouseEvent) { b.move(e.Position) }

func (b *BoardWidget) MouseOut() { b.engine.PointerLeave(b.now()) }

func (b *BoardWidget) Dragged(e *fyne.DragEvent) { b.move(e.Position) }

func (b *BoardWidget) DragEnd() { b.engine.PointerUp(b.now()) }

// move forwards a pointer position once; drags may report it through both
// the hover and the drag callbacks.
func (b *BoardWidget) move(p fyne.Position) {
	if p == b.lastMove {
		return
	}
	b.lastMove = p
	b.engine.PointerMove(point(p), b.now())
}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	return &boardRenderer{board: b, surface: &canvasSurface{}}
}

type boardRenderer struct {
	board   *BoardWidget
	surface *canvasSurface
}

func (r *boardRenderer) Layout(size fyne.Size) {
	r.surface.size = size
}

func (r *boardRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}

// Refresh paints a new frame on ticks. Other refreshes (resize, theme)
// redraw the current frame.
func (r *boardRenderer) Refresh() {
	b := r.board
	if b.nextFrame {
		b.nextFrame = false
		b.engine.Paint(r.surface, b.now())
	} else {
		b.engine.Repaint(r.surface, b.now())
	}
	canvas.Refresh(b)
}

func (r *boardRenderer) Objects() []fyne.CanvasObject {
	return r.surface.objects
}

func (r *boardRenderer) Destroy() {
	r.board.Stop()
}
