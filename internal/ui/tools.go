package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"WigglyBoard/internal/config"
	"WigglyBoard/internal/state"
)

var palette = []string{"#000000", "#ff3333", "#33aa55", "#3366ff", "#ffcc00", "#aa44cc"}

type colorSwatch struct {
	widget.BaseWidget
	Hex      string
	OnTapped func(hex string)
}

func newColorSwatch(hex string, tapped func(string)) *colorSwatch {
	s := &colorSwatch{Hex: hex, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	c, err := config.ParseColor(s.Hex)
	if err != nil {
		c = color.NRGBA{A: 255}
	}
	rect := canvas.NewRectangle(c)
	rect.SetMinSize(fyne.NewSize(24, 24))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Hex)
	}
}

func slider(lo, hi, step, value float64, changed func(float64)) fyne.CanvasObject {
	s := widget.NewSlider(lo, hi)
	s.Step = step
	s.SetValue(value)
	s.OnChanged = changed
	return container.New(layout.NewGridWrapLayout(fyne.NewSize(120, 35)), s)
}

func selector(options []string, selected string, changed func(string)) *widget.Select {
	s := widget.NewSelect(options, nil)
	s.SetSelected(selected)
	s.OnChanged = changed
	return s
}

func check(label string, on bool, changed func(bool)) *widget.Check {
	c := widget.NewCheck(label, nil)
	c.SetChecked(on)
	c.OnChanged = changed
	return c
}

// NewToolbar builds the controls for board. Every control edits the
// engine settings through BoardWidget.Update.
func NewToolbar(board *BoardWidget) fyne.CanvasObject {
	cfg := board.Config()

	tb := widget.NewToolbar(
		widget.NewToolbarAction(theme.DocumentCreateIcon(), func() {
			board.Update(func(c *config.Config) { c.Mode = config.ModeDraw })
		}), // Draw
		widget.NewToolbarAction(theme.ContentClearIcon(), func() {
			board.Update(func(c *config.Config) { c.Mode = config.ModeErase })
		}), // Erase
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.ContentUndoIcon(), board.Undo),
		widget.NewToolbarAction(theme.ContentRedoIcon(), board.Redo),
		widget.NewToolbarAction(theme.DeleteIcon(), board.Clear),
	)

	layer := selector([]string{string(state.Foreground), string(state.Background)}, string(cfg.Layer), func(v string) {
		board.Update(func(c *config.Config) { c.Layer = state.Layer(v) })
	})
	capture := selector([]string{string(config.CaptureStatic), string(config.CaptureAnimated)}, string(cfg.Capture), func(v string) {
		board.Update(func(c *config.Config) { c.Capture = config.Capture(v) })
	})
	brush := selector([]string{string(state.BrushNormal), string(state.BrushPencil)}, string(cfg.Brush), func(v string) {
		board.Update(func(c *config.Config) { c.Brush = state.BrushStyle(v) })
	})
	shape := selector([]string{string(config.ShapeCircle), string(config.ShapeSquare)}, string(cfg.Shape), func(v string) {
		board.Update(func(c *config.Config) { c.Shape = config.Shape(v) })
	})

	colorBox := container.NewHBox()
	for _, hex := range palette {
		colorBox.Add(newColorSwatch(hex, func(h string) {
			board.Update(func(c *config.Config) { c.Color = h })
		}))
	}

	echo := check("Echo", cfg.Echo, func(on bool) {
		board.Update(func(c *config.Config) { c.Echo = on })
	})
	preview := check("Preview", cfg.EchoPreview, func(on bool) {
		board.Update(func(c *config.Config) { c.EchoPreview = on })
	})
	scaling := check("Speed", cfg.SpeedScaling, func(on bool) {
		board.Update(func(c *config.Config) { c.SpeedScaling = on })
	})

	top := container.NewHBox(
		tb,
		widget.NewSeparator(),
		layer, capture, brush, shape,
		widget.NewSeparator(),
		colorBox,
		layout.NewSpacer(),
	)
	bottom := container.NewHBox(
		widget.NewLabel("Size:"),
		slider(1, 30, 0.5, cfg.Thickness, func(v float64) {
			board.Update(func(c *config.Config) { c.Thickness = v })
		}),
		widget.NewLabel("Jitter:"),
		slider(0, 10, 0.5, cfg.Jitter, func(v float64) {
			board.Update(func(c *config.Config) { c.Jitter = v })
		}),
		widget.NewLabel("Wiggle:"),
		slider(1, 20, 1, float64(cfg.WiggleSpeed), func(v float64) {
			board.Update(func(c *config.Config) { c.WiggleSpeed = int(v) })
		}),
		widget.NewLabel("Playback:"),
		slider(0.25, 3, 0.25, cfg.PlaybackSpeed, func(v float64) {
			board.Update(func(c *config.Config) { c.PlaybackSpeed = v })
		}),
		widget.NewSeparator(),
		echo, preview, scaling,
		widget.NewLabel("Density:"),
		slider(0, 1, 0.05, cfg.PencilDensity, func(v float64) {
			board.Update(func(c *config.Config) { c.PencilDensity = v })
		}),
		widget.NewLabel("Roughness:"),
		slider(0, 1, 0.05, cfg.PencilRoughness, func(v float64) {
			board.Update(func(c *config.Config) { c.PencilRoughness = v })
		}),
		layout.NewSpacer(),
	)
	return container.NewVBox(top, bottom)
}
