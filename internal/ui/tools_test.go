package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"WigglyBoard/internal/config"
	"WigglyBoard/internal/engine"
)

func TestColorSwatch_Tapped(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	var got string
	s := newColorSwatch("#3366ff", func(h string) { got = h })
	test.Tap(s)
	assert.Equal(t, "#3366ff", got)
}

func TestNewToolbar_KeepsSettings(t *testing.T) {
	b, _ := newTestBoard(t, func(c *config.Config) {
		c.Capture = config.CaptureAnimated
		c.Thickness = 7
	})
	bar := NewToolbar(b)
	require.NotNil(t, bar)

	// building the controls must not rewrite the engine settings
	assert.Equal(t, config.CaptureAnimated, b.Config().Capture)
	assert.Equal(t, 7.0, b.Config().Thickness)
	assert.Equal(t, 0.0, b.Config().Jitter)
}

func TestNewWindow(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	w, board := NewWindow(a, engine.New(config.Default()), nil)
	defer w.Close()

	border, ok := w.Content().(*fyne.Container)
	require.True(t, ok)
	assert.Contains(t, border.Objects, fyne.CanvasObject(board))
}
