package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"github.com/charmbracelet/log"

	"WigglyBoard/internal/engine"
)

// NewWindow lays out the toolbar and the board for e in a window of a.
// Closing the window stops the frame loop.
func NewWindow(a fyne.App, e *engine.Engine, logger *log.Logger) (fyne.Window, *BoardWidget) {
	w := a.NewWindow("WigglyBoard")
	w.Resize(fyne.NewSize(1024, 768))

	board := NewBoardWidget(e, logger)
	toolbar := NewToolbar(board)

	w.Canvas().AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyZ, Modifier: fyne.KeyModifierShortcutDefault},
		func(fyne.Shortcut) { board.Undo() })
	w.Canvas().AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyY, Modifier: fyne.KeyModifierShortcutDefault},
		func(fyne.Shortcut) { board.Redo() })

	w.SetContent(container.NewBorder(toolbar, nil, nil, nil, board))
	w.SetOnClosed(board.Stop)
	return w, board
}

// RunApp opens the board window and blocks until it is closed.
func RunApp(e *engine.Engine, logger *log.Logger) {
	a := app.NewWithID("io.github.wigglyboard")
	w, board := NewWindow(a, e, logger)
	a.Lifecycle().SetOnStarted(board.Start)
	w.ShowAndRun()
}
