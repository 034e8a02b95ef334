package engine

// Undo takes back the latest stroke of the active layer. A gesture in
// progress is closed first.
func (e *Engine) Undo() bool {
	e.finish()
	entry, ok := e.board.Undo(e.cfg.Layer)
	if ok {
		e.logger.Debug("undo", "layer", e.cfg.Layer, "id", entry.ID())
	}
	return ok
}

// Redo restores the stroke removed by the latest Undo on the active layer.
func (e *Engine) Redo() bool {
	e.finish()
	entry, ok := e.board.Redo(e.cfg.Layer)
	if ok {
		e.logger.Debug("redo", "layer", e.cfg.Layer, "id", entry.ID())
	}
	return ok
}

// Clear removes everything from both layers, including undo history.
func (e *Engine) Clear() {
	e.finish()
	e.board.Clear()
	e.noise.Reset()
	e.logger.Debug("board cleared")
}
