package state

import "slices"

// Entry is one undoable drawing action: exactly one of Stroke or Path is set.
type Entry struct {
	Stroke *Stroke
	Path   *Path
}

func (e Entry) ID() ID {
	if e.Stroke != nil {
		return e.Stroke.ID
	}
	return e.Path.ID
}

// Collection holds the strokes of a single layer.
type Collection struct {
	Strokes []*Stroke
	Paths   []*Path
}

type history struct {
	undo []Entry
	redo []Entry
}

// Board owns the fg and bg collections and their undo histories.
//
// Board is not safe for concurrent use; the host serializes input
// handling and painting on one goroutine.
type Board struct {
	layers  map[Layer]*Collection
	history map[Layer]*history
}

func NewBoard() *Board {
	b := &Board{}
	b.reset()
	return b
}

func (b *Board) reset() {
	b.layers = make(map[Layer]*Collection, len(Layers))
	b.history = make(map[Layer]*history, len(Layers))
	for _, l := range Layers {
		b.layers[l] = &Collection{}
		b.history[l] = &history{}
	}
}

// Layer returns the collection of l. Unknown layers resolve to the
// foreground.
func (b *Board) Layer(l Layer) *Collection {
	if c, ok := b.layers[l]; ok {
		return c
	}
	return b.layers[Foreground]
}

func (b *Board) hist(l Layer) *history {
	if h, ok := b.history[l]; ok {
		return h
	}
	return b.history[Foreground]
}

// AddStroke appends s to its layer and records it as the newest undo entry.
func (b *Board) AddStroke(s *Stroke) {
	c := b.Layer(s.Layer)
	c.Strokes = append(c.Strokes, s)
	b.record(s.Layer, Entry{Stroke: s})
}

// AddPath appends p to its layer and records it as the newest undo entry.
func (b *Board) AddPath(p *Path) {
	c := b.Layer(p.Layer)
	c.Paths = append(c.Paths, p)
	b.record(p.Layer, Entry{Path: p})
}

// AddEchoes appends echo paths without touching the undo history.
func (b *Board) AddEchoes(l Layer, echoes ...*Path) {
	c := b.Layer(l)
	c.Paths = append(c.Paths, echoes...)
}

func (b *Board) record(l Layer, e Entry) {
	h := b.hist(l)
	h.undo = append(h.undo, e)
	h.redo = nil
}

// Undo removes the most recent entry of layer l from its collection and
// keeps it for Redo.
func (b *Board) Undo(l Layer) (Entry, bool) {
	h := b.hist(l)
	if len(h.undo) == 0 {
		return Entry{}, false
	}
	e := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	h.redo = append(h.redo, e)

	c := b.Layer(l)
	if e.Stroke != nil {
		c.Strokes = slices.DeleteFunc(c.Strokes, func(s *Stroke) bool { return s == e.Stroke })
	} else {
		c.Paths = slices.DeleteFunc(c.Paths, func(p *Path) bool { return p == e.Path })
	}
	return e, true
}

// Redo restores the entity removed by the latest Undo of layer l.
func (b *Board) Redo(l Layer) (Entry, bool) {
	h := b.hist(l)
	if len(h.redo) == 0 {
		return Entry{}, false
	}
	e := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	h.undo = append(h.undo, e)

	c := b.Layer(l)
	if e.Stroke != nil {
		c.Strokes = append(c.Strokes, e.Stroke)
	} else {
		c.Paths = append(c.Paths, e.Path)
	}
	return e, true
}

// EraseAt removes every stroke and path, on both layers, that has a point
// closer than radius to at. It returns the number of removed items.
func (b *Board) EraseAt(at Point, radius float64) int {
	removed := 0
	for _, l := range Layers {
		c := b.layers[l]
		n := len(c.Strokes) + len(c.Paths)
		c.Strokes = slices.DeleteFunc(c.Strokes, func(s *Stroke) bool {
			return hitAny(s.Points, at, radius)
		})
		c.Paths = slices.DeleteFunc(c.Paths, func(p *Path) bool {
			return hitAny(p.Points(), at, radius)
		})
		removed += n - len(c.Strokes) - len(c.Paths)
	}
	return removed
}

// Clear drops all strokes, paths and history on both layers.
func (b *Board) Clear() {
	b.reset()
}

// CanUndo reports whether layer l has an entry to undo.
func (b *Board) CanUndo(l Layer) bool { return len(b.hist(l).undo) > 0 }

// CanRedo reports whether layer l has an entry to redo.
func (b *Board) CanRedo(l Layer) bool { return len(b.hist(l).redo) > 0 }
