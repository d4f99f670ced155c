// Package history records pixel mutations as undoable edits.
package history

import (
	"image"
	"image/color"

	"github.com/google/uuid"

	"github.com/example/pixelpad/internal/pixels"
)

// Change is a single pixel's before and after color.
type Change struct {
	X, Y   int
	Before color.NRGBA
	After  color.NRGBA
}

// DrawEdit groups the changes of one stroke or fill. At most one Change is
// kept per coordinate; the first write fixes both colors and later writes to
// that coordinate are dropped without touching the buffer.
type DrawEdit struct {
	id      uuid.UUID
	tool    string
	buf     *pixels.Buffer
	changes []Change
	index   map[image.Point]int
	sealed  bool
}

// NewEdit starts an empty edit against buf on behalf of tool.
func NewEdit(buf *pixels.Buffer, tool string) *DrawEdit {
	return &DrawEdit{
		id:    uuid.New(),
		tool:  tool,
		buf:   buf,
		index: make(map[image.Point]int),
	}
}

// ID identifies the edit in listings and logs.
func (e *DrawEdit) ID() uuid.UUID { return e.id }

// Tool names the tool that produced the edit.
func (e *DrawEdit) Tool() string { return e.tool }

// AddChange records a change and writes after into the buffer immediately.
// It returns false when the coordinate is already recorded or the edit is
// sealed, in which case nothing happens.
func (e *DrawEdit) AddChange(x, y int, before, after color.NRGBA) bool {
	if e.sealed {
		return false
	}
	p := image.Pt(x, y)
	if _, ok := e.index[p]; ok {
		return false
	}
	e.index[p] = len(e.changes)
	e.changes = append(e.changes, Change{X: x, Y: y, Before: before, After: after})
	e.buf.Set(x, y, after)
	return true
}

// Enact writes every change's after color when redo is set and its before
// color otherwise, in recorded order.
func (e *DrawEdit) Enact(redo bool) {
	for _, c := range e.changes {
		if redo {
			e.buf.Set(c.X, c.Y, c.After)
		} else {
			e.buf.Set(c.X, c.Y, c.Before)
		}
	}
}

// Seal ends the stroke. A sealed edit accepts no further changes.
func (e *DrawEdit) Seal() { e.sealed = true }

// Sealed reports whether Seal has been called.
func (e *DrawEdit) Sealed() bool { return e.sealed }

// Len returns the number of recorded changes.
func (e *DrawEdit) Len() int { return len(e.changes) }

// Changes returns a copy of the recorded changes.
func (e *DrawEdit) Changes() []Change {
	out := make([]Change, len(e.changes))
	copy(out, e.changes)
	return out
}

// Lookup returns the change recorded at (x, y), if any.
func (e *DrawEdit) Lookup(x, y int) (Change, bool) {
	i, ok := e.index[image.Pt(x, y)]
	if !ok {
		return Change{}, false
	}
	return e.changes[i], true
}

// Bounds returns the smallest rectangle covering every change.
func (e *DrawEdit) Bounds() image.Rectangle {
	var r image.Rectangle
	for _, c := range e.changes {
		r = r.Union(image.Rect(c.X, c.Y, c.X+1, c.Y+1))
	}
	return r
}
