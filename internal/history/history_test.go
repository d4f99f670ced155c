package history

import (
	"image/color"
	"testing"

	"github.com/example/pixelpad/internal/pixels"
)

var (
	white = color.NRGBA{255, 255, 255, 255}
	black = color.NRGBA{0, 0, 0, 255}
	red   = color.NRGBA{255, 0, 0, 255}
)

func newBuf(t *testing.T, w, h int, c color.NRGBA) *pixels.Buffer {
	t.Helper()
	b, err := pixels.New(w, h)
	if err != nil {
		t.Fatalf("pixels.New: %v", err)
	}
	b.Fill(c)
	return b
}

func paint(buf *pixels.Buffer, pts [][2]int, c color.NRGBA) *DrawEdit {
	e := NewEdit(buf, "pencil")
	for _, p := range pts {
		e.AddChange(p[0], p[1], buf.At(p[0], p[1]), c)
	}
	e.Seal()
	return e
}

func TestAddChangeFirstWriteWins(t *testing.T) {
	buf := newBuf(t, 2, 2, white)
	e := NewEdit(buf, "pencil")
	if !e.AddChange(1, 1, white, black) {
		t.Fatal("first AddChange rejected")
	}
	if e.AddChange(1, 1, black, red) {
		t.Fatal("second AddChange at same point accepted")
	}
	if got := buf.At(1, 1); got != black {
		t.Fatalf("buffer = %v, want first color", got)
	}
	if e.Len() != 1 {
		t.Fatalf("Len = %d", e.Len())
	}
	c, ok := e.Lookup(1, 1)
	if !ok || c.Before != white || c.After != black {
		t.Fatalf("Lookup = %+v %v", c, ok)
	}
}

func TestSealedEditRejectsChanges(t *testing.T) {
	buf := newBuf(t, 2, 2, white)
	e := NewEdit(buf, "pencil")
	e.Seal()
	if e.AddChange(0, 0, white, black) {
		t.Fatal("sealed edit accepted a change")
	}
	if buf.At(0, 0) != white {
		t.Fatal("sealed edit wrote to buffer")
	}
}

func TestEnact(t *testing.T) {
	buf := newBuf(t, 3, 1, white)
	e := paint(buf, [][2]int{{0, 0}, {2, 0}}, red)
	e.Enact(false)
	if !buf.Equal(newBuf(t, 3, 1, white)) {
		t.Fatal("undo enact did not restore")
	}
	e.Enact(true)
	if buf.At(0, 0) != red || buf.At(1, 0) != white || buf.At(2, 0) != red {
		t.Fatal("redo enact mismatch")
	}
}

func TestBounds(t *testing.T) {
	buf := newBuf(t, 10, 10, white)
	e := paint(buf, [][2]int{{2, 3}, {5, 1}}, red)
	if got := e.Bounds(); got.Min.X != 2 || got.Min.Y != 1 || got.Max.X != 6 || got.Max.Y != 4 {
		t.Fatalf("Bounds = %v", got)
	}
}

func TestUndoRoundTrip(t *testing.T) {
	buf := newBuf(t, 4, 4, white)
	orig := buf.Clone()
	h := New(0)
	strokes := [][][2]int{{{0, 0}, {1, 1}}, {{1, 1}, {2, 2}}, {{3, 3}}}
	for i, s := range strokes {
		h.Push(paint(buf, s, color.NRGBA{uint8(i * 40), 0, 0, 255}))
	}
	for range strokes {
		if !h.Undo() {
			t.Fatal("Undo returned false")
		}
	}
	if !buf.Equal(orig) {
		t.Fatal("buffer not restored after undoing every edit")
	}
	if h.Undo() {
		t.Fatal("Undo on empty history returned true")
	}
}

func TestRedoReproducesEdit(t *testing.T) {
	buf := newBuf(t, 3, 3, white)
	h := New(0)
	h.Push(paint(buf, [][2]int{{0, 0}, {1, 0}}, red))
	after := buf.Clone()
	h.Undo()
	if !h.Redo() {
		t.Fatal("Redo returned false")
	}
	if !buf.Equal(after) {
		t.Fatal("redo did not reproduce the edit")
	}
	if h.Redo() {
		t.Fatal("Redo on empty undone stack returned true")
	}
}

func TestPushClearsRedo(t *testing.T) {
	buf := newBuf(t, 3, 3, white)
	h := New(0)
	h.Push(paint(buf, [][2]int{{0, 0}}, red))
	h.Push(paint(buf, [][2]int{{1, 0}}, red))
	h.Undo()
	h.Undo()
	h.Push(paint(buf, [][2]int{{2, 2}}, black))
	if h.UndoneLen() != 0 {
		t.Fatalf("UndoneLen = %d", h.UndoneLen())
	}
	snapshot := buf.Clone()
	if h.Redo() {
		t.Fatal("Redo after push returned true")
	}
	if !buf.Equal(snapshot) {
		t.Fatal("Redo after push changed the buffer")
	}
}

func TestPeek(t *testing.T) {
	buf := newBuf(t, 1, 1, white)
	h := New(0)
	if h.Peek() != nil {
		t.Fatal("Peek on empty history")
	}
	e := NewEdit(buf, "pencil")
	h.Push(e)
	if h.Peek() != e {
		t.Fatal("Peek did not return last push")
	}
}

func TestLimitDropsOldest(t *testing.T) {
	buf := newBuf(t, 5, 1, white)
	h := New(2)
	var edits []*DrawEdit
	for x := 0; x < 3; x++ {
		e := paint(buf, [][2]int{{x, 0}}, red)
		edits = append(edits, e)
		h.Push(e)
	}
	if h.Len() != 2 {
		t.Fatalf("Len = %d", h.Len())
	}
	got := h.Performed()
	if got[0] != edits[1] || got[1] != edits[2] {
		t.Fatal("limit kept the wrong edits")
	}
	h.Undo()
	h.Undo()
	if h.Undo() {
		t.Fatal("forgotten edit was undone")
	}
	if buf.At(0, 0) != red {
		t.Fatal("forgotten edit should stay applied")
	}
}
