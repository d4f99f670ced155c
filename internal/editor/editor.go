// Package editor ties the pixel buffer, edit history, tools and view
// transform into one editing session driven by pointer and key input.
//
// An Editor is not safe for concurrent use; callers deliver events from a
// single goroutine.
package editor

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"log/slog"

	"github.com/example/pixelpad/internal/history"
	"github.com/example/pixelpad/internal/pixels"
	"github.com/example/pixelpad/internal/tools"
	"github.com/example/pixelpad/internal/view"
)

// Default canvas and viewport sizes.
const (
	DefaultWidth  = 100
	DefaultHeight = 100
	DefaultView   = 400
)

// Editor is one editing session.
type Editor struct {
	buf   *pixels.Buffer
	hist  *history.History
	view  *view.Transform
	ctx   *tools.Context
	tools map[tools.Kind]tools.Tool
	kind  tools.Kind

	drawing bool
	last    image.Point

	width, height int
	viewW, viewH  int
	zoom          int
	limit         int
	log           *slog.Logger
	onRepaint     func()
	onColor       func(color.NRGBA)
}

// Option configures an Editor during creation.
type Option func(*Editor)

// WithSize sets the dimensions of the initial blank image.
func WithSize(w, h int) Option { return func(e *Editor) { e.width, e.height = w, h } }

// WithViewport sets the initial viewport size in device pixels.
func WithViewport(w, h int) Option { return func(e *Editor) { e.viewW, e.viewH = w, h } }

// WithZoom sets the initial zoom level.
func WithZoom(z int) Option { return func(e *Editor) { e.zoom = z } }

// WithColor sets the initial active color.
func WithColor(c color.NRGBA) Option { return func(e *Editor) { e.ctx.Color = c } }

// WithEraseColor overrides the sentinel written by the eraser.
func WithEraseColor(c color.NRGBA) Option { return func(e *Editor) { e.ctx.EraseColor = c } }

// WithHistoryLimit caps the number of undoable edits. 0 means unlimited.
func WithHistoryLimit(n int) Option { return func(e *Editor) { e.limit = n } }

// WithTool selects the initial tool.
func WithTool(k tools.Kind) Option { return func(e *Editor) { e.kind = k } }

// WithLogger routes debug output to l. By default nothing is logged.
func WithLogger(l *slog.Logger) Option {
	return func(e *Editor) {
		if l != nil {
			e.log = l
		}
	}
}

// WithRepaintListener registers fn to run after every change to pixels or
// to the view.
func WithRepaintListener(fn func()) Option { return func(e *Editor) { e.onRepaint = fn } }

// WithColorListener registers fn to run when a tool changes the active color.
func WithColorListener(fn func(color.NRGBA)) Option {
	return func(e *Editor) { e.onColor = fn }
}

// New creates an Editor with a blank image.
func New(opts ...Option) (*Editor, error) {
	e := &Editor{
		width:  DefaultWidth,
		height: DefaultHeight,
		viewW:  DefaultView,
		viewH:  DefaultView,
		zoom:   1,
		log:    newNopLogger(),
		ctx: &tools.Context{
			Color:      color.NRGBA{A: 255},
			EraseColor: pixels.DefaultEraseColor,
		},
		tools: make(map[tools.Kind]tools.Tool),
	}
	for _, o := range opts {
		o(e)
	}
	buf, err := pixels.New(e.width, e.height)
	if err != nil {
		return nil, fmt.Errorf("new editor: %w", err)
	}
	for _, k := range tools.Kinds() {
		e.tools[k] = tools.New(k)
	}
	if _, ok := e.tools[e.kind]; !ok {
		return nil, fmt.Errorf("new editor: unknown tool %v", e.kind)
	}
	e.buf = buf
	e.hist = history.New(e.limit)
	e.view = view.New(buf.Width(), buf.Height(), e.viewW, e.viewH)
	if err := e.view.SetZoom(e.zoom); err != nil {
		return nil, fmt.Errorf("new editor: %w", err)
	}
	e.ctx.Buffer = buf
	e.ctx.History = e.hist
	e.ctx.OnColor = func(c color.NRGBA) {
		e.log.Debug("color picked", "color", pixels.FormatColor(c))
		if e.onColor != nil {
			e.onColor(c)
		}
	}
	return e, nil
}

// Buffer returns the image under edit.
func (e *Editor) Buffer() *pixels.Buffer { return e.buf }

// History returns the edit history.
func (e *Editor) History() *history.History { return e.hist }

// View returns the view transform.
func (e *Editor) View() *view.Transform { return e.view }

// Color returns the active color.
func (e *Editor) Color() color.NRGBA { return e.ctx.Color }

// EraseColor returns the eraser sentinel.
func (e *Editor) EraseColor() color.NRGBA { return e.ctx.EraseColor }

// Tool returns the selected tool kind.
func (e *Editor) Tool() tools.Kind { return e.kind }

// Drawing reports whether a stroke is in progress.
func (e *Editor) Drawing() bool { return e.drawing }

func (e *Editor) repaint() {
	if e.onRepaint != nil {
		e.onRepaint()
	}
}

// SetColor changes the active color.
func (e *Editor) SetColor(c color.NRGBA) { e.ctx.Color = c }

// SelectTool switches tools, ending any stroke in progress.
func (e *Editor) SelectTool(k tools.Kind) error {
	if _, ok := e.tools[k]; !ok {
		return fmt.Errorf("unknown tool %v", k)
	}
	e.endStroke()
	e.kind = k
	return nil
}

// PointerDown starts a stroke at a device position. shift continues a line
// from the previous stroke point.
func (e *Editor) PointerDown(x, y int, shift bool) {
	e.endStroke()
	p := e.view.ToImage(image.Pt(x, y))
	t := e.tools[e.kind]
	before := e.hist.Len()
	e.ctx.LineFromLast = shift
	t.Press(e.ctx, p.X, p.Y, true)
	e.ctx.LineFromLast = false
	e.drawing = true
	e.last = p
	e.log.Debug("stroke begin", "tool", t.Name(), "x", p.X, "y", p.Y)
	if e.kind == tools.KindBucket && e.hist.Len() != before {
		top := e.hist.Peek()
		e.log.Debug("fill", "edit", top.ID(), "pixels", top.Len())
	}
	e.repaint()
}

// PointerDrag continues the stroke to a device position.
func (e *Editor) PointerDrag(x, y int) {
	if !e.drawing {
		return
	}
	p := e.view.ToImage(image.Pt(x, y))
	e.tools[e.kind].Drag(e.ctx, e.last.X, e.last.Y, p.X, p.Y)
	e.last = p
	e.repaint()
}

// PointerUp ends the stroke.
func (e *Editor) PointerUp() {
	if !e.drawing {
		return
	}
	e.endStroke()
	e.repaint()
}

func (e *Editor) endStroke() {
	if !e.drawing {
		return
	}
	e.drawing = false
	t := e.tools[e.kind]
	t.Release(e.ctx)
	if top := e.hist.Peek(); top != nil {
		e.log.Debug("stroke end", "tool", t.Name(), "edit", top.ID(), "changes", top.Len(), "bounds", top.Bounds())
	}
}

// Wheel scrolls the view. Without the horizontal modifier dy scrolls
// vertically; with it the wheel scrolls horizontally, using dx when dy is 0.
func (e *Editor) Wheel(dx, dy float64, horizontal bool) {
	var changed bool
	if horizontal {
		d := dy
		if d == 0 {
			d = dx
		}
		changed = e.view.Wheel(d, true)
	} else {
		changed = e.view.Wheel(dy, false)
	}
	if changed {
		e.repaint()
	}
}

// Pan scrolls the view by a device offset.
func (e *Editor) Pan(dx, dy int) {
	if e.view.ScrollBy(image.Pt(dx, dy)) {
		e.repaint()
	}
}

// SetZoom changes the zoom level. Levels below 1 or above view.MaxZoom are
// rejected and the current level kept.
func (e *Editor) SetZoom(z int) error {
	if err := e.view.SetZoom(z); err != nil {
		return err
	}
	e.log.Debug("zoom", "level", z, "scale", e.view.Scale())
	e.repaint()
	return nil
}

// Resize informs the editor of a new viewport size.
func (e *Editor) Resize(w, h int) {
	e.view.Resize(w, h)
	e.repaint()
}

// Undo reverts the latest edit, ending any stroke in progress first.
func (e *Editor) Undo() bool {
	e.endStroke()
	if !e.hist.Undo() {
		return false
	}
	e.log.Debug("undo", "performed", e.hist.Len(), "undone", e.hist.UndoneLen())
	e.repaint()
	return true
}

// Redo re-applies the latest undone edit.
func (e *Editor) Redo() bool {
	e.endStroke()
	if !e.hist.Redo() {
		return false
	}
	e.log.Debug("redo", "performed", e.hist.Len(), "undone", e.hist.UndoneLen())
	e.repaint()
	return true
}

// NewImage replaces the image with a blank one.
func (e *Editor) NewImage(w, h int) error {
	buf, err := pixels.New(w, h)
	if err != nil {
		return fmt.Errorf("new image: %w", err)
	}
	e.replace(buf)
	return nil
}

// LoadImage replaces the image with a copy of img. On error the current
// image is left untouched.
func (e *Editor) LoadImage(img image.Image) error {
	buf, err := pixels.FromImage(img)
	if err != nil {
		return fmt.Errorf("load image: %w", err)
	}
	e.replace(buf)
	return nil
}

// LoadPixels replaces the image with a raw row-major NRGBA grid. On error
// the current image is left untouched.
func (e *Editor) LoadPixels(w, h int, pix []byte) error {
	buf, err := pixels.FromPix(w, h, pix)
	if err != nil {
		return fmt.Errorf("load pixels: %w", err)
	}
	e.replace(buf)
	return nil
}

// LoadBuffer adopts buf as the image under edit.
func (e *Editor) LoadBuffer(buf *pixels.Buffer) error {
	if buf == nil {
		return errors.New("load buffer: nil buffer")
	}
	e.replace(buf)
	return nil
}

func (e *Editor) replace(buf *pixels.Buffer) {
	e.endStroke()
	e.buf = buf
	e.ctx.Buffer = buf
	e.hist.Clear()
	e.view.SetImageSize(buf.Width(), buf.Height())
	e.log.Debug("image replaced", "width", buf.Width(), "height", buf.Height())
	e.repaint()
}
