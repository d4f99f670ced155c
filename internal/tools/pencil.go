package tools

import (
	"image"
	"image/color"

	"github.com/example/pixelpad/internal/history"
	"github.com/example/pixelpad/internal/raster"
)

// Pencil paints single pixels along the pointer path. With erase set it
// writes the context's erase color instead of the active color.
type Pencil struct {
	erase   bool
	last    image.Point
	hasLast bool
}

// NewPencil returns a pencil using the active color.
func NewPencil() *Pencil { return &Pencil{} }

// NewEraser returns a pencil that writes the erase sentinel.
func NewEraser() *Pencil { return &Pencil{erase: true} }

func (p *Pencil) Name() string {
	if p.erase {
		return KindEraser.String()
	}
	return KindPencil.String()
}

func (p *Pencil) ink(ctx *Context) color.NRGBA {
	if p.erase {
		return ctx.EraseColor
	}
	return ctx.Color
}

// Press starts a new edit for a new stroke, otherwise it continues the
// latest open one.
func (p *Pencil) Press(ctx *Context, x, y int, newStroke bool) {
	var e *history.DrawEdit
	if !newStroke {
		e = ctx.History.Peek()
	}
	if e == nil || e.Sealed() {
		e = history.NewEdit(ctx.Buffer, p.Name())
		ctx.History.Push(e)
	}
	if ctx.LineFromLast && p.hasLast {
		p.plot(ctx, e, p.last.X, p.last.Y, x, y)
	} else {
		p.plot(ctx, e, x, y, x, y)
	}
	p.last, p.hasLast = image.Pt(x, y), true
}

// Drag extends the open edit with the segment from the previous point.
func (p *Pencil) Drag(ctx *Context, prevX, prevY, x, y int) {
	e := ctx.History.Peek()
	if e == nil || e.Sealed() {
		return
	}
	p.plot(ctx, e, prevX, prevY, x, y)
	p.last, p.hasLast = image.Pt(x, y), true
}

// Release seals the stroke's edit.
func (p *Pencil) Release(ctx *Context) {
	if e := ctx.History.Peek(); e != nil {
		e.Seal()
	}
}

func (p *Pencil) plot(ctx *Context, e *history.DrawEdit, x0, y0, x1, y1 int) {
	c := p.ink(ctx)
	buf := ctx.Buffer
	for _, pt := range raster.Line(x0, y0, x1, y1) {
		if !buf.In(pt.X, pt.Y) {
			continue
		}
		e.AddChange(pt.X, pt.Y, buf.At(pt.X, pt.Y), c)
	}
}
