package tools

import (
	"image"

	"github.com/example/pixelpad/internal/history"
	"github.com/example/pixelpad/internal/raster"
)

// Bucket flood fills the region under the pointer with the active color.
// Every fill is its own edit.
type Bucket struct{}

func (Bucket) Name() string { return KindBucket.String() }

func (b Bucket) Press(ctx *Context, x, y int, _ bool) {
	buf := ctx.Buffer
	if !buf.In(x, y) {
		return
	}
	target := buf.At(x, y)
	if target == ctx.Color {
		return
	}
	e := history.NewEdit(buf, b.Name())
	for _, p := range raster.FloodFill(buf, image.Pt(x, y), target) {
		e.AddChange(p.X, p.Y, target, ctx.Color)
	}
	e.Seal()
	ctx.History.Push(e)
}

func (Bucket) Drag(*Context, int, int, int, int) {}

func (Bucket) Release(*Context) {}
