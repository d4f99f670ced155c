package tools

// ColorPicker copies the color under the pointer into the active color. It
// records no edit.
type ColorPicker struct{}

func (ColorPicker) Name() string { return KindPicker.String() }

func (ColorPicker) Press(ctx *Context, x, y int, _ bool) {
	if !ctx.Buffer.In(x, y) {
		return
	}
	ctx.SetColor(ctx.Buffer.At(x, y))
}

func (ColorPicker) Drag(*Context, int, int, int, int) {}

func (ColorPicker) Release(*Context) {}
