package appstate

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/colornames"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/mobile/event/key"

	"github.com/example/pixelpad/internal/pixels"
	"github.com/example/pixelpad/internal/render"
	"github.com/example/pixelpad/internal/theme"
	"github.com/example/pixelpad/internal/tools"
)

// ProgramTitle is shown in the toolbar and the window title.
const ProgramTitle = "pixelpad"

const (
	bottomHeight = 20
	buttonHeight = 24
	swatchSize   = 18
	padding      = 4
)

var toolbarWidth = 80

// PaletteColor is a named swatch offered in the toolbar.
type PaletteColor struct {
	Name  string
	Color color.NRGBA
}

var palette = func() []PaletteColor {
	names := []string{
		"black", "white", "gray", "silver",
		"red", "maroon", "orange", "yellow",
		"lime", "green", "cyan", "teal",
		"blue", "navy", "magenta", "purple",
	}
	out := make([]PaletteColor, 0, len(names))
	for _, n := range names {
		c := colornames.Map[n]
		out = append(out, PaletteColor{Name: n, Color: color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255}})
	}
	return out
}()

// Palette returns the toolbar swatches.
func Palette() []PaletteColor {
	out := make([]PaletteColor, len(palette))
	copy(out, palette)
	return out
}

// KeyShortcut describes a keyboard combination that triggers an action.
type KeyShortcut struct {
	Code      key.Code
	Modifiers key.Modifiers
}

// KeyboardShortcuts returns the shortcuts associated with an action.
type KeyboardShortcuts interface {
	KeyboardShortcuts() []KeyShortcut
}

// shortcutList is a helper to easily satisfy the KeyboardShortcuts interface.
type shortcutList []KeyShortcut

func (s shortcutList) KeyboardShortcuts() []KeyShortcut { return []KeyShortcut(s) }

// normalizeModifiers keeps shift and control, folding the command key into
// control so the same bindings work on every platform.
func normalizeModifiers(m key.Modifiers) key.Modifiers {
	out := m & (key.ModShift | key.ModControl)
	if m&key.ModMeta != 0 {
		out |= key.ModControl
	}
	return out
}

// ButtonState describes the visual state of a button.
type ButtonState int

const (
	StateDefault ButtonState = iota
	StateHover
	StatePressed
)

// button is a labelled toolbar entry.
type button struct {
	label    string
	rect     image.Rectangle
	selected func() bool
	activate func()
}

func (b *button) draw(dst *image.RGBA, th *theme.Theme, state ButtonState) {
	c := th.ButtonBackground
	switch {
	case state == StatePressed || (b.selected != nil && b.selected()):
		c = th.ButtonBackgroundActive
	case state == StateHover:
		c = th.ButtonBackgroundHover
	}
	draw.Draw(dst, b.rect, image.NewUniform(c), image.Point{}, draw.Src)
	strokeRect(dst, b.rect, th.ButtonBorder)
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(th.ButtonText), Face: basicfont.Face7x13,
		Dot: fixed.P(b.rect.Min.X+padding, b.rect.Min.Y+16)}
	d.DrawString(b.label)
}

// swatch is a palette entry in the toolbar.
type swatch struct {
	color color.NRGBA
	rect  image.Rectangle
}

// layout records where each part of the window is.
type layout struct {
	canvas   image.Rectangle
	status   image.Rectangle
	buttons  []image.Rectangle
	swatches []image.Rectangle
	current  image.Rectangle
}

func computeLayout(width, height, nButtons, nSwatches int) layout {
	l := layout{
		canvas: image.Rect(toolbarWidth, 0, max(width, toolbarWidth), max(height-bottomHeight, 0)),
		status: image.Rect(0, max(height-bottomHeight, 0), width, height),
	}
	y := padding
	for i := 0; i < nButtons; i++ {
		l.buttons = append(l.buttons, image.Rect(0, y, toolbarWidth, y+buttonHeight))
		y += buttonHeight
	}
	y += padding
	cols := max((toolbarWidth-padding)/swatchSize, 1)
	for i := 0; i < nSwatches; i++ {
		x := padding + (i%cols)*swatchSize
		sy := y + (i/cols)*swatchSize
		l.swatches = append(l.swatches, image.Rect(x, sy, x+swatchSize-2, sy+swatchSize-2))
	}
	y += ((nSwatches + cols - 1) / cols) * swatchSize
	y += padding
	l.current = image.Rect(padding, y, toolbarWidth-padding, y+2*swatchSize)
	return l
}

func toolLabel(k tools.Kind) string {
	switch k {
	case tools.KindPencil:
		return "W:Pencil"
	case tools.KindEraser:
		return "E:Eraser"
	case tools.KindBucket:
		return "A:Bucket"
	case tools.KindPicker:
		return "I:Picker"
	}
	return k.String()
}

// frame holds everything needed to draw one window frame.
type frame struct {
	width, height int
	layout        layout
	buttons       []*button
	swatches      []swatch
	hoverButton   int
	current       color.NRGBA
	status        string
	message       string
	canvasOpts    render.Options
}

func (c *controller) drawFrame(dst *image.RGBA, f frame) {
	th := c.theme
	draw.Draw(dst, dst.Bounds(), image.NewUniform(th.ToolbarBackground), image.Point{}, draw.Src)

	render.Canvas(dst, f.layout.canvas, c.ed.Buffer(), c.ed.View(), f.canvasOpts)

	for i, b := range f.buttons {
		state := StateDefault
		if i == f.hoverButton {
			state = StateHover
		}
		b.draw(dst, th, state)
	}
	for _, s := range f.swatches {
		draw.Draw(dst, s.rect, image.NewUniform(s.color), image.Point{}, draw.Src)
		if s.color == f.current {
			strokeRect(dst, s.rect.Inset(-1), th.ButtonBorder)
		}
	}
	drawCheckerSwatch(dst, f.layout.current, f.current, th)

	draw.Draw(dst, f.layout.status, image.NewUniform(th.StatusBackground), image.Point{}, draw.Src)
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(th.StatusText), Face: basicfont.Face7x13,
		Dot: fixed.P(f.layout.status.Min.X+padding, f.layout.status.Min.Y+14)}
	d.DrawString(f.status)

	if f.message != "" {
		drawMessage(dst, f.layout.canvas, f.message)
	}
}

// drawCheckerSwatch shows the active color over a checkerboard so its alpha
// is visible.
func drawCheckerSwatch(dst *image.RGBA, r image.Rectangle, c color.NRGBA, th *theme.Theme) {
	half := r.Dy() / 2
	for y := r.Min.Y; y < r.Max.Y; y += half {
		for x := r.Min.X; x < r.Max.X; x += half {
			col := th.CheckerLight
			if ((x-r.Min.X)/half+(y-r.Min.Y)/half)%2 == 1 {
				col = th.CheckerDark
			}
			draw.Draw(dst, image.Rect(x, y, x+half, y+half).Intersect(r), image.NewUniform(col), image.Point{}, draw.Src)
		}
	}
	draw.Draw(dst, r, image.NewUniform(c), image.Point{}, draw.Over)
	strokeRect(dst, r, th.ButtonBorder)
}

func drawMessage(dst *image.RGBA, area image.Rectangle, msg string) {
	face := basicfont.Face7x13
	d := &font.Drawer{Dst: dst, Src: image.Black, Face: face}
	w := d.MeasureString(msg).Ceil()
	ascent := face.Metrics().Ascent.Ceil()
	descent := face.Metrics().Descent.Ceil()
	px := area.Min.X + (area.Dx()-w)/2
	py := area.Min.Y + (area.Dy()-ascent-descent)/2 + ascent
	rect := image.Rect(px-8, py-ascent-8, px+w+8, py+descent+8)
	draw.Draw(dst, rect, image.NewUniform(color.RGBA{255, 255, 255, 230}), image.Point{}, draw.Over)
	strokeRect(dst, rect, color.RGBA{0, 0, 0, 255})
	d.Dot = fixed.P(px, py)
	d.DrawString(msg)
}

func strokeRect(dst *image.RGBA, r image.Rectangle, c color.RGBA) {
	if r.Empty() {
		return
	}
	for x := r.Min.X; x < r.Max.X; x++ {
		dst.SetRGBA(x, r.Min.Y, c)
		dst.SetRGBA(x, r.Max.Y-1, c)
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		dst.SetRGBA(r.Min.X, y, c)
		dst.SetRGBA(r.Max.X-1, y, c)
	}
}

// statusLine summarises the session for the status bar.
func (c *controller) statusLine() string {
	ed := c.ed
	v := ed.View()
	s := fmt.Sprintf("%s  %s  %dx%d  zoom %d (x%d)  undo %d redo %d",
		ed.Tool(), pixels.FormatColor(ed.Color()),
		ed.Buffer().Width(), ed.Buffer().Height(),
		v.Zoom(), v.Scale(),
		ed.History().Len(), ed.History().UndoneLen())
	if c.hover != nil {
		p := v.ToImage(*c.hover)
		if ed.Buffer().In(p.X, p.Y) {
			s += fmt.Sprintf("  (%d,%d) %s", p.X, p.Y, pixels.FormatColor(ed.Buffer().At(p.X, p.Y)))
		}
	}
	return s
}
