package appstate

import (
	"fmt"
	"image"
	"log"
	"time"

	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/mouse"

	"github.com/example/pixelpad/internal/clipboard"
	"github.com/example/pixelpad/internal/codec"
	"github.com/example/pixelpad/internal/editor"
	"github.com/example/pixelpad/internal/notify"
	"github.com/example/pixelpad/internal/theme"
	"github.com/example/pixelpad/internal/tools"
	"github.com/example/pixelpad/internal/view"
)

const messageDuration = 2 * time.Second

// controller turns window input into editor operations. It owns no window
// and is driven from the event loop goroutine only.
type controller struct {
	ed       *editor.Editor
	theme    *theme.Theme
	notifier *notify.Notifier
	output   string

	width, height int
	layout        layout
	buttons       []*button
	hoverButton   int
	hover         *image.Point

	message      string
	messageUntil time.Time
	now          func() time.Time

	actions map[string]func()
	keys    map[KeyShortcut]string
	quit    bool
	dirty   bool
}

func newController(ed *editor.Editor, th *theme.Theme, n *notify.Notifier, output string) *controller {
	c := &controller{
		ed:          ed,
		theme:       th,
		notifier:    n,
		output:      output,
		hoverButton: -1,
		now:         time.Now,
		actions:     map[string]func(){},
		keys:        map[KeyShortcut]string{},
	}
	for _, k := range tools.Kinds() {
		kind := k
		c.buttons = append(c.buttons, &button{
			label:    toolLabel(kind),
			selected: func() bool { return c.ed.Tool() == kind },
			activate: func() { c.selectTool(kind) },
		})
	}
	c.registerActions()
	return c
}

func (c *controller) register(name string, keys KeyboardShortcuts, fn func()) {
	c.actions[name] = fn
	if keys != nil {
		for _, sc := range keys.KeyboardShortcuts() {
			c.keys[sc] = name
		}
	}
}

func (c *controller) registerActions() {
	ctrl, shift := key.ModControl, key.ModShift
	c.register("pencil", shortcutList{{Code: key.CodeW}}, func() { c.selectTool(tools.KindPencil) })
	c.register("eraser", shortcutList{{Code: key.CodeE}}, func() { c.selectTool(tools.KindEraser) })
	c.register("bucket", shortcutList{{Code: key.CodeA}}, func() { c.selectTool(tools.KindBucket) })
	c.register("picker", shortcutList{{Code: key.CodeI}}, func() { c.selectTool(tools.KindPicker) })
	c.register("undo", shortcutList{{Code: key.CodeZ, Modifiers: ctrl}}, func() {
		if !c.ed.Undo() {
			c.flash("nothing to undo")
		}
	})
	c.register("redo", shortcutList{{Code: key.CodeY, Modifiers: ctrl}, {Code: key.CodeZ, Modifiers: ctrl | shift}}, func() {
		if !c.ed.Redo() {
			c.flash("nothing to redo")
		}
	})
	c.register("zoomin", shortcutList{{Code: key.CodeEqualSign}, {Code: key.CodeEqualSign, Modifiers: shift}, {Code: key.CodeKeypadPlusSign}}, func() {
		c.zoom(c.ed.View().Zoom() + 1)
	})
	c.register("zoomout", shortcutList{{Code: key.CodeHyphenMinus}, {Code: key.CodeKeypadHyphenMinus}}, func() {
		c.zoom(c.ed.View().Zoom() - 1)
	})
	digits := []key.Code{key.Code1, key.Code2, key.Code3, key.Code4, key.Code5, key.Code6, key.Code7, key.Code8, key.Code9}
	for i, code := range digits {
		level := i + 1
		c.register(fmt.Sprintf("zoom%d", level), shortcutList{{Code: code}}, func() { c.zoom(level) })
	}
	const pan = 32
	c.register("panleft", shortcutList{{Code: key.CodeLeftArrow}}, func() { c.ed.Pan(pan, 0) })
	c.register("panright", shortcutList{{Code: key.CodeRightArrow}}, func() { c.ed.Pan(-pan, 0) })
	c.register("panup", shortcutList{{Code: key.CodeUpArrow}}, func() { c.ed.Pan(0, pan) })
	c.register("pandown", shortcutList{{Code: key.CodeDownArrow}}, func() { c.ed.Pan(0, -pan) })
	c.register("new", shortcutList{{Code: key.CodeN, Modifiers: ctrl}}, func() {
		b := c.ed.Buffer()
		if err := c.ed.NewImage(b.Width(), b.Height()); err != nil {
			log.Printf("new image: %v", err)
			return
		}
		c.flash("new image")
	})
	c.register("save", shortcutList{{Code: key.CodeS, Modifiers: ctrl}}, c.save)
	c.register("copy", shortcutList{{Code: key.CodeC, Modifiers: ctrl}}, func() {
		if err := clipboard.CopyBuffer(c.ed.Buffer()); err != nil {
			log.Printf("copy: %v", err)
			c.flash("copy failed")
			return
		}
		c.notifier.Copy("image")
		c.flash("image copied to clipboard")
	})
	c.register("paste", shortcutList{{Code: key.CodeV, Modifiers: ctrl}}, func() {
		buf, err := clipboard.PasteBuffer()
		if err != nil {
			log.Printf("paste: %v", err)
			c.flash("paste failed")
			return
		}
		if err := c.ed.LoadBuffer(buf); err != nil {
			log.Printf("paste: %v", err)
			return
		}
		c.fit()
		c.flash("pasted image")
	})
	c.register("quit", shortcutList{{Code: key.CodeQ, Modifiers: ctrl}, {Code: key.CodeEscape}}, func() { c.quit = true })
}

func (c *controller) selectTool(k tools.Kind) {
	if err := c.ed.SelectTool(k); err != nil {
		log.Printf("select tool: %v", err)
		return
	}
	c.dirty = true
}

func (c *controller) zoom(level int) {
	if level < 1 || level > view.MaxZoom {
		return
	}
	if err := c.ed.SetZoom(level); err != nil {
		log.Printf("zoom: %v", err)
	}
}

// fit picks the largest zoom showing the whole image.
func (c *controller) fit() {
	c.zoom(c.ed.View().FitZoom())
}

func (c *controller) save() {
	if c.output == "" {
		c.flash("no output file")
		return
	}
	if err := codec.Save(c.output, c.ed.Buffer()); err != nil {
		log.Printf("save: %v", err)
		c.flash("save failed")
		return
	}
	c.notifier.Save(c.output)
	c.flash(fmt.Sprintf("saved %s", c.output))
}

func (c *controller) flash(msg string) {
	log.Print(msg)
	c.message = msg
	c.messageUntil = c.now().Add(messageDuration)
	c.dirty = true
}

func (c *controller) activeMessage() string {
	if c.message != "" && c.now().Before(c.messageUntil) {
		return c.message
	}
	return ""
}

// resize adapts the layout to a new window size.
func (c *controller) resize(w, h int) {
	c.width, c.height = w, h
	c.layout = computeLayout(w, h, len(c.buttons), len(palette))
	for i, b := range c.buttons {
		b.rect = c.layout.buttons[i]
	}
	c.ed.Resize(c.layout.canvas.Dx(), c.layout.canvas.Dy())
	c.dirty = true
}

func (c *controller) handleKey(e key.Event) {
	if e.Direction != key.DirPress {
		return
	}
	ks := KeyShortcut{Code: e.Code, Modifiers: normalizeModifiers(e.Modifiers)}
	if action, ok := c.keys[ks]; ok {
		c.actions[action]()
		c.dirty = true
	}
}

func (c *controller) handleMouse(e mouse.Event) {
	p := image.Pt(int(e.X), int(e.Y))
	shift := e.Modifiers&key.ModShift != 0

	if e.Direction == mouse.DirStep || isWheel(e.Button) {
		c.handleWheel(e)
		return
	}

	if c.ed.Drawing() {
		dev := p.Sub(c.layout.canvas.Min)
		c.hover = &dev
		switch {
		case e.Button == mouse.ButtonLeft && e.Direction == mouse.DirRelease:
			c.ed.PointerUp()
		case e.Direction == mouse.DirNone:
			c.ed.PointerDrag(dev.X, dev.Y)
		}
		c.dirty = true
		return
	}

	if p.In(c.layout.canvas) {
		dev := p.Sub(c.layout.canvas.Min)
		c.hover = &dev
		c.hoverButton = -1
		if e.Button == mouse.ButtonLeft && e.Direction == mouse.DirPress {
			if c.activeMessage() != "" {
				c.messageUntil = time.Time{}
			}
			c.ed.PointerDown(dev.X, dev.Y, shift)
		}
		c.dirty = true
		return
	}
	c.hover = nil

	c.hoverButton = -1
	for i, b := range c.buttons {
		if p.In(b.rect) {
			c.hoverButton = i
			if e.Button == mouse.ButtonLeft && e.Direction == mouse.DirPress {
				b.activate()
			}
			break
		}
	}
	if e.Button == mouse.ButtonLeft && e.Direction == mouse.DirPress {
		for i, r := range c.layout.swatches {
			if p.In(r) {
				c.ed.SetColor(palette[i].Color)
				break
			}
		}
	}
	c.dirty = true
}

func isWheel(b mouse.Button) bool {
	switch b {
	case mouse.ButtonWheelUp, mouse.ButtonWheelDown, mouse.ButtonWheelLeft, mouse.ButtonWheelRight:
		return true
	}
	return false
}

// handleWheel scrolls the canvas. Shift scrolls horizontally and control
// zooms.
func (c *controller) handleWheel(e mouse.Event) {
	if e.Direction == mouse.DirRelease {
		return
	}
	var dx, dy float64
	switch e.Button {
	case mouse.ButtonWheelUp:
		dy = -1
	case mouse.ButtonWheelDown:
		dy = 1
	case mouse.ButtonWheelLeft:
		dx = -1
	case mouse.ButtonWheelRight:
		dx = 1
	default:
		return
	}
	mods := normalizeModifiers(e.Modifiers)
	if mods&key.ModControl != 0 {
		if dy < 0 {
			c.zoom(c.ed.View().Zoom() + 1)
		} else if dy > 0 {
			c.zoom(c.ed.View().Zoom() - 1)
		}
		return
	}
	c.ed.Wheel(dx*wheelUnits, dy*wheelUnits, mods&key.ModShift != 0)
}

// wheelUnits is the rotation reported for one wheel notch.
const wheelUnits = 8

func (c *controller) frame() frame {
	f := frame{
		width:       c.width,
		height:      c.height,
		layout:      c.layout,
		buttons:     c.buttons,
		hoverButton: c.hoverButton,
		current:     c.ed.Color(),
		status:      c.statusLine(),
		message:     c.activeMessage(),
	}
	for i, r := range c.layout.swatches {
		f.swatches = append(f.swatches, swatch{color: palette[i].Color, rect: r})
	}
	f.canvasOpts.Theme = c.theme
	f.canvasOpts.Hover = c.hover
	return f
}
