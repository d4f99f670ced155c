package appstate

import (
	"image"
	"log"
	"sync"

	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"

	"github.com/example/pixelpad/internal/editor"
	"github.com/example/pixelpad/internal/notify"
	"github.com/example/pixelpad/internal/theme"
)

// AppState holds application configuration for the UI.
type AppState struct {
	Editor   *editor.Editor
	Output   string
	Title    string
	Theme    *theme.Theme
	Notifier *notify.Notifier

	mu      sync.Mutex
	send    func(any)
	pending []func(*editor.Editor)

	onClose   func()
	closeOnce sync.Once
}

// Option modifies an AppState during creation.
type Option func(*AppState)

// WithEditor sets the editor displayed by the application.
func WithEditor(ed *editor.Editor) Option { return func(a *AppState) { a.Editor = ed } }

// WithOutput sets the file written by the save shortcut.
func WithOutput(out string) Option { return func(a *AppState) { a.Output = out } }

// WithTitle sets the window title.
func WithTitle(title string) Option { return func(a *AppState) { a.Title = title } }

// WithTheme sets the colors used by the window chrome.
func WithTheme(t *theme.Theme) Option { return func(a *AppState) { a.Theme = t } }

// WithNotifier sets the notifier used after saves and copies.
func WithNotifier(n *notify.Notifier) Option { return func(a *AppState) { a.Notifier = n } }

// WithOnClose registers a callback invoked when the window closes.
func WithOnClose(fn func()) Option { return func(a *AppState) { a.onClose = fn } }

// New creates an AppState with the provided options.
func New(opts ...Option) *AppState {
	a := &AppState{Title: ProgramTitle}
	for _, o := range opts {
		o(a)
	}
	if a.Theme == nil {
		a.Theme = theme.Default()
	}
	return a
}

// runEvent carries queued editor work into the event loop.
type runEvent struct{}

// Do schedules fn to run on the window's event loop so that editor state is
// only touched from one goroutine. Work queued before the window opens runs
// once it does.
func (a *AppState) Do(fn func(*editor.Editor)) {
	a.mu.Lock()
	a.pending = append(a.pending, fn)
	send := a.send
	a.mu.Unlock()
	if send != nil {
		send(runEvent{})
	}
}

func (a *AppState) drain() []func(*editor.Editor) {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := a.pending
	a.pending = nil
	return out
}

func (a *AppState) setSender(fn func(any)) {
	a.mu.Lock()
	a.send = fn
	a.mu.Unlock()
}

func (a *AppState) notifyClose() {
	a.closeOnce.Do(func() {
		a.setSender(nil)
		if a.onClose != nil {
			a.onClose()
		}
	})
}

// Run executes the UI loop using shiny's driver.
func (a *AppState) Run() { driver.Main(a.Main) }

// Main opens the editor window on s and processes events until it closes.
func (a *AppState) Main(s screen.Screen) {
	if a.Editor == nil {
		log.Printf("appstate: no editor")
		return
	}
	c := newController(a.Editor, a.Theme, a.Notifier, a.Output)

	// The toolbar must fit the title and every tool label.
	d := &font.Drawer{Face: basicfont.Face7x13}
	widest := d.MeasureString(ProgramTitle).Ceil() + 2*padding
	for _, b := range c.buttons {
		widest = max(widest, d.MeasureString(b.label).Ceil()+2*padding)
	}
	toolbarWidth = max(toolbarWidth, widest)

	vp := a.Editor.View().Viewport()
	width := vp.X + toolbarWidth
	height := vp.Y + bottomHeight
	w, err := s.NewWindow(&screen.NewWindowOptions{Width: width, Height: height, Title: a.Title})
	if err != nil {
		log.Printf("new window: %v", err)
		return
	}
	defer w.Release()
	defer a.notifyClose()

	a.setSender(func(e any) { w.Send(e) })
	w.Send(runEvent{})
	c.resize(width, height)

	for {
		switch e := w.NextEvent().(type) {
		case runEvent:
			for _, fn := range a.drain() {
				fn(a.Editor)
			}
			c.dirty = true
		case lifecycle.Event:
			if e.To == lifecycle.StageDead {
				return
			}
		case size.Event:
			c.resize(e.WidthPx, e.HeightPx)
		case paint.Event:
			if c.width <= 0 || c.height <= 0 {
				continue
			}
			if err := a.paint(s, w, c); err != nil {
				log.Printf("paint: %v", err)
			}
		case mouse.Event:
			c.handleMouse(e)
		case key.Event:
			c.handleKey(e)
			if c.quit {
				return
			}
		case error:
			log.Printf("window: %v", e)
		}
		if c.dirty {
			c.dirty = false
			w.Send(paint.Event{})
		}
	}
}

func (a *AppState) paint(s screen.Screen, w screen.Window, c *controller) error {
	b, err := s.NewBuffer(image.Point{X: c.width, Y: c.height})
	if err != nil {
		return err
	}
	defer b.Release()
	c.drawFrame(b.RGBA(), c.frame())
	w.Upload(image.Point{}, b, b.Bounds())
	w.Publish()
	return nil
}
