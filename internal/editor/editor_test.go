package editor

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"log/slog"
	"strings"
	"testing"

	"github.com/example/pixelpad/internal/pixels"
	"github.com/example/pixelpad/internal/tools"
	"github.com/example/pixelpad/internal/view"
)

var (
	white = color.NRGBA{255, 255, 255, 255}
	black = color.NRGBA{0, 0, 0, 255}
	red   = color.NRGBA{255, 0, 0, 255}
)

// newEditor returns a 10x10 white image in a 10x10 viewport so device and
// image coordinates coincide at zoom 1.
func newEditor(t *testing.T, opts ...Option) (*Editor, *int) {
	t.Helper()
	repaints := new(int)
	opts = append([]Option{
		WithSize(10, 10),
		WithViewport(10, 10),
		WithColor(black),
		WithRepaintListener(func() { *repaints++ }),
	}, opts...)
	e, err := New(opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	e.Buffer().Fill(white)
	return e, repaints
}

func TestDefaults(t *testing.T) {
	e, err := New()
	if err != nil {
		t.Fatal(err)
	}
	if e.Buffer().Width() != DefaultWidth || e.Buffer().Height() != DefaultHeight {
		t.Fatalf("size %v", e.Buffer().Bounds())
	}
	if e.Tool() != tools.KindPencil || e.View().Zoom() != 1 {
		t.Fatalf("tool %v zoom %d", e.Tool(), e.View().Zoom())
	}
	if e.EraseColor() != pixels.DefaultEraseColor {
		t.Fatalf("erase color %v", e.EraseColor())
	}
}

func TestNewRejectsBadOptions(t *testing.T) {
	if _, err := New(WithSize(0, 5)); !errors.Is(err, pixels.ErrDimensions) {
		t.Fatalf("err = %v", err)
	}
	if _, err := New(WithZoom(0)); !errors.Is(err, view.ErrInvalidZoom) {
		t.Fatalf("err = %v", err)
	}
}

func TestStrokeUndoRedo(t *testing.T) {
	e, repaints := newEditor(t)
	orig := e.Buffer().Clone()
	e.PointerDown(1, 1, false)
	e.PointerDrag(5, 1)
	e.PointerDrag(5, 4)
	e.PointerUp()
	if e.History().Len() != 1 {
		t.Fatalf("history = %d", e.History().Len())
	}
	if e.Buffer().At(3, 1) != black || e.Buffer().At(5, 3) != black {
		t.Fatal("stroke not painted")
	}
	if *repaints == 0 {
		t.Fatal("no repaint requested")
	}
	painted := e.Buffer().Clone()
	if !e.Undo() {
		t.Fatal("Undo returned false")
	}
	if !e.Buffer().Equal(orig) {
		t.Fatal("undo did not restore")
	}
	if !e.Redo() {
		t.Fatal("Redo returned false")
	}
	if !e.Buffer().Equal(painted) {
		t.Fatal("redo did not reproduce")
	}
}

func TestDragWithoutDownIgnored(t *testing.T) {
	e, repaints := newEditor(t)
	e.PointerDrag(3, 3)
	e.PointerUp()
	if e.History().Len() != 0 || *repaints != 0 {
		t.Fatal("stray drag had effects")
	}
}

func TestZoomedPointerMapping(t *testing.T) {
	e, _ := newEditor(t, WithViewport(40, 40))
	if err := e.SetZoom(3); err != nil { // scale 4, extent 40
		t.Fatal(err)
	}
	e.PointerDown(13, 9, false)
	e.PointerUp()
	if e.Buffer().At(3, 2) != black {
		t.Fatal("pointer not mapped through the view")
	}
}

func TestSetZoomInvalid(t *testing.T) {
	e, repaints := newEditor(t)
	if err := e.SetZoom(-2); !errors.Is(err, view.ErrInvalidZoom) {
		t.Fatalf("err = %v", err)
	}
	if e.View().Zoom() != 1 || *repaints != 0 {
		t.Fatal("invalid zoom changed state")
	}
}

func TestBucketAndPicker(t *testing.T) {
	e, _ := newEditor(t)
	var picked []color.NRGBA
	e.onColor = func(c color.NRGBA) { picked = append(picked, c) }
	e.SetColor(red)
	if err := e.SelectTool(tools.KindBucket); err != nil {
		t.Fatal(err)
	}
	e.PointerDown(0, 0, false)
	e.PointerUp()
	if e.Buffer().At(9, 9) != red || e.History().Len() != 1 {
		t.Fatal("bucket did not fill")
	}
	e.SetColor(black)
	e.SelectTool(tools.KindPicker)
	e.PointerDown(4, 4, false)
	e.PointerUp()
	if e.Color() != red || len(picked) != 1 || picked[0] != red {
		t.Fatalf("color %v picked %v", e.Color(), picked)
	}
	if e.History().Len() != 1 {
		t.Fatal("picker recorded an edit")
	}
}

func TestLoadFailureKeepsBuffer(t *testing.T) {
	e, repaints := newEditor(t)
	e.PointerDown(2, 2, false)
	e.PointerUp()
	before := e.Buffer()
	snapshot := before.Clone()
	*repaints = 0
	if err := e.LoadPixels(3, 3, make([]byte, 5)); !errors.Is(err, pixels.ErrDimensions) {
		t.Fatalf("err = %v", err)
	}
	if e.Buffer() != before || !e.Buffer().Equal(snapshot) {
		t.Fatal("failed load replaced the buffer")
	}
	if e.History().Len() != 1 || *repaints != 0 {
		t.Fatal("failed load touched history or repainted")
	}
}

func TestLoadResetsSession(t *testing.T) {
	e, _ := newEditor(t, WithViewport(100, 100))
	e.PointerDown(50, 50, false)
	e.PointerUp()
	e.SetZoom(3)
	img := image.NewNRGBA(image.Rect(0, 0, 4, 3))
	img.SetNRGBA(3, 2, red)
	if err := e.LoadImage(img); err != nil {
		t.Fatal(err)
	}
	if e.Buffer().Bounds() != image.Rect(0, 0, 4, 3) || e.Buffer().At(3, 2) != red {
		t.Fatal("image not loaded")
	}
	if e.History().Len() != 0 || e.View().Zoom() != 1 {
		t.Fatalf("history %d zoom %d", e.History().Len(), e.View().Zoom())
	}
	if e.Undo() {
		t.Fatal("undo crossed an image replacement")
	}
}

func TestNewImage(t *testing.T) {
	e, _ := newEditor(t)
	if err := e.NewImage(3, 4); err != nil {
		t.Fatal(err)
	}
	if e.Buffer().At(0, 0) != (color.NRGBA{}) {
		t.Fatal("new image not zeroed")
	}
	if err := e.NewImage(0, 4); err == nil {
		t.Fatal("expected error")
	}
	if e.Buffer().Width() != 3 {
		t.Fatal("failed NewImage replaced the buffer")
	}
}

func TestWheel(t *testing.T) {
	e, repaints := newEditor(t, WithSize(10, 10), WithViewport(20, 20))
	e.Wheel(0, 3, false)
	if *repaints != 0 {
		t.Fatal("wheel repainted while the image fits")
	}
	e.SetZoom(3)
	*repaints = 0
	e.Wheel(0, 1, false)
	if e.View().Scroll() != image.Pt(0, -2) || *repaints != 1 {
		t.Fatalf("scroll %v repaints %d", e.View().Scroll(), *repaints)
	}
	e.Wheel(0, 1, true)
	if e.View().Scroll() != image.Pt(-2, -2) {
		t.Fatalf("horizontal scroll %v", e.View().Scroll())
	}
	e.Wheel(1, 0, true)
	if e.View().Scroll() != image.Pt(-4, -2) {
		t.Fatalf("dx fallback scroll %v", e.View().Scroll())
	}
	e.Wheel(1, 0, false)
	if e.View().Scroll() != image.Pt(-4, -2) {
		t.Fatal("unmodified dx scrolled")
	}
}

func TestUndoMidStrokeSealsEdit(t *testing.T) {
	e, _ := newEditor(t)
	e.PointerDown(0, 0, false)
	e.Undo()
	e.PointerDrag(4, 0)
	if e.Buffer().At(2, 0) != white {
		t.Fatal("drag after undo painted into a closed stroke")
	}
	if e.Drawing() {
		t.Fatal("stroke still active after undo")
	}
}

func TestLogger(t *testing.T) {
	var out bytes.Buffer
	l := slog.New(slog.NewTextHandler(&out, &slog.HandlerOptions{Level: slog.LevelDebug}))
	e, _ := newEditor(t, WithLogger(l))
	e.PointerDown(1, 1, false)
	e.PointerUp()
	if !strings.Contains(out.String(), "stroke end") {
		t.Fatalf("log output %q", out.String())
	}
}
