package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/example/pixelpad/internal/pixels"
	"github.com/example/pixelpad/internal/theme"
	"github.com/example/pixelpad/internal/view"
)

func opaque(t *testing.T, w, h int, c color.NRGBA) *pixels.Buffer {
	t.Helper()
	b, err := pixels.New(w, h)
	if err != nil {
		t.Fatal(err)
	}
	b.Fill(c)
	return b
}

func TestSnapshotCentersImage(t *testing.T) {
	buf := opaque(t, 4, 4, color.NRGBA{255, 0, 0, 255})
	tr := view.New(4, 4, 20, 10)
	th := theme.Default()
	out := Snapshot(buf, tr, Options{Theme: th})
	if out.Bounds() != image.Rect(0, 0, 20, 10) {
		t.Fatalf("bounds = %v", out.Bounds())
	}
	if got := out.RGBAAt(0, 0); got != th.Background {
		t.Fatalf("corner = %v, want background", got)
	}
	// origin is (8,3)
	if got := out.RGBAAt(8, 3); got != (color.RGBA{255, 0, 0, 255}) {
		t.Fatalf("image pixel = %v", got)
	}
	if got := out.RGBAAt(12, 3); got != th.Background {
		t.Fatalf("right of image = %v", got)
	}
}

func TestZoomScalesPixels(t *testing.T) {
	buf := opaque(t, 2, 2, color.NRGBA{0, 0, 255, 255})
	buf.Set(1, 1, color.NRGBA{0, 255, 0, 255})
	tr := view.New(2, 2, 8, 8)
	if err := tr.SetZoom(3); err != nil {
		t.Fatal(err)
	}
	out := Snapshot(buf, tr, Options{})
	for _, p := range []image.Point{{4, 4}, {7, 7}, {5, 6}} {
		if got := out.RGBAAt(p.X, p.Y); got != (color.RGBA{0, 255, 0, 255}) {
			t.Fatalf("%v = %v", p, got)
		}
	}
	if got := out.RGBAAt(3, 3); got != (color.RGBA{0, 0, 255, 255}) {
		t.Fatalf("(3,3) = %v", got)
	}
}

func TestTransparentShowsChecker(t *testing.T) {
	buf, _ := pixels.New(4, 4)
	tr := view.New(4, 4, 4, 4)
	th := theme.Default()
	out := Snapshot(buf, tr, Options{Theme: th})
	if got := out.RGBAAt(0, 0); got != th.CheckerLight {
		t.Fatalf("checker = %v", got)
	}
}

func TestCheckerAlternates(t *testing.T) {
	buf, _ := pixels.New(16, 8)
	tr := view.New(16, 8, 16, 8)
	th := theme.Default()
	out := Snapshot(buf, tr, Options{Theme: th})
	if out.RGBAAt(0, 0) != th.CheckerLight || out.RGBAAt(CheckerSize, 0) != th.CheckerDark {
		t.Fatalf("checker squares %v %v", out.RGBAAt(0, 0), out.RGBAAt(CheckerSize, 0))
	}
}

func TestHoverOutline(t *testing.T) {
	buf := opaque(t, 2, 2, color.NRGBA{0, 0, 255, 255})
	tr := view.New(2, 2, 8, 8)
	tr.SetZoom(3)
	th := theme.Default()
	hover := image.Pt(1, 1)
	out := Snapshot(buf, tr, Options{Theme: th, Hover: &hover})
	if got := out.RGBAAt(0, 0); got != th.HoverLight {
		t.Fatalf("outline corner = %v", got)
	}
	if got := out.RGBAAt(1, 1); got != (color.RGBA{0, 0, 255, 255}) {
		t.Fatalf("cell interior = %v", got)
	}
}

func TestCanvasStaysInsideArea(t *testing.T) {
	buf := opaque(t, 4, 4, color.NRGBA{255, 0, 0, 255})
	tr := view.New(4, 4, 4, 4)
	dst := image.NewRGBA(image.Rect(0, 0, 10, 10))
	Canvas(dst, image.Rect(3, 3, 7, 7), buf, tr, Options{})
	if got := dst.RGBAAt(2, 2); got != (color.RGBA{}) {
		t.Fatalf("outside area = %v", got)
	}
	if got := dst.RGBAAt(3, 3); got != (color.RGBA{255, 0, 0, 255}) {
		t.Fatalf("area origin = %v", got)
	}
}
