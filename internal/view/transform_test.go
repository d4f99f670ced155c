package view

import (
	"errors"
	"image"
	"testing"
)

func TestScaleFollowsZoom(t *testing.T) {
	tr := New(10, 10, 100, 100)
	for z, want := range map[int]int{1: 1, 2: 2, 3: 4, 4: 8} {
		if err := tr.SetZoom(z); err != nil {
			t.Fatalf("SetZoom(%d): %v", z, err)
		}
		if tr.Scale() != want {
			t.Errorf("zoom %d scale %d, want %d", z, tr.Scale(), want)
		}
	}
}

func TestInvalidZoomKeepsPrevious(t *testing.T) {
	tr := New(10, 10, 100, 100)
	if err := tr.SetZoom(3); err != nil {
		t.Fatal(err)
	}
	for _, z := range []int{0, -1, MaxZoom + 1} {
		if err := tr.SetZoom(z); !errors.Is(err, ErrInvalidZoom) {
			t.Errorf("SetZoom(%d) err = %v", z, err)
		}
	}
	if tr.Zoom() != 3 {
		t.Fatalf("zoom = %d, want 3", tr.Zoom())
	}
}

func TestImageCenteredWhenSmaller(t *testing.T) {
	tr := New(10, 10, 20, 20)
	if got := tr.Origin(); got != image.Pt(5, 5) {
		t.Fatalf("origin = %v", got)
	}
	if got := tr.ToImage(image.Pt(5, 5)); got != image.Pt(0, 0) {
		t.Fatalf("ToImage = %v", got)
	}
	if got := tr.ToImage(image.Pt(4, 14)); got != image.Pt(-1, 9) {
		t.Fatalf("ToImage = %v", got)
	}
}

func TestZoomResetsScrollWhenImageFits(t *testing.T) {
	tr := New(10, 10, 20, 20)
	tr.SetZoom(3)
	tr.Wheel(3, false)
	tr.Wheel(3, true)
	if tr.Scroll() == (image.Point{}) {
		t.Fatal("expected scroll once the image overflows")
	}
	tr.SetZoom(1)
	if tr.Scroll() != (image.Point{}) {
		t.Fatalf("scroll = %v, want zero when extent fits", tr.Scroll())
	}
}

func TestZoomClampsFlush(t *testing.T) {
	tr := New(10, 10, 20, 20)
	tr.SetZoom(3) // extent 40
	for i := 0; i < 100; i++ {
		tr.Wheel(1, false)
	}
	r := tr.ImageRect()
	if r.Max.Y != 20 {
		t.Fatalf("bottom edge %d, want flush at 20", r.Max.Y)
	}
	for i := 0; i < 100; i++ {
		tr.Wheel(-1, false)
	}
	if tr.ImageRect().Min.Y != 0 {
		t.Fatalf("top edge %d, want flush at 0", tr.ImageRect().Min.Y)
	}
	// Zooming out to an extent still larger than the viewport keeps edges flush.
	tr.SetZoom(4) // extent 80
	for i := 0; i < 100; i++ {
		tr.Wheel(1, false)
	}
	tr.SetZoom(3)
	if got := tr.ImageRect(); got.Max.Y < 20 || got.Min.Y > 0 {
		t.Fatalf("image rect %v leaves a gap in the viewport", got)
	}
}

func TestWheelNoopWhenFits(t *testing.T) {
	tr := New(10, 10, 20, 20)
	if tr.Wheel(5, false) || tr.Wheel(5, true) {
		t.Fatal("wheel scrolled an image that fits")
	}
	if tr.Scroll() != (image.Point{}) {
		t.Fatalf("scroll = %v", tr.Scroll())
	}
}

func TestWheelAxesIndependent(t *testing.T) {
	tr := New(10, 100, 50, 50) // only vertical overflow
	if tr.Wheel(2, true) {
		t.Fatal("horizontal wheel moved a fitting axis")
	}
	if !tr.Wheel(2, false) {
		t.Fatal("vertical wheel did not scroll")
	}
	if got := tr.Scroll(); got != image.Pt(0, -4) {
		t.Fatalf("scroll = %v, want (0,-4)", got)
	}
}

func TestToDeviceRoundTrip(t *testing.T) {
	tr := New(16, 16, 40, 30)
	tr.SetZoom(3)
	tr.Wheel(1.4, false)
	for _, p := range []image.Point{{0, 0}, {3, 7}, {15, 15}} {
		d := tr.ToDevice(p)
		if got := tr.ToImage(d); got != p {
			t.Errorf("ToImage(ToDevice(%v)) = %v", p, got)
		}
		if got := tr.ToImage(d.Add(image.Pt(3, 3))); got != p {
			t.Errorf("inside cell %v mapped to %v", p, got)
		}
	}
}

func TestHoverCell(t *testing.T) {
	tr := New(4, 4, 8, 8)
	tr.SetZoom(2)
	r, ok := tr.HoverCell(image.Pt(1, 1))
	if !ok || r != image.Rect(0, 0, 2, 2) {
		t.Fatalf("HoverCell = %v %v", r, ok)
	}
	if _, ok := tr.HoverCell(image.Pt(-1, 0)); ok {
		t.Fatal("hover outside image")
	}
}

func TestResizeReclamps(t *testing.T) {
	tr := New(10, 10, 5, 5)
	for i := 0; i < 10; i++ {
		tr.Wheel(1, false)
	}
	tr.Resize(50, 50)
	if tr.Scroll() != (image.Point{}) {
		t.Fatalf("scroll = %v after growing the viewport", tr.Scroll())
	}
}

func TestFitZoom(t *testing.T) {
	tr := New(10, 10, 45, 90)
	if got := tr.FitZoom(); got != 3 {
		t.Fatalf("FitZoom = %d, want 3", got)
	}
	if got := New(100, 100, 10, 10).FitZoom(); got != 1 {
		t.Fatalf("FitZoom = %d, want 1", got)
	}
}

func TestSetImageSizeResetsZoom(t *testing.T) {
	tr := New(10, 10, 20, 20)
	tr.SetZoom(4)
	tr.SetImageSize(3, 3)
	if tr.Zoom() != 1 || tr.Scroll() != (image.Point{}) {
		t.Fatalf("zoom %d scroll %v", tr.Zoom(), tr.Scroll())
	}
}
