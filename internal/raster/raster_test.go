package raster

import (
	"image"
	"image/color"
	"slices"
	"testing"

	"github.com/example/pixelpad/internal/pixels"
)

func TestLineDegenerate(t *testing.T) {
	pts := Line(3, 4, 3, 4)
	if len(pts) != 1 || pts[0] != image.Pt(3, 4) {
		t.Fatalf("Line(p,p) = %v", pts)
	}
}

func TestLineAllOctants(t *testing.T) {
	ends := []image.Point{
		{7, 2}, {2, 7}, {-2, 7}, {-7, 2},
		{-7, -2}, {-2, -7}, {2, -7}, {7, -2},
		{5, 0}, {0, 5}, {-5, 0}, {0, -5}, {4, 4}, {-4, 4},
	}
	for _, e := range ends {
		pts := Line(0, 0, e.X, e.Y)
		want := max(abs(e.X), abs(e.Y)) + 1
		if len(pts) != want {
			t.Errorf("Line to %v: %d points, want %d", e, len(pts), want)
			continue
		}
		if pts[0] != image.Pt(0, 0) || pts[len(pts)-1] != e {
			t.Errorf("Line to %v: endpoints %v %v", e, pts[0], pts[len(pts)-1])
		}
		for i := 1; i < len(pts); i++ {
			d := pts[i].Sub(pts[i-1])
			if abs(d.X) > 1 || abs(d.Y) > 1 || d == (image.Point{}) {
				t.Errorf("Line to %v: gap between %v and %v", e, pts[i-1], pts[i])
			}
		}
	}
}

func TestLineReversalSymmetric(t *testing.T) {
	for x0 := -3; x0 <= 3; x0++ {
		for y0 := -3; y0 <= 3; y0++ {
			for _, p1 := range []image.Point{{5, 2}, {-4, 6}, {1, -5}, {0, 0}, {6, 6}} {
				fwd := Line(x0, y0, p1.X, p1.Y)
				back := Line(p1.X, p1.Y, x0, y0)
				slices.Reverse(back)
				if !slices.Equal(fwd, back) {
					t.Fatalf("(%d,%d)-%v not symmetric: %v vs %v", x0, y0, p1, fwd, back)
				}
			}
		}
	}
}

func TestLineKnownShape(t *testing.T) {
	got := Line(0, 0, 4, 2)
	want := []image.Point{{0, 0}, {1, 1}, {2, 1}, {3, 2}, {4, 2}}
	if !slices.Equal(got, want) {
		t.Fatalf("Line = %v, want %v", got, want)
	}
}

func filled(t *testing.T, w, h int, c color.NRGBA) *pixels.Buffer {
	t.Helper()
	b, err := pixels.New(w, h)
	if err != nil {
		t.Fatal(err)
	}
	b.Fill(c)
	return b
}

func TestFloodFillWholeBuffer(t *testing.T) {
	white := color.NRGBA{255, 255, 255, 255}
	b := filled(t, 4, 4, white)
	pts := FloodFill(b, image.Pt(0, 0), white)
	if len(pts) != 16 {
		t.Fatalf("filled %d points, want 16", len(pts))
	}
	seen := map[image.Point]bool{}
	for _, p := range pts {
		if seen[p] {
			t.Fatalf("%v visited twice", p)
		}
		seen[p] = true
	}
	if pts[0] != image.Pt(0, 0) {
		t.Fatalf("first point %v, want seed", pts[0])
	}
}

func TestFloodFillRespectsBoundary(t *testing.T) {
	white := color.NRGBA{255, 255, 255, 255}
	wall := color.NRGBA{0, 0, 0, 255}
	b := filled(t, 5, 5, white)
	for y := 0; y < 5; y++ {
		b.Set(2, y, wall)
	}
	pts := FloodFill(b, image.Pt(0, 0), white)
	if len(pts) != 10 {
		t.Fatalf("filled %d points, want 10", len(pts))
	}
	for _, p := range pts {
		if b.At(p.X, p.Y) != white || p.X >= 2 {
			t.Fatalf("visited %v outside region", p)
		}
	}
}

func TestFloodFillIgnoresDiagonals(t *testing.T) {
	white := color.NRGBA{255, 255, 255, 255}
	b := filled(t, 2, 2, color.NRGBA{0, 0, 0, 255})
	b.Set(0, 0, white)
	b.Set(1, 1, white)
	if got := FloodFill(b, image.Pt(0, 0), white); len(got) != 1 {
		t.Fatalf("filled %v, want only the seed", got)
	}
}

func TestFloodFillAlphaMatters(t *testing.T) {
	b := filled(t, 3, 1, color.NRGBA{10, 10, 10, 255})
	b.Set(1, 0, color.NRGBA{10, 10, 10, 254})
	if got := FloodFill(b, image.Pt(0, 0), color.NRGBA{10, 10, 10, 255}); len(got) != 1 {
		t.Fatalf("filled %v, want only the seed", got)
	}
}

func TestFloodFillMismatchedSeed(t *testing.T) {
	b := filled(t, 2, 2, color.NRGBA{1, 1, 1, 255})
	if got := FloodFill(b, image.Pt(0, 0), color.NRGBA{}); got != nil {
		t.Fatalf("got %v", got)
	}
	if got := FloodFill(b, image.Pt(-1, 0), color.NRGBA{1, 1, 1, 255}); got != nil {
		t.Fatalf("out of range seed got %v", got)
	}
}

func TestFloodFillLargeRegion(t *testing.T) {
	c := color.NRGBA{0, 0, 0, 0}
	b := filled(t, 1024, 1024, c)
	if got := len(FloodFill(b, image.Pt(512, 512), c)); got != 1024*1024 {
		t.Fatalf("filled %d", got)
	}
}
