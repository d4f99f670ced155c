// Package view maps between device (window) pixels and image pixels.
package view

import (
	"errors"
	"fmt"
	"image"
	"math"
)

// ErrInvalidZoom is returned for zoom levels outside 1..MaxZoom.
var ErrInvalidZoom = errors.New("invalid zoom level")

// MaxZoom is the highest accepted zoom level (scale 512).
const MaxZoom = 10

// WheelStep converts wheel rotation units to device pixels.
const WheelStep = 2

// Transform tracks zoom and scroll for one image inside one viewport. The
// image is centered in the viewport and then shifted by the scroll offset.
// When the scaled image is larger than the viewport along an axis the scroll
// keeps its edges flush with the viewport; otherwise scroll on that axis is 0.
type Transform struct {
	zoom   int
	img    image.Point
	view   image.Point
	scroll image.Point
}

// New returns a transform at zoom 1 with no scroll.
func New(imgW, imgH, viewW, viewH int) *Transform {
	return &Transform{
		zoom: 1,
		img:  image.Pt(imgW, imgH),
		view: image.Pt(viewW, viewH),
	}
}

// Zoom returns the zoom level.
func (t *Transform) Zoom() int { return t.zoom }

// Scale is the magnification for the zoom level, 2^(zoom-1).
func (t *Transform) Scale() int { return 1 << (t.zoom - 1) }

// Extent is the image size in device pixels.
func (t *Transform) Extent() image.Point { return t.img.Mul(t.Scale()) }

// Viewport returns the viewport size.
func (t *Transform) Viewport() image.Point { return t.view }

// ImageSize returns the image size in image pixels.
func (t *Transform) ImageSize() image.Point { return t.img }

// Scroll returns the current scroll offset.
func (t *Transform) Scroll() image.Point { return t.scroll }

// Origin is the device position of image pixel (0,0).
func (t *Transform) Origin() image.Point {
	return t.base().Add(t.scroll)
}

func (t *Transform) base() image.Point {
	ext := t.Extent()
	return image.Pt(t.view.X/2-ext.X/2, t.view.Y/2-ext.Y/2)
}

// ImageRect is the device rectangle covered by the image.
func (t *Transform) ImageRect() image.Rectangle {
	o := t.Origin()
	return image.Rectangle{Min: o, Max: o.Add(t.Extent())}
}

// ToImage maps a device position to the image pixel under it. The result
// may lie outside the image.
func (t *Transform) ToImage(device image.Point) image.Point {
	d := device.Sub(t.Origin())
	s := t.Scale()
	return image.Pt(floorDiv(d.X, s), floorDiv(d.Y, s))
}

// ToDevice maps an image pixel to the device position of its top-left corner.
func (t *Transform) ToDevice(p image.Point) image.Point {
	return t.Origin().Add(p.Mul(t.Scale()))
}

// HoverCell returns the device rectangle of the image pixel under device,
// and false when the pointer is outside the image.
func (t *Transform) HoverCell(device image.Point) (image.Rectangle, bool) {
	p := t.ToImage(device)
	if p.X < 0 || p.Y < 0 || p.X >= t.img.X || p.Y >= t.img.Y {
		return image.Rectangle{}, false
	}
	tl := t.ToDevice(p)
	s := t.Scale()
	return image.Rectangle{Min: tl, Max: tl.Add(image.Pt(s, s))}, true
}

// SetZoom changes the zoom level. Invalid levels are rejected and the
// current level is kept.
func (t *Transform) SetZoom(z int) error {
	if z <= 0 || z > MaxZoom {
		return fmt.Errorf("%w: %d", ErrInvalidZoom, z)
	}
	t.zoom = z
	t.clamp()
	return nil
}

// FitZoom returns the largest zoom level at which the whole image fits the
// viewport, never less than 1.
func (t *Transform) FitZoom() int {
	z := 1
	for z < MaxZoom {
		s := 1 << z
		if t.img.X*s > t.view.X || t.img.Y*s > t.view.Y {
			break
		}
		z++
	}
	return z
}

// Resize changes the viewport size.
func (t *Transform) Resize(w, h int) {
	t.view = image.Pt(w, h)
	t.clamp()
}

// SetImageSize replaces the image dimensions and resets zoom and scroll.
func (t *Transform) SetImageSize(w, h int) {
	t.img = image.Pt(w, h)
	t.zoom = 1
	t.scroll = image.Point{}
}

// Wheel scrolls by delta wheel units along one axis. It reports whether the
// scroll offset changed; an axis where the image fits the viewport does not
// scroll.
func (t *Transform) Wheel(delta float64, horizontal bool) bool {
	amount := int(math.Round(delta * WheelStep))
	if amount == 0 {
		return false
	}
	prev := t.scroll
	if horizontal {
		t.scroll.X -= amount
	} else {
		t.scroll.Y -= amount
	}
	t.clamp()
	return t.scroll != prev
}

// ScrollBy shifts the scroll offset by d device pixels, subject to clamping.
func (t *Transform) ScrollBy(d image.Point) bool {
	prev := t.scroll
	t.scroll = t.scroll.Add(d)
	t.clamp()
	return t.scroll != prev
}

func (t *Transform) clamp() {
	ext := t.Extent()
	base := t.base()
	t.scroll.X = clampAxis(t.scroll.X, base.X, ext.X, t.view.X)
	t.scroll.Y = clampAxis(t.scroll.Y, base.Y, ext.Y, t.view.Y)
}

// clampAxis keeps origin = base+scroll within [view-ext, 0].
func clampAxis(scroll, base, ext, view int) int {
	if ext <= view {
		return 0
	}
	lo := view - ext - base
	hi := -base
	if scroll < lo {
		return lo
	}
	if scroll > hi {
		return hi
	}
	return scroll
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
