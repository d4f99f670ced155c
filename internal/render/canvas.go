// Package render composites the image under edit into a viewport.
package render

import (
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"

	"github.com/example/pixelpad/internal/pixels"
	"github.com/example/pixelpad/internal/theme"
	"github.com/example/pixelpad/internal/view"
)

// CheckerSize is the side of one checkerboard square in device pixels.
const CheckerSize = 8

// Options controls optional canvas decorations.
type Options struct {
	Theme *theme.Theme
	// Hover, when set, outlines the image pixel under this device position.
	// The outline is only drawn once a pixel is at least 4 device pixels wide.
	Hover *image.Point
}

// Canvas draws buf as seen through t into area of dst. Device coordinates
// of t are relative to area.Min. Nothing outside area is touched.
func Canvas(dst *image.RGBA, area image.Rectangle, buf *pixels.Buffer, t *view.Transform, opts Options) {
	th := opts.Theme
	if th == nil {
		th = theme.Default()
	}
	area = area.Intersect(dst.Bounds())
	if area.Empty() {
		return
	}
	clip := dst.SubImage(area).(*image.RGBA)
	draw.Draw(clip, area, image.NewUniform(th.Background), image.Point{}, draw.Src)

	imgRect := t.ImageRect().Add(area.Min)
	visible := imgRect.Intersect(area)
	if visible.Empty() {
		return
	}
	drawCheckerboard(clip, visible, imgRect.Min, CheckerSize, th.CheckerLight, th.CheckerDark)
	xdraw.NearestNeighbor.Scale(clip, imgRect, buf.Image(), buf.Bounds(), draw.Over, nil)

	if opts.Hover != nil && t.Scale() >= 4 {
		if cell, ok := t.HoverCell(*opts.Hover); ok {
			drawDashedRect(clip, cell.Add(area.Min), 2, th.HoverLight, th.HoverDark)
		}
	}
}

// Snapshot renders the full viewport of t into a new image.
func Snapshot(buf *pixels.Buffer, t *view.Transform, opts Options) *image.RGBA {
	vp := t.Viewport()
	out := image.NewRGBA(image.Rect(0, 0, vp.X, vp.Y))
	Canvas(out, out.Bounds(), buf, t, opts)
	return out
}

// drawCheckerboard fills rect of dst with squares of size anchored at origin.
func drawCheckerboard(dst *image.RGBA, rect image.Rectangle, origin image.Point, size int, light, dark color.Color) {
	lu, du := image.NewUniform(light), image.NewUniform(dark)
	startX := rect.Min.X - mod(rect.Min.X-origin.X, size)
	startY := rect.Min.Y - mod(rect.Min.Y-origin.Y, size)
	for y := startY; y < rect.Max.Y; y += size {
		for x := startX; x < rect.Max.X; x += size {
			sq := image.Rect(x, y, x+size, y+size).Intersect(rect)
			src := lu
			if (((x-origin.X)/size)+((y-origin.Y)/size))%2 != 0 {
				src = du
			}
			draw.Draw(dst, sq, src, image.Point{}, draw.Src)
		}
	}
}

// drawDashedRect outlines r with alternating dash segments of c1 and c2.
func drawDashedRect(dst *image.RGBA, r image.Rectangle, dash int, c1, c2 color.RGBA) {
	if r.Empty() {
		return
	}
	pick := func(i int) color.RGBA {
		if (i/dash)%2 == 0 {
			return c1
		}
		return c2
	}
	for x := r.Min.X; x < r.Max.X; x++ {
		dst.SetRGBA(x, r.Min.Y, pick(x-r.Min.X))
		dst.SetRGBA(x, r.Max.Y-1, pick(x-r.Min.X+1))
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		dst.SetRGBA(r.Min.X, y, pick(y-r.Min.Y+1))
		dst.SetRGBA(r.Max.X-1, y, pick(y-r.Min.Y))
	}
}

func mod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
