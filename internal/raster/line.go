// Package raster turns geometry into pixel coordinates.
package raster

import (
	"image"
	"slices"
)

// Line returns every pixel on the integer path from (x0, y0) to (x1, y1)
// inclusive, max(|dx|, |dy|)+1 points in all. Swapping the endpoints yields
// the same points in reverse order. Points are not bounds checked.
func Line(x0, y0, x1, y1 int) []image.Point {
	if x1 < x0 || (x1 == x0 && y1 < y0) {
		pts := bresenham(x1, y1, x0, y0)
		slices.Reverse(pts)
		return pts
	}
	return bresenham(x0, y0, x1, y1)
}

func bresenham(x0, y0, x1, y1 int) []image.Point {
	w, h := x1-x0, y1-y0
	dx1, dy1 := sign(w), sign(h)
	dx2, dy2 := sign(w), 0
	longest, shortest := abs(w), abs(h)
	if longest <= shortest {
		longest, shortest = shortest, longest
		dx2, dy2 = 0, sign(h)
	}
	pts := make([]image.Point, 0, longest+1)
	numerator := longest >> 1
	x, y := x0, y0
	for i := 0; i <= longest; i++ {
		pts = append(pts, image.Pt(x, y))
		numerator += shortest
		if numerator >= longest {
			numerator -= longest
			x += dx1
			y += dy1
		} else {
			x += dx2
			y += dy2
		}
	}
	return pts
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
