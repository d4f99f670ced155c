package raster

import (
	"image"
	"image/color"

	"github.com/example/pixelpad/internal/pixels"
)

// FloodFill returns the 4-connected region around seed whose cells equal
// target exactly, alpha included, in discovery order. It uses a queue so
// regions the size of the whole buffer cannot exhaust the stack. A seed
// outside the buffer or not matching target yields nothing.
func FloodFill(buf *pixels.Buffer, seed image.Point, target color.NRGBA) []image.Point {
	if !buf.In(seed.X, seed.Y) || buf.At(seed.X, seed.Y) != target {
		return nil
	}
	w, h := buf.Width(), buf.Height()
	visited := make([]bool, w*h)
	queue := []image.Point{seed}
	visited[seed.Y*w+seed.X] = true
	for head := 0; head < len(queue); head++ {
		p := queue[head]
		for _, n := range [4]image.Point{
			{p.X, p.Y - 1},
			{p.X + 1, p.Y},
			{p.X, p.Y + 1},
			{p.X - 1, p.Y},
		} {
			if n.X < 0 || n.Y < 0 || n.X >= w || n.Y >= h {
				continue
			}
			i := n.Y*w + n.X
			if visited[i] || buf.At(n.X, n.Y) != target {
				continue
			}
			visited[i] = true
			queue = append(queue, n)
		}
	}
	return queue
}
