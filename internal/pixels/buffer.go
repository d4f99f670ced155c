// Package pixels holds the mutable RGBA grid an editing session works on.
package pixels

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
)

// ErrDimensions is returned when a pixel grid does not match its declared size.
var ErrDimensions = errors.New("invalid image dimensions")

// MaxSide bounds either side of a buffer.
const MaxSide = 1 << 14

// Buffer is a width x height grid of non-premultiplied RGBA values. The zero
// value of every cell is transparent black, meaning "never painted".
type Buffer struct {
	img *image.NRGBA
}

// New allocates a zero-initialised buffer.
func New(width, height int) (*Buffer, error) {
	if err := checkSize(width, height); err != nil {
		return nil, err
	}
	return &Buffer{img: image.NewNRGBA(image.Rect(0, 0, width, height))}, nil
}

// FromImage copies img into a new buffer whose origin is (0,0).
func FromImage(img image.Image) (*Buffer, error) {
	if img == nil {
		return nil, fmt.Errorf("nil image: %w", ErrDimensions)
	}
	r := img.Bounds()
	b, err := New(r.Dx(), r.Dy())
	if err != nil {
		return nil, err
	}
	if src, ok := img.(*image.NRGBA); ok {
		w := r.Dx() * 4
		for y := 0; y < r.Dy(); y++ {
			off := src.PixOffset(r.Min.X, r.Min.Y+y)
			copy(b.img.Pix[y*b.img.Stride:y*b.img.Stride+w], src.Pix[off:off+w])
		}
		return b, nil
	}
	draw.Draw(b.img, b.img.Bounds(), img, r.Min, draw.Src)
	return b, nil
}

// FromPix builds a buffer from a raw row-major NRGBA byte grid.
func FromPix(width, height int, pix []byte) (*Buffer, error) {
	if err := checkSize(width, height); err != nil {
		return nil, err
	}
	if len(pix) != width*height*4 {
		return nil, fmt.Errorf("%w: %d bytes for %dx%d", ErrDimensions, len(pix), width, height)
	}
	b := &Buffer{img: image.NewNRGBA(image.Rect(0, 0, width, height))}
	copy(b.img.Pix, pix)
	return b, nil
}

func checkSize(width, height int) error {
	if width <= 0 || height <= 0 || width > MaxSide || height > MaxSide {
		return fmt.Errorf("%w: %dx%d", ErrDimensions, width, height)
	}
	return nil
}

// Width returns the number of columns.
func (b *Buffer) Width() int { return b.img.Rect.Dx() }

// Height returns the number of rows.
func (b *Buffer) Height() int { return b.img.Rect.Dy() }

// Bounds returns the buffer rectangle anchored at the origin.
func (b *Buffer) Bounds() image.Rectangle { return b.img.Rect }

// In reports whether (x, y) addresses a cell.
func (b *Buffer) In(x, y int) bool {
	return x >= 0 && y >= 0 && x < b.img.Rect.Max.X && y < b.img.Rect.Max.Y
}

// At returns the color at (x, y). Out of range reads return the zero color.
func (b *Buffer) At(x, y int) color.NRGBA {
	if !b.In(x, y) {
		return color.NRGBA{}
	}
	return b.img.NRGBAAt(x, y)
}

// Set writes c at (x, y). Out of range writes are ignored.
func (b *Buffer) Set(x, y int, c color.NRGBA) {
	if !b.In(x, y) {
		return
	}
	b.img.SetNRGBA(x, y, c)
}

// Fill paints every cell with c.
func (b *Buffer) Fill(c color.NRGBA) {
	draw.Draw(b.img, b.img.Rect, image.NewUniform(c), image.Point{}, draw.Src)
}

// Image exposes the backing image. Writes through it bypass edit history.
func (b *Buffer) Image() *image.NRGBA { return b.img }

// Pix returns a copy of the raw row-major pixel bytes.
func (b *Buffer) Pix() []byte {
	out := make([]byte, len(b.img.Pix))
	copy(out, b.img.Pix)
	return out
}

// Clone returns an independent copy.
func (b *Buffer) Clone() *Buffer {
	c := &Buffer{img: image.NewNRGBA(b.img.Rect)}
	copy(c.img.Pix, b.img.Pix)
	return c
}

// Equal reports whether both buffers have the same size and contents.
func (b *Buffer) Equal(o *Buffer) bool {
	if b == nil || o == nil {
		return b == o
	}
	if b.img.Rect != o.img.Rect || len(b.img.Pix) != len(o.img.Pix) {
		return false
	}
	for i := range b.img.Pix {
		if b.img.Pix[i] != o.img.Pix[i] {
			return false
		}
	}
	return true
}
