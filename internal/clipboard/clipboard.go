// Package clipboard exchanges images and text with the system clipboard.
// Images travel as PNG.
package clipboard

import (
	"bytes"
	"errors"
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	"github.com/example/pixelpad/internal/pixels"
)

// ErrEmpty is returned when the clipboard holds no data of the wanted kind.
var ErrEmpty = errors.New("clipboard does not contain the requested data")

// WriteImage encodes img as PNG and publishes it to the clipboard.
func WriteImage(img image.Image) error {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return fmt.Errorf("encode clipboard image: %w", err)
	}
	return writePNG(buf.Bytes())
}

// ReadImage retrieves PNG data from the clipboard and decodes it.
func ReadImage() (image.Image, error) {
	data, err := readPNG()
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("image: %w", ErrEmpty)
	}
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode clipboard image: %w", err)
	}
	return img, nil
}

// CopyBuffer publishes the pixel buffer.
func CopyBuffer(b *pixels.Buffer) error { return WriteImage(b.Image()) }

// PasteBuffer reads the clipboard image into a new buffer.
func PasteBuffer() (*pixels.Buffer, error) {
	img, err := ReadImage()
	if err != nil {
		return nil, err
	}
	return pixels.FromImage(img)
}

// WriteText writes text data to the clipboard.
func WriteText(text string) error { return writeText(text) }

// ReadText returns UTF-8 text data from the clipboard.
func ReadText() (string, error) {
	s, err := readText()
	if err != nil {
		return "", err
	}
	if s == "" {
		return "", fmt.Errorf("text: %w", ErrEmpty)
	}
	return s, nil
}
