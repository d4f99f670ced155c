// Package codec converts between encoded image files and pixel buffers.
package codec

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"

	"github.com/example/pixelpad/internal/pixels"
)

// ErrUnsupportedFormat is returned for formats that cannot be written.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// Format identifies an encoding.
type Format = imaging.Format

// Formats that can be written.
const (
	PNG  = imaging.PNG
	JPEG = imaging.JPEG
	GIF  = imaging.GIF
	BMP  = imaging.BMP
	TIFF = imaging.TIFF
)

// JPEGQuality is used when writing JPEG files.
const JPEGQuality = 95

// ParseFormat resolves a format name or extension such as "png" or ".jpg".
func ParseFormat(name string) (Format, error) {
	n := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(name), "."))
	f, err := imaging.FormatFromExtension(n)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
	return f, nil
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	f, err := imaging.FormatFromFilename(path)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	return f, nil
}

// Decode reads any registered image format, applying EXIF orientation, and
// returns a new buffer.
func Decode(r io.Reader) (*pixels.Buffer, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	buf, err := pixels.FromImage(img)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return buf, nil
}

// Encode writes buf in format f.
func Encode(w io.Writer, buf *pixels.Buffer, f Format) error {
	if err := imaging.Encode(w, buf.Image(), f, imaging.JPEGQuality(JPEGQuality)); err != nil {
		return fmt.Errorf("encode %s: %w", f, err)
	}
	return nil
}

// Load decodes the file at path.
func Load(path string) (*pixels.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			log.Printf("closing %s: %v", path, cerr)
		}
	}()
	buf, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return buf, nil
}

// Save encodes buf into path, choosing the format from its extension.
func Save(path string, buf *pixels.Buffer) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Encode(out, buf, format); err != nil {
		if cerr := out.Close(); cerr != nil {
			log.Printf("save: closing file: %v", cerr)
		}
		return err
	}
	return out.Close()
}
