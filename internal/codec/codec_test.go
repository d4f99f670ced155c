package codec

import (
	"bytes"
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/example/pixelpad/internal/pixels"
)

func sample(t *testing.T) *pixels.Buffer {
	t.Helper()
	b, err := pixels.New(3, 2)
	if err != nil {
		t.Fatal(err)
	}
	b.Set(0, 0, color.NRGBA{255, 0, 0, 255})
	b.Set(2, 1, color.NRGBA{0, 0, 255, 128})
	return b
}

func TestPNGPreservesPixels(t *testing.T) {
	b := sample(t)
	var out bytes.Buffer
	if err := Encode(&out, b, PNG); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := Decode(&out)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !got.Equal(b) {
		t.Fatal("decoded pixels differ")
	}
}

func TestDecodeGarbage(t *testing.T) {
	if _, err := Decode(bytes.NewReader([]byte("not an image"))); err == nil {
		t.Fatal("expected error")
	}
}

func TestFormatFromPath(t *testing.T) {
	cases := map[string]Format{"a.png": PNG, "b.JPG": JPEG, "c.jpeg": JPEG, "d.gif": GIF, "e.bmp": BMP, "f.tif": TIFF}
	for path, want := range cases {
		got, err := FormatFromPath(path)
		if err != nil || got != want {
			t.Errorf("FormatFromPath(%q) = %v, %v", path, got, err)
		}
	}
	if _, err := FormatFromPath("noext"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("err = %v", err)
	}
	if f, err := ParseFormat(".png"); err != nil || f != PNG {
		t.Fatalf("ParseFormat = %v, %v", f, err)
	}
}

func TestSaveLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.png")
	b := sample(t)
	if err := Save(path, b); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !got.Equal(b) {
		t.Fatal("round trip through disk differs")
	}
	if err := Save(filepath.Join(dir, "out.xyz"), b); err == nil {
		t.Fatal("expected unsupported format error")
	}
	if _, err := os.Stat(filepath.Join(dir, "out.xyz")); !os.IsNotExist(err) {
		t.Fatal("unsupported save left a file behind")
	}
}
