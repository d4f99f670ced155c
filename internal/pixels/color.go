package pixels

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// DefaultEraseColor is the sentinel written by the eraser. It is kept apart
// from the zero value so erased cells differ from cells never painted.
var DefaultEraseColor = color.NRGBA{R: 0, G: 0, B: 0, A: 1}

// ParseColor accepts a CSS color name, #RRGGBB or #RRGGBBAA.
func ParseColor(spec string) (color.NRGBA, error) {
	s := strings.TrimSpace(spec)
	if s == "" {
		return color.NRGBA{}, fmt.Errorf("empty color")
	}
	if strings.HasPrefix(s, "#") {
		return parseHex(strings.TrimPrefix(s, "#"))
	}
	if named, ok := colornames.Map[strings.ToLower(s)]; ok {
		return color.NRGBA{R: named.R, G: named.G, B: named.B, A: named.A}, nil
	}
	if strings.EqualFold(s, "transparent") {
		return color.NRGBA{}, nil
	}
	return color.NRGBA{}, fmt.Errorf("unknown color %q", spec)
}

func parseHex(hex string) (color.NRGBA, error) {
	switch len(hex) {
	case 6, 8:
	default:
		return color.NRGBA{}, fmt.Errorf("invalid hex length %d", len(hex))
	}
	val, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	if len(hex) == 6 {
		return color.NRGBA{R: uint8(val >> 16), G: uint8(val >> 8), B: uint8(val), A: 255}, nil
	}
	return color.NRGBA{R: uint8(val >> 24), G: uint8(val >> 16), B: uint8(val >> 8), A: uint8(val)}, nil
}

// FormatColor renders c as #RRGGBB, or #RRGGBBAA when not opaque.
func FormatColor(c color.NRGBA) string {
	if c.A == 255 {
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}

// ToNRGBA converts any color to its non-premultiplied form.
func ToNRGBA(c color.Color) color.NRGBA {
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}
