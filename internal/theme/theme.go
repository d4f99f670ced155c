// Package theme holds the colors used to draw the editor window.
package theme

import (
	"embed"
	"fmt"
	"image/color"
	"reflect"
	"strings"

	"github.com/example/pixelpad/internal/pixels"
)

// EmbeddedThemes holds the themes shipped with the binary.
//
//go:embed defaults/*.theme
var EmbeddedThemes embed.FS

// Theme defines the color palette for the editor window.
type Theme struct {
	Name string

	// General
	Background color.RGBA // Behind the canvas
	Foreground color.RGBA

	// Toolbar
	ToolbarBackground      color.RGBA
	ButtonBackground       color.RGBA
	ButtonBackgroundHover  color.RGBA
	ButtonBackgroundActive color.RGBA
	ButtonText             color.RGBA
	ButtonBorder           color.RGBA

	// Status bar
	StatusBackground color.RGBA
	StatusText       color.RGBA

	// Canvas
	CheckerLight color.RGBA // Shown through transparent pixels
	CheckerDark  color.RGBA
	HoverLight   color.RGBA // Outline of the pixel under the pointer
	HoverDark    color.RGBA
}

// Default returns the hardcoded default theme (fallback).
func Default() *Theme {
	return &Theme{
		Name:                   "Default",
		Background:             color.RGBA{0x55, 0x55, 0x5A, 255},
		Foreground:             color.RGBA{0, 0, 0, 255},
		ToolbarBackground:      color.RGBA{220, 220, 220, 255},
		ButtonBackground:       color.RGBA{200, 200, 200, 255},
		ButtonBackgroundHover:  color.RGBA{180, 180, 180, 255},
		ButtonBackgroundActive: color.RGBA{150, 150, 150, 255},
		ButtonText:             color.RGBA{0, 0, 0, 255},
		ButtonBorder:           color.RGBA{0, 0, 0, 255},
		StatusBackground:       color.RGBA{220, 220, 220, 255},
		StatusText:             color.RGBA{0, 0, 0, 255},
		CheckerLight:           color.RGBA{255, 255, 255, 255},
		CheckerDark:            color.RGBA{0xCC, 0xCC, 0xD2, 255},
		HoverLight:             color.RGBA{255, 255, 255, 255},
		HoverDark:              color.RGBA{0, 0, 0, 255},
	}
}

var rgbaType = reflect.TypeOf(color.RGBA{})

// SetField assigns a color field by case-insensitive name. Unknown keys are
// ignored for forward compatibility.
func SetField(t *Theme, key, value string) error {
	if strings.EqualFold(key, "Name") {
		t.Name = value
		return nil
	}
	val := reflect.ValueOf(t).Elem()
	typ := val.Type()
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if !strings.EqualFold(f.Name, key) || f.Type != rgbaType {
			continue
		}
		c, err := pixels.ParseColor(value)
		if err != nil {
			return fmt.Errorf("invalid color for key %s: %w", key, err)
		}
		val.Field(i).Set(reflect.ValueOf(color.RGBAModel.Convert(c).(color.RGBA)))
		return nil
	}
	return nil
}

// String renders the theme in the format read by Parse.
func (t *Theme) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Name: %s\n", t.Name)
	val := reflect.ValueOf(t).Elem()
	typ := val.Type()
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if f.Type != rgbaType {
			continue
		}
		c := val.Field(i).Interface().(color.RGBA)
		fmt.Fprintf(&sb, "%s: %s\n", f.Name, pixels.FormatColor(pixels.ToNRGBA(c)))
	}
	return sb.String()
}
