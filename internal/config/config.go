package config

import (
	"fmt"
	"image/color"
	"sort"
	"strings"

	"github.com/example/pixelpad/internal/pixels"
	"github.com/example/pixelpad/internal/theme"
)

// Notify holds notification settings.
type Notify struct {
	Save bool
	Copy bool
}

// Canvas holds the defaults for new images and the view.
type Canvas struct {
	Width  int
	Height int
	Zoom   int
}

// Tools holds the drawing defaults.
type Tools struct {
	Color        color.NRGBA
	EraseColor   color.NRGBA
	HistoryLimit int
}

// Config holds the application configuration.
type Config struct {
	Theme   string
	SaveDir string
	Canvas  Canvas
	Tools   Tools
	Notify  Notify
	Themes  map[string]*theme.Theme
}

// New creates a new Config with defaults.
func New() *Config {
	return &Config{
		Theme: "", // Default to empty to allow fallback to Env/Default
		Canvas: Canvas{
			Width:  100,
			Height: 100,
			Zoom:   1,
		},
		Tools: Tools{
			Color:      color.NRGBA{A: 255},
			EraseColor: pixels.DefaultEraseColor,
		},
		Themes: make(map[string]*theme.Theme),
	}
}

// String implements fmt.Stringer and returns the configuration in RC format.
func (c *Config) String() string {
	var sb strings.Builder

	// Root section
	if c.Theme != "" {
		fmt.Fprintf(&sb, "theme = %s\n", c.Theme)
	}
	if c.SaveDir != "" {
		fmt.Fprintf(&sb, "save_dir = %s\n", c.SaveDir)
	}
	sb.WriteString("\n")

	sb.WriteString("[canvas]\n")
	fmt.Fprintf(&sb, "width = %d\n", c.Canvas.Width)
	fmt.Fprintf(&sb, "height = %d\n", c.Canvas.Height)
	fmt.Fprintf(&sb, "zoom = %d\n", c.Canvas.Zoom)
	sb.WriteString("\n")

	sb.WriteString("[tools]\n")
	fmt.Fprintf(&sb, "color = %s\n", pixels.FormatColor(c.Tools.Color))
	fmt.Fprintf(&sb, "erase_color = %s\n", pixels.FormatColor(c.Tools.EraseColor))
	fmt.Fprintf(&sb, "history_limit = %d\n", c.Tools.HistoryLimit)
	sb.WriteString("\n")

	sb.WriteString("[notify]\n")
	fmt.Fprintf(&sb, "save = %v\n", c.Notify.Save)
	fmt.Fprintf(&sb, "copy = %v\n", c.Notify.Copy)
	sb.WriteString("\n")

	// Sort keys for deterministic output
	var themeNames []string
	for name := range c.Themes {
		themeNames = append(themeNames, name)
	}
	sort.Strings(themeNames)

	for _, name := range themeNames {
		fmt.Fprintf(&sb, "[theme.%s]\n", name)
		sb.WriteString(c.Themes[name].String())
		sb.WriteString("\n")
	}

	return sb.String()
}
