// Package tools implements the pointer-driven editing tools.
package tools

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/example/pixelpad/internal/history"
	"github.com/example/pixelpad/internal/pixels"
)

// Context is the state a tool reads and mutates while handling input.
// Coordinates handed to tools are image pixels.
type Context struct {
	Color      color.NRGBA
	EraseColor color.NRGBA
	Buffer     *pixels.Buffer
	History    *history.History

	// LineFromLast makes a press continue from the previous stroke point,
	// as when shift is held.
	LineFromLast bool

	// OnColor is called whenever a tool changes the active color.
	OnColor func(color.NRGBA)
}

// SetColor changes the active color and notifies OnColor.
func (c *Context) SetColor(col color.NRGBA) {
	c.Color = col
	if c.OnColor != nil {
		c.OnColor(col)
	}
}

// Tool reacts to one stroke at a time: a press, any number of drags and a
// release.
type Tool interface {
	Name() string
	Press(ctx *Context, x, y int, newStroke bool)
	Drag(ctx *Context, prevX, prevY, x, y int)
	Release(ctx *Context)
}

// Kind enumerates the available tools.
type Kind int

const (
	KindPencil Kind = iota
	KindEraser
	KindBucket
	KindPicker
)

var kindNames = []string{"pencil", "eraser", "bucket", "picker"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Kinds lists every tool kind in display order.
func Kinds() []Kind { return []Kind{KindPencil, KindEraser, KindBucket, KindPicker} }

// ParseKind resolves a tool name.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "pencil", "pen", "draw":
		return KindPencil, nil
	case "eraser", "erase":
		return KindEraser, nil
	case "bucket", "fill":
		return KindBucket, nil
	case "picker", "colorpicker", "pick", "eyedropper":
		return KindPicker, nil
	}
	return 0, fmt.Errorf("unknown tool %q", name)
}

// New returns a fresh tool of the given kind.
func New(k Kind) Tool {
	switch k {
	case KindEraser:
		return NewEraser()
	case KindBucket:
		return Bucket{}
	case KindPicker:
		return ColorPicker{}
	default:
		return NewPencil()
	}
}
