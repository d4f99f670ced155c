package main

import (
	"errors"
	"flag"
	"fmt"

	"github.com/example/pixelpad/internal/codec"
	"github.com/example/pixelpad/internal/pixels"
)

// newCmd writes a blank image.
type newCmd struct {
	*root
	fs *flag.FlagSet

	width  int
	height int
	fill   string
	output string
}

func (n *newCmd) FlagSet() *flag.FlagSet {
	return n.fs
}

func (n *newCmd) Program() string {
	return n.root.sub("new")
}

func parseNewCmd(args []string, r *root) (*newCmd, error) {
	fs := flag.NewFlagSet("new", flag.ContinueOnError)
	n := &newCmd{root: r, fs: fs}
	fs.Usage = usageFunc(n)
	w, h := 0, 0
	if r != nil && r.config != nil {
		w, h = r.config.Canvas.Width, r.config.Canvas.Height
	}
	fs.IntVar(&n.width, "width", w, "image width in pixels")
	fs.IntVar(&n.height, "height", h, "image height in pixels")
	fs.StringVar(&n.fill, "fill", "transparent", "fill color name or hex value")
	fs.StringVar(&n.output, "output", "", "output file path")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, &UsageError{of: n}
		}
		return nil, err
	}
	if n.output == "" {
		return nil, &UsageError{of: n}
	}
	return n, nil
}

func (n *newCmd) Run() error {
	c, err := pixels.ParseColor(n.fill)
	if err != nil {
		return err
	}
	buf, err := pixels.New(n.width, n.height)
	if err != nil {
		return fmt.Errorf("failed to create image: %w", err)
	}
	buf.Fill(c)
	if err := codec.Save(n.output, buf); err != nil {
		return fmt.Errorf("failed to save %s: %w", n.output, err)
	}
	n.notifySave(n.output)
	fmt.Fprintf(n.errOut(), "wrote %dx%d image to %s\n", n.width, n.height, n.output)
	return nil
}
