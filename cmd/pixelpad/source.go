package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/example/pixelpad/internal/clipboard"
	"github.com/example/pixelpad/internal/codec"
	"github.com/example/pixelpad/internal/editor"
)

// sourceFlags selects the image a command starts from.
type sourceFlags struct {
	file          string
	fromClipboard bool
	width         int
	height        int
	viewport      string
}

func (s *sourceFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&s.file, "file", "", "input image file")
	fs.BoolVar(&s.fromClipboard, "from-clipboard", false, "read the input image from the clipboard")
	fs.BoolVar(&s.fromClipboard, "from-clip", false, "read the input image from the clipboard (alias)")
	fs.IntVar(&s.width, "width", 0, "width of a new blank image")
	fs.IntVar(&s.height, "height", 0, "height of a new blank image")
	fs.StringVar(&s.viewport, "viewport", "", "viewport size as WxH")
}

func (s *sourceFlags) validate() error {
	if s.file != "" && s.fromClipboard {
		return fmt.Errorf("-file and -from-clipboard cannot be used together")
	}
	if (s.width != 0 || s.height != 0) && (s.file != "" || s.fromClipboard) {
		return fmt.Errorf("-width and -height only apply to new images")
	}
	if s.viewport != "" {
		if _, _, err := parseSize(s.viewport); err != nil {
			return err
		}
	}
	return nil
}

// newEditor builds an editor holding the selected image.
func (s *sourceFlags) newEditor(r *root, extra ...editor.Option) (*editor.Editor, error) {
	opts := r.editorOptions()
	if s.width > 0 || s.height > 0 {
		w, h := s.width, s.height
		if r != nil && r.config != nil {
			if w == 0 {
				w = r.config.Canvas.Width
			}
			if h == 0 {
				h = r.config.Canvas.Height
			}
		}
		opts = append(opts, editor.WithSize(w, h))
	}
	if s.viewport != "" {
		w, h, err := parseSize(s.viewport)
		if err != nil {
			return nil, err
		}
		opts = append(opts, editor.WithViewport(w, h))
	}
	opts = append(opts, extra...)
	ed, err := editor.New(opts...)
	if err != nil {
		return nil, err
	}
	switch {
	case s.file != "":
		buf, err := codec.Load(s.file)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", s.file, err)
		}
		if err := ed.LoadBuffer(buf); err != nil {
			return nil, err
		}
	case s.fromClipboard:
		buf, err := clipboard.PasteBuffer()
		if err != nil {
			return nil, fmt.Errorf("failed to read clipboard: %w", err)
		}
		if err := ed.LoadBuffer(buf); err != nil {
			return nil, err
		}
	}
	return ed, nil
}

// parseSize reads "WxH".
func parseSize(spec string) (int, int, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(strings.TrimSpace(spec)), "x")
	if !ok {
		return 0, 0, fmt.Errorf("invalid size %q, want WxH", spec)
	}
	w, err := strconv.Atoi(ws)
	if err != nil || w <= 0 {
		return 0, 0, fmt.Errorf("invalid size %q, want WxH", spec)
	}
	h, err := strconv.Atoi(hs)
	if err != nil || h <= 0 {
		return 0, 0, fmt.Errorf("invalid size %q, want WxH", spec)
	}
	return w, h, nil
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
