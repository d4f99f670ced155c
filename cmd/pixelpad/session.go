package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/example/pixelpad/internal/clipboard"
	"github.com/example/pixelpad/internal/codec"
	"github.com/example/pixelpad/internal/editor"
	"github.com/example/pixelpad/internal/pixels"
	"github.com/example/pixelpad/internal/tools"
)

// errExit is returned by the exit command to stop processing.
var errExit = errors.New("exit")

type commandList []string

func (c *commandList) String() string {
	return strings.Join(*c, ";")
}

func (c *commandList) Set(value string) error {
	*c = append(*c, value)
	return nil
}

func writef(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}

// session executes editor commands against one editor.
type session struct {
	ed  *editor.Editor
	r   *root
	out io.Writer
}

func newSession(ed *editor.Editor, r *root, out io.Writer) *session {
	return &session{ed: ed, r: r, out: out}
}

// executeLine runs a single command. It reports done when the command asks
// to stop.
func (s *session) executeLine(line string) (bool, error) {
	args := strings.Fields(stripComment(line))
	if len(args) == 0 {
		return false, nil
	}
	err := s.execute(strings.ToLower(args[0]), args[1:])
	if errors.Is(err, errExit) {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("%s: %w", args[0], err)
	}
	return false, nil
}

// stripComment drops a '#' comment. A '#' directly followed by text, as in
// a hex color, only starts a comment at the beginning of the line.
func stripComment(line string) string {
	trimmed := strings.TrimSpace(line)
	if strings.HasPrefix(trimmed, "#") {
		return ""
	}
	for i := 0; i < len(line); i++ {
		if line[i] != '#' {
			continue
		}
		if i+1 == len(line) || line[i+1] == ' ' || line[i+1] == '\t' {
			return line[:i]
		}
	}
	return line
}

// run executes each line of r until EOF or exit.
func (s *session) run(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n++
		done, err := s.executeLine(scanner.Text())
		if err != nil {
			return fmt.Errorf("line %d: %w", n, err)
		}
		if done {
			return nil
		}
	}
	return scanner.Err()
}

func (s *session) execute(cmd string, args []string) error {
	ed := s.ed
	switch cmd {
	case "down":
		if len(args) != 2 && len(args) != 3 {
			return fmt.Errorf("usage: down X Y [shift]")
		}
		v, err := expectInts(args[:2], 2)
		if err != nil {
			return err
		}
		shift := false
		if len(args) == 3 {
			if !strings.EqualFold(args[2], "shift") {
				return fmt.Errorf("unknown modifier %q", args[2])
			}
			shift = true
		}
		ed.PointerDown(v[0], v[1], shift)
	case "drag":
		v, err := expectInts(args, 2)
		if err != nil {
			return err
		}
		ed.PointerDrag(v[0], v[1])
	case "up":
		ed.PointerUp()
	case "click":
		v, err := expectInts(args, 2)
		if err != nil {
			return err
		}
		ed.PointerDown(v[0], v[1], false)
		ed.PointerUp()
	case "stroke":
		if len(args) < 2 || len(args)%2 != 0 {
			return fmt.Errorf("usage: stroke X Y [X Y]...")
		}
		v, err := expectInts(args, len(args))
		if err != nil {
			return err
		}
		ed.PointerDown(v[0], v[1], false)
		for i := 2; i < len(v); i += 2 {
			ed.PointerDrag(v[i], v[i+1])
		}
		ed.PointerUp()
	case "tool":
		if len(args) != 1 {
			return fmt.Errorf("usage: tool pencil|eraser|bucket|picker")
		}
		k, err := tools.ParseKind(args[0])
		if err != nil {
			return err
		}
		return ed.SelectTool(k)
	case "color":
		if len(args) != 1 {
			return fmt.Errorf("usage: color SPEC")
		}
		c, err := pixels.ParseColor(args[0])
		if err != nil {
			return err
		}
		ed.SetColor(c)
	case "zoom":
		v, err := expectInts(args, 1)
		if err != nil {
			return err
		}
		return ed.SetZoom(v[0])
	case "wheel":
		if len(args) != 2 && len(args) != 3 {
			return fmt.Errorf("usage: wheel DX DY [h]")
		}
		dx, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid delta %q", args[0])
		}
		dy, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid delta %q", args[1])
		}
		ed.Wheel(dx, dy, len(args) == 3 && strings.EqualFold(args[2], "h"))
	case "resize":
		v, err := expectInts(args, 2)
		if err != nil {
			return err
		}
		ed.Resize(v[0], v[1])
	case "undo", "redo":
		n := 1
		if len(args) > 0 {
			v, err := expectInts(args, 1)
			if err != nil {
				return err
			}
			n = v[0]
		}
		step := ed.Undo
		if cmd == "redo" {
			step = ed.Redo
		}
		done := 0
		for done < n && step() {
			done++
		}
		if done < n {
			return writef(s.out, "%s: %d of %d applied\n", cmd, done, n)
		}
	case "new":
		v, err := expectInts(args, 2)
		if err != nil {
			return err
		}
		return ed.NewImage(v[0], v[1])
	case "load":
		if len(args) != 1 {
			return fmt.Errorf("usage: load PATH")
		}
		buf, err := codec.Load(args[0])
		if err != nil {
			return err
		}
		return ed.LoadBuffer(buf)
	case "save":
		if len(args) != 1 {
			return fmt.Errorf("usage: save PATH")
		}
		if err := codec.Save(args[0], ed.Buffer()); err != nil {
			return err
		}
		s.r.notifySave(args[0])
		return writef(s.out, "saved %s\n", args[0])
	case "copy":
		if len(args) == 1 && strings.EqualFold(args[0], "color") {
			hex := pixels.FormatColor(ed.Color())
			if err := clipboard.WriteText(hex); err != nil {
				return err
			}
			s.r.notifyCopy(hex)
			return nil
		}
		if err := clipboard.CopyBuffer(ed.Buffer()); err != nil {
			return err
		}
		s.r.notifyCopy("image")
	case "paste":
		if len(args) == 1 && strings.EqualFold(args[0], "color") {
			text, err := clipboard.ReadText()
			if err != nil {
				return err
			}
			c, err := pixels.ParseColor(text)
			if err != nil {
				return err
			}
			ed.SetColor(c)
			return nil
		}
		buf, err := clipboard.PasteBuffer()
		if err != nil {
			return err
		}
		return ed.LoadBuffer(buf)
	case "status":
		return s.status()
	case "history":
		return s.history()
	case "exit", "quit":
		return errExit
	default:
		return fmt.Errorf("unknown command")
	}
	return nil
}

func (s *session) status() error {
	ed := s.ed
	v := ed.View()
	return writef(s.out, "tool=%s color=%s size=%dx%d zoom=%d scale=%d viewport=%dx%d scroll=%d,%d undo=%d redo=%d\n",
		ed.Tool(), pixels.FormatColor(ed.Color()),
		ed.Buffer().Width(), ed.Buffer().Height(),
		v.Zoom(), v.Scale(), v.Viewport().X, v.Viewport().Y,
		v.Scroll().X, v.Scroll().Y,
		ed.History().Len(), ed.History().UndoneLen())
}

func (s *session) history() error {
	for i, e := range s.ed.History().Performed() {
		b := e.Bounds()
		if err := writef(s.out, "%d %s %s changes=%d bounds=%v\n", i+1, e.ID(), e.Tool(), e.Len(), b); err != nil {
			return err
		}
	}
	return nil
}

func expectInts(args []string, n int) ([]int, error) {
	if len(args) != n {
		return nil, fmt.Errorf("expected %d numbers, got %d", n, len(args))
	}
	out := make([]int, n)
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", a)
		}
		out[i] = v
	}
	return out, nil
}
