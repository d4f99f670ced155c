package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/example/pixelpad/internal/clipboard"
	"github.com/example/pixelpad/internal/codec"
	"github.com/example/pixelpad/internal/editor"
	"github.com/example/pixelpad/internal/pixels"
	"github.com/example/pixelpad/internal/render"
)

// scriptCmd replays editor commands without a window.
type scriptCmd struct {
	*root
	fs *flag.FlagSet
	sourceFlags

	execs       commandList
	scriptFile  string
	output      string
	format      string
	renderPath  string
	toClipboard bool
}

func (s *scriptCmd) FlagSet() *flag.FlagSet {
	return s.fs
}

func (s *scriptCmd) Program() string {
	return s.root.sub("script")
}

func parseScriptCmd(args []string, r *root) (*scriptCmd, error) {
	fs := flag.NewFlagSet("script", flag.ContinueOnError)
	s := &scriptCmd{root: r, fs: fs}
	fs.Usage = usageFunc(s)
	s.sourceFlags.register(fs)
	fs.Var(&s.execs, "e", "execute a command (may be specified multiple times)")
	fs.StringVar(&s.scriptFile, "script", "", "file of commands, one per line")
	fs.StringVar(&s.output, "output", "", "output file path, or - for standard output (defaults to input file)")
	fs.StringVar(&s.format, "format", "png", "image format when writing to standard output")
	fs.StringVar(&s.renderPath, "render", "", "also write the viewport as displayed to this file")
	fs.BoolVar(&s.toClipboard, "to-clipboard", false, "copy the result to the clipboard")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, &UsageError{of: s}
		}
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	if err := s.sourceFlags.validate(); err != nil {
		return nil, err
	}
	if s.output == "" {
		s.output = s.file
	}
	if s.output == "" && s.renderPath == "" && !s.toClipboard {
		return nil, fmt.Errorf("an output is required: use -output, -render or -to-clipboard")
	}
	if len(s.execs) > 0 && s.scriptFile != "" {
		return nil, fmt.Errorf("-e and -script cannot be used together")
	}
	return s, nil
}

func (s *scriptCmd) Run() error {
	ed, err := s.sourceFlags.newEditor(s.root)
	if err != nil {
		return err
	}
	if err := s.apply(newSession(ed, s.root, s.errOut())); err != nil {
		return err
	}
	return s.write(ed)
}

func (s *scriptCmd) apply(sess *session) error {
	switch {
	case len(s.execs) > 0:
		for _, line := range s.execs {
			done, err := sess.executeLine(line)
			if err != nil {
				return err
			}
			if done {
				break
			}
		}
		return nil
	case s.scriptFile != "":
		f, err := os.Open(s.scriptFile)
		if err != nil {
			return fmt.Errorf("failed to open script: %w", err)
		}
		defer f.Close()
		if err := sess.run(f); err != nil {
			return fmt.Errorf("%s: %w", s.scriptFile, err)
		}
		return nil
	default:
		return sess.run(s.in())
	}
}

func (s *scriptCmd) write(ed *editor.Editor) error {
	buf := ed.Buffer()
	switch s.output {
	case "":
	case "-":
		if isTerminal(s.out()) {
			return fmt.Errorf("refusing to write image data to a terminal")
		}
		f, err := codec.ParseFormat(s.format)
		if err != nil {
			return err
		}
		if err := codec.Encode(s.out(), buf, f); err != nil {
			return err
		}
	default:
		if err := codec.Save(s.output, buf); err != nil {
			return fmt.Errorf("failed to save %s: %w", s.output, err)
		}
		s.notifySave(s.output)
	}
	if s.renderPath != "" {
		snap, err := pixels.FromImage(render.Snapshot(buf, ed.View(), render.Options{Theme: s.theme()}))
		if err != nil {
			return err
		}
		if err := codec.Save(s.renderPath, snap); err != nil {
			return fmt.Errorf("failed to save %s: %w", s.renderPath, err)
		}
	}
	if s.toClipboard {
		if err := clipboard.CopyBuffer(buf); err != nil {
			return fmt.Errorf("failed to copy to clipboard: %w", err)
		}
		s.notifyCopy("image")
	}
	return nil
}
