package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/example/pixelpad/internal/appstate"
	"github.com/example/pixelpad/internal/editor"
)

// editCmd opens the editor window.
type editCmd struct {
	*root
	fs *flag.FlagSet
	sourceFlags

	output string
	execs  commandList
}

func (e *editCmd) FlagSet() *flag.FlagSet {
	return e.fs
}

func (e *editCmd) Program() string {
	return e.root.sub("edit")
}

func parseEditCmd(args []string, r *root) (*editCmd, error) {
	fs := flag.NewFlagSet("edit", flag.ContinueOnError)
	e := &editCmd{root: r, fs: fs}
	fs.Usage = usageFunc(e)
	e.sourceFlags.register(fs)
	fs.StringVar(&e.output, "output", "", "file written by Ctrl+S (defaults to input file)")
	fs.Var(&e.execs, "e", "execute a command once the window opens (may be specified multiple times)")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, &UsageError{of: e}
		}
		return nil, err
	}
	if fs.NArg() == 1 && e.file == "" {
		e.file = fs.Arg(0)
	} else if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	if err := e.sourceFlags.validate(); err != nil {
		return nil, err
	}
	if e.output == "" {
		e.output = e.file
	}
	if e.output == "" && e.root != nil && e.config != nil && e.config.SaveDir != "" {
		e.output = filepath.Join(e.config.SaveDir, "pixelpad.png")
	}
	return e, nil
}

func (e *editCmd) Run() error {
	ed, err := e.sourceFlags.newEditor(e.root)
	if err != nil {
		return err
	}
	title := appstate.ProgramTitle
	if e.file != "" {
		title = fmt.Sprintf("%s - %s", filepath.Base(e.file), appstate.ProgramTitle)
	}
	app := appstate.New(
		appstate.WithEditor(ed),
		appstate.WithOutput(e.output),
		appstate.WithTitle(title),
		appstate.WithTheme(e.theme()),
		appstate.WithNotifier(e.notifier),
	)
	sess := newSession(ed, e.root, e.errOut())
	for _, line := range e.execs {
		app.Do(func(*editor.Editor) {
			if _, err := sess.executeLine(line); err != nil {
				log.Printf("%v", err)
			}
		})
	}
	app.Run()
	return nil
}
