package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"strings"
)

// interactiveCmd reads editor commands from a prompt.
type interactiveCmd struct {
	*root
	fs *flag.FlagSet
	sourceFlags

	execs commandList
}

func (i *interactiveCmd) FlagSet() *flag.FlagSet {
	return i.fs
}

func (i *interactiveCmd) Program() string {
	return i.root.sub("interactive")
}

func parseInteractiveCmd(args []string, r *root) (*interactiveCmd, error) {
	fs := flag.NewFlagSet("interactive", flag.ContinueOnError)
	i := &interactiveCmd{root: r, fs: fs}
	fs.Usage = usageFunc(i)
	i.sourceFlags.register(fs)
	fs.Var(&i.execs, "e", "execute a command before the prompt (may be specified multiple times)")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, &UsageError{of: i}
		}
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	if err := i.sourceFlags.validate(); err != nil {
		return nil, err
	}
	return i, nil
}

func (i *interactiveCmd) Run() error {
	ed, err := i.sourceFlags.newEditor(i.root)
	if err != nil {
		return err
	}
	stdout := i.out()
	sess := newSession(ed, i.root, stdout)
	for _, line := range i.execs {
		done, err := sess.executeLine(line)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}

	prompt := isTerminal(stdout)
	if prompt {
		fmt.Fprintln(stdout, "Enter commands (type 'exit' to quit)")
	}
	scanner := bufio.NewScanner(i.in())
	for {
		if prompt {
			fmt.Fprint(stdout, "> ")
		}
		if !scanner.Scan() {
			break
		}
		done, err := sess.executeLine(scanner.Text())
		if err != nil {
			fmt.Fprintln(i.errOut(), err)
			continue
		}
		if done {
			break
		}
	}
	return scanner.Err()
}
