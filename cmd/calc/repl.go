package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/term"
)

const prompt = "> "

// isTerminal reports whether r is a terminal.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// repl evaluates lines from r until EOF. Unlike eval, failures do not affect
// the result. The prompt is only shown when interactive.
func (a *app) repl(r io.Reader, interactive bool) error {
	sc := bufio.NewScanner(r)
	for {
		if interactive {
			fmt.Fprint(a.out, prompt)
		}
		if !sc.Scan() {
			break
		}
		line := strings.TrimSpace(sc.Text())
		switch line {
		case "":
			continue
		case "quit", "exit":
			return nil
		}
		a.eval(line)
	}
	if interactive {
		fmt.Fprintln(a.out)
	}
	return errors.Wrap(sc.Err(), "reading input")
}
