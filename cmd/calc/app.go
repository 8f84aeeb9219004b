package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"

	"github.com/zephyrtronium/calculator"
)

// errFailed is returned from commands when at least one expression failed to
// evaluate. The failure has already been displayed, so main only sets the exit
// status.
var errFailed = errors.New("evaluation failed")

// app displays evaluation results according to a Config.
type app struct {
	cfg Config
	log *slog.Logger
	out io.Writer

	result *color.Color
	failed *color.Color
	echo   *color.Color
}

func newApp(cfg Config, log *slog.Logger, out io.Writer) *app {
	a := app{
		cfg:    cfg,
		log:    log,
		out:    out,
		result: color.New(color.FgGreen, color.Bold),
		failed: color.New(color.FgRed),
		echo:   color.New(color.Faint),
	}
	if !cfg.Color {
		a.result.DisableColor()
		a.failed.DisableColor()
		a.echo.DisableColor()
	}
	return &a
}

// eval evaluates and displays one expression. The result is false if the
// expression failed.
func (a *app) eval(src string) bool {
	p, err := calculator.ParseString(src)
	if err != nil {
		return a.fail(src, err)
	}
	if a.cfg.Echo {
		a.echo.Fprintf(a.out, "%v : ", p)
	}
	r, err := calculator.Process(p)
	if err != nil {
		return a.fail(src, err)
	}
	if a.cfg.Percent {
		r /= 100
	}
	a.result.Fprintf(a.out, a.cfg.Format, r)
	fmt.Fprintln(a.out)
	a.log.Debug("evaluated", slog.String("expr", src), slog.Float64("result", r))
	return true
}

// postfix displays the postfix form of one expression.
func (a *app) postfix(src string) bool {
	p, err := calculator.ParseString(src)
	if err != nil {
		return a.fail(src, err)
	}
	fmt.Fprintln(a.out, p)
	return true
}

// fail displays the error text for an expression and logs the details.
func (a *app) fail(src string, err error) bool {
	attrs := []any{slog.String("expr", src), slog.Any("err", err)}
	var ie calculator.InputError
	if errors.As(err, &ie) {
		attrs = append(attrs, slog.Int("col", ie.Pos()))
	}
	a.log.Debug("evaluation failed", attrs...)
	a.failed.Fprintln(a.out, a.cfg.ErrorText)
	return false
}

// lines applies f to each non-blank line of r. The result is errFailed if f
// returned false for any line.
func (a *app) lines(r io.Reader, f func(string) bool) error {
	ok := true
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		ok = f(line) && ok
	}
	if err := sc.Err(); err != nil {
		return errors.Wrap(err, "reading input")
	}
	if !ok {
		return errFailed
	}
	return nil
}

// each applies f to each argument. The result is errFailed if f returned
// false for any argument.
func each(args []string, f func(string) bool) error {
	ok := true
	for _, arg := range args {
		ok = f(arg) && ok
	}
	if !ok {
		return errFailed
	}
	return nil
}
