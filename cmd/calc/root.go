package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

// options holds the flag values shared by all commands.
type options struct {
	config  string
	format  string
	errText string
	percent bool
	noColor bool
	echo    bool
	verbose bool

	// app is built from the config and flags before any command runs.
	app *app
}

func newRootCmd() *cobra.Command {
	var o options
	root := &cobra.Command{
		Use:   "calc [expression...]",
		Short: "Evaluate arithmetic expressions",
		Long: `Calc evaluates arithmetic expressions made of decimal numbers, the
operators + - * /, and parentheses. Multiplication and division bind tighter
than addition and subtraction, and equal precedence groups left to right.

With no arguments, calc evaluates each line of standard input.
A failed expression prints the error text (default "Error") and makes calc
exit with status 1. Use --verbose to see why it failed.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return o.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.runEval(cmd, args)
		},
	}
	f := root.PersistentFlags()
	f.StringVar(&o.config, "config", "", "config file (.toml, .yaml or .yml)")
	f.StringVar(&o.format, "fmt", "%g", "result formatting string")
	f.StringVar(&o.errText, "error-text", "Error", "text printed when an expression fails")
	f.BoolVar(&o.percent, "percent", false, "divide results by 100")
	f.BoolVar(&o.noColor, "no-color", false, "disable colored output")
	f.BoolVar(&o.echo, "echo", false, "print the postfix form of each expression")
	f.BoolVarP(&o.verbose, "verbose", "v", false, "log evaluation details to stderr")

	root.AddCommand(
		&cobra.Command{
			Use:   "eval [expression...]",
			Short: "Evaluate expressions from arguments or standard input",
			RunE: func(cmd *cobra.Command, args []string) error {
				return o.runEval(cmd, args)
			},
		},
		&cobra.Command{
			Use:   "postfix [expression...]",
			Short: "Print expressions in postfix (RPN) order",
			RunE: func(cmd *cobra.Command, args []string) error {
				if len(args) == 0 {
					return o.app.lines(cmd.InOrStdin(), o.app.postfix)
				}
				return each(args, o.app.postfix)
			},
		},
		&cobra.Command{
			Use:   "repl",
			Short: "Evaluate expressions interactively, one per line",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return o.app.repl(cmd.InOrStdin(), isTerminal(cmd.InOrStdin()))
			},
		},
	)
	return root
}

// setup loads the config file, applies flags that were set explicitly, and
// builds the app.
func (o *options) setup(cmd *cobra.Command) error {
	cfg, err := LoadConfig(o.config)
	if err != nil {
		return err
	}
	f := cmd.Flags()
	if f.Changed("fmt") {
		cfg.Format = o.format
	}
	if f.Changed("error-text") {
		cfg.ErrorText = o.errText
	}
	if f.Changed("percent") {
		cfg.Percent = o.percent
	}
	if f.Changed("no-color") {
		cfg.Color = !o.noColor
	}
	if f.Changed("echo") {
		cfg.Echo = o.echo
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	o.app = newApp(cfg, newLogger(cmd.ErrOrStderr(), o.verbose), cmd.OutOrStdout())
	return nil
}

func (o *options) runEval(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return o.app.lines(cmd.InOrStdin(), o.app.eval)
	}
	return each(args, o.app.eval)
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
