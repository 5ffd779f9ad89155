// ABOUTME: The run subcommand: applies a command script to one structure without the TUI
// ABOUTME: Script lines come from arguments, --file, or piped stdin

package main

import (
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mauromedda/dsviz/internal/commands"
	"github.com/mauromedda/dsviz/internal/mode/print"
	"github.com/mauromedda/dsviz/internal/viz"
	"github.com/mauromedda/dsviz/pkg/ds"
)

type runFlags struct {
	file     string
	format   string
	json     bool
	timeline bool
	strict   bool
	play     bool
}

func newRunCommand(c *cli) *cobra.Command {
	var f runFlags

	cmd := &cobra.Command{
		Use:   "run <structure> [command...]",
		Short: "Apply commands to a structure and print the outcome",
		Long: `Run applies a script of visualizer commands to a fresh structure and prints
each outcome followed by the final state.

Commands are separated by ';' or newlines; '#' starts a comment. They are
taken from the arguments, from --file (- for stdin), or from piped stdin.`,
		Example: `  dsviz run array "add 30; search 15; remove"
  dsviz run bst --timeline insert 45 ";" traverse preorder
  echo "push 1; push 2; pop" | dsviz run stack --format json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := viz.ParseKind(args[0])
			if err != nil {
				return err
			}
			lines, err := scriptLines(cmd, f.file, args[1:])
			if err != nil {
				return err
			}

			format := f.format
			if f.json {
				format = "json"
			}
			return print.Run(cmd.Context(),
				print.Config{
					Structure:    kind,
					OutputFormat: format,
					Timeline:     f.timeline,
					Strict:       f.strict,
					Play:         f.play,
				},
				print.Deps{Options: c.vizOptions(), Out: cmd.OutOrStdout()},
				lines,
			)
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&f.file, "file", "f", "", "read the script from a file (- for stdin)")
	fs.StringVarP(&f.format, "format", "o", "text", "output format: text, json, stream-json")
	fs.BoolVar(&f.json, "json", false, "shorthand for --format json")
	fs.BoolVar(&f.timeline, "timeline", false, "print the history table after the run")
	fs.BoolVar(&f.strict, "strict", false, "stop at the first failing command and exit non-zero")
	fs.BoolVar(&f.play, "play", false, "replay the history step by step after the run")
	// Read through config as delay.playback.
	fs.Duration("interval", 0, "replay interval (overrides delay.playback)")
	return cmd
}

// scriptLines collects the script from args, a file, or piped stdin.
func scriptLines(cmd *cobra.Command, file string, args []string) ([]string, error) {
	var r io.Reader
	switch {
	case len(args) > 0 && file != "":
		return nil, errors.WithHint(
			errors.Wrap(ds.ErrInvalidInput, "commands given both as arguments and --file"),
			"use one source",
		)
	case len(args) > 0:
		r = strings.NewReader(strings.Join(args, " "))
	case file == "-":
		r = cmd.InOrStdin()
	case file != "":
		fh, err := os.Open(file)
		if err != nil {
			return nil, errors.Wrap(err, "open script")
		}
		defer fh.Close()
		r = fh
	default:
		in := cmd.InOrStdin()
		if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			return nil, errors.WithHint(
				errors.Wrap(ds.ErrInvalidInput, "no commands given"),
				`pass them as arguments, e.g. dsviz run array "add 30; search 15"`,
			)
		}
		r = in
	}
	return commands.ReadScript(r)
}
