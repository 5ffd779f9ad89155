// ABOUTME: CLI entry point for dsviz built on cobra
// ABOUTME: Root command opens the TUI; subcommands run scripts, browse the catalog, and manage config

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	// termfix must be imported before any package that imports bubbletea.
	// It presets the lipgloss background in its init(), so bubbletea's
	// init() never sends OSC 10/11 queries whose replies leak into input.
	_ "github.com/mauromedda/dsviz/internal/termfix"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	dlog "github.com/mauromedda/dsviz/internal/log"
	"github.com/mauromedda/dsviz/internal/mode/interactive/btea"
	"github.com/mauromedda/dsviz/internal/viz"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCommand().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		if hint := errors.FlattenHints(err); hint != "" {
			fmt.Fprintf(os.Stderr, "hint: %s\n", hint)
		}
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	c := &cli{}
	var structure string

	root := &cobra.Command{
		Use:   "dsviz",
		Short: "Step through data structure operations in the terminal",
		Long: `dsviz animates arrays, linked lists, stacks, queues, binary trees and
binary search trees. Every operation is recorded, so you can step back and
forward through the history or replay it.

Run without arguments to pick a structure from the menu.`,
		Args:               cobra.NoArgs,
		SilenceUsage:       true,
		SilenceErrors:      true,
		PersistentPreRunE:  c.setup,
		PersistentPostRunE: c.teardown,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.runInteractive(cmd.Context(), structure)
		},
	}
	c.register(root.PersistentFlags())
	root.Flags().StringVarP(&structure, "structure", "s", "", "open this structure directly (array, linked-list, stack, queue, binary-tree, bst)")

	root.AddCommand(
		newRunCommand(c),
		newListCommand(),
		newInfoCommand(c),
		newConfigCommand(c),
		versionCmd(),
	)
	return root
}

// runInteractive starts the Bubble Tea TUI.
func (c *cli) runInteractive(ctx context.Context, structure string) error {
	var kind viz.Kind
	if structure != "" {
		k, err := viz.ParseKind(structure)
		if err != nil {
			return err
		}
		kind = k
	}

	// The TUI owns stderr; without a log file, log lines would tear the screen.
	if c.env.cfg.Log.File == "" {
		dlog.SetOutput(io.Discard)
		defer dlog.SetOutput(os.Stderr)
	}

	return btea.Run(ctx, btea.AppDeps{
		Options:       c.vizOptions(),
		Keys:          c.env.keys,
		Structure:     kind,
		MarkdownStyle: c.env.mdStyle,
		Version:       version,
	})
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Show version information",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipSetup: "true"},
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "dsviz %s (commit: %s, built: %s)\n", version, commit, date)
		},
	}
}
