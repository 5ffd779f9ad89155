// ABOUTME: Catalog subcommands: list (fuzzy search in a table) and info (rendered complexity sheet)
// ABOUTME: Tables use go-pretty; sheets go through glamour

package main

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/mauromedda/dsviz/internal/catalog"
	"github.com/mauromedda/dsviz/pkg/ds"
)

const infoWidth = 80

func newListCommand() *cobra.Command {
	var availableOnly bool

	cmd := &cobra.Command{
		Use:         "list [query]",
		Short:       "List structures and algorithms, optionally filtered by a fuzzy query",
		Args:        cobra.MaximumNArgs(1),
		Annotations: map[string]string{skipSetup: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := catalog.Load()
			if err != nil {
				return err
			}
			query := ""
			if len(args) == 1 {
				query = args[0]
			}

			tbl := table.NewWriter()
			tbl.SetOutputMirror(cmd.OutOrStdout())
			tbl.SetStyle(table.StyleLight)
			tbl.Style().Format.Footer = text.FormatDefault
			tbl.AppendHeader(table.Row{"ID", "Name", "Category", "Status"})
			n := 0
			for _, r := range cat.Search(query) {
				if availableOnly && !r.Item.Available {
					continue
				}
				status := "coming soon"
				if r.Item.Available {
					status = "available"
				}
				tbl.AppendRow(table.Row{r.Item.ID, r.Item.Name, r.Item.Category, status})
				n++
			}
			if n == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "nothing matches %q\n", query)
				return nil
			}
			tbl.AppendFooter(table.Row{"", fmt.Sprintf("%d items", n), "", ""})
			tbl.Render()
			return nil
		},
	}
	cmd.Flags().BoolVarP(&availableOnly, "available", "a", false, "only items with a visualizer")
	return cmd
}

func newInfoCommand(c *cli) *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "info <id>",
		Short: "Show the complexity sheet of a structure",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := catalog.Load()
			if err != nil {
				return err
			}
			it, ok := cat.Lookup(strings.ToLower(args[0]))
			if !ok {
				return errors.WithHint(
					errors.Wrapf(ds.ErrNotFound, "no catalog item %q", args[0]),
					"dsviz list shows every id",
				)
			}
			md := catalog.Markdown(it)
			if raw {
				fmt.Fprint(cmd.OutOrStdout(), md)
				return nil
			}
			out, err := catalog.Render(md, infoWidth, c.env.mdStyle)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "print the markdown source")
	return cmd
}
