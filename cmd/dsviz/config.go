// ABOUTME: Config subcommands: init writes the defaults, show prints the merged settings
// ABOUTME: init skips config loading so it can repair a broken file

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mauromedda/dsviz/internal/config"
)

func newConfigCommand(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage dsviz configuration",
	}
	cmd.AddCommand(newConfigInitCommand(), newConfigShowCommand(c))
	return cmd
}

func newConfigInitCommand() *cobra.Command {
	var (
		force  bool
		global bool
		path   string
	)

	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Write the default configuration file",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipSetup: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			target := path
			switch {
			case target != "":
			case global:
				target = config.GlobalConfigFile()
			default:
				target = config.ProjectConfigFile(".")
			}
			if err := config.WriteDefault(target, force); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", target)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	cmd.Flags().BoolVar(&global, "global", false, "write ~/.dsviz/config.yaml instead of the project file")
	cmd.Flags().StringVar(&path, "path", "", "write to this path")
	return cmd
}

func newConfigShowCommand(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the merged configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := config.Marshal(*c.env.cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
