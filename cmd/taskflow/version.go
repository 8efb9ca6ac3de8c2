package main

import (
	"fmt"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"

	"github.com/jrsteele09/taskflow-client/internal/config"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the banner and version",
		Args:  cobra.NoArgs,
		// Needs neither config files nor a session.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, _ []string) error {
			banner := figure.NewFigure(config.New().GetAppName(), "cybermedium", true)
			out := cmd.OutOrStdout()
			fprintln(out, banner.String())
			fmt.Fprintf(out, "version %s\n", Version)
			return nil
		},
	}
}
