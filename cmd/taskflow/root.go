package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "taskflow",
		Short:         "Command line client for the Taskflow project API",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.open(cmd)
		},
	}
	root.PersistentFlags().StringVar(&a.configDir, "config-dir", "", "directory holding config.yaml (default $TASKFLOW_HOME or ~/.taskflow)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "print every API request")

	root.AddCommand(
		loginCmd(a),
		logoutCmd(a),
		whoamiCmd(a),
		projectsCmd(a),
		tasksCmd(a),
		timerCmd(a),
		notificationsCmd(a),
		versionCmd(),
	)
	return root
}
