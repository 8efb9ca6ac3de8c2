package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	internalerrors "github.com/jrsteele09/taskflow-client/internal/errors"
	"github.com/jrsteele09/taskflow-client/internal/utils"
	"github.com/jrsteele09/taskflow-client/transport"
)

func timerCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "timer",
		Short: "Track time against a task",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.open(cmd); err != nil {
				return err
			}
			if err := a.requireSignedIn(cmd.Context()); err != nil {
				return err
			}
			// Each run is a fresh process, so pick up whatever the server has running.
			a.client.Stores.TimeTracking.FetchActiveTimer(cmd.Context())
			return nil
		},
	}
	cmd.AddCommand(timerStartCmd(a), timerStopCmd(a), timerStatusCmd(a))
	return cmd
}

func timerStartCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "start <task-id> [description...]",
		Short: "Start a timer on a task",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			timer := a.client.Stores.TimeTracking
			if active, ok := timer.ActiveTimer(); ok {
				return errors.Errorf("a timer is already running on task %d", active.TaskID)
			}
			entry, err := timer.StartTimer(cmd.Context(), id, strings.Join(args[1:], " "))
			if err != nil {
				return errors.New(transport.Message(err, "Failed to start timer"))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Timer started on task %d\n", okStyle.Render("▶"), entry.TaskID)
			return nil
		},
	}
}

func timerStopCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Stop the running timer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			entry, err := a.client.Stores.TimeTracking.StopTimer(cmd.Context())
			if internalerrors.Is(err, internalerrors.ErrNoActiveTimer) {
				return errors.New("no timer is running")
			}
			if err != nil {
				return errors.New(transport.Message(err, "Failed to stop timer"))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Stopped after %s\n", okStyle.Render("■"), seconds(entry.Duration))
			return nil
		},
	}
}

func timerStatusCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the running timer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			timer := a.client.Stores.TimeTracking
			active, ok := timer.ActiveTimer()
			if !ok {
				fprintln(cmd.OutOrStdout(), mutedStyle.Render("No timer running"))
				return nil
			}
			label := fmt.Sprintf("task %d", active.TaskID)
			if active.Task != nil && active.Task.Title != "" {
				label = active.Task.Title
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Running on %s for %s\n", headerStyle.Render(label), seconds(timer.Elapsed()))
			if description := utils.Value(active.Description); description != "" {
				fprintln(out, mutedStyle.Render(description))
			}
			return nil
		},
	}
}

func seconds(n int64) time.Duration {
	return time.Duration(n) * time.Second
}
