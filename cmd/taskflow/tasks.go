package main

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	internalerrors "github.com/jrsteele09/taskflow-client/internal/errors"
	"github.com/jrsteele09/taskflow-client/models"
	"github.com/jrsteele09/taskflow-client/transport"
)

func tasksCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tasks",
		Aliases: []string{"task"},
		Short:   "Work with tasks",
	}
	cmd.AddCommand(tasksListCmd(a), tasksDoneCmd(a))
	return cmd
}

func tasksListCmd(a *app) *cobra.Command {
	var (
		projectID int64
		status    string
		search    string
		page      int
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if err := a.requireSignedIn(ctx); err != nil {
				return err
			}
			tasks := a.client.Stores.Tasks
			tasks.SetProjectFilter(projectID)
			tasks.SetStatus(status)
			tasks.SetSearch(search)
			tasks.SetPage(page)
			tasks.FetchList(ctx, nil, false)
			if msg := tasks.Err(); msg != "" {
				return errors.New(msg)
			}

			out := cmd.OutOrStdout()
			if !tasks.HasTasks() {
				fprintln(out, mutedStyle.Render("No tasks found"))
				return nil
			}
			var rows [][]string
			for _, t := range tasks.Items() {
				assignee := "-"
				if t.AssignedTo != nil {
					assignee = t.AssignedTo.Name
				}
				rows = append(rows, []string{strconv.FormatInt(t.ID, 10), t.Title, styled(t.Status), styled(t.Priority), assignee, t.DueDate})
			}
			renderTable(out, []string{"ID", "TITLE", "STATUS", "PRIORITY", "ASSIGNEE", "DUE"}, rows)
			printPage(out, tasks.Page().CurrentPage, tasks.Page().LastPage, tasks.Total())
			return nil
		},
	}
	cmd.Flags().Int64Var(&projectID, "project", 0, "only tasks of this project id")
	cmd.Flags().StringVar(&status, "status", "", "todo, in_progress, review or done")
	cmd.Flags().StringVar(&search, "search", "", "match title or description")
	cmd.Flags().IntVar(&page, "page", 1, "page to show")
	return cmd
}

func tasksDoneCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "done <task-id>",
		Short: "Mark a task done",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := a.requireSignedIn(ctx); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			task, err := a.client.Stores.Tasks.UpdateStatus(ctx, id, models.TaskDone)
			if internalerrors.Is(err, internalerrors.ErrNotFound) {
				return errors.Errorf("task %d not found", id)
			}
			if err != nil {
				return errors.New(transport.Message(err, "Failed to update task"))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s is %s\n", okStyle.Render("✓"), task.Title, styled(task.Status))
			return nil
		},
	}
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.Errorf("%q is not a valid id", arg)
	}
	return id, nil
}
