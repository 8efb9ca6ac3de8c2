package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/jrsteele09/taskflow-client/models"
)

func projectsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "projects",
		Aliases: []string{"project"},
		Short:   "Work with projects",
	}
	cmd.AddCommand(projectsListCmd(a))
	return cmd
}

func projectsListCmd(a *app) *cobra.Command {
	var (
		status string
		search string
		page   int
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if err := a.requireSignedIn(ctx); err != nil {
				return err
			}
			projects := a.client.Stores.Projects
			projects.UpdateFilters(func(f *models.ProjectFilters) {
				f.Status = status
				f.Search = search
			})
			projects.SetPage(page)
			projects.FetchList(ctx, nil, false)
			if msg := projects.Err(); msg != "" {
				return errors.New(msg)
			}

			out := cmd.OutOrStdout()
			if !projects.HasProjects() {
				fprintln(out, mutedStyle.Render("No projects found"))
				return nil
			}
			var rows [][]string
			for _, p := range projects.Items() {
				rows = append(rows, []string{strconv.FormatInt(p.ID, 10), p.Name, styled(p.Status), styled(p.Priority), strconv.Itoa(p.TasksCount)})
			}
			renderTable(out, []string{"ID", "NAME", "STATUS", "PRIORITY", "TASKS"}, rows)
			printPage(out, projects.Page().CurrentPage, projects.Page().LastPage, projects.Total())
			return nil
		},
	}
	cmd.Flags().StringVar(&status, "status", "", "only projects with this status")
	cmd.Flags().StringVar(&search, "search", "", "match name or description")
	cmd.Flags().IntVar(&page, "page", 1, "page to show")
	return cmd
}

func printPage(w io.Writer, current, last, total int) {
	fprintln(w, mutedStyle.Render(fmt.Sprintf("page %d of %d, %d total", current, last, total)))
}
