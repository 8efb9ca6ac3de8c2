package main

import (
	"fmt"
	"io"
	"net/http"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/jrsteele09/taskflow-client/models"
)

var (
	black   = lipgloss.Color("0")
	red     = lipgloss.Color("1")
	green   = lipgloss.Color("2")
	yellow  = lipgloss.Color("3")
	blue    = lipgloss.Color("4")
	magenta = lipgloss.Color("5")
	cyan    = lipgloss.Color("6")
	gray    = lipgloss.Color("8")
)

var (
	okStyle     = lipgloss.NewStyle().Foreground(green)
	warnStyle   = lipgloss.NewStyle().Foreground(yellow)
	errorStyle  = lipgloss.NewStyle().Foreground(red).Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(gray)
	headerStyle = lipgloss.NewStyle().Bold(true)
	badgeStyle  = lipgloss.NewStyle().Foreground(black).Background(cyan).Padding(0, 1)
)

var methodStyles = map[string]lipgloss.Style{
	http.MethodGet:    lipgloss.NewStyle().Foreground(green),
	http.MethodPost:   lipgloss.NewStyle().Foreground(blue),
	http.MethodPut:    lipgloss.NewStyle().Foreground(cyan),
	http.MethodDelete: lipgloss.NewStyle().Foreground(yellow),
	http.MethodPatch:  lipgloss.NewStyle().Foreground(magenta),
}

var statusStyles = map[string]lipgloss.Style{
	models.TaskTodo:         mutedStyle,
	models.TaskInProgress:   lipgloss.NewStyle().Foreground(blue),
	models.TaskReview:       lipgloss.NewStyle().Foreground(magenta),
	models.TaskDone:         okStyle,
	models.ProjectDraft:     mutedStyle,
	models.ProjectActive:    okStyle,
	models.ProjectOnHold:    warnStyle,
	models.ProjectCompleted: lipgloss.NewStyle().Foreground(blue),
	models.ProjectArchived:  mutedStyle,
	models.PriorityCritical: errorStyle,
	models.PriorityHigh:     warnStyle,
}

func styled(value string) string {
	if style, ok := statusStyles[value]; ok {
		return style.Render(value)
	}
	return value
}

func logRequest(w io.Writer, method, path string) {
	style, ok := methodStyles[method]
	if !ok {
		style = mutedStyle
	}
	fmt.Fprintf(w, "[%s] %s\n", style.Render(fmt.Sprintf(" %-7s", method)), path)
}

func renderTable(w io.Writer, headers []string, rows [][]string) {
	t := table.New().
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle.PaddingRight(2)
			}
			return lipgloss.NewStyle().PaddingRight(2)
		}).
		Headers(headers...).
		Rows(rows...)
	fprintln(w, t.Render())
}

func fprintln(w io.Writer, a ...any) {
	_, _ = fmt.Fprintln(w, a...)
}
