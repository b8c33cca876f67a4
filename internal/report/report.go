// Package report renders task summaries for the operator CLI.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/fazla-cloud/thunder-agency-platform/internal/models"
	"github.com/fazla-cloud/thunder-agency-platform/internal/query"
	"github.com/jedib0t/go-pretty/v6/table"
)

var csvHeader = []string{
	"id", "project_id", "project", "title", "content_type", "platform",
	"duration_seconds", "dimensions", "status", "assigned_to", "created_on",
}

// WriteCSV writes one row per task. created_on is the calendar day in loc.
func WriteCSV(w io.Writer, tasks []models.Task, loc *time.Location) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, task := range tasks {
		var project, duration, dimensions, assignee string
		if task.Project != nil {
			project = task.Project.Name
		}
		if task.DurationSeconds != nil {
			duration = strconv.Itoa(*task.DurationSeconds)
		}
		if task.Dimensions != nil {
			dimensions = *task.Dimensions
		}
		if task.AssignedTo != nil {
			assignee = *task.AssignedTo
		}

		row := []string{
			task.ID, task.ProjectID, project, task.Title, task.ContentType, task.Platform,
			duration, dimensions, string(task.Status), assignee, query.DayKey(task.CreatedAt, loc),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteSummary prints the status, daily and top category tables.
func WriteSummary(w io.Writer, summary query.TaskSummary) {
	statuses := newTable(w, "Tasks by status", "Status", "Count")
	for _, s := range summary.Statuses {
		statuses.AppendRow(table.Row{s.Status, s.Count})
	}
	statuses.AppendFooter(table.Row{"Total", summary.Total})
	statuses.Render()

	daily := newTable(w, "Tasks created per day", "Date", "Day", "Count")
	for _, d := range summary.Daily {
		daily.AppendRow(table.Row{d.Date, d.Label, d.Count})
	}
	daily.Render()

	writeCategories(w, "Top platforms", "Platform", summary.Platforms)
	writeCategories(w, "Top content types", "Content type", summary.ContentTypes)
}

// ProfileRow is one line of the users table.
type ProfileRow struct {
	Profile models.Profile
	Email   string
}

// WriteProfiles prints profiles with their login emails.
func WriteProfiles(w io.Writer, rows []ProfileRow) {
	t := newTable(w, "", "ID", "Email", "Name", "Role", "Active", "Created")
	for _, row := range rows {
		p := row.Profile
		t.AppendRow(table.Row{p.ID, row.Email, p.DisplayName("-"), p.Role, p.IsActive, p.CreatedAt.Format(query.DateLayout)})
	}
	t.AppendFooter(table.Row{"", "", "", "", "Total", len(rows)})
	t.Render()
}

func writeCategories(w io.Writer, title, column string, counts []query.CategoryCount) {
	t := newTable(w, title, column, "Count")
	for _, c := range counts {
		t.AppendRow(table.Row{c.Value, c.Count})
	}
	t.Render()
}

func newTable(w io.Writer, title string, header ...any) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	if title != "" {
		t.SetTitle(title)
	}
	t.AppendHeader(table.Row(header))
	return t
}
