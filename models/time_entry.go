package models

import (
	"net/url"
	"strconv"
	"time"
)

type TimeEntry struct {
	ID          int64      `json:"id"`
	TaskID      int64      `json:"task_id"`
	UserID      int64      `json:"user_id"`
	StartTime   time.Time  `json:"start_time"`
	EndTime     *time.Time `json:"end_time"`
	Duration    int64      `json:"duration"`
	Description *string    `json:"description"`
	Billable    bool       `json:"billable"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	Task        *EntryTask `json:"task,omitempty"`
	User        *UserRef   `json:"user,omitempty"`
}

func (e TimeEntry) GetID() int64 { return e.ID }

// Running reports whether the entry has not been stopped.
func (e TimeEntry) Running() bool {
	return e.EndTime == nil
}

// EntryTask is the task summary embedded in a time entry.
type EntryTask struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Project *struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	} `json:"project,omitempty"`
}

type CreateTimeEntryData struct {
	TaskID      int64      `json:"task_id"`
	StartTime   time.Time  `json:"start_time"`
	EndTime     *time.Time `json:"end_time,omitempty"`
	Duration    *int64     `json:"duration,omitempty"`
	Description string     `json:"description,omitempty"`
	Billable    *bool      `json:"billable,omitempty"`
}

type UpdateTimeEntryData struct {
	StartTime   *time.Time `json:"start_time,omitempty"`
	EndTime     *time.Time `json:"end_time,omitempty"`
	Duration    *int64     `json:"duration,omitempty"`
	Description *string    `json:"description,omitempty"`
	Billable    *bool      `json:"billable,omitempty"`
}

type StartTimerData struct {
	TaskID      int64  `json:"task_id"`
	Description string `json:"description,omitempty"`
}

type TimeStats struct {
	TotalHours       float64 `json:"total_hours"`
	BillableHours    float64 `json:"billable_hours"`
	NonBillableHours float64 `json:"non_billable_hours"`
	EntriesCount     int     `json:"entries_count"`
}

type TimesheetDay struct {
	Date          string      `json:"date"`
	Entries       []TimeEntry `json:"entries"`
	TotalDuration int64       `json:"total_duration"`
}

type TimeReport struct {
	UserID        int64   `json:"user_id"`
	UserName      string  `json:"user_name"`
	TotalHours    float64 `json:"total_hours"`
	BillableHours float64 `json:"billable_hours"`
	Projects      []struct {
		ProjectID   int64   `json:"project_id"`
		ProjectName string  `json:"project_name"`
		Hours       float64 `json:"hours"`
	} `json:"projects"`
}

type TimeEntryFilter struct {
	TaskID    int64
	UserID    int64
	StartDate string
	EndDate   string
	Billable  *bool
}

func (f TimeEntryFilter) Query() url.Values {
	q := url.Values{}
	setInt64(q, "task_id", f.TaskID)
	setInt64(q, "user_id", f.UserID)
	setString(q, "start_date", f.StartDate)
	setString(q, "end_date", f.EndDate)
	if f.Billable != nil {
		q.Set("billable", strconv.FormatBool(*f.Billable))
	}
	return q
}

// TimeRangeFilter scopes stats, timesheets and reports.
type TimeRangeFilter struct {
	UserID    int64
	ProjectID int64
	StartDate string
	EndDate   string
}

func (f TimeRangeFilter) Query() url.Values {
	q := url.Values{}
	setInt64(q, "user_id", f.UserID)
	setInt64(q, "project_id", f.ProjectID)
	setString(q, "start_date", f.StartDate)
	setString(q, "end_date", f.EndDate)
	return q
}
