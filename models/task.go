package models

import "time"

// Task statuses.
const (
	TaskTodo       = "todo"
	TaskInProgress = "in_progress"
	TaskReview     = "review"
	TaskDone       = "done"
)

type Task struct {
	ID             int64     `json:"id"`
	ProjectID      int64     `json:"project_id"`
	ProjectName    string    `json:"project_name,omitempty"`
	ParentID       *int64    `json:"parent_id,omitempty"`
	Title          string    `json:"title"`
	Description    string    `json:"description,omitempty"`
	Status         string    `json:"status"`
	Priority       string    `json:"priority"`
	DueDate        string    `json:"due_date,omitempty"`
	EstimatedHours *float64  `json:"estimated_hours,omitempty"`
	ActualHours    *float64  `json:"actual_hours,omitempty"`
	Order          int       `json:"order"`
	AssignedTo     *User     `json:"assigned_to,omitempty"`
	CreatedBy      *User     `json:"created_by,omitempty"`
	SubtasksCount  int       `json:"subtasks_count,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (t Task) GetID() int64 { return t.ID }

type CreateTaskData struct {
	ProjectID      int64    `json:"project_id"`
	ParentID       *int64   `json:"parent_id,omitempty"`
	Title          string   `json:"title"`
	Description    string   `json:"description,omitempty"`
	Status         string   `json:"status,omitempty"`
	Priority       string   `json:"priority,omitempty"`
	DueDate        string   `json:"due_date,omitempty"`
	EstimatedHours *float64 `json:"estimated_hours,omitempty"`
	AssignedTo     *int64   `json:"assigned_to,omitempty"`
}

// UpdateTaskData sends only the fields that are set.
type UpdateTaskData struct {
	ProjectID      *int64   `json:"project_id,omitempty"`
	ParentID       *int64   `json:"parent_id,omitempty"`
	Title          *string  `json:"title,omitempty"`
	Description    *string  `json:"description,omitempty"`
	Status         *string  `json:"status,omitempty"`
	Priority       *string  `json:"priority,omitempty"`
	DueDate        *string  `json:"due_date,omitempty"`
	EstimatedHours *float64 `json:"estimated_hours,omitempty"`
	AssignedTo     *int64   `json:"assigned_to,omitempty"`
}

type AssignTaskData struct {
	UserID int64 `json:"user_id"`
}

type UpdateStatusData struct {
	Status string `json:"status"`
}

type UpdatePriorityData struct {
	Priority string `json:"priority"`
}
