package models

import "time"

// Dependency types.
const (
	DependencyBlocks    = "blocks"
	DependencyBlockedBy = "blocked_by"
	DependencyRelatedTo = "related_to"
)

type Dependency struct {
	ID              int64     `json:"id"`
	TaskID          int64     `json:"task_id"`
	DependsOnTaskID int64     `json:"depends_on_task_id"`
	DependencyType  string    `json:"dependency_type"`
	DependsOnTask   TaskRef   `json:"depends_on_task"`
	CreatedBy       UserRef   `json:"created_by"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (d Dependency) GetID() int64 { return d.ID }

// TaskRef is the task summary embedded in dependency records.
type TaskRef struct {
	ID         int64    `json:"id"`
	Title      string   `json:"title"`
	Status     string   `json:"status"`
	Priority   string   `json:"priority"`
	DueDate    *string  `json:"due_date"`
	AssignedTo *UserRef `json:"assigned_to"`
}

type DependencyTree struct {
	ID           int64            `json:"id"`
	Title        string           `json:"title"`
	Status       string           `json:"status"`
	Priority     string           `json:"priority"`
	DueDate      *string          `json:"due_date"`
	AssignedTo   *UserRef         `json:"assigned_to"`
	Dependencies []DependencyEdge `json:"dependencies"`
	Circular     bool             `json:"circular,omitempty"`
}

type DependencyEdge struct {
	DependencyID   int64          `json:"dependency_id"`
	DependencyType string         `json:"dependency_type"`
	Node           DependencyTree `json:"node"`
}

type CreateDependencyData struct {
	DependsOnTaskID int64  `json:"depends_on_task_id"`
	DependencyType  string `json:"dependency_type"`
}
