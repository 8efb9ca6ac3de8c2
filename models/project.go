package models

import "time"

// Project statuses.
const (
	ProjectDraft     = "draft"
	ProjectActive    = "active"
	ProjectOnHold    = "on_hold"
	ProjectCompleted = "completed"
	ProjectArchived  = "archived"
)

type Project struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	Description  string    `json:"description,omitempty"`
	Status       string    `json:"status"`
	Priority     string    `json:"priority"`
	StartDate    string    `json:"start_date,omitempty"`
	EndDate      string    `json:"end_date,omitempty"`
	Budget       *float64  `json:"budget,omitempty"`
	Color        string    `json:"color,omitempty"`
	IsPublic     bool      `json:"is_public"`
	Owner        *User     `json:"owner,omitempty"`
	MembersCount int       `json:"members_count,omitempty"`
	TasksCount   int       `json:"tasks_count,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (p Project) GetID() int64 { return p.ID }

// Member roles within a project.
const (
	MemberOwner   = "owner"
	MemberManager = "manager"
	MemberMember  = "member"
	MemberViewer  = "viewer"
)

type ProjectMember struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	ProjectID int64     `json:"project_id"`
	Role      string    `json:"role"`
	User      *User     `json:"user,omitempty"`
	JoinedAt  string    `json:"joined_at,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (m ProjectMember) GetID() int64 { return m.ID }

type CreateProjectData struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Status      string   `json:"status"`
	Priority    string   `json:"priority"`
	StartDate   string   `json:"start_date,omitempty"`
	EndDate     string   `json:"end_date,omitempty"`
	Budget      *float64 `json:"budget,omitempty"`
	Color       string   `json:"color,omitempty"`
	IsPublic    *bool    `json:"is_public,omitempty"`
}

// UpdateProjectData sends only the fields that are set.
type UpdateProjectData struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Status      *string  `json:"status,omitempty"`
	Priority    *string  `json:"priority,omitempty"`
	StartDate   *string  `json:"start_date,omitempty"`
	EndDate     *string  `json:"end_date,omitempty"`
	Budget      *float64 `json:"budget,omitempty"`
	Color       *string  `json:"color,omitempty"`
	IsPublic    *bool    `json:"is_public,omitempty"`
}
