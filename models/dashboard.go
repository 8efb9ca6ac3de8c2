package models

import "time"

type DashboardStats struct {
	TotalProjects  int `json:"total_projects"`
	ActiveProjects int `json:"active_projects"`
	TotalTasks     int `json:"total_tasks"`
	MyTasks        int `json:"my_tasks"`
	CompletedTasks int `json:"completed_tasks"`
	PendingTasks   int `json:"pending_tasks"`
	OverdueTasks   int `json:"overdue_tasks"`
	TasksByStatus  struct {
		Todo       int `json:"todo"`
		InProgress int `json:"in_progress"`
		Review     int `json:"review"`
		Done       int `json:"done"`
	} `json:"tasks_by_status"`
	TasksByPriority struct {
		Low      int `json:"low"`
		Medium   int `json:"medium"`
		High     int `json:"high"`
		Critical int `json:"critical"`
	} `json:"tasks_by_priority"`
}

type RecentProject struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	Status       string    `json:"status"`
	Priority     string    `json:"priority"`
	Owner        UserRef   `json:"owner"`
	MembersCount int       `json:"members_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (p RecentProject) GetID() int64 { return p.ID }

type RecentTask struct {
	ID          int64     `json:"id"`
	ProjectID   int64     `json:"project_id"`
	ProjectName string    `json:"project_name"`
	Title       string    `json:"title"`
	Status      string    `json:"status"`
	Priority    string    `json:"priority"`
	DueDate     *string   `json:"due_date"`
	AssignedTo  *UserRef  `json:"assigned_to"`
	CreatedBy   UserRef   `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (t RecentTask) GetID() int64 { return t.ID }
