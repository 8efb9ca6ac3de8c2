package models

import "time"

type Tag struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Color         string    `json:"color"`
	TasksCount    int       `json:"tasks_count,omitempty"`
	ProjectsCount int       `json:"projects_count,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (t Tag) GetID() int64 { return t.ID }

type CreateTagData struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

type UpdateTagData struct {
	Name  *string `json:"name,omitempty"`
	Color *string `json:"color,omitempty"`
}
