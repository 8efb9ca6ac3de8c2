package models

import "time"

type Comment struct {
	ID              int64     `json:"id"`
	Content         string    `json:"content"`
	User            *User     `json:"user,omitempty"`
	CommentableType string    `json:"commentable_type"`
	CommentableID   int64     `json:"commentable_id"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (c Comment) GetID() int64 { return c.ID }

type CommentData struct {
	Content string `json:"content"`
}
