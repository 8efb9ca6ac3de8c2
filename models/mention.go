package models

import (
	"net/url"
	"strconv"
	"time"
)

type Mention struct {
	ID          int64          `json:"id"`
	Comment     MentionComment `json:"comment"`
	MentionedBy UserRef        `json:"mentioned_by"`
	IsRead      bool           `json:"is_read"`
	CreatedAt   time.Time      `json:"created_at"`
}

func (m Mention) GetID() int64 { return m.ID }

type MentionComment struct {
	ID              int64   `json:"id"`
	Content         string  `json:"content"`
	User            UserRef `json:"user"`
	CommentableType string  `json:"commentable_type"`
	CommentableID   int64   `json:"commentable_id"`
	Commentable     struct {
		ID        int64  `json:"id"`
		Title     string `json:"title,omitempty"`
		Name      string `json:"name,omitempty"`
		Type      string `json:"type"`
		ProjectID int64  `json:"project_id,omitempty"`
	} `json:"commentable"`
}

// MentionPage is the data of GET /mentions, which nests its own pagination block.
type MentionPage struct {
	Data []Mention `json:"data"`
	Meta struct {
		Total       int `json:"total"`
		CurrentPage int `json:"current_page"`
		PerPage     int `json:"per_page"`
		LastPage    int `json:"last_page"`
		UnreadCount int `json:"unread_count"`
	} `json:"meta"`
}

type MentionFilter struct {
	Page       int
	PerPage    int
	UnreadOnly bool
}

func (f MentionFilter) Query() url.Values {
	q := url.Values{}
	setInt(q, "page", f.Page)
	setInt(q, "per_page", f.PerPage)
	if f.UnreadOnly {
		q.Set("unread_only", strconv.FormatBool(true))
	}
	return q
}
