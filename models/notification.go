package models

import (
	"net/url"
	"strconv"
	"time"
)

// Notification types.
const (
	NotificationTaskAssigned      = "task_assigned"
	NotificationTaskCompleted     = "task_completed"
	NotificationTaskCommented     = "task_commented"
	NotificationTaskMentioned     = "task_mentioned"
	NotificationTaskDueSoon       = "task_due_soon"
	NotificationTaskOverdue       = "task_overdue"
	NotificationProjectInvited    = "project_invited"
	NotificationProjectUpdated    = "project_updated"
	NotificationTimeEntryApproved = "time_entry_approved"
	NotificationFileUploaded      = "file_uploaded"
)

type Notification struct {
	ID             int64            `json:"id"`
	Type           string           `json:"type"`
	NotifiableType string           `json:"notifiable_type"`
	NotifiableID   int64            `json:"notifiable_id"`
	Data           NotificationData `json:"data"`
	ReadAt         *time.Time       `json:"read_at"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

func (n Notification) GetID() int64 { return n.ID }

func (n Notification) IsRead() bool {
	return n.ReadAt != nil
}

type NotificationData struct {
	Title      string `json:"title"`
	Message    string `json:"message"`
	Icon       string `json:"icon,omitempty"`
	ActionURL  string `json:"action_url,omitempty"`
	ActionText string `json:"action_text,omitempty"`
	Actor      *struct {
		ID     int64  `json:"id"`
		Name   string `json:"name"`
		Avatar string `json:"avatar,omitempty"`
	} `json:"actor,omitempty"`
	Context *struct {
		ProjectID   int64  `json:"project_id,omitempty"`
		ProjectName string `json:"project_name,omitempty"`
		TaskID      int64  `json:"task_id,omitempty"`
		TaskTitle   string `json:"task_title,omitempty"`
		CommentID   int64  `json:"comment_id,omitempty"`
	} `json:"context,omitempty"`
}

type NotificationSettings struct {
	EmailNotifications bool   `json:"email_notifications"`
	PushNotifications  bool   `json:"push_notifications"`
	TaskAssigned       bool   `json:"task_assigned"`
	TaskCompleted      bool   `json:"task_completed"`
	TaskCommented      bool   `json:"task_commented"`
	TaskMentioned      bool   `json:"task_mentioned"`
	TaskDueSoon        bool   `json:"task_due_soon"`
	ProjectUpdates     bool   `json:"project_updates"`
	DigestFrequency    string `json:"digest_frequency"`
	QuietHoursEnabled  bool   `json:"quiet_hours_enabled"`
	QuietHoursStart    string `json:"quiet_hours_start"`
	QuietHoursEnd      string `json:"quiet_hours_end"`
}

// NotificationSettingsUpdate sends only the fields that are set.
type NotificationSettingsUpdate struct {
	EmailNotifications *bool   `json:"email_notifications,omitempty"`
	PushNotifications  *bool   `json:"push_notifications,omitempty"`
	TaskAssigned       *bool   `json:"task_assigned,omitempty"`
	TaskCompleted      *bool   `json:"task_completed,omitempty"`
	TaskCommented      *bool   `json:"task_commented,omitempty"`
	TaskMentioned      *bool   `json:"task_mentioned,omitempty"`
	TaskDueSoon        *bool   `json:"task_due_soon,omitempty"`
	ProjectUpdates     *bool   `json:"project_updates,omitempty"`
	DigestFrequency    *string `json:"digest_frequency,omitempty"`
	QuietHoursEnabled  *bool   `json:"quiet_hours_enabled,omitempty"`
	QuietHoursStart    *string `json:"quiet_hours_start,omitempty"`
	QuietHoursEnd      *string `json:"quiet_hours_end,omitempty"`
}

type NotificationPreferences struct {
	Channels struct {
		Email bool `json:"email"`
		Push  bool `json:"push"`
		InApp bool `json:"in_app"`
	} `json:"channels"`
	Events map[string]bool `json:"events"`
	Digest struct {
		Enabled   bool   `json:"enabled"`
		Frequency string `json:"frequency"`
		Time      string `json:"time"`
	} `json:"digest"`
}

type NotificationStats struct {
	Total    int `json:"total"`
	Unread   int `json:"unread"`
	Read     int `json:"read"`
	Today    int `json:"today"`
	ThisWeek int `json:"this_week"`
}

type NotificationFilter struct {
	UnreadOnly bool
	Type       string
	Limit      int
	Page       int
}

func (f NotificationFilter) Query() url.Values {
	q := url.Values{}
	q.Set("unread_only", strconv.FormatBool(f.UnreadOnly))
	setString(q, "type", f.Type)
	setInt(q, "limit", f.Limit)
	setInt(q, "page", f.Page)
	return q
}
