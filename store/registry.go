package store

import (
	"github.com/jrsteele09/taskflow-client/api"
	"github.com/jrsteele09/taskflow-client/session"
)

// Resetter is any store that can return to its empty state.
type Resetter interface {
	Reset()
}

// Registry owns one instance of every store.
type Registry struct {
	Auth          *AuthStore
	Projects      *ProjectStore
	Tasks         *TaskStore
	Comments      *CommentStore
	Attachments   *AttachmentStore
	Tags          *TagStore
	Files         *FileStore
	TimeTracking  *TimeTrackingStore
	Notifications *NotificationStore
	Mentions      *MentionStore
	Dependencies  *DependencyStore
	Activities    *ActivityStore
	Reports       *ReportStore
	Dashboard     *DashboardStore
	Users         *UserStore
}

func NewRegistry(c *api.Client, sessions *session.Manager, opts ...Option) *Registry {
	return &Registry{
		Auth:          NewAuthStore(c.Auth, sessions, opts...),
		Projects:      NewProjectStore(c.Projects, opts...),
		Tasks:         NewTaskStore(c.Tasks, opts...),
		Comments:      NewCommentStore(c.Comments, opts...),
		Attachments:   NewAttachmentStore(c.Attachments, opts...),
		Tags:          NewTagStore(c.Tags, opts...),
		Files:         NewFileStore(c.Files, opts...),
		TimeTracking:  NewTimeTrackingStore(c.TimeEntries, opts...),
		Notifications: NewNotificationStore(c.Notifications, opts...),
		Mentions:      NewMentionStore(c.Mentions, opts...),
		Dependencies:  NewDependencyStore(c.Dependencies, opts...),
		Activities:    NewActivityStore(c.Activities, opts...),
		Reports:       NewReportStore(c.Reports, opts...),
		Dashboard:     NewDashboardStore(c.Dashboard, opts...),
		Users:         NewUserStore(c.Users, opts...),
	}
}

func (r *Registry) all() []Resetter {
	return []Resetter{
		r.Auth, r.Projects, r.Tasks, r.Comments, r.Attachments, r.Tags, r.Files, r.TimeTracking,
		r.Notifications, r.Mentions, r.Dependencies, r.Activities, r.Reports, r.Dashboard, r.Users,
	}
}

// ResetAll empties every store so nothing cached survives a logout.
func (r *Registry) ResetAll() {
	for _, s := range r.all() {
		s.Reset()
	}
}
