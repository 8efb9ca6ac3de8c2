package store

import (
	"context"
	"sync"
	"time"

	"github.com/jrsteele09/taskflow-client/api"
	"github.com/jrsteele09/taskflow-client/models"
	"github.com/jrsteele09/taskflow-client/transport"
)

// NotificationStore caches the latest notifications and the server's unread count.
type NotificationStore struct {
	*Collection[models.Notification, models.NotificationFilter]
	api   *api.Notifications
	limit int
	now   func() time.Time

	countMu  sync.RWMutex
	unread   int
	settings *models.NotificationSettings
}

func NewNotificationStore(notifications *api.Notifications, opts ...Option) *NotificationStore {
	s := newSettings(opts)
	return &NotificationStore{
		Collection: newCollection(collectionSpec[models.Notification, models.NotificationFilter]{
			plural:   "notifications",
			singular: "notification",
			defaults: models.NotificationFilter{Limit: s.notificationLimit},
			list: func(ctx context.Context, f models.NotificationFilter, p Page) ([]models.Notification, transport.PageMeta, error) {
				if p.CurrentPage > 1 {
					f.Page = p.CurrentPage
				}
				return pageOf(notifications.List(ctx, f))
			},
			get: notifications.Get,
		}, s),
		api:   notifications,
		limit: s.notificationLimit,
		now:   s.now,
	}
}

// Fetch loads the newest notifications, then refreshes the unread count.
func (s *NotificationStore) Fetch(ctx context.Context, unreadOnly bool) {
	s.SetFilters(models.NotificationFilter{UnreadOnly: unreadOnly, Limit: s.limit})
	s.FetchList(ctx, nil, true)
	s.FetchUnreadCount(ctx)
}

// FetchUnreadCount keeps the previous count when the request fails.
func (s *NotificationStore) FetchUnreadCount(ctx context.Context) {
	n, err := s.api.UnreadCount(ctx)
	if err != nil {
		s.log.Debug().Err(err).Msg("unread count unavailable")
		return
	}
	s.countMu.Lock()
	s.unread = n
	s.countMu.Unlock()
}

func (s *NotificationStore) UnreadCount() int {
	s.countMu.RLock()
	defer s.countMu.RUnlock()
	return s.unread
}

func (s *NotificationStore) HasUnread() bool {
	return s.UnreadCount() > 0
}

func (s *NotificationStore) Unread() []models.Notification {
	return s.filter(func(n models.Notification) bool { return !n.IsRead() })
}

func (s *NotificationStore) Read() []models.Notification {
	return s.filter(models.Notification.IsRead)
}

func (s *NotificationStore) MarkRead(ctx context.Context, id int64) error {
	if err := s.api.MarkRead(ctx, id); err != nil {
		return s.fail(err, "Failed to mark as read")
	}
	if _, ok := s.Find(id); ok {
		now := s.now()
		s.patch(id, func(n *models.Notification) { n.ReadAt = &now })
		s.addUnread(-1)
	}
	return nil
}

func (s *NotificationStore) MarkUnread(ctx context.Context, id int64) error {
	if err := s.api.MarkUnread(ctx, id); err != nil {
		return s.fail(err, "Failed to mark as unread")
	}
	if _, ok := s.Find(id); ok {
		s.patch(id, func(n *models.Notification) { n.ReadAt = nil })
		s.addUnread(1)
	}
	return nil
}

func (s *NotificationStore) MarkAllRead(ctx context.Context) error {
	if err := s.api.MarkAllRead(ctx); err != nil {
		return s.fail(err, "Failed to mark all as read")
	}
	now := s.now()
	for _, n := range s.Unread() {
		s.patch(n.ID, func(n *models.Notification) { n.ReadAt = &now })
	}
	s.countMu.Lock()
	s.unread = 0
	s.countMu.Unlock()
	return nil
}

func (s *NotificationStore) Remove(ctx context.Context, id int64) error {
	cached, ok := s.Find(id)
	if err := drop(s.Collection, "Failed to delete notification", id, func() error {
		return s.api.Delete(ctx, id)
	}); err != nil {
		return err
	}
	if ok && !cached.IsRead() {
		s.addUnread(-1)
	}
	return nil
}

// DeleteAllRead deletes read notifications on the server and keeps only the unread ones.
func (s *NotificationStore) DeleteAllRead(ctx context.Context) error {
	if err := s.api.DeleteAllRead(ctx); err != nil {
		return s.fail(err, "Failed to delete read notifications")
	}
	for _, n := range s.Read() {
		s.remove(n.ID)
	}
	return nil
}

func (s *NotificationStore) FetchSettings(ctx context.Context) error {
	settings, err := s.api.Settings(ctx)
	if err != nil {
		return s.fail(err, "Failed to fetch settings")
	}
	s.setSettings(settings)
	return nil
}

func (s *NotificationStore) UpdateSettings(ctx context.Context, update models.NotificationSettingsUpdate) error {
	settings, err := s.api.UpdateSettings(ctx, update)
	if err != nil {
		return s.fail(err, "Failed to update settings")
	}
	s.setSettings(settings)
	return nil
}

func (s *NotificationStore) Settings() (models.NotificationSettings, bool) {
	s.countMu.RLock()
	defer s.countMu.RUnlock()
	if s.settings == nil {
		return models.NotificationSettings{}, false
	}
	return *s.settings, true
}

// Add records a pushed notification at the front. A notification already cached is replaced
// in place without touching the unread count.
func (s *NotificationStore) Add(n models.Notification) {
	if _, ok := s.Find(n.ID); ok {
		s.replace(n)
		return
	}
	s.prepend(n)
	if !n.IsRead() {
		s.addUnread(1)
	}
}

func (s *NotificationStore) Reset() {
	s.Collection.Reset()
	s.countMu.Lock()
	s.unread = 0
	s.settings = nil
	s.countMu.Unlock()
}

func (s *NotificationStore) setSettings(settings models.NotificationSettings) {
	s.countMu.Lock()
	s.settings = &settings
	s.countMu.Unlock()
}

func (s *NotificationStore) addUnread(delta int) {
	s.countMu.Lock()
	defer s.countMu.Unlock()
	s.unread = max(s.unread+delta, 0)
}

func (s *NotificationStore) filter(keep func(models.Notification) bool) []models.Notification {
	var out []models.Notification
	for _, n := range s.Items() {
		if keep(n) {
			out = append(out, n)
		}
	}
	return out
}
