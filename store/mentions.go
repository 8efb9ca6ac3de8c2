package store

import (
	"context"
	"sync/atomic"

	"github.com/jrsteele09/taskflow-client/api"
	"github.com/jrsteele09/taskflow-client/models"
	"github.com/jrsteele09/taskflow-client/transport"
)

type MentionStore struct {
	*Collection[models.Mention, models.MentionFilter]
	api    *api.Mentions
	unread atomic.Int64
}

func NewMentionStore(mentions *api.Mentions, opts ...Option) *MentionStore {
	s := &MentionStore{api: mentions}
	s.Collection = newCollection(collectionSpec[models.Mention, models.MentionFilter]{
		plural:   "mentions",
		singular: "mention",
		list: func(ctx context.Context, f models.MentionFilter, p Page) ([]models.Mention, transport.PageMeta, error) {
			f.Page = p.CurrentPage
			page, err := mentions.List(ctx, f)
			if err != nil {
				return nil, transport.PageMeta{}, err
			}
			s.unread.Store(int64(page.Meta.UnreadCount))
			return page.Data, transport.PageMeta{
				CurrentPage: page.Meta.CurrentPage,
				PerPage:     page.Meta.PerPage,
				Total:       page.Meta.Total,
				LastPage:    page.Meta.LastPage,
			}, nil
		},
		get: func(context.Context, int64) (models.Mention, error) {
			return models.Mention{}, errUnsupported("mentions")
		},
	}, newSettings(opts))
	return s
}

// Fetch loads the first page, optionally only unread mentions.
func (s *MentionStore) Fetch(ctx context.Context, unreadOnly bool) {
	s.SetFilters(models.MentionFilter{UnreadOnly: unreadOnly})
	s.FetchList(ctx, nil, true)
}

// FetchUnreadCount keeps the previous count when the request fails.
func (s *MentionStore) FetchUnreadCount(ctx context.Context) {
	n, err := s.api.UnreadCount(ctx)
	if err != nil {
		s.log.Debug().Err(err).Msg("unread count unavailable")
		return
	}
	s.unread.Store(int64(n))
}

func (s *MentionStore) UnreadCount() int {
	return int(s.unread.Load())
}

func (s *MentionStore) HasUnread() bool {
	return s.UnreadCount() > 0
}

func (s *MentionStore) Unread() []models.Mention {
	var out []models.Mention
	for _, m := range s.Items() {
		if !m.IsRead {
			out = append(out, m)
		}
	}
	return out
}

// MarkRead marks ids read locally and re-reads the server's unread count.
func (s *MentionStore) MarkRead(ctx context.Context, ids []int64) error {
	if err := s.api.MarkRead(ctx, ids); err != nil {
		return s.fail(err, "Failed to mark mentions as read")
	}
	for _, id := range ids {
		s.patch(id, func(m *models.Mention) { m.IsRead = true })
	}
	s.FetchUnreadCount(ctx)
	return nil
}

func (s *MentionStore) MarkAllRead(ctx context.Context) error {
	if err := s.api.MarkAllRead(ctx); err != nil {
		return s.fail(err, "Failed to mark all mentions as read")
	}
	for _, m := range s.Items() {
		s.patch(m.ID, func(m *models.Mention) { m.IsRead = true })
	}
	s.unread.Store(0)
	return nil
}

func (s *MentionStore) Reset() {
	s.Collection.Reset()
	s.unread.Store(0)
}
