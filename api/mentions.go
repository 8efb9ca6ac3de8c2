package api

import (
	"context"
	"net/http"

	"github.com/jrsteele09/taskflow-client/models"
	"github.com/jrsteele09/taskflow-client/transport"
)

type Mentions struct {
	t *transport.Client
}

func (m *Mentions) List(ctx context.Context, filter models.MentionFilter) (models.MentionPage, error) {
	res, err := get[models.MentionPage](ctx, m.t, "/mentions", transport.WithQuery(filter.Query()))
	return res, wrap(err, "[api ListMentions]")
}

func (m *Mentions) UnreadCount(ctx context.Context) (int, error) {
	res, err := get[struct {
		UnreadCount int `json:"unread_count"`
	}](ctx, m.t, "/mentions/unread-count")
	return res.UnreadCount, wrap(err, "[api UnreadMentionCount]")
}

func (m *Mentions) MarkRead(ctx context.Context, ids []int64) error {
	body := map[string]any{"mention_ids": ids}
	return wrap(send(ctx, m.t, http.MethodPost, "/mentions/mark-as-read", body), "[api MarkMentionsRead] %d mentions", len(ids))
}

func (m *Mentions) MarkAllRead(ctx context.Context) error {
	return wrap(send(ctx, m.t, http.MethodPost, "/mentions/mark-all-read", nil), "[api MarkAllMentionsRead]")
}
