package store_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jrsteele09/taskflow-client/apitest"
	"github.com/jrsteele09/taskflow-client/models"
	"github.com/jrsteele09/taskflow-client/store"
)

func TestMentionStore_FetchAndMarkRead(t *testing.T) {
	f := setupTestFixture(t)
	f.server.Handle(http.MethodGet, "/mentions", apitest.Data(map[string]any{
		"data": []models.Mention{{ID: 1}, {ID: 2}, {ID: 3, IsRead: true}},
		"meta": map[string]any{"total": 3, "current_page": 1, "per_page": 15, "last_page": 1, "unread_count": 2},
	}))
	f.server.Handle(http.MethodPost, "/mentions/mark-as-read", apitest.Data(nil))
	f.server.Handle(http.MethodGet, "/mentions/unread-count", apitest.Data(map[string]int{"unread_count": 1}))
	s := store.NewMentionStore(f.api.Mentions)
	ctx := context.Background()

	s.Fetch(ctx, true)
	require.Equal(t, "true", f.server.Last(t).Query.Get("unread_only"))
	require.Equal(t, 2, s.UnreadCount())
	require.Equal(t, []int64{1, 2}, ids(s.Unread()))

	require.NoError(t, s.MarkRead(ctx, []int64{1}))
	require.Equal(t, []int64{2}, ids(s.Unread()))
	require.Equal(t, 1, s.UnreadCount())
}

func TestMentionStore_MarkAllRead(t *testing.T) {
	f := setupTestFixture(t)
	f.server.Handle(http.MethodGet, "/mentions", apitest.Data(map[string]any{
		"data": []models.Mention{{ID: 1}, {ID: 2}},
		"meta": map[string]any{"total": 2, "current_page": 1, "per_page": 15, "last_page": 1, "unread_count": 2},
	}))
	f.server.Handle(http.MethodPost, "/mentions/mark-all-read", apitest.Data(nil))
	s := store.NewMentionStore(f.api.Mentions)
	ctx := context.Background()

	s.Fetch(ctx, false)
	require.NoError(t, s.MarkAllRead(ctx))
	require.Empty(t, s.Unread())
	require.False(t, s.HasUnread())
}

func TestMentionStore_FetchOneIsUnsupported(t *testing.T) {
	f := setupTestFixture(t)
	s := store.NewMentionStore(f.api.Mentions)

	s.FetchOne(context.Background(), 1)
	require.Equal(t, "Failed to fetch mention", s.Err())
	require.Empty(t, f.server.Requests())
}
