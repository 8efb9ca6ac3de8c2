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

func TestRegistry_ResetAllEmptiesEveryStore(t *testing.T) {
	f := setupTestFixture(t)
	f.server.Handle(http.MethodGet, "/tasks", pagedTasks(20, 15))
	f.server.Handle(http.MethodGet, "/projects", func(w http.ResponseWriter, r *http.Request) {
		apitest.Page(w, []models.Project{{ID: 1, Name: "Apollo"}}, apitest.PageMeta{CurrentPage: 1, PerPage: 15, Total: 1, LastPage: 1})
	})
	f.server.Handle(http.MethodGet, "/tags", apitest.Data([]models.Tag{{ID: 1, Name: "urgent"}}))
	f.server.Handle(http.MethodPost, "/time-entries/start", apitest.Data(models.TimeEntry{ID: 3, StartTime: fixedNow}))

	r := store.NewRegistry(f.api, f.sessions, store.WithPerPage(15))
	ctx := context.Background()
	require.NoError(t, r.Auth.Initialize(ctx))
	r.Tasks.FetchList(ctx, nil, true)
	r.Projects.FetchList(ctx, nil, true)
	r.Tags.FetchList(ctx, nil, true)
	r.Notifications.Add(models.Notification{ID: 1})
	_, err := r.TimeTracking.StartTimer(ctx, 1, "")
	require.NoError(t, err)
	r.Files.ToggleSelection(1)

	require.Equal(t, 15, r.Tasks.Len())
	require.Equal(t, 1, r.Projects.Len())
	require.NotNil(t, r.Auth.User())

	r.ResetAll()

	require.Zero(t, r.Tasks.Len())
	require.Zero(t, r.Projects.Len())
	require.Zero(t, r.Tags.Len())
	require.Zero(t, r.Notifications.Len())
	require.Zero(t, r.Notifications.UnreadCount())
	require.False(t, r.TimeTracking.IsTimerRunning())
	require.False(t, r.Files.HasSelection())
	require.Nil(t, r.Auth.User())
	// The credential itself belongs to the session.
	require.True(t, r.Auth.IsAuthenticated(ctx))
}
