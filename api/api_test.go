package api_test

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jrsteele09/taskflow-client/api"
	"github.com/jrsteele09/taskflow-client/apitest"
	"github.com/jrsteele09/taskflow-client/models"
	"github.com/jrsteele09/taskflow-client/session"
	"github.com/jrsteele09/taskflow-client/transport"
)

type testFixture struct {
	server *apitest.Server
	api    *api.Client
}

func setupTestFixture(t *testing.T) *testFixture {
	t.Helper()

	sessions, err := session.NewManager(session.NewMemoryStore(), session.NewMemoryStore())
	require.NoError(t, err)
	require.NoError(t, sessions.SetCredential(context.Background(), "T", &session.User{ID: 1}, session.ScopeEphemeral))

	server := apitest.NewServer(t)
	c, err := transport.New(server.URL(), sessions)
	require.NoError(t, err)
	return &testFixture{server: server, api: api.New(c)}
}

func TestTasks_ListSendsFilters(t *testing.T) {
	f := setupTestFixture(t)
	f.server.Handle(http.MethodGet, "/tasks", func(w http.ResponseWriter, r *http.Request) {
		apitest.Page(w, []models.Task{{ID: 1, Title: "a"}, {ID: 2, Title: "b"}}, apitest.PageMeta{CurrentPage: 2, PerPage: 2, Total: 7, LastPage: 4})
	})

	filters := models.DefaultTaskFilters()
	filters.ProjectID = 9
	filters.Page = 2
	page, err := f.api.Tasks.List(context.Background(), filters)
	require.NoError(t, err)
	require.Len(t, page.Data, 2)
	require.Equal(t, 7, page.Meta.Total)
	require.Equal(t, 4, page.Meta.LastPage)

	q := f.server.Last(t).Query
	require.Equal(t, "9", q.Get("project_id"))
	require.Equal(t, "2", q.Get("page"))
	require.Equal(t, "created_at", q.Get("sort"))
	require.Equal(t, "desc", q.Get("order"))
}

func TestTasks_WritesUseExpectedRoutes(t *testing.T) {
	f := setupTestFixture(t)
	ctx := context.Background()
	echo := apitest.Data(models.Task{ID: 3, Title: "x"})
	f.server.Handle(http.MethodPost, "/tasks/{id}/assign", echo)
	f.server.Handle(http.MethodPut, "/tasks/{id}/status", echo)
	f.server.Handle(http.MethodPut, "/tasks/{id}/priority", echo)
	f.server.Handle(http.MethodDelete, "/tasks/{id}", apitest.Data(nil))

	_, err := f.api.Tasks.Assign(ctx, 3, models.AssignTaskData{UserID: 8})
	require.NoError(t, err)
	var assign map[string]any
	f.server.Last(t).JSON(t, &assign)
	require.Equal(t, float64(8), assign["user_id"])

	_, err = f.api.Tasks.UpdateStatus(ctx, 3, models.UpdateStatusData{Status: models.TaskDone})
	require.NoError(t, err)
	_, err = f.api.Tasks.UpdatePriority(ctx, 3, models.UpdatePriorityData{Priority: models.PriorityHigh})
	require.NoError(t, err)
	require.NoError(t, f.api.Tasks.Delete(ctx, 3))

	require.Equal(t, 1, f.server.Count(http.MethodPut, "/tasks/3/status"))
	require.Equal(t, 1, f.server.Count(http.MethodPut, "/tasks/3/priority"))
	require.Equal(t, 1, f.server.Count(http.MethodDelete, "/tasks/3"))
}

func TestErrors_KeepAPIErrorReachable(t *testing.T) {
	f := setupTestFixture(t)
	f.server.Handle(http.MethodGet, "/projects/{id}", apitest.Status(http.StatusNotFound, "Project not found"))

	_, err := f.api.Projects.Get(context.Background(), 42)
	require.Error(t, err)
	require.True(t, transport.IsStatus(err, http.StatusNotFound))
	require.Equal(t, "Project not found", transport.Message(err, "fallback"))
	require.Contains(t, err.Error(), "[api GetProject] id 42")
}

func TestAuth_MeUnwrapsUser(t *testing.T) {
	f := setupTestFixture(t)
	f.server.Handle(http.MethodGet, "/auth/me", apitest.Data(map[string]any{
		"user": map[string]any{"id": 4, "name": "Grace", "email": "grace@example.com", "role": "admin"},
	}))

	u, err := f.api.Auth.Me(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(4), u.ID)
	require.True(t, u.IsAdmin())
}

func TestNotifications_UnreadCountShapes(t *testing.T) {
	f := setupTestFixture(t)
	ctx := context.Background()

	f.server.Handle(http.MethodGet, "/notifications/unread-count", func(w http.ResponseWriter, r *http.Request) {
		apitest.WriteJSON(w, http.StatusOK, map[string]any{"count": 6})
	})
	n, err := f.api.Notifications.UnreadCount(ctx)
	require.NoError(t, err)
	require.Equal(t, 6, n)

	f.server.Handle(http.MethodGet, "/notifications/unread-count", apitest.Data(map[string]any{"count": 2}))
	n, err = f.api.Notifications.UnreadCount(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, n)
}

func TestNotifications_ListQuery(t *testing.T) {
	f := setupTestFixture(t)
	f.server.Handle(http.MethodGet, "/notifications", func(w http.ResponseWriter, r *http.Request) {
		apitest.Page(w, []map[string]any{{"id": 1, "type": models.NotificationTaskAssigned, "read_at": nil}}, apitest.PageMeta{CurrentPage: 1, PerPage: 50, Total: 1, LastPage: 1})
	})

	page, err := f.api.Notifications.List(context.Background(), models.NotificationFilter{Limit: 50})
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	require.False(t, page.Data[0].IsRead())

	q := f.server.Last(t).Query
	require.Equal(t, "false", q.Get("unread_only"))
	require.Equal(t, "50", q.Get("limit"))
}

func TestTimeEntries_ActiveMayBeNull(t *testing.T) {
	f := setupTestFixture(t)
	ctx := context.Background()

	f.server.Handle(http.MethodGet, "/time-entries/active", apitest.Data(nil))
	active, err := f.api.TimeEntries.Active(ctx)
	require.NoError(t, err)
	require.Nil(t, active)

	f.server.Handle(http.MethodGet, "/time-entries/active", apitest.Data(map[string]any{
		"id": 11, "task_id": 3, "start_time": "2026-10-16T09:00:00Z", "end_time": nil,
	}))
	active, err = f.api.TimeEntries.Active(ctx)
	require.NoError(t, err)
	require.NotNil(t, active)
	require.True(t, active.Running())
}

func TestMentions_NestedPage(t *testing.T) {
	f := setupTestFixture(t)
	f.server.Handle(http.MethodGet, "/mentions", apitest.Data(map[string]any{
		"data": []map[string]any{{"id": 1, "is_read": false}, {"id": 2, "is_read": true}},
		"meta": map[string]any{"total": 2, "current_page": 1, "per_page": 20, "last_page": 1, "unread_count": 1},
	}))
	f.server.Handle(http.MethodPost, "/mentions/mark-as-read", apitest.Data(nil))

	page, err := f.api.Mentions.List(context.Background(), models.MentionFilter{Page: 1, UnreadOnly: true})
	require.NoError(t, err)
	require.Len(t, page.Data, 2)
	require.Equal(t, 1, page.Meta.UnreadCount)
	require.Equal(t, "true", f.server.Last(t).Query.Get("unread_only"))

	require.NoError(t, f.api.Mentions.MarkRead(context.Background(), []int64{1, 2}))
	var body struct {
		MentionIDs []int64 `json:"mention_ids"`
	}
	f.server.Last(t).JSON(t, &body)
	require.Equal(t, []int64{1, 2}, body.MentionIDs)
}

func TestFiles_UploadSendsFormFields(t *testing.T) {
	f := setupTestFixture(t)
	f.server.Handle(http.MethodPost, "/files", func(w http.ResponseWriter, r *http.Request) {
		file, header, err := r.FormFile("file")
		if err != nil {
			apitest.Fail(w, http.StatusBadRequest, err.Error(), nil)
			return
		}
		content, _ := io.ReadAll(file)
		apitest.Created(w, map[string]any{
			"id":                21,
			"original_filename": header.Filename,
			"size":              len(content),
			"attachable_type":   r.FormValue("attachable_type"),
			"attachable_id":     3,
		})
	})

	file, err := f.api.Files.Upload(context.Background(), "plan.txt", strings.NewReader("hello"), models.UploadFileData{AttachableType: "task", AttachableID: 3})
	require.NoError(t, err)
	require.Equal(t, int64(21), file.ID)
	require.Equal(t, "plan.txt", file.OriginalFilename)
	require.Equal(t, int64(5), file.Size)
	require.Equal(t, "task", file.AttachableType)
}

func TestFiles_BulkDownloadReturnsBytes(t *testing.T) {
	f := setupTestFixture(t)
	f.server.Handle(http.MethodPost, "/files/bulk-download", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/zip")
		_, _ = w.Write([]byte("PK"))
	})

	body, err := f.api.Files.BulkDownload(context.Background(), []int64{1, 2})
	require.NoError(t, err)
	require.Equal(t, []byte("PK"), body)
	require.Equal(t, "*/*", f.server.Last(t).Header.Get("Accept"))
}

func TestReports_TrendsDefaultDays(t *testing.T) {
	f := setupTestFixture(t)
	f.server.Handle(http.MethodGet, "/projects/{id}/reports/trends", apitest.Data(map[string]any{"project_id": 2}))

	_, err := f.api.Reports.CompletionTrends(context.Background(), 2, 0)
	require.NoError(t, err)
	require.Equal(t, "30", f.server.Last(t).Query.Get("days"))

	_, err = f.api.Reports.CompletionTrends(context.Background(), 2, 7)
	require.NoError(t, err)
	require.Equal(t, "7", f.server.Last(t).Query.Get("days"))
}

func TestAttachments_Preview(t *testing.T) {
	f := setupTestFixture(t)
	require.Equal(t, f.server.URL()+"/attachments/5/preview", f.api.Attachments.PreviewURL(5))
	require.True(t, f.api.Attachments.CanPreview("application/pdf"))
	require.False(t, f.api.Attachments.CanPreview("application/zip"))
}
