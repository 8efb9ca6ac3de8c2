package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jrsteele09/taskflow-client/apitest"
	"github.com/jrsteele09/taskflow-client/models"
	"github.com/jrsteele09/taskflow-client/session"
)

type testFixture struct {
	server    *apitest.Server
	configDir string
}

func setupTestFixture(t *testing.T) *testFixture {
	t.Helper()
	f := &testFixture{server: apitest.NewServer(t), configDir: t.TempDir()}
	t.Setenv("TASKFLOW_API_URL", f.server.URL())
	t.Setenv("TASKFLOW_HOME", f.configDir)
	t.Setenv("TASKFLOW_STREAM_URL", "")
	t.Setenv("REDIS_URL", "")
	t.Setenv("TASKFLOW_STORAGE_KEY", "")
	t.Setenv("LOG_LEVEL", "error")

	f.server.Handle(http.MethodPost, "/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var creds models.LoginCredentials
		_ = json.NewDecoder(r.Body).Decode(&creds)
		if creds.Password != "secret" {
			apitest.Fail(w, http.StatusUnprocessableEntity, "These credentials do not match our records.", nil)
			return
		}
		apitest.OK(w, models.AuthResponse{
			Token: "T1",
			User:  &models.User{ID: 1, Name: "Ada", Email: creds.Email, Role: session.RoleManager},
		})
	})
	f.server.Handle(http.MethodGet, "/auth/me", apitest.RequireBearer("T1", func(w http.ResponseWriter, r *http.Request) {
		apitest.OK(w, map[string]any{"user": models.User{ID: 1, Name: "Ada Lovelace", Email: "ada@example.com", Role: session.RoleManager}})
	}))
	f.server.Handle(http.MethodPost, "/auth/logout", apitest.Data(nil))
	return f
}

// execute runs one invocation with a fresh app, like a separate process would.
func (f *testFixture) execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	a := &app{
		readPassword: func(int) ([]byte, error) { return []byte("secret"), nil },
	}
	defer a.close()

	var out bytes.Buffer
	root := newRootCmd(a)
	root.SetArgs(append([]string{"--config-dir", f.configDir}, args...))
	root.SetOut(&out)
	root.SetErr(&out)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func (f *testFixture) login(t *testing.T) {
	t.Helper()
	_, err := f.execute(t, "login", "--email", "ada@example.com", "--remember")
	require.NoError(t, err)
}

func TestLogin_PromptsAndRemembers(t *testing.T) {
	f := setupTestFixture(t)

	out, err := f.execute(t, "login", "--email", "ada@example.com", "--remember")
	require.NoError(t, err)
	require.Contains(t, out, "Password: ")
	require.Contains(t, out, "Signed in as Ada <ada@example.com>")

	out, err = f.execute(t, "whoami")
	require.NoError(t, err)
	require.Contains(t, out, "Ada Lovelace <ada@example.com>")
	require.Contains(t, out, "manager")
}

func TestLogin_ShowsServerMessage(t *testing.T) {
	f := setupTestFixture(t)

	_, err := f.execute(t, "login", "-e", "ada@example.com", "-p", "wrong")
	require.EqualError(t, err, "These credentials do not match our records.")
}

func TestWhoami_SignedOut(t *testing.T) {
	f := setupTestFixture(t)

	_, err := f.execute(t, "whoami")
	require.ErrorIs(t, err, errNotSignedIn)
}

func TestLogout_ForgetsCredential(t *testing.T) {
	f := setupTestFixture(t)
	f.login(t)

	out, err := f.execute(t, "logout")
	require.NoError(t, err)
	require.Contains(t, out, "Signed out")
	require.Equal(t, 1, f.server.Count(http.MethodPost, "/auth/logout"))

	_, err = f.execute(t, "whoami")
	require.ErrorIs(t, err, errNotSignedIn)
}

func TestProjectsList(t *testing.T) {
	f := setupTestFixture(t)
	f.login(t)
	f.server.Handle(http.MethodGet, "/projects", func(w http.ResponseWriter, r *http.Request) {
		apitest.Page(w, []models.Project{
			{ID: 3, Name: "Apollo", Status: models.ProjectActive, Priority: models.PriorityHigh, TasksCount: 12},
		}, apitest.PageMeta{CurrentPage: 2, PerPage: 15, Total: 16, LastPage: 2})
	})

	out, err := f.execute(t, "projects", "list", "--status", "active", "--page", "2")
	require.NoError(t, err)
	require.Contains(t, out, "Apollo")
	require.Contains(t, out, "page 2 of 2, 16 total")

	q := f.server.Last(t).Query
	require.Equal(t, "active", q.Get("status"))
	require.Equal(t, "2", q.Get("page"))
}

func TestTasksListAndDone(t *testing.T) {
	f := setupTestFixture(t)
	f.login(t)
	f.server.Handle(http.MethodGet, "/tasks", func(w http.ResponseWriter, r *http.Request) {
		apitest.Page(w, []models.Task{
			{ID: 7, Title: "Write release notes", Status: models.TaskInProgress, Priority: models.PriorityMedium},
		}, apitest.PageMeta{CurrentPage: 1, PerPage: 15, Total: 1, LastPage: 1})
	})
	f.server.Handle(http.MethodPut, "/tasks/{id}/status", apitest.Data(models.Task{ID: 7, Title: "Write release notes", Status: models.TaskDone}))

	out, err := f.execute(t, "tasks", "list", "--project", "3", "--status", "in_progress")
	require.NoError(t, err)
	require.Contains(t, out, "Write release notes")
	q := f.server.Last(t).Query
	require.Equal(t, "3", q.Get("project_id"))
	require.Equal(t, "in_progress", q.Get("status"))

	out, err = f.execute(t, "tasks", "done", "7")
	require.NoError(t, err)
	require.Contains(t, out, "Write release notes is done")
	require.Equal(t, "/tasks/7/status", f.server.Last(t).Path)

	f.server.Handle(http.MethodPut, "/tasks/{id}/status", apitest.Status(http.StatusNotFound, "No query results for model [Task]."))
	_, err = f.execute(t, "tasks", "done", "99")
	require.EqualError(t, err, "task 99 not found")

	_, err = f.execute(t, "tasks", "done", "seven")
	require.EqualError(t, err, `"seven" is not a valid id`)
}

func TestTimer(t *testing.T) {
	f := setupTestFixture(t)
	f.login(t)
	started := time.Now().Add(-90 * time.Minute)
	f.server.Handle(http.MethodGet, "/time-entries/active", apitest.Data(nil))
	f.server.Handle(http.MethodPost, "/time-entries/start", apitest.Data(models.TimeEntry{ID: 5, TaskID: 2, StartTime: started}))

	out, err := f.execute(t, "timer", "status")
	require.NoError(t, err)
	require.Contains(t, out, "No timer running")

	_, err = f.execute(t, "timer", "stop")
	require.EqualError(t, err, "no timer is running")

	out, err = f.execute(t, "timer", "start", "2", "writing", "docs")
	require.NoError(t, err)
	require.Contains(t, out, "Timer started on task 2")
	var body models.StartTimerData
	f.server.Last(t).JSON(t, &body)
	require.Equal(t, models.StartTimerData{TaskID: 2, Description: "writing docs"}, body)

	f.server.Handle(http.MethodGet, "/time-entries/active", apitest.Data(models.TimeEntry{ID: 5, TaskID: 2, StartTime: started}))
	f.server.Handle(http.MethodPost, "/time-entries/{id}/stop", apitest.Data(models.TimeEntry{ID: 5, TaskID: 2, StartTime: started, Duration: 5400}))

	out, err = f.execute(t, "timer", "status")
	require.NoError(t, err)
	require.Contains(t, out, "Running on task 2 for 1h30m")

	_, err = f.execute(t, "timer", "start", "3")
	require.EqualError(t, err, "a timer is already running on task 2")

	out, err = f.execute(t, "timer", "stop")
	require.NoError(t, err)
	require.Contains(t, out, "Stopped after 1h30m0s")
	require.Equal(t, "/time-entries/5/stop", f.server.Last(t).Path)
}

func TestNotifications(t *testing.T) {
	f := setupTestFixture(t)
	f.login(t)
	f.server.Handle(http.MethodGet, "/notifications", func(w http.ResponseWriter, r *http.Request) {
		apitest.Page(w, []models.Notification{
			{ID: 1, Type: models.NotificationTaskAssigned, Data: models.NotificationData{Title: "Task assigned", Message: "You were assigned Write release notes"}},
		}, apitest.PageMeta{CurrentPage: 1, PerPage: 50, Total: 1, LastPage: 1})
	})
	f.server.Handle(http.MethodGet, "/notifications/unread-count", apitest.Data(map[string]int{"count": 4}))

	out, err := f.execute(t, "notifications", "--unread")
	require.NoError(t, err)
	require.Contains(t, out, "Task assigned")
	require.Contains(t, out, "4 unread")
	require.Equal(t, "true", f.server.Calls(http.MethodGet, "/notifications")[0].Query.Get("unread_only"))

	_, err = f.execute(t, "notifications", "--follow")
	require.EqualError(t, err, "set TASKFLOW_STREAM_URL to follow notifications")
}

func TestVersion(t *testing.T) {
	f := setupTestFixture(t)

	out, err := f.execute(t, "version")
	require.NoError(t, err)
	require.Contains(t, out, "version dev")
	require.Empty(t, f.server.Requests())
}
