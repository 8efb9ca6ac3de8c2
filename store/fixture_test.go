package store_test

import (
	"context"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jrsteele09/taskflow-client/api"
	"github.com/jrsteele09/taskflow-client/apitest"
	"github.com/jrsteele09/taskflow-client/models"
	"github.com/jrsteele09/taskflow-client/session"
	"github.com/jrsteele09/taskflow-client/transport"
)

var fixedNow = time.Date(2026, 10, 16, 15, 0, 0, 0, time.UTC)

type testFixture struct {
	server    *apitest.Server
	durable   *session.MemoryStore
	ephemeral *session.MemoryStore
	sessions  *session.Manager
	api       *api.Client
}

func setupTestFixture(t *testing.T) *testFixture {
	t.Helper()

	f := &testFixture{
		server:    apitest.NewServer(t),
		durable:   session.NewMemoryStore(),
		ephemeral: session.NewMemoryStore(),
	}
	var err error
	f.sessions, err = session.NewManager(f.durable, f.ephemeral)
	require.NoError(t, err)
	require.NoError(t, f.sessions.SetCredential(context.Background(), "T", &session.User{ID: 1, Name: "Ada"}, session.ScopeEphemeral))

	c, err := transport.New(f.server.URL(), f.sessions)
	require.NoError(t, err)
	f.api = api.New(c)
	return f
}

func makeTasks(from, n int) []models.Task {
	out := make([]models.Task, n)
	for i := range out {
		id := int64(from + i)
		out[i] = models.Task{ID: id, Title: "task " + strconv.FormatInt(id, 10), Status: models.TaskTodo}
	}
	return out
}

func ids[T models.Record](items []T) []int64 {
	out := make([]int64, len(items))
	for i, item := range items {
		out[i] = item.GetID()
	}
	return out
}

// pagedTasks serves total tasks in pages of perPage, honouring the page query parameter.
func pagedTasks(total, perPage int) http.HandlerFunc {
	lastPage := (total + perPage - 1) / perPage
	return func(w http.ResponseWriter, r *http.Request) {
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		if page < 1 {
			page = 1
		}
		from := (page-1)*perPage + 1
		n := min(perPage, total-from+1)
		apitest.Page(w, makeTasks(from, max(n, 0)), apitest.PageMeta{
			CurrentPage: page, PerPage: perPage, Total: total, LastPage: lastPage,
		})
	}
}
