package store_test

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jrsteele09/taskflow-client/api"
	"github.com/jrsteele09/taskflow-client/apitest"
	"github.com/jrsteele09/taskflow-client/models"
	"github.com/jrsteele09/taskflow-client/store"
	"github.com/jrsteele09/taskflow-client/transport"
)

func TestTaskStore_PagesAppendUntilExhausted(t *testing.T) {
	f := setupTestFixture(t)
	f.server.Handle(http.MethodGet, "/tasks", pagedTasks(42, 15))
	s := store.NewTaskStore(f.api.Tasks)
	ctx := context.Background()

	s.FetchList(ctx, nil, true)
	require.Empty(t, s.Err())
	require.Equal(t, 15, s.Len())
	require.Equal(t, 42, s.Total())
	require.True(t, s.HasMore())
	require.Equal(t, "15", f.server.Last(t).Query.Get("per_page"))

	s.SetPage(2)
	s.FetchList(ctx, nil, false)
	require.Equal(t, 30, s.Len())
	require.True(t, s.HasMore())

	s.LoadMore(ctx)
	require.Equal(t, 42, s.Len())
	require.False(t, s.HasMore())
	require.Equal(t, ids(makeTasks(1, 42)), ids(s.Items()))

	// Nothing left to load.
	before := f.server.Count(http.MethodGet, "/tasks")
	s.LoadMore(ctx)
	require.Equal(t, before, f.server.Count(http.MethodGet, "/tasks"))

	// Back to page one replaces the cache.
	s.FetchList(ctx, nil, true)
	require.Equal(t, ids(makeTasks(1, 15)), ids(s.Items()))
	require.Equal(t, store.Page{CurrentPage: 1, PerPage: 15, Total: 42, LastPage: 3}, s.Page())
}

func TestTaskStore_FetchFailureIsRecorded(t *testing.T) {
	f := setupTestFixture(t)
	s := store.NewTaskStore(f.api.Tasks)
	ctx := context.Background()

	f.server.Handle(http.MethodGet, "/tasks", apitest.Status(http.StatusInternalServerError, "Database unavailable"))
	s.FetchList(ctx, nil, true)
	require.Equal(t, "Database unavailable", s.Err())
	require.False(t, s.Loading())

	f.server.Handle(http.MethodGet, "/tasks", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	s.FetchList(ctx, nil, true)
	require.Equal(t, "Failed to fetch tasks", s.Err())

	f.server.Handle(http.MethodGet, "/tasks/{id}", apitest.Status(http.StatusNotFound, ""))
	s.FetchOne(ctx, 9)
	require.Equal(t, "Failed to fetch task", s.Err())
	_, ok := s.Current()
	require.False(t, ok)
}

func TestTaskStore_CreatePrependsAndCounts(t *testing.T) {
	f := setupTestFixture(t)
	f.server.Handle(http.MethodGet, "/tasks", pagedTasks(3, 15))
	f.server.Handle(http.MethodPost, "/tasks", func(w http.ResponseWriter, r *http.Request) {
		apitest.Created(w, models.Task{ID: 100, Title: "new"})
	})
	s := store.NewTaskStore(f.api.Tasks)
	ctx := context.Background()
	s.FetchList(ctx, nil, true)

	task, err := s.Create(ctx, models.CreateTaskData{ProjectID: 1, Title: "new"})
	require.NoError(t, err)
	require.Equal(t, int64(100), task.ID)
	require.Equal(t, []int64{100, 1, 2, 3}, ids(s.Items()))
	require.Equal(t, 4, s.Total())
	require.Equal(t, 1, f.server.Count(http.MethodGet, "/tasks"))
}

func TestTaskStore_CreateFailureReturnsError(t *testing.T) {
	f := setupTestFixture(t)
	f.server.Handle(http.MethodPost, "/tasks", func(w http.ResponseWriter, r *http.Request) {
		apitest.Fail(w, http.StatusUnprocessableEntity, "The given data was invalid.", map[string][]string{"title": {"The title field is required."}})
	})
	s := store.NewTaskStore(f.api.Tasks)

	_, err := s.Create(context.Background(), models.CreateTaskData{ProjectID: 1})
	require.Error(t, err)
	require.True(t, transport.IsStatus(err, http.StatusUnprocessableEntity))
	require.Equal(t, "The given data was invalid.", s.Err())
	require.Zero(t, s.Len())
	require.Zero(t, s.Total())
}

func TestTaskStore_UpdateReachesListAndFocus(t *testing.T) {
	f := setupTestFixture(t)
	f.server.Handle(http.MethodGet, "/tasks", pagedTasks(10, 15))
	f.server.Handle(http.MethodGet, "/tasks/{id}", apitest.Data(models.Task{ID: 7, Title: "task 7", Status: models.TaskTodo}))
	f.server.Handle(http.MethodPut, "/tasks/{id}", apitest.Data(models.Task{ID: 7, Title: "task 7", Status: models.TaskDone}))
	s := store.NewTaskStore(f.api.Tasks)
	ctx := context.Background()

	s.FetchList(ctx, nil, true)
	s.FetchOne(ctx, 7)
	current, ok := s.Current()
	require.True(t, ok)
	require.Equal(t, models.TaskTodo, current.Status)

	done := models.TaskDone
	_, err := s.Update(ctx, 7, models.UpdateTaskData{Status: &done})
	require.NoError(t, err)

	cached, ok := s.Find(7)
	require.True(t, ok)
	require.Equal(t, models.TaskDone, cached.Status)
	current, _ = s.Current()
	require.Equal(t, models.TaskDone, current.Status)
	require.Equal(t, 10, s.Len())

	var body map[string]any
	f.server.Last(t).JSON(t, &body)
	require.Equal(t, map[string]any{"status": "done"}, body)
}

func TestTaskStore_UpdateOfUncachedTaskIsNotInserted(t *testing.T) {
	f := setupTestFixture(t)
	f.server.Handle(http.MethodGet, "/tasks", pagedTasks(2, 15))
	f.server.Handle(http.MethodPut, "/tasks/{id}/status", apitest.Data(models.Task{ID: 50, Status: models.TaskReview}))
	s := store.NewTaskStore(f.api.Tasks)
	ctx := context.Background()
	s.FetchList(ctx, nil, true)

	task, err := s.UpdateStatus(ctx, 50, models.TaskReview)
	require.NoError(t, err)
	require.Equal(t, models.TaskReview, task.Status)
	require.Equal(t, []int64{1, 2}, ids(s.Items()))
}

func TestTaskStore_RemoveDropsRecord(t *testing.T) {
	f := setupTestFixture(t)
	f.server.Handle(http.MethodGet, "/tasks", pagedTasks(3, 15))
	f.server.Handle(http.MethodDelete, "/tasks/{id}", apitest.Data(nil))
	s := store.NewTaskStore(f.api.Tasks)
	ctx := context.Background()
	s.FetchList(ctx, nil, true)

	require.NoError(t, s.Remove(ctx, 2))
	require.Equal(t, []int64{1, 3}, ids(s.Items()))
	require.Equal(t, 2, s.Total())

	// Deleting something that was never cached leaves the count alone.
	require.NoError(t, s.Remove(ctx, 99))
	require.Equal(t, 2, s.Total())
}

func TestTaskStore_RemoveFailureKeepsRecord(t *testing.T) {
	f := setupTestFixture(t)
	f.server.Handle(http.MethodGet, "/tasks", pagedTasks(3, 15))
	f.server.Handle(http.MethodDelete, "/tasks/{id}", apitest.Status(http.StatusForbidden, "This action is unauthorized."))
	s := store.NewTaskStore(f.api.Tasks)
	ctx := context.Background()
	s.FetchList(ctx, nil, true)

	require.Error(t, s.Remove(ctx, 2))
	require.Equal(t, 3, s.Len())
	require.Equal(t, 3, s.Total())
	require.Equal(t, "This action is unauthorized.", s.Err())
}

func TestTaskStore_ResetIsIdempotent(t *testing.T) {
	f := setupTestFixture(t)
	f.server.Handle(http.MethodGet, "/tasks", pagedTasks(42, 15))
	s := store.NewTaskStore(f.api.Tasks, store.WithPerPage(20))
	ctx := context.Background()

	s.SetStatus(models.TaskDone)
	s.FetchList(ctx, nil, true)
	require.NotZero(t, s.Len())

	s.Reset()
	first := struct {
		items   []models.Task
		page    store.Page
		filters models.TaskFilters
		err     string
	}{s.Items(), s.Page(), s.Filters(), s.Err()}
	s.Reset()
	second := struct {
		items   []models.Task
		page    store.Page
		filters models.TaskFilters
		err     string
	}{s.Items(), s.Page(), s.Filters(), s.Err()}

	require.Equal(t, first, second)
	require.Empty(t, second.items)
	require.Equal(t, store.Page{CurrentPage: 1, PerPage: 20, LastPage: 1}, second.page)
	require.Equal(t, models.DefaultTaskFilters(), second.filters)
	_, ok := s.Current()
	require.False(t, ok)
}

func TestTaskStore_FilterChangesReturnToFirstPage(t *testing.T) {
	f := setupTestFixture(t)
	f.server.Handle(http.MethodGet, "/tasks", pagedTasks(42, 15))
	s := store.NewTaskStore(f.api.Tasks)
	ctx := context.Background()

	s.SetPage(3)
	s.SetFilters(models.TaskFilters{Status: models.TaskInProgress})
	require.Equal(t, 1, s.Page().CurrentPage)

	s.SetPage(2)
	s.SetProjectFilter(4)
	require.Equal(t, 1, s.Page().CurrentPage)

	s.SetPage(2)
	s.SetPerPage(30)
	require.Equal(t, 1, s.Page().CurrentPage)
	require.Equal(t, 30, s.Page().PerPage)

	s.SetSort("title", "")
	s.FetchList(ctx, nil, false)
	q := f.server.Last(t).Query
	require.Equal(t, "1", q.Get("page"))
	require.Equal(t, "30", q.Get("per_page"))
	require.Equal(t, "4", q.Get("project_id"))
	require.Equal(t, models.TaskInProgress, q.Get("status"))
	require.Equal(t, "title", q.Get("sort"))
	require.Equal(t, "desc", q.Get("order"))

	s.ClearFilters()
	require.Equal(t, models.DefaultTaskFilters(), s.Filters())
}

func TestTaskStore_PassedFiltersPersistAcrossPages(t *testing.T) {
	f := setupTestFixture(t)
	f.server.Handle(http.MethodGet, "/tasks", pagedTasks(42, 15))
	s := store.NewTaskStore(f.api.Tasks)
	ctx := context.Background()

	report := models.TaskFilters{Search: "report"}
	s.FetchList(ctx, &report, true)
	require.Equal(t, report, s.Filters())
	require.Equal(t, 15, s.Len())

	s.LoadMore(ctx)
	q := f.server.Last(t).Query
	require.Equal(t, "report", q.Get("search"))
	require.Equal(t, "2", q.Get("page"))
	require.Equal(t, 30, s.Len())

	// Different filters start over at page one instead of appending to the old result set.
	done := models.TaskFilters{Status: models.TaskDone}
	s.FetchList(ctx, &done, false)
	q = f.server.Last(t).Query
	require.Equal(t, models.TaskDone, q.Get("status"))
	require.Empty(t, q.Get("search"))
	require.Equal(t, "1", q.Get("page"))
	require.Equal(t, 15, s.Len())
	require.Equal(t, 1, s.Page().CurrentPage)

	// The same filters keep the requested page.
	s.SetPage(2)
	s.FetchList(ctx, &done, false)
	require.Equal(t, "2", f.server.Last(t).Query.Get("page"))
	require.Equal(t, 30, s.Len())
}

func TestTaskStore_StaleResponseIsDiscarded(t *testing.T) {
	f := setupTestFixture(t)
	release := make(chan struct{})
	f.server.Handle(http.MethodGet, "/tasks", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("search") == "slow" {
			<-release
			apitest.Page(w, makeTasks(1, 2), apitest.PageMeta{CurrentPage: 1, PerPage: 15, Total: 2, LastPage: 1})
			return
		}
		apitest.Page(w, makeTasks(10, 1), apitest.PageMeta{CurrentPage: 1, PerPage: 15, Total: 1, LastPage: 1})
	})
	s := store.NewTaskStore(f.api.Tasks)
	ctx := context.Background()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		s.FetchList(ctx, &models.TaskFilters{Search: "slow"}, true)
	}()
	require.Eventually(t, func() bool {
		return f.server.Count(http.MethodGet, "/tasks") == 1
	}, time.Second, 5*time.Millisecond)

	s.FetchList(ctx, &models.TaskFilters{Search: "fast"}, true)
	require.Equal(t, []int64{10}, ids(s.Items()))

	close(release)
	wg.Wait()
	require.Equal(t, []int64{10}, ids(s.Items()))
	require.Equal(t, 1, s.Total())
	require.False(t, s.Loading())
}

func TestTaskStore_ResetDropsInFlightFetch(t *testing.T) {
	f := setupTestFixture(t)
	release := make(chan struct{})
	f.server.Handle(http.MethodGet, "/tasks", func(w http.ResponseWriter, r *http.Request) {
		<-release
		apitest.Page(w, makeTasks(1, 3), apitest.PageMeta{CurrentPage: 1, PerPage: 15, Total: 3, LastPage: 1})
	})
	s := store.NewTaskStore(f.api.Tasks)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		s.FetchList(context.Background(), nil, true)
	}()
	require.Eventually(t, func() bool {
		return f.server.Count(http.MethodGet, "/tasks") == 1
	}, time.Second, 5*time.Millisecond)

	s.Reset()
	close(release)
	wg.Wait()
	require.Zero(t, s.Len())
}

func TestTaskStore_SessionExpiryIsReportedAfterReset(t *testing.T) {
	f := setupTestFixture(t)
	f.server.Handle(http.MethodGet, "/tasks", apitest.Status(http.StatusUnauthorized, "Unauthenticated."))
	f.server.Handle(http.MethodPost, "/auth/refresh", apitest.Status(http.StatusUnauthorized, "Your session has ended."))

	// Expiry resets the store while the fetch that hit it is still in flight.
	var s *store.TaskStore
	c, err := transport.New(f.server.URL(), f.sessions, transport.WithLoginRedirect(func() { s.Reset() }))
	require.NoError(t, err)
	s = store.NewTaskStore(api.New(c).Tasks)

	s.FetchList(context.Background(), nil, true)
	require.Equal(t, "Your session has ended.", s.Err())
	require.Zero(t, s.Len())
	require.False(t, s.Loading())
}
