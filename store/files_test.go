package store_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jrsteele09/taskflow-client/apitest"
	"github.com/jrsteele09/taskflow-client/internal/errors"
	"github.com/jrsteele09/taskflow-client/models"
	"github.com/jrsteele09/taskflow-client/store"
)

func setupFileStore(t *testing.T) (*testFixture, *store.FileStore) {
	t.Helper()
	f := setupTestFixture(t)
	design := models.FileCategory{ID: 3, Name: "Design"}
	f.server.Handle(http.MethodGet, "/files", apitest.Data([]models.FileAttachment{
		{ID: 1, OriginalFilename: "a.png", Size: 1024, Category: &design},
		{ID: 2, OriginalFilename: "b.pdf", Size: 2048},
		{ID: 3, OriginalFilename: "c.txt", Size: 10},
	}))
	f.server.Handle(http.MethodGet, "/file-categories", apitest.Data([]models.FileCategory{design, {ID: 4, Name: "Legal"}}))

	s := store.NewFileStore(f.api.Files)
	s.FetchList(context.Background(), nil, true)
	require.NoError(t, s.FetchCategories(context.Background()))
	require.Equal(t, 3, s.Len())
	return f, s
}

func TestFileStore_SelectionToggles(t *testing.T) {
	_, s := setupFileStore(t)

	s.ToggleSelection(2)
	s.ToggleSelection(1)
	require.Equal(t, []int64{2, 1}, s.Selected())
	require.True(t, s.IsSelected(1))

	s.ToggleSelection(2)
	require.Equal(t, []int64{1}, s.Selected())

	s.SelectAll()
	require.Equal(t, []int64{1, 2, 3}, s.Selected())
	require.Equal(t, []int64{1, 2, 3}, ids(s.SelectedFiles()))

	s.ClearSelection()
	require.False(t, s.HasSelection())
}

func TestFileStore_RemovePrunesSelection(t *testing.T) {
	f, s := setupFileStore(t)
	f.server.Handle(http.MethodDelete, "/files/{id}", apitest.Data(nil))

	s.ToggleSelection(1)
	s.ToggleSelection(2)
	require.NoError(t, s.Remove(context.Background(), 2))

	require.Equal(t, []int64{1, 3}, ids(s.Items()))
	require.Equal(t, []int64{1}, s.Selected())
	require.Equal(t, 2, s.Total())
}

func TestFileStore_BulkNeedsSelection(t *testing.T) {
	f, s := setupFileStore(t)
	ctx := context.Background()

	require.ErrorIs(t, s.BulkDelete(ctx), errors.ErrEmptySelection)
	require.ErrorIs(t, s.BulkCategorize(ctx, 3), errors.ErrEmptySelection)
	_, err := s.BulkDownload(ctx)
	require.ErrorIs(t, err, errors.ErrEmptySelection)
	require.Zero(t, f.server.Count(http.MethodPost, "/files/bulk-delete"))
}

func TestFileStore_BulkDelete(t *testing.T) {
	f, s := setupFileStore(t)
	f.server.Handle(http.MethodPost, "/files/bulk-delete", apitest.Data(nil))

	s.ToggleSelection(1)
	s.ToggleSelection(3)
	require.NoError(t, s.BulkDelete(context.Background()))

	var body struct {
		FileIDs []int64 `json:"file_ids"`
	}
	f.server.Last(t).JSON(t, &body)
	require.Equal(t, []int64{1, 3}, body.FileIDs)
	require.Equal(t, []int64{2}, ids(s.Items()))
	require.Equal(t, 1, s.Total())
	require.False(t, s.HasSelection())
}

func TestFileStore_BulkDeleteFailureKeepsSelection(t *testing.T) {
	f, s := setupFileStore(t)
	f.server.Handle(http.MethodPost, "/files/bulk-delete", apitest.Status(http.StatusInternalServerError, ""))

	s.ToggleSelection(1)
	require.Error(t, s.BulkDelete(context.Background()))
	require.Equal(t, "Failed to delete files", s.Err())
	require.Equal(t, []int64{1}, s.Selected())
	require.Equal(t, 3, s.Len())
}

func TestFileStore_BulkCategorize(t *testing.T) {
	f, s := setupFileStore(t)
	f.server.Handle(http.MethodPost, "/files/bulk-categorize", apitest.Data(nil))

	s.ToggleSelection(2)
	s.ToggleSelection(3)
	require.NoError(t, s.BulkCategorize(context.Background(), 4))
	require.False(t, s.HasSelection())

	groups := s.ByCategory()
	require.Equal(t, []int64{1}, ids(groups["Design"]))
	require.Equal(t, []int64{2, 3}, ids(groups["Legal"]))
	require.NotContains(t, groups, models.UncategorizedLabel)
}

func TestFileStore_BulkDownloadKeepsSelection(t *testing.T) {
	f, s := setupFileStore(t)
	f.server.Handle(http.MethodPost, "/files/bulk-download", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/zip")
		_, _ = w.Write([]byte("PK\x03\x04"))
	})

	s.ToggleSelection(1)
	s.ToggleSelection(2)
	body, err := s.BulkDownload(context.Background())
	require.NoError(t, err)
	require.Equal(t, []byte("PK\x03\x04"), body)
	require.Equal(t, []int64{1, 2}, s.Selected())
}

func TestFileStore_ByCategoryGroupsUncategorized(t *testing.T) {
	_, s := setupFileStore(t)

	groups := s.ByCategory()
	require.Equal(t, []int64{1}, ids(groups["Design"]))
	require.Equal(t, []int64{2, 3}, ids(groups[models.UncategorizedLabel]))
}

func TestFileStore_Categories(t *testing.T) {
	f, s := setupFileStore(t)
	ctx := context.Background()
	f.server.Handle(http.MethodPost, "/file-categories", apitest.Data(models.FileCategory{ID: 9, Name: "Specs"}))
	f.server.Handle(http.MethodDelete, "/file-categories/{id}", apitest.Data(nil))

	_, err := s.CreateCategory(ctx, models.FileCategoryData{Name: "Specs"})
	require.NoError(t, err)
	require.NoError(t, s.DeleteCategory(ctx, 3))

	var names []string
	for _, c := range s.Categories() {
		names = append(names, c.Name)
	}
	require.Equal(t, []string{"Legal", "Specs"}, names)
}

func TestFileStore_ResetClearsSelection(t *testing.T) {
	_, s := setupFileStore(t)
	s.SelectAll()

	s.Reset()
	s.Reset()
	require.Zero(t, s.Len())
	require.Empty(t, s.Selected())
	require.Empty(t, s.Categories())
}
