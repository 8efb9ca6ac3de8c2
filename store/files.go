package store

import (
	"context"
	"io"
	"sync"

	"github.com/jrsteele09/taskflow-client/api"
	"github.com/jrsteele09/taskflow-client/internal/errors"
	"github.com/jrsteele09/taskflow-client/internal/utils"
	"github.com/jrsteele09/taskflow-client/models"
	"github.com/jrsteele09/taskflow-client/transport"
)

// FileStore caches files and categories and tracks a selection for bulk operations.
type FileStore struct {
	*Collection[models.FileAttachment, models.FileFilter]
	api *api.Files

	selMu      sync.RWMutex
	selected   []int64
	categories []models.FileCategory
}

func NewFileStore(files *api.Files, opts ...Option) *FileStore {
	return &FileStore{
		Collection: newCollection(collectionSpec[models.FileAttachment, models.FileFilter]{
			plural:   "files",
			singular: "file",
			list: func(ctx context.Context, f models.FileFilter, _ Page) ([]models.FileAttachment, transport.PageMeta, error) {
				return unpaged(files.List(ctx, f))
			},
			get: files.Get,
		}, newSettings(opts)),
		api: files,
	}
}

func (s *FileStore) Upload(ctx context.Context, name string, content io.Reader, data models.UploadFileData) (models.FileAttachment, error) {
	return mutate(s.Collection, "Failed to upload file", func() (models.FileAttachment, error) {
		return s.api.Upload(ctx, name, content, data)
	}, s.prepend)
}

func (s *FileStore) Update(ctx context.Context, id int64, data models.UpdateFileData) (models.FileAttachment, error) {
	return mutate(s.Collection, "Failed to update file", func() (models.FileAttachment, error) {
		return s.api.Update(ctx, id, data)
	}, s.replace)
}

// UploadVersion replaces the cached file with its new latest version.
func (s *FileStore) UploadVersion(ctx context.Context, id int64, name string, content io.Reader, changes string) (models.FileAttachment, error) {
	return mutate(s.Collection, "Failed to upload new version", func() (models.FileAttachment, error) {
		return s.api.UploadVersion(ctx, id, name, content, changes)
	}, func(f models.FileAttachment) {
		// The server may answer with a new record id for the version.
		s.patch(id, func(cached *models.FileAttachment) { *cached = f })
	})
}

// Remove deletes id and drops it from the selection.
func (s *FileStore) Remove(ctx context.Context, id int64) error {
	if err := drop(s.Collection, "Failed to delete file", id, func() error {
		return s.api.Delete(ctx, id)
	}); err != nil {
		return err
	}
	s.selMu.Lock()
	s.selected = without(s.selected, map[int64]bool{id: true})
	s.selMu.Unlock()
	return nil
}

func (s *FileStore) Download(ctx context.Context, id int64) ([]byte, error) {
	done := s.track()
	defer done()

	body, err := s.api.Download(ctx, id)
	if err != nil {
		return nil, s.fail(err, "Failed to download file")
	}
	return body, nil
}

func (s *FileStore) FetchCategories(ctx context.Context) error {
	done := s.track()
	defer done()

	cats, err := s.api.Categories(ctx)
	if err != nil {
		return s.fail(err, "Failed to fetch categories")
	}
	s.selMu.Lock()
	s.categories = cats
	s.selMu.Unlock()
	return nil
}

func (s *FileStore) CreateCategory(ctx context.Context, data models.FileCategoryData) (models.FileCategory, error) {
	cat, err := s.api.CreateCategory(ctx, data)
	if err != nil {
		return cat, s.fail(err, "Failed to create category")
	}
	s.selMu.Lock()
	s.categories = append(s.categories, cat)
	s.selMu.Unlock()
	return cat, nil
}

func (s *FileStore) UpdateCategory(ctx context.Context, id int64, data models.FileCategoryData) (models.FileCategory, error) {
	cat, err := s.api.UpdateCategory(ctx, id, data)
	if err != nil {
		return cat, s.fail(err, "Failed to update category")
	}
	s.selMu.Lock()
	for i := range s.categories {
		if s.categories[i].ID == id {
			s.categories[i] = cat
		}
	}
	s.selMu.Unlock()
	return cat, nil
}

func (s *FileStore) DeleteCategory(ctx context.Context, id int64) error {
	if err := s.api.DeleteCategory(ctx, id); err != nil {
		return s.fail(err, "Failed to delete category")
	}
	s.selMu.Lock()
	kept := s.categories[:0:0]
	for _, c := range s.categories {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	s.categories = kept
	s.selMu.Unlock()
	return nil
}

func (s *FileStore) Categories() []models.FileCategory {
	s.selMu.RLock()
	defer s.selMu.RUnlock()
	return append([]models.FileCategory(nil), s.categories...)
}

// ToggleSelection adds id to the selection, or removes it when already selected.
func (s *FileStore) ToggleSelection(id int64) {
	s.selMu.Lock()
	defer s.selMu.Unlock()
	for i, sel := range s.selected {
		if sel == id {
			s.selected = append(s.selected[:i:i], s.selected[i+1:]...)
			return
		}
	}
	s.selected = append(s.selected, id)
}

func (s *FileStore) SelectAll() {
	items := s.Items()
	ids := make([]int64, len(items))
	for i, f := range items {
		ids[i] = f.ID
	}
	s.selMu.Lock()
	s.selected = ids
	s.selMu.Unlock()
}

func (s *FileStore) ClearSelection() {
	s.selMu.Lock()
	s.selected = nil
	s.selMu.Unlock()
}

// Selected returns the selected ids in selection order.
func (s *FileStore) Selected() []int64 {
	s.selMu.RLock()
	defer s.selMu.RUnlock()
	return append([]int64(nil), s.selected...)
}

func (s *FileStore) HasSelection() bool {
	s.selMu.RLock()
	defer s.selMu.RUnlock()
	return len(s.selected) > 0
}

func (s *FileStore) IsSelected(id int64) bool {
	s.selMu.RLock()
	defer s.selMu.RUnlock()
	for _, sel := range s.selected {
		if sel == id {
			return true
		}
	}
	return false
}

// SelectedFiles returns the cached records of the selection, in cache order.
func (s *FileStore) SelectedFiles() []models.FileAttachment {
	set := s.selectionSet()
	var out []models.FileAttachment
	for _, f := range s.Items() {
		if set[f.ID] {
			out = append(out, f)
		}
	}
	return out
}

// ByCategory groups the cached files by category name.
func (s *FileStore) ByCategory() map[string][]models.FileAttachment {
	out := map[string][]models.FileAttachment{}
	for _, f := range s.Items() {
		name := f.CategoryName()
		out[name] = append(out[name], f)
	}
	return out
}

// BulkDelete deletes the selection, drops it from the cache and clears it.
func (s *FileStore) BulkDelete(ctx context.Context) error {
	ids := s.Selected()
	if len(ids) == 0 {
		return errors.ErrEmptySelection
	}
	done := s.track()
	defer done()

	s.log.Debug().Strs("file_ids", utils.ToStringSlice(ids)).Msg("bulk delete")
	if err := s.api.BulkDelete(ctx, ids); err != nil {
		return s.fail(err, "Failed to delete files")
	}
	for _, id := range ids {
		s.remove(id)
	}
	s.ClearSelection()
	return nil
}

// BulkCategorize moves the selection into categoryID and clears it.
func (s *FileStore) BulkCategorize(ctx context.Context, categoryID int64) error {
	ids := s.Selected()
	if len(ids) == 0 {
		return errors.ErrEmptySelection
	}
	done := s.track()
	defer done()

	s.log.Debug().Strs("file_ids", utils.ToStringSlice(ids)).Int64("category_id", categoryID).Msg("bulk categorize")
	if err := s.api.BulkCategorize(ctx, ids, categoryID); err != nil {
		return s.fail(err, "Failed to categorize files")
	}
	var category *models.FileCategory
	for _, c := range s.Categories() {
		if c.ID == categoryID {
			category = &c
			break
		}
	}
	for _, id := range ids {
		s.patch(id, func(f *models.FileAttachment) {
			cid := categoryID
			f.CategoryID = &cid
			if category != nil {
				f.Category = category
			}
		})
	}
	s.ClearSelection()
	return nil
}

// BulkDownload returns an archive of the selection. The selection is kept.
func (s *FileStore) BulkDownload(ctx context.Context) ([]byte, error) {
	ids := s.Selected()
	if len(ids) == 0 {
		return nil, errors.ErrEmptySelection
	}
	body, err := s.api.BulkDownload(ctx, ids)
	if err != nil {
		return nil, s.fail(err, "Failed to download files")
	}
	return body, nil
}

func (s *FileStore) Reset() {
	s.Collection.Reset()
	s.selMu.Lock()
	s.selected = nil
	s.categories = nil
	s.selMu.Unlock()
}

func (s *FileStore) selectionSet() map[int64]bool {
	s.selMu.RLock()
	defer s.selMu.RUnlock()
	set := make(map[int64]bool, len(s.selected))
	for _, id := range s.selected {
		set[id] = true
	}
	return set
}

func without(ids []int64, gone map[int64]bool) []int64 {
	var out []int64
	for _, id := range ids {
		if !gone[id] {
			out = append(out, id)
		}
	}
	return out
}
