package store

import (
	"context"
	"sort"

	"github.com/jrsteele09/taskflow-client/api"
	"github.com/jrsteele09/taskflow-client/models"
	"github.com/jrsteele09/taskflow-client/transport"
)

// TaskScope pins a collection to one task's children.
type TaskScope struct {
	TaskID int64
}

// CommentStore caches the comments of one task.
type CommentStore struct {
	*Collection[models.Comment, TaskScope]
	api *api.Comments
}

func NewCommentStore(comments *api.Comments, opts ...Option) *CommentStore {
	return &CommentStore{
		Collection: newCollection(collectionSpec[models.Comment, TaskScope]{
			plural:   "comments",
			singular: "comment",
			list: func(ctx context.Context, scope TaskScope, _ Page) ([]models.Comment, transport.PageMeta, error) {
				return unpaged(comments.ForTask(ctx, scope.TaskID))
			},
			get: comments.Get,
		}, newSettings(opts)),
		api: comments,
	}
}

// FetchForTask scopes the store to taskID and loads its comments.
func (s *CommentStore) FetchForTask(ctx context.Context, taskID int64) {
	s.SetFilters(TaskScope{TaskID: taskID})
	s.FetchList(ctx, nil, true)
}

func (s *CommentStore) TaskID() int64 {
	return s.Filters().TaskID
}

func (s *CommentStore) Create(ctx context.Context, taskID int64, content string) (models.Comment, error) {
	return mutate(s.Collection, "Failed to create comment", func() (models.Comment, error) {
		return s.api.Create(ctx, taskID, content)
	}, s.prepend)
}

func (s *CommentStore) Update(ctx context.Context, id int64, content string) (models.Comment, error) {
	return mutate(s.Collection, "Failed to update comment", func() (models.Comment, error) {
		return s.api.Update(ctx, id, content)
	}, s.replace)
}

func (s *CommentStore) Remove(ctx context.Context, id int64) error {
	return drop(s.Collection, "Failed to delete comment", id, func() error {
		return s.api.Delete(ctx, id)
	})
}

// Sorted returns the comments newest first.
func (s *CommentStore) Sorted() []models.Comment {
	items := s.Items()
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items
}
