package store

import (
	"context"
	"io"
	"sync/atomic"

	"github.com/jrsteele09/taskflow-client/api"
	"github.com/jrsteele09/taskflow-client/models"
	"github.com/jrsteele09/taskflow-client/transport"
)

// AttachmentStore caches the attachments of one task.
type AttachmentStore struct {
	*Collection[models.Attachment, TaskScope]
	api      *api.Attachments
	progress atomic.Int32
}

func NewAttachmentStore(attachments *api.Attachments, opts ...Option) *AttachmentStore {
	return &AttachmentStore{
		Collection: newCollection(collectionSpec[models.Attachment, TaskScope]{
			plural:   "attachments",
			singular: "attachment",
			list: func(ctx context.Context, scope TaskScope, _ Page) ([]models.Attachment, transport.PageMeta, error) {
				return unpaged(attachments.ForTask(ctx, scope.TaskID))
			},
			get: attachments.Get,
		}, newSettings(opts)),
		api: attachments,
	}
}

func (s *AttachmentStore) FetchForTask(ctx context.Context, taskID int64) {
	s.SetFilters(TaskScope{TaskID: taskID})
	s.FetchList(ctx, nil, true)
}

// Upload sends content to taskID and adds the attachment to the front of the cache.
// UploadProgress follows the transfer and reads 100 once the server has answered.
func (s *AttachmentStore) Upload(ctx context.Context, taskID int64, name string, content io.Reader) (models.Attachment, error) {
	s.progress.Store(0)
	return mutate(s.Collection, "Failed to upload attachment", func() (models.Attachment, error) {
		return s.api.UploadToTask(ctx, taskID, name, content, func(sent, total int64) {
			s.progress.Store(int32(transport.Percent(sent, total)))
		})
	}, func(a models.Attachment) {
		s.prepend(a)
		s.progress.Store(100)
	})
}

// UploadProgress is the percentage of the running upload.
func (s *AttachmentStore) UploadProgress() int {
	return int(s.progress.Load())
}

func (s *AttachmentStore) Remove(ctx context.Context, id int64) error {
	return drop(s.Collection, "Failed to delete attachment", id, func() error {
		return s.api.Delete(ctx, id)
	})
}

// Download returns the attachment's bytes.
func (s *AttachmentStore) Download(ctx context.Context, id int64) ([]byte, error) {
	done := s.track()
	defer done()

	body, err := s.api.Download(ctx, id)
	if err != nil {
		return nil, s.fail(err, "Failed to download attachment")
	}
	return body, nil
}

// SetCurrent focuses a, or clears the focus when a is nil.
func (s *AttachmentStore) SetCurrent(a *models.Attachment) {
	s.setCurrent(a)
}

func (s *AttachmentStore) TotalSize() int64 {
	var total int64
	for _, a := range s.Items() {
		total += a.Size
	}
	return total
}

func (s *AttachmentStore) FormattedTotalSize() string {
	return models.FormatBytes(s.TotalSize())
}

func (s *AttachmentStore) Reset() {
	s.Collection.Reset()
	s.progress.Store(0)
}
