package api

import (
	"context"
	"fmt"
	"io"

	"github.com/jrsteele09/taskflow-client/models"
	"github.com/jrsteele09/taskflow-client/transport"
)

type Attachments struct {
	t *transport.Client
}

func (a *Attachments) ForTask(ctx context.Context, taskID int64) ([]models.Attachment, error) {
	res, err := get[[]models.Attachment](ctx, a.t, fmt.Sprintf("/tasks/%d/attachments", taskID))
	return res, wrap(err, "[api TaskAttachments] task %d", taskID)
}

func (a *Attachments) ForProject(ctx context.Context, projectID int64) ([]models.Attachment, error) {
	res, err := get[[]models.Attachment](ctx, a.t, fmt.Sprintf("/projects/%d/attachments", projectID))
	return res, wrap(err, "[api ProjectAttachments] project %d", projectID)
}

// UploadToTask sends one file as the "file" form field, reporting progress through onProgress when set.
func (a *Attachments) UploadToTask(ctx context.Context, taskID int64, name string, content io.Reader, onProgress func(sent, total int64)) (models.Attachment, error) {
	res, err := a.upload(ctx, fmt.Sprintf("/tasks/%d/attachments", taskID), name, content, onProgress)
	return res, wrap(err, "[api UploadTaskAttachment] task %d %s", taskID, name)
}

func (a *Attachments) UploadToProject(ctx context.Context, projectID int64, name string, content io.Reader, onProgress func(sent, total int64)) (models.Attachment, error) {
	res, err := a.upload(ctx, fmt.Sprintf("/projects/%d/attachments", projectID), name, content, onProgress)
	return res, wrap(err, "[api UploadProjectAttachment] project %d %s", projectID, name)
}

func (a *Attachments) upload(ctx context.Context, path, name string, content io.Reader, onProgress func(sent, total int64)) (models.Attachment, error) {
	var opts []transport.RequestOption
	if onProgress != nil {
		opts = append(opts, transport.WithProgress(onProgress))
	}
	files := []transport.FilePart{{Field: "file", FileName: name, Content: content}}
	env, err := transport.Upload[models.Attachment](ctx, a.t, path, files, nil, opts...)
	if err != nil {
		return models.Attachment{}, err
	}
	return env.Data, nil
}

func (a *Attachments) Get(ctx context.Context, id int64) (models.Attachment, error) {
	res, err := get[models.Attachment](ctx, a.t, fmt.Sprintf("/attachments/%d", id))
	return res, wrap(err, "[api GetAttachment] id %d", id)
}

func (a *Attachments) Download(ctx context.Context, id int64) ([]byte, error) {
	resp, err := a.t.Download(ctx, fmt.Sprintf("/attachments/%d/download", id))
	if err != nil {
		return nil, wrap(err, "[api DownloadAttachment] id %d", id)
	}
	return resp.Body, nil
}

func (a *Attachments) Delete(ctx context.Context, id int64) error {
	return wrap(transport.Delete(ctx, a.t, fmt.Sprintf("/attachments/%d", id)), "[api DeleteAttachment] id %d", id)
}

// PreviewURL is the absolute URL the server renders a preview at.
func (a *Attachments) PreviewURL(id int64) string {
	return fmt.Sprintf("%s/attachments/%d/preview", a.t.BaseURL(), id)
}

func (a *Attachments) CanPreview(mimeType string) bool {
	return models.CanPreview(mimeType)
}
