package api

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/jrsteele09/taskflow-client/models"
	"github.com/jrsteele09/taskflow-client/transport"
)

type Files struct {
	t *transport.Client
}

func (f *Files) List(ctx context.Context, filter models.FileFilter) ([]models.FileAttachment, error) {
	res, err := get[[]models.FileAttachment](ctx, f.t, "/files", transport.WithQuery(filter.Query()))
	return res, wrap(err, "[api ListFiles]")
}

func (f *Files) Search(ctx context.Context, query string, filter models.FileFilter) ([]models.FileAttachment, error) {
	q := filter.Query()
	q.Set("q", query)
	res, err := get[[]models.FileAttachment](ctx, f.t, "/files/search", transport.WithQuery(q))
	return res, wrap(err, "[api SearchFiles] %q", query)
}

func (f *Files) Get(ctx context.Context, id int64) (models.FileAttachment, error) {
	res, err := get[models.FileAttachment](ctx, f.t, fmt.Sprintf("/files/%d", id))
	return res, wrap(err, "[api GetFile] id %d", id)
}

func (f *Files) Upload(ctx context.Context, name string, content io.Reader, data models.UploadFileData) (models.FileAttachment, error) {
	files := []transport.FilePart{{Field: "file", FileName: name, Content: content}}
	env, err := transport.Upload[models.FileAttachment](ctx, f.t, "/files", files, data.Fields())
	if err != nil {
		return models.FileAttachment{}, wrap(err, "[api UploadFile] %s", name)
	}
	return env.Data, nil
}

func (f *Files) Update(ctx context.Context, id int64, data models.UpdateFileData) (models.FileAttachment, error) {
	res, err := put[models.FileAttachment](ctx, f.t, fmt.Sprintf("/files/%d", id), data)
	return res, wrap(err, "[api UpdateFile] id %d", id)
}

func (f *Files) Delete(ctx context.Context, id int64) error {
	return wrap(transport.Delete(ctx, f.t, fmt.Sprintf("/files/%d", id)), "[api DeleteFile] id %d", id)
}

func (f *Files) Download(ctx context.Context, id int64) ([]byte, error) {
	resp, err := f.t.Download(ctx, fmt.Sprintf("/files/%d/download", id))
	if err != nil {
		return nil, wrap(err, "[api DownloadFile] id %d", id)
	}
	return resp.Body, nil
}

func (f *Files) Preview(ctx context.Context, id int64) (models.FilePreview, error) {
	res, err := get[models.FilePreview](ctx, f.t, fmt.Sprintf("/files/%d/preview", id))
	return res, wrap(err, "[api FilePreview] id %d", id)
}

func (f *Files) Versions(ctx context.Context, id int64) ([]models.FileVersion, error) {
	res, err := get[[]models.FileVersion](ctx, f.t, fmt.Sprintf("/files/%d/versions", id))
	return res, wrap(err, "[api FileVersions] id %d", id)
}

func (f *Files) UploadVersion(ctx context.Context, id int64, name string, content io.Reader, changes string) (models.FileAttachment, error) {
	var fields map[string]string
	if changes != "" {
		fields = map[string]string{"changes_description": changes}
	}
	files := []transport.FilePart{{Field: "file", FileName: name, Content: content}}
	env, err := transport.Upload[models.FileAttachment](ctx, f.t, fmt.Sprintf("/files/%d/versions", id), files, fields)
	if err != nil {
		return models.FileAttachment{}, wrap(err, "[api UploadFileVersion] id %d", id)
	}
	return env.Data, nil
}

func (f *Files) RestoreVersion(ctx context.Context, id, versionID int64) (models.FileAttachment, error) {
	res, err := post[models.FileAttachment](ctx, f.t, fmt.Sprintf("/files/%d/versions/%d/restore", id, versionID), nil)
	return res, wrap(err, "[api RestoreFileVersion] id %d version %d", id, versionID)
}

func (f *Files) DeleteVersion(ctx context.Context, id, versionID int64) error {
	return wrap(transport.Delete(ctx, f.t, fmt.Sprintf("/files/%d/versions/%d", id, versionID)), "[api DeleteFileVersion] id %d version %d", id, versionID)
}

func (f *Files) Categories(ctx context.Context) ([]models.FileCategory, error) {
	res, err := get[[]models.FileCategory](ctx, f.t, "/file-categories")
	return res, wrap(err, "[api FileCategories]")
}

func (f *Files) Category(ctx context.Context, id int64) (models.FileCategory, error) {
	res, err := get[models.FileCategory](ctx, f.t, fmt.Sprintf("/file-categories/%d", id))
	return res, wrap(err, "[api FileCategory] id %d", id)
}

func (f *Files) CreateCategory(ctx context.Context, data models.FileCategoryData) (models.FileCategory, error) {
	res, err := post[models.FileCategory](ctx, f.t, "/file-categories", data)
	return res, wrap(err, "[api CreateFileCategory] %s", data.Name)
}

func (f *Files) UpdateCategory(ctx context.Context, id int64, data models.FileCategoryData) (models.FileCategory, error) {
	res, err := put[models.FileCategory](ctx, f.t, fmt.Sprintf("/file-categories/%d", id), data)
	return res, wrap(err, "[api UpdateFileCategory] id %d", id)
}

func (f *Files) DeleteCategory(ctx context.Context, id int64) error {
	return wrap(transport.Delete(ctx, f.t, fmt.Sprintf("/file-categories/%d", id)), "[api DeleteFileCategory] id %d", id)
}

func (f *Files) Bulk(ctx context.Context, op models.BulkFileOperation) error {
	return wrap(send(ctx, f.t, http.MethodPost, "/files/bulk", op), "[api BulkFiles] %s", op.Operation)
}

func (f *Files) BulkDelete(ctx context.Context, ids []int64) error {
	body := map[string]any{"file_ids": ids}
	return wrap(send(ctx, f.t, http.MethodPost, "/files/bulk-delete", body), "[api BulkDeleteFiles] %d files", len(ids))
}

// BulkDownload returns the archive the server builds from ids.
func (f *Files) BulkDownload(ctx context.Context, ids []int64) ([]byte, error) {
	body := map[string]any{"file_ids": ids}
	resp, err := f.t.Send(ctx, http.MethodPost, "/files/bulk-download", body, transport.WithBlob())
	if err != nil {
		return nil, wrap(err, "[api BulkDownloadFiles] %d files", len(ids))
	}
	return resp.Body, nil
}

func (f *Files) BulkCategorize(ctx context.Context, ids []int64, categoryID int64) error {
	body := map[string]any{"file_ids": ids, "category_id": categoryID}
	return wrap(send(ctx, f.t, http.MethodPost, "/files/bulk-categorize", body), "[api BulkCategorizeFiles] category %d", categoryID)
}

func (f *Files) BulkMove(ctx context.Context, ids []int64, targetID int64, targetType string) error {
	body := map[string]any{"file_ids": ids, "target_id": targetID, "target_type": targetType}
	return wrap(send(ctx, f.t, http.MethodPost, "/files/bulk-move", body), "[api BulkMoveFiles] %s %d", targetType, targetID)
}

func (f *Files) Stats(ctx context.Context, filter models.FileStatsFilter) (models.FileStats, error) {
	res, err := get[models.FileStats](ctx, f.t, "/files/stats", transport.WithQuery(filter.Query()))
	return res, wrap(err, "[api FileStats]")
}
