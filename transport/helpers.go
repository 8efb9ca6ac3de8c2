package transport

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/jrsteele09/taskflow-client/internal/errors"
)

// Get fetches path and decodes the standard envelope.
func Get[T any](ctx context.Context, c *Client, path string, opts ...RequestOption) (*Envelope[T], error) {
	return call[Envelope[T]](ctx, c, http.MethodGet, path, nil, opts...)
}

// GetPage fetches a paginated list.
func GetPage[T any](ctx context.Context, c *Client, path string, opts ...RequestOption) (*PageEnvelope[T], error) {
	return call[PageEnvelope[T]](ctx, c, http.MethodGet, path, nil, opts...)
}

func Post[T any](ctx context.Context, c *Client, path string, body any, opts ...RequestOption) (*Envelope[T], error) {
	return call[Envelope[T]](ctx, c, http.MethodPost, path, body, opts...)
}

func Put[T any](ctx context.Context, c *Client, path string, body any, opts ...RequestOption) (*Envelope[T], error) {
	return call[Envelope[T]](ctx, c, http.MethodPut, path, body, opts...)
}

// Delete issues a DELETE and discards the response data.
func Delete(ctx context.Context, c *Client, path string, opts ...RequestOption) error {
	_, err := c.Send(ctx, http.MethodDelete, path, nil, opts...)
	return err
}

// Download returns the raw bytes at path along with the response headers.
func (c *Client) Download(ctx context.Context, path string, opts ...RequestOption) (*Response, error) {
	return c.Send(ctx, http.MethodGet, path, nil, append(opts, WithBlob())...)
}

// FilePart is one file of a multipart upload.
type FilePart struct {
	Field    string
	FileName string
	Content  io.Reader
}

// Upload posts files and fields as multipart/form-data.
func Upload[T any](ctx context.Context, c *Client, path string, files []FilePart, fields map[string]string, opts ...RequestOption) (*Envelope[T], error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return nil, errors.Wrapf(err, "[transport Upload] field %s", k)
		}
	}
	for _, f := range files {
		part, err := w.CreateFormFile(f.Field, f.FileName)
		if err != nil {
			return nil, errors.Wrapf(err, "[transport Upload] file %s", f.FileName)
		}
		if _, err := io.Copy(part, f.Content); err != nil {
			return nil, errors.Wrapf(err, "[transport Upload] reading %s", f.FileName)
		}
	}
	if err := w.Close(); err != nil {
		return nil, errors.Wrapf(err, "[transport Upload] closing form")
	}

	opts = append(opts, WithContentType(w.FormDataContentType()))
	return call[Envelope[T]](ctx, c, http.MethodPost, path, buf.Bytes(), opts...)
}

func call[E any](ctx context.Context, c *Client, method, path string, body any, opts ...RequestOption) (*E, error) {
	resp, err := c.Send(ctx, method, path, body, opts...)
	if err != nil {
		return nil, err
	}
	out := new(E)
	if err := resp.Decode(out); err != nil {
		return nil, errors.Wrapf(err, "[transport] decoding %s %s", method, path)
	}
	return out, nil
}
