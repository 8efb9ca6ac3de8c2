package models

import "time"

type Attachment struct {
	ID            int64     `json:"id"`
	Filename      string    `json:"filename"`
	MimeType      string    `json:"mime_type"`
	Size          int64     `json:"size"`
	FormattedSize string    `json:"formatted_size"`
	IsImage       bool      `json:"is_image"`
	IsDocument    bool      `json:"is_document"`
	URL           string    `json:"url"`
	DownloadURL   string    `json:"download_url"`
	UploadedBy    *User     `json:"uploaded_by,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (a Attachment) GetID() int64 { return a.ID }

var previewableMimeTypes = map[string]bool{
	"image/jpeg":      true,
	"image/jpg":       true,
	"image/png":       true,
	"image/gif":       true,
	"image/webp":      true,
	"image/svg+xml":   true,
	"application/pdf": true,
	"text/plain":      true,
}

// CanPreview reports whether the server can render mimeType inline.
func CanPreview(mimeType string) bool {
	return previewableMimeTypes[mimeType]
}
