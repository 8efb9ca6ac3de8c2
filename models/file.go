package models

import (
	"net/url"
	"strconv"
	"time"
)

// UncategorizedLabel groups files without a category.
const UncategorizedLabel = "Uncategorized"

type FileAttachment struct {
	ID               int64            `json:"id"`
	Filename         string           `json:"filename"`
	OriginalFilename string           `json:"original_filename"`
	FilePath         string           `json:"file_path"`
	FileURL          string           `json:"file_url"`
	MimeType         string           `json:"mime_type"`
	Size             int64            `json:"size"`
	AttachableType   string           `json:"attachable_type"`
	AttachableID     int64            `json:"attachable_id"`
	UploadedBy       int64            `json:"uploaded_by"`
	Version          int              `json:"version"`
	ParentID         *int64           `json:"parent_id"`
	CategoryID       *int64           `json:"category_id"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
	Uploader         *UserRef         `json:"uploader,omitempty"`
	Category         *FileCategory    `json:"category,omitempty"`
	Versions         []FileAttachment `json:"versions,omitempty"`
	IsLatestVersion  *bool            `json:"is_latest_version,omitempty"`
}

func (f FileAttachment) GetID() int64 { return f.ID }

// CategoryName is the grouping label of the file.
func (f FileAttachment) CategoryName() string {
	if f.Category == nil || f.Category.Name == "" {
		return UncategorizedLabel
	}
	return f.Category.Name
}

type FileCategory struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Color       string    `json:"color"`
	Icon        string    `json:"icon"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (c FileCategory) GetID() int64 { return c.ID }

type FileCategoryData struct {
	Name        string  `json:"name,omitempty"`
	Color       string  `json:"color,omitempty"`
	Icon        string  `json:"icon,omitempty"`
	Description *string `json:"description,omitempty"`
}

type FileVersion struct {
	ID                 int64     `json:"id"`
	FileID             int64     `json:"file_id"`
	Version            int       `json:"version"`
	Filename           string    `json:"filename"`
	FilePath           string    `json:"file_path"`
	FileURL            string    `json:"file_url"`
	Size               int64     `json:"size"`
	UploadedBy         int64     `json:"uploaded_by"`
	ChangesDescription *string   `json:"changes_description"`
	CreatedAt          time.Time `json:"created_at"`
	Uploader           *UserRef  `json:"uploader,omitempty"`
}

func (v FileVersion) GetID() int64 { return v.ID }

type FilePreview struct {
	ID         int64  `json:"id"`
	Filename   string `json:"filename"`
	FileURL    string `json:"file_url"`
	MimeType   string `json:"mime_type"`
	Size       int64  `json:"size"`
	CanPreview bool   `json:"can_preview"`
	PreviewURL string `json:"preview_url,omitempty"`
}

// UploadFileData carries the form fields that accompany an uploaded file.
type UploadFileData struct {
	AttachableType string
	AttachableID   int64
	CategoryID     int64
	Description    string
}

// Fields renders the form fields, omitting unset values.
func (d UploadFileData) Fields() map[string]string {
	fields := map[string]string{}
	if d.AttachableType != "" {
		fields["attachable_type"] = d.AttachableType
	}
	if d.AttachableID != 0 {
		fields["attachable_id"] = strconv.FormatInt(d.AttachableID, 10)
	}
	if d.CategoryID != 0 {
		fields["category_id"] = strconv.FormatInt(d.CategoryID, 10)
	}
	if d.Description != "" {
		fields["description"] = d.Description
	}
	return fields
}

type UpdateFileData struct {
	Filename    *string `json:"filename,omitempty"`
	CategoryID  *int64  `json:"category_id,omitempty"`
	Description *string `json:"description,omitempty"`
}

// Bulk operation names.
const (
	BulkDelete     = "delete"
	BulkMove       = "move"
	BulkCategorize = "categorize"
	BulkDownload   = "download"
)

type BulkFileOperation struct {
	FileIDs      []int64 `json:"file_ids"`
	Operation    string  `json:"operation"`
	CategoryID   *int64  `json:"category_id,omitempty"`
	TargetFolder string  `json:"target_folder,omitempty"`
}

// SizeCount is one bucket of FileStats.
type SizeCount struct {
	Count int   `json:"count"`
	Size  int64 `json:"size"`
}

type FileStats struct {
	TotalFiles int                  `json:"total_files"`
	TotalSize  int64                `json:"total_size"`
	ByType     map[string]SizeCount `json:"by_type"`
	ByCategory map[string]SizeCount `json:"by_category"`
}

// File type filter values.
const (
	FileTypeImage    = "image"
	FileTypeDocument = "document"
	FileTypeVideo    = "video"
	FileTypeAudio    = "audio"
	FileTypeArchive  = "archive"
	FileTypeOther    = "other"
)

type FileFilter struct {
	Type       string
	CategoryID int64
	UploadedBy int64
	DateFrom   string
	DateTo     string
	Search     string
}

func (f FileFilter) Query() url.Values {
	q := url.Values{}
	setString(q, "type", f.Type)
	setInt64(q, "category_id", f.CategoryID)
	setInt64(q, "uploaded_by", f.UploadedBy)
	setString(q, "date_from", f.DateFrom)
	setString(q, "date_to", f.DateTo)
	setString(q, "search", f.Search)
	return q
}

// FileStatsFilter scopes statistics to a project or task.
type FileStatsFilter struct {
	ProjectID int64
	TaskID    int64
}

func (f FileStatsFilter) Query() url.Values {
	q := url.Values{}
	setInt64(q, "project_id", f.ProjectID)
	setInt64(q, "task_id", f.TaskID)
	return q
}
