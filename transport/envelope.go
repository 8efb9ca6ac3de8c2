package transport

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/jrsteele09/taskflow-client/internal/errors"
)

// Meta is the metadata block carried by every envelope.
type Meta struct {
	Timestamp   string `json:"timestamp,omitempty"`
	ErrorCode   string `json:"error_code,omitempty"`
	UnreadCount *int   `json:"unread_count,omitempty"`
}

// PageMeta is the meta block of paginated list responses.
type PageMeta struct {
	CurrentPage int    `json:"current_page"`
	PerPage     int    `json:"per_page"`
	Total       int    `json:"total"`
	LastPage    int    `json:"last_page"`
	Timestamp   string `json:"timestamp,omitempty"`
	UnreadCount *int   `json:"unread_count,omitempty"`
}

// Links are the optional navigation URLs of a paginated response.
type Links struct {
	First *string `json:"first"`
	Last  *string `json:"last"`
	Prev  *string `json:"prev"`
	Next  *string `json:"next"`
}

// Envelope is the standard single-result response body.
type Envelope[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data"`
	Message string `json:"message,omitempty"`
	Meta    Meta   `json:"meta"`
}

// PageEnvelope is the standard paginated response body.
type PageEnvelope[T any] struct {
	Success bool     `json:"success"`
	Data    []T      `json:"data"`
	Message string   `json:"message,omitempty"`
	Meta    PageMeta `json:"meta"`
	Links   *Links   `json:"links,omitempty"`
}

// APIError is returned for any non-2xx response.
type APIError struct {
	Status    int                 `json:"-"`
	Message   string              `json:"message"`
	Errors    map[string][]string `json:"errors,omitempty"`
	ErrorCode string              `json:"-"`
	Timestamp string              `json:"-"`
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.Status)
	}
	if len(e.Errors) == 0 {
		return fmt.Sprintf("api error %d: %s", e.Status, msg)
	}

	fields := make([]string, 0, len(e.Errors))
	for f := range e.Errors {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+strings.Join(e.Errors[f], ", "))
	}
	return fmt.Sprintf("api error %d: %s (%s)", e.Status, msg, strings.Join(parts, "; "))
}

// Is matches 404 responses to ErrNotFound and 401 responses to ErrUnauthorized.
func (e *APIError) Is(target error) bool {
	switch target {
	case errors.ErrNotFound:
		return e.Status == http.StatusNotFound
	case errors.ErrUnauthorized:
		return e.Status == http.StatusUnauthorized
	}
	return false
}

// FieldErrors returns the validation messages for one field.
func (e *APIError) FieldErrors(field string) []string {
	return e.Errors[field]
}

// IsStatus reports whether err is an *APIError with the given status code.
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == status
}

// Message returns the server supplied message of an *APIError in err's chain, or fallback.
func Message(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

func decodeAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{Status: status}
	if len(body) == 0 {
		return apiErr
	}

	var wire struct {
		Message string              `json:"message"`
		Errors  map[string][]string `json:"errors"`
		Meta    Meta                `json:"meta"`
	}
	if err := json.Unmarshal(body, &wire); err != nil {
		return apiErr
	}
	apiErr.Message = wire.Message
	apiErr.Errors = wire.Errors
	apiErr.ErrorCode = wire.Meta.ErrorCode
	apiErr.Timestamp = wire.Meta.Timestamp
	return apiErr
}
