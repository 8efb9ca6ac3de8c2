package apitest

import (
	"encoding/json"
	"net/http"
	"sync"
)

// PageMeta mirrors the pagination block of list responses.
type PageMeta struct {
	CurrentPage int  `json:"current_page"`
	PerPage     int  `json:"per_page"`
	Total       int  `json:"total"`
	LastPage    int  `json:"last_page"`
	UnreadCount *int `json:"unread_count,omitempty"`
}

// WriteJSON writes v with status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// OK writes a success envelope around data.
func OK(w http.ResponseWriter, data any) {
	WriteJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"data":    data,
		"meta":    map[string]any{"timestamp": timestamp()},
	})
}

// Created is OK with 201.
func Created(w http.ResponseWriter, data any) {
	WriteJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"data":    data,
		"meta":    map[string]any{"timestamp": timestamp()},
	})
}

// Page writes a paginated envelope.
func Page(w http.ResponseWriter, items any, meta PageMeta) {
	m := map[string]any{
		"current_page": meta.CurrentPage,
		"per_page":     meta.PerPage,
		"total":        meta.Total,
		"last_page":    meta.LastPage,
		"timestamp":    timestamp(),
	}
	if meta.UnreadCount != nil {
		m["unread_count"] = *meta.UnreadCount
	}
	WriteJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"data":    items,
		"meta":    m,
	})
}

// Fail writes an error envelope.
func Fail(w http.ResponseWriter, status int, message string, fieldErrors map[string][]string) {
	body := map[string]any{
		"success": false,
		"message": message,
		"meta":    map[string]any{"timestamp": timestamp()},
	}
	if fieldErrors != nil {
		body["errors"] = fieldErrors
	}
	WriteJSON(w, status, body)
}

// Status returns a handler that always fails with status.
func Status(status int, message string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		Fail(w, status, message, nil)
	}
}

// Data returns a handler that always answers OK with data.
func Data(data any) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		OK(w, data)
	}
}

// Sequence serves handlers in order, repeating the last one once exhausted.
func Sequence(handlers ...http.HandlerFunc) http.HandlerFunc {
	var mu sync.Mutex
	i := 0
	return func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		h := handlers[i]
		if i < len(handlers)-1 {
			i++
		}
		mu.Unlock()
		h(w, r)
	}
}

// RequireBearer serves next only when the request carries token, otherwise 401.
func RequireBearer(token string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+token {
			Fail(w, http.StatusUnauthorized, "Unauthenticated.", nil)
			return
		}
		next(w, r)
	}
}
