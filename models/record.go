// Package models holds the wire records, request payloads and list filters of the REST API.
package models

import "github.com/jrsteele09/taskflow-client/session"

// Record is anything with a server assigned identity.
type Record interface {
	GetID() int64
}

// User is the public profile returned by the API.
type User = session.User

// UserRef is the compact user embedded in other records.
type UserRef struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

// Priority values shared by projects and tasks.
const (
	PriorityLow      = "low"
	PriorityMedium   = "medium"
	PriorityHigh     = "high"
	PriorityCritical = "critical"
)

// Sort orders.
const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)
