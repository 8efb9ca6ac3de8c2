package models

import (
	"encoding/json"
	"time"
)

type Activity struct {
	ID          int64           `json:"id"`
	Description string          `json:"description"`
	SubjectType string          `json:"subject_type"`
	SubjectID   int64           `json:"subject_id"`
	User        *UserRef        `json:"user"`
	Properties  json.RawMessage `json:"properties,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

func (a Activity) GetID() int64 { return a.ID }
