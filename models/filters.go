package models

import (
	"net/url"
	"strconv"
)

// ProjectFilters are the list parameters of GET /projects.
type ProjectFilters struct {
	Status   string
	Priority string
	Search   string
	Sort     string
	Order    string
	Page     int
	PerPage  int
}

// DefaultProjectFilters sorts newest first.
func DefaultProjectFilters() ProjectFilters {
	return ProjectFilters{Sort: "created_at", Order: OrderDesc}
}

func (f ProjectFilters) Query() url.Values {
	q := url.Values{}
	setString(q, "status", f.Status)
	setString(q, "priority", f.Priority)
	setString(q, "search", f.Search)
	setString(q, "sort", f.Sort)
	setString(q, "order", f.Order)
	setInt(q, "page", f.Page)
	setInt(q, "per_page", f.PerPage)
	return q
}

// TaskFilters are the list parameters of GET /tasks.
type TaskFilters struct {
	ProjectID   int64
	Status      string
	Priority    string
	AssignedTo  int64
	Search      string
	Sort        string
	Order       string
	Page        int
	PerPage     int
	DueDateFrom string
	DueDateTo   string
}

// DefaultTaskFilters sorts newest first.
func DefaultTaskFilters() TaskFilters {
	return TaskFilters{Sort: "created_at", Order: OrderDesc}
}

func (f TaskFilters) Query() url.Values {
	q := url.Values{}
	setInt64(q, "project_id", f.ProjectID)
	setString(q, "status", f.Status)
	setString(q, "priority", f.Priority)
	setInt64(q, "assigned_to", f.AssignedTo)
	setString(q, "search", f.Search)
	setString(q, "sort", f.Sort)
	setString(q, "order", f.Order)
	setInt(q, "page", f.Page)
	setInt(q, "per_page", f.PerPage)
	setString(q, "due_date_from", f.DueDateFrom)
	setString(q, "due_date_to", f.DueDateTo)
	return q
}

// PageQuery is the bare page parameter used by nested listings.
func PageQuery(page int) url.Values {
	q := url.Values{}
	setInt(q, "page", page)
	return q
}

func setString(q url.Values, key, v string) {
	if v != "" {
		q.Set(key, v)
	}
}

func setInt(q url.Values, key string, v int) {
	if v != 0 {
		q.Set(key, strconv.Itoa(v))
	}
}

func setInt64(q url.Values, key string, v int64) {
	if v != 0 {
		q.Set(key, strconv.FormatInt(v, 10))
	}
}
