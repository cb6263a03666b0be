package models

import "time"

// Tag is an organization-scoped label. Names are unique within the
// organization.
type Tag struct {
	TagID          string    `json:"tag_id"`
	OrganizationID string    `json:"organization_id"`
	Name           string    `json:"name"`
	Color          string    `json:"color"`
	CreatedAt      time.Time `json:"created_at"`
	CreatedBy      string    `json:"created_by"`
}

// TaskTag attaches a tag to a task. A task carries each tag at most once,
// and AddedAt never precedes the task's creation.
type TaskTag struct {
	TaskTagID string    `json:"task_tag_id"`
	TaskID    string    `json:"task_id"`
	TagID     string    `json:"tag_id"`
	AddedAt   time.Time `json:"added_at"`
}
