package models

import "time"

// Task priorities. Lower is more urgent.
const (
	PriorityUrgent = 1
	PriorityHigh   = 2
	PriorityNormal = 3
	PriorityLow    = 4
)

// Task is the central work item. Invariants maintained by the generator:
// the section belongs to the same project, DueDate and CompletedAt never
// precede CreatedAt, CompletedAt is set if and only if Completed is true,
// and EstimatedHours is set only for tasks in sprint projects.
type Task struct {
	TaskID         string     `json:"task_id"`
	ProjectID      string     `json:"project_id"`
	SectionID      *string    `json:"section_id"`
	Name           string     `json:"name"`
	Description    *string    `json:"description"`
	CreatedAt      time.Time  `json:"created_at"`
	CreatedBy      string     `json:"created_by"`
	AssigneeID     *string    `json:"assignee_id"`
	DueDate        *time.Time `json:"due_date"`
	StartDate      *time.Time `json:"start_date"`
	Completed      bool       `json:"completed"`
	CompletedAt    *time.Time `json:"completed_at"`
	Priority       int        `json:"priority"`
	EstimatedHours *float64   `json:"estimated_hours"`
}

// Subtask is a child work item. It shares its parent's project, is created
// 5 to 60 minutes after the parent, and inherits the parent's due date.
type Subtask struct {
	SubtaskID    string     `json:"subtask_id"`
	ParentTaskID string     `json:"parent_task_id"`
	ProjectID    string     `json:"project_id"`
	Name         string     `json:"name"`
	Description  *string    `json:"description"`
	CreatedAt    time.Time  `json:"created_at"`
	CreatedBy    string     `json:"created_by"`
	AssigneeID   *string    `json:"assignee_id"`
	DueDate      *time.Time `json:"due_date"`
	Completed    bool       `json:"completed"`
	CompletedAt  *time.Time `json:"completed_at"`
	DisplayOrder int        `json:"display_order"`
}
