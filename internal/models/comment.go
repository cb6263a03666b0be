package models

import "time"

// Comment is a discussion entry on exactly one task or subtask. CreatedAt
// falls between the host's creation and its completion (or the window end
// for open work). AttachmentCount matches the attachment records that
// reference the comment.
type Comment struct {
	CommentID       string     `json:"comment_id"`
	TaskID          *string    `json:"task_id"`
	SubtaskID       *string    `json:"subtask_id"`
	UserID          string     `json:"user_id"`
	Text            string     `json:"text"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       *time.Time `json:"updated_at"`
	AttachmentCount int        `json:"attachment_count"`
}
