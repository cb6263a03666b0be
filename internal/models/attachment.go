package models

import "time"

// Attachment is a file reference on exactly one task, subtask, or comment.
// FileSize is in bytes.
type Attachment struct {
	AttachmentID string    `json:"attachment_id"`
	Filename     string    `json:"filename"`
	CreatedAt    time.Time `json:"created_at"`
	UploadedBy   string    `json:"uploaded_by"`
	TaskID       *string   `json:"task_id"`
	SubtaskID    *string   `json:"subtask_id"`
	CommentID    *string   `json:"comment_id"`
	FileURL      *string   `json:"file_url"`
	FileSize     *int64    `json:"file_size"`
}
