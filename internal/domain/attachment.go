package domain

import "time"

type Attachment struct {
	CreatedAt    time.Time `json:"created_at"`
	AttachmentID string    `json:"attachment_id"`
	TaskID       string    `json:"task_id"`
	UploadedBy   string    `json:"uploaded_by"`
	FileName     string    `json:"file_name"`
	URL          string    `json:"url"`
}
