package domain

import "time"

const (
	ActionCreated      = "CREATED"
	ActionFieldChanged = "FIELD_CHANGED"
	ActionDeleted      = "DELETED"
)

// HistoryEntry is append-only: entries are never updated or deleted while
// their task exists, and go away only with the task itself.
type HistoryEntry struct {
	CreatedAt time.Time `json:"created_at"`
	EntryID   string    `json:"entry_id"`
	TaskID    string    `json:"task_id"`
	UserID    string    `json:"user_id"`
	Action    string    `json:"action"`
	FieldName string    `json:"field_name,omitempty"`
	OldValue  string    `json:"old_value,omitempty"`
	NewValue  string    `json:"new_value,omitempty"`
}
