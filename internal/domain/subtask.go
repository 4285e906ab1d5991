package domain

import "time"

// SubTask cannot outlive its parent task. CompletedAt follows the same
// rule as Task.CompletedAt.
type SubTask struct {
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	SubTaskID   string     `json:"subtask_id"`
	TaskID      string     `json:"task_id"`
	Title       string     `json:"title"`
	AssigneeID  *string    `json:"assignee_id,omitempty"`
	Status      TaskStatus `json:"status"`
}

func (s *SubTask) Assigned(userID string) bool {
	return s.AssigneeID != nil && *s.AssigneeID == userID
}
