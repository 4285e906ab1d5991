package domain

import "time"

type TaskStatus string

const (
	StatusTodo       TaskStatus = "TODO"
	StatusInProgress TaskStatus = "IN_PROGRESS"
	StatusCompleted  TaskStatus = "COMPLETED"
	StatusBlocked    TaskStatus = "BLOCKED"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusCompleted, StatusBlocked:
		return true
	}
	return false
}

type TaskPriority string

const (
	PriorityLow    TaskPriority = "LOW"
	PriorityMedium TaskPriority = "MEDIUM"
	PriorityHigh   TaskPriority = "HIGH"
	PriorityUrgent TaskPriority = "URGENT"
)

func (p TaskPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// Task is the root entity: subtasks, bug reports, attachments and history
// entries all hang off it and are deleted with it.
//
// CompletedAt is set iff Status == StatusCompleted.
type Task struct {
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
	DueDate        *time.Time   `json:"due_date,omitempty"`
	CompletedAt    *time.Time   `json:"completed_at,omitempty"`
	TaskID         string       `json:"task_id"`
	Title          string       `json:"title"`
	Description    string       `json:"description"`
	CreatorID      string       `json:"creator_id"`
	AssigneeID     *string      `json:"assignee_id,omitempty"`
	TeamID         *string      `json:"team_id,omitempty"`
	Status         TaskStatus   `json:"status"`
	Priority       TaskPriority `json:"priority"`
	Category       TaskCategory `json:"category"`
	Progress       int          `json:"progress"`
	EstimatedHours *float64     `json:"estimated_hours,omitempty"`
	ActualHours    *float64     `json:"actual_hours,omitempty"`
}

// Assigned reports whether the task is assigned to the given user.
func (t *Task) Assigned(userID string) bool {
	return t.AssigneeID != nil && *t.AssigneeID == userID
}

// TeamScoped reports whether the task belongs to a team.
func (t *Task) TeamScoped() bool {
	return t.TeamID != nil && *t.TeamID != ""
}
