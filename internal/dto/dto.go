package dto

import "time"

type UserDTO struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	IsActive bool   `json:"is_active"`
}

type TeamMemberDTO struct {
	UserID   string `json:"user_id"`
	Username string `json:"username,omitempty"`
	Role     string `json:"role"`
}

type TeamDTO struct {
	TeamID   string          `json:"team_id"`
	TeamName string          `json:"team_name"`
	OwnerID  string          `json:"owner_id"`
	Members  []TeamMemberDTO `json:"members"`
}

type TaskDTO struct {
	TaskID         string         `json:"task_id"`
	Title          string         `json:"title"`
	Description    string         `json:"description,omitempty"`
	CreatorID      string         `json:"creator_id"`
	AssigneeID     *string        `json:"assignee_id,omitempty"`
	TeamID         *string        `json:"team_id,omitempty"`
	Status         string         `json:"status"`
	Priority       string         `json:"priority"`
	Category       string         `json:"category"`
	Progress       int            `json:"progress"`
	EstimatedHours *float64       `json:"estimated_hours,omitempty"`
	ActualHours    *float64       `json:"actual_hours,omitempty"`
	DueDate        *time.Time     `json:"due_date,omitempty"`
	CompletedAt    *time.Time     `json:"completed_at,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	Details        any            `json:"details,omitempty"`
	Permissions    *PermissionDTO `json:"permissions,omitempty"`
}

type PermissionDTO struct {
	CanEdit            bool `json:"can_edit"`
	CanUpdateStatus    bool `json:"can_update_status"`
	CanComment         bool `json:"can_comment"`
	CanDelete          bool `json:"can_delete"`
	CanAssign          bool `json:"can_assign"`
	CanViewHistory     bool `json:"can_view_history"`
	CanViewSubmissions bool `json:"can_view_submissions"`
}

type SubTaskDTO struct {
	SubTaskID   string     `json:"subtask_id"`
	TaskID      string     `json:"task_id"`
	Title       string     `json:"title"`
	AssigneeID  *string    `json:"assignee_id,omitempty"`
	Status      string     `json:"status"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

type BugReportDTO struct {
	BugID       string     `json:"bug_id"`
	TaskID      string     `json:"task_id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	ReporterID  string     `json:"reporter_id"`
	AssigneeID  *string    `json:"assignee_id,omitempty"`
	Status      string     `json:"status"`
	Severity    string     `json:"severity"`
	Environment string     `json:"environment,omitempty"`
	Steps       string     `json:"steps,omitempty"`
	ResolvedAt  *time.Time `json:"resolved_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

type AttachmentDTO struct {
	AttachmentID string    `json:"attachment_id"`
	TaskID       string    `json:"task_id"`
	UploadedBy   string    `json:"uploaded_by"`
	FileName     string    `json:"file_name"`
	URL          string    `json:"url"`
	CreatedAt    time.Time `json:"created_at"`
}

type HistoryEntryDTO struct {
	EntryID   string    `json:"entry_id"`
	TaskID    string    `json:"task_id"`
	UserID    string    `json:"user_id"`
	Action    string    `json:"action"`
	FieldName string    `json:"field_name,omitempty"`
	OldValue  string    `json:"old_value,omitempty"`
	NewValue  string    `json:"new_value,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type StatisticsDTO struct {
	TotalTasks      int `json:"total_tasks"`
	TodoTasks       int `json:"todo_tasks"`
	InProgressTasks int `json:"in_progress_tasks"`
	CompletedTasks  int `json:"completed_tasks"`
	BlockedTasks    int `json:"blocked_tasks"`
	OverdueTasks    int `json:"overdue_tasks"`
	OpenBugs        int `json:"open_bugs"`
}
