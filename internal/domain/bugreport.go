package domain

import "time"

type BugSeverity string

const (
	SeverityLow      BugSeverity = "LOW"
	SeverityMedium   BugSeverity = "MEDIUM"
	SeverityHigh     BugSeverity = "HIGH"
	SeverityCritical BugSeverity = "CRITICAL"
)

func (s BugSeverity) Valid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	}
	return false
}

// BugReport belongs to its parent task. ResolvedAt is set iff
// Status == StatusCompleted.
type BugReport struct {
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
	ResolvedAt  *time.Time  `json:"resolved_at,omitempty"`
	BugID       string      `json:"bug_id"`
	TaskID      string      `json:"task_id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	ReporterID  string      `json:"reporter_id"`
	AssigneeID  *string     `json:"assignee_id,omitempty"`
	Status      TaskStatus  `json:"status"`
	Severity    BugSeverity `json:"severity"`
	Environment string      `json:"environment,omitempty"`
	Steps       string      `json:"steps,omitempty"`
}

func (b *BugReport) Assigned(userID string) bool {
	return b.AssigneeID != nil && *b.AssigneeID == userID
}
