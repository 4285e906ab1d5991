package guard

import (
	"fmt"
	"time"

	"task-manager-service/internal/domain"
)

// FieldChange records one applied mutation with string-rendered values,
// ready for the history log. The derived completed_at/resolved_at writes
// never appear here.
type FieldChange struct {
	Field    string
	OldValue string
	NewValue string
}

// CompletionChange returns the completion timestamp that must accompany a
// status transition: entering COMPLETED stamps now, leaving COMPLETED
// clears the stamp. The same rule serves tasks, subtasks and bug reports.
func CompletionChange(oldStatus, newStatus domain.TaskStatus, current *time.Time, now time.Time) *time.Time {
	if newStatus == domain.StatusCompleted {
		if oldStatus == domain.StatusCompleted {
			return current
		}
		return &now
	}
	return nil
}

// ApplyToTask writes the accepted fields onto the task and applies the
// completion side effect atomically with the status change. It returns the
// list of actual changes; fields whose accepted value equals the current
// value produce no change.
func ApplyToTask(task *domain.Task, accepted map[string]any, now time.Time) []FieldChange {
	var changes []FieldChange

	record := func(field, oldVal, newVal string) {
		if oldVal != newVal {
			changes = append(changes, FieldChange{Field: field, OldValue: oldVal, NewValue: newVal})
		}
	}

	for field, value := range accepted {
		switch field {
		case "title":
			v := value.(string)
			record(field, task.Title, v)
			task.Title = v
		case "description":
			v := value.(string)
			record(field, task.Description, v)
			task.Description = v
		case "priority":
			v := value.(domain.TaskPriority)
			record(field, string(task.Priority), string(v))
			task.Priority = v
		case "status":
			v := value.(domain.TaskStatus)
			record(field, string(task.Status), string(v))
			task.CompletedAt = CompletionChange(task.Status, v, task.CompletedAt, now)
			task.Status = v
		case "due_date":
			v := value.(*time.Time)
			record(field, renderTime(task.DueDate), renderTime(v))
			task.DueDate = v
		case "assignee_id":
			v := value.(*string)
			record(field, renderString(task.AssigneeID), renderString(v))
			task.AssigneeID = v
		case "team_id":
			v := value.(*string)
			record(field, renderString(task.TeamID), renderString(v))
			task.TeamID = v
		case "estimated_hours":
			v := value.(*float64)
			record(field, renderFloat(task.EstimatedHours), renderFloat(v))
			task.EstimatedHours = v
		case "actual_hours":
			v := value.(*float64)
			record(field, renderFloat(task.ActualHours), renderFloat(v))
			task.ActualHours = v
		case "progress":
			v := value.(int)
			record(field, fmt.Sprintf("%d", task.Progress), fmt.Sprintf("%d", v))
			task.Progress = v
		}
	}

	task.UpdatedAt = now
	return changes
}

func renderString(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func renderTime(v *time.Time) string {
	if v == nil {
		return ""
	}
	return v.UTC().Format(time.RFC3339)
}

func renderFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%g", *v)
}
