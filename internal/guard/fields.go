// Package guard field-filters update payloads against a permission set and
// applies the validated result. The field table below is the single place
// that knows which fields exist, which tier may write them, and how each
// value is validated; nothing elsewhere switches on field names.
package guard

import (
	"fmt"
	"strings"
	"time"

	"task-manager-service/internal/access"
	"task-manager-service/internal/domain"
)

// Tier is the write level an actor holds on a task. The allow-list is
// selected by the highest tier whose permission flag is true; lists are
// fixed per tier, not cumulative.
type Tier int

const (
	TierProgress Tier = iota
	TierStatus
	TierEdit
)

func TierFor(perms access.PermissionSet) Tier {
	switch {
	case perms.CanEdit:
		return TierEdit
	case perms.CanUpdateStatus:
		return TierStatus
	default:
		return TierProgress
	}
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors is the batch of per-field failures collected over one
// request. When it is non-empty no field is applied at all.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	parts := make([]string, len(v))
	for i, fe := range v {
		parts[i] = fe.Field + ": " + fe.Message
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

type UpdateResult struct {
	Accepted map[string]any `json:"accepted"`
	Rejected []string       `json:"rejected"`
	Errors   ValidationErrors
}

// fieldDescriptor validates and normalizes one raw JSON value. A nil return
// from validate with nil error means "explicitly cleared".
type fieldDescriptor struct {
	name     string
	validate func(v any) (any, error)
}

var taskFields = map[string]fieldDescriptor{
	"title":           {name: "title", validate: nonEmptyString(500)},
	"description":     {name: "description", validate: anyString(5000)},
	"priority":        {name: "priority", validate: priorityEnum},
	"status":          {name: "status", validate: statusEnum},
	"due_date":        {name: "due_date", validate: nullableDate},
	"assignee_id":     {name: "assignee_id", validate: nullableID},
	"team_id":         {name: "team_id", validate: nullableID},
	"estimated_hours": {name: "estimated_hours", validate: nonNegativeHours},
	"actual_hours":    {name: "actual_hours", validate: nonNegativeHours},
	"progress":        {name: "progress", validate: progressPercent},
}

var tierAllowLists = map[Tier][]string{
	TierEdit:     {"title", "description", "priority", "status", "due_date", "assignee_id", "team_id", "estimated_hours"},
	TierStatus:   {"status", "actual_hours", "progress", "assignee_id"},
	TierProgress: {"progress"},
}

// FilterEditableFields splits a requested update into accepted and rejected
// fields for the given permission set. Validation failures are collected,
// never short-circuited, so the caller can report every problem at once.
//
// assignee_id carries an extra rule: at any tier an actor may set it to
// themselves or clear it, but pointing it at a third party needs CanAssign.
func FilterEditableFields(perms access.PermissionSet, actorID string, fields map[string]any) UpdateResult {
	tier := TierFor(perms)
	allowed := make(map[string]bool, len(tierAllowLists[tier]))
	for _, name := range tierAllowLists[tier] {
		allowed[name] = true
	}

	result := UpdateResult{Accepted: make(map[string]any)}

	for name, raw := range fields {
		desc, known := taskFields[name]
		if !known || !allowed[name] {
			result.Rejected = append(result.Rejected, name)
			continue
		}

		if name == "assignee_id" && !selfAssignment(raw, actorID) && !perms.CanAssign {
			result.Rejected = append(result.Rejected, name)
			continue
		}

		value, err := desc.validate(raw)
		if err != nil {
			result.Errors = append(result.Errors, FieldError{Field: name, Message: err.Error()})
			continue
		}
		result.Accepted[name] = value
	}

	return result
}

// selfAssignment reports whether the requested assignee value is the actor
// themselves or an unassignment.
func selfAssignment(raw any, actorID string) bool {
	if raw == nil {
		return true
	}
	s, ok := raw.(string)
	return ok && (s == "" || s == actorID)
}

// Validators. Raw values come straight from decoded JSON, so numbers are
// float64 and absence of a value is nil.

func nonEmptyString(maxLen int) func(any) (any, error) {
	return func(v any) (any, error) {
		s, ok := v.(string)
		if !ok || strings.TrimSpace(s) == "" {
			return nil, fmt.Errorf("must be a non-empty string")
		}
		if len(s) > maxLen {
			return nil, fmt.Errorf("must be at most %d characters", maxLen)
		}
		return s, nil
	}
}

func anyString(maxLen int) func(any) (any, error) {
	return func(v any) (any, error) {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("must be a string")
		}
		if len(s) > maxLen {
			return nil, fmt.Errorf("must be at most %d characters", maxLen)
		}
		return s, nil
	}
}

func priorityEnum(v any) (any, error) {
	s, ok := v.(string)
	if !ok || !domain.TaskPriority(s).Valid() {
		return nil, fmt.Errorf("must be one of LOW, MEDIUM, HIGH, URGENT")
	}
	return domain.TaskPriority(s), nil
}

func statusEnum(v any) (any, error) {
	s, ok := v.(string)
	if !ok || !domain.TaskStatus(s).Valid() {
		return nil, fmt.Errorf("must be one of TODO, IN_PROGRESS, COMPLETED, BLOCKED")
	}
	return domain.TaskStatus(s), nil
}

func nullableDate(v any) (any, error) {
	if v == nil {
		return (*time.Time)(nil), nil
	}
	s, ok := v.(string)
	if !ok {
		return nil, fmt.Errorf("must be an RFC3339 date or null")
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t, err = time.Parse("2006-01-02", s)
	}
	if err != nil {
		return nil, fmt.Errorf("must be an RFC3339 date or null")
	}
	return &t, nil
}

func nullableID(v any) (any, error) {
	if v == nil {
		return (*string)(nil), nil
	}
	s, ok := v.(string)
	if !ok {
		return nil, fmt.Errorf("must be a string id or null")
	}
	if s == "" {
		return (*string)(nil), nil
	}
	return &s, nil
}

func nonNegativeHours(v any) (any, error) {
	f, ok := v.(float64)
	if !ok || f < 0 {
		return nil, fmt.Errorf("must be a non-negative number")
	}
	return &f, nil
}

func progressPercent(v any) (any, error) {
	f, ok := v.(float64)
	if !ok || f != float64(int(f)) || f < 0 || f > 100 {
		return nil, fmt.Errorf("must be an integer between 0 and 100")
	}
	return int(f), nil
}
