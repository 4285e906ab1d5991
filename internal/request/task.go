package request

type CreateTaskRequest struct {
	Title          string         `json:"title" validate:"required,min=1,max=500"`
	Description    string         `json:"description" validate:"max=5000"`
	AssigneeID     *string        `json:"assignee_id,omitempty" validate:"omitempty,max=255"`
	TeamID         *string        `json:"team_id,omitempty" validate:"omitempty,max=255"`
	Status         string         `json:"status" validate:"omitempty,oneof=TODO IN_PROGRESS COMPLETED BLOCKED"`
	Priority       string         `json:"priority" validate:"omitempty,oneof=LOW MEDIUM HIGH URGENT"`
	Category       string         `json:"category" validate:"required,oneof=WORK PERSONAL SHOPPING HEALTH FINANCE"`
	DueDate        *string        `json:"due_date,omitempty"`
	EstimatedHours *float64       `json:"estimated_hours,omitempty" validate:"omitempty,gte=0"`
	Details        map[string]any `json:"details,omitempty"`
}

// UpdateTaskRequest keeps the field payload dynamic on purpose: which keys
// are writable depends on the actor's permission tier, so the guard decides
// per field instead of the decoder.
type UpdateTaskRequest struct {
	Fields  map[string]any `json:"fields" validate:"required,min=1"`
	Details map[string]any `json:"details,omitempty"`
}

type CreateSubTaskRequest struct {
	Title      string  `json:"title" validate:"required,min=1,max=500"`
	AssigneeID *string `json:"assignee_id,omitempty" validate:"omitempty,max=255"`
}

type UpdateSubTaskRequest struct {
	Title      *string        `json:"title,omitempty" validate:"omitempty,min=1,max=500"`
	Status     *string        `json:"status,omitempty" validate:"omitempty,oneof=TODO IN_PROGRESS COMPLETED BLOCKED"`
	AssigneeID OptionalString `json:"assignee_id,omitempty"`
}

type CreateBugReportRequest struct {
	Title       string  `json:"title" validate:"required,min=1,max=500"`
	Description string  `json:"description" validate:"max=10000"`
	Severity    string  `json:"severity" validate:"omitempty,oneof=LOW MEDIUM HIGH CRITICAL"`
	Environment string  `json:"environment" validate:"max=1000"`
	Steps       string  `json:"steps" validate:"max=10000"`
	AssigneeID  *string `json:"assignee_id,omitempty" validate:"omitempty,max=255"`
}

type UpdateBugReportRequest struct {
	Status     *string        `json:"status,omitempty" validate:"omitempty,oneof=TODO IN_PROGRESS COMPLETED BLOCKED"`
	Severity   *string        `json:"severity,omitempty" validate:"omitempty,oneof=LOW MEDIUM HIGH CRITICAL"`
	AssigneeID OptionalString `json:"assignee_id,omitempty"`
}

type UploadAttachmentRequest struct {
	FileName string `json:"file_name" validate:"required,min=1,max=500"`
	URL      string `json:"url" validate:"required,min=1,max=2000"`
}
