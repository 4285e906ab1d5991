package response

import "task-manager-service/internal/dto"

type RegisterResponse struct {
	User dto.UserDTO `json:"user"`
}

type LoginResponse struct {
	Token  string `json:"token"`
	UserID string `json:"user_id"`
}

type TeamResponse struct {
	Team dto.TeamDTO `json:"team"`
}

type MemberResponse struct {
	Member dto.TeamMemberDTO `json:"member"`
}

type TaskResponse struct {
	Task dto.TaskDTO `json:"task"`
}

type TaskListResponse struct {
	Tasks []dto.TaskDTO `json:"tasks"`
	Count int           `json:"count"`
}

// TaskUpdateResponse reports the task after the update plus the fate of
// every requested field, so a caller sees all rejections at once.
type TaskUpdateResponse struct {
	Task     dto.TaskDTO `json:"task"`
	Accepted []string    `json:"accepted"`
	Rejected []string    `json:"rejected"`
}

type SubTaskResponse struct {
	SubTask dto.SubTaskDTO `json:"subtask"`
}

type SubTaskListResponse struct {
	SubTasks []dto.SubTaskDTO `json:"subtasks"`
	Count    int              `json:"count"`
}

type BugReportResponse struct {
	BugReport dto.BugReportDTO `json:"bug_report"`
}

type BugReportListResponse struct {
	BugReports []dto.BugReportDTO `json:"bug_reports"`
	Count      int                `json:"count"`
}

type AttachmentResponse struct {
	Attachment dto.AttachmentDTO `json:"attachment"`
}

type AttachmentListResponse struct {
	Attachments []dto.AttachmentDTO `json:"attachments"`
	Count       int                 `json:"count"`
}

type StatisticsResponse struct {
	Statistics dto.StatisticsDTO `json:"statistics"`
}

type HistoryResponse struct {
	Entries []dto.HistoryEntryDTO `json:"entries"`
	Count   int                   `json:"count"`
}
