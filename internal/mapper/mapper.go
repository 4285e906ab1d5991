package mapper

import (
	"task-manager-service/internal/access"
	"task-manager-service/internal/domain"
	"task-manager-service/internal/dto"
)

// User mappers
func MapDomainUserToDTO(user *domain.User) dto.UserDTO {
	return dto.UserDTO{
		UserID:   user.UserID,
		Username: user.Username,
		Email:    user.Email,
		IsActive: user.IsActive,
	}
}

// Team mappers
func MapDomainTeamToDTO(team *domain.Team) dto.TeamDTO {
	members := make([]dto.TeamMemberDTO, len(team.Members))
	for i, m := range team.Members {
		members[i] = dto.TeamMemberDTO{
			UserID:   m.UserID,
			Username: m.Username,
			Role:     string(m.Role),
		}
	}
	return dto.TeamDTO{
		TeamID:   team.TeamID,
		TeamName: team.TeamName,
		OwnerID:  team.OwnerID,
		Members:  members,
	}
}

func MapMembershipToDTO(m *domain.TeamMembership) dto.TeamMemberDTO {
	return dto.TeamMemberDTO{
		UserID:   m.UserID,
		Username: m.Username,
		Role:     string(m.Role),
	}
}

// Task mappers
func MapDomainTaskToDTO(task *domain.Task) dto.TaskDTO {
	return dto.TaskDTO{
		TaskID:         task.TaskID,
		Title:          task.Title,
		Description:    task.Description,
		CreatorID:      task.CreatorID,
		AssigneeID:     task.AssigneeID,
		TeamID:         task.TeamID,
		Status:         string(task.Status),
		Priority:       string(task.Priority),
		Category:       string(task.Category),
		Progress:       task.Progress,
		EstimatedHours: task.EstimatedHours,
		ActualHours:    task.ActualHours,
		DueDate:        task.DueDate,
		CompletedAt:    task.CompletedAt,
		CreatedAt:      task.CreatedAt,
		UpdatedAt:      task.UpdatedAt,
	}
}

func MapDomainTasksToDTO(tasks []domain.Task) []dto.TaskDTO {
	result := make([]dto.TaskDTO, len(tasks))
	for i, t := range tasks {
		result[i] = MapDomainTaskToDTO(&t)
	}
	return result
}

func MapPermissionsToDTO(p access.PermissionSet) *dto.PermissionDTO {
	return &dto.PermissionDTO{
		CanEdit:            p.CanEdit,
		CanUpdateStatus:    p.CanUpdateStatus,
		CanComment:         p.CanComment,
		CanDelete:          p.CanDelete,
		CanAssign:          p.CanAssign,
		CanViewHistory:     p.CanViewHistory,
		CanViewSubmissions: p.CanViewSubmissions,
	}
}

// SubTask mappers
func MapDomainSubTaskToDTO(st *domain.SubTask) dto.SubTaskDTO {
	return dto.SubTaskDTO{
		SubTaskID:   st.SubTaskID,
		TaskID:      st.TaskID,
		Title:       st.Title,
		AssigneeID:  st.AssigneeID,
		Status:      string(st.Status),
		CompletedAt: st.CompletedAt,
		CreatedAt:   st.CreatedAt,
	}
}

func MapDomainSubTasksToDTO(subtasks []domain.SubTask) []dto.SubTaskDTO {
	result := make([]dto.SubTaskDTO, len(subtasks))
	for i, st := range subtasks {
		result[i] = MapDomainSubTaskToDTO(&st)
	}
	return result
}

// BugReport mappers
func MapDomainBugReportToDTO(bug *domain.BugReport) dto.BugReportDTO {
	return dto.BugReportDTO{
		BugID:       bug.BugID,
		TaskID:      bug.TaskID,
		Title:       bug.Title,
		Description: bug.Description,
		ReporterID:  bug.ReporterID,
		AssigneeID:  bug.AssigneeID,
		Status:      string(bug.Status),
		Severity:    string(bug.Severity),
		Environment: bug.Environment,
		Steps:       bug.Steps,
		ResolvedAt:  bug.ResolvedAt,
		CreatedAt:   bug.CreatedAt,
	}
}

func MapDomainBugReportsToDTO(bugs []domain.BugReport) []dto.BugReportDTO {
	result := make([]dto.BugReportDTO, len(bugs))
	for i, b := range bugs {
		result[i] = MapDomainBugReportToDTO(&b)
	}
	return result
}

// Attachment mappers
func MapDomainAttachmentToDTO(a *domain.Attachment) dto.AttachmentDTO {
	return dto.AttachmentDTO{
		AttachmentID: a.AttachmentID,
		TaskID:       a.TaskID,
		UploadedBy:   a.UploadedBy,
		FileName:     a.FileName,
		URL:          a.URL,
		CreatedAt:    a.CreatedAt,
	}
}

func MapDomainAttachmentsToDTO(attachments []domain.Attachment) []dto.AttachmentDTO {
	result := make([]dto.AttachmentDTO, len(attachments))
	for i, a := range attachments {
		result[i] = MapDomainAttachmentToDTO(&a)
	}
	return result
}

// History mappers
func MapDomainHistoryToDTO(entries []domain.HistoryEntry) []dto.HistoryEntryDTO {
	result := make([]dto.HistoryEntryDTO, len(entries))
	for i, e := range entries {
		result[i] = dto.HistoryEntryDTO{
			EntryID:   e.EntryID,
			TaskID:    e.TaskID,
			UserID:    e.UserID,
			Action:    e.Action,
			FieldName: e.FieldName,
			OldValue:  e.OldValue,
			NewValue:  e.NewValue,
			CreatedAt: e.CreatedAt,
		}
	}
	return result
}

// Statistics mappers
func MapDomainStatisticsToDTO(stats *domain.Statistics) dto.StatisticsDTO {
	return dto.StatisticsDTO{
		TotalTasks:      stats.TotalTasks,
		TodoTasks:       stats.TodoTasks,
		InProgressTasks: stats.InProgressTasks,
		CompletedTasks:  stats.CompletedTasks,
		BlockedTasks:    stats.BlockedTasks,
		OverdueTasks:    stats.OverdueTasks,
		OpenBugs:        stats.OpenBugs,
	}
}
