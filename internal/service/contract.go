package service

import (
	"context"
	"time"

	"task-manager-service/internal/access"
	"task-manager-service/internal/domain"
)

type AuthRepository interface {
	SaveToken(ctx context.Context, userID, token string, expiresAt time.Time) error
	GetTokenByUserID(ctx context.Context, userID string) (*domain.AuthToken, error)
	ValidateToken(ctx context.Context, token string) (string, error)
}

type UserRepository interface {
	CreateUser(ctx context.Context, user *domain.User) error
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	UserExists(ctx context.Context, username string) (bool, error)
}

type TeamRepository interface {
	CreateTeam(ctx context.Context, team *domain.Team) error
	GetTeamByID(ctx context.Context, teamID string) (*domain.Team, error)
	GetMembership(ctx context.Context, teamID, userID string) (*domain.TeamMembership, error)
	IsMember(ctx context.Context, teamID, userID string) (bool, error)
	AddMembership(ctx context.Context, m *domain.TeamMembership) error
	RemoveMembership(ctx context.Context, teamID, userID string) error
	UpdateMembershipRole(ctx context.Context, teamID, userID string, role domain.TeamRole) error
	GetOwnedTeamIDs(ctx context.Context, userID string) ([]string, error)
}

type TaskRepository interface {
	CreateTask(ctx context.Context, task *domain.Task, entry *domain.HistoryEntry) error
	GetTaskByID(ctx context.Context, taskID string) (*domain.Task, error)
	ListTasks(ctx context.Context, filter access.TaskFilter) ([]domain.Task, error)
	UpdateWithHistory(ctx context.Context, taskID string, mutate func(task *domain.Task) ([]domain.HistoryEntry, error)) (*domain.Task, error)
	DeleteTask(ctx context.Context, taskID string) error
	UpsertCategoryDetails(ctx context.Context, taskID string, details domain.CategoryDetails) error
	GetCategoryDetails(ctx context.Context, taskID string, category domain.TaskCategory) (domain.CategoryDetails, error)
}

// TaskReader is the slice of TaskRepository the sub-resource services need.
type TaskReader interface {
	GetTaskByID(ctx context.Context, taskID string) (*domain.Task, error)
}

type SubTaskRepository interface {
	CreateSubTask(ctx context.Context, st *domain.SubTask) error
	GetSubTaskByID(ctx context.Context, subTaskID string) (*domain.SubTask, error)
	ListByTask(ctx context.Context, taskID string) ([]domain.SubTask, error)
	UpdateSubTask(ctx context.Context, st *domain.SubTask) error
	DeleteSubTask(ctx context.Context, subTaskID string) error
}

type BugReportRepository interface {
	CreateBugReport(ctx context.Context, bug *domain.BugReport) error
	GetBugReportByID(ctx context.Context, bugID string) (*domain.BugReport, error)
	ListByTask(ctx context.Context, taskID string) ([]domain.BugReport, error)
	UpdateBugReport(ctx context.Context, bug *domain.BugReport) error
}

type AttachmentRepository interface {
	CreateAttachment(ctx context.Context, a *domain.Attachment) error
	GetAttachmentByID(ctx context.Context, attachmentID string) (*domain.Attachment, error)
	ListByTask(ctx context.Context, taskID string) ([]domain.Attachment, error)
	DeleteAttachment(ctx context.Context, attachmentID string) error
}

type HistoryRepository interface {
	ListByTask(ctx context.Context, taskID string) ([]domain.HistoryEntry, error)
}

type StatisticsRepository interface {
	GetStatistics(ctx context.Context, filter access.TaskFilter) (*domain.Statistics, error)
}

// BugCounter is the slice of the bug report repository the statistics need.
type BugCounter interface {
	CountOpenByTasks(ctx context.Context, filter access.TaskFilter) (int, error)
}

// TeamReader is the slice of TeamRepository the access-index loader needs.
type TeamReader interface {
	GetTeamByID(ctx context.Context, teamID string) (*domain.Team, error)
}
