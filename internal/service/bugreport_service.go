package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"task-manager-service/internal/access"
	"task-manager-service/internal/domain"
	"task-manager-service/internal/guard"
	"task-manager-service/internal/my_errors"
)

type BugReportService struct {
	bugRepo  BugReportRepository
	taskRepo TaskReader
	teamRepo TeamRepository
}

func NewBugReportService(bugRepo BugReportRepository, taskRepo TaskReader, teamRepo TeamRepository) *BugReportService {
	return &BugReportService{
		bugRepo:  bugRepo,
		taskRepo: taskRepo,
		teamRepo: teamRepo,
	}
}

func (s *BugReportService) CreateBugReport(ctx context.Context, bug *domain.BugReport, actorID string) (*domain.BugReport, error) {
	if bug.Title == "" {
		return nil, fmt.Errorf("title: %w", my_errors.ErrEmptyField)
	}
	if bug.Severity == "" {
		bug.Severity = domain.SeverityMedium
	}
	if !bug.Severity.Valid() {
		return nil, fmt.Errorf("severity: %w", my_errors.ErrInvalidInput)
	}

	parent, idx, err := s.parentAndIndex(ctx, bug.TaskID)
	if err != nil {
		return nil, err
	}

	// reporting a bug needs the broad sub-resource rule, which subsumes
	// plain task visibility
	if !access.SubResourceAccess(idx, parent, nil, actorID) {
		return nil, fmt.Errorf("%w", my_errors.ErrNotFound)
	}

	bug.BugID = uuid.NewString()
	bug.TaskID = parent.TaskID
	bug.ReporterID = actorID
	bug.Status = domain.StatusTodo

	if err := s.bugRepo.CreateBugReport(ctx, bug); err != nil {
		return nil, fmt.Errorf("failed to create bug report: %w", err)
	}
	return bug, nil
}

func (s *BugReportService) ListBugReports(ctx context.Context, taskID, actorID string) ([]domain.BugReport, error) {
	parent, idx, err := s.parentAndIndex(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if !access.SubResourceAccess(idx, parent, nil, actorID) {
		return nil, fmt.Errorf("%w", my_errors.ErrNotFound)
	}

	bugs, err := s.bugRepo.ListByTask(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bug reports: %w", err)
	}
	return bugs, nil
}

// UpdateBugReport follows the broadened sub-resource rule: the reporter,
// the bug's assignee, the parent's creator or assignee, or a team member
// may mutate. ResolvedAt tracks the status the way CompletedAt does on
// tasks.
func (s *BugReportService) UpdateBugReport(ctx context.Context, bugID string, status *domain.TaskStatus, severity *domain.BugSeverity, assigneeID *string, assigneeSet bool, actorID string) (*domain.BugReport, error) {
	bug, err := s.bugRepo.GetBugReportByID(ctx, bugID)
	if err != nil {
		return nil, fmt.Errorf("%w", my_errors.ErrNotFound)
	}

	parent, idx, err := s.parentAndIndex(ctx, bug.TaskID)
	if err != nil {
		return nil, err
	}

	owners := []string{bug.ReporterID}
	if bug.AssigneeID != nil && *bug.AssigneeID != "" {
		owners = append(owners, *bug.AssigneeID)
	}
	if !access.SubResourceAccess(idx, parent, owners, actorID) {
		return nil, fmt.Errorf("%w", my_errors.ErrNotFound)
	}

	var verrs guard.ValidationErrors
	if status != nil {
		if !status.Valid() {
			verrs = append(verrs, guard.FieldError{Field: "status", Message: "must be one of TODO, IN_PROGRESS, COMPLETED, BLOCKED"})
		} else {
			now := time.Now()
			bug.ResolvedAt = guard.CompletionChange(bug.Status, *status, bug.ResolvedAt, now)
			bug.Status = *status
		}
	}
	if severity != nil {
		if !severity.Valid() {
			verrs = append(verrs, guard.FieldError{Field: "severity", Message: "must be one of LOW, MEDIUM, HIGH, CRITICAL"})
		} else {
			bug.Severity = *severity
		}
	}
	if assigneeSet {
		bug.AssigneeID = assigneeID
	}
	if len(verrs) > 0 {
		return nil, verrs
	}

	if err := s.bugRepo.UpdateBugReport(ctx, bug); err != nil {
		return nil, fmt.Errorf("failed to update bug report: %w", err)
	}
	return bug, nil
}

func (s *BugReportService) parentAndIndex(ctx context.Context, taskID string) (*domain.Task, *access.MembershipIndex, error) {
	parent, err := s.taskRepo.GetTaskByID(ctx, taskID)
	if err != nil {
		return nil, nil, fmt.Errorf("%w", my_errors.ErrNotFound)
	}
	idx, err := indexForTask(ctx, s.teamRepo, parent)
	if err != nil {
		return nil, nil, err
	}
	return parent, idx, nil
}
