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

type SubTaskService struct {
	subTaskRepo SubTaskRepository
	taskRepo    TaskReader
	teamRepo    TeamRepository
}

func NewSubTaskService(subTaskRepo SubTaskRepository, taskRepo TaskReader, teamRepo TeamRepository) *SubTaskService {
	return &SubTaskService{
		subTaskRepo: subTaskRepo,
		taskRepo:    taskRepo,
		teamRepo:    teamRepo,
	}
}

func (s *SubTaskService) CreateSubTask(ctx context.Context, taskID, title string, assigneeID *string, actorID string) (*domain.SubTask, error) {
	if title == "" {
		return nil, fmt.Errorf("title: %w", my_errors.ErrEmptyField)
	}

	parent, idx, err := s.parentAndIndex(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if !access.SubResourceAccess(idx, parent, nil, actorID) {
		return nil, fmt.Errorf("%w", my_errors.ErrNotFound)
	}

	st := &domain.SubTask{
		SubTaskID:  uuid.NewString(),
		TaskID:     parent.TaskID,
		Title:      title,
		AssigneeID: assigneeID,
		Status:     domain.StatusTodo,
	}

	if err := s.subTaskRepo.CreateSubTask(ctx, st); err != nil {
		return nil, fmt.Errorf("failed to create subtask: %w", err)
	}
	return st, nil
}

func (s *SubTaskService) ListSubTasks(ctx context.Context, taskID, actorID string) ([]domain.SubTask, error) {
	parent, idx, err := s.parentAndIndex(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if !access.SubResourceAccess(idx, parent, nil, actorID) {
		return nil, fmt.Errorf("%w", my_errors.ErrNotFound)
	}

	subtasks, err := s.subTaskRepo.ListByTask(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to list subtasks: %w", err)
	}
	return subtasks, nil
}

// UpdateSubTask lets the subtask's assignee, the parent's creator or
// assignee, or a team member change the subtask. The completion timestamp
// follows the status exactly as it does on tasks.
func (s *SubTaskService) UpdateSubTask(ctx context.Context, subTaskID string, title *string, status *domain.TaskStatus, assigneeID *string, assigneeSet bool, actorID string) (*domain.SubTask, error) {
	st, err := s.subTaskRepo.GetSubTaskByID(ctx, subTaskID)
	if err != nil {
		return nil, fmt.Errorf("%w", my_errors.ErrNotFound)
	}

	parent, idx, err := s.parentAndIndex(ctx, st.TaskID)
	if err != nil {
		return nil, err
	}

	if !access.SubResourceAccess(idx, parent, subOwners(st.AssigneeID), actorID) {
		return nil, fmt.Errorf("%w", my_errors.ErrNotFound)
	}

	var verrs guard.ValidationErrors
	if title != nil {
		if *title == "" {
			verrs = append(verrs, guard.FieldError{Field: "title", Message: "must be a non-empty string"})
		} else {
			st.Title = *title
		}
	}
	if status != nil {
		if !status.Valid() {
			verrs = append(verrs, guard.FieldError{Field: "status", Message: "must be one of TODO, IN_PROGRESS, COMPLETED, BLOCKED"})
		} else {
			now := time.Now()
			st.CompletedAt = guard.CompletionChange(st.Status, *status, st.CompletedAt, now)
			st.Status = *status
		}
	}
	if assigneeSet {
		st.AssigneeID = assigneeID
	}
	if len(verrs) > 0 {
		return nil, verrs
	}

	if err := s.subTaskRepo.UpdateSubTask(ctx, st); err != nil {
		return nil, fmt.Errorf("failed to update subtask: %w", err)
	}
	return st, nil
}

func (s *SubTaskService) DeleteSubTask(ctx context.Context, subTaskID, actorID string) error {
	st, err := s.subTaskRepo.GetSubTaskByID(ctx, subTaskID)
	if err != nil {
		return fmt.Errorf("%w", my_errors.ErrNotFound)
	}

	parent, idx, err := s.parentAndIndex(ctx, st.TaskID)
	if err != nil {
		return err
	}

	if !access.SubResourceAccess(idx, parent, subOwners(st.AssigneeID), actorID) {
		return fmt.Errorf("%w", my_errors.ErrNotFound)
	}

	if err := s.subTaskRepo.DeleteSubTask(ctx, subTaskID); err != nil {
		return fmt.Errorf("failed to delete subtask: %w", err)
	}
	return nil
}

func (s *SubTaskService) parentAndIndex(ctx context.Context, taskID string) (*domain.Task, *access.MembershipIndex, error) {
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

func subOwners(ids ...*string) []string {
	var owners []string
	for _, id := range ids {
		if id != nil && *id != "" {
			owners = append(owners, *id)
		}
	}
	return owners
}
