package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"task-manager-service/internal/access"
	"task-manager-service/internal/domain"
	"task-manager-service/internal/guard"
	"task-manager-service/internal/history"
	"task-manager-service/internal/my_errors"
)

type TaskService struct {
	taskRepo    TaskRepository
	teamRepo    TeamRepository
	userRepo    UserRepository
	historyRepo HistoryRepository
}

func NewTaskService(taskRepo TaskRepository, teamRepo TeamRepository, userRepo UserRepository, historyRepo HistoryRepository) *TaskService {
	return &TaskService{
		taskRepo:    taskRepo,
		teamRepo:    teamRepo,
		userRepo:    userRepo,
		historyRepo: historyRepo,
	}
}

// TaskWithPermissions bundles a task with the permission set derived for
// the requesting actor, so handlers never re-derive anything.
type TaskWithPermissions struct {
	Task        *domain.Task
	Permissions access.PermissionSet
	Details     domain.CategoryDetails
}

// TaskUpdateOutcome reports what a guarded update did: the fresh task plus
// which requested fields were applied and which were refused.
type TaskUpdateOutcome struct {
	Task     *domain.Task
	Accepted []string
	Rejected []string
}

// CreateTask creates a task for the actor. Any authenticated actor may
// create; team-scoped tasks require the team to exist and the assignee, if
// any, to be one of its members.
func (s *TaskService) CreateTask(ctx context.Context, task *domain.Task, details map[string]any, actorID string) (*domain.Task, error) {
	if task.Title == "" {
		return nil, fmt.Errorf("title: %w", my_errors.ErrEmptyField)
	}
	if !task.Category.Valid() {
		return nil, fmt.Errorf("category: %w", my_errors.ErrInvalidInput)
	}
	if task.Status == "" {
		task.Status = domain.StatusTodo
	}
	if !task.Status.Valid() {
		return nil, fmt.Errorf("status: %w", my_errors.ErrInvalidInput)
	}
	if task.Priority == "" {
		task.Priority = domain.PriorityMedium
	}
	if !task.Priority.Valid() {
		return nil, fmt.Errorf("priority: %w", my_errors.ErrInvalidInput)
	}

	if task.TeamScoped() {
		if _, err := s.teamRepo.GetTeamByID(ctx, *task.TeamID); err != nil {
			return nil, fmt.Errorf("%w", my_errors.ErrTeamNotFound)
		}
		if err := s.checkAssigneeMembership(ctx, task.TeamID, task.AssigneeID); err != nil {
			return nil, err
		}
	}

	now := time.Now()
	task.TaskID = uuid.NewString()
	task.CreatorID = actorID
	task.CompletedAt = guard.CompletionChange(domain.StatusTodo, task.Status, nil, now)

	entry := history.CreationEntry(task.TaskID, actorID, now)
	if err := s.taskRepo.CreateTask(ctx, task, &entry); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	s.upsertSatellite(ctx, task, details)

	created, err := s.taskRepo.GetTaskByID(ctx, task.TaskID)
	if err != nil {
		return nil, fmt.Errorf("failed to get created task: %w", err)
	}
	return created, nil
}

// GetTask applies the narrow single-task visibility rule: an invisible task
// is indistinguishable from an absent one.
func (s *TaskService) GetTask(ctx context.Context, taskID, actorID string) (*TaskWithPermissions, error) {
	task, err := s.taskRepo.GetTaskByID(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("%w", my_errors.ErrNotFound)
	}

	idx, err := indexForTask(ctx, s.teamRepo, task)
	if err != nil {
		return nil, err
	}

	if !access.TaskVisible(idx, task, actorID) {
		return nil, fmt.Errorf("%w", my_errors.ErrNotFound)
	}

	details, err := s.taskRepo.GetCategoryDetails(ctx, task.TaskID, task.Category)
	if err != nil {
		slog.Warn("failed to load category details", "task_id", task.TaskID, "error", err)
		details = nil
	}

	return &TaskWithPermissions{
		Task:        task,
		Permissions: access.TaskPermissions(idx, task, actorID),
		Details:     details,
	}, nil
}

// ListTasks returns the actor's visible set through the one authoritative
// list filter.
func (s *TaskService) ListTasks(ctx context.Context, actorID string) ([]domain.Task, error) {
	ownedTeamIDs, err := s.teamRepo.GetOwnedTeamIDs(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("failed to get owned teams: %w", err)
	}

	filter := access.ListFilterFor(actorID, ownedTeamIDs)
	tasks, err := s.taskRepo.ListTasks(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// UpdateTask runs the full guarded mutation: inside one transaction the
// task is re-fetched, permissions are re-derived on the fresh record, the
// permitted fields are applied with their completion side effect, and one
// history entry per change is appended. The satellite upsert runs after
// commit and its failure is logged, never surfaced.
func (s *TaskService) UpdateTask(ctx context.Context, taskID, actorID string, fields map[string]any, details map[string]any) (*TaskUpdateOutcome, error) {
	// membership facts and the target-assignee check are read before the
	// transaction; the task record itself is re-read under lock
	current, err := s.taskRepo.GetTaskByID(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("%w", my_errors.ErrNotFound)
	}

	idx, err := indexForTask(ctx, s.teamRepo, current)
	if err != nil {
		return nil, err
	}

	assigneeOK, err := s.assigneeValid(ctx, current, fields)
	if err != nil {
		return nil, err
	}

	outcome := &TaskUpdateOutcome{}
	now := time.Now()

	task, err := s.taskRepo.UpdateWithHistory(ctx, taskID, func(task *domain.Task) ([]domain.HistoryEntry, error) {
		if !access.TaskVisible(idx, task, actorID) {
			return nil, fmt.Errorf("%w", my_errors.ErrNotFound)
		}

		perms := access.TaskPermissions(idx, task, actorID)
		result := guard.FilterEditableFields(perms, actorID, fields)

		if !assigneeOK {
			if _, requested := result.Accepted["assignee_id"]; requested {
				result.Errors = append(result.Errors, guard.FieldError{
					Field:   "assignee_id",
					Message: my_errors.ErrAssigneeNotMember.Error(),
				})
			}
		}

		if len(result.Errors) > 0 {
			return nil, result.Errors
		}

		changes := guard.ApplyToTask(task, result.Accepted, now)
		for name := range result.Accepted {
			outcome.Accepted = append(outcome.Accepted, name)
		}
		outcome.Rejected = result.Rejected

		return history.EntriesForChanges(task.TaskID, actorID, changes, now), nil
	})
	if err != nil {
		return nil, err
	}

	s.upsertSatellite(ctx, task, details)

	outcome.Task = task
	return outcome, nil
}

// DeleteTask removes a task and everything under it. Invisible tasks 404;
// visible tasks without delete permission 403.
func (s *TaskService) DeleteTask(ctx context.Context, taskID, actorID string) error {
	task, err := s.taskRepo.GetTaskByID(ctx, taskID)
	if err != nil {
		return fmt.Errorf("%w", my_errors.ErrNotFound)
	}

	idx, err := indexForTask(ctx, s.teamRepo, task)
	if err != nil {
		return err
	}

	if !access.TaskVisible(idx, task, actorID) {
		return fmt.Errorf("%w", my_errors.ErrNotFound)
	}
	if !access.TaskPermissions(idx, task, actorID).CanDelete {
		return fmt.Errorf("delete: %w", my_errors.ErrForbidden)
	}

	if err := s.taskRepo.DeleteTask(ctx, taskID); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

// GetHistory serves the audit trail to actors holding the history
// permission; other visible actors get 403, invisible ones 404.
func (s *TaskService) GetHistory(ctx context.Context, taskID, actorID string) ([]domain.HistoryEntry, error) {
	task, err := s.taskRepo.GetTaskByID(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("%w", my_errors.ErrNotFound)
	}

	idx, err := indexForTask(ctx, s.teamRepo, task)
	if err != nil {
		return nil, err
	}

	if !access.TaskVisible(idx, task, actorID) {
		return nil, fmt.Errorf("%w", my_errors.ErrNotFound)
	}
	if !access.TaskPermissions(idx, task, actorID).CanViewHistory {
		return nil, fmt.Errorf("view history: %w", my_errors.ErrForbidden)
	}

	entries, err := s.historyRepo.ListByTask(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	return entries, nil
}

// assigneeValid pre-checks the reassignment target against team membership.
// Self-assignment and unassignment never need the check.
func (s *TaskService) assigneeValid(ctx context.Context, task *domain.Task, fields map[string]any) (bool, error) {
	raw, requested := fields["assignee_id"]
	if !requested || raw == nil {
		return true, nil
	}
	target, ok := raw.(string)
	if !ok || target == "" {
		return true, nil
	}
	if !task.TeamScoped() {
		return true, nil
	}

	isMember, err := s.teamRepo.IsMember(ctx, *task.TeamID, target)
	if err != nil {
		return false, fmt.Errorf("failed to check assignee membership: %w", err)
	}
	if isMember {
		return true, nil
	}
	// the owner has an explicit membership row from team creation, but be
	// tolerant of legacy teams where it is missing
	team, err := s.teamRepo.GetTeamByID(ctx, *task.TeamID)
	if err != nil {
		return false, fmt.Errorf("failed to get team: %w", err)
	}
	return team.OwnerID == target, nil
}

func (s *TaskService) checkAssigneeMembership(ctx context.Context, teamID, assigneeID *string) error {
	if assigneeID == nil || *assigneeID == "" {
		return nil
	}
	isMember, err := s.teamRepo.IsMember(ctx, *teamID, *assigneeID)
	if err != nil {
		return fmt.Errorf("failed to check assignee membership: %w", err)
	}
	if !isMember {
		return fmt.Errorf("%w", my_errors.ErrAssigneeNotMember)
	}
	return nil
}

// upsertSatellite routes category fields to the task's satellite record.
// Always soft-fail: a broken satellite write must never undo or fail the
// primary mutation it trails.
func (s *TaskService) upsertSatellite(ctx context.Context, task *domain.Task, details map[string]any) {
	decoded := guard.DecodeCategoryDetails(task.Category, details)
	if decoded == nil {
		return
	}
	if err := s.taskRepo.UpsertCategoryDetails(ctx, task.TaskID, decoded); err != nil {
		slog.Warn("failed to upsert category details",
			"task_id", task.TaskID,
			"category", task.Category,
			"error", err,
		)
	}
}

// IsValidationError reports whether err is a batch of field validation
// failures, so the HTTP layer can render them per field.
func IsValidationError(err error) (guard.ValidationErrors, bool) {
	var ve guard.ValidationErrors
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
