package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"task-manager-service/internal/domain"
	"task-manager-service/internal/dto"
	"task-manager-service/internal/mapper"
	"task-manager-service/internal/middleware"
	"task-manager-service/internal/request"
	"task-manager-service/internal/response"
	"task-manager-service/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type TaskService interface {
	CreateTask(ctx context.Context, task *domain.Task, details map[string]any, actorID string) (*domain.Task, error)
	GetTask(ctx context.Context, taskID, actorID string) (*service.TaskWithPermissions, error)
	ListTasks(ctx context.Context, actorID string) ([]domain.Task, error)
	UpdateTask(ctx context.Context, taskID, actorID string, fields map[string]any, details map[string]any) (*service.TaskUpdateOutcome, error)
	DeleteTask(ctx context.Context, taskID, actorID string) error
	GetHistory(ctx context.Context, taskID, actorID string) ([]domain.HistoryEntry, error)
}

type TaskHandler struct {
	service   TaskService
	validator *validator.Validate
}

func NewTaskHandler(service TaskService, validator *validator.Validate) *TaskHandler {
	return &TaskHandler{
		service:   service,
		validator: validator,
	}
}

// CreateTask godoc
// @Summary Create a task
// @Description Create a task; team-scoped tasks require the assignee, if any, to be a member of the team
// @Tags Tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request.CreateTaskRequest true "Task creation request"
// @Success 201 {object} response.TaskResponse "Task created"
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 404 {object} dto.ErrorResponse "Team not found"
// @Router /tasks [post]
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req request.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, "invalid request body")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, "validation error: "+err.Error())
		return
	}

	task := &domain.Task{
		Title:          req.Title,
		Description:    req.Description,
		AssigneeID:     req.AssigneeID,
		TeamID:         req.TeamID,
		Status:         domain.TaskStatus(req.Status),
		Priority:       domain.TaskPriority(req.Priority),
		Category:       domain.TaskCategory(req.Category),
		EstimatedHours: req.EstimatedHours,
	}

	if req.DueDate != nil {
		due, err := parseDate(*req.DueDate)
		if err != nil {
			respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, "due_date must be an RFC 3339 timestamp or a YYYY-MM-DD date")
			return
		}
		task.DueDate = &due
	}

	created, err := h.service.CreateTask(r.Context(), task, req.Details, middleware.ActorID(r.Context()))
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, response.TaskResponse{
		Task: mapper.MapDomainTaskToDTO(created),
	})
}

// GetTask godoc
// @Summary Get a task
// @Description Returns the task with the caller's derived permissions and any category details
// @Tags Tasks
// @Produce json
// @Security BearerAuth
// @Param taskID path string true "Task id"
// @Success 200 {object} response.TaskResponse "Task"
// @Failure 404 {object} dto.ErrorResponse "Task not found"
// @Router /tasks/{taskID} [get]
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	taskID := chi.URLParam(r, "taskID")

	result, err := h.service.GetTask(r.Context(), taskID, middleware.ActorID(r.Context()))
	if err != nil {
		respondServiceError(w, err)
		return
	}

	taskDTO := mapper.MapDomainTaskToDTO(result.Task)
	taskDTO.Permissions = mapper.MapPermissionsToDTO(result.Permissions)
	if result.Details != nil {
		taskDTO.Details = result.Details
	}

	respondJSON(w, http.StatusOK, response.TaskResponse{Task: taskDTO})
}

// ListTasks godoc
// @Summary List visible tasks
// @Description Returns every task the caller created, is assigned to, or owns through a team
// @Tags Tasks
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.TaskListResponse "Tasks"
// @Router /tasks [get]
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.service.ListTasks(r.Context(), middleware.ActorID(r.Context()))
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, response.TaskListResponse{
		Tasks: mapper.MapDomainTasksToDTO(tasks),
		Count: len(tasks),
	})
}

// UpdateTask godoc
// @Summary Update a task
// @Description Applies the writable subset of the requested fields and reports the rest as rejected
// @Tags Tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param taskID path string true "Task id"
// @Param request body request.UpdateTaskRequest true "Fields to update"
// @Success 200 {object} response.TaskUpdateResponse "Update outcome"
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 403 {object} dto.ErrorResponse "No writable fields"
// @Failure 404 {object} dto.ErrorResponse "Task not found"
// @Router /tasks/{taskID} [patch]
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	taskID := chi.URLParam(r, "taskID")

	var req request.UpdateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, "invalid request body")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, "validation error: "+err.Error())
		return
	}

	outcome, err := h.service.UpdateTask(r.Context(), taskID, middleware.ActorID(r.Context()), req.Fields, req.Details)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, response.TaskUpdateResponse{
		Task:     mapper.MapDomainTaskToDTO(outcome.Task),
		Accepted: outcome.Accepted,
		Rejected: outcome.Rejected,
	})
}

// DeleteTask godoc
// @Summary Delete a task
// @Description Deletes the task together with its subtasks, bug reports, attachments and history
// @Tags Tasks
// @Produce json
// @Security BearerAuth
// @Param taskID path string true "Task id"
// @Success 204 "Deleted"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Task not found"
// @Router /tasks/{taskID} [delete]
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	taskID := chi.URLParam(r, "taskID")

	if err := h.service.DeleteTask(r.Context(), taskID, middleware.ActorID(r.Context())); err != nil {
		respondServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetHistory godoc
// @Summary Get a task's change history
// @Tags Tasks
// @Produce json
// @Security BearerAuth
// @Param taskID path string true "Task id"
// @Success 200 {object} response.HistoryResponse "History entries"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Task not found"
// @Router /tasks/{taskID}/history [get]
func (h *TaskHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	taskID := chi.URLParam(r, "taskID")

	entries, err := h.service.GetHistory(r.Context(), taskID, middleware.ActorID(r.Context()))
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, response.HistoryResponse{
		Entries: mapper.MapDomainHistoryToDTO(entries),
		Count:   len(entries),
	})
}

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t, err = time.Parse("2006-01-02", s)
	}
	return t, err
}
