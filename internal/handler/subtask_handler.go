package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"task-manager-service/internal/domain"
	"task-manager-service/internal/dto"
	"task-manager-service/internal/mapper"
	"task-manager-service/internal/middleware"
	"task-manager-service/internal/request"
	"task-manager-service/internal/response"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type SubTaskService interface {
	CreateSubTask(ctx context.Context, taskID, title string, assigneeID *string, actorID string) (*domain.SubTask, error)
	ListSubTasks(ctx context.Context, taskID, actorID string) ([]domain.SubTask, error)
	UpdateSubTask(ctx context.Context, subTaskID string, title *string, status *domain.TaskStatus, assigneeID *string, assigneeSet bool, actorID string) (*domain.SubTask, error)
	DeleteSubTask(ctx context.Context, subTaskID, actorID string) error
}

type SubTaskHandler struct {
	service   SubTaskService
	validator *validator.Validate
}

func NewSubTaskHandler(service SubTaskService, validator *validator.Validate) *SubTaskHandler {
	return &SubTaskHandler{
		service:   service,
		validator: validator,
	}
}

// CreateSubTask godoc
// @Summary Create a subtask
// @Description Any member of the parent task's circle may add a subtask
// @Tags SubTasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param taskID path string true "Parent task id"
// @Param request body request.CreateSubTaskRequest true "Subtask creation request"
// @Success 201 {object} response.SubTaskResponse "Subtask created"
// @Failure 404 {object} dto.ErrorResponse "Task not found"
// @Router /tasks/{taskID}/subtasks [post]
func (h *SubTaskHandler) CreateSubTask(w http.ResponseWriter, r *http.Request) {
	taskID := chi.URLParam(r, "taskID")

	var req request.CreateSubTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, "invalid request body")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, "validation error: "+err.Error())
		return
	}

	subtask, err := h.service.CreateSubTask(r.Context(), taskID, req.Title, req.AssigneeID, middleware.ActorID(r.Context()))
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, response.SubTaskResponse{
		SubTask: mapper.MapDomainSubTaskToDTO(subtask),
	})
}

// ListSubTasks godoc
// @Summary List subtasks of a task
// @Tags SubTasks
// @Produce json
// @Security BearerAuth
// @Param taskID path string true "Parent task id"
// @Success 200 {object} response.SubTaskListResponse "Subtasks"
// @Failure 404 {object} dto.ErrorResponse "Task not found"
// @Router /tasks/{taskID}/subtasks [get]
func (h *SubTaskHandler) ListSubTasks(w http.ResponseWriter, r *http.Request) {
	taskID := chi.URLParam(r, "taskID")

	subtasks, err := h.service.ListSubTasks(r.Context(), taskID, middleware.ActorID(r.Context()))
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, response.SubTaskListResponse{
		SubTasks: mapper.MapDomainSubTasksToDTO(subtasks),
		Count:    len(subtasks),
	})
}

// UpdateSubTask godoc
// @Summary Update a subtask
// @Description Sending "assignee_id": null unassigns; omitting the field leaves it unchanged
// @Tags SubTasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param subTaskID path string true "Subtask id"
// @Param request body request.UpdateSubTaskRequest true "Fields to update"
// @Success 200 {object} response.SubTaskResponse "Subtask updated"
// @Failure 404 {object} dto.ErrorResponse "Subtask not found"
// @Router /subtasks/{subTaskID} [patch]
func (h *SubTaskHandler) UpdateSubTask(w http.ResponseWriter, r *http.Request) {
	subTaskID := chi.URLParam(r, "subTaskID")

	var req request.UpdateSubTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, "invalid request body")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, "validation error: "+err.Error())
		return
	}

	var status *domain.TaskStatus
	if req.Status != nil {
		s := domain.TaskStatus(*req.Status)
		status = &s
	}

	subtask, err := h.service.UpdateSubTask(r.Context(), subTaskID, req.Title, status, req.AssigneeID.Value, req.AssigneeID.Set, middleware.ActorID(r.Context()))
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, response.SubTaskResponse{
		SubTask: mapper.MapDomainSubTaskToDTO(subtask),
	})
}

// DeleteSubTask godoc
// @Summary Delete a subtask
// @Tags SubTasks
// @Produce json
// @Security BearerAuth
// @Param subTaskID path string true "Subtask id"
// @Success 204 "Deleted"
// @Failure 404 {object} dto.ErrorResponse "Subtask not found"
// @Router /subtasks/{subTaskID} [delete]
func (h *SubTaskHandler) DeleteSubTask(w http.ResponseWriter, r *http.Request) {
	subTaskID := chi.URLParam(r, "subTaskID")

	if err := h.service.DeleteSubTask(r.Context(), subTaskID, middleware.ActorID(r.Context())); err != nil {
		respondServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
