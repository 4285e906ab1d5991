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

type BugReportService interface {
	CreateBugReport(ctx context.Context, bug *domain.BugReport, actorID string) (*domain.BugReport, error)
	ListBugReports(ctx context.Context, taskID, actorID string) ([]domain.BugReport, error)
	UpdateBugReport(ctx context.Context, bugID string, status *domain.TaskStatus, severity *domain.BugSeverity, assigneeID *string, assigneeSet bool, actorID string) (*domain.BugReport, error)
}

type BugReportHandler struct {
	service   BugReportService
	validator *validator.Validate
}

func NewBugReportHandler(service BugReportService, validator *validator.Validate) *BugReportHandler {
	return &BugReportHandler{
		service:   service,
		validator: validator,
	}
}

// CreateBugReport godoc
// @Summary Report a bug against a task
// @Description Structured severity, environment and steps fields are preferred; markers embedded in the description are parsed as a fallback
// @Tags BugReports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param taskID path string true "Parent task id"
// @Param request body request.CreateBugReportRequest true "Bug report"
// @Success 201 {object} response.BugReportResponse "Bug report created"
// @Failure 404 {object} dto.ErrorResponse "Task not found"
// @Router /tasks/{taskID}/bugs [post]
func (h *BugReportHandler) CreateBugReport(w http.ResponseWriter, r *http.Request) {
	taskID := chi.URLParam(r, "taskID")

	var req request.CreateBugReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, "invalid request body")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, "validation error: "+err.Error())
		return
	}

	bug := &domain.BugReport{
		TaskID:      taskID,
		Title:       req.Title,
		Description: req.Description,
		Severity:    domain.BugSeverity(req.Severity),
		Environment: req.Environment,
		Steps:       req.Steps,
		AssigneeID:  req.AssigneeID,
	}
	mapper.ExtractLegacyBugFields(bug)

	created, err := h.service.CreateBugReport(r.Context(), bug, middleware.ActorID(r.Context()))
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, response.BugReportResponse{
		BugReport: mapper.MapDomainBugReportToDTO(created),
	})
}

// ListBugReports godoc
// @Summary List bug reports of a task
// @Tags BugReports
// @Produce json
// @Security BearerAuth
// @Param taskID path string true "Parent task id"
// @Success 200 {object} response.BugReportListResponse "Bug reports"
// @Failure 404 {object} dto.ErrorResponse "Task not found"
// @Router /tasks/{taskID}/bugs [get]
func (h *BugReportHandler) ListBugReports(w http.ResponseWriter, r *http.Request) {
	taskID := chi.URLParam(r, "taskID")

	bugs, err := h.service.ListBugReports(r.Context(), taskID, middleware.ActorID(r.Context()))
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, response.BugReportListResponse{
		BugReports: mapper.MapDomainBugReportsToDTO(bugs),
		Count:      len(bugs),
	})
}

// UpdateBugReport godoc
// @Summary Update a bug report
// @Description Only the reporter or the assignee may update; completing sets the resolution time
// @Tags BugReports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param bugID path string true "Bug report id"
// @Param request body request.UpdateBugReportRequest true "Fields to update"
// @Success 200 {object} response.BugReportResponse "Bug report updated"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Bug report not found"
// @Router /bugs/{bugID} [patch]
func (h *BugReportHandler) UpdateBugReport(w http.ResponseWriter, r *http.Request) {
	bugID := chi.URLParam(r, "bugID")

	var req request.UpdateBugReportRequest
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
	var severity *domain.BugSeverity
	if req.Severity != nil {
		sev := domain.BugSeverity(*req.Severity)
		severity = &sev
	}

	bug, err := h.service.UpdateBugReport(r.Context(), bugID, status, severity, req.AssigneeID.Value, req.AssigneeID.Set, middleware.ActorID(r.Context()))
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, response.BugReportResponse{
		BugReport: mapper.MapDomainBugReportToDTO(bug),
	})
}
