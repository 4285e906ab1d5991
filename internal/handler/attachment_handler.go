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

type AttachmentService interface {
	UploadAttachment(ctx context.Context, taskID, fileName, url, actorID string) (*domain.Attachment, error)
	ListAttachments(ctx context.Context, taskID, actorID string) ([]domain.Attachment, error)
	DeleteAttachment(ctx context.Context, attachmentID, actorID string) error
}

type AttachmentHandler struct {
	service   AttachmentService
	validator *validator.Validate
}

func NewAttachmentHandler(service AttachmentService, validator *validator.Validate) *AttachmentHandler {
	return &AttachmentHandler{
		service:   service,
		validator: validator,
	}
}

// UploadAttachment godoc
// @Summary Attach a file reference to a task
// @Tags Attachments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param taskID path string true "Parent task id"
// @Param request body request.UploadAttachmentRequest true "Attachment metadata"
// @Success 201 {object} response.AttachmentResponse "Attachment created"
// @Failure 404 {object} dto.ErrorResponse "Task not found"
// @Router /tasks/{taskID}/attachments [post]
func (h *AttachmentHandler) UploadAttachment(w http.ResponseWriter, r *http.Request) {
	taskID := chi.URLParam(r, "taskID")

	var req request.UploadAttachmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, "invalid request body")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, "validation error: "+err.Error())
		return
	}

	attachment, err := h.service.UploadAttachment(r.Context(), taskID, req.FileName, req.URL, middleware.ActorID(r.Context()))
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, response.AttachmentResponse{
		Attachment: mapper.MapDomainAttachmentToDTO(attachment),
	})
}

// ListAttachments godoc
// @Summary List attachments of a task
// @Tags Attachments
// @Produce json
// @Security BearerAuth
// @Param taskID path string true "Parent task id"
// @Success 200 {object} response.AttachmentListResponse "Attachments"
// @Failure 404 {object} dto.ErrorResponse "Task not found"
// @Router /tasks/{taskID}/attachments [get]
func (h *AttachmentHandler) ListAttachments(w http.ResponseWriter, r *http.Request) {
	taskID := chi.URLParam(r, "taskID")

	attachments, err := h.service.ListAttachments(r.Context(), taskID, middleware.ActorID(r.Context()))
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, response.AttachmentListResponse{
		Attachments: mapper.MapDomainAttachmentsToDTO(attachments),
		Count:       len(attachments),
	})
}

// DeleteAttachment godoc
// @Summary Delete an attachment
// @Description Only the uploader may delete
// @Tags Attachments
// @Produce json
// @Security BearerAuth
// @Param attachmentID path string true "Attachment id"
// @Success 204 "Deleted"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Attachment not found"
// @Router /attachments/{attachmentID} [delete]
func (h *AttachmentHandler) DeleteAttachment(w http.ResponseWriter, r *http.Request) {
	attachmentID := chi.URLParam(r, "attachmentID")

	if err := h.service.DeleteAttachment(r.Context(), attachmentID, middleware.ActorID(r.Context())); err != nil {
		respondServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
