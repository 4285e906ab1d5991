package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"task-manager-service/internal/dto"
	"task-manager-service/internal/guard"
	"task-manager-service/internal/my_errors"
)

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Warn("failed to encode JSON response", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondWithError(w, status, &dto.ErrorResponse{
		Error: dto.ErrorDetail{
			Code:    code,
			Message: message,
		},
	})
}

func respondWithError(w http.ResponseWriter, status int, errResp *dto.ErrorResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(errResp); err != nil {
		slog.Warn("failed to encode error response", "error", err)
	}
}

// respondServiceError maps the service error taxonomy onto HTTP. Absent and
// denied resources share one 404; denied actions on resources the caller
// already knows exist get a 403 carrying the action name; validation
// failures come back as a per-field batch.
func respondServiceError(w http.ResponseWriter, err error) {
	var verrs guard.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]dto.FieldError, len(verrs))
		for i, fe := range verrs {
			fields[i] = dto.FieldError{Field: fe.Field, Message: fe.Message}
		}
		respondWithError(w, http.StatusBadRequest, &dto.ErrorResponse{
			Error: dto.ErrorDetail{
				Code:    dto.ErrCodeValidation,
				Message: "validation failed",
				Fields:  fields,
			},
		})
		return
	}

	switch {
	case errors.Is(err, my_errors.ErrNotFound),
		errors.Is(err, my_errors.ErrTeamNotFound),
		errors.Is(err, my_errors.ErrUserNotFound):
		respondError(w, http.StatusNotFound, dto.ErrCodeNotFound, err.Error())
	case errors.Is(err, my_errors.ErrForbidden):
		respondError(w, http.StatusForbidden, dto.ErrCodeForbidden, err.Error())
	case errors.Is(err, my_errors.ErrInvalidOperation):
		respondError(w, http.StatusConflict, dto.ErrCodeInvalidOperation, err.Error())
	case errors.Is(err, my_errors.ErrAlreadyMember),
		errors.Is(err, my_errors.ErrNotMember),
		errors.Is(err, my_errors.ErrTeamAlreadyExists),
		errors.Is(err, my_errors.ErrUserAlreadyExists):
		respondError(w, http.StatusConflict, dto.ErrCodeConflict, err.Error())
	case errors.Is(err, my_errors.ErrEmptyField),
		errors.Is(err, my_errors.ErrInvalidInput),
		errors.Is(err, my_errors.ErrAssigneeNotMember):
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, err.Error())
	case errors.Is(err, my_errors.ErrBadCredentials),
		errors.Is(err, my_errors.ErrUserIsNotActive):
		respondError(w, http.StatusUnauthorized, dto.ErrCodeUnauthenticated, err.Error())
	default:
		respondError(w, http.StatusInternalServerError, dto.ErrCodeInternal, err.Error())
	}
}
