package handler

import (
	"context"
	"net/http"

	"task-manager-service/internal/domain"
	"task-manager-service/internal/mapper"
	"task-manager-service/internal/middleware"
	"task-manager-service/internal/response"
)

type StatisticsService interface {
	GetStatistics(ctx context.Context, actorID string) (*domain.Statistics, error)
}

type StatisticsHandler struct {
	service StatisticsService
}

func NewStatisticsHandler(service StatisticsService) *StatisticsHandler {
	return &StatisticsHandler{service: service}
}

// GetStatistics godoc
// @Summary Task statistics for the caller
// @Description Counts are computed over exactly the tasks the caller can list
// @Tags Statistics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.StatisticsResponse "Statistics"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /statistics [get]
func (h *StatisticsHandler) GetStatistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.GetStatistics(r.Context(), middleware.ActorID(r.Context()))
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, response.StatisticsResponse{
		Statistics: mapper.MapDomainStatisticsToDTO(stats),
	})
}
