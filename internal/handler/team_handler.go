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

type TeamService interface {
	CreateTeam(ctx context.Context, teamName, actorID string) (*domain.Team, error)
	GetTeam(ctx context.Context, teamID, actorID string) (*domain.Team, error)
	AddMember(ctx context.Context, teamID, targetUserID string, role domain.TeamRole, actorID string) (*domain.TeamMembership, error)
	RemoveMember(ctx context.Context, teamID, targetUserID, actorID string) error
	UpdateRole(ctx context.Context, teamID, targetUserID string, newRole domain.TeamRole, actorID string) error
}

type TeamHandler struct {
	service   TeamService
	validator *validator.Validate
}

func NewTeamHandler(service TeamService, validator *validator.Validate) *TeamHandler {
	return &TeamHandler{
		service:   service,
		validator: validator,
	}
}

// CreateTeam godoc
// @Summary Create a team
// @Description Create a team owned by the authenticated user
// @Tags Teams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request.CreateTeamRequest true "Team creation request"
// @Success 201 {object} response.TeamResponse "Team created"
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /teams [post]
func (h *TeamHandler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	var req request.CreateTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, "invalid request body")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, "validation error: "+err.Error())
		return
	}

	team, err := h.service.CreateTeam(r.Context(), req.TeamName, middleware.ActorID(r.Context()))
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, response.TeamResponse{
		Team: mapper.MapDomainTeamToDTO(team),
	})
}

// GetTeam godoc
// @Summary Get a team with its members
// @Tags Teams
// @Produce json
// @Security BearerAuth
// @Param teamID path string true "Team id"
// @Success 200 {object} response.TeamResponse "Team"
// @Failure 404 {object} dto.ErrorResponse "Team not found"
// @Router /teams/{teamID} [get]
func (h *TeamHandler) GetTeam(w http.ResponseWriter, r *http.Request) {
	teamID := chi.URLParam(r, "teamID")

	team, err := h.service.GetTeam(r.Context(), teamID, middleware.ActorID(r.Context()))
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, response.TeamResponse{
		Team: mapper.MapDomainTeamToDTO(team),
	})
}

// AddMember godoc
// @Summary Add a member to a team
// @Description Owner and admins may add members; a duplicate is a conflict
// @Tags Teams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param teamID path string true "Team id"
// @Param request body request.AddMemberRequest true "Member to add"
// @Success 201 {object} response.MemberResponse "Member added"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 409 {object} dto.ErrorResponse "Already a member"
// @Router /teams/{teamID}/members [post]
func (h *TeamHandler) AddMember(w http.ResponseWriter, r *http.Request) {
	teamID := chi.URLParam(r, "teamID")

	var req request.AddMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, "invalid request body")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, "validation error: "+err.Error())
		return
	}

	m, err := h.service.AddMember(r.Context(), teamID, req.UserID, domain.TeamRole(req.Role), middleware.ActorID(r.Context()))
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, response.MemberResponse{
		Member: mapper.MapMembershipToDTO(m),
	})
}

// RemoveMember godoc
// @Summary Remove a member from a team
// @Description Owner/admins may remove anyone but the owner; self-removal is always allowed
// @Tags Teams
// @Produce json
// @Security BearerAuth
// @Param teamID path string true "Team id"
// @Param userID path string true "User id"
// @Success 204 "Removed"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 409 {object} dto.ErrorResponse "Owner cannot be removed"
// @Router /teams/{teamID}/members/{userID} [delete]
func (h *TeamHandler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	teamID := chi.URLParam(r, "teamID")
	userID := chi.URLParam(r, "userID")

	if err := h.service.RemoveMember(r.Context(), teamID, userID, middleware.ActorID(r.Context())); err != nil {
		respondServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// UpdateRole godoc
// @Summary Change a member's role
// @Description Only the owner may change roles; the owner's own row is immutable
// @Tags Teams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param teamID path string true "Team id"
// @Param userID path string true "User id"
// @Param request body request.UpdateRoleRequest true "New role"
// @Success 204 "Role updated"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 409 {object} dto.ErrorResponse "Invalid operation"
// @Router /teams/{teamID}/members/{userID} [patch]
func (h *TeamHandler) UpdateRole(w http.ResponseWriter, r *http.Request) {
	teamID := chi.URLParam(r, "teamID")
	userID := chi.URLParam(r, "userID")

	var req request.UpdateRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, "invalid request body")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, "validation error: "+err.Error())
		return
	}

	if err := h.service.UpdateRole(r.Context(), teamID, userID, domain.TeamRole(req.Role), middleware.ActorID(r.Context())); err != nil {
		respondServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
