package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"task-manager-service/internal/access"
	"task-manager-service/internal/domain"
	"task-manager-service/internal/my_errors"
)

type TeamService struct {
	teamRepo TeamRepository
	userRepo UserRepository
}

func NewTeamService(teamRepo TeamRepository, userRepo UserRepository) *TeamService {
	return &TeamService{
		teamRepo: teamRepo,
		userRepo: userRepo,
	}
}

func (s *TeamService) CreateTeam(ctx context.Context, teamName, actorID string) (*domain.Team, error) {
	if teamName == "" {
		return nil, fmt.Errorf("team_name: %w", my_errors.ErrEmptyField)
	}

	team := &domain.Team{
		TeamID:   uuid.NewString(),
		TeamName: teamName,
		OwnerID:  actorID,
	}

	if err := s.teamRepo.CreateTeam(ctx, team); err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	createdTeam, err := s.teamRepo.GetTeamByID(ctx, team.TeamID)
	if err != nil {
		return nil, fmt.Errorf("failed to get created team: %w", err)
	}

	return createdTeam, nil
}

// GetTeam returns the team to its members and owner; everyone else gets the
// same not-found as for an absent team.
func (s *TeamService) GetTeam(ctx context.Context, teamID, actorID string) (*domain.Team, error) {
	if teamID == "" {
		return nil, fmt.Errorf("team_id: %w", my_errors.ErrEmptyField)
	}

	team, err := s.teamRepo.GetTeamByID(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("%w", my_errors.ErrTeamNotFound)
	}

	idx := access.NewMembershipIndex()
	idx.AddTeam(team)
	if _, ok := access.ResolveTeamRole(idx, team.TeamID, actorID); !ok {
		return nil, fmt.Errorf("%w", my_errors.ErrTeamNotFound)
	}

	return team, nil
}

// AddMember adds a user to the team. Only the owner and admins may add;
// duplicate membership is a conflict, and a second OWNER row can never be
// created through this path.
func (s *TeamService) AddMember(ctx context.Context, teamID, targetUserID string, role domain.TeamRole, actorID string) (*domain.TeamMembership, error) {
	team, actorRole, err := s.teamAndRole(ctx, teamID, actorID)
	if err != nil {
		return nil, err
	}

	if actorRole != domain.RoleOwner && actorRole != domain.RoleAdmin {
		return nil, fmt.Errorf("add member: %w", my_errors.ErrForbidden)
	}

	if role == domain.RoleOwner {
		return nil, fmt.Errorf("team can only have one owner: %w", my_errors.ErrInvalidOperation)
	}
	if !role.Valid() {
		return nil, fmt.Errorf("role must be ADMIN or MEMBER: %w", my_errors.ErrInvalidInput)
	}

	if _, err := s.userRepo.GetUserByID(ctx, targetUserID); err != nil {
		return nil, fmt.Errorf("%w", my_errors.ErrUserNotFound)
	}

	isMember, err := s.teamRepo.IsMember(ctx, teamID, targetUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to check membership: %w", err)
	}
	if isMember || targetUserID == team.OwnerID {
		return nil, fmt.Errorf("%w", my_errors.ErrAlreadyMember)
	}

	m := &domain.TeamMembership{TeamID: teamID, UserID: targetUserID, Role: role}
	if err := s.teamRepo.AddMembership(ctx, m); err != nil {
		return nil, fmt.Errorf("failed to add membership: %w", err)
	}

	return m, nil
}

// RemoveMember removes a user from the team. Owner and admins may remove
// anyone but the owner; self-removal is always allowed. The owner cannot be
// removed at all; ownership transfer does not exist yet, so the owner row
// stays put.
func (s *TeamService) RemoveMember(ctx context.Context, teamID, targetUserID, actorID string) error {
	team, actorRole, err := s.teamAndRole(ctx, teamID, actorID)
	if err != nil {
		return err
	}

	privileged := actorRole == domain.RoleOwner || actorRole == domain.RoleAdmin
	if !privileged && actorID != targetUserID {
		return fmt.Errorf("remove member: %w", my_errors.ErrForbidden)
	}

	if targetUserID == team.OwnerID {
		return fmt.Errorf("owner cannot be removed from the team: %w", my_errors.ErrInvalidOperation)
	}

	if err := s.teamRepo.RemoveMembership(ctx, teamID, targetUserID); err != nil {
		return fmt.Errorf("%w", my_errors.ErrNotMember)
	}
	return nil
}

// UpdateRole changes a member's role. Only the owner may do this, and the
// owner's own membership row is immutable.
func (s *TeamService) UpdateRole(ctx context.Context, teamID, targetUserID string, newRole domain.TeamRole, actorID string) error {
	team, _, err := s.teamAndRole(ctx, teamID, actorID)
	if err != nil {
		return err
	}

	if actorID != team.OwnerID {
		return fmt.Errorf("update role: %w", my_errors.ErrForbidden)
	}

	if targetUserID == team.OwnerID {
		return fmt.Errorf("%w: %w", my_errors.ErrOwnerImmutable, my_errors.ErrInvalidOperation)
	}

	if newRole == domain.RoleOwner || !newRole.Valid() {
		return fmt.Errorf("role must be ADMIN or MEMBER: %w", my_errors.ErrInvalidInput)
	}

	if err := s.teamRepo.UpdateMembershipRole(ctx, teamID, targetUserID, newRole); err != nil {
		return fmt.Errorf("%w", my_errors.ErrNotMember)
	}
	return nil
}

// teamAndRole loads the team and resolves the actor's effective role in it.
// An actor with no role gets ErrTeamNotFound, same as for an absent team.
func (s *TeamService) teamAndRole(ctx context.Context, teamID, actorID string) (*domain.Team, domain.TeamRole, error) {
	team, err := s.teamRepo.GetTeamByID(ctx, teamID)
	if err != nil {
		return nil, "", fmt.Errorf("%w", my_errors.ErrTeamNotFound)
	}

	// A single membership row is enough here; the owner resolves to OWNER
	// from the team record alone, even without a row.
	idx := access.NewMembershipIndex()
	idx.AddOwner(team.TeamID, team.OwnerID)
	m, err := s.teamRepo.GetMembership(ctx, teamID, actorID)
	switch {
	case err == nil:
		idx.AddMembership(*m)
	case !errors.Is(err, my_errors.ErrNotFound):
		return nil, "", fmt.Errorf("failed to load membership: %w", err)
	}

	role, ok := access.ResolveTeamRole(idx, team.TeamID, actorID)
	if !ok {
		return nil, "", fmt.Errorf("%w", my_errors.ErrTeamNotFound)
	}
	return team, role, nil
}
