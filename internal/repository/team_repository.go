package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"task-manager-service/internal/domain"
	"task-manager-service/internal/my_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TeamRepository struct {
	pool *pgxpool.Pool
}

func NewTeamRepository(pool *pgxpool.Pool) *TeamRepository {
	return &TeamRepository{pool: pool}
}

// CreateTeam writes the team and the owner's explicit OWNER membership row
// in one transaction, so the one-OWNER-per-team invariant holds from the
// moment the team exists.
func (r *TeamRepository) CreateTeam(ctx context.Context, team *domain.Team) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			slog.Warn("failed to rollback transaction", "error", err)
		}
	}()

	teamQuery := `
        INSERT INTO teams (team_id, team_name, owner_id)
        VALUES ($1, $2, $3)
    `
	_, err = tx.Exec(ctx, teamQuery, team.TeamID, team.TeamName, team.OwnerID)
	if err != nil {
		return fmt.Errorf("failed to create team: %w", err)
	}

	membershipQuery := `
        INSERT INTO team_memberships (team_id, user_id, role)
        VALUES ($1, $2, $3)
    `
	_, err = tx.Exec(ctx, membershipQuery, team.TeamID, team.OwnerID, domain.RoleOwner)
	if err != nil {
		return fmt.Errorf("failed to create owner membership: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (r *TeamRepository) GetTeamByID(ctx context.Context, teamID string) (*domain.Team, error) {
	teamQuery := `SELECT team_id, team_name, owner_id, created_at FROM teams WHERE team_id = $1`
	var team domain.Team
	err := r.pool.QueryRow(ctx, teamQuery, teamID).Scan(&team.TeamID, &team.TeamName, &team.OwnerID, &team.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, fmt.Errorf("team not found")
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	membersQuery := `
        SELECT tm.team_id, tm.user_id, u.username, tm.role, tm.created_at
        FROM team_memberships tm
        INNER JOIN users u ON tm.user_id = u.user_id
        WHERE tm.team_id = $1
        ORDER BY u.username
    `
	rows, err := r.pool.Query(ctx, membersQuery, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to get team members: %w", err)
	}
	defer rows.Close()

	var members []domain.TeamMembership
	for rows.Next() {
		var m domain.TeamMembership
		if err := rows.Scan(&m.TeamID, &m.UserID, &m.Username, &m.Role, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, m)
	}

	team.Members = members
	return &team, nil
}

func (r *TeamRepository) GetMembership(ctx context.Context, teamID, userID string) (*domain.TeamMembership, error) {
	query := `
        SELECT team_id, user_id, role, created_at
        FROM team_memberships
        WHERE team_id = $1 AND user_id = $2
    `
	var m domain.TeamMembership
	err := r.pool.QueryRow(ctx, query, teamID, userID).Scan(&m.TeamID, &m.UserID, &m.Role, &m.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, my_errors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}
	return &m, nil
}

func (r *TeamRepository) IsMember(ctx context.Context, teamID, userID string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM team_memberships WHERE team_id = $1 AND user_id = $2)`
	var exists bool
	err := r.pool.QueryRow(ctx, query, teamID, userID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check membership: %w", err)
	}
	return exists, nil
}

func (r *TeamRepository) AddMembership(ctx context.Context, m *domain.TeamMembership) error {
	query := `
        INSERT INTO team_memberships (team_id, user_id, role)
        VALUES ($1, $2, $3)
    `
	_, err := r.pool.Exec(ctx, query, m.TeamID, m.UserID, m.Role)
	if err != nil {
		return fmt.Errorf("failed to add membership: %w", err)
	}
	return nil
}

func (r *TeamRepository) RemoveMembership(ctx context.Context, teamID, userID string) error {
	query := `DELETE FROM team_memberships WHERE team_id = $1 AND user_id = $2`
	result, err := r.pool.Exec(ctx, query, teamID, userID)
	if err != nil {
		return fmt.Errorf("failed to remove membership: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("membership not found")
	}
	return nil
}

func (r *TeamRepository) UpdateMembershipRole(ctx context.Context, teamID, userID string, role domain.TeamRole) error {
	query := `
        UPDATE team_memberships
        SET role = $1
        WHERE team_id = $2 AND user_id = $3
    `
	result, err := r.pool.Exec(ctx, query, role, teamID, userID)
	if err != nil {
		return fmt.Errorf("failed to update membership role: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("membership not found")
	}
	return nil
}

// GetOwnedTeamIDs feeds the task list filter: only teams the user owns
// contribute their task sets to the user's visible list.
func (r *TeamRepository) GetOwnedTeamIDs(ctx context.Context, userID string) ([]string, error) {
	query := `SELECT team_id FROM teams WHERE owner_id = $1`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get owned teams: %w", err)
	}
	defer rows.Close()

	var teamIDs []string
	for rows.Next() {
		var teamID string
		if err := rows.Scan(&teamID); err != nil {
			return nil, fmt.Errorf("failed to scan team id: %w", err)
		}
		teamIDs = append(teamIDs, teamID)
	}
	return teamIDs, nil
}
