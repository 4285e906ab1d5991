package service

import (
	"context"
	"fmt"

	"task-manager-service/internal/access"
	"task-manager-service/internal/domain"
)

// loadTeamIndex builds the membership index for one team, with all its
// membership rows, so every access check in the request works off one
// consistent snapshot. A task without a team gets an empty index.
func loadTeamIndex(ctx context.Context, teams TeamReader, teamID *string) (*access.MembershipIndex, error) {
	idx := access.NewMembershipIndex()
	if teamID == nil || *teamID == "" {
		return idx, nil
	}

	team, err := teams.GetTeamByID(ctx, *teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to load team for access check: %w", err)
	}
	idx.AddTeam(team)
	return idx, nil
}

// indexForTask is loadTeamIndex keyed off a task's team.
func indexForTask(ctx context.Context, teams TeamReader, task *domain.Task) (*access.MembershipIndex, error) {
	return loadTeamIndex(ctx, teams, task.TeamID)
}
