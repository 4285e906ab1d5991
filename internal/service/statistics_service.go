package service

import (
	"context"
	"fmt"

	"task-manager-service/internal/access"
	"task-manager-service/internal/domain"
)

type StatisticsService struct {
	statsRepo StatisticsRepository
	bugRepo   BugCounter
	teamRepo  TeamRepository
}

func NewStatisticsService(statsRepo StatisticsRepository, bugRepo BugCounter, teamRepo TeamRepository) *StatisticsService {
	return &StatisticsService{
		statsRepo: statsRepo,
		bugRepo:   bugRepo,
		teamRepo:  teamRepo,
	}
}

// GetStatistics aggregates over the actor's visible tasks; the list filter
// is its only authorization input, for the task counts and the open-bug
// count alike.
func (s *StatisticsService) GetStatistics(ctx context.Context, actorID string) (*domain.Statistics, error) {
	ownedTeamIDs, err := s.teamRepo.GetOwnedTeamIDs(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("failed to get owned teams: %w", err)
	}
	filter := access.ListFilterFor(actorID, ownedTeamIDs)

	stats, err := s.statsRepo.GetStatistics(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to get statistics: %w", err)
	}

	openBugs, err := s.bugRepo.CountOpenByTasks(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to count open bugs: %w", err)
	}
	stats.OpenBugs = openBugs

	return stats, nil
}
