package repository

import (
	"context"
	"fmt"

	"task-manager-service/internal/access"
	"task-manager-service/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type StatisticsRepository struct {
	pool *pgxpool.Pool
}

func NewStatisticsRepository(pool *pgxpool.Pool) *StatisticsRepository {
	return &StatisticsRepository{pool: pool}
}

// GetStatistics aggregates the task counts over exactly the actor's visible
// task set: the WHERE clause is the same translation of access.TaskFilter
// the task list uses. The open-bug count lives on the bug report repository;
// the statistics service composes the two.
func (r *StatisticsRepository) GetStatistics(ctx context.Context, filter access.TaskFilter) (*domain.Statistics, error) {
	stats := &domain.Statistics{}

	taskStatsQuery := `
        SELECT
            COUNT(*) as total,
            COUNT(CASE WHEN status = 'TODO' THEN 1 END) as todo,
            COUNT(CASE WHEN status = 'IN_PROGRESS' THEN 1 END) as in_progress,
            COUNT(CASE WHEN status = 'COMPLETED' THEN 1 END) as completed,
            COUNT(CASE WHEN status = 'BLOCKED' THEN 1 END) as blocked,
            COUNT(CASE WHEN due_date < NOW() AND status != 'COMPLETED' THEN 1 END) as overdue
        FROM tasks
        WHERE creator_id = $1 OR assignee_id = $1 OR team_id = ANY($2)
    `
	err := r.pool.QueryRow(ctx, taskStatsQuery, filter.ActorID, filter.OwnedTeamIDs).Scan(
		&stats.TotalTasks,
		&stats.TodoTasks,
		&stats.InProgressTasks,
		&stats.CompletedTasks,
		&stats.BlockedTasks,
		&stats.OverdueTasks,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get task stats: %w", err)
	}

	return stats, nil
}
