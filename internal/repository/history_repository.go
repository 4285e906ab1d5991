package repository

import (
	"context"
	"fmt"

	"task-manager-service/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// HistoryRepository only reads: entries are appended inside the task write
// transaction and never modified afterwards.
type HistoryRepository struct {
	pool *pgxpool.Pool
}

func NewHistoryRepository(pool *pgxpool.Pool) *HistoryRepository {
	return &HistoryRepository{pool: pool}
}

func (r *HistoryRepository) ListByTask(ctx context.Context, taskID string) ([]domain.HistoryEntry, error) {
	query := `
        SELECT entry_id, task_id, user_id, action, field_name, old_value, new_value, created_at
        FROM task_history
        WHERE task_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.pool.Query(ctx, query, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	defer rows.Close()

	var entries []domain.HistoryEntry
	for rows.Next() {
		var e domain.HistoryEntry
		if err := rows.Scan(
			&e.EntryID,
			&e.TaskID,
			&e.UserID,
			&e.Action,
			&e.FieldName,
			&e.OldValue,
			&e.NewValue,
			&e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan history entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
