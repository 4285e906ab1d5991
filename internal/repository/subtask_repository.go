package repository

import (
	"context"
	"fmt"

	"task-manager-service/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SubTaskRepository struct {
	pool *pgxpool.Pool
}

func NewSubTaskRepository(pool *pgxpool.Pool) *SubTaskRepository {
	return &SubTaskRepository{pool: pool}
}

func (r *SubTaskRepository) CreateSubTask(ctx context.Context, st *domain.SubTask) error {
	query := `
        INSERT INTO subtasks (subtask_id, task_id, title, assignee_id, status, completed_at)
        VALUES ($1, $2, $3, $4, $5, $6)
    `
	_, err := r.pool.Exec(ctx, query, st.SubTaskID, st.TaskID, st.Title, st.AssigneeID, st.Status, st.CompletedAt)
	if err != nil {
		return fmt.Errorf("failed to create subtask: %w", err)
	}
	return nil
}

func (r *SubTaskRepository) GetSubTaskByID(ctx context.Context, subTaskID string) (*domain.SubTask, error) {
	query := `
        SELECT subtask_id, task_id, title, assignee_id, status, completed_at, created_at, updated_at
        FROM subtasks
        WHERE subtask_id = $1
    `
	var st domain.SubTask
	err := r.pool.QueryRow(ctx, query, subTaskID).Scan(
		&st.SubTaskID,
		&st.TaskID,
		&st.Title,
		&st.AssigneeID,
		&st.Status,
		&st.CompletedAt,
		&st.CreatedAt,
		&st.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, fmt.Errorf("subtask not found")
		}
		return nil, fmt.Errorf("failed to get subtask: %w", err)
	}
	return &st, nil
}

func (r *SubTaskRepository) ListByTask(ctx context.Context, taskID string) ([]domain.SubTask, error) {
	query := `
        SELECT subtask_id, task_id, title, assignee_id, status, completed_at, created_at, updated_at
        FROM subtasks
        WHERE task_id = $1
        ORDER BY created_at
    `
	rows, err := r.pool.Query(ctx, query, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to list subtasks: %w", err)
	}
	defer rows.Close()

	var subtasks []domain.SubTask
	for rows.Next() {
		var st domain.SubTask
		if err := rows.Scan(
			&st.SubTaskID,
			&st.TaskID,
			&st.Title,
			&st.AssigneeID,
			&st.Status,
			&st.CompletedAt,
			&st.CreatedAt,
			&st.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan subtask: %w", err)
		}
		subtasks = append(subtasks, st)
	}
	return subtasks, nil
}

func (r *SubTaskRepository) UpdateSubTask(ctx context.Context, st *domain.SubTask) error {
	query := `
        UPDATE subtasks
        SET title = $1, assignee_id = $2, status = $3, completed_at = $4, updated_at = NOW()
        WHERE subtask_id = $5
    `
	result, err := r.pool.Exec(ctx, query, st.Title, st.AssigneeID, st.Status, st.CompletedAt, st.SubTaskID)
	if err != nil {
		return fmt.Errorf("failed to update subtask: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("subtask not found")
	}
	return nil
}

func (r *SubTaskRepository) DeleteSubTask(ctx context.Context, subTaskID string) error {
	query := `DELETE FROM subtasks WHERE subtask_id = $1`
	result, err := r.pool.Exec(ctx, query, subTaskID)
	if err != nil {
		return fmt.Errorf("failed to delete subtask: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("subtask not found")
	}
	return nil
}
