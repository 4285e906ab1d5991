package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"task-manager-service/internal/access"
	"task-manager-service/internal/domain"
	"task-manager-service/internal/my_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TaskRepository struct {
	pool *pgxpool.Pool
}

func NewTaskRepository(pool *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{pool: pool}
}

const taskColumns = `
        task_id, title, description, creator_id, assignee_id, team_id,
        status, priority, category, progress, estimated_hours, actual_hours,
        due_date, completed_at, created_at, updated_at
`

func scanTask(row pgx.Row) (*domain.Task, error) {
	var task domain.Task
	err := row.Scan(
		&task.TaskID,
		&task.Title,
		&task.Description,
		&task.CreatorID,
		&task.AssigneeID,
		&task.TeamID,
		&task.Status,
		&task.Priority,
		&task.Category,
		&task.Progress,
		&task.EstimatedHours,
		&task.ActualHours,
		&task.DueDate,
		&task.CompletedAt,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// CreateTask inserts the task together with its first history entry in one
// transaction.
func (r *TaskRepository) CreateTask(ctx context.Context, task *domain.Task, entry *domain.HistoryEntry) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			slog.Warn("failed to rollback transaction", "error", err)
		}
	}()

	query := `
        INSERT INTO tasks (task_id, title, description, creator_id, assignee_id, team_id,
                           status, priority, category, progress, estimated_hours, actual_hours,
                           due_date, completed_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
    `
	_, err = tx.Exec(ctx, query,
		task.TaskID, task.Title, task.Description, task.CreatorID, task.AssigneeID, task.TeamID,
		task.Status, task.Priority, task.Category, task.Progress, task.EstimatedHours, task.ActualHours,
		task.DueDate, task.CompletedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}

	if err := insertHistoryEntry(ctx, tx, entry); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (r *TaskRepository) GetTaskByID(ctx context.Context, taskID string) (*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE task_id = $1`
	task, err := scanTask(r.pool.QueryRow(ctx, query, taskID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, fmt.Errorf("task not found")
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return task, nil
}

// ListTasks translates the declarative visibility filter into SQL. The WHERE
// clause is the exact counterpart of access.TaskFilter.Match.
func (r *TaskRepository) ListTasks(ctx context.Context, filter access.TaskFilter) ([]domain.Task, error) {
	query := `
        SELECT ` + taskColumns + `
        FROM tasks
        WHERE creator_id = $1 OR assignee_id = $1 OR team_id = ANY($2)
        ORDER BY created_at DESC
    `
	rows, err := r.pool.Query(ctx, query, filter.ActorID, filter.OwnedTeamIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []domain.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, *task)
	}
	return tasks, nil
}

// UpdateWithHistory runs the whole guarded write in one transaction: the
// task is re-fetched and row-locked, mutate re-derives permissions and
// applies the accepted fields on the fresh record, then the row update and
// the history append commit together. Any error from mutate, including
// denial and validation failures, rolls everything back.
func (r *TaskRepository) UpdateWithHistory(
	ctx context.Context,
	taskID string,
	mutate func(task *domain.Task) ([]domain.HistoryEntry, error),
) (*domain.Task, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			slog.Warn("failed to rollback transaction", "error", err)
		}
	}()

	selectQuery := `SELECT ` + taskColumns + ` FROM tasks WHERE task_id = $1 FOR UPDATE`
	task, err := scanTask(tx.QueryRow(ctx, selectQuery, taskID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, fmt.Errorf("task not found")
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	entries, err := mutate(task)
	if err != nil {
		return nil, err
	}

	updateQuery := `
        UPDATE tasks
        SET title = $1, description = $2, assignee_id = $3, team_id = $4,
            status = $5, priority = $6, progress = $7,
            estimated_hours = $8, actual_hours = $9,
            due_date = $10, completed_at = $11, updated_at = NOW()
        WHERE task_id = $12
    `
	_, err = tx.Exec(ctx, updateQuery,
		task.Title, task.Description, task.AssigneeID, task.TeamID,
		task.Status, task.Priority, task.Progress,
		task.EstimatedHours, task.ActualHours,
		task.DueDate, task.CompletedAt, task.TaskID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	for i := range entries {
		if err := insertHistoryEntry(ctx, tx, &entries[i]); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return task, nil
}

// DeleteTask removes the task; subtasks, attachments, bug reports and
// history entries go with it via ON DELETE CASCADE.
func (r *TaskRepository) DeleteTask(ctx context.Context, taskID string) error {
	query := `DELETE FROM tasks WHERE task_id = $1`
	result, err := r.pool.Exec(ctx, query, taskID)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if result.RowsAffected() == 0 {
		return my_errors.ErrNotFound
	}
	return nil
}

// UpsertCategoryDetails writes the satellite record for a task. It runs
// outside the task's write transaction; callers log its error and move on.
func (r *TaskRepository) UpsertCategoryDetails(ctx context.Context, taskID string, details domain.CategoryDetails) error {
	payload, err := json.Marshal(details)
	if err != nil {
		return fmt.Errorf("failed to marshal category details: %w", err)
	}

	query := `
        INSERT INTO task_category_details (task_id, category, details)
        VALUES ($1, $2, $3)
        ON CONFLICT (task_id)
        DO UPDATE SET category = EXCLUDED.category, details = EXCLUDED.details, updated_at = NOW()
    `
	_, err = r.pool.Exec(ctx, query, taskID, details.Category(), payload)
	if err != nil {
		return fmt.Errorf("failed to upsert category details: %w", err)
	}
	return nil
}

func (r *TaskRepository) GetCategoryDetails(ctx context.Context, taskID string, category domain.TaskCategory) (domain.CategoryDetails, error) {
	query := `SELECT details FROM task_category_details WHERE task_id = $1 AND category = $2`
	var payload []byte
	err := r.pool.QueryRow(ctx, query, taskID, category).Scan(&payload)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get category details: %w", err)
	}

	switch category {
	case domain.CategoryWork:
		var d domain.WorkDetails
		err = json.Unmarshal(payload, &d)
		return d, err
	case domain.CategoryPersonal:
		var d domain.PersonalDetails
		err = json.Unmarshal(payload, &d)
		return d, err
	case domain.CategoryShopping:
		var d domain.ShoppingDetails
		err = json.Unmarshal(payload, &d)
		return d, err
	case domain.CategoryHealth:
		var d domain.HealthDetails
		err = json.Unmarshal(payload, &d)
		return d, err
	case domain.CategoryFinance:
		var d domain.FinanceDetails
		err = json.Unmarshal(payload, &d)
		return d, err
	}
	return nil, fmt.Errorf("unknown category: %s", category)
}

func insertHistoryEntry(ctx context.Context, tx pgx.Tx, entry *domain.HistoryEntry) error {
	query := `
        INSERT INTO task_history (entry_id, task_id, user_id, action, field_name, old_value, new_value, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `
	_, err := tx.Exec(ctx, query,
		entry.EntryID, entry.TaskID, entry.UserID, entry.Action,
		entry.FieldName, entry.OldValue, entry.NewValue, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to append history entry: %w", err)
	}
	return nil
}
