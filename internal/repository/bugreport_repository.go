package repository

import (
	"context"
	"fmt"

	"task-manager-service/internal/access"
	"task-manager-service/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BugReportRepository struct {
	pool *pgxpool.Pool
}

func NewBugReportRepository(pool *pgxpool.Pool) *BugReportRepository {
	return &BugReportRepository{pool: pool}
}

func (r *BugReportRepository) CreateBugReport(ctx context.Context, bug *domain.BugReport) error {
	query := `
        INSERT INTO bug_reports (bug_id, task_id, title, description, reporter_id, assignee_id,
                                 status, severity, environment, steps, resolved_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
    `
	_, err := r.pool.Exec(ctx, query,
		bug.BugID, bug.TaskID, bug.Title, bug.Description, bug.ReporterID, bug.AssigneeID,
		bug.Status, bug.Severity, bug.Environment, bug.Steps, bug.ResolvedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create bug report: %w", err)
	}
	return nil
}

func (r *BugReportRepository) GetBugReportByID(ctx context.Context, bugID string) (*domain.BugReport, error) {
	query := `
        SELECT bug_id, task_id, title, description, reporter_id, assignee_id,
               status, severity, environment, steps, resolved_at, created_at, updated_at
        FROM bug_reports
        WHERE bug_id = $1
    `
	var bug domain.BugReport
	err := r.pool.QueryRow(ctx, query, bugID).Scan(
		&bug.BugID,
		&bug.TaskID,
		&bug.Title,
		&bug.Description,
		&bug.ReporterID,
		&bug.AssigneeID,
		&bug.Status,
		&bug.Severity,
		&bug.Environment,
		&bug.Steps,
		&bug.ResolvedAt,
		&bug.CreatedAt,
		&bug.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, fmt.Errorf("bug report not found")
		}
		return nil, fmt.Errorf("failed to get bug report: %w", err)
	}
	return &bug, nil
}

func (r *BugReportRepository) ListByTask(ctx context.Context, taskID string) ([]domain.BugReport, error) {
	query := `
        SELECT bug_id, task_id, title, description, reporter_id, assignee_id,
               status, severity, environment, steps, resolved_at, created_at, updated_at
        FROM bug_reports
        WHERE task_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.pool.Query(ctx, query, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bug reports: %w", err)
	}
	defer rows.Close()

	var bugs []domain.BugReport
	for rows.Next() {
		var bug domain.BugReport
		if err := rows.Scan(
			&bug.BugID,
			&bug.TaskID,
			&bug.Title,
			&bug.Description,
			&bug.ReporterID,
			&bug.AssigneeID,
			&bug.Status,
			&bug.Severity,
			&bug.Environment,
			&bug.Steps,
			&bug.ResolvedAt,
			&bug.CreatedAt,
			&bug.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan bug report: %w", err)
		}
		bugs = append(bugs, bug)
	}
	return bugs, nil
}

func (r *BugReportRepository) UpdateBugReport(ctx context.Context, bug *domain.BugReport) error {
	query := `
        UPDATE bug_reports
        SET title = $1, description = $2, assignee_id = $3, status = $4,
            severity = $5, environment = $6, steps = $7, resolved_at = $8, updated_at = NOW()
        WHERE bug_id = $9
    `
	result, err := r.pool.Exec(ctx, query,
		bug.Title, bug.Description, bug.AssigneeID, bug.Status,
		bug.Severity, bug.Environment, bug.Steps, bug.ResolvedAt, bug.BugID,
	)
	if err != nil {
		return fmt.Errorf("failed to update bug report: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("bug report not found")
	}
	return nil
}

// CountOpenByTasks counts unresolved bug reports across the actor's visible
// task set, scoped by the same filter the task list uses.
func (r *BugReportRepository) CountOpenByTasks(ctx context.Context, filter access.TaskFilter) (int, error) {
	query := `
        SELECT COUNT(*)
        FROM bug_reports b
        INNER JOIN tasks t ON b.task_id = t.task_id
        WHERE b.status != 'COMPLETED'
          AND (t.creator_id = $1 OR t.assignee_id = $1 OR t.team_id = ANY($2))
    `
	var count int
	err := r.pool.QueryRow(ctx, query, filter.ActorID, filter.OwnedTeamIDs).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count open bugs: %w", err)
	}
	return count, nil
}
