package repository

import (
	"context"
	"fmt"

	"task-manager-service/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AttachmentRepository struct {
	pool *pgxpool.Pool
}

func NewAttachmentRepository(pool *pgxpool.Pool) *AttachmentRepository {
	return &AttachmentRepository{pool: pool}
}

func (r *AttachmentRepository) CreateAttachment(ctx context.Context, a *domain.Attachment) error {
	query := `
        INSERT INTO attachments (attachment_id, task_id, uploaded_by, file_name, url)
        VALUES ($1, $2, $3, $4, $5)
    `
	_, err := r.pool.Exec(ctx, query, a.AttachmentID, a.TaskID, a.UploadedBy, a.FileName, a.URL)
	if err != nil {
		return fmt.Errorf("failed to create attachment: %w", err)
	}
	return nil
}

func (r *AttachmentRepository) GetAttachmentByID(ctx context.Context, attachmentID string) (*domain.Attachment, error) {
	query := `
        SELECT attachment_id, task_id, uploaded_by, file_name, url, created_at
        FROM attachments
        WHERE attachment_id = $1
    `
	var a domain.Attachment
	err := r.pool.QueryRow(ctx, query, attachmentID).Scan(
		&a.AttachmentID,
		&a.TaskID,
		&a.UploadedBy,
		&a.FileName,
		&a.URL,
		&a.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, fmt.Errorf("attachment not found")
		}
		return nil, fmt.Errorf("failed to get attachment: %w", err)
	}
	return &a, nil
}

func (r *AttachmentRepository) ListByTask(ctx context.Context, taskID string) ([]domain.Attachment, error) {
	query := `
        SELECT attachment_id, task_id, uploaded_by, file_name, url, created_at
        FROM attachments
        WHERE task_id = $1
        ORDER BY created_at
    `
	rows, err := r.pool.Query(ctx, query, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attachments: %w", err)
	}
	defer rows.Close()

	var attachments []domain.Attachment
	for rows.Next() {
		var a domain.Attachment
		if err := rows.Scan(&a.AttachmentID, &a.TaskID, &a.UploadedBy, &a.FileName, &a.URL, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan attachment: %w", err)
		}
		attachments = append(attachments, a)
	}
	return attachments, nil
}

func (r *AttachmentRepository) DeleteAttachment(ctx context.Context, attachmentID string) error {
	query := `DELETE FROM attachments WHERE attachment_id = $1`
	result, err := r.pool.Exec(ctx, query, attachmentID)
	if err != nil {
		return fmt.Errorf("failed to delete attachment: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("attachment not found")
	}
	return nil
}
