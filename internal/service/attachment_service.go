package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"task-manager-service/internal/access"
	"task-manager-service/internal/domain"
	"task-manager-service/internal/my_errors"
)

type AttachmentService struct {
	attachmentRepo AttachmentRepository
	taskRepo       TaskReader
	teamRepo       TeamRepository
}

func NewAttachmentService(attachmentRepo AttachmentRepository, taskRepo TaskReader, teamRepo TeamRepository) *AttachmentService {
	return &AttachmentService{
		attachmentRepo: attachmentRepo,
		taskRepo:       taskRepo,
		teamRepo:       teamRepo,
	}
}

func (s *AttachmentService) UploadAttachment(ctx context.Context, taskID, fileName, url, actorID string) (*domain.Attachment, error) {
	if fileName == "" {
		return nil, fmt.Errorf("file_name: %w", my_errors.ErrEmptyField)
	}
	if url == "" {
		return nil, fmt.Errorf("url: %w", my_errors.ErrEmptyField)
	}

	parent, idx, err := s.parentAndIndex(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if !access.SubResourceAccess(idx, parent, nil, actorID) {
		return nil, fmt.Errorf("%w", my_errors.ErrNotFound)
	}

	a := &domain.Attachment{
		AttachmentID: uuid.NewString(),
		TaskID:       parent.TaskID,
		UploadedBy:   actorID,
		FileName:     fileName,
		URL:          url,
	}

	if err := s.attachmentRepo.CreateAttachment(ctx, a); err != nil {
		return nil, fmt.Errorf("failed to create attachment: %w", err)
	}
	return a, nil
}

func (s *AttachmentService) ListAttachments(ctx context.Context, taskID, actorID string) ([]domain.Attachment, error) {
	parent, idx, err := s.parentAndIndex(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if !access.SubResourceAccess(idx, parent, nil, actorID) {
		return nil, fmt.Errorf("%w", my_errors.ErrNotFound)
	}

	attachments, err := s.attachmentRepo.ListByTask(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attachments: %w", err)
	}
	return attachments, nil
}

func (s *AttachmentService) DeleteAttachment(ctx context.Context, attachmentID, actorID string) error {
	a, err := s.attachmentRepo.GetAttachmentByID(ctx, attachmentID)
	if err != nil {
		return fmt.Errorf("%w", my_errors.ErrNotFound)
	}

	parent, idx, err := s.parentAndIndex(ctx, a.TaskID)
	if err != nil {
		return err
	}

	if !access.SubResourceAccess(idx, parent, []string{a.UploadedBy}, actorID) {
		return fmt.Errorf("%w", my_errors.ErrNotFound)
	}

	if err := s.attachmentRepo.DeleteAttachment(ctx, attachmentID); err != nil {
		return fmt.Errorf("failed to delete attachment: %w", err)
	}
	return nil
}

func (s *AttachmentService) parentAndIndex(ctx context.Context, taskID string) (*domain.Task, *access.MembershipIndex, error) {
	parent, err := s.taskRepo.GetTaskByID(ctx, taskID)
	if err != nil {
		return nil, nil, fmt.Errorf("%w", my_errors.ErrNotFound)
	}
	idx, err := indexForTask(ctx, s.teamRepo, parent)
	if err != nil {
		return nil, nil, err
	}
	return parent, idx, nil
}
