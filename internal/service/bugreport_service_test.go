package service

import (
	"context"
	"testing"

	"task-manager-service/internal/domain"
	"task-manager-service/internal/my_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bugFixture struct {
	*taskFixture
	svc     *BugReportService
	bugRepo *fakeBugRepo
	parent  *domain.Task
}

func newBugFixture() *bugFixture {
	base := newTaskFixture()
	bugRepo := newFakeBugRepo(base.taskRepo)

	return &bugFixture{
		taskFixture: base,
		svc:         NewBugReportService(bugRepo, base.taskRepo, base.teamRepo),
		bugRepo:     bugRepo,
		parent:      base.seedTask("owner", nil, strPtr("T")),
	}
}

func TestCreateBugReport(t *testing.T) {
	t.Run("team member reports against a task they cannot see directly", func(t *testing.T) {
		f := newBugFixture()

		bug, err := f.svc.CreateBugReport(context.Background(), &domain.BugReport{
			TaskID: f.parent.TaskID,
			Title:  "crash on save",
		}, "member")
		require.NoError(t, err)

		assert.Equal(t, "member", bug.ReporterID)
		assert.Equal(t, domain.SeverityMedium, bug.Severity, "severity defaults to MEDIUM")
		assert.Equal(t, domain.StatusTodo, bug.Status)
	})

	t.Run("outsider gets not found", func(t *testing.T) {
		f := newBugFixture()
		_, err := f.svc.CreateBugReport(context.Background(), &domain.BugReport{
			TaskID: f.parent.TaskID,
			Title:  "nope",
		}, "stranger")
		assert.ErrorIs(t, err, my_errors.ErrNotFound)
	})

	t.Run("empty title", func(t *testing.T) {
		f := newBugFixture()
		_, err := f.svc.CreateBugReport(context.Background(), &domain.BugReport{TaskID: f.parent.TaskID}, "owner")
		assert.ErrorIs(t, err, my_errors.ErrEmptyField)
	})

	t.Run("invalid severity", func(t *testing.T) {
		f := newBugFixture()
		_, err := f.svc.CreateBugReport(context.Background(), &domain.BugReport{
			TaskID:   f.parent.TaskID,
			Title:    "x",
			Severity: "APOCALYPTIC",
		}, "owner")
		assert.ErrorIs(t, err, my_errors.ErrInvalidInput)
	})
}

func TestListBugReports(t *testing.T) {
	f := newBugFixture()
	_, err := f.svc.CreateBugReport(context.Background(), &domain.BugReport{
		TaskID: f.parent.TaskID, Title: "one",
	}, "owner")
	require.NoError(t, err)

	bugs, err := f.svc.ListBugReports(context.Background(), f.parent.TaskID, "member")
	require.NoError(t, err)
	assert.Len(t, bugs, 1)

	_, err = f.svc.ListBugReports(context.Background(), f.parent.TaskID, "stranger")
	assert.ErrorIs(t, err, my_errors.ErrNotFound)
}

func TestUpdateBugReport(t *testing.T) {
	f := newBugFixture()
	bug, err := f.svc.CreateBugReport(context.Background(), &domain.BugReport{
		TaskID: f.parent.TaskID,
		Title:  "crash on save",
	}, "member")
	require.NoError(t, err)

	t.Run("reporter resolves the bug", func(t *testing.T) {
		status := domain.StatusCompleted
		updated, err := f.svc.UpdateBugReport(context.Background(), bug.BugID, &status, nil, nil, false, "member")
		require.NoError(t, err)
		assert.Equal(t, domain.StatusCompleted, updated.Status)
		assert.NotNil(t, updated.ResolvedAt)
	})

	t.Run("reopening clears ResolvedAt", func(t *testing.T) {
		status := domain.StatusInProgress
		updated, err := f.svc.UpdateBugReport(context.Background(), bug.BugID, &status, nil, nil, false, "member")
		require.NoError(t, err)
		assert.Nil(t, updated.ResolvedAt)
	})

	t.Run("severity change", func(t *testing.T) {
		severity := domain.SeverityCritical
		updated, err := f.svc.UpdateBugReport(context.Background(), bug.BugID, nil, &severity, nil, false, "owner")
		require.NoError(t, err)
		assert.Equal(t, domain.SeverityCritical, updated.Severity)
	})

	t.Run("outsider gets not found", func(t *testing.T) {
		severity := domain.SeverityLow
		_, err := f.svc.UpdateBugReport(context.Background(), bug.BugID, nil, &severity, nil, false, "stranger")
		assert.ErrorIs(t, err, my_errors.ErrNotFound)
	})

	t.Run("bug assignee qualifies even outside the team", func(t *testing.T) {
		assignee := "stranger"
		_, err := f.svc.UpdateBugReport(context.Background(), bug.BugID, nil, nil, &assignee, true, "owner")
		require.NoError(t, err)

		status := domain.StatusInProgress
		_, err = f.svc.UpdateBugReport(context.Background(), bug.BugID, &status, nil, nil, false, "stranger")
		assert.NoError(t, err)
	})
}

func TestUploadAndDeleteAttachment(t *testing.T) {
	base := newTaskFixture()
	attRepo := newFakeAttachmentRepo()
	svc := NewAttachmentService(attRepo, base.taskRepo, base.teamRepo)
	parent := base.seedTask("owner", nil, strPtr("T"))

	a, err := svc.UploadAttachment(context.Background(), parent.TaskID, "design.pdf", "https://files.local/design.pdf", "member")
	require.NoError(t, err)
	assert.Equal(t, "member", a.UploadedBy)

	_, err = svc.UploadAttachment(context.Background(), parent.TaskID, "x.pdf", "https://files.local/x.pdf", "stranger")
	assert.ErrorIs(t, err, my_errors.ErrNotFound)

	list, err := svc.ListAttachments(context.Background(), parent.TaskID, "admin")
	require.NoError(t, err)
	assert.Len(t, list, 1)

	err = svc.DeleteAttachment(context.Background(), a.AttachmentID, "stranger")
	assert.ErrorIs(t, err, my_errors.ErrNotFound)

	require.NoError(t, svc.DeleteAttachment(context.Background(), a.AttachmentID, "member"))
}
