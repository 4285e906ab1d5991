package service

import (
	"context"
	"fmt"
	"time"

	"task-manager-service/internal/access"
	"task-manager-service/internal/domain"
	"task-manager-service/internal/my_errors"
)

// In-memory fakes. Each one mirrors the behavior the real pgx repository
// exposes, including "not found" errors where QueryRow would return
// pgx.ErrNoRows.

type fakeUserRepo struct {
	users map[string]*domain.User
}

func newFakeUserRepo(users ...*domain.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: make(map[string]*domain.User)}
	for _, u := range users {
		repo.users[u.UserID] = u
	}
	return repo
}

func (r *fakeUserRepo) CreateUser(_ context.Context, user *domain.User) error {
	r.users[user.UserID] = user
	return nil
}

func (r *fakeUserRepo) GetUserByID(_ context.Context, userID string) (*domain.User, error) {
	user, ok := r.users[userID]
	if !ok {
		return nil, fmt.Errorf("user not found")
	}
	return user, nil
}

func (r *fakeUserRepo) GetUserByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, fmt.Errorf("user not found")
}

func (r *fakeUserRepo) UserExists(_ context.Context, username string) (bool, error) {
	_, err := r.GetUserByUsername(context.Background(), username)
	return err == nil, nil
}

type fakeAuthRepo struct {
	tokens map[string]*domain.AuthToken
}

func newFakeAuthRepo() *fakeAuthRepo {
	return &fakeAuthRepo{tokens: make(map[string]*domain.AuthToken)}
}

func (r *fakeAuthRepo) SaveToken(_ context.Context, userID, token string, expiresAt time.Time) error {
	r.tokens[userID] = &domain.AuthToken{UserID: userID, Token: token, ExpiresAt: expiresAt}
	return nil
}

func (r *fakeAuthRepo) GetTokenByUserID(_ context.Context, userID string) (*domain.AuthToken, error) {
	t, ok := r.tokens[userID]
	if !ok {
		return nil, fmt.Errorf("token not found")
	}
	return t, nil
}

func (r *fakeAuthRepo) ValidateToken(_ context.Context, token string) (string, error) {
	for _, t := range r.tokens {
		if t.Token == token && t.ExpiresAt.After(time.Now()) {
			return t.UserID, nil
		}
	}
	return "", fmt.Errorf("token not found")
}

type fakeTeamRepo struct {
	teams       map[string]*domain.Team
	memberships map[string]map[string]*domain.TeamMembership
}

func newFakeTeamRepo() *fakeTeamRepo {
	return &fakeTeamRepo{
		teams:       make(map[string]*domain.Team),
		memberships: make(map[string]map[string]*domain.TeamMembership),
	}
}

// addTeam seeds a team together with its owner membership row, the same
// shape CreateTeam persists.
func (r *fakeTeamRepo) addTeam(teamID, ownerID string) {
	r.teams[teamID] = &domain.Team{TeamID: teamID, TeamName: teamID, OwnerID: ownerID}
	r.addMember(teamID, ownerID, domain.RoleOwner)
}

func (r *fakeTeamRepo) addMember(teamID, userID string, role domain.TeamRole) {
	if r.memberships[teamID] == nil {
		r.memberships[teamID] = make(map[string]*domain.TeamMembership)
	}
	r.memberships[teamID][userID] = &domain.TeamMembership{TeamID: teamID, UserID: userID, Role: role}
}

func (r *fakeTeamRepo) CreateTeam(_ context.Context, team *domain.Team) error {
	if _, exists := r.teams[team.TeamID]; exists {
		return fmt.Errorf("team already exists")
	}
	r.teams[team.TeamID] = team
	r.addMember(team.TeamID, team.OwnerID, domain.RoleOwner)
	return nil
}

func (r *fakeTeamRepo) GetTeamByID(_ context.Context, teamID string) (*domain.Team, error) {
	team, ok := r.teams[teamID]
	if !ok {
		return nil, fmt.Errorf("team not found")
	}
	loaded := *team
	loaded.Members = nil
	for _, m := range r.memberships[teamID] {
		loaded.Members = append(loaded.Members, *m)
	}
	return &loaded, nil
}

func (r *fakeTeamRepo) GetMembership(_ context.Context, teamID, userID string) (*domain.TeamMembership, error) {
	m, ok := r.memberships[teamID][userID]
	if !ok {
		return nil, my_errors.ErrNotFound
	}
	return m, nil
}

func (r *fakeTeamRepo) IsMember(_ context.Context, teamID, userID string) (bool, error) {
	_, ok := r.memberships[teamID][userID]
	return ok, nil
}

func (r *fakeTeamRepo) AddMembership(_ context.Context, m *domain.TeamMembership) error {
	r.addMember(m.TeamID, m.UserID, m.Role)
	return nil
}

func (r *fakeTeamRepo) RemoveMembership(_ context.Context, teamID, userID string) error {
	if _, ok := r.memberships[teamID][userID]; !ok {
		return fmt.Errorf("membership not found")
	}
	delete(r.memberships[teamID], userID)
	return nil
}

func (r *fakeTeamRepo) UpdateMembershipRole(_ context.Context, teamID, userID string, role domain.TeamRole) error {
	m, ok := r.memberships[teamID][userID]
	if !ok {
		return fmt.Errorf("membership not found")
	}
	m.Role = role
	return nil
}

func (r *fakeTeamRepo) GetOwnedTeamIDs(_ context.Context, userID string) ([]string, error) {
	var ids []string
	for _, team := range r.teams {
		if team.OwnerID == userID {
			ids = append(ids, team.TeamID)
		}
	}
	return ids, nil
}

type fakeTaskRepo struct {
	tasks     map[string]*domain.Task
	details   map[string]domain.CategoryDetails
	histories map[string][]domain.HistoryEntry

	detailsErr error
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{
		tasks:     make(map[string]*domain.Task),
		details:   make(map[string]domain.CategoryDetails),
		histories: make(map[string][]domain.HistoryEntry),
	}
}

func (r *fakeTaskRepo) CreateTask(_ context.Context, task *domain.Task, entry *domain.HistoryEntry) error {
	copied := *task
	r.tasks[task.TaskID] = &copied
	r.histories[task.TaskID] = append(r.histories[task.TaskID], *entry)
	return nil
}

func (r *fakeTaskRepo) GetTaskByID(_ context.Context, taskID string) (*domain.Task, error) {
	task, ok := r.tasks[taskID]
	if !ok {
		return nil, fmt.Errorf("task not found")
	}
	copied := *task
	return &copied, nil
}

func (r *fakeTaskRepo) ListTasks(_ context.Context, filter access.TaskFilter) ([]domain.Task, error) {
	var out []domain.Task
	for _, task := range r.tasks {
		if filter.Match(task) {
			out = append(out, *task)
		}
	}
	return out, nil
}

func (r *fakeTaskRepo) UpdateWithHistory(_ context.Context, taskID string, mutate func(task *domain.Task) ([]domain.HistoryEntry, error)) (*domain.Task, error) {
	stored, ok := r.tasks[taskID]
	if !ok {
		return nil, fmt.Errorf("task not found")
	}

	working := *stored
	entries, err := mutate(&working)
	if err != nil {
		return nil, err
	}

	r.tasks[taskID] = &working
	r.histories[taskID] = append(r.histories[taskID], entries...)

	result := working
	return &result, nil
}

func (r *fakeTaskRepo) DeleteTask(_ context.Context, taskID string) error {
	if _, ok := r.tasks[taskID]; !ok {
		return fmt.Errorf("task not found")
	}
	delete(r.tasks, taskID)
	delete(r.histories, taskID)
	delete(r.details, taskID)
	return nil
}

func (r *fakeTaskRepo) UpsertCategoryDetails(_ context.Context, taskID string, details domain.CategoryDetails) error {
	if r.detailsErr != nil {
		return r.detailsErr
	}
	r.details[taskID] = details
	return nil
}

func (r *fakeTaskRepo) GetCategoryDetails(_ context.Context, taskID string, category domain.TaskCategory) (domain.CategoryDetails, error) {
	details, ok := r.details[taskID]
	if !ok || details.Category() != category {
		return nil, nil
	}
	return details, nil
}

type fakeHistoryRepo struct {
	taskRepo *fakeTaskRepo
}

func (r *fakeHistoryRepo) ListByTask(_ context.Context, taskID string) ([]domain.HistoryEntry, error) {
	return r.taskRepo.histories[taskID], nil
}

type fakeSubTaskRepo struct {
	subtasks map[string]*domain.SubTask
}

func newFakeSubTaskRepo() *fakeSubTaskRepo {
	return &fakeSubTaskRepo{subtasks: make(map[string]*domain.SubTask)}
}

func (r *fakeSubTaskRepo) CreateSubTask(_ context.Context, st *domain.SubTask) error {
	copied := *st
	r.subtasks[st.SubTaskID] = &copied
	return nil
}

func (r *fakeSubTaskRepo) GetSubTaskByID(_ context.Context, subTaskID string) (*domain.SubTask, error) {
	st, ok := r.subtasks[subTaskID]
	if !ok {
		return nil, fmt.Errorf("subtask not found")
	}
	copied := *st
	return &copied, nil
}

func (r *fakeSubTaskRepo) ListByTask(_ context.Context, taskID string) ([]domain.SubTask, error) {
	var out []domain.SubTask
	for _, st := range r.subtasks {
		if st.TaskID == taskID {
			out = append(out, *st)
		}
	}
	return out, nil
}

func (r *fakeSubTaskRepo) UpdateSubTask(_ context.Context, st *domain.SubTask) error {
	if _, ok := r.subtasks[st.SubTaskID]; !ok {
		return fmt.Errorf("subtask not found")
	}
	copied := *st
	r.subtasks[st.SubTaskID] = &copied
	return nil
}

func (r *fakeSubTaskRepo) DeleteSubTask(_ context.Context, subTaskID string) error {
	if _, ok := r.subtasks[subTaskID]; !ok {
		return fmt.Errorf("subtask not found")
	}
	delete(r.subtasks, subTaskID)
	return nil
}

type fakeAttachmentRepo struct {
	attachments map[string]*domain.Attachment
}

func newFakeAttachmentRepo() *fakeAttachmentRepo {
	return &fakeAttachmentRepo{attachments: make(map[string]*domain.Attachment)}
}

func (r *fakeAttachmentRepo) CreateAttachment(_ context.Context, a *domain.Attachment) error {
	copied := *a
	r.attachments[a.AttachmentID] = &copied
	return nil
}

func (r *fakeAttachmentRepo) GetAttachmentByID(_ context.Context, attachmentID string) (*domain.Attachment, error) {
	a, ok := r.attachments[attachmentID]
	if !ok {
		return nil, fmt.Errorf("attachment not found")
	}
	copied := *a
	return &copied, nil
}

func (r *fakeAttachmentRepo) ListByTask(_ context.Context, taskID string) ([]domain.Attachment, error) {
	var out []domain.Attachment
	for _, a := range r.attachments {
		if a.TaskID == taskID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeAttachmentRepo) DeleteAttachment(_ context.Context, attachmentID string) error {
	if _, ok := r.attachments[attachmentID]; !ok {
		return fmt.Errorf("attachment not found")
	}
	delete(r.attachments, attachmentID)
	return nil
}

type fakeBugRepo struct {
	bugs     map[string]*domain.BugReport
	taskRepo *fakeTaskRepo
}

func newFakeBugRepo(taskRepo *fakeTaskRepo) *fakeBugRepo {
	return &fakeBugRepo{bugs: make(map[string]*domain.BugReport), taskRepo: taskRepo}
}

func (r *fakeBugRepo) CreateBugReport(_ context.Context, bug *domain.BugReport) error {
	copied := *bug
	r.bugs[bug.BugID] = &copied
	return nil
}

func (r *fakeBugRepo) GetBugReportByID(_ context.Context, bugID string) (*domain.BugReport, error) {
	bug, ok := r.bugs[bugID]
	if !ok {
		return nil, fmt.Errorf("bug report not found")
	}
	copied := *bug
	return &copied, nil
}

func (r *fakeBugRepo) ListByTask(_ context.Context, taskID string) ([]domain.BugReport, error) {
	var out []domain.BugReport
	for _, bug := range r.bugs {
		if bug.TaskID == taskID {
			out = append(out, *bug)
		}
	}
	return out, nil
}

func (r *fakeBugRepo) CountOpenByTasks(ctx context.Context, filter access.TaskFilter) (int, error) {
	tasks, err := r.taskRepo.ListTasks(ctx, filter)
	if err != nil {
		return 0, err
	}
	visible := make(map[string]bool, len(tasks))
	for _, task := range tasks {
		visible[task.TaskID] = true
	}

	count := 0
	for _, bug := range r.bugs {
		if visible[bug.TaskID] && bug.Status != domain.StatusCompleted {
			count++
		}
	}
	return count, nil
}

func (r *fakeBugRepo) UpdateBugReport(_ context.Context, bug *domain.BugReport) error {
	if _, ok := r.bugs[bug.BugID]; !ok {
		return fmt.Errorf("bug report not found")
	}
	copied := *bug
	r.bugs[bug.BugID] = &copied
	return nil
}
