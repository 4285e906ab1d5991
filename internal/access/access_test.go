package access

import (
	"testing"

	"task-manager-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

// fixtureIndex builds team T owned by u1 with u2 as a plain MEMBER. u3
// holds no membership anywhere.
func fixtureIndex() *MembershipIndex {
	idx := NewMembershipIndex()
	idx.AddTeam(&domain.Team{
		TeamID:  "T",
		OwnerID: "u1",
		Members: []domain.TeamMembership{
			{TeamID: "T", UserID: "u1", Role: domain.RoleOwner},
			{TeamID: "T", UserID: "u2", Role: domain.RoleMember},
		},
	})
	return idx
}

func TestResolveTeamRole(t *testing.T) {
	idx := fixtureIndex()

	role, ok := ResolveTeamRole(idx, "T", "u1")
	require.True(t, ok)
	assert.Equal(t, domain.RoleOwner, role)

	role, ok = ResolveTeamRole(idx, "T", "u2")
	require.True(t, ok)
	assert.Equal(t, domain.RoleMember, role)

	_, ok = ResolveTeamRole(idx, "T", "u3")
	assert.False(t, ok)

	_, ok = ResolveTeamRole(idx, "unknown-team", "u1")
	assert.False(t, ok)
}

func TestResolveTeamRole_OwnerWithoutMembershipRow(t *testing.T) {
	// The teams table is authoritative for ownership: the owner resolves
	// to OWNER even when no membership row exists for them.
	idx := NewMembershipIndex()
	idx.AddTeam(&domain.Team{TeamID: "T", OwnerID: "u1"})

	role, ok := ResolveTeamRole(idx, "T", "u1")
	require.True(t, ok)
	assert.Equal(t, domain.RoleOwner, role)
}

func TestResolveTeamRole_OwnerOverridesStaleRow(t *testing.T) {
	idx := NewMembershipIndex()
	idx.AddTeam(&domain.Team{TeamID: "T", OwnerID: "u1"})
	idx.AddMembership(domain.TeamMembership{TeamID: "T", UserID: "u1", Role: domain.RoleMember})

	role, ok := ResolveTeamRole(idx, "T", "u1")
	require.True(t, ok)
	assert.Equal(t, domain.RoleOwner, role)
}

func TestTaskVisible(t *testing.T) {
	idx := fixtureIndex()

	// Task X: created by u1 (team owner), assigned to non-member u3,
	// scoped to team T.
	taskX := &domain.Task{
		TaskID:     "X",
		CreatorID:  "u1",
		AssigneeID: strPtr("u3"),
		TeamID:     strPtr("T"),
	}

	assert.True(t, TaskVisible(idx, taskX, "u1"), "creator and team owner")
	assert.True(t, TaskVisible(idx, taskX, "u3"), "assignee")
	assert.False(t, TaskVisible(idx, taskX, "u2"), "plain MEMBER has no single-task access")
	assert.False(t, TaskVisible(idx, taskX, "u4"), "stranger")
}

func TestTaskVisible_TeamOwnerWhoIsNotCreator(t *testing.T) {
	idx := fixtureIndex()

	task := &domain.Task{
		TaskID:    "Y",
		CreatorID: "u2",
		TeamID:    strPtr("T"),
	}

	assert.True(t, TaskVisible(idx, task, "u1"), "team owner sees team tasks")
	assert.True(t, TaskVisible(idx, task, "u2"), "creator")
}

func TestTaskVisible_PersonalTask(t *testing.T) {
	idx := fixtureIndex()

	task := &domain.Task{TaskID: "P", CreatorID: "u2"}

	assert.True(t, TaskVisible(idx, task, "u2"))
	assert.False(t, TaskVisible(idx, task, "u1"), "team ownership grants nothing on personal tasks")
}

func TestTaskPermissions(t *testing.T) {
	idx := fixtureIndex()

	taskX := &domain.Task{
		TaskID:     "X",
		CreatorID:  "u1",
		AssigneeID: strPtr("u3"),
		TeamID:     strPtr("T"),
	}

	t.Run("creator and team owner", func(t *testing.T) {
		p := TaskPermissions(idx, taskX, "u1")
		assert.True(t, p.IsTeamOwner)
		assert.True(t, p.IsCreator)
		assert.True(t, p.CanEdit)
		assert.True(t, p.CanUpdateStatus)
		assert.True(t, p.CanDelete)
		assert.True(t, p.CanAssign)
		assert.True(t, p.CanViewHistory)
		assert.True(t, p.CanViewSubmissions)
	})

	t.Run("assignee only", func(t *testing.T) {
		p := TaskPermissions(idx, taskX, "u3")
		assert.True(t, p.IsAssignee)
		assert.False(t, p.CanEdit)
		assert.True(t, p.CanUpdateStatus)
		assert.True(t, p.CanComment)
		assert.False(t, p.CanDelete)
		assert.False(t, p.CanAssign)
		assert.False(t, p.CanViewHistory)
	})

	t.Run("plain member", func(t *testing.T) {
		p := TaskPermissions(idx, taskX, "u2")
		assert.False(t, p.IsTeamOwner)
		assert.False(t, p.CanEdit)
		assert.False(t, p.CanUpdateStatus)
		assert.True(t, p.CanComment)
	})
}

func TestTaskPermissions_Deterministic(t *testing.T) {
	idx := fixtureIndex()
	task := &domain.Task{TaskID: "X", CreatorID: "u1", TeamID: strPtr("T")}

	first := TaskPermissions(idx, task, "u2")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, TaskPermissions(idx, task, "u2"))
	}
}

func TestSubResourceAccess(t *testing.T) {
	idx := fixtureIndex()

	// BugReport B: reporter u4, parent task created by u1 in team T.
	parent := &domain.Task{
		TaskID:    "X",
		CreatorID: "u1",
		TeamID:    strPtr("T"),
	}

	assert.True(t, SubResourceAccess(idx, parent, []string{"u4"}, "u4"), "reporter")
	assert.True(t, SubResourceAccess(idx, parent, nil, "u1"), "parent creator")
	assert.True(t, SubResourceAccess(idx, parent, nil, "u2"),
		"plain MEMBER qualifies even though TaskVisible would refuse them")
	assert.False(t, SubResourceAccess(idx, parent, []string{"u4"}, "u5"), "stranger")

	// The two rules diverge on purpose.
	assert.False(t, TaskVisible(idx, parent, "u2"))
}

func TestSubResourceAccess_PersonalParent(t *testing.T) {
	idx := fixtureIndex()

	parent := &domain.Task{TaskID: "P", CreatorID: "u1", AssigneeID: strPtr("u3")}

	assert.True(t, SubResourceAccess(idx, parent, nil, "u1"))
	assert.True(t, SubResourceAccess(idx, parent, nil, "u3"))
	assert.False(t, SubResourceAccess(idx, parent, nil, "u2"))
}
