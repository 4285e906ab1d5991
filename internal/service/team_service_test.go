package service

import (
	"context"
	"testing"

	"task-manager-service/internal/domain"
	"task-manager-service/internal/my_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTeamFixture() (*TeamService, *fakeTeamRepo) {
	teamRepo := newFakeTeamRepo()
	userRepo := newFakeUserRepo(
		&domain.User{UserID: "owner", Username: "owner", IsActive: true},
		&domain.User{UserID: "admin", Username: "admin", IsActive: true},
		&domain.User{UserID: "member", Username: "member", IsActive: true},
		&domain.User{UserID: "newbie", Username: "newbie", IsActive: true},
	)

	teamRepo.addTeam("T", "owner")
	teamRepo.addMember("T", "admin", domain.RoleAdmin)
	teamRepo.addMember("T", "member", domain.RoleMember)

	return NewTeamService(teamRepo, userRepo), teamRepo
}

func TestCreateTeam(t *testing.T) {
	svc, repo := newTeamFixture()

	team, err := svc.CreateTeam(context.Background(), "platform", "owner")
	require.NoError(t, err)

	assert.NotEmpty(t, team.TeamID)
	assert.Equal(t, "platform", team.TeamName)
	assert.Equal(t, "owner", team.OwnerID)

	m, err := repo.GetMembership(context.Background(), team.TeamID, "owner")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleOwner, m.Role, "creation writes the owner membership row")
}

func TestCreateTeam_EmptyName(t *testing.T) {
	svc, _ := newTeamFixture()

	_, err := svc.CreateTeam(context.Background(), "", "owner")
	assert.ErrorIs(t, err, my_errors.ErrEmptyField)
}

func TestGetTeam(t *testing.T) {
	svc, _ := newTeamFixture()

	t.Run("member sees the team", func(t *testing.T) {
		team, err := svc.GetTeam(context.Background(), "T", "member")
		require.NoError(t, err)
		assert.Len(t, team.Members, 3)
	})

	t.Run("outsider gets not found", func(t *testing.T) {
		_, err := svc.GetTeam(context.Background(), "T", "newbie")
		assert.ErrorIs(t, err, my_errors.ErrTeamNotFound)
	})

	t.Run("absent team gets the same not found", func(t *testing.T) {
		_, err := svc.GetTeam(context.Background(), "nope", "owner")
		assert.ErrorIs(t, err, my_errors.ErrTeamNotFound)
	})
}

func TestAddMember(t *testing.T) {
	t.Run("owner adds a member", func(t *testing.T) {
		svc, repo := newTeamFixture()

		m, err := svc.AddMember(context.Background(), "T", "newbie", domain.RoleMember, "owner")
		require.NoError(t, err)
		assert.Equal(t, domain.RoleMember, m.Role)

		ok, _ := repo.IsMember(context.Background(), "T", "newbie")
		assert.True(t, ok)
	})

	t.Run("admin adds a member", func(t *testing.T) {
		svc, _ := newTeamFixture()
		_, err := svc.AddMember(context.Background(), "T", "newbie", domain.RoleAdmin, "admin")
		assert.NoError(t, err)
	})

	t.Run("owner without a membership row still acts as owner", func(t *testing.T) {
		svc, repo := newTeamFixture()
		delete(repo.memberships["T"], "owner")

		_, err := svc.AddMember(context.Background(), "T", "newbie", domain.RoleMember, "owner")
		assert.NoError(t, err)
	})

	t.Run("plain member may not add", func(t *testing.T) {
		svc, _ := newTeamFixture()
		_, err := svc.AddMember(context.Background(), "T", "newbie", domain.RoleMember, "member")
		assert.ErrorIs(t, err, my_errors.ErrForbidden)
	})

	t.Run("duplicate membership conflicts", func(t *testing.T) {
		svc, _ := newTeamFixture()
		_, err := svc.AddMember(context.Background(), "T", "member", domain.RoleMember, "owner")
		assert.ErrorIs(t, err, my_errors.ErrAlreadyMember)
	})

	t.Run("a second OWNER can never be added", func(t *testing.T) {
		svc, _ := newTeamFixture()
		_, err := svc.AddMember(context.Background(), "T", "newbie", domain.RoleOwner, "owner")
		assert.ErrorIs(t, err, my_errors.ErrInvalidOperation)
	})

	t.Run("unknown user", func(t *testing.T) {
		svc, _ := newTeamFixture()
		_, err := svc.AddMember(context.Background(), "T", "ghost", domain.RoleMember, "owner")
		assert.ErrorIs(t, err, my_errors.ErrUserNotFound)
	})
}

func TestRemoveMember(t *testing.T) {
	t.Run("owner removes a member", func(t *testing.T) {
		svc, repo := newTeamFixture()
		require.NoError(t, svc.RemoveMember(context.Background(), "T", "member", "owner"))
		ok, _ := repo.IsMember(context.Background(), "T", "member")
		assert.False(t, ok)
	})

	t.Run("self-removal is always allowed", func(t *testing.T) {
		svc, repo := newTeamFixture()
		require.NoError(t, svc.RemoveMember(context.Background(), "T", "member", "member"))
		ok, _ := repo.IsMember(context.Background(), "T", "member")
		assert.False(t, ok)
	})

	t.Run("member may not remove others", func(t *testing.T) {
		svc, _ := newTeamFixture()
		err := svc.RemoveMember(context.Background(), "T", "admin", "member")
		assert.ErrorIs(t, err, my_errors.ErrForbidden)
	})

	t.Run("the owner cannot be removed", func(t *testing.T) {
		svc, _ := newTeamFixture()
		err := svc.RemoveMember(context.Background(), "T", "owner", "admin")
		assert.ErrorIs(t, err, my_errors.ErrInvalidOperation)
	})
}

func TestUpdateRole(t *testing.T) {
	t.Run("owner promotes a member", func(t *testing.T) {
		svc, repo := newTeamFixture()
		require.NoError(t, svc.UpdateRole(context.Background(), "T", "member", domain.RoleAdmin, "owner"))
		m, err := repo.GetMembership(context.Background(), "T", "member")
		require.NoError(t, err)
		assert.Equal(t, domain.RoleAdmin, m.Role)
	})

	t.Run("admin may not change roles", func(t *testing.T) {
		svc, _ := newTeamFixture()
		err := svc.UpdateRole(context.Background(), "T", "member", domain.RoleAdmin, "admin")
		assert.ErrorIs(t, err, my_errors.ErrForbidden)
	})

	t.Run("the owner row is immutable", func(t *testing.T) {
		svc, _ := newTeamFixture()
		err := svc.UpdateRole(context.Background(), "T", "owner", domain.RoleMember, "owner")
		assert.ErrorIs(t, err, my_errors.ErrInvalidOperation)
		assert.ErrorIs(t, err, my_errors.ErrOwnerImmutable)
	})

	t.Run("promoting to OWNER is rejected", func(t *testing.T) {
		svc, _ := newTeamFixture()
		err := svc.UpdateRole(context.Background(), "T", "member", domain.RoleOwner, "owner")
		assert.ErrorIs(t, err, my_errors.ErrInvalidInput)
	})
}
