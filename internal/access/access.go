// Package access is the single authorization core: every visibility and
// permission decision in the service goes through the functions here.
// All functions are pure and total; "no access" is a false return or a
// zero PermissionSet, never an error.
package access

import "task-manager-service/internal/domain"

// PermissionSet is the full set of actions an actor may take on one task.
// It is only meaningful after a visibility check has passed; CanComment in
// particular is unconditional at that point.
type PermissionSet struct {
	IsTeamOwner bool `json:"is_team_owner"`
	IsCreator   bool `json:"is_creator"`
	IsAssignee  bool `json:"is_assignee"`

	CanEdit            bool `json:"can_edit"`
	CanUpdateStatus    bool `json:"can_update_status"`
	CanComment         bool `json:"can_comment"`
	CanDelete          bool `json:"can_delete"`
	CanAssign          bool `json:"can_assign"`
	CanViewHistory     bool `json:"can_view_history"`
	CanViewSubmissions bool `json:"can_view_submissions"`
}

// ResolveTeamRole returns the actor's effective role in a team.
// Team.OwnerID is authoritative: the owner resolves to OWNER whether or not
// an explicit membership row exists. Everyone else gets their membership
// row's role, or no role at all.
func ResolveTeamRole(src MembershipSource, teamID, actorID string) (domain.TeamRole, bool) {
	if ownerID, ok := src.TeamOwnerID(teamID); ok && ownerID == actorID {
		return domain.RoleOwner, true
	}
	if role, ok := src.MemberRole(teamID, actorID); ok {
		return role, true
	}
	return "", false
}

// TaskVisible decides single-task access: creator, assignee, or the OWNER
// of the task's team. A team ADMIN or MEMBER who is neither creator nor
// assignee does not see the task through this check. The list filter
// (ListFilterFor) applies the same rule in bulk.
func TaskVisible(src MembershipSource, task *domain.Task, actorID string) bool {
	if task.CreatorID == actorID || task.Assigned(actorID) {
		return true
	}
	if task.TeamScoped() {
		role, ok := ResolveTeamRole(src, *task.TeamID, actorID)
		return ok && role == domain.RoleOwner
	}
	return false
}

// TaskPermissions derives the actor's permission set on a task. Idempotent
// and free of side effects: identical inputs always produce the same set.
func TaskPermissions(src MembershipSource, task *domain.Task, actorID string) PermissionSet {
	var isTeamOwner bool
	if task.TeamScoped() {
		role, ok := ResolveTeamRole(src, *task.TeamID, actorID)
		isTeamOwner = ok && role == domain.RoleOwner
	}
	isCreator := task.CreatorID == actorID
	isAssignee := task.Assigned(actorID)

	return PermissionSet{
		IsTeamOwner:        isTeamOwner,
		IsCreator:          isCreator,
		IsAssignee:         isAssignee,
		CanEdit:            isTeamOwner || isCreator,
		CanUpdateStatus:    isTeamOwner || isCreator || isAssignee,
		CanComment:         true,
		CanDelete:          isTeamOwner || isCreator,
		CanAssign:          isTeamOwner || isCreator,
		CanViewHistory:     isTeamOwner || isCreator,
		CanViewSubmissions: isTeamOwner || isCreator,
	}
}

// SubResourceAccess decides access to a subtask, attachment or bug report
// under a parent task. The rule is deliberately wider than TaskVisible: the
// sub-resource's own assignee/uploader/reporter, the parent's creator or
// assignee, and anyone holding a role in the parent's team all qualify, so
// delegated team members can manage work items without full task rights.
func SubResourceAccess(src MembershipSource, parent *domain.Task, subOwnerIDs []string, actorID string) bool {
	for _, ownerID := range subOwnerIDs {
		if ownerID == actorID {
			return true
		}
	}
	if parent.CreatorID == actorID || parent.Assigned(actorID) {
		return true
	}
	if parent.TeamScoped() {
		_, ok := ResolveTeamRole(src, *parent.TeamID, actorID)
		return ok
	}
	return false
}
