package access

import "task-manager-service/internal/domain"

// MembershipSource exposes the team-affiliation facts the access checks
// need. Implementations must be safe for concurrent reads.
type MembershipSource interface {
	// TeamOwnerID returns the owner of the team, if the team is known.
	TeamOwnerID(teamID string) (string, bool)
	// MemberRole returns the explicit membership role of the user in the
	// team, if a membership row exists.
	MemberRole(teamID, userID string) (domain.TeamRole, bool)
}

// MembershipIndex is an in-memory MembershipSource built from rows already
// fetched for the current request. It holds no locks: build it, then only
// read from it.
type MembershipIndex struct {
	owners map[string]string
	roles  map[string]map[string]domain.TeamRole
}

func NewMembershipIndex() *MembershipIndex {
	return &MembershipIndex{
		owners: make(map[string]string),
		roles:  make(map[string]map[string]domain.TeamRole),
	}
}

// AddTeam records the team and the implicit OWNER membership of its owner.
func (idx *MembershipIndex) AddTeam(team *domain.Team) {
	idx.AddOwner(team.TeamID, team.OwnerID)
	for _, m := range team.Members {
		idx.AddMembership(m)
	}
}

// AddOwner records the ownership fact alone, for callers that resolve
// membership rows separately.
func (idx *MembershipIndex) AddOwner(teamID, ownerID string) {
	idx.owners[teamID] = ownerID
}

func (idx *MembershipIndex) AddMembership(m domain.TeamMembership) {
	teamRoles, ok := idx.roles[m.TeamID]
	if !ok {
		teamRoles = make(map[string]domain.TeamRole)
		idx.roles[m.TeamID] = teamRoles
	}
	teamRoles[m.UserID] = m.Role
}

func (idx *MembershipIndex) TeamOwnerID(teamID string) (string, bool) {
	ownerID, ok := idx.owners[teamID]
	return ownerID, ok
}

func (idx *MembershipIndex) MemberRole(teamID, userID string) (domain.TeamRole, bool) {
	role, ok := idx.roles[teamID][userID]
	return role, ok
}
