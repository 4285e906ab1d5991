package access

import "task-manager-service/internal/domain"

// TaskFilter is the declarative list-visibility predicate: a task matches
// iff the actor created it, is assigned to it, or owns its team. This is the
// one authoritative listing rule; the task repository translates it to SQL
// and Match is its in-memory equivalent. Plain team membership deliberately
// does not match; only owned teams contribute their task sets.
type TaskFilter struct {
	ActorID      string
	OwnedTeamIDs []string
}

// ListFilterFor builds the filter for one actor. ownedTeamIDs must be the
// ids of teams whose OwnerID equals actorID.
func ListFilterFor(actorID string, ownedTeamIDs []string) TaskFilter {
	return TaskFilter{ActorID: actorID, OwnedTeamIDs: ownedTeamIDs}
}

// Match reports whether the task is in the actor's visible set.
func (f TaskFilter) Match(task *domain.Task) bool {
	if task.CreatorID == f.ActorID || task.Assigned(f.ActorID) {
		return true
	}
	if !task.TeamScoped() {
		return false
	}
	for _, teamID := range f.OwnedTeamIDs {
		if teamID == *task.TeamID {
			return true
		}
	}
	return false
}
