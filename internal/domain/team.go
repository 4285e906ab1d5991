package domain

import "time"

type TeamRole string

const (
	RoleOwner  TeamRole = "OWNER"
	RoleAdmin  TeamRole = "ADMIN"
	RoleMember TeamRole = "MEMBER"
)

func (r TeamRole) Valid() bool {
	switch r {
	case RoleOwner, RoleAdmin, RoleMember:
		return true
	}
	return false
}

type Team struct {
	CreatedAt time.Time        `json:"created_at"`
	TeamID    string           `json:"team_id"`
	TeamName  string           `json:"team_name"`
	OwnerID   string           `json:"owner_id"`
	Members   []TeamMembership `json:"members,omitempty"`
}

// TeamMembership is unique per (TeamID, UserID). The row for the team owner
// carries RoleOwner and is written at team creation; Team.OwnerID stays
// authoritative even if the row is missing.
type TeamMembership struct {
	CreatedAt time.Time `json:"created_at"`
	TeamID    string    `json:"team_id"`
	UserID    string    `json:"user_id"`
	Username  string    `json:"username,omitempty"`
	Role      TeamRole  `json:"role"`
}
