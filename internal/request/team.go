package request

type CreateTeamRequest struct {
	TeamName string `json:"team_name" validate:"required,min=1,max=255"`
}

type AddMemberRequest struct {
	UserID string `json:"user_id" validate:"required,min=1,max=255"`
	Role   string `json:"role" validate:"required,oneof=ADMIN MEMBER"`
}

type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=ADMIN MEMBER"`
}
