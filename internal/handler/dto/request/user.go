package request

import "building-management/internal/usecase/commands"

// UpsertUserRequest is the sign-in profile. The email comes from the path.
type UpsertUserRequest struct {
	Name  string `json:"name" binding:"max=200"`
	Photo string `json:"photo" binding:"max=2048"`
	Role  string `json:"role" binding:"omitempty,oneof=user member admin"`
}

func (r *UpsertUserRequest) ToCommand(email string) commands.UpsertUserRequest {
	return commands.UpsertUserRequest{
		Email: email,
		Name:  r.Name,
		Photo: r.Photo,
		Role:  r.Role,
	}
}

type UpdateUserRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=user member admin"`
}
