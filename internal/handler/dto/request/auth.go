package request

import "building-management/internal/usecase/commands"

type IssueTokenRequest struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name"`
	Photo string `json:"photo"`
}

func (r *IssueTokenRequest) ToCommand() commands.IssueTokenRequest {
	return commands.IssueTokenRequest{Email: r.Email, Name: r.Name, Photo: r.Photo}
}
