package request

import (
	"building-management/internal/pkg/patch"
	"building-management/internal/usecase/commands"
)

type CreateAnnouncementRequest struct {
	Title       string  `json:"title" binding:"required,max=200"`
	Description string  `json:"description" binding:"max=5000"`
	User        *string `json:"user"`
}

// ToCommand falls back to the caller's email when no author is given.
func (r *CreateAnnouncementRequest) ToCommand(caller string) commands.CreateAnnouncementRequest {
	return commands.CreateAnnouncementRequest{
		Title:       r.Title,
		Description: r.Description,
		User:        patch.CoalesceString(r.User, caller),
	}
}
