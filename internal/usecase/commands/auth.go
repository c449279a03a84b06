package commands

import (
	"context"
	"errors"

	"building-management/internal/pkg/errs"
	"building-management/internal/pkg/jwt"
)

type IssueTokenRequest struct {
	Email string
	Name  string
	Photo string
}

type AuthCommands interface {
	IssueToken(ctx context.Context, req IssueTokenRequest) (string, error)
}

type authCommandsImpl struct {
	jwtService *jwt.Service
}

func NewAuthCommands(jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) IssueToken(_ context.Context, req IssueTokenRequest) (string, error) {
	token, err := a.jwtService.Issue(jwt.Identity{
		Email: req.Email,
		Name:  req.Name,
		Photo: req.Photo,
	})
	if err != nil {
		if errors.Is(err, jwt.ErrInvalidClaim) {
			return "", badRequest(err)
		}
		return "", errs.Mark(err, errs.ErrTokenSigning)
	}
	return token, nil
}
