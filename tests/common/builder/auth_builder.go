//go:build unit || e2e

package builder

import (
	reqdto "building-management/internal/handler/dto/request"
)

type AuthBuilder struct {
	Email string
	Name  string
	Photo string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Email: "test@example.com",
		Name:  "Test User",
	}
}

func (a *AuthBuilder) BuildDTO() reqdto.IssueTokenRequest {
	return reqdto.IssueTokenRequest{
		Email: a.Email,
		Name:  a.Name,
		Photo: a.Photo,
	}
}
