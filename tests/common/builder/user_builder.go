//go:build unit || e2e

package builder

import (
	"time"

	"building-management/internal/domain/user"
	reqdto "building-management/internal/handler/dto/request"
	"building-management/internal/usecase/queries"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserBuilder struct {
	Email     string
	Name      string
	Photo     string
	Role      string
	Timestamp time.Time
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		Email:     "test@example.com",
		Name:      "Test User",
		Photo:     "https://example.com/avatar.png",
		Role:      "user",
		Timestamp: time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}

	var role user.Role
	if u.Role != "" {
		if role, err = user.NewRole(u.Role); err != nil {
			return nil, err
		}
	}

	return user.NewUser(email, u.Name, u.Photo, role, u.Timestamp)
}

func (u *UserBuilder) BuildView() *queries.UserView {
	return &queries.UserView{
		ID:        primitive.NewObjectID().Hex(),
		Email:     u.Email,
		Name:      u.Name,
		Photo:     u.Photo,
		Role:      u.Role,
		Timestamp: u.Timestamp.UnixMilli(),
	}
}

func (u *UserBuilder) BuildDTO() reqdto.UpsertUserRequest {
	return reqdto.UpsertUserRequest{
		Name:  u.Name,
		Photo: u.Photo,
		Role:  u.Role,
	}
}

// Fluent builder methods
func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithName(name string) *UserBuilder {
	u.Name = name
	return u
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) AsMember() *UserBuilder {
	u.Role = "member"
	return u
}

func (u *UserBuilder) AsAdmin() *UserBuilder {
	u.Role = "admin"
	return u
}
