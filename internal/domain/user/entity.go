package user

import (
	"errors"
	"strings"
	"time"
)

var ErrRoleNotSelfAssignable = errors.New("role cannot be self-assigned")

// User is a registered account. Users are created on first sign-in and
// never deleted; the role changes when an agreement is accepted or rejected.
type User struct {
	email     Email
	name      string
	photo     string
	role      Role
	timestamp time.Time
}

// NewUser builds a self-registered user. Only the plain user role may be
// requested; member and admin are granted by an administrator.
func NewUser(email Email, name, photo string, role Role, now time.Time) (*User, error) {
	if role == "" {
		role = RoleUser
	}
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}
	if role != RoleUser {
		return nil, ErrRoleNotSelfAssignable
	}
	return &User{
		email:     email,
		name:      strings.TrimSpace(name),
		photo:     strings.TrimSpace(photo),
		role:      role,
		timestamp: now,
	}, nil
}

func (u *User) Email() Email         { return u.email }
func (u *User) Name() string         { return u.name }
func (u *User) Photo() string        { return u.photo }
func (u *User) Role() Role           { return u.role }
func (u *User) Timestamp() time.Time { return u.timestamp }

func ReconstructUser(email Email, name, photo string, role Role, timestamp time.Time) *User {
	return &User{email: email, name: name, photo: photo, role: role, timestamp: timestamp}
}
