package commands

import (
	"context"
	"errors"
	"log/slog"

	"building-management/internal/domain/user"
	"building-management/internal/pkg/clock"
	"building-management/internal/pkg/errs"
	"building-management/internal/usecase/queries"
	"building-management/internal/usecase/shared"
)

type UpsertUserRequest struct {
	Email string
	Name  string
	Photo string
	Role  string
}

type UserCommands interface {
	// Upsert registers the user on first sign-in and returns the stored record.
	Upsert(ctx context.Context, req UpsertUserRequest) (*queries.UserView, error)
	UpdateRole(ctx context.Context, email, role string) (*queries.UserView, error)
}

type userCommandsImpl struct {
	uow       shared.UnitOfWork
	readStore queries.UserReadStore
	clock     clock.Clock
}

func NewUserCommands(uow shared.UnitOfWork, readStore queries.UserReadStore, clk clock.Clock) UserCommands {
	return &userCommandsImpl{
		uow:       uow,
		readStore: readStore,
		clock:     clk,
	}
}

func (uc *userCommandsImpl) Upsert(ctx context.Context, req UpsertUserRequest) (*queries.UserView, error) {
	email, err := user.NewEmail(req.Email)
	if err != nil {
		return nil, badRequest(err)
	}
	var role user.Role
	if req.Role != "" {
		if role, err = user.NewRole(req.Role); err != nil {
			return nil, badRequest(err)
		}
	}

	u, err := user.NewUser(email, req.Name, req.Photo, role, uc.clock.Now())
	if err != nil {
		if errors.Is(err, user.ErrRoleNotSelfAssignable) {
			return nil, errs.Mark(err, errs.ErrForbidden)
		}
		return nil, badRequest(err)
	}

	created, err := uc.uow.Repositories().Users().CreateIfAbsent(ctx, u)
	if err != nil {
		return nil, mapRepoErr(err, errs.ErrUserNotFound)
	}
	if created {
		slog.InfoContext(ctx, "user registered", "email", email.Value())
	}

	return uc.reload(ctx, email)
}

func (uc *userCommandsImpl) UpdateRole(ctx context.Context, emailStr, roleStr string) (*queries.UserView, error) {
	email, err := user.NewEmail(emailStr)
	if err != nil {
		return nil, badRequest(err)
	}
	role, err := user.NewRole(roleStr)
	if err != nil {
		return nil, badRequest(err)
	}

	if err := uc.uow.Repositories().Users().UpdateRole(ctx, email, role); err != nil {
		return nil, mapRepoErr(err, errs.ErrUserNotFound)
	}

	return uc.reload(ctx, email)
}

// Read-after-write: the stored record is the response
func (uc *userCommandsImpl) reload(ctx context.Context, email user.Email) (*queries.UserView, error) {
	view, err := uc.readStore.FindByEmail(ctx, email.Value())
	if err != nil {
		return nil, mapRepoErr(err, errs.ErrUserNotFound)
	}
	return view, nil
}
