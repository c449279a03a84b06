package queries

import (
	"context"
	"strings"

	"building-management/internal/domain/user"
	"building-management/internal/infra"
	"building-management/internal/pkg/errs"
)

type UserQueries interface {
	GetByEmail(ctx context.Context, email string) (*UserView, error)
	ListByRole(ctx context.Context, role string) ([]*UserView, error)
	// CurrentRole resolves the role a caller holds right now.
	CurrentRole(ctx context.Context, email string) (user.Role, error)
}

type UserReadStore interface {
	FindByEmail(ctx context.Context, email string) (*UserView, error)
	FindByRole(ctx context.Context, role string) ([]*UserView, error)
}

type userQueriesImpl struct {
	readStore UserReadStore
}

func NewUserQueries(readStore UserReadStore) UserQueries {
	return &userQueriesImpl{
		readStore: readStore,
	}
}

func (q *userQueriesImpl) GetByEmail(ctx context.Context, email string) (*UserView, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, errs.Wrap(errs.ErrBadRequest, "email is required")
	}

	u, err := q.readStore.FindByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return u, nil
}

func (q *userQueriesImpl) ListByRole(ctx context.Context, role string) ([]*UserView, error) {
	role = strings.TrimSpace(role)
	if role == "" {
		return nil, errs.Wrap(errs.ErrBadRequest, "role is required")
	}

	users, err := q.readStore.FindByRole(ctx, role)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nonNil(users), nil
}

func (q *userQueriesImpl) CurrentRole(ctx context.Context, email string) (user.Role, error) {
	u, err := q.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	role, err := user.NewRole(u.Role)
	if err != nil {
		return "", errs.Mark(err, errs.ErrForbidden)
	}
	return role, nil
}

func nonNil[T any](items []*T) []*T {
	if items == nil {
		return []*T{}
	}
	return items
}
