package readstore

import (
	"context"

	"building-management/internal/infra"
	"building-management/internal/infra/docstore"
	"building-management/internal/usecase/queries"

	"go.mongodb.org/mongo-driver/bson"
)

type UserReadStore struct {
	users docstore.Collection
}

func NewUserReadStore(users docstore.Collection) *UserReadStore {
	return &UserReadStore{users: users}
}

func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.UserView, error) {
	var doc docstore.UserDoc
	if err := r.users.FindOne(ctx, bson.M{"email": email}, &doc); err != nil {
		return nil, infra.WrapRepoErr("failed to find user by email", err)
	}
	view, err := toView[queries.UserView](&doc)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to map user", err, infra.KindDBFailure)
	}
	return view, nil
}

func (r *UserReadStore) FindByRole(ctx context.Context, role string) ([]*queries.UserView, error) {
	var docs []docstore.UserDoc
	if err := r.users.FindMany(ctx, bson.M{"role": role}, &docs, docstore.FindOptions{}); err != nil {
		return nil, infra.WrapRepoErr("failed to list users by role", err)
	}
	views, err := toViews[queries.UserView](docs)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to map users", err, infra.KindDBFailure)
	}
	return views, nil
}
