package repository

import (
	"context"
	"errors"

	"building-management/internal/domain/user"
	"building-management/internal/infra"
	"building-management/internal/infra/docstore"

	"go.mongodb.org/mongo-driver/bson"
)

type UserRepository struct {
	coll docstore.Collection
}

func NewUserRepository(coll docstore.Collection) *UserRepository {
	return &UserRepository{coll: coll}
}

func (r *UserRepository) CreateIfAbsent(ctx context.Context, u *user.User) (bool, error) {
	filter := bson.M{"email": u.Email().Value()}
	update := bson.M{"$setOnInsert": bson.M{
		"email":     u.Email().Value(),
		"name":      u.Name(),
		"photo":     u.Photo(),
		"role":      u.Role().String(),
		"timestamp": u.Timestamp().UnixMilli(),
	}}

	res, err := r.coll.UpdateOne(ctx, filter, update, true)
	if err != nil {
		// Two concurrent first sign-ins race on the unique email index.
		if errors.Is(err, docstore.ErrDuplicateKey) {
			return false, nil
		}
		return false, infra.WrapRepoErr("failed to upsert user", err)
	}
	return res.UpsertedID != "", nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email user.Email) (*user.User, error) {
	var doc docstore.UserDoc
	if err := r.coll.FindOne(ctx, bson.M{"email": email.Value()}, &doc); err != nil {
		return nil, infra.WrapRepoErr("failed to find user by email", err)
	}
	u, err := toUserDomain(doc)
	if err != nil {
		return nil, infra.WrapRepoErr("stored user is malformed", err, infra.KindDBFailure)
	}
	return u, nil
}

func (r *UserRepository) UpdateRole(ctx context.Context, email user.Email, role user.Role) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"email": email.Value()},
		bson.M{"$set": bson.M{"role": role.String()}},
		false,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update user role", err)
	}
	if res.MatchedCount == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}
