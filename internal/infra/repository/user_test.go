//go:build unit

package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"building-management/internal/domain/user"
	"building-management/internal/infra"
	"building-management/internal/infra/docstore"
	docstoremock "building-management/tests/mock/docstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func newTestUser(t *testing.T) *user.User {
	t.Helper()
	email, err := user.NewEmail("tenant@example.com")
	require.NoError(t, err)
	u, err := user.NewUser(email, "Tenant", "https://img/p.png", user.RoleUser, time.UnixMilli(1700000000000))
	require.NoError(t, err)
	return u
}

func TestUserRepository_CreateIfAbsent(t *testing.T) {
	tests := []struct {
		name        string
		result      docstore.UpdateResult
		mockErr     error
		wantCreated bool
		wantKind    infra.RepositoryErrorKind
	}{
		{name: "inserted", result: docstore.UpdateResult{UpsertedID: "65f000000000000000000001"}, wantCreated: true},
		{name: "already present", result: docstore.UpdateResult{MatchedCount: 1}},
		{name: "lost race on unique email", mockErr: docstore.ErrDuplicateKey},
		{name: "store failure", mockErr: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			coll := new(docstoremock.Collection)
			u := newTestUser(t)

			expectedUpdate := bson.M{"$setOnInsert": bson.M{
				"email":     "tenant@example.com",
				"name":      "Tenant",
				"photo":     "https://img/p.png",
				"role":      "user",
				"timestamp": int64(1700000000000),
			}}
			coll.On("UpdateOne", mock.Anything, bson.M{"email": "tenant@example.com"}, expectedUpdate, true).
				Return(tt.result, tt.mockErr)

			created, err := NewUserRepository(coll).CreateIfAbsent(context.Background(), u)

			if tt.wantKind != "" {
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantCreated, created)
			}
			coll.AssertExpectations(t)
		})
	}
}

func TestUserRepository_FindByEmail(t *testing.T) {
	email, _ := user.NewEmail("member@example.com")

	t.Run("found", func(t *testing.T) {
		coll := new(docstoremock.Collection)
		coll.On("FindOne", mock.Anything, bson.M{"email": "member@example.com"}, mock.Anything).
			Return(docstore.UserDoc{Email: "member@example.com", Name: "M", Role: "member", Timestamp: 1700000000000}, nil)

		u, err := NewUserRepository(coll).FindByEmail(context.Background(), email)
		require.NoError(t, err)
		assert.Equal(t, user.RoleMember, u.Role())
		assert.Equal(t, "M", u.Name())
		assert.Equal(t, int64(1700000000000), u.Timestamp().UnixMilli())
	})

	t.Run("not found", func(t *testing.T) {
		coll := new(docstoremock.Collection)
		coll.On("FindOne", mock.Anything, mock.Anything, mock.Anything).Return(nil, docstore.ErrNoDocument)

		_, err := NewUserRepository(coll).FindByEmail(context.Background(), email)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("unknown stored role", func(t *testing.T) {
		coll := new(docstoremock.Collection)
		coll.On("FindOne", mock.Anything, mock.Anything, mock.Anything).
			Return(docstore.UserDoc{Email: "member@example.com", Role: "owner"}, nil)

		_, err := NewUserRepository(coll).FindByEmail(context.Background(), email)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.True(t, errors.Is(err, user.ErrInvalidRole))
	})
}

func TestUserRepository_UpdateRole(t *testing.T) {
	email, _ := user.NewEmail("tenant@example.com")

	tests := []struct {
		name     string
		result   docstore.UpdateResult
		mockErr  error
		wantKind infra.RepositoryErrorKind
	}{
		{name: "updated", result: docstore.UpdateResult{MatchedCount: 1, ModifiedCount: 1}},
		{name: "same role", result: docstore.UpdateResult{MatchedCount: 1}},
		{name: "absent user", result: docstore.UpdateResult{}, wantKind: infra.KindNotFound},
		{name: "store failure", mockErr: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			coll := new(docstoremock.Collection)
			coll.On("UpdateOne", mock.Anything,
				bson.M{"email": "tenant@example.com"},
				bson.M{"$set": bson.M{"role": "member"}},
				false,
			).Return(tt.result, tt.mockErr)

			err := NewUserRepository(coll).UpdateRole(context.Background(), email, user.RoleMember)
			if tt.wantKind != "" {
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				assert.NoError(t, err)
			}
			coll.AssertExpectations(t)
		})
	}
}
