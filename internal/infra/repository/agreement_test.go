//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"building-management/internal/domain/agreement"
	"building-management/internal/domain/user"
	"building-management/internal/infra"
	"building-management/internal/infra/docstore"
	docstoremock "building-management/tests/mock/docstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestAgreementRepository_Create(t *testing.T) {
	email, _ := user.NewEmail("tenant@example.com")
	apt, err := agreement.NewApartmentRef("65f0000000000000000000aa", "A1", "1", "A", 1200)
	require.NoError(t, err)
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	a, err := agreement.NewAgreement(email, "Tenant", apt, now)
	require.NoError(t, err)

	coll := new(docstoremock.Collection)
	coll.On("InsertOne", mock.Anything, mock.MatchedBy(func(doc docstore.AgreementDoc) bool {
		return doc.Status == "pending" &&
			doc.AcceptedDate == nil && doc.RejectedDate == nil &&
			doc.UserEmail == "tenant@example.com" &&
			doc.ApartmentID == "65f0000000000000000000aa" &&
			doc.CreatedAt.Equal(now)
	})).Return("65f000000000000000000001", nil)

	id, err := NewAgreementRepository(coll).Create(context.Background(), a)
	require.NoError(t, err)
	assert.Equal(t, "65f000000000000000000001", id)
	coll.AssertExpectations(t)
}

func TestAgreementRepository_FindByID(t *testing.T) {
	oid := primitive.NewObjectID()
	accepted := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	t.Run("found", func(t *testing.T) {
		coll := new(docstoremock.Collection)
		coll.On("FindOne", mock.Anything, bson.M{"_id": oid}, mock.Anything).Return(docstore.AgreementDoc{
			ID:           oid,
			UserEmail:    "tenant@example.com",
			ApartmentID:  "apt",
			Status:       "accepted",
			AcceptedDate: &accepted,
		}, nil)

		a, err := NewAgreementRepository(coll).FindByID(context.Background(), oid.Hex())
		require.NoError(t, err)
		assert.Equal(t, oid.Hex(), a.ID())
		assert.Equal(t, agreement.StatusAccepted, a.Status())
		assert.Equal(t, &accepted, a.AcceptedDate())
	})

	t.Run("invalid id never reaches the store", func(t *testing.T) {
		coll := new(docstoremock.Collection)
		_, err := NewAgreementRepository(coll).FindByID(context.Background(), "not-an-id")
		assert.True(t, infra.IsKind(err, infra.KindInvalidID))
		coll.AssertNotCalled(t, "FindOne", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("not found", func(t *testing.T) {
		coll := new(docstoremock.Collection)
		coll.On("FindOne", mock.Anything, mock.Anything, mock.Anything).Return(nil, docstore.ErrNoDocument)
		_, err := NewAgreementRepository(coll).FindByID(context.Background(), oid.Hex())
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestAgreementRepository_SaveDecision(t *testing.T) {
	oid := primitive.NewObjectID()
	email, _ := user.NewEmail("tenant@example.com")
	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	a := agreement.ReconstructAgreement(oid.Hex(), agreement.Tenant{Email: email}, agreement.ApartmentRef{ID: "apt"},
		agreement.StatusPending, now, nil, nil)
	_, err := a.Transition(agreement.StatusAccepted, now)
	require.NoError(t, err)

	coll := new(docstoremock.Collection)
	var nilTime *time.Time
	coll.On("UpdateOne", mock.Anything,
		bson.M{"_id": oid, "status": "pending"},
		bson.M{"$set": bson.M{"status": "accepted", "acceptedDate": a.AcceptedDate(), "rejectedDate": nilTime}},
		false,
	).Return(docstore.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil)

	counts, err := NewAgreementRepository(coll).SaveDecision(context.Background(), a, agreement.StatusPending)
	require.NoError(t, err)
	assert.Equal(t, int64(1), counts.Matched)
	assert.Equal(t, int64(1), counts.Modified)
	coll.AssertExpectations(t)
}

func TestAgreementRepository_DeleteSettleable(t *testing.T) {
	oid := primitive.NewObjectID()

	tests := []struct {
		name    string
		deleted int64
		mockErr error
		wantErr bool
	}{
		{name: "accepted agreement removed", deleted: 1},
		{name: "nothing to settle", deleted: 0},
		{name: "store failure", mockErr: assert.AnError, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			coll := new(docstoremock.Collection)
			coll.On("DeleteOne", mock.Anything, bson.M{"_id": oid, "status": "accepted"}).Return(tt.deleted, tt.mockErr)

			n, err := NewAgreementRepository(coll).DeleteSettleable(context.Background(), oid.Hex())
			if tt.wantErr {
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.deleted, n)
		})
	}
}
