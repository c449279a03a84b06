//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"building-management/internal/infra/docstore"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var allCollections = []string{
	docstore.Users,
	docstore.Apartments,
	docstore.Agreements,
	docstore.Announcements,
	docstore.Payments,
	docstore.Coupons,
}

// CreateTestUser upserts a user with the given role and returns its id.
func CreateTestUser(t *testing.T, db *mongo.Database, email, role string) string {
	t.Helper()

	ctx := context.Background()
	res, err := db.Collection(docstore.Users).UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{
			"$set": bson.M{"role": role},
			"$setOnInsert": bson.M{
				"name":      "Test User",
				"photo":     "",
				"timestamp": time.Now().UnixMilli(),
			},
		},
		options.Update().SetUpsert(true),
	)
	require.NoError(t, err)

	if id, ok := res.UpsertedID.(primitive.ObjectID); ok {
		return id.Hex()
	}
	var doc docstore.UserDoc
	require.NoError(t, db.Collection(docstore.Users).FindOne(ctx, bson.M{"email": email}).Decode(&doc))
	return doc.ID.Hex()
}

func CreateTestApartment(t *testing.T, db *mongo.Database, apartmentNo string, rent float64) string {
	t.Helper()

	res, err := db.Collection(docstore.Apartments).InsertOne(context.Background(), docstore.ApartmentDoc{
		ApartmentNo: apartmentNo,
		FloorNo:     "1",
		BlockName:   "A",
		Rent:        rent,
		Image:       "https://example.com/" + apartmentNo + ".jpg",
	})
	require.NoError(t, err)
	return res.InsertedID.(primitive.ObjectID).Hex()
}

// CreateTestAgreement stores an agreement directly, bypassing the lifecycle.
func CreateTestAgreement(t *testing.T, db *mongo.Database, email, apartmentID, status string) string {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Millisecond)
	doc := docstore.AgreementDoc{
		UserName:    "Test User",
		UserEmail:   email,
		ApartmentID: apartmentID,
		ApartmentNo: "A-101",
		FloorNo:     "1",
		BlockName:   "A",
		Rent:        1200,
		Status:      status,
		CreatedAt:   now,
	}
	switch status {
	case "accepted":
		doc.AcceptedDate = &now
	case "rejected":
		doc.RejectedDate = &now
	}

	res, err := db.Collection(docstore.Agreements).InsertOne(context.Background(), doc)
	require.NoError(t, err)
	return res.InsertedID.(primitive.ObjectID).Hex()
}

func CreateTestCoupon(t *testing.T, db *mongo.Database, code string, percent float64) string {
	t.Helper()

	res, err := db.Collection(docstore.Coupons).InsertOne(context.Background(), docstore.CouponDoc{
		CouponCode:         code,
		DiscountPercentage: percent,
		CouponDescription:  code + " discount",
	})
	require.NoError(t, err)
	return res.InsertedID.(primitive.ObjectID).Hex()
}

func CountDocuments(t *testing.T, db *mongo.Database, collection string, filter bson.M) int64 {
	t.Helper()

	n, err := db.Collection(collection).CountDocuments(context.Background(), filter)
	require.NoError(t, err)
	return n
}

// inserts the apartments the building starts with
func SeedReferenceData(db *mongo.Database) error {
	ctx := context.Background()

	docs := []any{
		docstore.ApartmentDoc{ApartmentNo: "A-101", FloorNo: "1", BlockName: "A", Rent: 1200},
		docstore.ApartmentDoc{ApartmentNo: "A-102", FloorNo: "1", BlockName: "A", Rent: 1250},
		docstore.ApartmentDoc{ApartmentNo: "B-201", FloorNo: "2", BlockName: "B", Rent: 1500},
	}
	_, err := db.Collection(docstore.Apartments).InsertMany(ctx, docs)
	return err
}

// empties every collection, keeping indexes, and reseeds reference data
func ResetDB(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	for _, name := range allCollections {
		if _, err := db.Collection(name).DeleteMany(ctx, bson.M{}); err != nil {
			return err
		}
	}

	return SeedReferenceData(db)
}
