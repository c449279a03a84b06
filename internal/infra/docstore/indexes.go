package docstore

import (
	"context"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type indexSpec struct {
	collection string
	model      mongo.IndexModel
}

var indexes = []indexSpec{
	{Users, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("users_email_unique"),
	}},
	{Coupons, mongo.IndexModel{
		Keys:    bson.D{{Key: "couponCode", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("coupons_code_unique"),
	}},
	{Payments, mongo.IndexModel{
		Keys: bson.D{{Key: "transactionId", Value: 1}},
		// Payments recorded without a provider transaction id do not collide.
		Options: options.Index().
			SetUnique(true).
			SetName("payments_transaction_unique").
			SetPartialFilterExpression(bson.M{"transactionId": bson.M{"$type": "string"}}),
	}},
	{Payments, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}, {Key: "month", Value: 1}},
		Options: options.Index().SetName("payments_email_month"),
	}},
	{Agreements, mongo.IndexModel{
		Keys:    bson.D{{Key: "status", Value: 1}},
		Options: options.Index().SetName("agreements_status"),
	}},
	{Announcements, mongo.IndexModel{
		Keys:    bson.D{{Key: "createdAt", Value: -1}},
		Options: options.Index().SetName("announcements_created_at"),
	}},
}

// EnsureIndexes creates the indexes the service relies on. Existing indexes
// with the same definition are left untouched.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	for _, idx := range indexes {
		name, err := s.db.Collection(idx.collection).Indexes().CreateOne(ctx, idx.model)
		if err != nil {
			return fmt.Errorf("failed to create index on %s: %w", idx.collection, err)
		}
		slog.Debug("index ensured", "collection", idx.collection, "index", name)
	}
	return nil
}
