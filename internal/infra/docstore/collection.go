package docstore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection is the record capability handlers and repositories are given.
// Calls made with a context carrying a session take part in its transaction.
type Collection interface {
	FindOne(ctx context.Context, filter any, out any) error
	FindMany(ctx context.Context, filter any, out any, opts FindOptions) error
	InsertOne(ctx context.Context, doc any) (string, error)
	UpdateOne(ctx context.Context, filter, update any, upsert bool) (UpdateResult, error)
	DeleteOne(ctx context.Context, filter any) (int64, error)
	Count(ctx context.Context, filter any) (int64, error)
	Distinct(ctx context.Context, field string, filter any) ([]any, error)
}

type FindOptions struct {
	Sort bson.D
}

type UpdateResult struct {
	MatchedCount  int64  `json:"matchedCount"`
	ModifiedCount int64  `json:"modifiedCount"`
	UpsertedID    string `json:"upsertedId,omitempty"`
}

type mongoCollection struct {
	coll    *mongo.Collection
	timeout time.Duration
}

func (c *mongoCollection) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, c.timeout)
}

func (c *mongoCollection) FindOne(ctx context.Context, filter any, out any) error {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	return translate(c.coll.FindOne(ctx, filter).Decode(out))
}

func (c *mongoCollection) FindMany(ctx context.Context, filter any, out any, opts FindOptions) error {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	findOpts := options.Find()
	if len(opts.Sort) > 0 {
		findOpts.SetSort(opts.Sort)
	}

	cur, err := c.coll.Find(ctx, filter, findOpts)
	if err != nil {
		return translate(err)
	}
	return translate(cur.All(ctx, out))
}

func (c *mongoCollection) InsertOne(ctx context.Context, doc any) (string, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	res, err := c.coll.InsertOne(ctx, doc)
	if err != nil {
		return "", translate(err)
	}
	return idString(res.InsertedID), nil
}

func (c *mongoCollection) UpdateOne(ctx context.Context, filter, update any, upsert bool) (UpdateResult, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	res, err := c.coll.UpdateOne(ctx, filter, update, options.Update().SetUpsert(upsert))
	if err != nil {
		return UpdateResult{}, translate(err)
	}
	return UpdateResult{
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedID:    idString(res.UpsertedID),
	}, nil
}

func (c *mongoCollection) DeleteOne(ctx context.Context, filter any) (int64, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	res, err := c.coll.DeleteOne(ctx, filter)
	if err != nil {
		return 0, translate(err)
	}
	return res.DeletedCount, nil
}

func (c *mongoCollection) Count(ctx context.Context, filter any) (int64, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	n, err := c.coll.CountDocuments(ctx, filter)
	return n, translate(err)
}

func (c *mongoCollection) Distinct(ctx context.Context, field string, filter any) ([]any, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	values, err := c.coll.Distinct(ctx, field, filter)
	if err != nil {
		return nil, translate(err)
	}
	return values, nil
}

func idString(id any) string {
	switch v := id.(type) {
	case nil:
		return ""
	case primitive.ObjectID:
		return v.Hex()
	case string:
		return v
	default:
		return ""
	}
}
