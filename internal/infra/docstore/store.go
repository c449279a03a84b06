package docstore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

const (
	Users         = "users"
	Apartments    = "apartments"
	Agreements    = "agreements"
	Announcements = "announcements"
	Payments      = "payments"
	Coupons       = "coupons"
)

// Store owns the named collections of the service database.
type Store struct {
	client  *mongo.Client
	db      *mongo.Database
	timeout time.Duration
}

func NewStore(client *mongo.Client, dbName string, operationTimeout time.Duration) *Store {
	return &Store{
		client:  client,
		db:      client.Database(dbName),
		timeout: operationTimeout,
	}
}

func (s *Store) Collection(name string) Collection {
	return &mongoCollection{coll: s.db.Collection(name), timeout: s.timeout}
}

func (s *Store) Client() *mongo.Client {
	return s.client
}

func (s *Store) Database() *mongo.Database {
	return s.db
}

// Drop removes every collection of the database. Used by test fixtures.
func (s *Store) Drop(ctx context.Context) error {
	return s.db.Drop(ctx)
}
