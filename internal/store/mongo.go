// Package store owns the MongoDB connection shared by the repositories.
//
// One database: users, plants and orders collections, plus a logs collection
// fed by the async log sink. There is no schema enforcement beyond what each
// handler writes.
package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shashiranjanraj/plantnet/config"
)

// Collection names.
const (
	Users  = "users"
	Plants = "plants"
	Orders = "orders"
	Logs   = "logs"
)

var (
	client *mongo.Client
	db     *mongo.Database
)

// Connect opens the MongoDB client, pings the deployment, and selects the
// configured database. Returns an error instead of exiting so the caller can
// shut down gracefully.
func Connect() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOpts := options.Client().ApplyURI(config.MongoURI()).
		SetConnectTimeout(5 * time.Second).
		SetServerSelectionTimeout(5 * time.Second).
		SetMaxPoolSize(25)

	c, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return fmt.Errorf("store: connect: %w", err)
	}

	if err := c.Ping(ctx, nil); err != nil {
		_ = c.Disconnect(context.Background())
		return fmt.Errorf("store: ping: %w", err)
	}

	client = c
	db = c.Database(config.MongoDB())
	return nil
}

// Disconnect closes the client. Safe to call when Connect never ran.
func Disconnect(ctx context.Context) error {
	if client == nil {
		return nil
	}
	return client.Disconnect(ctx)
}

// Database returns the selected database, or nil before Connect.
func Database() *mongo.Database {
	return db
}

// Use points the repositories at the given database handle. Tests install a
// mock deployment's database here; pass nil to detach.
func Use(database *mongo.Database) {
	db = database
}

// Collection returns a handle to the named collection, or nil before
// Connect. Repositories constructed without a live store (e.g. for route
// listing) only dereference the handle at request time.
func Collection(name string) *mongo.Collection {
	if db == nil {
		return nil
	}
	return db.Collection(name)
}
