package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/shashiranjanraj/laziz/config"
)

var (
	Client *mongo.Client
	DB     *mongo.Database
)

// Connect opens the MongoDB client and pings the primary.
// Returns an error instead of calling log.Fatal so the caller can
// shut down gracefully.
func Connect(ctx context.Context) error {
	opts := options.Client().
		ApplyURI(config.MongoURI()).
		SetMaxPoolSize(25).
		SetMaxConnIdleTime(2 * time.Minute)

	var err error
	Client, err = mongo.Connect(ctx, opts)
	if err != nil {
		return fmt.Errorf("database: connect: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := Client.Ping(pingCtx, readpref.Primary()); err != nil {
		return fmt.Errorf("database: ping: %w", err)
	}

	DB = Client.Database(config.MongoDB())
	return nil
}

// Disconnect closes the client. Safe to call when Connect never ran.
func Disconnect(ctx context.Context) error {
	if Client == nil {
		return nil
	}
	return Client.Disconnect(ctx)
}

// Collection returns a handle on the named collection of the app database.
func Collection(name string) *mongo.Collection {
	return DB.Collection(name)
}

// EnsureIndexes creates the indexes the menu queries rely on.
// Index creation is idempotent, so this runs at every boot.
func EnsureIndexes(ctx context.Context) error {
	_, err := Collection("categories").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "order", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("database: index categories.order: %w", err)
	}

	_, err = Collection("products").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "categoryId", Value: 1}, {Key: "order", Value: 1}}},
		{Keys: bson.D{{Key: "isFeatured", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("database: index products: %w", err)
	}
	return nil
}
