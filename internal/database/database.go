package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const connectTimeout = 10 * time.Second

// Connect opens the MongoDB connection, verifies it with a ping, and
// ensures indexes. The process exits when the database is unreachable.
func Connect(uri, dbName string) *mongo.Database {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatalf("failed to connect to mongodb: %v", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("failed to ping mongodb: %v", err)
	}

	db := client.Database(dbName)
	if err := ensureIndexes(ctx, db); err != nil {
		log.Fatalf("failed to ensure indexes: %v", err)
	}

	log.Printf("connected to mongodb database %q", dbName)
	return db
}

// Disconnect closes the underlying client connection.
func Disconnect(db *mongo.Database) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	if err := db.Client().Disconnect(ctx); err != nil {
		log.Printf("mongodb disconnect: %v", err)
	}
}

// ensureIndexes creates the unique indexes the application relies on:
// display IDs per collection, admin emails, and the constant singleton key
// that caps settings/about at one document each. Display-ID uniqueness is
// the only backstop for the read-then-insert ID generator.
func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	unique := options.Index().SetUnique(true)

	displayID := mongo.IndexModel{
		Keys:    bson.D{{Key: "id", Value: 1}},
		Options: unique,
	}

	for _, coll := range []string{"categories", "products", "blogposts", "galleryitems", "faqcategories"} {
		if _, err := db.Collection(coll).Indexes().CreateOne(ctx, displayID); err != nil {
			return err
		}
	}

	if _, err := db.Collection("admins").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: unique,
	}); err != nil {
		return err
	}

	singleton := mongo.IndexModel{
		Keys:    bson.D{{Key: "key", Value: 1}},
		Options: unique,
	}
	for _, coll := range []string{"settings", "abouts"} {
		if _, err := db.Collection(coll).Indexes().CreateOne(ctx, singleton); err != nil {
			return err
		}
	}

	return nil
}
