package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Predefined errors for store operations
var (
	ErrNotConfigured    = errors.New("store: database not configured")
	ErrDocumentNotFound = errors.New("store: document not found")
)

const pingTimeout = 5 * time.Second

// MongoStore implements the DocumentStorer interface backed by a MongoDB
// database.
type MongoStore struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect dials the document store and verifies the connection with a ping.
// Callers that want connect-or-null semantics treat any returned error as
// "no store" and continue without one.
func Connect(ctx context.Context, uri, dbName string) (*MongoStore, error) {
	if uri == "" || dbName == "" {
		return nil, ErrNotConfigured
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("store: failed to connect: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("store: failed to ping database: %w", err)
	}

	return &MongoStore{client: client, db: client.Database(dbName)}, nil
}

// Name returns the name of the connected database.
func (s *MongoStore) Name() string {
	return s.db.Name()
}

func (s *MongoStore) Count(ctx context.Context, collection string, filter bson.M) (int64, error) {
	count, err := s.db.Collection(collection).CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("store: Count on %s failed: %w", collection, err)
	}
	return count, nil
}

// Insert stores one document and returns it as persisted, including the
// store-assigned identifier.
func (s *MongoStore) Insert(ctx context.Context, collection string, doc interface{}) (bson.M, error) {
	res, err := s.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("store: Insert into %s failed: %w", collection, err)
	}

	var stored bson.M
	err = s.db.Collection(collection).FindOne(ctx, bson.M{"_id": res.InsertedID}).Decode(&stored)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrDocumentNotFound
		}
		return nil, fmt.Errorf("store: Insert read-back from %s failed: %w", collection, err)
	}
	return stored, nil
}

// Find returns at most limit documents matching the filter by equality on
// every given key. No sort is applied; result order is store-default.
func (s *MongoStore) Find(ctx context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error) {
	cursor, err := s.db.Collection(collection).Find(ctx, filter, options.Find().SetLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("store: Find on %s failed: %w", collection, err)
	}

	docs := make([]bson.M, 0, limit)
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("store: Find on %s failed to decode documents: %w", collection, err)
	}
	return docs, nil
}

func (s *MongoStore) CollectionNames(ctx context.Context) ([]string, error) {
	names, err := s.db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("store: listing collections failed: %w", err)
	}
	return names, nil
}

func (s *MongoStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

// Close releases the underlying connection pool.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
