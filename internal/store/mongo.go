package store

import (
	"context"
	"fmt"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// siteDocID is the fixed _id under which the whole aggregate is stored.
// The collection only ever holds this one document.
const siteDocID = "site"

// MongoStore keeps the aggregate as a single Mongo document that is replaced
// wholesale on each persist, preserving the same whole-document granularity
// as the file backend. The mutex serializes in-process update cycles; there
// is no cross-process isolation, matching the file backend.
type MongoStore struct {
	mu  sync.Mutex
	col *mongo.Collection
}

func NewMongoStore(col *mongo.Collection) *MongoStore {
	return &MongoStore{col: col}
}

type mongoDocument struct {
	ID       string `bson:"_id"`
	Document `bson:",inline"`
}

func (s *MongoStore) Load(ctx context.Context) (*Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read(ctx)
}

func (s *MongoStore) Update(ctx context.Context, mutate func(*Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.read(ctx)
	if err != nil {
		return err
	}
	if err := mutate(doc); err != nil {
		return err
	}
	repl := mongoDocument{ID: siteDocID, Document: *doc}
	opts := options.Replace().SetUpsert(true)
	if _, err := s.col.ReplaceOne(ctx, bson.M{"_id": siteDocID}, repl, opts); err != nil {
		return fmt.Errorf("persist site document: %w", err)
	}
	return nil
}

func (s *MongoStore) read(ctx context.Context) (*Document, error) {
	var md mongoDocument
	if err := s.col.FindOne(ctx, bson.M{"_id": siteDocID}).Decode(&md); err != nil {
		if err == mongo.ErrNoDocuments {
			return emptyDocument(), nil
		}
		return nil, fmt.Errorf("load site document: %w", err)
	}
	return normalize(&md.Document), nil
}
