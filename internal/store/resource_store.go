// Package store provides owner-scoped CRUD access to resource collections.
// Every read and write carries the owner filter so a caller can only ever
// see or mutate their own documents.
package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store wraps a collection of one resource entity type.
type Store[T any] struct {
	coll *mongo.Collection
}

// New creates a Store backed by the given collection.
func New[T any](coll *mongo.Collection) *Store[T] {
	return &Store[T]{coll: coll}
}

// Insert writes a new document. The caller stamps id, owner and createdAt.
func (s *Store[T]) Insert(ctx context.Context, doc T) error {
	_, err := s.coll.InsertOne(ctx, doc)
	return err
}

// ListByOwner returns the owner's documents, newest first.
func (s *Store[T]) ListByOwner(ctx context.Context, owner string) ([]T, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := s.coll.Find(ctx, bson.M{"user_id": owner}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	docs := []T{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// GetOwned returns a single document. A document belonging to another
// owner is indistinguishable from a missing one: both yield
// mongo.ErrNoDocuments.
func (s *Store[T]) GetOwned(ctx context.Context, owner string, id primitive.ObjectID) (T, error) {
	var doc T
	err := s.coll.FindOne(ctx, bson.M{"_id": id, "user_id": owner}).Decode(&doc)
	return doc, err
}

// UpdateOwned applies a partial $set and returns the updated document.
func (s *Store[T]) UpdateOwned(ctx context.Context, owner string, id primitive.ObjectID, set bson.M) (T, error) {
	var doc T
	if len(set) == 0 {
		return s.GetOwned(ctx, owner, id)
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := s.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "user_id": owner},
		bson.M{"$set": set},
		opts,
	).Decode(&doc)
	return doc, err
}

// DeleteOwned hard-deletes a document and returns it. Deleting an absent
// or foreign document yields mongo.ErrNoDocuments.
func (s *Store[T]) DeleteOwned(ctx context.Context, owner string, id primitive.ObjectID) (T, error) {
	var doc T
	err := s.coll.FindOneAndDelete(ctx, bson.M{"_id": id, "user_id": owner}).Decode(&doc)
	return doc, err
}

// CountByOwner returns the number of documents the owner has.
func (s *Store[T]) CountByOwner(ctx context.Context, owner string) (int64, error) {
	return s.coll.CountDocuments(ctx, bson.M{"user_id": owner})
}

// DeleteAllByOwner removes every document the owner has. Used when an
// account is deleted.
func (s *Store[T]) DeleteAllByOwner(ctx context.Context, owner string) (int64, error) {
	res, err := s.coll.DeleteMany(ctx, bson.M{"user_id": owner})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
