package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/larderlog/backend/internal/models"
)

func productDoc(id primitive.ObjectID, owner, name string) bson.D {
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "user_id", Value: owner},
		{Key: "name", Value: name},
		{Key: "quantity", Value: 2.0},
	}
}

func TestStore_Insert(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("success", func(mt *mtest.T) {
		s := New[models.Product](mt.Coll)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		err := s.Insert(context.Background(), models.Product{
			ID:     primitive.NewObjectID(),
			UserID: "owner-a",
			Name:   "rice",
		})
		assert.NoError(mt, err)
	})
}

func TestStore_ListByOwner(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("returns owner documents and filters by owner", func(mt *mtest.T) {
		s := New[models.Product](mt.Coll)
		ns := mt.DB.Name() + "." + mt.Coll.Name()

		first := mtest.CreateCursorResponse(1, ns, mtest.FirstBatch,
			productDoc(primitive.NewObjectID(), "owner-a", "rice"),
			productDoc(primitive.NewObjectID(), "owner-a", "beans"),
		)
		last := mtest.CreateCursorResponse(0, ns, mtest.NextBatch)
		mt.AddMockResponses(first, last)

		docs, err := s.ListByOwner(context.Background(), "owner-a")
		assert.NoError(mt, err)
		assert.Len(mt, docs, 2)
		assert.Equal(mt, "rice", docs[0].Name)

		evt := mt.GetStartedEvent()
		assert.Equal(mt, "find", evt.CommandName)
		owner := evt.Command.Lookup("filter", "user_id")
		assert.Equal(mt, "owner-a", owner.StringValue())
	})

	mt.Run("empty result is an empty slice", func(mt *mtest.T) {
		s := New[models.Product](mt.Coll)
		ns := mt.DB.Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		docs, err := s.ListByOwner(context.Background(), "owner-b")
		assert.NoError(mt, err)
		assert.NotNil(mt, docs)
		assert.Empty(mt, docs)
	})
}

func TestStore_GetOwned(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("found", func(mt *mtest.T) {
		s := New[models.Product](mt.Coll)
		ns := mt.DB.Name() + "." + mt.Coll.Name()
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			productDoc(id, "owner-a", "rice"),
		))

		doc, err := s.GetOwned(context.Background(), "owner-a", id)
		assert.NoError(mt, err)
		assert.Equal(mt, "rice", doc.Name)
		assert.Equal(mt, "owner-a", doc.UserID)
	})

	mt.Run("missing or foreign document yields ErrNoDocuments", func(mt *mtest.T) {
		s := New[models.Product](mt.Coll)
		ns := mt.DB.Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		_, err := s.GetOwned(context.Background(), "owner-b", primitive.NewObjectID())
		assert.ErrorIs(mt, err, mongo.ErrNoDocuments)
	})
}

func TestStore_UpdateOwned(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("returns the updated document", func(mt *mtest.T) {
		s := New[models.Product](mt.Coll)
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "value", Value: productDoc(id, "owner-a", "brown rice")},
		))

		doc, err := s.UpdateOwned(context.Background(), "owner-a", id, bson.M{"name": "brown rice"})
		assert.NoError(mt, err)
		assert.Equal(mt, "brown rice", doc.Name)
	})

	mt.Run("empty set reads instead of writing", func(mt *mtest.T) {
		s := New[models.Product](mt.Coll)
		ns := mt.DB.Name() + "." + mt.Coll.Name()
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			productDoc(id, "owner-a", "rice"),
		))

		doc, err := s.UpdateOwned(context.Background(), "owner-a", id, bson.M{})
		assert.NoError(mt, err)
		assert.Equal(mt, "rice", doc.Name)

		evt := mt.GetStartedEvent()
		assert.Equal(mt, "find", evt.CommandName)
	})
}

func TestStore_DeleteOwned(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("returns the deleted document", func(mt *mtest.T) {
		s := New[models.Product](mt.Coll)
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "value", Value: productDoc(id, "owner-a", "rice")},
		))

		doc, err := s.DeleteOwned(context.Background(), "owner-a", id)
		assert.NoError(mt, err)
		assert.Equal(mt, "rice", doc.Name)
	})

	mt.Run("second delete yields ErrNoDocuments", func(mt *mtest.T) {
		s := New[models.Product](mt.Coll)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		_, err := s.DeleteOwned(context.Background(), "owner-a", primitive.NewObjectID())
		assert.ErrorIs(mt, err, mongo.ErrNoDocuments)
	})
}
