package userRepo

import (
	"context"
	"testing"
	"time"

	"carexyz/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

var fixedNow = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

func newTestRepo(mt *mtest.T) *MongoUserRepo {
	return &MongoUserRepo{coll: mt.Coll, now: func() time.Time { return fixedNow }}
}

func ns(mt *mtest.T) string {
	return mt.Coll.Database().Name() + "." + mt.Coll.Name()
}

func TestMongoUserRepo(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("create defaults role and timestamps", func(mt *mtest.T) {
		repo := newTestRepo(mt)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		u := &models.User{Name: "Rahim", Email: "rahim@care.xyz", NID: "1234567890"}
		require.NoError(t, repo.Create(ctx, u))
		assert.False(t, u.ID.IsZero())
		assert.Equal(t, models.RoleUser, u.Role)
		assert.Equal(t, fixedNow, u.CreatedAt)
	})

	mt.Run("create maps duplicate key", func(mt *mtest.T) {
		repo := newTestRepo(mt)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index: 0, Code: 11000, Message: "E11000 duplicate key error",
		}))

		err := repo.Create(ctx, &models.User{Email: "rahim@care.xyz"})
		assert.ErrorIs(t, err, ErrDuplicateUser)
	})

	mt.Run("get by email", func(mt *mtest.T) {
		repo := newTestRepo(mt)
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt), mtest.FirstBatch, bson.D{
			{Key: "_id", Value: id},
			{Key: "email", Value: "rahim@care.xyz"},
			{Key: "password", Value: "$2a$10$hash"},
			{Key: "role", Value: "admin"},
		}))

		u, err := repo.GetByEmail(ctx, "rahim@care.xyz")
		require.NoError(t, err)
		require.NotNil(t, u)
		assert.Equal(t, id, u.ID)
		assert.Equal(t, "$2a$10$hash", u.PasswordHash)
		assert.Equal(t, models.RoleAdmin, u.Role)
	})

	mt.Run("get by email missing", func(mt *mtest.T) {
		repo := newTestRepo(mt)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt), mtest.FirstBatch))

		u, err := repo.GetByEmail(ctx, "ghost@care.xyz")
		require.NoError(t, err)
		assert.Nil(t, u)
	})

	mt.Run("get by ids skips malformed ids", func(mt *mtest.T) {
		repo := newTestRepo(mt)
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt), mtest.FirstBatch, bson.D{
			{Key: "_id", Value: id},
			{Key: "name", Value: "Rahim"},
			{Key: "email", Value: "rahim@care.xyz"},
			{Key: "contact", Value: "01711111111"},
		}))

		users, err := repo.GetByIDs(ctx, []string{id.Hex(), "bogus"})
		require.NoError(t, err)
		require.Len(t, users, 1)
		assert.Equal(t, "01711111111", users[0].Contact)
	})

	mt.Run("get by ids without valid ids skips the query", func(mt *mtest.T) {
		repo := newTestRepo(mt)

		users, err := repo.GetByIDs(ctx, []string{"bogus"})
		require.NoError(t, err)
		assert.Empty(t, users)
	})

	mt.Run("exists by email or nid", func(mt *mtest.T) {
		repo := newTestRepo(mt)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt), mtest.FirstBatch, bson.D{{Key: "n", Value: int32(1)}}))

		exists, err := repo.ExistsByEmailOrNID(ctx, "rahim@care.xyz", "1234567890")
		require.NoError(t, err)
		assert.True(t, exists)
	})

	mt.Run("upsert google", func(mt *mtest.T) {
		repo := newTestRepo(mt)
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: bson.D{
			{Key: "_id", Value: id},
			{Key: "email", Value: "karim@gmail.com"},
			{Key: "name", Value: "Karim"},
			{Key: "provider", Value: "google"},
			{Key: "role", Value: "user"},
		}}))

		u, err := repo.UpsertGoogle(ctx, models.GoogleProfile{Subject: "g-1", Email: "karim@gmail.com", Name: "Karim"})
		require.NoError(t, err)
		assert.Equal(t, id, u.ID)
		assert.Equal(t, "google", u.Provider)
	})

	mt.Run("set role requires a match", func(mt *mtest.T) {
		repo := newTestRepo(mt)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}, bson.E{Key: "nModified", Value: 0}))

		assert.Error(t, repo.SetRole(ctx, "ghost@care.xyz", models.RoleAdmin))
	})
}
