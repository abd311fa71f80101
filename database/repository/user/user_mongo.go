package userRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// CollectionName is the MongoDB collection users are stored in.
const CollectionName = "users"

// publicProjection hides credentials from read paths that never need them.
var publicProjection = bson.M{"password": 0, "googleId": 0}

// MongoUserRepo implements UserRepository using MongoDB.
type MongoUserRepo struct {
	coll *mongo.Collection
	now  func() time.Time
}

// NewMongoUserRepo creates a UserRepository backed by db.
func NewMongoUserRepo(db *mongo.Database) *MongoUserRepo {
	return &MongoUserRepo{coll: db.Collection(CollectionName), now: time.Now}
}

// newContext derives a context with the given timeout from ctx.
func newContext(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, timeout)
}
