// File: database/repository/user/userMongoCrud.go
package userRepo

import (
	"context"
	"fmt"
	"time"

	"carexyz/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a new user document.
func (r *MongoUserRepo) Create(ctx context.Context, user *models.User) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	now := r.now()
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	if user.Role == "" {
		user.Role = models.RoleUser
	}
	user.CreatedAt = now
	user.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("failed to create user %s: %w", user.Email, ErrDuplicateUser)
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// UpsertGoogle links googleId and image to the account for profile.Email,
// creating the account when none exists.
func (r *MongoUserRepo) UpsertGoogle(ctx context.Context, profile models.GoogleProfile) (*models.User, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	now := r.now()
	update := bson.M{
		"$set": bson.M{
			"googleId":  profile.Subject,
			"image":     profile.Image,
			"updatedAt": now,
		},
		"$setOnInsert": bson.M{
			"name":      profile.Name,
			"provider":  "google",
			"role":      models.RoleUser,
			"createdAt": now,
		},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After).
		SetProjection(publicProjection)

	var user models.User
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"email": profile.Email}, update, opts).Decode(&user); err != nil {
		return nil, fmt.Errorf("failed to upsert google user %s: %w", profile.Email, err)
	}
	return &user, nil
}

// SetRole changes the role of the user with the given email.
func (r *MongoUserRepo) SetRole(ctx context.Context, email string, role models.Role) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"role": role, "updatedAt": r.now()}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"email": email}, update)
	if err != nil {
		return fmt.Errorf("failed to set role for %s: %w", email, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("user with email %s not found", email)
	}
	return nil
}
