package userRepo

import (
	"context"
	"errors"

	"carexyz/models"
)

// ErrDuplicateUser is returned when a unique field (email or nid) is already taken.
var ErrDuplicateUser = errors.New("user already exists")

// UserRepository defines methods for user data access.
type UserRepository interface {
	// Create inserts a new user record.
	Create(ctx context.Context, user *models.User) error
	// GetByID retrieves a user by its hex id, or nil when absent.
	GetByID(ctx context.Context, id string) (*models.User, error)
	// GetByIDs retrieves every user whose hex id is listed. Unknown ids are skipped.
	GetByIDs(ctx context.Context, ids []string) ([]models.User, error)
	// GetByEmail retrieves a user by email including the password hash, or nil when absent.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// ExistsByEmailOrNID reports whether any user holds email or nid.
	ExistsByEmailOrNID(ctx context.Context, email, nid string) (bool, error)
	// UpsertGoogle creates or links the account for a verified Google profile.
	UpsertGoogle(ctx context.Context, profile models.GoogleProfile) (*models.User, error)
	// SetRole changes the role of the user with the given email.
	SetRole(ctx context.Context, email string, role models.Role) error
	// CountAll returns the number of users.
	CountAll(ctx context.Context) (int64, error)
}
