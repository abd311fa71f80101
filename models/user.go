// models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role is the privilege level of an account.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User represents a platform account.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	NID          string             `bson:"nid,omitempty" json:"nid,omitempty"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`
	Contact      string             `bson:"contact,omitempty" json:"contact,omitempty"`
	PasswordHash string             `bson:"password,omitempty" json:"-"`
	Role         Role               `bson:"role" json:"role"`
	Provider     string             `bson:"provider,omitempty" json:"provider,omitempty"`
	GoogleID     string             `bson:"googleId,omitempty" json:"-"`
	Image        string             `bson:"image,omitempty" json:"image,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// UserSummary is the public view of a user returned by the auth endpoints.
type UserSummary struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  Role   `json:"role,omitempty"`
}

// Summary projects u into its public view.
func (u *User) Summary() UserSummary {
	return UserSummary{ID: u.ID.Hex(), Email: u.Email, Name: u.Name, Role: u.Role}
}

// GoogleProfile is the verified identity from a Google ID token.
type GoogleProfile struct {
	Subject string
	Email   string
	Name    string
	Image   string
}
