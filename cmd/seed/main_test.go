package main

import (
	"context"
	"errors"
	"testing"

	"carexyz/models"
	"carexyz/services/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type stubUserService struct {
	user.UserService
	admin *models.User
	err   error
}

func (s stubUserService) EnsureAdmin(context.Context, user.AdminSeed) (*models.User, error) {
	return s.admin, s.err
}

func TestSeedAdminReportsFailure(t *testing.T) {
	cause := errors.New("duplicate key")
	err := seedAdmin(context.Background(), stubUserService{err: cause}, user.DefaultAdminSeed, zap.NewNop())

	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "admin@care.xyz")
}

func TestSeedAdminSuccess(t *testing.T) {
	admin := &models.User{ID: primitive.NewObjectID(), Email: "admin@care.xyz", Role: models.RoleAdmin}
	err := seedAdmin(context.Background(), stubUserService{admin: admin}, user.DefaultAdminSeed, zap.NewNop())
	assert.NoError(t, err)
}
