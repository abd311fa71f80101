package user

import (
	"context"

	userRepo "carexyz/database/repository/user"
	"carexyz/models"
	"carexyz/utils"

	"go.uber.org/zap"
)

// UserService covers account registration and sign-in.
type UserService interface {
	Register(ctx context.Context, req models.RegisterUserRequest) (*models.User, error)
	Authenticate(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
	GoogleSignIn(ctx context.Context, idToken string) (*models.AuthResponse, error)
	EnsureAdmin(ctx context.Context, seed AdminSeed) (*models.User, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo   userRepo.UserRepository
	Tokens *utils.TokenIssuer
	// Google is optional; nil disables Google sign-in.
	Google GoogleTokenVerifier
	Logger *zap.Logger
}

func (s *DefaultUserService) logger() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return zap.NewNop()
}
