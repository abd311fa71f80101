package user

import (
	"context"
	"fmt"

	"carexyz/models"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const invalidCredentialsText = "Invalid email or password"

// Authenticate checks email and password and issues a session token.
func (s *DefaultUserService) Authenticate(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	email := normalizeEmail(req.Email)
	if email == "" || req.Password == "" {
		return nil, models.NewValidationError("Email and password are required")
	}

	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		s.logger().Error("Authenticate: lookup failed", zap.Error(err))
		return nil, models.NewStoreError("Authentication failed, please try again", err)
	}
	if u == nil {
		return nil, models.NewUnauthorizedError(invalidCredentialsText)
	}
	if u.PasswordHash == "" {
		return nil, models.NewUnauthorizedError("Please use Google sign-in for this account")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, models.NewUnauthorizedError(invalidCredentialsText)
	}

	return s.issue(u)
}

func (s *DefaultUserService) issue(u *models.User) (*models.AuthResponse, error) {
	if u.Role == "" {
		u.Role = models.RoleUser
	}
	token, err := s.Tokens.GenerateToken(u.ID.Hex(), u.Email, string(u.Role))
	if err != nil {
		s.logger().Error("failed to issue token", zap.String("userId", u.ID.Hex()), zap.Error(err))
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return &models.AuthResponse{Token: token, User: u.Summary()}, nil
}
