package user

import (
	"context"
	"errors"
	"strings"

	userRepo "carexyz/database/repository/user"
	"carexyz/models"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	bcryptCost        = 10
	duplicateUserText = "User with this email or NID already exists"
)

// Register creates a password account with the user role.
func (s *DefaultUserService) Register(ctx context.Context, req models.RegisterUserRequest) (*models.User, error) {
	req.Email = normalizeEmail(req.Email)
	req.NID = strings.TrimSpace(req.NID)
	req.Name = strings.TrimSpace(req.Name)
	req.Contact = strings.TrimSpace(req.Contact)
	if req.NID == "" || req.Name == "" || req.Email == "" || req.Contact == "" || req.Password == "" {
		return nil, models.NewValidationError("All fields are required")
	}
	if err := VerifyPasswordComplexity(req.Password); err != nil {
		return nil, err
	}

	exists, err := s.Repo.ExistsByEmailOrNID(ctx, req.Email, req.NID)
	if err != nil {
		s.logger().Error("Register: duplicate check failed", zap.Error(err))
		return nil, models.NewStoreError("Registration failed, please try again", err)
	}
	if exists {
		return nil, models.NewValidationError(duplicateUserText)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		s.logger().Error("Register: failed to hash password", zap.Error(err))
		return nil, err
	}

	u := &models.User{
		NID:          req.NID,
		Name:         req.Name,
		Email:        req.Email,
		Contact:      req.Contact,
		PasswordHash: string(hash),
		Role:         models.RoleUser,
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		if errors.Is(err, userRepo.ErrDuplicateUser) {
			return nil, models.NewValidationError(duplicateUserText)
		}
		s.logger().Error("Register: failed to create user", zap.Error(err))
		return nil, models.NewStoreError("Registration failed, please try again", err)
	}

	s.logger().Info("Register: user created", zap.String("userId", u.ID.Hex()))
	return u, nil
}
