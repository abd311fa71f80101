package user

import (
	"context"
	"fmt"

	"carexyz/models"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AdminSeed describes the bootstrap administrator account.
type AdminSeed struct {
	Email    string
	Password string
	Name     string
	NID      string
	Contact  string
}

// DefaultAdminSeed is the account created by the seed command.
var DefaultAdminSeed = AdminSeed{
	Email:    "admin@care.xyz",
	Password: "Admin@123",
	Name:     "Admin User",
	NID:      "0000000000",
	Contact:  "01700000000",
}

// EnsureAdmin creates the admin account, or promotes it when it already exists.
func (s *DefaultUserService) EnsureAdmin(ctx context.Context, seed AdminSeed) (*models.User, error) {
	seed.Email = normalizeEmail(seed.Email)

	existing, err := s.Repo.GetByEmail(ctx, seed.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up admin: %w", err)
	}
	if existing != nil {
		if existing.Role != models.RoleAdmin {
			if err := s.Repo.SetRole(ctx, seed.Email, models.RoleAdmin); err != nil {
				return nil, err
			}
			s.logger().Info("EnsureAdmin: promoted existing user", zap.String("email", seed.Email))
		}
		existing.Role = models.RoleAdmin
		return existing, nil
	}

	if err := VerifyPasswordComplexity(seed.Password); err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(seed.Password), bcryptCost)
	if err != nil {
		return nil, err
	}
	u := &models.User{
		NID:          seed.NID,
		Name:         seed.Name,
		Email:        seed.Email,
		Contact:      seed.Contact,
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		return nil, err
	}
	s.logger().Info("EnsureAdmin: admin created", zap.String("email", seed.Email))
	return u, nil
}
