package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"carexyz/models"

	"go.uber.org/zap"
	"google.golang.org/api/idtoken"
)

// GoogleTokenVerifier turns a Google ID token into a verified profile.
type GoogleTokenVerifier interface {
	Verify(ctx context.Context, idToken string) (*models.GoogleProfile, error)
}

// IDTokenVerifier validates tokens against Google's published keys.
type IDTokenVerifier struct {
	ClientID string
}

func (v *IDTokenVerifier) Verify(ctx context.Context, token string) (*models.GoogleProfile, error) {
	payload, err := idtoken.Validate(ctx, token, v.ClientID)
	if err != nil {
		return nil, fmt.Errorf("failed to validate google id token: %w", err)
	}
	email, _ := payload.Claims["email"].(string)
	if verified, ok := payload.Claims["email_verified"].(bool); ok && !verified {
		return nil, errors.New("google account email is not verified")
	}
	name, _ := payload.Claims["name"].(string)
	picture, _ := payload.Claims["picture"].(string)

	return &models.GoogleProfile{
		Subject: payload.Subject,
		Email:   strings.ToLower(email),
		Name:    name,
		Image:   picture,
	}, nil
}

// GoogleSignIn verifies a Google ID token, links or creates the account and
// issues a session token.
func (s *DefaultUserService) GoogleSignIn(ctx context.Context, idToken string) (*models.AuthResponse, error) {
	if s.Google == nil {
		return nil, models.NewUnauthorizedError("Google sign-in is not enabled")
	}
	if strings.TrimSpace(idToken) == "" {
		return nil, models.NewValidationError("idToken is required")
	}

	profile, err := s.Google.Verify(ctx, idToken)
	if err != nil {
		s.logger().Warn("GoogleSignIn: token rejected", zap.Error(err))
		return nil, models.NewUnauthorizedError("Invalid Google token")
	}
	if profile.Email == "" {
		return nil, models.NewUnauthorizedError("Google account has no email")
	}

	u, err := s.Repo.UpsertGoogle(ctx, *profile)
	if err != nil {
		s.logger().Error("GoogleSignIn: upsert failed", zap.String("email", profile.Email), zap.Error(err))
		return nil, models.NewStoreError("Sign-in failed, please try again", err)
	}
	return s.issue(u)
}
