package user

import (
	"regexp"
	"strings"

	"carexyz/models"
)

var (
	hasUpper = regexp.MustCompile(`[A-Z]`)
	hasLower = regexp.MustCompile(`[a-z]`)
)

// VerifyPasswordComplexity checks that the password meets complexity requirements.
func VerifyPasswordComplexity(pw string) error {
	if len(pw) < 6 {
		return models.NewValidationError("Password must be at least 6 characters")
	}
	if !hasUpper.MatchString(pw) || !hasLower.MatchString(pw) {
		return models.NewValidationError("Password must contain at least one uppercase and one lowercase letter")
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
