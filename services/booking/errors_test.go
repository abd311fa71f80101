package booking

import (
	"testing"

	"carexyz/models"

	"github.com/stretchr/testify/assert"
)

func TestRequireRole(t *testing.T) {
	assert.ErrorIs(t, requireRole(nil, models.RoleAdmin), models.ErrUnauthorized)
	assert.ErrorIs(t, requireRole(&models.Principal{Role: models.RoleAdmin}, models.RoleAdmin), models.ErrUnauthorized, "no user id")
	assert.ErrorIs(t, requireRole(alice, models.RoleAdmin), models.ErrUnauthorized)
	assert.NoError(t, requireRole(admin, models.RoleAdmin))

	assert.NoError(t, requireRole(alice, models.RoleUser))
	assert.NoError(t, requireRole(admin, models.RoleUser), "admins satisfy any role")
}
