package booking

import "carexyz/models"

// requireRole fails with an unauthorized error unless principal holds role.
// Admins satisfy any role.
func requireRole(principal *models.Principal, role models.Role) error {
	if principal == nil || principal.UserID == "" {
		return models.NewUnauthorizedError("Authentication required")
	}
	switch {
	case role == models.RoleAdmin && !principal.IsAdmin():
		return models.NewUnauthorizedError("Unauthorized - Admin access required")
	case principal.Role != role && !principal.IsAdmin():
		return models.NewUnauthorizedError("Unauthorized")
	}
	return nil
}

func requireUser(principal *models.Principal) error {
	if principal == nil || principal.UserID == "" {
		return models.NewUnauthorizedError("Authentication required")
	}
	return nil
}
