package booking

import (
	"strings"

	"carexyz/models"
	"carexyz/services/catalog"
)

const (
	recentBookingsLimit  = 10
	defaultPaymentsLimit = 50
	maxPaymentsLimit     = 500
)

func (s *DefaultBookingService) validateCreateRequest(req models.CreateBookingRequest) error {
	if strings.TrimSpace(req.ServiceID) == "" ||
		strings.TrimSpace(req.Division) == "" ||
		strings.TrimSpace(req.District) == "" ||
		strings.TrimSpace(req.Address) == "" {
		return models.NewValidationError("Missing required fields")
	}
	if req.Duration < 1 {
		return models.NewValidationError("Duration must be at least 1")
	}
	switch req.DurationType {
	case "", models.DurationHours, models.DurationDays:
	default:
		return models.NewValidationError("Duration type must be hours or days")
	}
	if s.StrictCatalog {
		if _, ok := catalog.Lookup(req.ServiceID); !ok {
			return models.NewValidationError("Unknown service: " + req.ServiceID)
		}
	}
	return nil
}

// normalizeLimit maps non-positive limits to the default and clamps large ones.
func normalizeLimit(limit int) int {
	if limit <= 0 {
		return defaultPaymentsLimit
	}
	if limit > maxPaymentsLimit {
		return maxPaymentsLimit
	}
	return limit
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
