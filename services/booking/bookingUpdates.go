package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	bookingRepo "carexyz/database/repository/booking"
	"carexyz/models"

	"go.uber.org/zap"
)

// UpdateStatus changes the status of one of the principal's own bookings.
// Bookings owned by someone else are reported as not found.
func (s *DefaultBookingService) UpdateStatus(ctx context.Context, principal *models.Principal, bookingID, status string) error {
	if err := requireUser(principal); err != nil {
		return err
	}
	next, err := parseStatus(status)
	if err != nil {
		return err
	}

	b, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return err
	}
	if b.UserID != principal.UserID {
		return models.NewNotFoundError("Booking not found")
	}

	if s.EnforceTransitions {
		if !next.IsValid() {
			return models.NewValidationError(fmt.Sprintf("Unknown booking status %q", status))
		}
		// Owners may cancel; confirming and completing belong to admins.
		if next != b.Status && next != models.BookingStatusCancelled {
			return models.NewValidationError("You can only cancel your own booking")
		}
	}
	return s.applyStatus(ctx, b, next)
}

// AdminUpdateStatus changes the status of any booking.
func (s *DefaultBookingService) AdminUpdateStatus(ctx context.Context, principal *models.Principal, bookingID, status string) error {
	if err := requireRole(principal, models.RoleAdmin); err != nil {
		return err
	}
	next, err := parseStatus(status)
	if err != nil {
		return err
	}
	b, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return err
	}
	if s.EnforceTransitions && !next.IsValid() {
		return models.NewValidationError(fmt.Sprintf("Unknown booking status %q", status))
	}
	return s.applyStatus(ctx, b, next)
}

func parseStatus(status string) (models.BookingStatus, error) {
	status = strings.TrimSpace(status)
	if status == "" {
		return "", models.NewValidationError("Status is required")
	}
	return models.BookingStatus(status), nil
}

func (s *DefaultBookingService) findBooking(ctx context.Context, bookingID string) (*models.Booking, error) {
	b, err := s.Bookings.FindByID(ctx, bookingID)
	if err != nil {
		s.logger().Error("findBooking: query failed", zap.String("bookingId", bookingID), zap.Error(err))
		return nil, models.NewStoreError("Failed to fetch booking", err)
	}
	if b == nil {
		return nil, models.NewNotFoundError("Booking not found")
	}
	return b, nil
}

func (s *DefaultBookingService) applyStatus(ctx context.Context, b *models.Booking, next models.BookingStatus) error {
	if s.EnforceTransitions && b.Status.IsTerminal() && next != b.Status {
		return models.NewValidationError(fmt.Sprintf("Booking is already %s", b.Status))
	}
	if s.EnforceTransitions && !b.Status.CanTransitionTo(next) {
		return models.NewValidationError(fmt.Sprintf("Cannot change booking status from %s to %s", b.Status, next))
	}

	now := s.now()
	if err := s.Bookings.UpdateStatus(ctx, b.ID, next, now); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return models.NewNotFoundError("Booking not found")
		}
		s.logger().Error("applyStatus: update failed", zap.String("bookingId", b.ID.Hex()), zap.Error(err))
		return models.NewStoreError("Failed to update booking", err)
	}
	b.Status = next
	b.UpdatedAt = now
	return nil
}
