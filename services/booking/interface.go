package booking

import (
	"context"
	"time"

	bookingRepo "carexyz/database/repository/booking"
	userRepo "carexyz/database/repository/user"
	"carexyz/models"
	"carexyz/services/notification"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// BookingService defines the booking operations exposed to the HTTP layer.
type BookingService interface {
	CreateBooking(ctx context.Context, principal *models.Principal, req models.CreateBookingRequest) (*models.Booking, error)
	ListBookings(ctx context.Context, principal *models.Principal) ([]models.Booking, error)
	UpdateStatus(ctx context.Context, principal *models.Principal, bookingID, status string) error
	AdminUpdateStatus(ctx context.Context, principal *models.Principal, bookingID, status string) error
	AdminStats(ctx context.Context, principal *models.Principal) (*models.AdminStats, error)
	AdminPayments(ctx context.Context, principal *models.Principal, status string, limit int) (*models.PaymentsReport, error)
	PublicStats(ctx context.Context) models.PublicStats
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Bookings bookingRepo.BookingRepository
	Users    userRepo.UserRepository
	Notifier notification.Notifier
	// Payments is optional; nil skips payment intent verification.
	Payments PaymentVerifier
	// Cache is optional; nil disables public stats caching.
	Cache  *redis.Client
	Logger *zap.Logger
	Now    func() time.Time

	// StrictCatalog rejects service ids the catalog does not know.
	StrictCatalog bool
	// EnforceTransitions applies the booking status transition table.
	EnforceTransitions bool
}

func (s *DefaultBookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultBookingService) logger() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return zap.NewNop()
}
