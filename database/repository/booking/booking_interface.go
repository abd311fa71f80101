package bookingRepo

import (
	"context"
	"errors"
	"time"

	"carexyz/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrBookingNotFound is returned by updates that match no document.
var ErrBookingNotFound = errors.New("booking not found")

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// Insert stores a new booking and assigns its ID when unset.
	Insert(ctx context.Context, booking *models.Booking) error
	// FindByID returns the booking with the given hex id, or nil when absent.
	FindByID(ctx context.Context, id string) (*models.Booking, error)
	// FindByUser returns every booking owned by userID, newest first.
	FindByUser(ctx context.Context, userID string) ([]models.Booking, error)
	// UpdateStatus sets status and updatedAt on a booking.
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.BookingStatus, at time.Time) error
	// CountAll returns the number of stored bookings.
	CountAll(ctx context.Context) (int64, error)
	// FindRecent returns at most limit bookings, newest first.
	FindRecent(ctx context.Context, limit int) ([]models.Booking, error)
	// FindPayments returns payment-bearing bookings, optionally filtered by status, newest first.
	FindPayments(ctx context.Context, status models.BookingStatus, limit int) ([]models.Booking, error)
	// Revenue sums totalCost over bookings in the given statuses.
	Revenue(ctx context.Context, statuses []models.BookingStatus) (float64, error)
	// PaymentSummary aggregates every payment-bearing booking.
	PaymentSummary(ctx context.Context) (models.PaymentSummary, error)
}
