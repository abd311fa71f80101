package booking

import (
	"context"

	"carexyz/models"
	"carexyz/services/catalog"

	"go.uber.org/zap"
)

// CreateBooking prices and stores a new Pending booking for the principal,
// then hands the invoice to the notifier. Notification failures are logged only.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, principal *models.Principal, req models.CreateBookingRequest) (*models.Booking, error) {
	if err := requireUser(principal); err != nil {
		return nil, err
	}
	if err := s.validateCreateRequest(req); err != nil {
		return nil, err
	}

	charge := catalog.Charge(req.ServiceID)
	total, err := catalog.ComputeTotal(req.Duration, charge)
	if err != nil {
		return nil, models.NewValidationError(models.Message(err, "Invalid duration"))
	}

	if req.PaymentIntentID != "" && s.Payments != nil {
		if err := s.Payments.VerifyPaymentIntent(ctx, req.PaymentIntentID); err != nil {
			s.logger().Warn("CreateBooking: payment intent rejected",
				zap.String("paymentIntentId", req.PaymentIntentID), zap.Error(err))
			return nil, &models.Error{Kind: models.ErrValidation, Message: "Invalid payment intent", Err: err}
		}
	}

	durationType := req.DurationType
	if durationType == "" {
		durationType = models.DurationHours
	}

	now := s.now()
	b := &models.Booking{
		UserID:       principal.UserID,
		ServiceID:    req.ServiceID,
		ServiceName:  catalog.Name(req.ServiceID),
		Duration:     req.Duration,
		DurationType: durationType,
		Location: models.Location{
			Division: req.Division,
			District: req.District,
			City:     req.City,
			Area:     req.Area,
			Address:  req.Address,
		},
		ServiceCharge:   charge,
		TotalCost:       total,
		PaymentMethod:   orDefault(req.PaymentMethod, models.DefaultPaymentMethod),
		PaymentIntentID: req.PaymentIntentID,
		Status:          models.BookingStatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.Bookings.Insert(ctx, b); err != nil {
		s.logger().Error("CreateBooking: insert failed", zap.String("userId", principal.UserID), zap.Error(err))
		return nil, models.NewStoreError("Failed to create booking", err)
	}

	s.notifyCreated(ctx, b, principal.Email)
	return b, nil
}

func (s *DefaultBookingService) notifyCreated(ctx context.Context, b *models.Booking, recipient string) {
	if s.Notifier == nil {
		return
	}
	if err := s.Notifier.BookingCreated(ctx, *b, recipient); err != nil {
		s.logger().Warn("CreateBooking: invoice notification failed",
			zap.String("bookingId", b.ID.Hex()), zap.Error(err))
	}
}

// ListBookings returns the principal's bookings, newest first.
func (s *DefaultBookingService) ListBookings(ctx context.Context, principal *models.Principal) ([]models.Booking, error) {
	if err := requireUser(principal); err != nil {
		return nil, err
	}
	bookings, err := s.Bookings.FindByUser(ctx, principal.UserID)
	if err != nil {
		s.logger().Error("ListBookings: query failed", zap.String("userId", principal.UserID), zap.Error(err))
		return nil, models.NewStoreError("Failed to fetch bookings", err)
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	return bookings, nil
}
