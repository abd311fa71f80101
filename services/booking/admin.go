package booking

import (
	"context"

	"carexyz/models"

	"go.uber.org/zap"
)

// AdminStats returns platform counters, confirmed revenue and the ten newest
// bookings joined with their owners.
func (s *DefaultBookingService) AdminStats(ctx context.Context, principal *models.Principal) (*models.AdminStats, error) {
	if err := requireRole(principal, models.RoleAdmin); err != nil {
		return nil, err
	}

	totalBookings, err := s.Bookings.CountAll(ctx)
	if err != nil {
		return nil, s.storeError("AdminStats: count bookings", err)
	}
	totalUsers, err := s.Users.CountAll(ctx)
	if err != nil {
		return nil, s.storeError("AdminStats: count users", err)
	}
	revenue, err := s.Bookings.Revenue(ctx, models.RevenueStatuses)
	if err != nil {
		return nil, s.storeError("AdminStats: revenue", err)
	}
	recent, err := s.Bookings.FindRecent(ctx, recentBookingsLimit)
	if err != nil {
		return nil, s.storeError("AdminStats: recent bookings", err)
	}
	owners, err := s.ownersOf(ctx, recent)
	if err != nil {
		return nil, s.storeError("AdminStats: booking owners", err)
	}

	rows := make([]models.RecentBooking, 0, len(recent))
	for _, b := range recent {
		owner := owners[b.UserID]
		rows = append(rows, models.RecentBooking{
			ID:          b.ID,
			ServiceName: b.ServiceName,
			TotalCost:   b.TotalCost,
			Status:      b.Status,
			CreatedAt:   b.CreatedAt,
			UserName:    owner.Name,
			UserEmail:   owner.Email,
		})
	}

	return &models.AdminStats{
		Stats: models.StatsTotals{
			TotalBookings: totalBookings,
			TotalUsers:    totalUsers,
			TotalRevenue:  revenue,
		},
		RecentBookings: rows,
	}, nil
}

// AdminPayments lists payment-bearing bookings, optionally filtered by status.
// The summary always covers every payment-bearing booking.
func (s *DefaultBookingService) AdminPayments(ctx context.Context, principal *models.Principal, status string, limit int) (*models.PaymentsReport, error) {
	if err := requireRole(principal, models.RoleAdmin); err != nil {
		return nil, err
	}

	bookings, err := s.Bookings.FindPayments(ctx, models.BookingStatus(status), normalizeLimit(limit))
	if err != nil {
		return nil, s.storeError("AdminPayments: list payments", err)
	}
	summary, err := s.Bookings.PaymentSummary(ctx)
	if err != nil {
		return nil, s.storeError("AdminPayments: summary", err)
	}
	owners, err := s.ownersOf(ctx, bookings)
	if err != nil {
		return nil, s.storeError("AdminPayments: booking owners", err)
	}

	payments := make([]models.PaymentRecord, 0, len(bookings))
	for _, b := range bookings {
		owner := owners[b.UserID]
		payments = append(payments, models.PaymentRecord{
			ID:              b.ID,
			PaymentIntentID: b.PaymentIntentID,
			ServiceName:     b.ServiceName,
			TotalCost:       b.TotalCost,
			ServiceCharge:   b.ServiceCharge,
			Status:          b.Status,
			CreatedAt:       b.CreatedAt,
			UserName:        owner.Name,
			UserEmail:       owner.Email,
			UserContact:     owner.Contact,
		})
	}

	return &models.PaymentsReport{Payments: payments, Summary: summary}, nil
}

// ownersOf batch-loads the owners of bookings keyed by hex id. Owners that no
// longer exist are simply absent from the map.
func (s *DefaultBookingService) ownersOf(ctx context.Context, bookings []models.Booking) (map[string]models.User, error) {
	seen := make(map[string]struct{}, len(bookings))
	ids := make([]string, 0, len(bookings))
	for _, b := range bookings {
		if _, ok := seen[b.UserID]; ok {
			continue
		}
		seen[b.UserID] = struct{}{}
		ids = append(ids, b.UserID)
	}

	owners := make(map[string]models.User, len(ids))
	if len(ids) == 0 {
		return owners, nil
	}
	users, err := s.Users.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		owners[u.ID.Hex()] = u
	}
	return owners, nil
}

func (s *DefaultBookingService) storeError(op string, err error) error {
	s.logger().Error(op, zap.Error(err))
	return models.NewStoreError("Failed to fetch admin data", err)
}
