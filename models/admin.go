package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AdminStats is the dashboard summary returned to administrators.
type AdminStats struct {
	Stats          StatsTotals     `json:"stats"`
	RecentBookings []RecentBooking `json:"recentBookings"`
}

// StatsTotals holds platform-wide counters.
type StatsTotals struct {
	TotalBookings int64   `json:"totalBookings"`
	TotalUsers    int64   `json:"totalUsers"`
	TotalRevenue  float64 `json:"totalRevenue"`
}

// RecentBooking is a booking row joined with its owner's identity.
type RecentBooking struct {
	ID          primitive.ObjectID `json:"_id"`
	ServiceName string             `json:"serviceName"`
	TotalCost   float64            `json:"totalCost"`
	Status      BookingStatus      `json:"status"`
	CreatedAt   time.Time          `json:"createdAt"`
	UserName    string             `json:"userName"`
	UserEmail   string             `json:"userEmail"`
}

// PaymentRecord is a payment-bearing booking joined with its owner's identity.
type PaymentRecord struct {
	ID              primitive.ObjectID `json:"_id"`
	PaymentIntentID string             `json:"paymentIntentId"`
	ServiceName     string             `json:"serviceName"`
	TotalCost       float64            `json:"totalCost"`
	ServiceCharge   float64            `json:"serviceCharge"`
	Status          BookingStatus      `json:"status"`
	CreatedAt       time.Time          `json:"createdAt"`
	UserName        string             `json:"userName"`
	UserEmail       string             `json:"userEmail"`
	UserContact     string             `json:"userContact"`
}

// PaymentSummary aggregates every payment-bearing booking.
type PaymentSummary struct {
	TotalPayments   int64   `bson:"totalPayments" json:"totalPayments"`
	TotalAmount     float64 `bson:"totalAmount" json:"totalAmount"`
	ConfirmedAmount float64 `bson:"confirmedAmount" json:"confirmedAmount"`
}

// PaymentsReport is the response of the admin payments listing.
type PaymentsReport struct {
	Payments []PaymentRecord `json:"payments"`
	Summary  PaymentSummary  `json:"summary"`
}

// PublicStats is the unauthenticated platform summary.
type PublicStats struct {
	TotalBookings int64 `json:"bookings"`
	TotalUsers    int64 `json:"users"`
	Services      int   `json:"services"`
}
