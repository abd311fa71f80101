package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DurationType is the unit a booking duration is expressed in.
type DurationType string

const (
	DurationHours DurationType = "hours"
	DurationDays  DurationType = "days"
)

// DefaultPaymentMethod is recorded when the client does not choose one.
const DefaultPaymentMethod = "Cash on Delivery"

// Location is where the care is delivered. It is stored flat on the booking document.
type Location struct {
	Division string `bson:"division" json:"division"`
	District string `bson:"district" json:"district"`
	City     string `bson:"city" json:"city"`
	Area     string `bson:"area" json:"area"`
	Address  string `bson:"address" json:"address"`
}

// Booking is a user's request for one catalog service.
type Booking struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	UserID          string             `bson:"userId" json:"userId"`
	ServiceID       string             `bson:"serviceId" json:"serviceId"`
	ServiceName     string             `bson:"serviceName" json:"serviceName"`
	Duration        int                `bson:"duration" json:"duration"`
	DurationType    DurationType       `bson:"durationType" json:"durationType"`
	Location        `bson:",inline"`
	ServiceCharge   float64       `bson:"serviceCharge" json:"serviceCharge"`
	TotalCost       float64       `bson:"totalCost" json:"totalCost"`
	PaymentMethod   string        `bson:"paymentMethod" json:"paymentMethod"`
	PaymentIntentID string        `bson:"paymentIntentId,omitempty" json:"paymentIntentId,omitempty"`
	Status          BookingStatus `bson:"status" json:"status"`
	CreatedAt       time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time     `bson:"updatedAt" json:"updatedAt"`
}

// CreateBookingRequest is the client payload for a new booking.
type CreateBookingRequest struct {
	ServiceID       string       `json:"serviceId"`
	Duration        int          `json:"duration"`
	DurationType    DurationType `json:"durationType"`
	Division        string       `json:"division"`
	District        string       `json:"district"`
	City            string       `json:"city"`
	Area            string       `json:"area"`
	Address         string       `json:"address"`
	PaymentMethod   string       `json:"paymentMethod"`
	PaymentIntentID string       `json:"paymentIntentId"`
	// Status is ignored; new bookings always start Pending.
	Status string `json:"status,omitempty"`
}

// UpdateStatusRequest is the body of a status change.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}
