package notification

import (
	"context"

	"carexyz/models"
)

// Notifier is told about bookings that need an invoice sent.
type Notifier interface {
	BookingCreated(ctx context.Context, booking models.Booking, recipient string) error
}

// Invoice is one invoice email.
type Invoice struct {
	To      string
	Booking models.Booking
}

// Mailer delivers invoice emails.
type Mailer interface {
	SendInvoice(ctx context.Context, inv Invoice) error
}
