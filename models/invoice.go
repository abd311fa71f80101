package models

// InvoicePayload is the background task body for a booking invoice email.
type InvoicePayload struct {
	Booking   Booking `json:"booking"`
	Recipient string  `json:"recipient"`
}
