package handlers

import (
	"net/http"

	"carexyz/middleware"
	"carexyz/models"
	"carexyz/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves the signed-in user's booking endpoints.
type BookingHandler struct {
	BookingSvc booking.BookingService
}

func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{BookingSvc: svc}
}

// CreateBooking handles POST /api/bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req models.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}

	b, err := h.BookingSvc.CreateBooking(c.Request.Context(), middleware.PrincipalFrom(c), req)
	if err != nil {
		respondError(c, err, "Failed to create booking")
		return
	}

	getLogger(c).Info("booking created", zap.String("bookingId", b.ID.Hex()), zap.String("serviceId", b.ServiceID))
	c.JSON(http.StatusCreated, gin.H{
		"message": "Booking created successfully",
		"booking": b,
	})
}

// ListBookings handles GET /api/bookings.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	bookings, err := h.BookingSvc.ListBookings(c.Request.Context(), middleware.PrincipalFrom(c))
	if err != nil {
		respondError(c, err, "Failed to fetch bookings")
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// UpdateStatus handles PATCH /api/bookings/:id.
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	var req models.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}

	err := h.BookingSvc.UpdateStatus(c.Request.Context(), middleware.PrincipalFrom(c), c.Param("id"), req.Status)
	if err != nil {
		respondError(c, err, "Failed to update booking")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking updated successfully"})
}
