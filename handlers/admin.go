package handlers

import (
	"net/http"
	"strconv"

	"carexyz/middleware"
	"carexyz/models"
	"carexyz/services/booking"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves the administrator dashboard endpoints.
type AdminHandler struct {
	BookingSvc booking.BookingService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(svc booking.BookingService) *AdminHandler {
	return &AdminHandler{BookingSvc: svc}
}

// GetStats handles GET /api/admin/stats.
func (h *AdminHandler) GetStats(c *gin.Context) {
	stats, err := h.BookingSvc.AdminStats(c.Request.Context(), middleware.PrincipalFrom(c))
	if err != nil {
		respondError(c, err, "Failed to fetch admin stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetPayments handles GET /api/admin/payments?status=&limit=.
func (h *AdminHandler) GetPayments(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			badRequest(c, "limit must be an integer", err)
			return
		}
		limit = n
	}

	report, err := h.BookingSvc.AdminPayments(c.Request.Context(), middleware.PrincipalFrom(c), c.Query("status"), limit)
	if err != nil {
		respondError(c, err, "Failed to fetch payments")
		return
	}
	c.JSON(http.StatusOK, report)
}

// UpdateBookingStatus handles PATCH /api/admin/bookings/:id.
func (h *AdminHandler) UpdateBookingStatus(c *gin.Context) {
	var req models.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}

	err := h.BookingSvc.AdminUpdateStatus(c.Request.Context(), middleware.PrincipalFrom(c), c.Param("id"), req.Status)
	if err != nil {
		respondError(c, err, "Failed to update booking")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking updated successfully"})
}
