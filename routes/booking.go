package routes

import (
	"carexyz/handlers"
	"carexyz/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes registers the signed-in user's booking endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/bookings")
	{
		bookingGroup.Use(middleware.JWTAuthMiddleware(hb.Tokens))
		bookingGroup.POST("", hb.Booking.CreateBooking)
		bookingGroup.GET("", hb.Booking.ListBookings)
		bookingGroup.PATCH("/:id", hb.Booking.UpdateStatus)
	}
}
