package routes

import (
	"crewbook/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes registers all endpoints for the booking engine.
func RegisterBookingRoutes(r *gin.Engine, h *handlers.BookingHandler) {
	bookings := r.Group("/api/bookings")
	{
		bookings.GET("/availability", h.CheckAvailability)
		bookings.POST("", h.CreateBooking)
		bookings.PUT("/:id", h.UpdateBooking)
	}
}
