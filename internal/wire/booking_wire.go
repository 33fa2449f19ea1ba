package wire

import (
	"artstudio-booking/internal/adaptor"
	"artstudio-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler, limiter *middleware.RateLimiter) {
	r.Route("/api/bookings", func(r chi.Router) {
		// POST /api/bookings - record a paid submission
		r.With(limiter.Limit).Post("/", bookingHandler.CreateBooking)

		// GET /api/bookings/{id} - booking details
		r.Get("/{id}", bookingHandler.GetBookingByID)
	})
}
