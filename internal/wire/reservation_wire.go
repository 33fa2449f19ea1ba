package wire

import (
	"artstudio-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireReservation(r chi.Router, reservationHandler *adaptor.ReservationHandler) {
	// GET /api/reservations - list active offerings
	r.Get("/api/reservations", reservationHandler.GetReservations)

	// GET /api/reservations/{id} - offering details with discount and add-ons
	r.Get("/api/reservations/{id}", reservationHandler.GetReservation)

	// GET /api/reservations/{id}/availability - per-date capacity snapshot
	r.Get("/api/reservations/{id}/availability", reservationHandler.GetAvailability)

	// POST /api/reservations/{id}/quote - price a selection
	r.Post("/api/reservations/{id}/quote", reservationHandler.Quote)
}
