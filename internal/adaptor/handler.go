package adaptor

import (
	"artstudio-booking/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Reservation *ReservationHandler
	Checkout    *CheckoutHandler
	Booking     *BookingHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Reservation: NewReservationHandler(service.Reservation, log),
		Checkout:    NewCheckoutHandler(service.Checkout, log),
		Booking:     NewBookingHandler(service.Booking, log),
	}
}
