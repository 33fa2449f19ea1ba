package usecase

import (
	"time"

	"artstudio-booking/internal/checkout"
	"artstudio-booking/internal/data/repository"
	"artstudio-booking/internal/reservation"

	"go.uber.org/zap"
)

type Service struct {
	Reservation ReservationService
	Checkout    CheckoutService
	Booking     BookingService
}

// Dependencies are the collaborators that are not repositories. Cache may be
// nil. A nil Creator books in-process through the booking service. Payments
// verifies and settles the payment behind every paid booking.
type Dependencies struct {
	Calendar   *reservation.Calendar
	Cache      SnapshotCache
	CacheTTL   time.Duration
	Tokenizer  checkout.Tokenizer
	Payments   checkout.PaymentLedger
	Creator    checkout.BookingCreator
	Notifier   checkout.Notifier
	Dispatcher *checkout.Dispatcher
}

func NewService(repo *repository.Repository, deps Dependencies, log *zap.Logger) *Service {
	cat := &catalog{
		repo:  repo,
		cache: deps.Cache,
		ttl:   deps.CacheTTL,
		cal:   deps.Calendar,
		log:   log.With(zap.String("service", "catalog")),
	}

	booking := NewBookingService(cat, deps.Payments, log)

	creator := deps.Creator
	if creator == nil {
		creator = NewLocalBookingCreator(booking)
	}

	return &Service{
		Reservation: NewReservationService(cat, log),
		Checkout: NewCheckoutService(cat, CheckoutDeps{
			Tokenizer:  deps.Tokenizer,
			Creator:    creator,
			Notifier:   deps.Notifier,
			Dispatcher: deps.Dispatcher,
		}, log),
		Booking: booking,
	}
}
