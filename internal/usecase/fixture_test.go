package usecase_test

import (
	"context"
	"testing"
	"time"

	"artstudio-booking/internal/checkout"
	checkoutmocks "artstudio-booking/internal/checkout/mocks"
	"artstudio-booking/internal/data/entity"
	"artstudio-booking/internal/data/repository"
	"artstudio-booking/internal/data/repository/mocks"
	"artstudio-booking/internal/reservation"
	"artstudio-booking/internal/usecase"
	"artstudio-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var studioID = uuid.MustParse("6f1c8f0e-3b7a-4d53-9a57-0c2f4e8d1a01")

// passthroughTx runs fn without a database.
type passthroughTx struct {
	calls int
}

func (p *passthroughTx) WithinTx(ctx context.Context, fn func(q database.Querier) error) error {
	p.calls++
	return fn(nil)
}

type fixture struct {
	cal          *reservation.Calendar
	tx           *passthroughTx
	reservations *mocks.ReservationRepository
	availability *mocks.AvailabilityRepository
	bookings     *mocks.BookingRepository
	customers    *mocks.CustomerRepository
	tokenizer    *checkoutmocks.Tokenizer
	payments     *checkoutmocks.PaymentLedger
	repo         *repository.Repository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	cal, err := reservation.NewCalendar("America/New_York")
	require.NoError(t, err)

	f := &fixture{
		cal:          cal,
		tx:           &passthroughTx{},
		reservations: mocks.NewReservationRepository(t),
		availability: mocks.NewAvailabilityRepository(t),
		bookings:     mocks.NewBookingRepository(t),
		customers:    mocks.NewCustomerRepository(t),
		tokenizer:    checkoutmocks.NewTokenizer(t),
		payments:     checkoutmocks.NewPaymentLedger(t),
	}
	f.repo = &repository.Repository{
		Tx:           f.tx,
		Reservation:  f.reservations,
		Availability: f.availability,
		Booking:      f.bookings,
		Customer:     f.customers,
	}
	return f
}

// service builds the services without a cache and with in-process booking.
func (f *fixture) service(cache usecase.SnapshotCache) *usecase.Service {
	return usecase.NewService(f.repo, usecase.Dependencies{
		Calendar:   f.cal,
		Cache:      cache,
		CacheTTL:   30 * time.Second,
		Tokenizer:  f.tokenizer,
		Payments:   f.payments,
		Dispatcher: checkout.NewDispatcher(time.Second, zap.NewNop()),
	}, zap.NewNop())
}

// authorized makes token an uncaptured payment of cents at the processor.
func (f *fixture) authorized(token string, cents int64) {
	f.payments.On("GetPayment", mock.Anything, token).Return(&checkout.Payment{
		ID:       token,
		Status:   checkout.PaymentStatusApproved,
		Amount:   reservation.Money(cents),
		Currency: "USD",
	}, nil)
}

func day(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}

func ptr[T any](v T) *T {
	return &v
}

// openStudio is a whole-day offering at $25 per participant-day with 10% off
// two or more dates and one paid add-on.
func openStudio() *entity.Reservation {
	return &entity.Reservation{
		Base:             entity.Base{ID: studioID},
		Name:             "Open Studio",
		Description:      "Wheel time with glazes included",
		PricePerDayCents: 2500,
		StartDate:        ptr(day("2030-06-01")),
		EndDate:          ptr(day("2030-06-30")),
		ExcludeDates:     []time.Time{day("2030-06-15")},
		IsActive:         true,
		DiscountKind:     ptr("percentage"),
		DiscountValue:    ptr(10.0),
		DiscountMinDays:  ptr(2),
		DiscountLabel:    ptr("Multi-day 10% off"),
		AddOnCategories: []entity.AddOnCategory{{
			Name: "Clay",
			Choices: []entity.AddOnChoice{
				{Name: "Stoneware 10lb", PriceCents: ptr(int64(1800))},
				{Name: "Bring your own"},
			},
		}},
	}
}

func studioDays(bookedJune10 int) []*entity.Availability {
	return []*entity.Availability{
		{Date: day("2030-06-10"), IsAvailable: true, MaxParticipants: 10, CurrentBookings: bookedJune10},
		{Date: day("2030-06-11"), IsAvailable: true, MaxParticipants: 6},
		{Date: day("2030-06-12"), IsAvailable: false, MaxParticipants: 6},
		{Date: day("2030-06-15"), IsAvailable: true, MaxParticipants: 6},
	}
}
