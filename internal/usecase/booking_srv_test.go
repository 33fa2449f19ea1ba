package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"artstudio-booking/internal/checkout"
	"artstudio-booking/internal/data/entity"
	"artstudio-booking/internal/dto/request"
	"artstudio-booking/internal/usecase"
	"artstudio-booking/pkg/cache"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createRequest() *request.CreateBookingRequest {
	return &request.CreateBookingRequest{
		OfferingID: studioID.String(),
		SelectedDates: []request.BookingDateRequest{
			{Date: "2030-06-10T00:00:00-04:00", NumberOfParticipants: 1},
		},
		Quantity:     1,
		Total:        25,
		Participants: []request.BookingParticipantRequest{{FirstName: "Ada", LastName: "Lovelace"}},
		BillingInfo: request.BookingBillingRequest{
			FirstName:     "Ada",
			LastName:      "Lovelace",
			AddressLine1:  "12 Kiln Street",
			City:          "Brooklyn",
			StateProvince: "NY",
			PostalCode:    "11201",
			Country:       "US",
			PhoneNumber:   "+1 718 555 0100",
		},
		PaymentToken: "pay_123",
	}
}

func TestCreateBooking_ClaimsCapacityAndInvalidatesCache(t *testing.T) {
	f := newFixture(t)
	customerID := uuid.New()

	f.reservations.On("FindByID", mock.Anything, studioID).Return(openStudio(), nil)
	f.bookings.On("FindByPaymentToken", mock.Anything, "pay_123").Return(nil, nil)
	f.authorized("pay_123", 2500)
	f.availability.On("ReserveDay", mock.Anything, mock.Anything, studioID, day("2030-06-10"), 1).Return(true, nil)
	f.customers.On("Save", mock.Anything, mock.Anything, mock.MatchedBy(func(c *entity.Customer) bool {
		return c.Email == nil && c.Phone != nil && c.State == "NY" && c.ZipCode == "11201"
	})).Return(customerID, nil)
	f.bookings.On("Create", mock.Anything, mock.Anything, mock.MatchedBy(func(b *entity.Booking) bool {
		return len(b.Dates) == 1 && b.Dates[0].Date.Equal(day("2030-06-10")) && b.Status == entity.BookingStatusConfirmed
	})).Return(nil)
	f.payments.On("CompletePayment", mock.Anything, "pay_123").Return(nil)

	db, rmock := redismock.NewClientMock()
	rmock.ExpectDel("availability:" + studioID.String()).SetVal(1)

	created, err := f.service(cache.NewJSONCache(db)).Booking.CreateBooking(context.Background(), createRequest())
	require.NoError(t, err)

	assert.Equal(t, customerID.String(), created.CustomerID)
	assert.NotEmpty(t, created.ID)
	assert.NoError(t, rmock.ExpectationsWereMet())
}

func TestCreateBooking_SlottedOffering(t *testing.T) {
	f := newFixture(t)
	res := openStudio()
	res.TimeSlotsEnabled = true
	f.reservations.On("FindByID", mock.Anything, studioID).Return(res, nil)

	req := createRequest()
	req.SelectedDates[0].TimeSlot = &request.BookingSlotRequest{StartTime: "10:00", EndTime: "12:00"}

	f.bookings.On("FindByPaymentToken", mock.Anything, "pay_123").Return(nil, nil)
	f.authorized("pay_123", 2500)
	f.availability.On("ReserveSlot", mock.Anything, mock.Anything, studioID, day("2030-06-10"), "10:00", "12:00", 1).Return(true, nil)
	f.customers.On("Save", mock.Anything, mock.Anything, mock.Anything).Return(uuid.New(), nil)
	f.bookings.On("Create", mock.Anything, mock.Anything, mock.MatchedBy(func(b *entity.Booking) bool {
		return b.Dates[0].SlotStart != nil && *b.Dates[0].SlotStart == "10:00"
	})).Return(nil)
	f.payments.On("CompletePayment", mock.Anything, "pay_123").Return(nil)

	_, err := f.service(nil).Booking.CreateBooking(context.Background(), req)
	require.NoError(t, err)
}

func TestCreateBooking_RepeatedPaymentTokenReturnsExisting(t *testing.T) {
	f := newFixture(t)
	existing := &entity.Booking{
		Base:             entity.Base{ID: uuid.New()},
		CustomerID:       uuid.New(),
		ConfirmationCode: "RSV-300610-ABCDEF",
	}
	f.reservations.On("FindByID", mock.Anything, studioID).Return(openStudio(), nil)
	f.bookings.On("FindByPaymentToken", mock.Anything, "pay_123").Return(existing, nil)

	created, err := f.service(nil).Booking.CreateBooking(context.Background(), createRequest())
	require.NoError(t, err)

	assert.Equal(t, existing.ID.String(), created.ID)
	assert.Equal(t, "RSV-300610-ABCDEF", created.ConfirmationCode)
	assert.Zero(t, f.tx.calls)
}

func TestCreateBooking_FreeBookingsGetDistinctTokens(t *testing.T) {
	f := newFixture(t)
	res := openStudio()
	res.PricePerDayCents = 0
	f.reservations.On("FindByID", mock.Anything, studioID).Return(res, nil)
	f.bookings.On("FindByPaymentToken", mock.Anything, "NO_CHARGE").Return(nil, nil)
	f.availability.On("ReserveDay", mock.Anything, mock.Anything, studioID, day("2030-06-10"), 1).Return(true, nil)
	f.customers.On("Save", mock.Anything, mock.Anything, mock.Anything).Return(uuid.New(), nil)
	f.bookings.On("Create", mock.Anything, mock.Anything, mock.MatchedBy(func(b *entity.Booking) bool {
		return b.PaymentToken == "NO_CHARGE:"+b.ID.String() && b.TotalCents == 0
	})).Return(nil)

	req := createRequest()
	req.Total = 0
	req.PaymentToken = "NO_CHARGE"

	_, err := f.service(nil).Booking.CreateBooking(context.Background(), req)
	require.NoError(t, err)
}

func TestCreateBooking_Refusals(t *testing.T) {
	tests := []struct {
		name    string
		free    bool
		mutate  func(r *request.CreateBookingRequest)
		setup   func(f *fixture)
		kind    error
		message string
	}{
		{
			name:    "total differs from current pricing",
			mutate:  func(r *request.CreateBookingRequest) { r.Total = 20 },
			kind:    usecase.ErrConflict,
			message: "The price of this booking has changed. Please review your selection.",
		},
		{
			name:   "participants do not match counts",
			mutate: func(r *request.CreateBookingRequest) { r.SelectedDates[0].NumberOfParticipants = 2; r.Quantity = 2 },
			kind:   usecase.ErrInvalidInput,
		},
		{
			name:    "excluded date",
			mutate:  func(r *request.CreateBookingRequest) { r.SelectedDates[0].Date = "2030-06-15" },
			kind:    usecase.ErrConflict,
			message: "June 15, 2030 is no longer available",
		},
		{
			name:   "no-charge token on a paid booking",
			mutate: func(r *request.CreateBookingRequest) { r.PaymentToken = "NO_CHARGE" },
			kind:   usecase.ErrInvalidInput,
		},
		{
			name:   "processor token on a free booking",
			free:   true,
			mutate: func(r *request.CreateBookingRequest) { r.Total = 0 },
			kind:   usecase.ErrInvalidInput,
		},
		{
			name:   "slot on whole-day offering",
			mutate: func(r *request.CreateBookingRequest) { r.SelectedDates[0].TimeSlot = &request.BookingSlotRequest{StartTime: "10:00", EndTime: "12:00"} },
			kind:   usecase.ErrInvalidInput,
		},
		{
			name:   "date is full",
			mutate: func(r *request.CreateBookingRequest) {},
			setup: func(f *fixture) {
				f.bookings.On("FindByPaymentToken", mock.Anything, "pay_123").Return(nil, nil)
				f.authorized("pay_123", 2500)
				f.availability.On("ReserveDay", mock.Anything, mock.Anything, studioID, day("2030-06-10"), 1).Return(false, nil)
				f.payments.On("CancelPayment", mock.Anything, "pay_123").Return(nil)
			},
			kind:    usecase.ErrConflict,
			message: "June 10, 2030 is no longer available",
		},
		{
			name:   "payment token raced in",
			mutate: func(r *request.CreateBookingRequest) {},
			setup: func(f *fixture) {
				f.bookings.On("FindByPaymentToken", mock.Anything, "pay_123").Return(nil, nil)
				f.authorized("pay_123", 2500)
				f.availability.On("ReserveDay", mock.Anything, mock.Anything, studioID, day("2030-06-10"), 1).Return(true, nil)
				f.customers.On("Save", mock.Anything, mock.Anything, mock.Anything).Return(uuid.New(), nil)
				f.bookings.On("Create", mock.Anything, mock.Anything, mock.Anything).Return(&pgconn.PgError{Code: "23505"})
			},
			kind:    usecase.ErrConflict,
			message: "This payment has already been used for a booking",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			res := openStudio()
			if tt.free {
				res.PricePerDayCents = 0
			}
			f.reservations.On("FindByID", mock.Anything, studioID).Return(res, nil)
			if tt.setup != nil {
				tt.setup(f)
			}

			req := createRequest()
			tt.mutate(req)

			_, err := f.service(nil).Booking.CreateBooking(context.Background(), req)
			require.ErrorIs(t, err, tt.kind)
			if tt.message != "" {
				assert.EqualError(t, err, tt.message)
			}
		})
	}
}

func TestCreateBooking_RefusesUnverifiedPayments(t *testing.T) {
	tests := []struct {
		name    string
		payment *checkout.Payment
		message string
	}{
		{
			name:    "token unknown to the processor",
			message: "We could not verify the payment for this booking",
		},
		{
			name:    "payment already captured",
			payment: &checkout.Payment{ID: "pay_123", Status: "COMPLETED", Amount: 2500, Currency: "USD"},
			message: "This payment can no longer be used for a booking",
		},
		{
			name:    "payment cancelled",
			payment: &checkout.Payment{ID: "pay_123", Status: "CANCELED", Amount: 2500, Currency: "USD"},
			message: "This payment can no longer be used for a booking",
		},
		{
			name:    "authorized for less than the total",
			payment: &checkout.Payment{ID: "pay_123", Status: checkout.PaymentStatusApproved, Amount: 100, Currency: "USD"},
			message: "The payment amount does not match the booking total",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.reservations.On("FindByID", mock.Anything, studioID).Return(openStudio(), nil)
			f.bookings.On("FindByPaymentToken", mock.Anything, "pay_123").Return(nil, nil)
			f.payments.On("GetPayment", mock.Anything, "pay_123").Return(tt.payment, nil)

			_, err := f.service(nil).Booking.CreateBooking(context.Background(), createRequest())
			require.ErrorIs(t, err, usecase.ErrPaymentRequired)
			assert.EqualError(t, err, tt.message)

			assert.Zero(t, f.tx.calls)
			f.availability.AssertNotCalled(t, "ReserveDay", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			f.payments.AssertNotCalled(t, "CompletePayment", mock.Anything, mock.Anything)
		})
	}
}

func TestCreateBooking_PaymentLookupFailure(t *testing.T) {
	f := newFixture(t)
	f.reservations.On("FindByID", mock.Anything, studioID).Return(openStudio(), nil)
	f.bookings.On("FindByPaymentToken", mock.Anything, "pay_123").Return(nil, nil)
	f.payments.On("GetPayment", mock.Anything, "pay_123").Return(nil, errors.New("square get payment: 503"))

	_, err := f.service(nil).Booking.CreateBooking(context.Background(), createRequest())
	require.Error(t, err)

	var svcErr *usecase.Error
	assert.False(t, errors.As(err, &svcErr))
	assert.Zero(t, f.tx.calls)
}

func TestCreateBooking_CapturesAfterClaims(t *testing.T) {
	f := newFixture(t)
	var order []string

	f.reservations.On("FindByID", mock.Anything, studioID).Return(openStudio(), nil)
	f.bookings.On("FindByPaymentToken", mock.Anything, "pay_123").Return(nil, nil)
	f.authorized("pay_123", 2500)
	f.availability.On("ReserveDay", mock.Anything, mock.Anything, studioID, day("2030-06-10"), 1).
		Run(func(mock.Arguments) { order = append(order, "claim") }).Return(true, nil)
	f.customers.On("Save", mock.Anything, mock.Anything, mock.Anything).Return(uuid.New(), nil)
	f.bookings.On("Create", mock.Anything, mock.Anything, mock.Anything).
		Run(func(mock.Arguments) { order = append(order, "record") }).Return(nil)
	f.payments.On("CompletePayment", mock.Anything, "pay_123").
		Run(func(mock.Arguments) { order = append(order, "capture") }).Return(nil)

	_, err := f.service(nil).Booking.CreateBooking(context.Background(), createRequest())
	require.NoError(t, err)

	assert.Equal(t, []string{"claim", "record", "capture"}, order)
	f.payments.AssertNotCalled(t, "CancelPayment", mock.Anything, mock.Anything)
}

func TestCreateBooking_CancelsPaymentWhenTransactionFails(t *testing.T) {
	t.Run("store failure", func(t *testing.T) {
		f := newFixture(t)
		f.reservations.On("FindByID", mock.Anything, studioID).Return(openStudio(), nil)
		f.bookings.On("FindByPaymentToken", mock.Anything, "pay_123").Return(nil, nil)
		f.authorized("pay_123", 2500)
		f.availability.On("ReserveDay", mock.Anything, mock.Anything, studioID, day("2030-06-10"), 1).Return(true, nil)
		f.customers.On("Save", mock.Anything, mock.Anything, mock.Anything).Return(uuid.Nil, errors.New("connection reset"))
		f.payments.On("CancelPayment", mock.Anything, "pay_123").Return(nil)

		_, err := f.service(nil).Booking.CreateBooking(context.Background(), createRequest())
		require.Error(t, err)
		assert.NotErrorIs(t, err, usecase.ErrPaymentRequired)
	})

	t.Run("capture refused", func(t *testing.T) {
		f := newFixture(t)
		f.reservations.On("FindByID", mock.Anything, studioID).Return(openStudio(), nil)
		f.bookings.On("FindByPaymentToken", mock.Anything, "pay_123").Return(nil, nil)
		f.authorized("pay_123", 2500)
		f.availability.On("ReserveDay", mock.Anything, mock.Anything, studioID, day("2030-06-10"), 1).Return(true, nil)
		f.customers.On("Save", mock.Anything, mock.Anything, mock.Anything).Return(uuid.New(), nil)
		f.bookings.On("Create", mock.Anything, mock.Anything, mock.Anything).Return(nil)
		f.payments.On("CompletePayment", mock.Anything, "pay_123").Return(errors.New("square complete payment: 400"))
		f.payments.On("CancelPayment", mock.Anything, "pay_123").Return(nil)

		_, err := f.service(nil).Booking.CreateBooking(context.Background(), createRequest())
		require.ErrorIs(t, err, usecase.ErrPaymentRequired)
		assert.EqualError(t, err, "We could not collect the payment for this booking")
	})

	t.Run("cancel failure keeps the refusal", func(t *testing.T) {
		f := newFixture(t)
		f.reservations.On("FindByID", mock.Anything, studioID).Return(openStudio(), nil)
		f.bookings.On("FindByPaymentToken", mock.Anything, "pay_123").Return(nil, nil)
		f.authorized("pay_123", 2500)
		f.availability.On("ReserveDay", mock.Anything, mock.Anything, studioID, day("2030-06-10"), 1).Return(false, nil)
		f.payments.On("CancelPayment", mock.Anything, "pay_123").Return(errors.New("square cancel payment: 500"))

		_, err := f.service(nil).Booking.CreateBooking(context.Background(), createRequest())
		require.ErrorIs(t, err, usecase.ErrConflict)
		assert.EqualError(t, err, "June 10, 2030 is no longer available")
	})
}

func TestCreateBooking_ValidationNeedsContact(t *testing.T) {
	f := newFixture(t)
	req := createRequest()
	req.BillingInfo.PhoneNumber = ""

	_, err := f.service(nil).Booking.CreateBooking(context.Background(), req)
	assert.ErrorIs(t, err, usecase.ErrInvalidInput)
}

func TestGetBookingByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		f := newFixture(t)
		id := uuid.New()
		customerID := uuid.New()
		email := "ada@example.com"
		f.bookings.On("FindByID", mock.Anything, id).Return(&entity.Booking{
			Base:             entity.Base{ID: id, CreatedAt: time.Date(2030, 5, 1, 12, 0, 0, 0, time.UTC)},
			ConfirmationCode: "RSV-300501-ABCDEF",
			ReservationID:    studioID,
			CustomerID:       customerID,
			Quantity:         1,
			TotalCents:       2500,
			Status:           entity.BookingStatusConfirmed,
			Dates:            []entity.BookingDate{{Date: day("2030-06-10"), ParticipantCount: 1}},
			Participants:     []entity.BookingParticipant{{FirstName: "Ada", LastName: "Lovelace"}},
		}, nil)
		f.customers.On("FindByID", mock.Anything, customerID).Return(&entity.Customer{
			Base:      entity.Base{ID: customerID},
			FirstName: "Ada",
			LastName:  "Lovelace",
			Email:     &email,
		}, nil)

		resp, err := f.service(nil).Booking.GetBookingByID(context.Background(), id.String())
		require.NoError(t, err)

		assert.Equal(t, 25.0, resp.Total)
		assert.Equal(t, "2030-06-10", resp.Dates[0].Date)
		assert.Equal(t, "ada@example.com", resp.Customer.Email)
		assert.Empty(t, resp.SelectedOptions)
	})

	t.Run("missing", func(t *testing.T) {
		f := newFixture(t)
		id := uuid.New()
		f.bookings.On("FindByID", mock.Anything, id).Return(nil, nil)

		_, err := f.service(nil).Booking.GetBookingByID(context.Background(), id.String())
		assert.ErrorIs(t, err, usecase.ErrNotFound)
	})
}
