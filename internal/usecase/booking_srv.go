package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"artstudio-booking/internal/checkout"
	"artstudio-booking/internal/data/entity"
	"artstudio-booking/internal/dto/request"
	"artstudio-booking/internal/dto/response"
	"artstudio-booking/internal/reservation"
	"artstudio-booking/pkg/database"
	"artstudio-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	// CreateBooking records a paid submission. Capacity is claimed with
	// conditional updates inside one transaction, so two customers can never
	// both take the last spot. The payment is looked up before anything is
	// claimed and captured as the last step of the transaction; a refused
	// booking cancels it. A repeated payment token returns the booking it
	// already created.
	CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.CreatedBookingData, error)
	GetBookingByID(ctx context.Context, bookingID string) (*response.BookingDetailResponse, error)
}

type bookingService struct {
	catalog  *catalog
	payments checkout.PaymentLedger
	now      func() time.Time
	log      *zap.Logger
}

func NewBookingService(catalog *catalog, payments checkout.PaymentLedger, log *zap.Logger) BookingService {
	return &bookingService{
		catalog:  catalog,
		payments: payments,
		now:      time.Now,
		log:     log.With(zap.String("service", "booking")),
	}
}

// claim is one capacity reservation made inside the booking transaction.
type claim struct {
	key   reservation.DateKey
	date  time.Time
	count int
	slot  *reservation.SlotRef
}

func (s *bookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.CreatedBookingData, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, invalid("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	offering, err := s.catalog.offering(ctx, req.OfferingID)
	if err != nil {
		return nil, err
	}
	cal := s.catalog.cal

	claims, entries, err := s.claims(cal, offering, req)
	if err != nil {
		return nil, err
	}

	addOns := toAddOns(req.SelectedOptions)
	pricing, err := reservation.ComputePricing(entries, offering, addOns)
	if err != nil {
		return nil, invalid("One of the selected options is no longer offered")
	}
	if pricing.TotalParticipantDays != req.Quantity {
		return nil, invalid("quantity %d does not match %d participant-days", req.Quantity, pricing.TotalParticipantDays)
	}
	if pricing.GrandTotal != reservation.MoneyFromFloat(req.Total) {
		s.log.Warn("Submitted total does not match current pricing",
			zap.String("reservation_id", offering.ID),
			zap.Float64("submitted", req.Total),
			zap.String("computed", pricing.GrandTotal.String()),
		)
		return nil, conflict("The price of this booking has changed. Please review your selection.")
	}
	paid := pricing.GrandTotal > 0
	if paid && strings.HasPrefix(req.PaymentToken, checkout.NoChargeToken) {
		return nil, invalid("a payment is required for this booking")
	}
	if !paid && req.PaymentToken != checkout.NoChargeToken {
		return nil, invalid("no payment is taken for a free booking")
	}

	if existing, err := s.catalog.repo.Booking.FindByPaymentToken(ctx, req.PaymentToken); err != nil {
		return nil, fmt.Errorf("find booking by payment token: %w", err)
	} else if existing != nil {
		s.log.Info("Booking already created for payment token", zap.String("booking_id", existing.ID.String()))
		return createdData(existing), nil
	}

	if paid {
		if err := s.verifyPayment(ctx, req.PaymentToken, pricing.GrandTotal); err != nil {
			return nil, err
		}
	}

	now := s.now()
	booking := s.newBooking(offering, req, pricing, claims, addOns, now)
	customer := newCustomer(req.BillingInfo, now)

	captured := false
	err = s.catalog.repo.Tx.WithinTx(ctx, func(q database.Querier) error {
		for _, c := range claims {
			var ok bool
			var err error
			if c.slot != nil {
				ok, err = s.catalog.repo.Availability.ReserveSlot(ctx, q, booking.ReservationID, c.date, c.slot.StartTime, c.slot.EndTime, c.count)
			} else {
				ok, err = s.catalog.repo.Availability.ReserveDay(ctx, q, booking.ReservationID, c.date, c.count)
			}
			if err != nil {
				return err
			}
			if !ok {
				return conflict("%s is no longer available", cal.Label(c.key))
			}
		}

		customerID, err := s.catalog.repo.Customer.Save(ctx, q, customer)
		if err != nil {
			return err
		}
		booking.CustomerID = customerID

		if err := s.catalog.repo.Booking.Create(ctx, q, booking); err != nil {
			return err
		}

		if paid {
			if err := s.payments.CompletePayment(ctx, req.PaymentToken); err != nil {
				return paymentRejected(err, "We could not collect the payment for this booking")
			}
			captured = true
		}
		return nil
	})
	if err != nil {
		if database.IsUniqueViolation(err) {
			// The token belongs to the booking that won the race.
			return nil, conflict("This payment has already been used for a booking")
		}
		if paid {
			s.releasePayment(ctx, req.PaymentToken, captured)
		}
		var refused *Error
		if errors.As(err, &refused) {
			s.log.Info("Booking refused", zap.String("reservation_id", offering.ID), zap.Error(err))
			return nil, refused
		}
		s.log.Error("Failed to create booking", zap.String("reservation_id", offering.ID), zap.Error(err))
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.catalog.invalidate(ctx, offering.ID)

	s.log.Info("Booking recorded",
		zap.String("booking_id", booking.ID.String()),
		zap.String("confirmation_code", booking.ConfirmationCode),
		zap.String("reservation_id", offering.ID),
		zap.Int("participant_days", booking.Quantity),
	)

	return createdData(booking), nil
}

// verifyPayment refuses tokens the processor does not hold as an uncaptured
// payment of exactly total.
func (s *bookingService) verifyPayment(ctx context.Context, token string, total reservation.Money) error {
	payment, err := s.payments.GetPayment(ctx, token)
	if err != nil {
		return fmt.Errorf("look up payment: %w", err)
	}

	switch {
	case payment == nil:
		s.log.Warn("Unknown payment token", zap.String("payment_token", token))
		return paymentRejected(nil, "We could not verify the payment for this booking")
	case payment.Status != checkout.PaymentStatusApproved:
		s.log.Warn("Payment is not awaiting capture", zap.String("payment_token", token), zap.String("status", payment.Status))
		return paymentRejected(nil, "This payment can no longer be used for a booking")
	case payment.Amount != total:
		s.log.Warn("Payment amount does not match booking total",
			zap.String("payment_token", token),
			zap.String("paid", payment.Amount.String()),
			zap.String("total", total.String()),
		)
		return paymentRejected(nil, "The payment amount does not match the booking total")
	}
	return nil
}

// releasePayment gives back an authorization the booking could not use. A
// payment captured before the transaction failed needs a manual refund.
func (s *bookingService) releasePayment(ctx context.Context, token string, captured bool) {
	if captured {
		s.log.Error("Payment captured but booking not recorded, refund required", zap.String("payment_token", token))
		return
	}
	if err := s.payments.CancelPayment(context.WithoutCancel(ctx), token); err != nil {
		s.log.Error("Failed to cancel payment", zap.String("payment_token", token), zap.Error(err))
		return
	}
	s.log.Info("Payment cancelled", zap.String("payment_token", token))
}

// claims checks the submitted dates against the offering and turns them into
// capacity claims in submission order.
func (s *bookingService) claims(cal *reservation.Calendar, o *reservation.Offering, req *request.CreateBookingRequest) ([]claim, []reservation.Entry, error) {
	claims := make([]claim, 0, len(req.SelectedDates))
	entries := make([]reservation.Entry, 0, len(req.SelectedDates))
	seen := make(map[reservation.DateKey]struct{}, len(req.SelectedDates))
	participants := 0

	for _, d := range req.SelectedDates {
		key, err := cal.ParseKey(d.Date)
		if err != nil {
			return nil, nil, invalid("invalid date %s", d.Date)
		}
		if _, dup := seen[key]; dup {
			return nil, nil, invalid("%s is selected more than once", cal.Label(key))
		}
		seen[key] = struct{}{}

		if !o.DateRange.Contains(key) || slices.Contains(o.ExcludeDates, key) {
			return nil, nil, conflict("%s is no longer available", cal.Label(key))
		}

		var slot *reservation.SlotRef
		switch {
		case o.TimeSlotsEnabled && d.TimeSlot == nil:
			return nil, nil, invalid("a time slot is required for %s", cal.Label(key))
		case !o.TimeSlotsEnabled && d.TimeSlot != nil:
			return nil, nil, invalid("time slots are not offered for this reservation")
		case d.TimeSlot != nil:
			slot = &reservation.SlotRef{StartTime: d.TimeSlot.StartTime, EndTime: d.TimeSlot.EndTime}
		}

		date, err := dateColumn(key)
		if err != nil {
			return nil, nil, invalid("invalid date %s", d.Date)
		}

		claims = append(claims, claim{key: key, date: date, count: d.NumberOfParticipants, slot: slot})
		entries = append(entries, reservation.Entry{Date: key, ParticipantCount: d.NumberOfParticipants, TimeSlot: slot})
		participants += d.NumberOfParticipants
	}

	if participants != len(req.Participants) {
		return nil, nil, invalid("expected %d participants, got %d", participants, len(req.Participants))
	}
	return claims, entries, nil
}

func (s *bookingService) newBooking(o *reservation.Offering, req *request.CreateBookingRequest, pricing reservation.PricingBreakdown, claims []claim, addOns []reservation.SelectedAddOn, now time.Time) *entity.Booking {
	id := uuid.New()
	booking := &entity.Booking{
		Base:             entity.Base{ID: id, CreatedAt: now, UpdatedAt: now},
		ConfirmationCode: utils.GenerateConfirmationCode(now),
		ReservationID:    uuid.MustParse(o.ID),
		Quantity:         pricing.TotalParticipantDays,
		TotalCents:       int64(pricing.GrandTotal),
		PaymentToken:     req.PaymentToken,
		Status:           entity.BookingStatusConfirmed,
	}
	// Every free booking would otherwise share the same token.
	if req.PaymentToken == checkout.NoChargeToken {
		booking.PaymentToken = checkout.NoChargeToken + ":" + id.String()
	}

	for _, c := range claims {
		d := entity.BookingDate{
			BaseSimple:       entity.NewBaseSimple(now),
			BookingID:        id,
			Date:             c.date,
			ParticipantCount: c.count,
		}
		if c.slot != nil {
			d.SlotStart = &c.slot.StartTime
			d.SlotEnd = &c.slot.EndTime
		}
		booking.Dates = append(booking.Dates, d)
	}

	for i, p := range req.Participants {
		booking.Participants = append(booking.Participants, entity.BookingParticipant{
			BaseSimple: entity.NewBaseSimple(now),
			BookingID:  id,
			FirstName:  strings.TrimSpace(p.FirstName),
			LastName:   strings.TrimSpace(p.LastName),
			Position:   i,
		})
	}

	for _, sel := range addOns {
		choice, _ := o.FindAddOn(sel)
		booking.Options = append(booking.Options, entity.BookingOption{
			BaseSimple:   entity.NewBaseSimple(now),
			BookingID:    id,
			CategoryName: sel.CategoryName,
			ChoiceName:   sel.ChoiceName,
			PriceCents:   int64(choice.Price),
		})
	}

	return booking
}

func newCustomer(b request.BookingBillingRequest, now time.Time) *entity.Customer {
	c := &entity.Customer{
		Base:         entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		FirstName:    strings.TrimSpace(b.FirstName),
		LastName:     strings.TrimSpace(b.LastName),
		AddressLine1: b.AddressLine1,
		AddressLine2: b.AddressLine2,
		City:         b.City,
		State:        b.StateProvince,
		ZipCode:      b.PostalCode,
	}
	if email := strings.ToLower(strings.TrimSpace(b.EmailAddress)); email != "" {
		c.Email = &email
	}
	if phone := strings.TrimSpace(b.PhoneNumber); phone != "" {
		c.Phone = &phone
	}
	return c
}

func createdData(b *entity.Booking) *response.CreatedBookingData {
	return &response.CreatedBookingData{
		ID:               b.ID.String(),
		CustomerID:       b.CustomerID.String(),
		ConfirmationCode: b.ConfirmationCode,
	}
}

func (s *bookingService) GetBookingByID(ctx context.Context, bookingID string) (*response.BookingDetailResponse, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, invalid("invalid booking ID %s", bookingID)
	}

	booking, err := s.catalog.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking %s: %w", bookingID, err)
	}
	if booking == nil {
		return nil, notFound("booking %s not found", bookingID)
	}

	customer, err := s.catalog.repo.Customer.FindByID(ctx, booking.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("get customer %s: %w", booking.CustomerID.String(), err)
	}

	return toBookingDetail(booking, customer), nil
}
