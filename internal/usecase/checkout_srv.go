package usecase

import (
	"context"

	"artstudio-booking/internal/checkout"
	"artstudio-booking/internal/dto/request"
	"artstudio-booking/internal/dto/response"
	"artstudio-booking/internal/reservation"
	"artstudio-booking/pkg/utils"

	"go.uber.org/zap"
)

type CheckoutService interface {
	// Checkout replays the selection against fresh availability, then
	// tokenizes the payment, creates the booking and queues the confirmation.
	// The request must already be validated.
	Checkout(ctx context.Context, id string, req *request.CheckoutRequest) (*response.CheckoutResponse, error)
}

// CheckoutDeps are the outbound ports of a checkout.
type CheckoutDeps struct {
	Tokenizer  checkout.Tokenizer
	Creator    checkout.BookingCreator
	Notifier   checkout.Notifier
	Dispatcher *checkout.Dispatcher
}

type checkoutService struct {
	catalog *catalog
	deps    CheckoutDeps
	log     *zap.Logger
	baseLog *zap.Logger
}

func NewCheckoutService(catalog *catalog, deps CheckoutDeps, log *zap.Logger) CheckoutService {
	return &checkoutService{
		catalog: catalog,
		deps:    deps,
		log:     log.With(zap.String("service", "checkout")),
		baseLog: log,
	}
}

func (s *checkoutService) Checkout(ctx context.Context, id string, req *request.CheckoutRequest) (*response.CheckoutResponse, error) {
	offering, err := s.catalog.offering(ctx, id)
	if err != nil {
		return nil, err
	}

	// Checkout reads availability from the store, never from the cache.
	fresh, err := s.catalog.index(ctx, offering, false)
	if err != nil {
		return nil, err
	}

	store, adjustments, err := replaySelection(s.catalog.cal, fresh, req.SelectedDates)
	if err != nil {
		return nil, err
	}

	if len(adjustments) > 0 {
		s.log.Info("Checkout refused, selection no longer fits availability",
			zap.String("reservation_id", id),
			zap.Int("adjustments", len(adjustments)),
		)
		return nil, &SelectionChangedError{
			Message:     "Availability changed since you made your selection. Please review your dates.",
			Adjustments: toAdjustmentResponses(s.catalog.cal, adjustments),
		}
	}

	creq, err := s.buildRequest(ctx, offering, store.Entries(), req)
	if err != nil {
		return nil, err
	}

	assembler := checkout.NewAssembler(s.deps.Tokenizer, s.deps.Creator, s.deps.Notifier, s.deps.Dispatcher, s.catalog.cal, s.baseLog)
	result, err := assembler.Submit(ctx, creq)
	if err != nil {
		return nil, err
	}

	return &response.CheckoutResponse{
		BookingID:        result.Booking.ID,
		CustomerID:       result.Booking.CustomerID,
		ConfirmationCode: result.Booking.ConfirmationCode,
		Pricing:          toPricingResponse(result.Pricing),
	}, nil
}

func (s *checkoutService) buildRequest(ctx context.Context, offering *reservation.Offering, entries []reservation.Entry, req *request.CheckoutRequest) (checkout.Request, error) {
	byDate := make(map[reservation.DateKey][]checkout.Participant, len(req.Participants))
	for _, group := range req.Participants {
		key, err := s.catalog.cal.ParseKey(group.Date)
		if err != nil {
			return checkout.Request{}, invalid("invalid participant date %s", group.Date)
		}
		for _, p := range group.Participants {
			byDate[key] = append(byDate[key], checkout.Participant{
				FirstName:       p.FirstName,
				LastName:        p.LastName,
				SelectedOptions: toAddOns(p.SelectedOptions),
			})
		}
	}

	key := req.IdempotencyKey
	if ctxKey, ok := utils.GetIdempotencyKey(ctx); ok {
		key = ctxKey
	}

	b := req.BillingInfo
	return checkout.Request{
		Offering:           offering,
		Entries:            entries,
		ParticipantsByDate: byDate,
		RegistrantOptions:  toAddOns(req.SelectedOptions),
		Billing: checkout.BillingInfo{
			FirstName:     b.FirstName,
			LastName:      b.LastName,
			AddressLine1:  b.AddressLine1,
			AddressLine2:  b.AddressLine2,
			City:          b.City,
			StateProvince: b.StateProvince,
			PostalCode:    b.PostalCode,
			Country:       b.Country,
			EmailAddress:  b.EmailAddress,
			PhoneNumber:   b.PhoneNumber,
		},
		PaymentSourceID: req.SourceID,
		IdempotencyKey:  key,
	}, nil
}
