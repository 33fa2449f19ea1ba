package usecase

import (
	"context"
	"errors"
	"fmt"

	"artstudio-booking/internal/dto/request"
	"artstudio-booking/internal/dto/response"
	"artstudio-booking/internal/reservation"
	"artstudio-booking/pkg/utils"

	"go.uber.org/zap"
)

type ReservationService interface {
	ListReservations(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ReservationResponse], error)
	GetReservation(ctx context.Context, id string) (*response.ReservationResponse, error)
	GetAvailability(ctx context.Context, id string) (*response.AvailabilityResponse, error)

	// Quote prices a selection against current availability. It never fails
	// because the selection is incomplete; it reports why instead.
	Quote(ctx context.Context, id string, req *request.QuoteRequest) (*response.QuoteResponse, error)
}

type reservationService struct {
	catalog *catalog
	log     *zap.Logger
}

func NewReservationService(catalog *catalog, log *zap.Logger) ReservationService {
	return &reservationService{
		catalog: catalog,
		log:     log.With(zap.String("service", "reservation")),
	}
}

func (s *reservationService) ListReservations(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ReservationResponse], error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, invalid("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	reservations, err := s.catalog.repo.Reservation.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}

	total, err := s.catalog.repo.Reservation.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count reservations: %w", err)
	}

	items := make([]response.ReservationResponse, 0, len(reservations))
	for _, res := range reservations {
		items = append(items, toReservationResponse(toOffering(s.catalog.cal, res)))
	}

	return response.NewPaginatedResponse(items, req.Page, req.Limit(), total), nil
}

func (s *reservationService) GetReservation(ctx context.Context, id string) (*response.ReservationResponse, error) {
	offering, err := s.catalog.offering(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := toReservationResponse(offering)
	return &resp, nil
}

func (s *reservationService) GetAvailability(ctx context.Context, id string) (*response.AvailabilityResponse, error) {
	offering, err := s.catalog.offering(ctx, id)
	if err != nil {
		return nil, err
	}

	index, err := s.catalog.index(ctx, offering, true)
	if err != nil {
		return nil, err
	}

	return toAvailabilityResponse(offering, index), nil
}

func (s *reservationService) Quote(ctx context.Context, id string, req *request.QuoteRequest) (*response.QuoteResponse, error) {
	offering, err := s.catalog.offering(ctx, id)
	if err != nil {
		return nil, err
	}

	index, err := s.catalog.index(ctx, offering, true)
	if err != nil {
		return nil, err
	}

	store, adjustments, err := replaySelection(s.catalog.cal, index, req.SelectedDates)
	if err != nil {
		return nil, err
	}

	entries := store.Entries()
	pricing, err := reservation.ComputePricing(entries, offering, toAddOns(req.SelectedOptions))
	if errors.Is(err, reservation.ErrUnknownAddOn) {
		return nil, invalid("One of the selected options is no longer offered")
	}
	if err != nil {
		return nil, fmt.Errorf("price selection: %w", err)
	}

	resp := &response.QuoteResponse{
		SelectedDates: toSelectedDates(s.catalog.cal, entries),
		Pricing:       toPricingResponse(pricing),
		IsComplete:    true,
		Adjustments:   toAdjustmentResponses(s.catalog.cal, adjustments),
	}
	if err := store.CheckComplete(); err != nil {
		resp.IsComplete = false
		resp.IncompleteReason = err.Error()
	}

	s.log.Debug("Quote computed",
		zap.String("reservation_id", id),
		zap.Int("dates", len(entries)),
		zap.Int("adjustments", len(adjustments)),
		zap.String("total", pricing.GrandTotal.String()),
	)

	return resp, nil
}
