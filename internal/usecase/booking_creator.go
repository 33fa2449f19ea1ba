package usecase

import (
	"context"
	"errors"

	"artstudio-booking/internal/checkout"
	"artstudio-booking/internal/dto/request"
)

// localCreator hands checkout submissions straight to the booking service
// when no external booking API is configured.
type localCreator struct {
	bookings BookingService
}

// NewLocalBookingCreator adapts a BookingService to the checkout port.
func NewLocalBookingCreator(bookings BookingService) checkout.BookingCreator {
	return &localCreator{bookings: bookings}
}

func (c *localCreator) CreateBooking(ctx context.Context, s *checkout.Submission) (*checkout.CreateResponse, error) {
	created, err := c.bookings.CreateBooking(ctx, toCreateBookingRequest(s))
	if err != nil {
		var refused *Error
		if errors.As(err, &refused) {
			return &checkout.CreateResponse{Success: false, Error: refused.Message}, nil
		}
		return nil, err
	}

	return &checkout.CreateResponse{
		Success: true,
		Data: &checkout.CreatedBooking{
			ID:               created.ID,
			CustomerID:       created.CustomerID,
			ConfirmationCode: created.ConfirmationCode,
		},
	}, nil
}

func toCreateBookingRequest(s *checkout.Submission) *request.CreateBookingRequest {
	req := &request.CreateBookingRequest{
		OfferingID:      s.OfferingID,
		SelectedDates:   make([]request.BookingDateRequest, 0, len(s.SelectedDates)),
		Quantity:        s.Quantity,
		Total:           s.Total,
		Participants:    make([]request.BookingParticipantRequest, 0, len(s.Participants)),
		SelectedOptions: make([]request.SelectedOptionRequest, 0, len(s.SelectedOptions)),
		BillingInfo: request.BookingBillingRequest{
			FirstName:     s.BillingInfo.FirstName,
			LastName:      s.BillingInfo.LastName,
			AddressLine1:  s.BillingInfo.AddressLine1,
			AddressLine2:  s.BillingInfo.AddressLine2,
			City:          s.BillingInfo.City,
			StateProvince: s.BillingInfo.StateProvince,
			PostalCode:    s.BillingInfo.PostalCode,
			Country:       s.BillingInfo.Country,
			EmailAddress:  s.BillingInfo.EmailAddress,
			PhoneNumber:   s.BillingInfo.PhoneNumber,
		},
		PaymentToken: s.PaymentToken,
	}

	for _, d := range s.SelectedDates {
		date := request.BookingDateRequest{Date: d.Date, NumberOfParticipants: d.NumberOfParticipants}
		if d.TimeSlot != nil {
			date.TimeSlot = &request.BookingSlotRequest{StartTime: d.TimeSlot.StartTime, EndTime: d.TimeSlot.EndTime}
		}
		req.SelectedDates = append(req.SelectedDates, date)
	}
	for _, p := range s.Participants {
		req.Participants = append(req.Participants, request.BookingParticipantRequest{FirstName: p.FirstName, LastName: p.LastName})
	}
	for _, o := range s.SelectedOptions {
		req.SelectedOptions = append(req.SelectedOptions, request.SelectedOptionRequest{CategoryName: o.CategoryName, ChoiceName: o.ChoiceName})
	}
	return req
}
