package usecase

import (
	"fmt"
	"time"

	"artstudio-booking/internal/data/entity"
	"artstudio-booking/internal/dto/response"
	"artstudio-booking/internal/reservation"
)

const dateOnly = "2006-01-02"

// toOffering converts a stored reservation into the booking-flow view.
// Stored dates are DATE columns, which the calendar keeps as calendar dates.
func toOffering(cal *reservation.Calendar, res *entity.Reservation) *reservation.Offering {
	o := &reservation.Offering{
		ID:                        res.ID.String(),
		Name:                      res.Name,
		Description:               res.Description,
		PricePerDayPerParticipant: reservation.Money(res.PricePerDayCents),
		TimeSlotsEnabled:          res.TimeSlotsEnabled,
	}

	if res.StartDate != nil {
		o.DateRange.Start = cal.Key(*res.StartDate)
	}
	if res.EndDate != nil {
		o.DateRange.End = cal.Key(*res.EndDate)
	}
	for _, d := range res.ExcludeDates {
		o.ExcludeDates = append(o.ExcludeDates, cal.Key(d))
	}

	if res.DiscountKind != nil && res.DiscountValue != nil {
		d := &reservation.Discount{
			Kind:  reservation.DiscountKind(*res.DiscountKind),
			Value: *res.DiscountValue,
		}
		if res.DiscountMinDays != nil {
			d.MinimumDaysSelected = *res.DiscountMinDays
		}
		if res.DiscountLabel != nil {
			d.Label = *res.DiscountLabel
		}
		o.Discount = d
	}

	for _, c := range res.AddOnCategories {
		category := reservation.AddOnCategory{Name: c.Name, Description: c.Description}
		for _, choice := range c.Choices {
			var price reservation.Money
			if choice.PriceCents != nil {
				price = reservation.Money(*choice.PriceCents)
			}
			category.Choices = append(category.Choices, reservation.AddOnChoice{Name: choice.Name, Price: price})
		}
		o.AddOnCategories = append(o.AddOnCategories, category)
	}

	return o
}

func toDayRecords(cal *reservation.Calendar, days []*entity.Availability) []reservation.DayRecord {
	records := make([]reservation.DayRecord, 0, len(days))
	for _, day := range days {
		rec := reservation.DayRecord{
			Date:            cal.Key(day.Date).String(),
			IsAvailable:     day.IsAvailable,
			MaxParticipants: day.MaxParticipants,
			CurrentBookings: day.CurrentBookings,
		}
		if day.StartTime != nil {
			rec.StartTime = *day.StartTime
		}
		if day.EndTime != nil {
			rec.EndTime = *day.EndTime
		}
		for _, slot := range day.TimeSlots {
			rec.TimeSlots = append(rec.TimeSlots, reservation.TimeSlot{
				StartTime:       slot.StartTime,
				EndTime:         slot.EndTime,
				IsAvailable:     slot.IsAvailable,
				MaxParticipants: slot.MaxParticipants,
				CurrentBookings: slot.CurrentBookings,
			})
		}
		records = append(records, rec)
	}
	return records
}

// dateColumn is the value bound to a DATE column for a calendar date.
func dateColumn(k reservation.DateKey) (time.Time, error) {
	return time.Parse(dateOnly, k.String())
}

func toReservationResponse(o *reservation.Offering) response.ReservationResponse {
	resp := response.ReservationResponse{
		ID:                        o.ID,
		Name:                      o.Name,
		Description:               o.Description,
		PricePerDayPerParticipant: o.PricePerDayPerParticipant.Float(),
		DateRange: response.DateRangeResponse{
			Start: o.DateRange.Start.String(),
			End:   o.DateRange.End.String(),
		},
		ExcludeDates:     make([]string, 0, len(o.ExcludeDates)),
		TimeSlotsEnabled: o.TimeSlotsEnabled,
	}
	for _, k := range o.ExcludeDates {
		resp.ExcludeDates = append(resp.ExcludeDates, k.String())
	}

	if d := o.Discount; d != nil {
		resp.Discount = &response.DiscountResponse{
			Kind:                string(d.Kind),
			Value:               d.Value,
			MinimumDaysSelected: d.MinimumDaysSelected,
			Label:               d.Label,
		}
	}

	for _, c := range o.AddOnCategories {
		category := response.AddOnCategoryResponse{
			Name:        c.Name,
			Description: c.Description,
			Choices:     make([]response.AddOnChoiceResponse, 0, len(c.Choices)),
		}
		for _, choice := range c.Choices {
			category.Choices = append(category.Choices, response.AddOnChoiceResponse{
				ChoiceName: choice.Name,
				Price:      choice.Price.Float(),
			})
		}
		resp.AddOnCategories = append(resp.AddOnCategories, category)
	}

	return resp
}

func toAvailabilityResponse(o *reservation.Offering, index *reservation.Index) *response.AvailabilityResponse {
	cal := index.Calendar()
	resp := &response.AvailabilityResponse{
		ReservationID:    o.ID,
		Timezone:         cal.Location().String(),
		TimeSlotsEnabled: index.Slotted(),
		ExcludeDates:     []string{},
		Dates:            []response.DayAvailabilityResponse{},
	}
	for _, k := range index.Excluded() {
		resp.ExcludeDates = append(resp.ExcludeDates, k.String())
	}

	for _, k := range index.Dates() {
		day, _ := index.Lookup(k)
		d := response.DayAvailabilityResponse{
			Date:        k.String(),
			IsAvailable: day.IsAvailable,
			Selectable:  index.Selectable(k),
			Available:   day.Available,
			Max:         day.Max,
			StartTime:   day.StartTime,
			EndTime:     day.EndTime,
		}
		for _, slot := range day.TimeSlots {
			d.TimeSlots = append(d.TimeSlots, response.TimeSlotResponse{
				StartTime:   slot.StartTime,
				EndTime:     slot.EndTime,
				IsAvailable: slot.IsAvailable,
				Available:   slot.Available(),
				Max:         slot.MaxParticipants,
			})
		}
		resp.Dates = append(resp.Dates, d)
	}

	return resp
}

func toPricingResponse(b reservation.PricingBreakdown) response.PricingResponse {
	return response.PricingResponse{
		TotalParticipantDays: b.TotalParticipantDays,
		BaseSubtotal:         b.BaseSubtotal.Float(),
		AddOnSubtotal:        b.AddOnSubtotal.Float(),
		DiscountAmount:       b.DiscountAmount.Float(),
		DiscountLabel:        b.DiscountLabel,
		DiscountApplied:      b.DiscountApplied(),
		GrandTotal:           b.GrandTotal.Float(),
	}
}

func toSelectedDates(cal *reservation.Calendar, entries []reservation.Entry) []response.SelectedDateResponse {
	out := make([]response.SelectedDateResponse, 0, len(entries))
	for _, e := range entries {
		d := response.SelectedDateResponse{
			Date:                 e.Date.String(),
			Label:                cal.Label(e.Date),
			NumberOfParticipants: e.ParticipantCount,
		}
		if e.TimeSlot != nil {
			d.TimeSlot = &response.SelectedSlotResponse{StartTime: e.TimeSlot.StartTime, EndTime: e.TimeSlot.EndTime}
		}
		out = append(out, d)
	}
	return out
}

func toAdjustmentResponses(cal *reservation.Calendar, adjustments []reservation.Adjustment) []response.AdjustmentResponse {
	out := make([]response.AdjustmentResponse, 0, len(adjustments))
	for _, a := range adjustments {
		out = append(out, response.AdjustmentResponse{
			Date:     a.Date.String(),
			Kind:     string(a.Kind),
			Previous: a.Previous,
			Current:  a.Current,
			Message:  adjustmentMessage(cal, a),
		})
	}
	return out
}

func adjustmentMessage(cal *reservation.Calendar, a reservation.Adjustment) string {
	label := cal.Label(a.Date)
	switch a.Kind {
	case reservation.AdjustmentRemoved:
		return label + " is no longer available"
	case reservation.AdjustmentSlotCleared:
		return "The selected time slot on " + label + " is no longer available"
	case reservation.AdjustmentClamped:
		if a.Current == 1 {
			return "Only 1 spot left on " + label
		}
		return fmt.Sprintf("Only %d spots left on %s", a.Current, label)
	default:
		return label + " changed"
	}
}

func toBookingDetail(b *entity.Booking, c *entity.Customer) *response.BookingDetailResponse {
	resp := &response.BookingDetailResponse{
		ID:               b.ID.String(),
		ConfirmationCode: b.ConfirmationCode,
		ReservationID:    b.ReservationID.String(),
		Quantity:         b.Quantity,
		Total:            reservation.Money(b.TotalCents).Float(),
		Status:           string(b.Status),
		Dates:            make([]response.BookingDateResponse, 0, len(b.Dates)),
		Participants:     make([]response.BookingParticipantResponse, 0, len(b.Participants)),
		SelectedOptions:  make([]response.BookingOptionResponse, 0, len(b.Options)),
		CreatedAt:        b.CreatedAt,
	}

	if c != nil {
		resp.Customer = &response.CustomerResponse{
			ID:        c.ID.String(),
			FirstName: c.FirstName,
			LastName:  c.LastName,
		}
		if c.Email != nil {
			resp.Customer.Email = *c.Email
		}
		if c.Phone != nil {
			resp.Customer.Phone = *c.Phone
		}
	}

	for _, d := range b.Dates {
		date := response.BookingDateResponse{
			Date:             d.Date.UTC().Format(dateOnly),
			ParticipantCount: d.ParticipantCount,
		}
		if d.SlotStart != nil && d.SlotEnd != nil {
			date.TimeSlot = &response.SelectedSlotResponse{StartTime: *d.SlotStart, EndTime: *d.SlotEnd}
		}
		resp.Dates = append(resp.Dates, date)
	}
	for _, p := range b.Participants {
		resp.Participants = append(resp.Participants, response.BookingParticipantResponse{FirstName: p.FirstName, LastName: p.LastName})
	}
	for _, o := range b.Options {
		resp.SelectedOptions = append(resp.SelectedOptions, response.BookingOptionResponse{
			CategoryName: o.CategoryName,
			ChoiceName:   o.ChoiceName,
			Price:        reservation.Money(o.PriceCents).Float(),
		})
	}

	return resp
}
