package usecase

import (
	"errors"

	"artstudio-booking/internal/dto/request"
	"artstudio-booking/internal/reservation"
)

// replaySelection rebuilds a client's selection against index. Anything the
// snapshot no longer allows is dropped or clamped and reported.
func replaySelection(cal *reservation.Calendar, index *reservation.Index, dates []request.SelectedDateRequest) (*reservation.SelectionStore, []reservation.Adjustment, error) {
	store := reservation.NewSelectionStore(index)
	var adjustments []reservation.Adjustment

	seen := make(map[reservation.DateKey]struct{}, len(dates))
	for _, d := range dates {
		key, err := cal.ParseKey(d.Date)
		if err != nil {
			return nil, nil, invalid("invalid date %s", d.Date)
		}
		if _, dup := seen[key]; dup {
			return nil, nil, invalid("%s is selected more than once", cal.Label(key))
		}
		seen[key] = struct{}{}

		if d.TimeSlot != nil && !index.Slotted() {
			return nil, nil, invalid("time slots are not offered for this reservation")
		}

		if !store.ToggleDate(key) {
			adjustments = append(adjustments, reservation.Adjustment{
				Date:     key,
				Kind:     reservation.AdjustmentRemoved,
				Previous: d.NumberOfParticipants,
			})
			continue
		}

		if d.TimeSlot != nil {
			ref := reservation.SlotRef{StartTime: d.TimeSlot.StartTime, EndTime: d.TimeSlot.EndTime}
			if err := store.SetTimeSlot(key, &ref); err != nil {
				adjustments = append(adjustments, reservation.Adjustment{
					Date:     key,
					Kind:     reservation.AdjustmentSlotCleared,
					Previous: d.NumberOfParticipants,
					Current:  d.NumberOfParticipants,
				})
			}
		}

		applied, err := store.SetParticipantCount(key, d.NumberOfParticipants)
		var capErr *reservation.CapacityError
		switch {
		case errors.As(err, &capErr):
			adjustments = append(adjustments, reservation.Adjustment{
				Date:     key,
				Kind:     reservation.AdjustmentClamped,
				Previous: d.NumberOfParticipants,
				Current:  applied,
			})
		case errors.Is(err, reservation.ErrInvalidParticipantCount):
			return nil, nil, invalid("number of participants must be at least 1")
		case err != nil:
			return nil, nil, invalid("%s", err.Error())
		}
	}

	return store, adjustments, nil
}

func toAddOns(options []request.SelectedOptionRequest) []reservation.SelectedAddOn {
	out := make([]reservation.SelectedAddOn, 0, len(options))
	for _, opt := range options {
		out = append(out, reservation.SelectedAddOn{CategoryName: opt.CategoryName, ChoiceName: opt.ChoiceName})
	}
	return out
}
