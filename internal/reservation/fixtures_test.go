package reservation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestCalendar(t *testing.T) *Calendar {
	t.Helper()
	cal, err := NewCalendar("America/New_York")
	require.NoError(t, err)
	return cal
}

func wholeDayOffering() *Offering {
	return &Offering{
		ID:                        "open-studio",
		Name:                      "Open Studio",
		PricePerDayPerParticipant: MoneyFromFloat(25),
		DateRange:                 DateRange{Start: "2024-06-01", End: "2024-06-30"},
		ExcludeDates:              []DateKey{"2024-06-19"},
	}
}

func slottedOffering() *Offering {
	o := wholeDayOffering()
	o.ID = "wheel-throwing"
	o.TimeSlotsEnabled = true
	return o
}

func wholeDayRecords() []DayRecord {
	return []DayRecord{
		{Date: "2024-06-10", IsAvailable: true, MaxParticipants: 10, CurrentBookings: 2},
		{Date: "2024-06-11", IsAvailable: true, MaxParticipants: 8, CurrentBookings: 0, StartTime: "10:00", EndTime: "14:00"},
		{Date: "2024-06-12", IsAvailable: true, MaxParticipants: 5, CurrentBookings: 5},
		{Date: "2024-06-13", IsAvailable: false, MaxParticipants: 5},
		{Date: "2024-06-19", IsAvailable: true, MaxParticipants: 5},
		{Date: "2024-07-02", IsAvailable: true, MaxParticipants: 5},
	}
}

func slottedRecords() []DayRecord {
	return []DayRecord{
		{
			Date: "2024-06-10", IsAvailable: true, MaxParticipants: 12,
			TimeSlots: []TimeSlot{
				{StartTime: "13:00", EndTime: "15:00", IsAvailable: true, MaxParticipants: 6, CurrentBookings: 6},
				{StartTime: "09:00", EndTime: "11:00", IsAvailable: true, MaxParticipants: 6, CurrentBookings: 2},
			},
		},
		{
			Date: "2024-06-11", IsAvailable: true, MaxParticipants: 6,
			TimeSlots: []TimeSlot{
				{StartTime: "09:00", EndTime: "11:00", IsAvailable: true, MaxParticipants: 6},
			},
		},
	}
}

func buildWholeDayIndex(t *testing.T) *Index {
	t.Helper()
	idx, err := BuildIndex(newTestCalendar(t), wholeDayOffering(), wholeDayRecords(), nil)
	require.NoError(t, err)
	return idx
}

func buildSlottedIndex(t *testing.T) *Index {
	t.Helper()
	idx, err := BuildIndex(newTestCalendar(t), slottedOffering(), slottedRecords(), nil)
	require.NoError(t, err)
	return idx
}
