package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"artstudio-booking/internal/data/entity"
	"artstudio-booking/internal/dto/request"
	"artstudio-booking/internal/reservation"
	"artstudio-booking/internal/usecase"
	"artstudio-booking/pkg/cache"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestListReservations_Paginates(t *testing.T) {
	f := newFixture(t)
	f.reservations.On("FindAll", mock.Anything, 10, 10).Return([]*entity.Reservation{openStudio()}, nil)
	f.reservations.On("CountAll", mock.Anything).Return(int64(11), nil)

	resp, err := f.service(nil).Reservation.ListReservations(context.Background(), &request.PaginatedRequest{Page: 2, PerPage: 10})
	require.NoError(t, err)

	require.Len(t, resp.Data, 1)
	assert.Equal(t, "Open Studio", resp.Data[0].Name)
	assert.Equal(t, 25.0, resp.Data[0].PricePerDayPerParticipant)
	assert.Equal(t, []string{"2030-06-15"}, resp.Data[0].ExcludeDates)
	assert.Equal(t, 2, resp.Pagination.TotalPages)
}

func TestGetReservation_Errors(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.service(nil).Reservation.GetReservation(context.Background(), "not-a-uuid")
		assert.ErrorIs(t, err, usecase.ErrInvalidInput)
	})

	t.Run("missing", func(t *testing.T) {
		f := newFixture(t)
		f.reservations.On("FindByID", mock.Anything, studioID).Return(nil, nil)
		_, err := f.service(nil).Reservation.GetReservation(context.Background(), studioID.String())
		assert.ErrorIs(t, err, usecase.ErrNotFound)
	})

	t.Run("inactive", func(t *testing.T) {
		f := newFixture(t)
		res := openStudio()
		res.IsActive = false
		f.reservations.On("FindByID", mock.Anything, studioID).Return(res, nil)
		_, err := f.service(nil).Reservation.GetReservation(context.Background(), studioID.String())
		assert.ErrorIs(t, err, usecase.ErrNotFound)
	})

	t.Run("store failure", func(t *testing.T) {
		f := newFixture(t)
		f.reservations.On("FindByID", mock.Anything, studioID).Return(nil, errors.New("connection reset"))
		_, err := f.service(nil).Reservation.GetReservation(context.Background(), studioID.String())
		require.Error(t, err)
		assert.NotErrorIs(t, err, usecase.ErrNotFound)
	})
}

func TestGetAvailability_MarksSelectableDates(t *testing.T) {
	f := newFixture(t)
	f.reservations.On("FindByID", mock.Anything, studioID).Return(openStudio(), nil)
	f.availability.On("FindByReservationID", mock.Anything, studioID).Return(studioDays(8), nil)

	resp, err := f.service(nil).Reservation.GetAvailability(context.Background(), studioID.String())
	require.NoError(t, err)

	assert.Equal(t, "America/New_York", resp.Timezone)
	require.Len(t, resp.Dates, 4)

	byDate := map[string]bool{}
	for _, d := range resp.Dates {
		byDate[d.Date] = d.Selectable
	}
	assert.Equal(t, map[string]bool{
		"2030-06-10": true,
		"2030-06-11": true,
		"2030-06-12": false,
		"2030-06-15": false,
	}, byDate)
	assert.Equal(t, 2, resp.Dates[0].Available)
}

func TestGetAvailability_InconsistentDataIsConfigurationError(t *testing.T) {
	f := newFixture(t)
	f.reservations.On("FindByID", mock.Anything, studioID).Return(openStudio(), nil)
	days := studioDays(0)
	days[0].TimeSlots = []entity.TimeSlot{{StartTime: "10:00", EndTime: "12:00", IsAvailable: true, MaxParticipants: 4}}
	f.availability.On("FindByReservationID", mock.Anything, studioID).Return(days, nil)

	_, err := f.service(nil).Reservation.GetAvailability(context.Background(), studioID.String())
	assert.ErrorIs(t, err, reservation.ErrConfiguration)
}

func TestGetAvailability_ServesCachedSnapshot(t *testing.T) {
	f := newFixture(t)
	f.reservations.On("FindByID", mock.Anything, studioID).Return(openStudio(), nil)

	db, rmock := redismock.NewClientMock()
	raw, err := json.Marshal([]reservation.DayRecord{
		{Date: "2030-06-10", IsAvailable: true, MaxParticipants: 10, CurrentBookings: 9},
	})
	require.NoError(t, err)
	rmock.ExpectGet("availability:" + studioID.String()).SetVal(string(raw))

	resp, err := f.service(cache.NewJSONCache(db)).Reservation.GetAvailability(context.Background(), studioID.String())
	require.NoError(t, err)

	require.Len(t, resp.Dates, 1)
	assert.Equal(t, 1, resp.Dates[0].Available)
	assert.NoError(t, rmock.ExpectationsWereMet())
}

func TestGetAvailability_FillsCacheOnMiss(t *testing.T) {
	f := newFixture(t)
	f.reservations.On("FindByID", mock.Anything, studioID).Return(openStudio(), nil)
	f.availability.On("FindByReservationID", mock.Anything, studioID).Return(studioDays(0), nil)

	db, rmock := redismock.NewClientMock()
	key := "availability:" + studioID.String()
	rmock.ExpectGet(key).RedisNil()
	rmock.Regexp().ExpectSet(key, `.*`, 30*time.Second).SetVal("OK")

	_, err := f.service(cache.NewJSONCache(db)).Reservation.GetAvailability(context.Background(), studioID.String())
	require.NoError(t, err)
	assert.NoError(t, rmock.ExpectationsWereMet())
}

func TestQuote_ClampsAndDropsAgainstAvailability(t *testing.T) {
	f := newFixture(t)
	f.reservations.On("FindByID", mock.Anything, studioID).Return(openStudio(), nil)
	f.availability.On("FindByReservationID", mock.Anything, studioID).Return(studioDays(8), nil)

	resp, err := f.service(nil).Reservation.Quote(context.Background(), studioID.String(), &request.QuoteRequest{
		SelectedDates: []request.SelectedDateRequest{
			{Date: "2030-06-11", NumberOfParticipants: 1},
			{Date: "2030-06-10", NumberOfParticipants: 3},
			{Date: "2030-06-15", NumberOfParticipants: 1},
		},
		SelectedOptions: []request.SelectedOptionRequest{{CategoryName: "Clay", ChoiceName: "Stoneware 10lb"}},
	})
	require.NoError(t, err)

	require.Len(t, resp.SelectedDates, 2)
	assert.Equal(t, "2030-06-10", resp.SelectedDates[0].Date)
	assert.Equal(t, 2, resp.SelectedDates[0].NumberOfParticipants)

	assert.Equal(t, 3, resp.Pricing.TotalParticipantDays)
	assert.Equal(t, 75.0, resp.Pricing.BaseSubtotal)
	assert.Equal(t, 18.0, resp.Pricing.AddOnSubtotal)
	assert.Equal(t, 7.5, resp.Pricing.DiscountAmount)
	assert.True(t, resp.Pricing.DiscountApplied)
	assert.Equal(t, 85.5, resp.Pricing.GrandTotal)
	assert.True(t, resp.IsComplete)

	require.Len(t, resp.Adjustments, 2)
	assert.Equal(t, "clamped", resp.Adjustments[0].Kind)
	assert.Equal(t, "Only 2 spots left on June 10, 2030", resp.Adjustments[0].Message)
	assert.Equal(t, "removed", resp.Adjustments[1].Kind)
	assert.Equal(t, "June 15, 2030 is no longer available", resp.Adjustments[1].Message)
}

func TestQuote_EmptySelectionIsIncomplete(t *testing.T) {
	f := newFixture(t)
	f.reservations.On("FindByID", mock.Anything, studioID).Return(openStudio(), nil)
	f.availability.On("FindByReservationID", mock.Anything, studioID).Return(studioDays(0), nil)

	resp, err := f.service(nil).Reservation.Quote(context.Background(), studioID.String(), &request.QuoteRequest{})
	require.NoError(t, err)

	assert.False(t, resp.IsComplete)
	assert.Equal(t, "Please select at least one date", resp.IncompleteReason)
	assert.Zero(t, resp.Pricing.GrandTotal)
	assert.False(t, resp.Pricing.DiscountApplied)
}

func TestQuote_RejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		req  *request.QuoteRequest
	}{
		{
			name: "unparseable date",
			req:  &request.QuoteRequest{SelectedDates: []request.SelectedDateRequest{{Date: "June 10", NumberOfParticipants: 1}}},
		},
		{
			name: "duplicate date",
			req: &request.QuoteRequest{SelectedDates: []request.SelectedDateRequest{
				{Date: "2030-06-10", NumberOfParticipants: 1},
				{Date: "2030-06-10T04:00:00Z", NumberOfParticipants: 1},
			}},
		},
		{
			name: "slot on whole-day offering",
			req: &request.QuoteRequest{SelectedDates: []request.SelectedDateRequest{
				{Date: "2030-06-10", NumberOfParticipants: 1, TimeSlot: &request.TimeSlotRequest{StartTime: "10:00", EndTime: "12:00"}},
			}},
		},
		{
			name: "zero participants",
			req:  &request.QuoteRequest{SelectedDates: []request.SelectedDateRequest{{Date: "2030-06-10", NumberOfParticipants: 0}}},
		},
		{
			name: "unknown add-on",
			req: &request.QuoteRequest{
				SelectedDates:   []request.SelectedDateRequest{{Date: "2030-06-10", NumberOfParticipants: 1}},
				SelectedOptions: []request.SelectedOptionRequest{{CategoryName: "Clay", ChoiceName: "Porcelain"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.reservations.On("FindByID", mock.Anything, studioID).Return(openStudio(), nil)
			f.availability.On("FindByReservationID", mock.Anything, studioID).Return(studioDays(0), nil)

			_, err := f.service(nil).Reservation.Quote(context.Background(), studioID.String(), tt.req)
			assert.ErrorIs(t, err, usecase.ErrInvalidInput)
		})
	}
}
