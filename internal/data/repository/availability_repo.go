package repository

import (
	"context"
	"fmt"
	"time"

	"artstudio-booking/internal/data/entity"
	"artstudio-booking/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AvailabilityRepository interface {
	FindByReservationID(ctx context.Context, reservationID uuid.UUID) ([]*entity.Availability, error)

	// ReserveDay and ReserveSlot add n bookings to a date or slot only when it
	// is open and has room. They report false when nothing was updated.
	ReserveDay(ctx context.Context, q database.Querier, reservationID uuid.UUID, date time.Time, n int) (bool, error)
	ReserveSlot(ctx context.Context, q database.Querier, reservationID uuid.UUID, date time.Time, start, end string, n int) (bool, error)
}

type availabilityRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewAvailabilityRepository(db database.PgxIface, log *zap.Logger) AvailabilityRepository {
	return &availabilityRepository{
		db:  db,
		log: log.With(zap.String("repository", "availability")),
	}
}

// FindByReservationID loads every availability row of an offering with its
// time slots, ordered by date.
func (r *availabilityRepository) FindByReservationID(ctx context.Context, reservationID uuid.UUID) ([]*entity.Availability, error) {
	query := `
		SELECT id, reservation_id, date, is_available, max_participants, current_bookings,
		       to_char(start_time, 'HH24:MI'), to_char(end_time, 'HH24:MI'), created_at, updated_at
		FROM availability
		WHERE reservation_id = $1
		ORDER BY date
	`

	rows, err := r.db.Query(ctx, query, reservationID)
	if err != nil {
		r.log.Error("Failed to find availability",
			zap.Error(err),
			zap.String("reservation_id", reservationID.String()),
		)
		return nil, fmt.Errorf("find availability for reservation %s: %w", reservationID.String(), err)
	}
	defer rows.Close()

	var days []*entity.Availability
	byID := make(map[uuid.UUID]*entity.Availability)
	for rows.Next() {
		var day entity.Availability
		err := rows.Scan(
			&day.ID,
			&day.ReservationID,
			&day.Date,
			&day.IsAvailable,
			&day.MaxParticipants,
			&day.CurrentBookings,
			&day.StartTime,
			&day.EndTime,
			&day.CreatedAt,
			&day.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan availability row", zap.Error(err))
			return nil, fmt.Errorf("scan availability row: %w", err)
		}
		days = append(days, &day)
		byID[day.ID] = &day
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate availability rows: %w", err)
	}

	if len(days) == 0 {
		return days, nil
	}

	slotQuery := `
		SELECT s.id, s.availability_id, to_char(s.start_time, 'HH24:MI'), to_char(s.end_time, 'HH24:MI'),
		       s.is_available, s.max_participants, s.current_bookings, s.created_at, s.updated_at
		FROM availability_time_slots s
		JOIN availability a ON a.id = s.availability_id
		WHERE a.reservation_id = $1
		ORDER BY s.start_time
	`

	slotRows, err := r.db.Query(ctx, slotQuery, reservationID)
	if err != nil {
		r.log.Error("Failed to find time slots",
			zap.Error(err),
			zap.String("reservation_id", reservationID.String()),
		)
		return nil, fmt.Errorf("find time slots for reservation %s: %w", reservationID.String(), err)
	}
	defer slotRows.Close()

	for slotRows.Next() {
		var slot entity.TimeSlot
		err := slotRows.Scan(
			&slot.ID,
			&slot.AvailabilityID,
			&slot.StartTime,
			&slot.EndTime,
			&slot.IsAvailable,
			&slot.MaxParticipants,
			&slot.CurrentBookings,
			&slot.CreatedAt,
			&slot.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan time slot row", zap.Error(err))
			return nil, fmt.Errorf("scan time slot row: %w", err)
		}
		if day, ok := byID[slot.AvailabilityID]; ok {
			day.TimeSlots = append(day.TimeSlots, slot)
		}
	}
	if err := slotRows.Err(); err != nil {
		return nil, fmt.Errorf("iterate time slot rows: %w", err)
	}

	return days, nil
}

func (r *availabilityRepository) ReserveDay(ctx context.Context, q database.Querier, reservationID uuid.UUID, date time.Time, n int) (bool, error) {
	query := `
		UPDATE availability
		SET current_bookings = current_bookings + $3, updated_at = NOW()
		WHERE reservation_id = $1 AND date = $2
		  AND is_available
		  AND current_bookings + $3 <= max_participants
	`

	result, err := q.Exec(ctx, query, reservationID, date, n)
	if err != nil {
		r.log.Error("Failed to reserve day",
			zap.Error(err),
			zap.String("reservation_id", reservationID.String()),
			zap.Time("date", date),
			zap.Int("participants", n),
		)
		return false, fmt.Errorf("reserve %d on %s: %w", n, date.Format(time.DateOnly), err)
	}

	return result.RowsAffected() == 1, nil
}

// ReserveSlot also requires the parent date to be open.
func (r *availabilityRepository) ReserveSlot(ctx context.Context, q database.Querier, reservationID uuid.UUID, date time.Time, start, end string, n int) (bool, error) {
	query := `
		UPDATE availability_time_slots s
		SET current_bookings = s.current_bookings + $5, updated_at = NOW()
		FROM availability a
		WHERE s.availability_id = a.id
		  AND a.reservation_id = $1 AND a.date = $2 AND a.is_available
		  AND s.start_time = $3::time AND s.end_time = $4::time
		  AND s.is_available
		  AND s.current_bookings + $5 <= s.max_participants
	`

	result, err := q.Exec(ctx, query, reservationID, date, start, end, n)
	if err != nil {
		r.log.Error("Failed to reserve time slot",
			zap.Error(err),
			zap.String("reservation_id", reservationID.String()),
			zap.Time("date", date),
			zap.String("slot", start+"-"+end),
			zap.Int("participants", n),
		)
		return false, fmt.Errorf("reserve %d on %s %s-%s: %w", n, date.Format(time.DateOnly), start, end, err)
	}

	return result.RowsAffected() == 1, nil
}
