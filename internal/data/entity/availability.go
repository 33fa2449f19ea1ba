package entity

import (
	"time"

	"github.com/google/uuid"
)

// Availability is the capacity of one reservation on one date. Dates are
// stored as Postgres DATE and scanned as UTC midnight.
type Availability struct {
	BaseNoDelete
	ReservationID   uuid.UUID  `db:"reservation_id"`
	Date            time.Time  `db:"date"`
	IsAvailable     bool       `db:"is_available"`
	MaxParticipants int        `db:"max_participants"`
	CurrentBookings int        `db:"current_bookings"`
	StartTime       *string    `db:"start_time"`
	EndTime         *string    `db:"end_time"`
	TimeSlots       []TimeSlot `db:"-"`
}

type TimeSlot struct {
	BaseNoDelete
	AvailabilityID  uuid.UUID `db:"availability_id"`
	StartTime       string    `db:"start_time"`
	EndTime         string    `db:"end_time"`
	IsAvailable     bool      `db:"is_available"`
	MaxParticipants int       `db:"max_participants"`
	CurrentBookings int       `db:"current_bookings"`
}
